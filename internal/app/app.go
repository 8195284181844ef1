package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drax210310/jugueteria-backend/internal/config"
	httpx "github.com/drax210310/jugueteria-backend/internal/http"
	"github.com/drax210310/jugueteria-backend/internal/http/handlers"
	"github.com/drax210310/jugueteria-backend/internal/http/middleware"
	"github.com/drax210310/jugueteria-backend/internal/infrastructure/audit"
	"github.com/drax210310/jugueteria-backend/internal/infrastructure/auth"
	"github.com/drax210310/jugueteria-backend/internal/infrastructure/database"
	"github.com/drax210310/jugueteria-backend/internal/infrastructure/repositories"
	"github.com/drax210310/jugueteria-backend/internal/services"
	"github.com/drax210310/jugueteria-backend/pkg/logger"
)

// Run wires every dependency and starts the HTTP server.
func Run(cfg *config.Config) error {
	log := logger.Get()
	gin.SetMode(cfg.GinMode)

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		// The limiter fails open, so a missing Redis degrades throttling
		// instead of blocking startup.
		log.Warn().Err(err).Msg("redis unreachable, login throttling degraded")
	}

	// Infrastructure services
	auditLog := audit.NewZerologAuditLogger(log)
	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb, cfg.StorageTimeout)
	productRepo := repositories.NewProductRepository(gdb, cfg.StorageTimeout)
	lineRepo := repositories.NewProductLineRepository(gdb, cfg.StorageTimeout)
	geoRepo := repositories.NewGeoRepository(gdb, cfg.StorageTimeout)
	saleRepo := repositories.NewSaleRepository(gdb, cfg.StorageTimeout)
	limiter := repositories.NewLoginLimiter(rdb.Client, cfg.LoginMaxAttempts, cfg.LoginWindow)

	// Services
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, limiter, auditLog, log)
	userSvc := services.NewUserService(userRepo, auditLog, log)
	catalogSvc := services.NewCatalogService(productRepo, lineRepo, geoRepo, log)
	saleSvc := services.NewSaleService(saleRepo, productRepo, log)

	// Handlers and middleware
	ah := handlers.NewAuthHandlers(authSvc)
	uh := handlers.NewUserHandlers(userSvc)
	ph := handlers.NewProductHandlers(catalogSvc)
	sh := handlers.NewSaleHandlers(saleSvc)
	jwtMW := middleware.NewAuthMW(tokenSvc, auditLog)

	r := httpx.BuildRouter(ah, uh, ph, sh, jwtMW, cfg.CORSOrigins, log)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, r)
}
