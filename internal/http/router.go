package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/drax210310/jugueteria-backend/internal/http/handlers"
	"github.com/drax210310/jugueteria-backend/internal/http/middleware"
)

// BuildRouter wires all routes. Policy enforcement lives in two places
// only: the RequireAdmin middleware for admin-only groups, and the
// SelfOrAdmin check inside handlers whose target comes from the path.
func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	ph *handlers.ProductHandlers,
	sh *handlers.SaleHandlers,
	jwtmw *middleware.AuthMW,
	corsOrigins []string,
	logger zerolog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(logger))

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) > 0 {
		corsCfg.AllowOrigins = corsOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = []string{"Authorization", "Content-Type"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true, "message": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/verify", ah.Verify)

	// Public catalog reads.
	api.GET("/products", ph.List)
	api.GET("/products/:id", ph.Get)
	api.GET("/product-lines", ph.ListLines)
	api.GET("/municipalities", ph.ListMunicipalities)
	api.GET("/departments", ph.ListDepartments)

	// Any authenticated identity.
	authed := api.Group("/", jwtmw.WithJWT())
	authed.GET("/users/profile", uh.GetProfile)
	authed.PUT("/users/profile", uh.UpdateProfile)
	authed.GET("/users/:id", uh.GetUser)
	authed.POST("/sales", sh.Create)

	// Admin only.
	admin := api.Group("/", jwtmw.WithJWT(), jwtmw.RequireAdmin())
	admin.GET("/users", uh.ListUsers)
	admin.PUT("/users/:id/role", uh.UpdateRole)
	admin.POST("/products", ph.Create)
	admin.PUT("/products/:id", ph.Update)
	admin.DELETE("/products/:id", ph.Delete)
	admin.GET("/sales", sh.List)

	return r
}
