package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/drax210310/jugueteria-backend/domain"
)

// CatalogServiceImpl implements domain.CatalogService
type CatalogServiceImpl struct {
	productRepo domain.ProductRepository
	lineRepo    domain.ProductLineRepository
	geoRepo     domain.GeoRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo domain.ProductRepository, lineRepo domain.ProductLineRepository, geoRepo domain.GeoRepository, logger zerolog.Logger) domain.CatalogService {
	return &CatalogServiceImpl{
		productRepo: productRepo,
		lineRepo:    lineRepo,
		geoRepo:     geoRepo,
		logger:      logger.With().Str("component", "catalog_service").Logger(),
	}
}

// ListProducts implements domain.CatalogService
func (s *CatalogServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.List(ctx)
}

// GetProduct implements domain.CatalogService
func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// CreateProduct implements domain.CatalogService
func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepo.Create(ctx, product)
}

// UpdateProduct implements domain.CatalogService
func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == 0 {
		return fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepo.Update(ctx, product)
}

// DeleteProduct implements domain.CatalogService
func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id uint) error {
	return s.productRepo.Delete(ctx, id)
}

// ListProductLines implements domain.CatalogService
func (s *CatalogServiceImpl) ListProductLines(ctx context.Context) ([]domain.ProductLine, error) {
	return s.lineRepo.List(ctx)
}

// ListMunicipalities implements domain.CatalogService
func (s *CatalogServiceImpl) ListMunicipalities(ctx context.Context) ([]domain.Municipality, error) {
	return s.geoRepo.ListMunicipalities(ctx)
}

// ListDepartments implements domain.CatalogService
func (s *CatalogServiceImpl) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.geoRepo.ListDepartments(ctx)
}

func validateProduct(product *domain.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrValidation)
	}
	if product.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	return nil
}
