package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/drax210310/jugueteria-backend/domain"
)

// SaleServiceImpl implements domain.SaleService
type SaleServiceImpl struct {
	saleRepo    domain.SaleRepository
	productRepo domain.ProductRepository
	logger      zerolog.Logger
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo domain.SaleRepository, productRepo domain.ProductRepository, logger zerolog.Logger) domain.SaleService {
	return &SaleServiceImpl{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("component", "sale_service").Logger(),
	}
}

// CreateSale implements domain.SaleService. Unit prices come from the
// catalog, not from the client, and the total is derived from the items.
func (s *SaleServiceImpl) CreateSale(ctx context.Context, userID uint, items []domain.SaleItem) (*domain.Sale, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: a sale needs at least one item", domain.ErrValidation)
	}

	total := 0.0
	for i := range items {
		if items[i].Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", domain.ErrValidation)
		}
		product, err := s.productRepo.FindByID(ctx, items[i].ProductID)
		if err != nil {
			return nil, err
		}
		items[i].UnitPrice = product.Price
		total += product.Price * float64(items[i].Quantity)
	}

	sale := &domain.Sale{
		UserID: userID,
		Total:  total,
		Items:  items,
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("sale_id", sale.ID).Uint("user_id", userID).Float64("total", total).Msg("sale recorded")
	return sale, nil
}

// ListSales implements domain.SaleService
func (s *SaleServiceImpl) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return s.saleRepo.List(ctx)
}
