package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/drax210310/jugueteria-backend/domain"
	"github.com/drax210310/jugueteria-backend/internal/mocks"
)

func newSaleService(t *testing.T) (domain.SaleService, *mocks.MockSaleRepository, *mocks.MockProductRepository) {
	t.Helper()
	saleRepo := mocks.NewMockSaleRepository()
	productRepo := mocks.NewMockProductRepository()
	return NewSaleService(saleRepo, productRepo, zerolog.Nop()), saleRepo, productRepo
}

func catalogWith(prices map[uint]float64) func(ctx context.Context, id uint) (*domain.Product, error) {
	return func(ctx context.Context, id uint) (*domain.Product, error) {
		price, ok := prices[id]
		if !ok {
			return nil, domain.ErrProductNotFound
		}
		return &domain.Product{ID: id, Name: "x", Price: price, Stock: 10}, nil
	}
}

func TestSaleServiceImpl_CreateSale(t *testing.T) {
	svc, saleRepo, productRepo := newSaleService(t)
	productRepo.FindByIDFunc = catalogWith(map[uint]float64{1: 10.0, 2: 2.5})

	var stored *domain.Sale
	saleRepo.CreateFunc = func(ctx context.Context, sale *domain.Sale) error {
		sale.ID = 42
		stored = sale
		return nil
	}

	sale, err := svc.CreateSale(context.Background(), 7, []domain.SaleItem{
		{ProductID: 1, Quantity: 2, UnitPrice: 999}, // client-sent price must be ignored
		{ProductID: 2, Quantity: 4},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sale.ID != 42 {
		t.Errorf("expected sale id 42, got %d", sale.ID)
	}
	if sale.Total != 30.0 {
		t.Errorf("expected total 30.0 from catalog prices, got %v", sale.Total)
	}
	if stored.Items[0].UnitPrice != 10.0 {
		t.Errorf("unit price must come from the catalog, got %v", stored.Items[0].UnitPrice)
	}
	if stored.UserID != 7 {
		t.Errorf("expected user id 7, got %d", stored.UserID)
	}
}

func TestSaleServiceImpl_CreateSale_Validation(t *testing.T) {
	tests := []struct {
		name          string
		items         []domain.SaleItem
		expectedError error
	}{
		{
			name:          "no items",
			items:         nil,
			expectedError: domain.ErrValidation,
		},
		{
			name:          "zero quantity",
			items:         []domain.SaleItem{{ProductID: 1, Quantity: 0}},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "unknown product",
			items:         []domain.SaleItem{{ProductID: 99, Quantity: 1}},
			expectedError: domain.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, saleRepo, productRepo := newSaleService(t)
			productRepo.FindByIDFunc = catalogWith(map[uint]float64{1: 10.0})
			created := false
			saleRepo.CreateFunc = func(ctx context.Context, sale *domain.Sale) error {
				created = true
				return nil
			}

			_, err := svc.CreateSale(context.Background(), 7, tt.items)
			if !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
			if created {
				t.Error("no sale may be stored when validation fails")
			}
		})
	}
}

func TestSaleServiceImpl_ListSales(t *testing.T) {
	svc, saleRepo, _ := newSaleService(t)
	saleRepo.ListFunc = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{{ID: 1, UserID: 7, Total: 30}}, nil
	}

	sales, err := svc.ListSales(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 1 || sales[0].Total != 30 {
		t.Errorf("unexpected sales %+v", sales)
	}
}
