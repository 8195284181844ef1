package mocks

import (
	"context"

	"github.com/drax210310/jugueteria-backend/domain"
)

// MockProductRepository implements domain.ProductRepository for testing
type MockProductRepository struct {
	CreateFunc   func(ctx context.Context, product *domain.Product) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Product, error)
	ListFunc     func(ctx context.Context) ([]domain.Product, error)
	UpdateFunc   func(ctx context.Context, product *domain.Product) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockProductRepository creates a new MockProductRepository with default behaviors
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Product{}, nil
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockProductLineRepository implements domain.ProductLineRepository for testing
type MockProductLineRepository struct {
	ListFunc func(ctx context.Context) ([]domain.ProductLine, error)
}

// NewMockProductLineRepository creates a new MockProductLineRepository
func NewMockProductLineRepository() *MockProductLineRepository {
	return &MockProductLineRepository{}
}

func (m *MockProductLineRepository) List(ctx context.Context) ([]domain.ProductLine, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.ProductLine{}, nil
}

// MockGeoRepository implements domain.GeoRepository for testing
type MockGeoRepository struct {
	ListMunicipalitiesFunc func(ctx context.Context) ([]domain.Municipality, error)
	ListDepartmentsFunc    func(ctx context.Context) ([]domain.Department, error)
}

// NewMockGeoRepository creates a new MockGeoRepository
func NewMockGeoRepository() *MockGeoRepository {
	return &MockGeoRepository{}
}

func (m *MockGeoRepository) ListMunicipalities(ctx context.Context) ([]domain.Municipality, error) {
	if m.ListMunicipalitiesFunc != nil {
		return m.ListMunicipalitiesFunc(ctx)
	}
	return []domain.Municipality{}, nil
}

func (m *MockGeoRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	if m.ListDepartmentsFunc != nil {
		return m.ListDepartmentsFunc(ctx)
	}
	return []domain.Department{}, nil
}

// MockSaleRepository implements domain.SaleRepository for testing
type MockSaleRepository struct {
	CreateFunc func(ctx context.Context, sale *domain.Sale) error
	ListFunc   func(ctx context.Context) ([]domain.Sale, error)
}

// NewMockSaleRepository creates a new MockSaleRepository
func NewMockSaleRepository() *MockSaleRepository {
	return &MockSaleRepository{}
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sale)
	}
	return nil
}

func (m *MockSaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Sale{}, nil
}

// Compile-time interface compliance verification
var (
	_ domain.ProductRepository     = (*MockProductRepository)(nil)
	_ domain.ProductLineRepository = (*MockProductLineRepository)(nil)
	_ domain.GeoRepository         = (*MockGeoRepository)(nil)
	_ domain.SaleRepository        = (*MockSaleRepository)(nil)
)
