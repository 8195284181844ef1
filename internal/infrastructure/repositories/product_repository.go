package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/drax210310/jugueteria-backend/domain"
)

// DBProductLine represents the database model for ProductLine
type DBProductLine struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:128;not null"`
}

func (DBProductLine) TableName() string { return "product_lines" }

// DBProduct represents the database model for Product
type DBProduct struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"index;size:128;not null"`
	Description string  `gorm:"size:1024"`
	Price       float64 `gorm:"not null"`
	Stock       int     `gorm:"not null;default:0"`
	LineID      uint    `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DBProduct) TableName() string { return "products" }

// ProductRepositoryImpl implements domain.ProductRepository using GORM.
type ProductRepositoryImpl struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB, timeout time.Duration) domain.ProductRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ProductRepositoryImpl{db: db, timeout: timeout}
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	dbProduct := &DBProduct{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		LineID:      product.LineID,
	}
	if err := r.db.WithContext(ctx).Create(dbProduct).Error; err != nil {
		return storageErr("create product", err)
	}
	product.ID = dbProduct.ID
	product.CreatedAt = dbProduct.CreatedAt
	return nil
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var row productRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.*, product_lines.name AS line_name").
		Joins("LEFT JOIN product_lines ON product_lines.id = products.line_id").
		Where("products.id = ? AND products.deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, storageErr("find product", err)
	}
	return row.toDomain(), nil
}

// List implements domain.ProductRepository, joined with the line name,
// ordered by product name.
func (r *ProductRepositoryImpl) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows []productRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.*, product_lines.name AS line_name").
		Joins("LEFT JOIN product_lines ON product_lines.id = products.line_id").
		Where("products.deleted_at IS NULL").
		Order("products.name").
		Find(&rows).Error
	if err != nil {
		return nil, storageErr("list products", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for i := range rows {
		products = append(products, *rows[i].toDomain())
	}
	return products, nil
}

// Update implements domain.ProductRepository
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&DBProduct{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"stock":       product.Stock,
		"line_id":     product.LineID,
	})
	if res.Error != nil {
		return storageErr("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete implements domain.ProductRepository (soft delete).
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&DBProduct{}, id)
	if res.Error != nil {
		return storageErr("delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// productRow is the scan target for the product/line join.
type productRow struct {
	DBProduct
	LineName string
}

func (row *productRow) toDomain() *domain.Product {
	return &domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Stock:       row.Stock,
		LineID:      row.LineID,
		LineName:    row.LineName,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// ProductLineRepositoryImpl implements domain.ProductLineRepository.
type ProductLineRepositoryImpl struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewProductLineRepository creates a new product line repository.
func NewProductLineRepository(db *gorm.DB, timeout time.Duration) domain.ProductLineRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ProductLineRepositoryImpl{db: db, timeout: timeout}
}

// List implements domain.ProductLineRepository
func (r *ProductLineRepositoryImpl) List(ctx context.Context) ([]domain.ProductLine, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows []DBProductLine
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, storageErr("list product lines", err)
	}

	lines := make([]domain.ProductLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, domain.ProductLine{ID: row.ID, Name: row.Name})
	}
	return lines, nil
}
