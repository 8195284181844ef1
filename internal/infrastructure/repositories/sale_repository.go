package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/drax210310/jugueteria-backend/domain"
)

// DBSale represents the database model for Sale
type DBSale struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Total     float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (DBSale) TableName() string { return "sales" }

// DBSaleItem represents the database model for SaleItem
type DBSaleItem struct {
	ID        uint    `gorm:"primaryKey"`
	SaleID    uint    `gorm:"index;not null"`
	ProductID uint    `gorm:"index;not null"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
}

func (DBSaleItem) TableName() string { return "sale_items" }

// SaleRepositoryImpl implements domain.SaleRepository using GORM.
type SaleRepositoryImpl struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewSaleRepository creates a new sale repository.
func NewSaleRepository(db *gorm.DB, timeout time.Duration) domain.SaleRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SaleRepositoryImpl{db: db, timeout: timeout}
}

// Create implements domain.SaleRepository. The sale row and all its items
// commit in one transaction; a failed item insert rolls back everything.
func (r *SaleRepositoryImpl) Create(ctx context.Context, sale *domain.Sale) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbSale := &DBSale{
			UserID: sale.UserID,
			Total:  sale.Total,
		}
		if err := tx.Create(dbSale).Error; err != nil {
			return err
		}

		for i := range sale.Items {
			item := &DBSaleItem{
				SaleID:    dbSale.ID,
				ProductID: sale.Items[i].ProductID,
				Quantity:  sale.Items[i].Quantity,
				UnitPrice: sale.Items[i].UnitPrice,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
			sale.Items[i].ID = item.ID
			sale.Items[i].SaleID = dbSale.ID
		}

		sale.ID = dbSale.ID
		sale.CreatedAt = dbSale.CreatedAt
		return nil
	})
	if err != nil {
		return storageErr("create sale", err)
	}
	return nil
}

// List implements domain.SaleRepository, newest first, items included.
func (r *SaleRepositoryImpl) List(ctx context.Context) ([]domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var dbSales []DBSale
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dbSales).Error; err != nil {
		return nil, storageErr("list sales", err)
	}
	if len(dbSales) == 0 {
		return []domain.Sale{}, nil
	}

	ids := make([]uint, 0, len(dbSales))
	for _, s := range dbSales {
		ids = append(ids, s.ID)
	}

	var dbItems []DBSaleItem
	if err := r.db.WithContext(ctx).Where("sale_id IN ?", ids).Find(&dbItems).Error; err != nil {
		return nil, storageErr("list sale items", err)
	}

	itemsBySale := make(map[uint][]domain.SaleItem, len(dbSales))
	for _, it := range dbItems {
		itemsBySale[it.SaleID] = append(itemsBySale[it.SaleID], domain.SaleItem{
			ID:        it.ID,
			SaleID:    it.SaleID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	sales := make([]domain.Sale, 0, len(dbSales))
	for _, s := range dbSales {
		sales = append(sales, domain.Sale{
			ID:        s.ID,
			UserID:    s.UserID,
			Total:     s.Total,
			Items:     itemsBySale[s.ID],
			CreatedAt: s.CreatedAt,
		})
	}
	return sales, nil
}
