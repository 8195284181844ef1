package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/drax210310/jugueteria-backend/domain"
)

func TestSaleRepositoryImpl_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db, time.Second)

	sale := &domain.Sale{
		UserID: 7,
		Total:  45.5,
		Items: []domain.SaleItem{
			{ProductID: 1, Quantity: 2, UnitPrice: 10.25},
			{ProductID: 2, Quantity: 1, UnitPrice: 25.0},
		},
	}
	if err := repo.Create(context.Background(), sale); err != nil {
		t.Fatalf("failed to create sale: %v", err)
	}
	if sale.ID == 0 {
		t.Fatal("create should backfill the sale ID")
	}
	for i, item := range sale.Items {
		if item.ID == 0 {
			t.Errorf("item %d: missing generated ID", i)
		}
		if item.SaleID != sale.ID {
			t.Errorf("item %d: expected sale id %d, got %d", i, sale.ID, item.SaleID)
		}
	}

	sales, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list sales: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(sales))
	}
	got := sales[0]
	if got.UserID != 7 {
		t.Errorf("expected user id 7, got %d", got.UserID)
	}
	if got.Total != 45.5 {
		t.Errorf("expected total 45.5, got %v", got.Total)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
}

func TestSaleRepositoryImpl_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db, time.Second)

	now := time.Now()
	seed := []DBSale{
		{UserID: 1, Total: 10, CreatedAt: now.Add(-time.Hour)},
		{UserID: 2, Total: 20, CreatedAt: now},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed sale: %v", err)
		}
	}

	sales, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list sales: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(sales))
	}
	if sales[0].UserID != 2 {
		t.Errorf("expected newest sale first, got user id %d", sales[0].UserID)
	}
}

func TestSaleRepositoryImpl_ListEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db, time.Second)

	sales, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list sales: %v", err)
	}
	if sales == nil {
		t.Fatal("empty listing must return an empty slice, not nil")
	}
	if len(sales) != 0 {
		t.Errorf("expected no sales, got %d", len(sales))
	}
}

func TestSaleRepositoryImpl_CreateRollsBackOnItemFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db, time.Second)

	// Break the items table so the second insert inside the
	// transaction fails after the sale row was written.
	if err := db.Migrator().DropTable(&DBSaleItem{}); err != nil {
		t.Fatalf("failed to drop sale items table: %v", err)
	}

	sale := &domain.Sale{
		UserID: 7,
		Total:  20.5,
		Items: []domain.SaleItem{
			{ProductID: 1, Quantity: 2, UnitPrice: 10.25},
		},
	}
	err := repo.Create(context.Background(), sale)
	if err == nil {
		t.Fatal("expected create to fail when item insert fails")
	}
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Errorf("expected storage error, got %v", err)
	}

	var count int64
	if err := db.Model(&DBSale{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count sales: %v", err)
	}
	if count != 0 {
		t.Errorf("expected sale row to be rolled back, found %d rows", count)
	}
}
