package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

func TestProductRepositoryGetProducts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
		AddRow("prod_1", "Ikat Saree", "4999", 12).
		AddRow("prod_2", "Cotton Kurti", "1599", 22)
	mock.ExpectQuery("SELECT (.+) FROM `products`").WillReturnRows(rows)

	got, err := repo.GetProducts(context.Background())
	if err != nil {
		t.Fatalf("GetProducts failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].ID != "prod_1" || got[1].Name != "Cotton Kurti" {
		t.Fatalf("unexpected rows %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
		AddRow("prod_1", "Ikat Saree", "4999", 12)
	mock.ExpectQuery("SELECT (.+) FROM `products` WHERE id = (.+)").
		WithArgs("prod_1", 1).
		WillReturnRows(rows)

	row, err := repo.GetByID(context.Background(), "prod_1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if row.Name != "Ikat Saree" {
		t.Fatalf("unexpected row %+v", row)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `products` WHERE id = (.+)").
		WithArgs("prod_missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "prod_missing"); err == nil {
		t.Fatal("expected an error for a missing row")
	}
}

func TestProductRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	// Soft delete: GORM issues an UPDATE setting deleted_at.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `products` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), "prod_1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
