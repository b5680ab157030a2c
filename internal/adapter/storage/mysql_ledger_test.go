package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/warehouse?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	return db
}

func TestSaveSale(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	ledger := NewMySQLLedger(db)

	sale := domain.SaleRecorded{
		ID:        uuid.NewString(),
		Seller:    "@ledger-test",
		Warehouse: domain.WarehouseCity,
		Product:   "Malasian x Protest - Лайм киви",
		Remaining: 2,
		At:        time.Now().Truncate(time.Second),
	}
	defer db.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, sale.ID)

	if err := ledger.SaveSale(ctx, sale); err != nil {
		t.Fatalf("save sale: %v", err)
	}

	var seller, product string
	var remaining int
	err := db.QueryRowContext(ctx,
		`SELECT seller, product, remaining FROM sales WHERE id = ?`, sale.ID,
	).Scan(&seller, &product, &remaining)
	if err != nil {
		t.Fatalf("query sale back: %v", err)
	}

	if seller != sale.Seller || product != sale.Product || remaining != sale.Remaining {
		t.Errorf("got (%s, %s, %d), want (%s, %s, %d)",
			seller, product, remaining, sale.Seller, sale.Product, sale.Remaining)
	}
}

func TestSaveSale_DuplicateID(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	ledger := NewMySQLLedger(db)

	sale := domain.SaleRecorded{
		ID:        uuid.NewString(),
		Seller:    "@ledger-test",
		Warehouse: domain.WarehouseTalovka,
		Product:   "MPAK & ЧЁ NADO - Спрайт",
		Remaining: 0,
		At:        time.Now(),
	}
	defer db.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, sale.ID)

	if err := ledger.SaveSale(ctx, sale); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := ledger.SaveSale(ctx, sale); err == nil {
		t.Error("expected duplicate primary key to fail")
	}
}
