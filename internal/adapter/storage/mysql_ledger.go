package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

// MySQLLedger archives committed sales.
//
// Expected schema:
//
//	CREATE TABLE sales (
//	    id        VARCHAR(36) PRIMARY KEY,
//	    seller    VARCHAR(255) NOT NULL,
//	    warehouse VARCHAR(64)  NOT NULL,
//	    product   VARCHAR(255) NOT NULL,
//	    remaining INT          NOT NULL,
//	    sold_at   DATETIME     NOT NULL
//	);
type MySQLLedger struct {
	db *sql.DB
}

func NewMySQLLedger(db *sql.DB) *MySQLLedger {
	return &MySQLLedger{db: db}
}

func (m *MySQLLedger) SaveSale(ctx context.Context, sale domain.SaleRecorded) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO sales (id, seller, warehouse, product, remaining, sold_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sale.ID, sale.Seller, string(sale.Warehouse), sale.Product, sale.Remaining, sale.At,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}
