package port

import (
	"context"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

type InventoryRepository interface {
	// Products returns the warehouse's stock as an ordered snapshot.
	// The order is the addressing basis for selection indexes.
	Products(ctx context.Context, w domain.Warehouse) (domain.ProductList, error)

	// Quantity returns the current count, or domain.ErrUnknownProduct.
	Quantity(ctx context.Context, w domain.Warehouse, product string) (int, error)

	// Decrement atomically reduces a quantity by one and persists the
	// new state, returning the remaining count. It fails with
	// domain.ErrOutOfStock at zero and domain.ErrUnknownProduct for a
	// missing key; a persistence failure rolls the decrement back.
	Decrement(ctx context.Context, w domain.Warehouse, product string) (int, error)

	// ResetToDefault replaces all stock with the built-in snapshot and
	// persists it. Callers are expected to have passed authorization.
	ResetToDefault(ctx context.Context) error
}
