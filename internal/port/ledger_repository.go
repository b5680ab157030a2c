package port

import (
	"context"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

// LedgerRepository archives committed sales. Writes happen downstream
// of the decrement and never roll it back.
type LedgerRepository interface {
	SaveSale(ctx context.Context, sale domain.SaleRecorded) error
}
