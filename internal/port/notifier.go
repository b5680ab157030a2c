package port

import (
	"context"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

// Notifier delivers a sale event to whoever watches sales. Delivery is
// best-effort: a failure is logged by the caller and never undoes the
// committed decrement.
type Notifier interface {
	NotifySale(ctx context.Context, sale domain.SaleRecorded) error
}
