package notify

import (
	"context"
	"log"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

// LogNotifier writes sale events to the process log. It is the default
// sink when no notification chat is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifySale(ctx context.Context, sale domain.SaleRecorded) error {
	log.Printf("sale %s: %s sold %q from %s, %d left", sale.ID, sale.Seller, sale.Product, sale.Warehouse, sale.Remaining)
	return nil
}
