package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
	"github.com/puffplace74/warehouse-bot/internal/port"
)

// SaleService commits sales: authorization gate, store decrement,
// notification, ledger queue. The decrement is the point of no return;
// everything after it is best-effort.
type SaleService struct {
	store     port.InventoryRepository
	policy    *AccessPolicy
	notifier  port.Notifier
	saleQueue chan domain.SaleRecorded
}

func NewSaleService(store port.InventoryRepository, policy *AccessPolicy, notifier port.Notifier, queueSize int) *SaleService {
	return &SaleService{
		store:     store,
		policy:    policy,
		notifier:  notifier,
		saleQueue: make(chan domain.SaleRecorded, queueSize),
	}
}

// Sell decrements one unit and emits the sale event. The quantity is
// re-checked inside the store's critical section, so a duplicate
// confirmation of the same product fails with domain.ErrOutOfStock
// instead of double-decrementing.
func (s *SaleService) Sell(ctx context.Context, seller string, w domain.Warehouse, product string) (domain.SaleRecorded, error) {
	if !s.policy.CanSell(seller) {
		return domain.SaleRecorded{}, fmt.Errorf("%w: %q may not sell", domain.ErrUnauthorized, seller)
	}

	remaining, err := s.store.Decrement(ctx, w, product)
	if err != nil {
		return domain.SaleRecorded{}, err
	}

	sale := domain.SaleRecorded{
		ID:        uuid.NewString(),
		Seller:    seller,
		Warehouse: w,
		Product:   product,
		Remaining: remaining,
		At:        time.Now(),
	}

	if err := s.notifier.NotifySale(ctx, sale); err != nil {
		log.Printf("sale %s: notification failed: %v", sale.ID, err)
	}

	select {
	case s.saleQueue <- sale:
	default:
		log.Printf("sale %s: ledger queue full, event dropped", sale.ID)
	}

	return sale, nil
}

// Sales exposes the ledger queue for the worker pool.
func (s *SaleService) Sales() <-chan domain.SaleRecorded {
	return s.saleQueue
}

// Close stops accepting ledger events; workers drain what remains.
func (s *SaleService) Close() {
	close(s.saleQueue)
}
