package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

// Mock InventoryRepository
type mockInventory struct {
	mu    sync.Mutex
	stock map[string]int // keyed by warehouse/product
}

func newMockInventory() *mockInventory {
	return &mockInventory{stock: make(map[string]int)}
}

func (m *mockInventory) set(w domain.Warehouse, product string, qty int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stock[string(w)+"/"+product] = qty
}

func (m *mockInventory) Products(ctx context.Context, w domain.Warehouse) (domain.ProductList, error) {
	return nil, nil
}

func (m *mockInventory) Quantity(ctx context.Context, w domain.Warehouse, product string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	qty, ok := m.stock[string(w)+"/"+product]
	if !ok {
		return 0, domain.ErrUnknownProduct
	}
	return qty, nil
}

func (m *mockInventory) Decrement(ctx context.Context, w domain.Warehouse, product string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := string(w) + "/" + product
	qty, ok := m.stock[key]
	if !ok {
		return 0, domain.ErrUnknownProduct
	}
	if qty == 0 {
		return 0, domain.ErrOutOfStock
	}
	m.stock[key] = qty - 1
	return qty - 1, nil
}

func (m *mockInventory) ResetToDefault(ctx context.Context) error {
	return nil
}

// Mock Notifier
type mockNotifier struct {
	mu    sync.Mutex
	sales []domain.SaleRecorded
	err   error
}

func (m *mockNotifier) NotifySale(ctx context.Context, sale domain.SaleRecorded) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales = append(m.sales, sale)
	return m.err
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sales)
}

func TestSell_Success(t *testing.T) {
	inv := newMockInventory()
	inv.set(domain.WarehouseCity, "товар", 3)
	notifier := &mockNotifier{}
	policy := NewAccessPolicy([]string{"@seller"}, nil)
	svc := NewSaleService(inv, policy, notifier, 10)
	defer svc.Close()

	sale, err := svc.Sell(context.Background(), "@seller", domain.WarehouseCity, "товар")
	if err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if sale.Remaining != 2 {
		t.Errorf("expected remaining 2, got %d", sale.Remaining)
	}
	if sale.ID == "" {
		t.Error("expected a sale ID")
	}
	if sale.Seller != "@seller" || sale.Warehouse != domain.WarehouseCity || sale.Product != "товар" {
		t.Errorf("unexpected sale %+v", sale)
	}
	if notifier.count() != 1 {
		t.Errorf("expected 1 notification, got %d", notifier.count())
	}

	// The event must land on the ledger queue.
	queued := <-svc.Sales()
	if queued.ID != sale.ID {
		t.Errorf("queued sale %s, want %s", queued.ID, sale.ID)
	}
}

func TestSell_Unauthorized(t *testing.T) {
	inv := newMockInventory()
	inv.set(domain.WarehouseCity, "товар", 3)
	notifier := &mockNotifier{}
	policy := NewAccessPolicy([]string{"@seller"}, nil)
	svc := NewSaleService(inv, policy, notifier, 10)
	defer svc.Close()

	_, err := svc.Sell(context.Background(), "@stranger", domain.WarehouseCity, "товар")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
	if qty, _ := inv.Quantity(context.Background(), domain.WarehouseCity, "товар"); qty != 3 {
		t.Errorf("stock must be untouched, got %d", qty)
	}
	if notifier.count() != 0 {
		t.Error("no notification for a rejected sale")
	}
}

func TestSell_OutOfStock(t *testing.T) {
	inv := newMockInventory()
	inv.set(domain.WarehouseCity, "товар", 0)
	policy := NewAccessPolicy([]string{"@seller"}, nil)
	svc := NewSaleService(inv, policy, &mockNotifier{}, 10)
	defer svc.Close()

	_, err := svc.Sell(context.Background(), "@seller", domain.WarehouseCity, "товар")
	if !errors.Is(err, domain.ErrOutOfStock) {
		t.Errorf("expected ErrOutOfStock, got %v", err)
	}
}

func TestSell_NotifierFailureDoesNotUndoSale(t *testing.T) {
	inv := newMockInventory()
	inv.set(domain.WarehouseCity, "товар", 1)
	notifier := &mockNotifier{err: errors.New("telegram down")}
	policy := NewAccessPolicy([]string{"@seller"}, nil)
	svc := NewSaleService(inv, policy, notifier, 10)
	defer svc.Close()

	sale, err := svc.Sell(context.Background(), "@seller", domain.WarehouseCity, "товар")
	if err != nil {
		t.Fatalf("sale must succeed despite notifier failure: %v", err)
	}
	if sale.Remaining != 0 {
		t.Errorf("expected remaining 0, got %d", sale.Remaining)
	}
}

func TestSell_FullQueueDropsEventNotSale(t *testing.T) {
	inv := newMockInventory()
	inv.set(domain.WarehouseCity, "товар", 2)
	policy := NewAccessPolicy([]string{"@seller"}, nil)
	svc := NewSaleService(inv, policy, &mockNotifier{}, 1)
	defer svc.Close()

	if _, err := svc.Sell(context.Background(), "@seller", domain.WarehouseCity, "товар"); err != nil {
		t.Fatal(err)
	}
	// Queue is full now; the sale itself must still commit.
	if _, err := svc.Sell(context.Background(), "@seller", domain.WarehouseCity, "товар"); err != nil {
		t.Fatalf("second sale must not block on the full queue: %v", err)
	}
	if qty, _ := inv.Quantity(context.Background(), domain.WarehouseCity, "товар"); qty != 0 {
		t.Errorf("expected stock 0, got %d", qty)
	}
}
