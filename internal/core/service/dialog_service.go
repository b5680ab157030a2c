package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
	"github.com/puffplace74/warehouse-bot/internal/port"
)

// ReplyKind names the screen the transport should render next.
type ReplyKind int

const (
	ReplyMainMenu ReplyKind = iota
	ReplyWarehouseMenu
	ReplyStockView
	ReplyProductList
	ReplyConfirmPrompt
	ReplySaleDone
	ReplySaleFailed
	ReplyCancelled
	ReplyResetDone
)

// Reply is the structured outcome of one dialog step. Rendering it
// into message text and buttons is the transport adapter's job.
type Reply struct {
	Kind      ReplyKind
	Mode      domain.Mode
	Warehouse domain.Warehouse
	Products  domain.ProductList
	Product   string
	Index     int
	Quantity  int
	CanReset  bool
}

// DialogService is the per-user conversation state machine. Actions
// carry their full context on the wire and everything is re-derived
// from the store at resolution time, so a stale or missing session can
// never cause a wrong decrement; the session table records progress
// and catches a product list that shifted under a pending confirmation.
type DialogService struct {
	store    port.InventoryRepository
	sessions port.SessionRepository
	policy   *AccessPolicy
	sales    *SaleService
}

func NewDialogService(store port.InventoryRepository, sessions port.SessionRepository, policy *AccessPolicy, sales *SaleService) *DialogService {
	return &DialogService{store: store, sessions: sessions, policy: policy, sales: sales}
}

// Handle advances the user's dialog by one action. Recoverable
// failures come back as a taxonomy error plus the Reply for the screen
// the user lands on; the session is always left in a well-defined
// state.
func (d *DialogService) Handle(ctx context.Context, identity string, act domain.Action) (Reply, error) {
	switch act.Kind {
	case domain.ActionMainMenu:
		d.clearSession(ctx, identity)
		return Reply{Kind: ReplyMainMenu}, nil

	case domain.ActionViewMenu:
		return Reply{Kind: ReplyWarehouseMenu, Mode: domain.ModeView}, nil

	case domain.ActionSalesMenu:
		return d.salesMenu(identity)

	case domain.ActionWarehouseMenu:
		if act.Mode == domain.ModeSell {
			return d.salesMenu(identity)
		}
		return Reply{Kind: ReplyWarehouseMenu, Mode: domain.ModeView}, nil

	case domain.ActionWarehouse:
		return d.handleWarehouse(ctx, identity, act)

	case domain.ActionProduct:
		return d.handleProduct(ctx, identity, act)

	case domain.ActionConfirm:
		return d.handleConfirm(ctx, identity, act)

	case domain.ActionReset:
		return d.handleReset(ctx, identity)
	}

	return Reply{Kind: ReplyMainMenu}, fmt.Errorf("%w: unhandled action kind %d", domain.ErrInvalidSelection, act.Kind)
}

// salesMenu gates entry into the sales flow. Authorization is checked
// here and again at every later privileged step.
func (d *DialogService) salesMenu(identity string) (Reply, error) {
	if !d.policy.CanSell(identity) {
		return Reply{Kind: ReplyMainMenu}, fmt.Errorf("%w: %q may not sell", domain.ErrUnauthorized, identity)
	}
	return Reply{Kind: ReplyWarehouseMenu, Mode: domain.ModeSell, CanReset: d.policy.CanReset(identity)}, nil
}

func (d *DialogService) handleWarehouse(ctx context.Context, identity string, act domain.Action) (Reply, error) {
	if act.Mode == domain.ModeSell && !d.policy.CanSell(identity) {
		return Reply{Kind: ReplyMainMenu}, fmt.Errorf("%w: %q may not sell", domain.ErrUnauthorized, identity)
	}

	products, err := d.store.Products(ctx, act.Warehouse)
	if err != nil {
		return Reply{Kind: ReplyWarehouseMenu, Mode: act.Mode}, err
	}

	d.putSession(ctx, identity, domain.Session{
		Step:      domain.StepWarehouseChosen,
		Mode:      act.Mode,
		Warehouse: act.Warehouse,
	})

	if act.Mode == domain.ModeView {
		return Reply{Kind: ReplyStockView, Mode: act.Mode, Warehouse: act.Warehouse, Products: products}, nil
	}
	return Reply{Kind: ReplyProductList, Mode: act.Mode, Warehouse: act.Warehouse, Products: products}, nil
}

func (d *DialogService) handleProduct(ctx context.Context, identity string, act domain.Action) (Reply, error) {
	products, err := d.store.Products(ctx, act.Warehouse)
	if err != nil {
		return Reply{Kind: ReplyWarehouseMenu, Mode: domain.ModeSell}, err
	}

	rec, err := products.At(act.Index)
	if err != nil {
		// Failed resolution leaves the user on the product list,
		// session untouched.
		return Reply{Kind: ReplyProductList, Mode: domain.ModeSell, Warehouse: act.Warehouse, Products: products}, err
	}

	// Choosing a product moves straight to the pending confirmation:
	// a prompt always precedes commit.
	d.putSession(ctx, identity, domain.Session{
		Step:      domain.StepConfirmPending,
		Mode:      domain.ModeSell,
		Warehouse: act.Warehouse,
		Product:   rec.Name,
	})

	return Reply{
		Kind:      ReplyConfirmPrompt,
		Mode:      domain.ModeSell,
		Warehouse: act.Warehouse,
		Product:   rec.Name,
		Index:     act.Index,
		Quantity:  rec.Quantity,
	}, nil
}

func (d *DialogService) handleConfirm(ctx context.Context, identity string, act domain.Action) (Reply, error) {
	products, err := d.store.Products(ctx, act.Warehouse)
	if err != nil {
		return Reply{Kind: ReplyWarehouseMenu, Mode: domain.ModeSell}, err
	}

	rec, err := products.At(act.Index)
	if err != nil {
		return Reply{Kind: ReplyProductList, Mode: domain.ModeSell, Warehouse: act.Warehouse, Products: products}, err
	}

	// If a pending session disagrees with the freshly resolved product,
	// the list shifted between presentation and resolution.
	if prev, ok, _ := d.sessions.Get(ctx, identity); ok &&
		prev.Step == domain.StepConfirmPending &&
		prev.Warehouse == act.Warehouse &&
		prev.Product != rec.Name {
		return Reply{Kind: ReplyProductList, Mode: domain.ModeSell, Warehouse: act.Warehouse, Products: products},
			fmt.Errorf("%w: product list changed, %q is now at index %d", domain.ErrInvalidSelection, rec.Name, act.Index)
	}

	if !act.Approved {
		// Cancel is always safe; no side effects.
		d.clearSession(ctx, identity)
		return Reply{Kind: ReplyCancelled, Mode: domain.ModeSell, Warehouse: act.Warehouse}, nil
	}

	sale, err := d.sales.Sell(ctx, identity, act.Warehouse, rec.Name)
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			// Commit blocked, nothing changed; the confirmation stays pending.
			return Reply{
				Kind:      ReplyConfirmPrompt,
				Mode:      domain.ModeSell,
				Warehouse: act.Warehouse,
				Product:   rec.Name,
				Index:     act.Index,
				Quantity:  rec.Quantity,
			}, err
		}
		d.clearSession(ctx, identity)
		return Reply{Kind: ReplySaleFailed, Mode: domain.ModeSell, Warehouse: act.Warehouse, Product: rec.Name}, err
	}

	d.clearSession(ctx, identity)
	return Reply{
		Kind:      ReplySaleDone,
		Mode:      domain.ModeSell,
		Warehouse: act.Warehouse,
		Product:   sale.Product,
		Quantity:  sale.Remaining,
	}, nil
}

func (d *DialogService) handleReset(ctx context.Context, identity string) (Reply, error) {
	if !d.policy.CanReset(identity) {
		return Reply{Kind: ReplyWarehouseMenu, Mode: domain.ModeSell},
			fmt.Errorf("%w: %q may not reset", domain.ErrUnauthorized, identity)
	}
	if err := d.store.ResetToDefault(ctx); err != nil {
		return Reply{Kind: ReplyWarehouseMenu, Mode: domain.ModeSell, CanReset: true}, err
	}
	return Reply{Kind: ReplyResetDone, CanReset: true}, nil
}

// Session writes are UX bookkeeping; a failing session backend must
// never block the dialog.
func (d *DialogService) putSession(ctx context.Context, identity string, sess domain.Session) {
	if err := d.sessions.Put(ctx, identity, sess); err != nil {
		log.Printf("session put for %q failed: %v", identity, err)
	}
}

func (d *DialogService) clearSession(ctx context.Context, identity string) {
	if err := d.sessions.Clear(ctx, identity); err != nil {
		log.Printf("session clear for %q failed: %v", identity, err)
	}
}
