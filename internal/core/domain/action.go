package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode distinguishes the read-only stock view from the sales flow.
type Mode string

const (
	ModeView Mode = "view"
	ModeSell Mode = "sales"
)

func parseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeView, ModeSell:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidSelection, s)
	}
}

// ActionKind tags the variants of a decoded selection action.
type ActionKind int

const (
	ActionMainMenu ActionKind = iota
	ActionViewMenu
	ActionSalesMenu
	ActionWarehouseMenu // "back to warehouse selection" for a mode
	ActionWarehouse
	ActionProduct
	ActionConfirm
	ActionReset
)

// Action is the decoded form of a callback payload. Which fields are
// meaningful depends on Kind: Warehouse for ActionWarehouse and beyond,
// Index for product/confirm, Approved for confirm only.
type Action struct {
	Kind      ActionKind
	Mode      Mode
	Warehouse Warehouse
	Index     int
	Approved  bool
}

// Wire grammar, kept compatible with the historical callback data:
//
//	view_stock | sales_menu | back_to_main | reset_data
//	back_to_warehouse_selection_{view|sales}
//	warehouse_{view|sales}_{warehouse}
//	product_{warehouse}_{index}
//	confirm_{warehouse}_{index}_{yes|no}
const (
	tokenViewMenu      = "view_stock"
	tokenSalesMenu     = "sales_menu"
	tokenMainMenu      = "back_to_main"
	tokenReset         = "reset_data"
	prefixWarehouseSel = "back_to_warehouse_selection_"
	prefixWarehouse    = "warehouse_"
	prefixProduct      = "product_"
	prefixConfirm      = "confirm_"
)

// DecodeAction parses a callback payload, validating every field.
// Anything malformed yields ErrInvalidSelection, never a panic.
func DecodeAction(data string) (Action, error) {
	switch data {
	case tokenViewMenu:
		return Action{Kind: ActionViewMenu, Mode: ModeView}, nil
	case tokenSalesMenu:
		return Action{Kind: ActionSalesMenu, Mode: ModeSell}, nil
	case tokenMainMenu:
		return Action{Kind: ActionMainMenu}, nil
	case tokenReset:
		return Action{Kind: ActionReset}, nil
	}

	switch {
	case strings.HasPrefix(data, prefixWarehouseSel):
		mode, err := parseMode(strings.TrimPrefix(data, prefixWarehouseSel))
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionWarehouseMenu, Mode: mode}, nil

	case strings.HasPrefix(data, prefixWarehouse):
		parts := strings.Split(strings.TrimPrefix(data, prefixWarehouse), "_")
		if len(parts) != 2 {
			return Action{}, fmt.Errorf("%w: malformed warehouse action %q", ErrInvalidSelection, data)
		}
		mode, err := parseMode(parts[0])
		if err != nil {
			return Action{}, err
		}
		w, err := ParseWarehouse(parts[1])
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionWarehouse, Mode: mode, Warehouse: w}, nil

	case strings.HasPrefix(data, prefixProduct):
		parts := strings.Split(strings.TrimPrefix(data, prefixProduct), "_")
		if len(parts) != 2 {
			return Action{}, fmt.Errorf("%w: malformed product action %q", ErrInvalidSelection, data)
		}
		w, err := ParseWarehouse(parts[0])
		if err != nil {
			return Action{}, err
		}
		idx, err := parseIndex(parts[1])
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionProduct, Mode: ModeSell, Warehouse: w, Index: idx}, nil

	case strings.HasPrefix(data, prefixConfirm):
		parts := strings.Split(strings.TrimPrefix(data, prefixConfirm), "_")
		if len(parts) != 3 {
			return Action{}, fmt.Errorf("%w: malformed confirm action %q", ErrInvalidSelection, data)
		}
		w, err := ParseWarehouse(parts[0])
		if err != nil {
			return Action{}, err
		}
		idx, err := parseIndex(parts[1])
		if err != nil {
			return Action{}, err
		}
		var approved bool
		switch parts[2] {
		case "yes":
			approved = true
		case "no":
			approved = false
		default:
			return Action{}, fmt.Errorf("%w: malformed decision %q", ErrInvalidSelection, parts[2])
		}
		return Action{Kind: ActionConfirm, Mode: ModeSell, Warehouse: w, Index: idx, Approved: approved}, nil
	}

	return Action{}, fmt.Errorf("%w: unknown action %q", ErrInvalidSelection, data)
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad index %q", ErrInvalidSelection, s)
	}
	return n, nil
}

// Encode renders the action back into its wire form. Decode(a.Encode())
// round-trips for every well-formed action.
func (a Action) Encode() string {
	switch a.Kind {
	case ActionViewMenu:
		return tokenViewMenu
	case ActionSalesMenu:
		return tokenSalesMenu
	case ActionMainMenu:
		return tokenMainMenu
	case ActionReset:
		return tokenReset
	case ActionWarehouseMenu:
		return prefixWarehouseSel + string(a.Mode)
	case ActionWarehouse:
		return prefixWarehouse + string(a.Mode) + "_" + string(a.Warehouse)
	case ActionProduct:
		return prefixProduct + string(a.Warehouse) + "_" + strconv.Itoa(a.Index)
	case ActionConfirm:
		decision := "no"
		if a.Approved {
			decision = "yes"
		}
		return prefixConfirm + string(a.Warehouse) + "_" + strconv.Itoa(a.Index) + "_" + decision
	}
	return ""
}
