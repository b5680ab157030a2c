package domain

import "time"

// Step is a user's position in the selection dialog.
type Step string

const (
	StepIdle            Step = "idle"
	StepWarehouseChosen Step = "warehouse_chosen"
	StepProductChosen   Step = "product_chosen"
	StepConfirmPending  Step = "confirm_pending"
)

// Session is the per-user ephemeral dialog state. It records progress
// for presentation purposes only; every commit re-derives its inputs
// from the store, so a stale session can never cause a wrong decrement.
type Session struct {
	Step      Step      `json:"step"`
	Mode      Mode      `json:"mode,omitempty"`
	Warehouse Warehouse `json:"warehouse,omitempty"`
	Product   string    `json:"product,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
