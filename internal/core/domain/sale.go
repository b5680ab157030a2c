package domain

import "time"

// SaleRecorded is emitted once per committed decrement and consumed by
// the notifier and the sale ledger.
type SaleRecorded struct {
	ID        string
	Seller    string
	Warehouse Warehouse
	Product   string
	Remaining int
	At        time.Time
}
