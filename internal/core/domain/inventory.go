package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Warehouse identifies a stock-holding location.
type Warehouse string

const (
	WarehouseCity    Warehouse = "city"
	WarehouseTalovka Warehouse = "talovka"
)

// Warehouses returns the fixed set of locations in presentation order.
// Adding a location means extending this slice and DefaultInventory.
func Warehouses() []Warehouse {
	return []Warehouse{WarehouseCity, WarehouseTalovka}
}

// ParseWarehouse validates a warehouse id coming off the wire.
func ParseWarehouse(s string) (Warehouse, error) {
	for _, w := range Warehouses() {
		if string(w) == s {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: unknown warehouse %q", ErrInvalidSelection, s)
}

// ProductRecord is a single stock position.
type ProductRecord struct {
	Name     string
	Quantity int
}

// ProductList is a warehouse's stock in stable presentation order. The
// order is significant: selection actions address products by position,
// so it must survive marshal/unmarshal round trips.
type ProductList []ProductRecord

// At resolves the product at position i, the selection-index contract.
func (l ProductList) At(i int) (ProductRecord, error) {
	if i < 0 || i >= len(l) {
		return ProductRecord{}, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSelection, i, len(l))
	}
	return l[i], nil
}

// Clone returns an independent copy safe to hand to readers.
func (l ProductList) Clone() ProductList {
	out := make(ProductList, len(l))
	copy(out, l)
	return out
}

// MarshalJSON renders the list as a JSON object in list order.
func (l ProductList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rec := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(rec.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		fmt.Fprintf(&buf, ":%d", rec.Quantity)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving key order. Duplicate
// keys and negative quantities are rejected as malformed.
func (l *ProductList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("product list: expected object, got %v", tok)
	}

	out := ProductList{}
	seen := make(map[string]bool)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name := keyTok.(string)
		if seen[name] {
			return fmt.Errorf("product list: duplicate product %q", name)
		}
		seen[name] = true

		var qty int
		if err := dec.Decode(&qty); err != nil {
			return fmt.Errorf("product list: quantity for %q: %w", name, err)
		}
		if qty < 0 {
			return fmt.Errorf("product list: negative quantity %d for %q", qty, name)
		}
		out = append(out, ProductRecord{Name: name, Quantity: qty})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*l = out
	return nil
}

// Inventory maps each warehouse to its ordered stock.
type Inventory map[Warehouse]ProductList

// Clone deep-copies the inventory.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for w, l := range inv {
		out[w] = l.Clone()
	}
	return out
}

// MarshalJSON writes warehouses in Warehouses() order so the state file
// diffs cleanly between writes.
func (inv Inventory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, w := range Warehouses() {
		l, ok := inv[w]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&buf, "%q:", fileKey(w))
		b, err := json.Marshal(l)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the state file document. Unknown top-level keys
// are ignored; warehouses absent from the document are simply left out
// of the map (the store fills them from the default snapshot).
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Inventory)
	for _, w := range Warehouses() {
		msg, ok := raw[fileKey(w)]
		if !ok {
			continue
		}
		var l ProductList
		if err := json.Unmarshal(msg, &l); err != nil {
			return fmt.Errorf("warehouse %s: %w", w, err)
		}
		out[w] = l
	}

	*inv = out
	return nil
}

// fileKey is the top-level key used in the state file, kept compatible
// with the pre-existing warehouse_data.json layout.
func fileKey(w Warehouse) string {
	return "warehouse_" + string(w)
}
