package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestProductList_At(t *testing.T) {
	list := ProductList{
		{Name: "a", Quantity: 1},
		{Name: "b", Quantity: 0},
	}

	rec, err := list.At(1)
	if err != nil {
		t.Fatalf("At(1) failed: %v", err)
	}
	if rec.Name != "b" {
		t.Errorf("At(1) = %q, want b", rec.Name)
	}

	for _, i := range []int{-1, 2, 100} {
		if _, err := list.At(i); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("At(%d): expected ErrInvalidSelection, got %v", i, err)
		}
	}
}

func TestProductList_JSONPreservesOrder(t *testing.T) {
	list := ProductList{
		{Name: "z last alphabetically first positionally", Quantity: 3},
		{Name: "a", Quantity: 0},
		{Name: "m", Quantity: 7},
	}

	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got ProductList
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got) != len(list) {
		t.Fatalf("expected %d records, got %d", len(list), len(got))
	}
	for i := range list {
		if got[i] != list[i] {
			t.Errorf("position %d: got %+v, want %+v", i, got[i], list[i])
		}
	}
}

func TestProductList_UnmarshalRejectsNegative(t *testing.T) {
	var l ProductList
	if err := json.Unmarshal([]byte(`{"a": -1}`), &l); err == nil {
		t.Error("expected error for negative quantity")
	}
}

func TestProductList_UnmarshalRejectsDuplicate(t *testing.T) {
	var l ProductList
	if err := json.Unmarshal([]byte(`{"a": 1, "a": 2}`), &l); err == nil {
		t.Error("expected error for duplicate key")
	}
}

func TestInventory_JSONRoundTrip(t *testing.T) {
	inv := DefaultInventory()

	data, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// city must come before talovka in the document.
	s := string(data)
	if strings.Index(s, `"warehouse_city"`) > strings.Index(s, `"warehouse_talovka"`) {
		t.Error("expected warehouse_city before warehouse_talovka")
	}

	var got Inventory
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, w := range Warehouses() {
		want, g := inv[w], got[w]
		if len(g) != len(want) {
			t.Fatalf("%s: expected %d products, got %d", w, len(want), len(g))
		}
		for i := range want {
			if g[i] != want[i] {
				t.Errorf("%s position %d: got %+v, want %+v", w, i, g[i], want[i])
			}
		}
	}
}

func TestInventory_UnmarshalMissingWarehouse(t *testing.T) {
	var inv Inventory
	if err := json.Unmarshal([]byte(`{"warehouse_city": {"a": 1}}`), &inv); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := inv[WarehouseCity]; !ok {
		t.Error("expected city to be present")
	}
	if _, ok := inv[WarehouseTalovka]; ok {
		t.Error("expected talovka to be absent, the store fills defaults")
	}
}

func TestParseWarehouse(t *testing.T) {
	if w, err := ParseWarehouse("city"); err != nil || w != WarehouseCity {
		t.Errorf("ParseWarehouse(city) = %v, %v", w, err)
	}
	if _, err := ParseWarehouse("moscow"); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}
