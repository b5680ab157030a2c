package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

// FileAdapter is the inventory store: the full state lives in memory
// and every mutation rewrites the state file as one document. Writers
// serialize behind the mutex; readers get cloned snapshots and may be
// slightly stale, which is fine because Decrement re-checks inside the
// critical section.
type FileAdapter struct {
	mu    sync.RWMutex
	path  string
	state domain.Inventory
}

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path, state: domain.Inventory{}}
}

// Load reads the state file. An absent, unreadable or malformed file is
// replaced by the default snapshot and persisted immediately, and a
// document missing a warehouse key gets that warehouse from the
// defaults, so the on-disk copy is always valid after Load.
func (f *FileAdapter) Load(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("state file %s unreadable, resetting to defaults: %v", f.path, err)
		}
		f.state = domain.DefaultInventory()
		return f.persistLocked()
	}

	var inv domain.Inventory
	if err := json.Unmarshal(raw, &inv); err != nil {
		log.Printf("state file %s malformed, resetting to defaults: %v", f.path, err)
		f.state = domain.DefaultInventory()
		return f.persistLocked()
	}

	healed := false
	defaults := domain.DefaultInventory()
	for _, w := range domain.Warehouses() {
		if _, ok := inv[w]; !ok {
			inv[w] = defaults[w]
			healed = true
		}
	}

	f.state = inv
	if healed {
		return f.persistLocked()
	}
	return nil
}

// Flush rewrites the current state, for shutdown.
func (f *FileAdapter) Flush(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.persistLocked()
}

func (f *FileAdapter) Products(ctx context.Context, w domain.Warehouse) (domain.ProductList, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	list, ok := f.state[w]
	if !ok {
		return nil, fmt.Errorf("%w: unknown warehouse %q", domain.ErrInvalidSelection, w)
	}
	return list.Clone(), nil
}

func (f *FileAdapter) Quantity(ctx context.Context, w domain.Warehouse, product string) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, rec := range f.state[w] {
		if rec.Name == product {
			return rec.Quantity, nil
		}
	}
	return 0, fmt.Errorf("%w: %q in warehouse %s", domain.ErrUnknownProduct, product, w)
}

// Decrement performs the in-memory mutation and the file write as one
// unit: if the write fails the mutation is rolled back, so memory and
// disk never diverge.
func (f *FileAdapter) Decrement(ctx context.Context, w domain.Warehouse, product string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	list := f.state[w]
	idx := -1
	for i, rec := range list {
		if rec.Name == product {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q in warehouse %s", domain.ErrUnknownProduct, product, w)
	}
	if list[idx].Quantity == 0 {
		return 0, fmt.Errorf("%w: %q in warehouse %s", domain.ErrOutOfStock, product, w)
	}

	list[idx].Quantity--
	if err := f.persistLocked(); err != nil {
		list[idx].Quantity++
		return 0, err
	}
	return list[idx].Quantity, nil
}

func (f *FileAdapter) ResetToDefault(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev := f.state
	f.state = domain.DefaultInventory()
	if err := f.persistLocked(); err != nil {
		f.state = prev
		return err
	}
	return nil
}

// persistLocked writes the whole document via a temp file and rename,
// leaving the previous file intact on failure. Callers hold f.mu.
func (f *FileAdapter) persistLocked() error {
	data, err := json.MarshalIndent(f.state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal state: %v", domain.ErrPersistence, err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", domain.ErrPersistence, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write state: %v", domain.ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close state: %v", domain.ErrPersistence, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace state file: %v", domain.ErrPersistence, err)
	}
	return nil
}
