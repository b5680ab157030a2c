package storage

import (
	"context"
	"testing"
	"time"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

func TestMemorySessionStore_PutGetClear(t *testing.T) {
	s := NewMemorySessionStore(0)
	defer s.Close()
	ctx := context.Background()

	if _, ok, _ := s.Get(ctx, "@user"); ok {
		t.Error("expected no session initially")
	}

	sess := domain.Session{
		Step:      domain.StepConfirmPending,
		Mode:      domain.ModeSell,
		Warehouse: domain.WarehouseCity,
		Product:   "товар",
	}
	if err := s.Put(ctx, "@user", sess); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(ctx, "@user")
	if err != nil || !ok {
		t.Fatalf("expected session, got ok=%v err=%v", ok, err)
	}
	if got.Step != domain.StepConfirmPending || got.Product != "товар" {
		t.Errorf("unexpected session %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("Put must stamp UpdatedAt")
	}

	if err := s.Clear(ctx, "@user"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "@user"); ok {
		t.Error("expected session cleared")
	}
}

func TestMemorySessionStore_IdleEviction(t *testing.T) {
	s := NewMemorySessionStore(20 * time.Millisecond)
	defer s.Close()
	ctx := context.Background()

	if err := s.Put(ctx, "@user", domain.Session{Step: domain.StepWarehouseChosen}); err != nil {
		t.Fatal(err)
	}

	time.Sleep(50 * time.Millisecond)

	if _, ok, _ := s.Get(ctx, "@user"); ok {
		t.Error("expected idle session to be evicted")
	}
}

func TestMemorySessionStore_PutRefreshesIdleClock(t *testing.T) {
	s := NewMemorySessionStore(60 * time.Millisecond)
	defer s.Close()
	ctx := context.Background()

	s.Put(ctx, "@user", domain.Session{Step: domain.StepWarehouseChosen})
	time.Sleep(40 * time.Millisecond)
	s.Put(ctx, "@user", domain.Session{Step: domain.StepConfirmPending})
	time.Sleep(40 * time.Millisecond)

	if _, ok, _ := s.Get(ctx, "@user"); !ok {
		t.Error("refreshed session must survive a single ttl window")
	}
}
