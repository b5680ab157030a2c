package service

import "testing"

func TestAccessPolicy_Membership(t *testing.T) {
	p := NewAccessPolicy([]string{"@seller"}, []string{"@admin"})

	if !p.CanSell("@seller") {
		t.Error("@seller must be allowed to sell")
	}
	if p.CanReset("@seller") {
		t.Error("@seller must not be allowed to reset")
	}
	if !p.CanSell("@admin") {
		t.Error("reset permission must imply sell permission")
	}
	if !p.CanReset("@admin") {
		t.Error("@admin must be allowed to reset")
	}
	if p.CanSell("@stranger") || p.CanReset("@stranger") {
		t.Error("@stranger must be denied everything")
	}
}

func TestAccessPolicy_EmptyIdentity(t *testing.T) {
	p := NewAccessPolicy([]string{""}, []string{""})

	// Even a misconfigured empty entry never authorizes a missing handle.
	if p.CanSell("") {
		t.Error("empty identity must never sell")
	}
	if p.CanReset("") {
		t.Error("empty identity must never reset")
	}
}
