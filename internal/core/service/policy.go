package service

// AccessPolicy holds the two role sets. Membership is checked at the
// moment a privileged transition executes, never cached from an
// earlier dialog step. Reset permission implies sell permission.
type AccessPolicy struct {
	sellers   map[string]struct{}
	resetters map[string]struct{}
}

func NewAccessPolicy(sellers, resetters []string) *AccessPolicy {
	p := &AccessPolicy{
		sellers:   make(map[string]struct{}, len(sellers)+len(resetters)),
		resetters: make(map[string]struct{}, len(resetters)),
	}
	for _, id := range sellers {
		p.sellers[id] = struct{}{}
	}
	for _, id := range resetters {
		p.sellers[id] = struct{}{}
		p.resetters[id] = struct{}{}
	}
	return p
}

// CanSell reports sell-set membership. An empty identity never passes.
func (p *AccessPolicy) CanSell(identity string) bool {
	if identity == "" {
		return false
	}
	_, ok := p.sellers[identity]
	return ok
}

// CanReset reports reset-set membership. An empty identity never passes.
func (p *AccessPolicy) CanReset(identity string) bool {
	if identity == "" {
		return false
	}
	_, ok := p.resetters[identity]
	return ok
}
