// Package pool tracks the members created by one spawn point or room.
package pool

import (
	"github.com/automoto/gladiator/actor"
	"github.com/yohamta/donburi"
)

// EvictFunc is called for every member a pool drops. It retracts the actor
// from shared registries (world, collision space).
type EvictFunc func(a actor.Actor)

// Pool is an ordered collection of actor references. It is bookkeeping only
// and never fails. Not safe for concurrent use; the owning spawner or room
// controller is its only writer.
type Pool struct {
	members []actor.Actor
	onEvict EvictFunc
}

// New creates an empty pool. onEvict may be nil.
func New(onEvict EvictFunc) *Pool {
	return &Pool{onEvict: onEvict}
}

// Add appends a. Callers guarantee a is not already a member.
func (p *Pool) Add(a actor.Actor) {
	p.members = append(p.members, a)
}

// AddEntry adds the actor built on e.
func (p *Pool) AddEntry(e *donburi.Entry) {
	p.Add(actor.FromEntry(e))
}

// Prune drops every member that is neither alive nor visible and signals
// the eviction callback for each. Must run before Size is compared to a cap.
func (p *Pool) Prune() {
	kept := p.members[:0]
	var evicted []actor.Actor
	for _, a := range p.members {
		if !a.Alive() && !a.Visible() {
			evicted = append(evicted, a)
			continue
		}
		kept = append(kept, a)
	}
	// Clear the tail so dropped actors can be collected.
	for i := len(kept); i < len(p.members); i++ {
		p.members[i] = nil
	}
	p.members = kept

	for _, a := range evicted {
		p.evict(a)
	}
}

// Clear kills and evicts every member.
func (p *Pool) Clear() {
	members := p.members
	p.members = nil
	for _, a := range members {
		a.Kill()
		p.evict(a)
	}
}

// Size counts members without filtering.
func (p *Pool) Size() int {
	return len(p.members)
}

// Each calls fn for every member in insertion order.
func (p *Pool) Each(fn func(a actor.Actor)) {
	for _, a := range p.members {
		fn(a)
	}
}

// Alive counts members that are still alive.
func (p *Pool) Alive() int {
	n := 0
	for _, a := range p.members {
		if a.Alive() {
			n++
		}
	}
	return n
}

func (p *Pool) evict(a actor.Actor) {
	if p.onEvict != nil {
		p.onEvict(a)
	}
}
