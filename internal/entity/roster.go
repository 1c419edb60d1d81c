package entity

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// Roster is an ordered list of the units on one side.
type Roster struct {
	units []*Unit
}

// NewRoster creates a roster holding units in the given order.
func NewRoster(units ...*Unit) *Roster {
	r := &Roster{}
	r.units = append(r.units, units...)
	return r
}

// Add appends u.
func (r *Roster) Add(u *Unit) {
	r.units = append(r.units, u)
}

// Units returns the roster in order. The slice must not be modified.
func (r *Roster) Units() []*Unit { return r.units }

// Len returns the number of units.
func (r *Roster) Len() int { return len(r.units) }

// Get returns the unit at index i, or nil when out of range.
func (r *Roster) Get(i int) *Unit {
	if i < 0 || i >= len(r.units) {
		return nil
	}
	return r.units[i]
}

// First returns the first unit, or nil when empty.
func (r *Roster) First() *Unit {
	return r.Get(0)
}

// Find returns the unit with the given handle, or nil.
func (r *Roster) Find(id uuid.UUID) *Unit {
	for _, u := range r.units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// Contains reports whether a unit with the given handle is on the roster.
func (r *Roster) Contains(id uuid.UUID) bool {
	return r.Find(id) != nil
}

// IndexOf returns the position of the unit with the given handle, or -1.
func (r *Roster) IndexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.units, func(u *Unit) bool { return u.ID == id })
}

// RemoveDead drops every unit with no HP left, keeping the order of the rest,
// and returns the removed units.
func (r *Roster) RemoveDead() []*Unit {
	var dead []*Unit
	alive := r.units[:0]
	for _, u := range r.units {
		if u.IsAlive() {
			alive = append(alive, u)
		} else {
			dead = append(dead, u)
		}
	}
	for i := len(alive); i < len(r.units); i++ {
		r.units[i] = nil
	}
	r.units = alive
	return dead
}

// Sort orders the roster by status (see Compare). Equal units keep their
// relative order.
func (r *Roster) Sort() {
	slices.SortStableFunc(r.units, Compare)
}

// Compare is the status order: lowest HP first, then by name.
func Compare(a, b *Unit) int {
	if c := cmp.Compare(a.attrs.HP(), b.attrs.HP()); c != 0 {
		return c
	}
	return cmp.Compare(a.attrs.Name, b.attrs.Name)
}
