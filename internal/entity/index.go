package entity

import "github.com/google/uuid"

// Directory resolves unit handles. Lookup returns nil for unknown handles.
type Directory interface {
	Lookup(id uuid.UUID) *Unit
}

// Index is the Directory for every unit taking part in a session.
type Index struct {
	units map[uuid.UUID]*Unit
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{units: make(map[uuid.UUID]*Unit)}
}

// Add registers u and binds its target lookups to this index.
func (x *Index) Add(u *Unit) {
	x.units[u.ID] = u
	u.Bind(x)
}

// Remove forgets the unit with the given handle. Handles still pointing at it
// resolve to nil from now on.
func (x *Index) Remove(id uuid.UUID) {
	delete(x.units, id)
}

// Lookup implements Directory.
func (x *Index) Lookup(id uuid.UUID) *Unit {
	return x.units[id]
}

// Len returns the number of registered units.
func (x *Index) Len() int {
	return len(x.units)
}

var _ Directory = (*Index)(nil)
