package state

// Queue is a double-ended sequence of states. The front is the current state.
type Queue struct {
	items []State
}

// NewQueue creates a queue holding the given states, front first.
func NewQueue(states ...State) *Queue {
	q := &Queue{}
	q.items = append(q.items, states...)
	return q
}

// Front returns the current state, or nil when empty.
func (q *Queue) Front() State {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// Back returns the last state, or nil when empty.
func (q *Queue) Back() State {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[len(q.items)-1]
}

// PushFront makes s the current state.
func (q *Queue) PushFront(s State) {
	q.items = append(q.items, nil)
	copy(q.items[1:], q.items)
	q.items[0] = s
}

// PushBack appends s behind every other state.
func (q *Queue) PushBack(s State) {
	q.items = append(q.items, s)
}

// PopFront removes and returns the current state, or nil when empty.
func (q *Queue) PopFront() State {
	if len(q.items) == 0 {
		return nil
	}
	s := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return s
}

// PopBack removes and returns the last state, or nil when empty.
func (q *Queue) PopBack() State {
	if len(q.items) == 0 {
		return nil
	}
	last := len(q.items) - 1
	s := q.items[last]
	q.items[last] = nil
	q.items = q.items[:last]
	return s
}

// Len returns the number of queued states.
func (q *Queue) Len() int {
	return len(q.items)
}

// Names lists the queued state names, front first.
func (q *Queue) Names() []string {
	names := make([]string, len(q.items))
	for i, s := range q.items {
		names[i] = s.Name()
	}
	return names
}
