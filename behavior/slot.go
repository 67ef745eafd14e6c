package behavior

// Slot holds at most one value. Composites keep their owned children in
// slots so a child is either held or handed off, never aliased.
type Slot[T any] struct {
	v    T
	full bool
}

// NewSlot returns a slot holding v.
func NewSlot[T any](v T) Slot[T] {
	return Slot[T]{v: v, full: true}
}

func (s *Slot[T]) Get() (T, bool) {
	return s.v, s.full
}

// Put stores v, dropping any previous value.
func (s *Slot[T]) Put(v T) {
	s.v = v
	s.full = true
}

// Take empties the slot and returns what it held.
func (s *Slot[T]) Take() (T, bool) {
	v, ok := s.v, s.full
	var zero T
	s.v = zero
	s.full = false
	return v, ok
}

// Swap stores v and returns the previous value.
func (s *Slot[T]) Swap(v T) (T, bool) {
	old, ok := s.v, s.full
	s.v = v
	s.full = true
	return old, ok
}

func (s *Slot[T]) Empty() bool { return !s.full }
