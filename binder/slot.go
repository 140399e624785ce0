package binder

// Slot is an explicit single-slot store holding the most recently stored object.
//
// Contract: one writer, last write wins, no synchronization. Every handler built
// with Via reads the slot when it runs, so storing a second object silently
// redirects all handlers produced for the first one. Slot exists to make that
// hazard observable; prefer Wrap, Bind or Capture.
type Slot[T any] struct {
	cur *T
	gen uint64
}

// NewSlot returns an empty slot.
func NewSlot[T any]() *Slot[T] { return &Slot[T]{} }

// Store replaces the slot's object.
func (s *Slot[T]) Store(obj *T) {
	s.cur = obj
	s.gen++
}

// Load returns the current object, or UndefinedReceiverError if nothing was stored.
func (s *Slot[T]) Load() (*T, error) {
	if s == nil || s.cur == nil {
		return nil, UndefinedReceiverError{Behavior: "slot", Receiver: "nil"}
	}
	return s.cur, nil
}

// Generation returns how many times Store has been called.
func (s *Slot[T]) Generation() uint64 {
	if s == nil {
		return 0
	}
	return s.gen
}

// Via returns a handler that calls m on whatever the slot holds at invocation time.
func (s *Slot[T]) Via(name string, m Method[T]) Handler {
	return func(any) (string, error) {
		obj, err := s.Load()
		if err != nil {
			return "", UndefinedReceiverError{Behavior: name, Receiver: "nil"}
		}
		return m(obj)
	}
}
