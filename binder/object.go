package binder

import "sort"

// BehaviorKey identifies a behavior recorded on an Object.
//
// Keys are typically package-level constants:
//
//	const (
//	  KeyTellMaterial binder.BehaviorKey = "tellMaterial"
//	  KeySayName      binder.BehaviorKey = "sayName"
//	)
type BehaviorKey string

// Key converts a string into a BehaviorKey.
func Key(name string) BehaviorKey { return BehaviorKey(name) }

// Entry is one recorded behavior: the handler handed out to call sites and the
// strategy that produced it.
type Entry struct {
	Handler  Handler
	Strategy Strategy
}

// Object pairs a constructed value with a table of its behaviors.
//
// Types that mix styles (a capturing field next to an ordinary method) need to
// know, per behavior, whether a detached call is safe. The table records that.
type Object[T any] struct {
	Val       *T
	Behaviors map[BehaviorKey]Entry
}

// Init constructs an Object by calling ctor and initializing the behavior table.
func Init[T any](ctor func() *T) *Object[T] {
	return &Object[T]{Val: ctor(), Behaviors: make(map[BehaviorKey]Entry)}
}

// Value returns the constructed value pointer.
func (o *Object[T]) Value() *T { return o.Val }

// Attacher records a behavior on an Object and returns an error if it cannot.
type Attacher[T any] func(*Object[T]) error

// With applies a single attacher. A nil attacher is a no-op.
func (o *Object[T]) With(att Attacher[T]) (*Object[T], error) {
	if att == nil {
		return o, nil
	}
	if err := att(o); err != nil {
		return o, err
	}
	return o, nil
}

// WithAll applies attachers in order and stops at the first error.
func (o *Object[T]) WithAll(atts ...Attacher[T]) (*Object[T], error) {
	for _, att := range atts {
		if _, err := o.With(att); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Attaching builds an Attacher that records the handler returned by build under key.
//
// build receives the object's value; it decides how (or whether) to bind it.
//
// The returned attacher fails if:
//   - the target object (or its Val) is nil (ErrNilTarget)
//   - build is nil or returns a nil handler (NilHandlerError)
//   - key is already recorded (DuplicateBehaviorError)
func Attaching[T any](key BehaviorKey, strategy Strategy, build func(self *T) Handler) Attacher[T] {
	return func(o *Object[T]) error {
		if o == nil || o.Val == nil {
			return ErrNilTarget
		}
		if build == nil {
			return NilHandlerError{Key: key}
		}
		if o.Behaviors == nil {
			o.Behaviors = make(map[BehaviorKey]Entry)
		}
		if _, exists := o.Behaviors[key]; exists {
			return DuplicateBehaviorError{Key: key}
		}
		h := build(o.Val)
		if h == nil {
			return NilHandlerError{Key: key}
		}
		o.Behaviors[key] = Entry{Handler: h, Strategy: strategy}
		return nil
	}
}

// Has reports whether a behavior is recorded under key.
func (o *Object[T]) Has(key BehaviorKey) bool {
	if o == nil || o.Behaviors == nil {
		return false
	}
	_, ok := o.Behaviors[key]
	return ok
}

// StrategyOf returns the strategy recorded for key.
func (o *Object[T]) StrategyOf(key BehaviorKey) (Strategy, bool) {
	if o == nil || o.Behaviors == nil {
		return StrategyNone, false
	}
	e, ok := o.Behaviors[key]
	return e.Strategy, ok
}

// Handler returns the handler recorded for key.
func (o *Object[T]) Handler(key BehaviorKey) (Handler, bool) {
	if o == nil || o.Behaviors == nil {
		return nil, false
	}
	e, ok := o.Behaviors[key]
	return e.Handler, ok
}

// TryHandler is Handler with a MissingBehaviorError instead of a bool.
func (o *Object[T]) TryHandler(key BehaviorKey) (Handler, error) {
	h, ok := o.Handler(key)
	if !ok {
		return nil, MissingBehaviorError{Key: key}
	}
	return h, nil
}

// MustHandler returns the handler recorded for key or panics.
func (o *Object[T]) MustHandler(key BehaviorKey) Handler {
	h, err := o.TryHandler(key)
	if err != nil {
		panic(err)
	}
	return h
}

// Keys returns the recorded behavior keys in sorted order.
func (o *Object[T]) Keys() []BehaviorKey {
	if o == nil {
		return nil
	}
	keys := make([]BehaviorKey, 0, len(o.Behaviors))
	for k := range o.Behaviors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clone returns a shallow copy. Val is shared; the behavior table is copied so
// further attaching does not touch the original.
func (o *Object[T]) Clone() *Object[T] {
	if o == nil {
		return nil
	}
	cp := &Object[T]{Val: o.Val, Behaviors: make(map[BehaviorKey]Entry, len(o.Behaviors))}
	for k, v := range o.Behaviors {
		cp.Behaviors[k] = v
	}
	return cp
}
