package binder

import (
	"fmt"
	"strings"
)

// Method is a behavior that reads its object's fields through an explicit receiver.
type Method[T any] func(self *T) (string, error)

// Handler is the callable value handed to a deferred call site.
//
// this is whatever receiver context the call site supplies. Handlers built by
// Wrap, Bind, Capture and Slot.Via ignore it; Detach resolves its receiver from it.
type Handler func(this any) (string, error)

// Strategy names how a Handler resolves its receiver.
type Strategy int

const (
	// StrategyNone resolves the receiver from the call-site context.
	StrategyNone Strategy = iota
	// StrategyWrap closes over the object at the call site.
	StrategyWrap
	// StrategyExternal reads the object from a Slot at call time.
	StrategyExternal
	// StrategyPreBind fuses the object into the handler at construction.
	StrategyPreBind
	// StrategyCapture defines the behavior as a closure field at construction.
	StrategyCapture
)

var strategyNames = [...]string{
	StrategyNone:     "none",
	StrategyWrap:     "wrap",
	StrategyExternal: "external",
	StrategyPreBind:  "prebind",
	StrategyCapture:  "capture",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Binds reports whether the strategy survives invocation with a foreign receiver.
func (s Strategy) Binds() bool {
	return s > StrategyNone && int(s) < len(strategyNames)
}

// ParseStrategy maps a case-insensitive strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range strategyNames {
		if s == n {
			return Strategy(i), nil
		}
	}
	return StrategyNone, fmt.Errorf("binder: unknown strategy %q", name)
}

// Call invokes m directly on obj. Every strategy must reproduce its result.
func Call[T any](obj *T, m Method[T]) (string, error) {
	return m(obj)
}

// Detach returns m as a bare handler with no binding applied.
//
// The handler treats its call-site context as the receiver: anything other than
// a non-nil *T yields UndefinedReceiverError and m is never called.
func Detach[T any](name string, m Method[T]) Handler {
	return func(this any) (string, error) {
		self, ok := this.(*T)
		if !ok || self == nil {
			return "", UndefinedReceiverError{Behavior: name, Receiver: receiverName(this)}
		}
		return m(self)
	}
}

// Wrap returns a handler that calls m on obj, whatever context it is invoked with.
//
// The wrapping is owned by the call site, not by obj.
//
// Example:
//
//	reg.On("btn-tony", binder.Wrap(tony, (*examples.Person).SayName))
func Wrap[T any](obj *T, m Method[T]) Handler {
	return func(any) (string, error) {
		if obj == nil {
			return "", UndefinedReceiverError{Behavior: "wrap", Receiver: "nil"}
		}
		return m(obj)
	}
}

// Bind fuses obj into a handler for m.
//
// It is meant to be called once per instance from a constructor, with the result
// stored on the instance so later extraction of that field is already bound.
func Bind[T any](obj *T, m Method[T]) Handler {
	if obj == nil {
		return func(this any) (string, error) {
			return "", UndefinedReceiverError{Behavior: "bind", Receiver: "nil"}
		}
	}
	return func(any) (string, error) { return m(obj) }
}

// Capture adapts a closure that has already captured its object into a Handler.
func Capture(fn func() (string, error)) Handler {
	return func(any) (string, error) { return fn() }
}
