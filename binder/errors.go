package binder

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrUndefinedReceiver is matched (errors.Is) by every UndefinedReceiverError.
	ErrUndefinedReceiver = errors.New("binder: undefined receiver")

	// ErrNilTarget is returned when an attacher is applied to a nil Object
	// or an Object with a nil Val.
	ErrNilTarget = errors.New("binder: nil target object")
)

// UndefinedReceiverError is returned when a behavior reads a field through a
// receiver that was never bound.
//
// It is raised at the point of field access and is not recoverable without
// re-binding the behavior.
type UndefinedReceiverError struct {
	// Behavior is the name the handler was built with.
	Behavior string

	// Receiver is the dynamic type of the context the handler was invoked with,
	// or "nil".
	Receiver string
}

// Error implements the error interface.
func (e UndefinedReceiverError) Error() string {
	// Example: binder: undefined receiver for "sayName" (got *dispatch.Element)
	return "binder: undefined receiver for " + strconv.Quote(e.Behavior) + " (got " + e.Receiver + ")"
}

// Is reports whether target is ErrUndefinedReceiver.
func (e UndefinedReceiverError) Is(target error) bool { return target == ErrUndefinedReceiver }

// DuplicateBehaviorError is returned when an attacher registers a behavior
// under a key that already exists on the target Object.
type DuplicateBehaviorError struct{ Key BehaviorKey }

// Error implements the error interface.
func (e DuplicateBehaviorError) Error() string {
	return "binder: duplicate behavior key " + strconv.Quote(string(e.Key))
}

// MissingBehaviorError is returned by TryHandler when no behavior is recorded
// under the key.
type MissingBehaviorError struct{ Key BehaviorKey }

// Error implements the error interface.
func (e MissingBehaviorError) Error() string {
	return "binder: behavior " + strconv.Quote(string(e.Key)) + " missing"
}

// NilHandlerError indicates that an attacher produced a nil handler for a key.
type NilHandlerError struct{ Key BehaviorKey }

// Error implements the error interface.
func (e NilHandlerError) Error() string {
	return "binder: nil handler for key " + strconv.Quote(string(e.Key))
}

// receiverName describes the receiver context for UndefinedReceiverError.
func receiverName(this any) string {
	if this == nil {
		return "nil"
	}
	return reflect.TypeOf(this).String()
}
