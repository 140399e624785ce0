// Package binder produces handlers that keep reading the right object when
// they are invoked later, from a call site that knows nothing about that object.
//
// A behavior never relies on an implicit receiver. It is a Method[T], a plain
// function taking the object explicitly:
//
//	func sayName(p *Person) (string, error)
//
// What a deferred call site holds is a Handler. The call site invokes it with
// whatever receiver context it happens to have (nil, a button, some unrelated
// value). How the handler turns that context into the right *T is the
// strategy:
//
//   - Detach: no strategy. The context itself is used as the receiver; anything
//     that is not a non-nil *T fails with UndefinedReceiverError.
//   - Wrap: the call site closes over the object. The context is ignored.
//   - Slot.Via: the object is read from an external single-slot store at call
//     time. A later Store silently redirects every handler built from the slot.
//   - Bind: the constructor fuses the object into a handler and stores it on
//     the object, shadowing the unbound method.
//   - Capture: the constructor defines the behavior as a closure over the
//     object and stores it as a field.
//
// Object[T] records, per behavior, which strategy was used, so a type that
// mixes capturing fields with ordinary methods can be inspected.
//
// Import
//
//	"github.com/sghaida/thisbind/binder"
package binder
