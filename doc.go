// Package thisbind shows how a behavior keeps (or loses) its receiver when it is
// handed to a call site that invokes it later, with an unrelated context.
//
// The repository is organised around one idea and its four fixes:
//
//   - no binding: a detached behavior resolves its receiver from whatever the
//     call site passes, and fails with an undefined-receiver error
//   - wrap: the call site closes over the object
//   - external slot: the object is read from a single shared slot (and silently
//     replaced by the next object stored there)
//   - pre-bind: the constructor fuses the object into a handler field
//   - capture: the constructor defines the behavior as a closure field
//
// See subpackages:
//   - binder: handlers, strategies, Slot, Object behavior tables
//   - dispatch: a deferred dispatch registry (buttons and clicks)
//   - examples: Person, Dog, Cat, Fish, Weapon
//   - scene: YAML/TOML scene files wiring objects to buttons
//   - config: environment configuration
//   - cmd/thisdemo: runs a scene and prints every click
//   - cmd/bindgen: generates pre-binding constructors
package thisbind
