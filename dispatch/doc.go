// Package dispatch is a small deferred dispatch registry: elements with click
// handlers.
//
// It plays the part of a UI event system. A handler is registered against an
// element id and invoked later, with the *Element as its receiver context. The
// registry has no knowledge of which object a handler belongs to, so handlers
// that were not bound beforehand lose their receiver here.
package dispatch
