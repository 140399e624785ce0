package dispatch

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/tliron/commonlog"

	"github.com/sghaida/thisbind/binder"
)

// ErrHandlerPanic is returned if a handler panics during Click.
var ErrHandlerPanic = errors.New("dispatch: panic in handler")

// UnknownElementError is returned by Click for an id with no registered element.
type UnknownElementError struct{ ID string }

// Error implements the error interface.
func (e UnknownElementError) Error() string {
	return "dispatch: unknown element " + strconv.Quote(e.ID)
}

// Element is the receiver context handlers are invoked with.
type Element struct {
	ID string
}

// String implements fmt.Stringer.
func (e *Element) String() string { return "#" + e.ID }

type listener struct {
	handler binder.Handler
}

// Registry maps element ids to their handlers.
//
// It is not safe for concurrent mutation: register everything, then click.
type Registry struct {
	elements map[string]*Element
	handlers map[string][]listener
	log      commonlog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger overrides the registry logger.
func WithLogger(log commonlog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		elements: map[string]*Element{},
		handlers: map[string][]listener{},
		log:      commonlog.GetLogger("thisbind.dispatch"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// On registers h for clicks on the element id and returns the registry for chaining.
// The element is created on first use. A nil handler only creates the element.
func (r *Registry) On(id string, h binder.Handler) *Registry {
	if _, ok := r.elements[id]; !ok {
		r.elements[id] = &Element{ID: id}
	}
	if h != nil {
		r.handlers[id] = append(r.handlers[id], listener{handler: h})
	}
	return r
}

// Element returns the element registered under id.
func (r *Registry) Element(id string) (*Element, bool) {
	el, ok := r.elements[id]
	return el, ok
}

// Click invokes every handler registered for id, in registration order, with the
// element as receiver context.
//
// Each handler's output is returned in order; a failing handler contributes an
// empty string. Handler errors are joined. A panicking handler is reported as
// ErrHandlerPanic and does not stop the remaining handlers.
func (r *Registry) Click(id string) ([]string, error) {
	el, ok := r.elements[id]
	if !ok {
		r.log.Warningf("click on unknown element %q", id)
		return nil, UnknownElementError{ID: id}
	}

	ls := r.handlers[id]
	out := make([]string, 0, len(ls))
	var errs []error
	for i, l := range ls {
		line, err := invoke(l.handler, el)
		if err != nil {
			r.log.Warningf("%s handler %d: %s", el, i, err)
			errs = append(errs, err)
		} else {
			r.log.Debugf("%s handler %d: %s", el, i, line)
		}
		out = append(out, line)
	}
	return out, errors.Join(errs...)
}

// invoke calls h with el and converts panics into errors.
func invoke(h binder.Handler, el *Element) (line string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			line = ""
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, rec)
		}
	}()
	return h(el)
}

// IDs returns the registered element ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.elements))
	for id := range r.elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of handlers registered for id.
func (r *Registry) Len(id string) int {
	return len(r.handlers[id])
}
