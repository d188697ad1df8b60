package libemit

import (
	"slices"
	"sort"
	"sync"
)

// Emitter maps event names to ordered lists of handlers and invokes them synchronously.
//
// Handlers run in registration order. Each Dispatch iterates over a snapshot of the handler list taken when it
// starts, so handlers bound or removed while a dispatch is running only take effect from the next dispatch. The
// internal lock is never held while a handler runs; handlers are free to call back into the Emitter.
type Emitter struct {
	handlers map[string][]*Handler
	lock     sync.RWMutex
	logger   Logger
	metrics  *Metrics
	initial  []Bindings
}

// New creates an Emitter and applies the given options. Bindings passed through WithBindings are registered
// after every other option has been applied.
func New(opts ...Option) *Emitter {
	e := &Emitter{
		handlers: make(map[string][]*Handler),
		logger:   NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.logger = e.logger.WithField("type", "emitter")

	for _, b := range e.initial {
		e.BindMap(b)
	}
	e.initial = nil

	return e
}

// On registers handlers. It accepts two shapes:
//
//	e.On("click", h1, h2)                      // appends h1 then h2 to "click"
//	e.On(Bindings{"add": {h1}, "sub": {h2}})   // same as BindMap
//
// A map[string]*Handler is accepted as a map as well. Handlers passed along a map are logged and ignored. Any
// other target is logged and ignored.
func (e *Emitter) On(target any, handlers ...*Handler) *Emitter {
	switch t := target.(type) {
	case string:
		for _, h := range handlers {
			e.BindOne(t, h)
		}
	case Bindings:
		e.warnIgnored(target, handlers)
		e.BindMap(t)
	case map[string][]*Handler:
		e.warnIgnored(target, handlers)
		e.BindMap(t)
	case map[string]*Handler:
		e.warnIgnored(target, handlers)
		b := make(Bindings, len(t))
		for event, h := range t {
			b[event] = []*Handler{h}
		}
		e.BindMap(b)
	default:
		e.logger.Warnf("cannot bind target of type %T", target)
	}
	return e
}

func (e *Emitter) warnIgnored(target any, handlers []*Handler) {
	if len(handlers) > 0 {
		e.logger.Warnf("ignoring %d handler(s) passed along a %T", len(handlers), target)
	}
}

// BindOne appends h to the handlers of event. The same handler may be bound several times and is then invoked
// once per binding. A nil handler is accepted and makes dispatch fail with ErrNotCallable.
func (e *Emitter) BindOne(event string, h *Handler) *Emitter {
	e.lock.Lock()
	e.handlers[event] = append(e.handlers[event], h)
	e.lock.Unlock()

	e.logger.WithField("event", event).Debugf("bound handler %s", h.ID())
	return e
}

// BindMap calls BindOne for every handler in b. Events are visited in lexical order.
func (e *Emitter) BindMap(b Bindings) *Emitter {
	events := make([]string, 0, len(b))
	for event := range b {
		events = append(events, event)
	}
	sort.Strings(events)

	for _, event := range events {
		for _, h := range b[event] {
			e.BindOne(event, h)
		}
	}
	return e
}

// Dispatch invokes every handler bound to event with args. Receiver-aware handlers observe a nil receiver.
// Dispatching an event nobody listens to is a no-op.
//
// Dispatch returns an error rather than the Emitter, so it cannot be chained. The first handler that fails
// aborts the dispatch; its error is returned wrapped in a *HandlerError. Panics are not recovered.
func (e *Emitter) Dispatch(event string, args ...any) error {
	return e.dispatch(nil, event, args)
}

// DispatchWith is like Dispatch, but handlers created with Method observe recv as their receiver. Handlers
// created with Func ignore it.
func (e *Emitter) DispatchWith(recv any, event string, args ...any) error {
	return e.dispatch(recv, event, args)
}

func (e *Emitter) dispatch(recv any, event string, args []any) error {
	e.lock.RLock()
	handlers, found := e.handlers[event]
	handlers = slices.Clone(handlers)
	e.lock.RUnlock()

	if !found {
		return nil
	}

	e.metrics.dispatched(event)

	for _, h := range handlers {
		e.metrics.invoked(event)

		if err := h.invoke(recv, args); err != nil {
			e.metrics.failed(event)
			e.logger.
				WithField("event", event).
				WithField("handler", h.ID()).
				Errorf("handler failed, aborting dispatch: %s", err)
			return wrapHandlerError(err, event, h)
		}
	}
	return nil
}

// Off removes handlers from event. Without handlers, every handler of event is removed. Otherwise every
// occurrence of each given handler is removed and the others keep their order. Removing unknown handlers or
// from unknown events is a no-op.
func (e *Emitter) Off(event string, handlers ...*Handler) *Emitter {
	e.lock.Lock()
	current := e.handlers[event]
	kept := make([]*Handler, 0, len(current))
	if len(handlers) > 0 {
		for _, h := range current {
			if !slices.Contains(handlers, h) {
				kept = append(kept, h)
			}
		}
	}
	e.handlers[event] = kept
	e.lock.Unlock()

	e.logger.WithField("event", event).Debugf("removed %d handler(s)", len(current)-len(kept))
	return e
}

// HasEvent reports whether event has at least one handler bound.
func (e *Emitter) HasEvent(event string) bool {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.handlers[event]) > 0
}

// Handlers returns a copy of the handlers bound to event, in dispatch order.
func (e *Emitter) Handlers(event string) []*Handler {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return slices.Clone(e.handlers[event])
}

// EventNames returns the sorted names of the events with at least one handler.
func (e *Emitter) EventNames() []string {
	e.lock.RLock()
	defer e.lock.RUnlock()

	names := make([]string, 0, len(e.handlers))
	for event, handlers := range e.handlers {
		if len(handlers) > 0 {
			names = append(names, event)
		}
	}
	sort.Strings(names)
	return names
}

// Reset drops every event and every handler reference.
func (e *Emitter) Reset() *Emitter {
	e.lock.Lock()
	e.handlers = make(map[string][]*Handler)
	e.lock.Unlock()

	e.logger.Debug("reset")
	return e
}
