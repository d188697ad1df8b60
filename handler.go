package libemit

import (
	"github.com/google/uuid"
)

type (
	// HandlerFunc is a plain callback. It never observes the receiver passed to DispatchWith, the same way a
	// closure keeps whatever it captured.
	HandlerFunc func(args ...any) error

	// MethodFunc is a callback that observes the receiver passed to DispatchWith. Dispatch passes a nil receiver.
	MethodFunc func(recv any, args ...any) error

	// Handler is a registered callback. Handlers are compared by identity: keep the pointer returned by Func or
	// Method around to remove it later with Off.
	Handler struct {
		id     string
		fn     HandlerFunc
		method MethodFunc
	}

	// Bindings maps event names to the handlers bound to them, in registration order.
	Bindings map[string][]*Handler
)

// Func wraps a plain callback into a Handler.
func Func(fn HandlerFunc) *Handler {
	return &Handler{id: uuid.NewString(), fn: fn}
}

// Method wraps a receiver-aware callback into a Handler.
func Method(fn MethodFunc) *Handler {
	return &Handler{id: uuid.NewString(), method: fn}
}

// ID returns a random identifier, only meant for logs and errors.
func (h *Handler) ID() string {
	if h == nil {
		return "<nil>"
	}
	return h.id
}

func (h *Handler) callable() bool {
	return h != nil && (h.fn != nil || h.method != nil)
}

func (h *Handler) invoke(recv any, args []any) error {
	if !h.callable() {
		return ErrNotCallable
	}
	if h.method != nil {
		return h.method(recv, args...)
	}
	return h.fn(args...)
}
