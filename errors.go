package libemit

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotCallable = errors.New("handler is not callable")
)

// HandlerError is returned by Dispatch and DispatchWith when a handler fails. The remaining handlers of that
// dispatch round are not invoked.
type HandlerError struct {
	Event     string
	HandlerID string
	err       error
}

func (e HandlerError) Error() string {
	return fmt.Sprintf("handler %s failed on event %q: %s", e.HandlerID, e.Event, e.err)
}

func (e HandlerError) Unwrap() error { return e.err }

func wrapHandlerError(err error, event string, h *Handler) *HandlerError {
	if err == nil {
		return nil
	}
	return &HandlerError{
		Event:     event,
		HandlerID: h.ID(),
		err:       err,
	}
}
