package libemit

// Option configures an Emitter at construction time.
type Option func(*Emitter)

// WithBindings registers the given handlers as if BindMap had been called right after construction.
func WithBindings(b Bindings) Option {
	return func(e *Emitter) {
		e.initial = append(e.initial, b)
	}
}

// WithLogger sets the Logger used by the Emitter. A nil l keeps the default noop logger.
func WithLogger(l Logger) Option {
	return func(e *Emitter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics makes the Emitter update m on every dispatch.
func WithMetrics(m *Metrics) Option {
	return func(e *Emitter) {
		e.metrics = m
	}
}
