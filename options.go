package bitvec

type options struct {
	fill   bool
	logger *Logger
}

// Option configures vector construction.
type Option func(*options)

// WithFill sets the initial value of every bit.
// The default is false (all words zero).
func WithFill(fill bool) Option {
	return func(o *options) {
		o.fill = fill
	}
}

// WithLogger configures the logger used for allocation and split events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
