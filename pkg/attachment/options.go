package attachment

import "github.com/manifold/attach/pkg/misc/logging"

type config struct {
	log     logging.DebugLogger
	noClose bool
}

// Option configures a Set or SharedSet.
type Option func(*config)

// WithLogger sets the logger used to report values that fail to close when
// their last holder lets go. *zap.SugaredLogger satisfies it.
func WithLogger(log logging.DebugLogger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithoutClose stops the set from closing io.Closer values when their last
// holder lets go, for values whose lifetime is owned elsewhere.
func WithoutClose() Option {
	return func(c *config) {
		c.noClose = true
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
