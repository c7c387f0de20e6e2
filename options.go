package dockerfile

import (
	"github.com/sirupsen/logrus"
)

// Option configures a single parse call.
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
}

// WithLogger sets the logger parse warnings and debug output are sent to.
// The standard logrus logger is used by default.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
