package compmatch

import (
	"log/slog"
	"time"

	"github.com/cboone/compmatch/component"
)

type options struct {
	mount   component.MountOptions
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures a Matchers created by New.
type Option func(*options)

// WithMountOptions merges mount options into the defaults used by the
// prop matchers. Non-zero fields replace earlier values.
func WithMountOptions(mo component.MountOptions) Option {
	return func(o *options) {
		o.mount = o.mount.Merge(mo)
	}
}

// WithLogger sets the logger used for debug output. Defaults to
// slog.Default() at the time of each call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTimeout bounds how long Expect and ExpectNot wait for a deferred
// Verdict. The matchers themselves never time out.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

const defaultTimeout = 5 * time.Second

func defaultOptions() options {
	return options{
		timeout: defaultTimeout,
	}
}
