package compmatch

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cboone/compmatch/component"
	"github.com/cboone/compmatch/store"
)

// Finder is a target that can report whether a locator matches.
type Finder interface {
	Exists(loc component.Locator) bool
}

// Emitter is a target with an emitted-event log.
type Emitter interface {
	Emitted(event string) [][]any
}

// RootEmitter is a target with an emitted-event log on its root host.
type RootEmitter interface {
	EmittedOnRoot(event string) [][]any
}

// StoreHolder is a target that may have a store attached. Store returns nil
// when none is attached.
type StoreHolder interface {
	Store() *store.Store
}

// Matchers carries the default mount options for the prop matchers and the
// settings of Expect. The zero value is not usable; create one with New.
// A Matchers is safe for concurrent use, but Configure affects every later
// call, so configure once per test file.
type Matchers struct {
	mu   sync.RWMutex
	opts options
}

// std backs the package-level functions. It is never configured.
var std = New()

// New creates a Matchers with the given options applied over the defaults.
func New(opts ...Option) *Matchers {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Matchers{opts: o}
}

// Configure shallow-merges over into the default mount options: each
// non-zero field replaces the current value. Calls are cumulative, and an
// empty MountOptions changes nothing.
func (m *Matchers) Configure(over component.MountOptions) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts.mount = m.opts.mount.Merge(over)
}

// MountOptions returns the effective default mount options.
func (m *Matchers) MountOptions() component.MountOptions {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.opts.mount
}

// mountOptions returns the defaults with each dynamic override merged in
// order.
func (m *Matchers) mountOptions(dynamic []component.MountOptions) component.MountOptions {
	mo := m.MountOptions()
	for _, d := range dynamic {
		mo = mo.Merge(d)
	}
	return mo
}

func (m *Matchers) logger() *slog.Logger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.opts.logger != nil {
		return m.opts.logger
	}
	return slog.Default()
}

// Timeout returns how long Expect waits for a deferred Verdict.
func (m *Matchers) Timeout() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.opts.timeout
}
