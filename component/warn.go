package component

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Warning is the argument list of one call to the warning channel.
type Warning []any

// String joins the warning arguments with spaces.
func (w Warning) String() string {
	parts := make([]string, len(w))
	for i, a := range w {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}

// Contains reports whether any string argument contains substr.
func (w Warning) Contains(substr string) bool {
	for _, a := range w {
		if s, ok := a.(string); ok && strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// WarnHandler receives prop validation warnings emitted during Mount.
type WarnHandler func(args ...any)

var (
	warnHandler WarnHandler = logWarning
	warnMu      sync.RWMutex
)

// SetWarnHandler installs h as the process-wide warning channel and returns
// a func that reinstalls the previous handler. Passing nil installs the
// default handler, which logs through slog at warn level.
func SetWarnHandler(h WarnHandler) (restore func()) {
	if h == nil {
		h = logWarning
	}
	warnMu.Lock()
	prev := warnHandler
	warnHandler = h
	warnMu.Unlock()

	return func() {
		warnMu.Lock()
		warnHandler = prev
		warnMu.Unlock()
	}
}

func warn(args ...any) {
	warnMu.RLock()
	h := warnHandler
	warnMu.RUnlock()
	h(args...)
}

func logWarning(args ...any) {
	slog.Warn(Warning(args).String())
}

func warnf(def *Definition, format string, args ...any) {
	warn(fmt.Sprintf("[compmatch warn]: "+format+"\n\nfound in\n\n---> <%s>", append(args, def.Name)...))
}
