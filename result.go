package compmatch

import (
	"context"
	"fmt"
	"sync"
)

// Result is the verdict of one matcher invocation. The message is built
// lazily, the first time Message is called.
type Result struct {
	pass    bool
	message func() string
}

// NewResult creates a Result. message is called at most once.
func NewResult(pass bool, message func() string) Result {
	if message == nil {
		return Result{pass: pass}
	}
	return Result{pass: pass, message: sync.OnceValue(message)}
}

func resultf(pass bool, format string, args ...any) Result {
	return NewResult(pass, func() string {
		return fmt.Sprintf(format, args...)
	})
}

// Pass reports whether the assertion held.
func (r Result) Pass() bool {
	return r.pass
}

// Message returns the diagnostic message.
func (r Result) Message() string {
	if r.message == nil {
		return ""
	}
	return r.message()
}

// Wait returns r. It lets a Result stand wherever an Outcome is expected.
func (r Result) Wait(context.Context) (Result, error) {
	return r, nil
}

// Outcome is a Result or a Verdict.
type Outcome interface {
	Wait(ctx context.Context) (Result, error)
}
