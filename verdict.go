package compmatch

import (
	"context"
)

// Action is the operation a transition matcher observes. Create one with
// Sync or Async. The zero Action does nothing.
type Action struct {
	fn func() <-chan error
}

// Sync wraps a synchronous action.
func Sync(fn func()) Action {
	return Action{fn: func() <-chan error {
		fn()
		return nil
	}}
}

// Async wraps an action that finishes later. fn starts the work and returns
// a channel that receives the result, or is closed, once the work has
// settled. A nil channel means nothing is pending.
func Async(fn func() <-chan error) Action {
	return Action{fn: fn}
}

func (a Action) start() <-chan error {
	if a.fn == nil {
		return nil
	}
	return a.fn()
}

// Verdict is either an immediate Result or one that settles later, when the
// asynchronous action it observes settles.
type Verdict struct {
	result Result
	err    error
	done   chan struct{}
	out    *settlement
}

type settlement struct {
	result   Result
	err      error
	panicked any
}

// Immediate returns a settled Verdict.
func Immediate(r Result) Verdict {
	return Verdict{result: r}
}

// Settled returns a settled Verdict carrying err, if any. It adapts
// matchers that return (Result, error):
//
//	compmatch.Expect(t, compmatch.Settled(m.RequireProp(def, "name")))
func Settled(r Result, err error) Verdict {
	return Verdict{result: r, err: err}
}

// deferVerdict runs fn on its own goroutine and settles the Verdict with
// its return values. A panic in fn is re-raised by Wait.
func deferVerdict(fn func() (Result, error)) Verdict {
	v := Verdict{done: make(chan struct{}), out: &settlement{}}
	go func() {
		defer close(v.done)
		defer func() {
			if p := recover(); p != nil {
				v.out.panicked = p
			}
		}()
		v.out.result, v.out.err = fn()
	}()
	return v
}

// Deferred reports whether the Verdict waits on an asynchronous action.
func (v Verdict) Deferred() bool {
	return v.done != nil
}

// Done returns a channel that is closed once the Verdict has settled.
func (v Verdict) Done() <-chan struct{} {
	if v.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return v.done
}

// Result returns the Result without blocking. ok is false while the
// Verdict is pending or when it settled with an error.
func (v Verdict) Result() (r Result, ok bool) {
	if v.done == nil {
		return v.result, v.err == nil
	}
	select {
	case <-v.done:
		if v.out.panicked != nil || v.out.err != nil {
			return Result{}, false
		}
		return v.out.result, true
	default:
		return Result{}, false
	}
}

// Wait blocks until the Verdict settles or ctx is done. An error reported
// by the asynchronous action is returned as is.
func (v Verdict) Wait(ctx context.Context) (Result, error) {
	if v.done == nil {
		return v.result, v.err
	}
	select {
	case <-v.done:
		if v.out.panicked != nil {
			panic(v.out.panicked)
		}
		return v.out.result, v.out.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
