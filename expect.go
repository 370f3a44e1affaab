package compmatch

import (
	"context"
	"testing"
)

// Expect fails t with the message of o unless it passes. A deferred
// Verdict is waited for up to the timeout set by WithTimeout; a wait that
// times out or an action that reports an error is fatal.
func (m *Matchers) Expect(t testing.TB, o Outcome) {
	t.Helper()
	if r, ok := m.wait(t, "expect", o); ok && !r.Pass() {
		t.Errorf("compmatch: expect: %s", r.Message())
	}
}

// ExpectNot fails t unless o fails. The message of a passing o explains
// what happened.
func (m *Matchers) ExpectNot(t testing.TB, o Outcome) {
	t.Helper()
	if r, ok := m.wait(t, "expect-not", o); ok && r.Pass() {
		t.Errorf("compmatch: expect-not: %s", r.Message())
	}
}

func (m *Matchers) wait(t testing.TB, op string, o Outcome) (Result, bool) {
	t.Helper()

	timeout := m.Timeout()
	ctx, cancel := context.WithTimeout(t.Context(), timeout)
	defer cancel()

	r, err := o.Wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			t.Fatalf("compmatch: %s: timed out after %v waiting for the action to settle", op, timeout)
		} else {
			t.Fatalf("compmatch: %s: %v", op, err)
		}
		return Result{}, false
	}
	return r, true
}

// Expect calls Matchers.Expect with the default settings.
func Expect(t testing.TB, o Outcome) {
	t.Helper()
	std.Expect(t, o)
}

// ExpectNot calls Matchers.ExpectNot with the default settings.
func ExpectNot(t testing.TB, o Outcome) {
	t.Helper()
	std.ExpectNot(t, o)
}
