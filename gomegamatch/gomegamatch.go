// Package gomegamatch exposes the compmatch matchers as gomega matchers.
//
//	g.Expect(compmatch.Sync(func() { w.Call("showError") })).
//		To(gomegamatch.Show(w, component.BySelector(".error")))
//	g.Expect(w).To(gomegamatch.HaveEmitted("special"))
//	g.Expect(Props).To(gomegamatch.RequireProp("name"))
//
// Transition matchers accept a compmatch.Action, a func() or a
// func() <-chan error. Log matchers accept the target. Prop matchers accept
// a *component.Definition.
package gomegamatch

import (
	"context"
	"fmt"

	"github.com/onsi/gomega/types"

	"github.com/cboone/compmatch"
	"github.com/cboone/compmatch/component"
)

// Set builds gomega matchers backed by one compmatch.Matchers, so prop
// matchers use its configured mount options and transition matchers wait
// up to its timeout.
type Set struct {
	m *compmatch.Matchers
}

// Using returns a Set backed by m.
func Using(m *compmatch.Matchers) Set {
	return Set{m: m}
}

var std = Using(compmatch.New())

// matcher adapts one compmatch matcher. It keeps the Result of the last
// Match for the failure messages.
type matcher struct {
	set    Set
	name   string
	run    func(actual any) (compmatch.Outcome, error)
	result compmatch.Result
}

var _ types.GomegaMatcher = (*matcher)(nil)

func (m *matcher) Match(actual any) (bool, error) {
	o, err := m.run(actual)
	if err != nil {
		return false, fmt.Errorf("gomegamatch: %s: %w", m.name, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.set.m.Timeout())
	defer cancel()
	r, err := o.Wait(ctx)
	if err != nil {
		return false, fmt.Errorf("gomegamatch: %s: %w", m.name, err)
	}
	m.result = r
	return r.Pass(), nil
}

// FailureMessage and NegatedFailureMessage both report what the matcher
// observed.
func (m *matcher) FailureMessage(any) string {
	return m.result.Message()
}

func (m *matcher) NegatedFailureMessage(any) string {
	return m.result.Message()
}

func (s Set) matcher(name string, run func(actual any) (compmatch.Outcome, error)) types.GomegaMatcher {
	return &matcher{set: s, name: name, run: run}
}

func toAction(actual any) (compmatch.Action, error) {
	switch a := actual.(type) {
	case compmatch.Action:
		return a, nil
	case func():
		return compmatch.Sync(a), nil
	case func() <-chan error:
		return compmatch.Async(a), nil
	default:
		return compmatch.Action{}, fmt.Errorf("expected an action, got %T", actual)
	}
}

func asDefinition(actual any) (*component.Definition, error) {
	def, ok := actual.(*component.Definition)
	if !ok {
		return nil, fmt.Errorf("expected a *component.Definition, got %T", actual)
	}
	return def, nil
}

// asTarget asserts actual to the observation interface T, described by
// want in errors.
func asTarget[T any](actual any, want string) (T, error) {
	t, ok := actual.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("expected %s, got %T", want, actual)
	}
	return t, nil
}

func (s Set) transition(name string, observe func(compmatch.Action) compmatch.Verdict) types.GomegaMatcher {
	return s.matcher(name, func(actual any) (compmatch.Outcome, error) {
		action, err := toAction(actual)
		if err != nil {
			return nil, err
		}
		return observe(action), nil
	})
}

func (s Set) prop(name string, check func(*component.Definition) (compmatch.Result, error)) types.GomegaMatcher {
	return s.matcher(name, func(actual any) (compmatch.Outcome, error) {
		def, err := asDefinition(actual)
		if err != nil {
			return nil, err
		}
		return check(def)
	})
}
