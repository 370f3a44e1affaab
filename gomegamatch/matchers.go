package gomegamatch

import (
	"github.com/onsi/gomega/types"

	"github.com/cboone/compmatch"
	"github.com/cboone/compmatch/component"
)

// Show matches an action that makes loc appear in target.
func (s Set) Show(target compmatch.Finder, loc component.Locator) types.GomegaMatcher {
	return s.transition("show", func(a compmatch.Action) compmatch.Verdict {
		return compmatch.Show(a, target, loc)
	})
}

// Hide matches an action that makes loc disappear from target.
func (s Set) Hide(target compmatch.Finder, loc component.Locator) types.GomegaMatcher {
	return s.transition("hide", func(a compmatch.Action) compmatch.Verdict {
		return compmatch.Hide(a, target, loc)
	})
}

// Appear is Show with appearance wording.
func (s Set) Appear(target compmatch.Finder, loc component.Locator) types.GomegaMatcher {
	return s.transition("appear", func(a compmatch.Action) compmatch.Verdict {
		return compmatch.Appear(a, target, loc)
	})
}

// Disappear is Hide with disappearance wording.
func (s Set) Disappear(target compmatch.Finder, loc component.Locator) types.GomegaMatcher {
	return s.transition("disappear", func(a compmatch.Action) compmatch.Verdict {
		return compmatch.Disappear(a, target, loc)
	})
}

// Emit matches an action that makes target emit event.
func (s Set) Emit(target compmatch.Emitter, event string, payloads ...any) types.GomegaMatcher {
	return s.transition("emit", func(a compmatch.Action) compmatch.Verdict {
		return compmatch.Emit(a, target, event, payloads...)
	})
}

// EmitOnRoot matches an action that emits event on the root host.
func (s Set) EmitOnRoot(target compmatch.RootEmitter, event string, payloads ...any) types.GomegaMatcher {
	return s.transition("emit-on-root", func(a compmatch.Action) compmatch.Verdict {
		return compmatch.EmitOnRoot(a, target, event, payloads...)
	})
}

// Dispatch matches an action that dispatches actionType on the store of
// target.
func (s Set) Dispatch(target compmatch.StoreHolder, actionType string) types.GomegaMatcher {
	return s.transition("dispatch", func(a compmatch.Action) compmatch.Verdict {
		return compmatch.Dispatch(a, target, actionType)
	})
}

// DispatchWith is Dispatch with an expected payload.
func (s Set) DispatchWith(target compmatch.StoreHolder, actionType string, payload any) types.GomegaMatcher {
	return s.transition("dispatch-with", func(a compmatch.Action) compmatch.Verdict {
		return compmatch.DispatchWith(a, target, actionType, payload)
	})
}

// HaveEmitted matches a target that has emitted event.
func (s Set) HaveEmitted(event string, payloads ...any) types.GomegaMatcher {
	return s.matcher("have-emitted", func(actual any) (compmatch.Outcome, error) {
		t, err := asTarget[compmatch.Emitter](actual, "an event emitter")
		if err != nil {
			return nil, err
		}
		return compmatch.HaveEmitted(t, event, payloads...), nil
	})
}

// HaveEmittedOnRoot matches a target whose root host has emitted event.
func (s Set) HaveEmittedOnRoot(event string, payloads ...any) types.GomegaMatcher {
	return s.matcher("have-emitted-on-root", func(actual any) (compmatch.Outcome, error) {
		t, err := asTarget[compmatch.RootEmitter](actual, "a root event emitter")
		if err != nil {
			return nil, err
		}
		return compmatch.HaveEmittedOnRoot(t, event, payloads...), nil
	})
}

// BeEmitted matches a target that has emitted event.
func (s Set) BeEmitted(event string) types.GomegaMatcher {
	return s.matcher("be-emitted", func(actual any) (compmatch.Outcome, error) {
		t, err := asTarget[compmatch.Emitter](actual, "an event emitter")
		if err != nil {
			return nil, err
		}
		return compmatch.BeEmitted(t, event), nil
	})
}

// BeEmittedWith matches a target that has emitted event with payload as
// the first argument.
func (s Set) BeEmittedWith(event string, payload any) types.GomegaMatcher {
	return s.matcher("be-emitted-with", func(actual any) (compmatch.Outcome, error) {
		t, err := asTarget[compmatch.Emitter](actual, "an event emitter")
		if err != nil {
			return nil, err
		}
		return compmatch.BeEmittedWith(t, event, payload), nil
	})
}

// HaveDispatched matches a target whose store has logged actionType.
func (s Set) HaveDispatched(actionType string) types.GomegaMatcher {
	return s.matcher("have-dispatched", func(actual any) (compmatch.Outcome, error) {
		t, err := asTarget[compmatch.StoreHolder](actual, "a store holder")
		if err != nil {
			return nil, err
		}
		return compmatch.HaveDispatched(t, actionType), nil
	})
}

// HaveDispatchedWith is HaveDispatched with an expected payload.
func (s Set) HaveDispatchedWith(actionType string, payload any) types.GomegaMatcher {
	return s.matcher("have-dispatched-with", func(actual any) (compmatch.Outcome, error) {
		t, err := asTarget[compmatch.StoreHolder](actual, "a store holder")
		if err != nil {
			return nil, err
		}
		return compmatch.HaveDispatchedWith(t, actionType, payload), nil
	})
}

// RequireProp matches a definition that requires name.
func (s Set) RequireProp(name string, dynamic ...component.MountOptions) types.GomegaMatcher {
	return s.prop("require-prop", func(def *component.Definition) (compmatch.Result, error) {
		return s.m.RequireProp(def, name, dynamic...)
	})
}

// BeValidProp matches a definition that accepts value for name.
func (s Set) BeValidProp(name string, value any, dynamic ...component.MountOptions) types.GomegaMatcher {
	return s.prop("be-valid-prop", func(def *component.Definition) (compmatch.Result, error) {
		return s.m.BeValidProp(def, name, value, dynamic...)
	})
}

// BeValidProps matches a definition that mounts with props without
// warnings.
func (s Set) BeValidProps(props map[string]any, dynamic ...component.MountOptions) types.GomegaMatcher {
	return s.prop("be-valid-props", func(def *component.Definition) (compmatch.Result, error) {
		return s.m.BeValidProps(def, props, dynamic...)
	})
}

// BeValidPropWithTypeCheck matches a definition whose type check of name
// accepts value.
func (s Set) BeValidPropWithTypeCheck(name string, value any, dynamic ...component.MountOptions) types.GomegaMatcher {
	return s.prop("be-valid-prop-with-type-check", func(def *component.Definition) (compmatch.Result, error) {
		return s.m.BeValidPropWithTypeCheck(def, name, value, dynamic...)
	})
}

// BeValidPropWithCustomValidator matches a definition whose validator of
// name accepts value.
func (s Set) BeValidPropWithCustomValidator(name string, value any, dynamic ...component.MountOptions) types.GomegaMatcher {
	return s.prop("be-valid-prop-with-custom-validator", func(def *component.Definition) (compmatch.Result, error) {
		return s.m.BeValidPropWithCustomValidator(def, name, value, dynamic...)
	})
}

// HaveDefaultProp matches a definition whose name prop defaults to want.
func (s Set) HaveDefaultProp(name string, want any, dynamic ...component.MountOptions) types.GomegaMatcher {
	return s.prop("have-default-prop", func(def *component.Definition) (compmatch.Result, error) {
		return s.m.HaveDefaultProp(def, name, want, dynamic...)
	})
}
