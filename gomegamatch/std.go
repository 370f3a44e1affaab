package gomegamatch

import (
	"github.com/onsi/gomega/types"

	"github.com/cboone/compmatch"
	"github.com/cboone/compmatch/component"
)

// The functions below use a Set with no configured mount options and the
// default timeout. See the Set methods of the same name.

// Show matches an action that makes loc appear in target.
func Show(target compmatch.Finder, loc component.Locator) types.GomegaMatcher {
	return std.Show(target, loc)
}

// Hide matches an action that makes loc disappear from target.
func Hide(target compmatch.Finder, loc component.Locator) types.GomegaMatcher {
	return std.Hide(target, loc)
}

// Appear is Show with appearance wording.
func Appear(target compmatch.Finder, loc component.Locator) types.GomegaMatcher {
	return std.Appear(target, loc)
}

// Disappear is Hide with disappearance wording.
func Disappear(target compmatch.Finder, loc component.Locator) types.GomegaMatcher {
	return std.Disappear(target, loc)
}

// Emit matches an action that makes target emit event.
func Emit(target compmatch.Emitter, event string, payloads ...any) types.GomegaMatcher {
	return std.Emit(target, event, payloads...)
}

// EmitOnRoot matches an action that emits event on the root host.
func EmitOnRoot(target compmatch.RootEmitter, event string, payloads ...any) types.GomegaMatcher {
	return std.EmitOnRoot(target, event, payloads...)
}

// Dispatch matches an action that dispatches actionType on the store of
// target.
func Dispatch(target compmatch.StoreHolder, actionType string) types.GomegaMatcher {
	return std.Dispatch(target, actionType)
}

// DispatchWith is Dispatch with an expected payload.
func DispatchWith(target compmatch.StoreHolder, actionType string, payload any) types.GomegaMatcher {
	return std.DispatchWith(target, actionType, payload)
}

// HaveEmitted matches a target that has emitted event.
func HaveEmitted(event string, payloads ...any) types.GomegaMatcher {
	return std.HaveEmitted(event, payloads...)
}

// HaveEmittedOnRoot matches a target whose root host has emitted event.
func HaveEmittedOnRoot(event string, payloads ...any) types.GomegaMatcher {
	return std.HaveEmittedOnRoot(event, payloads...)
}

// BeEmitted matches a target that has emitted event with any payload.
func BeEmitted(event string) types.GomegaMatcher {
	return std.BeEmitted(event)
}

// BeEmittedWith matches a target that has emitted event with payload first.
func BeEmittedWith(event string, payload any) types.GomegaMatcher {
	return std.BeEmittedWith(event, payload)
}

// HaveDispatched matches a target whose store has logged actionType.
func HaveDispatched(actionType string) types.GomegaMatcher {
	return std.HaveDispatched(actionType)
}

// HaveDispatchedWith is HaveDispatched with an expected payload.
func HaveDispatchedWith(actionType string, payload any) types.GomegaMatcher {
	return std.HaveDispatchedWith(actionType, payload)
}

// RequireProp matches a definition that requires name.
func RequireProp(name string, dynamic ...component.MountOptions) types.GomegaMatcher {
	return std.RequireProp(name, dynamic...)
}

// BeValidProp matches a definition that accepts value for name.
func BeValidProp(name string, value any, dynamic ...component.MountOptions) types.GomegaMatcher {
	return std.BeValidProp(name, value, dynamic...)
}

// BeValidProps matches a definition that mounts with props without warnings.
func BeValidProps(props map[string]any, dynamic ...component.MountOptions) types.GomegaMatcher {
	return std.BeValidProps(props, dynamic...)
}

// BeValidPropWithTypeCheck matches a definition whose type check of name
// accepts value.
func BeValidPropWithTypeCheck(name string, value any, dynamic ...component.MountOptions) types.GomegaMatcher {
	return std.BeValidPropWithTypeCheck(name, value, dynamic...)
}

// BeValidPropWithCustomValidator matches a definition whose validator of
// name accepts value.
func BeValidPropWithCustomValidator(name string, value any, dynamic ...component.MountOptions) types.GomegaMatcher {
	return std.BeValidPropWithCustomValidator(name, value, dynamic...)
}

// HaveDefaultProp matches a definition whose name prop defaults to want.
func HaveDefaultProp(name string, want any, dynamic ...component.MountOptions) types.GomegaMatcher {
	return std.HaveDefaultProp(name, want, dynamic...)
}
