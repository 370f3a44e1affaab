// Package compmatch provides assertion helpers for testing UI components
// built with package component.
//
// compmatch mounts components in process, observes them around an action,
// and reports a pass/fail [Result] with a diagnostic message. Results are
// consumed through the standard [testing.TB] interface with [Expect] and
// [ExpectNot], or through gomega with package gomegamatch.
//
// # Quick Start
//
//	func TestErrorMessage(t *testing.T) {
//		w, err := component.Mount(ErrorMessage, component.MountOptions{})
//		if err != nil {
//			t.Fatal(err)
//		}
//		compmatch.Expect(t, compmatch.Show(compmatch.Sync(func() {
//			w.Call("showError")
//		}), w, component.BySelector(".error")))
//	}
//
// # Transition Matchers
//
// [Show], [Hide], [Appear], [Disappear], [Emit], [EmitOnRoot], [Dispatch]
// and [DispatchWith] observe a target once before the action and once
// after it. The action runs exactly once. Each returns a [Verdict]:
//
//   - Actions wrapped with [Sync] settle immediately
//   - Actions wrapped with [Async] settle when their channel delivers
//   - An action that reports an error settles the Verdict with that error
//   - An action that never settles never settles the Verdict
//
// The matchers do not time out. [Expect] waits up to 5s by default; use
// [WithTimeout] to change it. [Transition] exposes the engine for custom
// observations.
//
// Event and dispatch matchers only consider records produced while the
// action runs. Expected payloads are compared deeply with go-cmp, and a
// mismatch lists a diff against every new record.
//
// # Log Matchers
//
// [HaveEmitted], [HaveEmittedOnRoot], [BeEmitted] and [BeEmittedWith]
// inspect the whole emitted-event log. [HaveDispatched] and
// [HaveDispatchedWith] read the log recorded by [DispatchLogPlugin], which
// must be installed on the store.
//
// Payload arity is exact, except for [BeEmittedWith], which compares the
// first argument only.
//
// # Prop Matchers
//
// [RequireProp], [BeValidProp], [BeValidProps], [BeValidPropWithTypeCheck],
// [BeValidPropWithCustomValidator] and [HaveDefaultProp] mount a component
// while capturing the warnings package component reports for its props.
// Mount errors are returned unchanged.
//
// Default mount options for the prop matchers are held by a [Matchers]:
//
//	var m = compmatch.New(compmatch.WithMountOptions(component.MountOptions{
//		Globals: map[string]any{"locale": "ja"},
//	}))
//
// [Matchers.Configure] merges more options in later. Options can also be
// loaded from YAML with [LoadConfig], or from the file named by
// COMPMATCH_CONFIG with [FromEnv].
//
// # Snapshots
//
// [MatchSnapshot] compares rendered HTML to golden files under testdata.
// Set COMPMATCH_UPDATE=1 to create or update golden files.
//
// # Requirements
//
//   - Go 1.24+
package compmatch
