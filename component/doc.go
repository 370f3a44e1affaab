// Package component is a minimal in-process component model used as the
// mount collaborator for compmatch matchers.
//
// A [Definition] declares props, initial state, a template and methods.
// [Mount] resolves the props (reporting validation problems through the
// warning channel, see [SetWarnHandler]), builds the initial state and
// returns a [Wrapper] for inspection:
//
//	w, err := component.Mount(&component.Definition{
//		Name:     "ErrorMessage",
//		Props:    map[string]component.Prop{"initialError": {Types: []component.Kind{component.Boolean}}},
//		Data:     func(vm *component.Instance) map[string]any { return map[string]any{"error": vm.Prop("initialError")} },
//		Template: `{{if .State.error}}<p class="error">oops</p>{{end}}`,
//	}, component.MountOptions{})
//
//	w.Exists(component.BySelector("p.error"))
//
// Mounting is shallow: tags of child components stay in the rendered markup
// as stubs and can be located with [ByName] or [ByComponent]. Every mounted
// component sits under a disposable root host; events emitted with
// [Instance.EmitOnRoot] are recorded on that host.
//
// Templates are html/template sources executed with a [View].
package component
