package component_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cboone/compmatch/component"
	"github.com/cboone/compmatch/store"
)

func captureWarnings(t *testing.T) *[]component.Warning {
	t.Helper()
	var warnings []component.Warning
	restore := component.SetWarnHandler(func(args ...any) {
		warnings = append(warnings, component.Warning(args))
	})
	t.Cleanup(restore)
	return &warnings
}

var card = &component.Definition{Name: "UserCard", Template: `<div class="card"></div>`}

var panel = &component.Definition{
	Name: "Panel",
	Props: map[string]component.Prop{
		"title":   {Types: []component.Kind{component.String}, Required: true},
		"count":   {Types: []component.Kind{component.Number}, Default: 3},
		"tags":    {Types: []component.Kind{component.Array}, DefaultFunc: func() any { return []string{"a"} }},
		"variant": {Validator: func(v any) bool { return v == "primary" || v == "secondary" }, Default: "primary"},
	},
	Data: func(vm *component.Instance) map[string]any {
		return map[string]any{"open": false}
	},
	Template: `<section>{{if .State.open}}<p class="body" ref="body">{{.Props.title}}</p>{{end}}` +
		`<user-card></user-card>{{.Slots.footer}}</section>`,
	Methods: map[string]component.Method{
		"toggle": func(vm *component.Instance, _ ...any) error {
			vm.Set("open", !vm.Get("open").(bool))
			return nil
		},
		"announce": func(vm *component.Instance, args ...any) error {
			vm.Emit("announce", args...)
			vm.EmitOnRoot("announced", args...)
			return nil
		},
	},
	On: map[string]component.Method{
		"click": func(vm *component.Instance, _ ...any) error {
			vm.Emit("clicked")
			return nil
		},
	},
	Components: map[string]*component.Definition{"user-card": card},
}

func TestMountResolvesProps(t *testing.T) {
	warnings := captureWarnings(t)

	w, err := component.Mount(panel, component.MountOptions{Props: map[string]any{"title": "Hi"}})
	require.NoError(t, err)

	assert.Empty(t, *warnings)
	assert.Equal(t, "Hi", w.Prop("title"))
	assert.Equal(t, 3, w.Prop("count"))
	assert.Equal(t, []string{"a"}, w.Prop("tags"))
	assert.Equal(t, "primary", w.Props()["variant"])
}

func TestMountWarnings(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  string
	}{
		{"missing required", map[string]any{}, `Missing required prop: "title"` + "\n"},
		{"nil counts as missing", map[string]any{"title": nil}, `Missing required prop: "title"` + "\n"},
		{"type check", map[string]any{"title": 42}, `Invalid prop: type check failed for prop "title". Expected String, got Number with value 42.`},
		{"validator", map[string]any{"title": "x", "variant": "loud"}, `Invalid prop: custom validator check failed for prop "variant".` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := captureWarnings(t)

			_, err := component.Mount(panel, component.MountOptions{Props: tt.props})
			require.NoError(t, err)

			require.Len(t, *warnings, 1)
			w := (*warnings)[0]
			assert.True(t, w.Contains(tt.want), "warning %q should contain %q", w.String(), tt.want)
			assert.Contains(t, w.String(), "---> <Panel>")
		})
	}
}

func TestMountErrors(t *testing.T) {
	tests := []struct {
		name string
		def  *component.Definition
		want error
	}{
		{"nil", nil, component.ErrNilDefinition},
		{"no name", &component.Definition{Template: "<p></p>"}, component.ErrNoName},
		{"no template", &component.Definition{Name: "Empty"}, component.ErrNoTemplate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := component.Mount(tt.def, component.MountOptions{})
			assert.ErrorIs(t, err, tt.want)
			var compErr *component.Error
			assert.True(t, errors.As(err, &compErr))
		})
	}

	_, err := component.Mount(&component.Definition{Name: "Broken", Template: "{{if}}"}, component.MountOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component parse Broken")
}

func TestLocators(t *testing.T) {
	captureWarnings(t)
	w, err := component.Mount(panel, component.MountOptions{Props: map[string]any{"title": "Hi"}})
	require.NoError(t, err)

	assert.False(t, w.Exists(component.BySelector("p.body")))
	assert.False(t, w.Exists(component.ByRef("body")))
	assert.True(t, w.Exists(component.ByName("UserCard")))
	assert.True(t, w.Exists(component.ByComponent(card)))
	assert.False(t, w.Exists(component.ByComponent(panel)))
	assert.False(t, w.Exists(component.ByComponent(nil)))

	require.NoError(t, w.Call("toggle"))

	assert.True(t, w.Exists(component.BySelector("p.body")))
	assert.True(t, w.Exists(component.ByRef("body")))
	assert.Equal(t, 1, w.Count(component.BySelector("section > p")))
	assert.Contains(t, w.HTML(), `<p class="body" ref="body">Hi</p>`)
}

func TestMixedCaseChildTags(t *testing.T) {
	child := &component.Definition{Name: "Child", Template: `<span></span>`}
	parent := &component.Definition{
		Name:       "Parent",
		Template:   `<div><MyChild></MyChild></div>`,
		Components: map[string]*component.Definition{"MyChild": child},
	}

	w, err := component.Mount(parent, component.MountOptions{})
	require.NoError(t, err)
	assert.Equal(t, `<div><mychild></mychild></div>`, w.HTML())
	assert.True(t, w.Exists(component.ByComponent(child)))
	assert.True(t, w.Exists(component.ByName("Child")))
	assert.Equal(t, 1, w.Count(component.ByComponent(child)))
}

func TestInvalidSelectorPanics(t *testing.T) {
	captureWarnings(t)
	w, err := component.Mount(panel, component.MountOptions{Props: map[string]any{"title": "Hi"}})
	require.NoError(t, err)

	assert.Panics(t, func() { w.Exists(component.BySelector("p[")) })
}

func TestLocatorString(t *testing.T) {
	assert.Equal(t, `BySelector("p.error")`, component.BySelector("p.error").String())
	assert.Equal(t, `ByName("UserCard")`, component.ByName("UserCard").String())
	assert.Equal(t, `ByRef("x")`, component.ByRef("x").String())
	assert.Equal(t, "ByComponent(UserCard)", component.ByComponent(card).String())
	assert.Equal(t, component.ComponentLocator, component.ByComponent(card).Kind())
}

func TestEmitAndTrigger(t *testing.T) {
	captureWarnings(t)
	w, err := component.Mount(panel, component.MountOptions{Props: map[string]any{"title": "Hi"}})
	require.NoError(t, err)

	require.NoError(t, w.Trigger("click"))
	require.NoError(t, w.Trigger("hover"))
	require.NoError(t, w.Call("announce", "a", 1))

	assert.Equal(t, [][]any{{}}, w.Emitted("clicked"))
	assert.Equal(t, [][]any{{"a", 1}}, w.Emitted("announce"))
	assert.Empty(t, w.Emitted("announced"))
	assert.Equal(t, [][]any{{"a", 1}}, w.EmittedOnRoot("announced"))

	// The returned log is a copy.
	log := w.Emitted("announce")
	log[0][0] = "changed"
	assert.Equal(t, "a", w.Emitted("announce")[0][0])

	err = w.Call("missing")
	assert.ErrorIs(t, err, component.ErrUnknownMethod)
}

func TestSlotsAndGlobals(t *testing.T) {
	captureWarnings(t)
	def := &component.Definition{
		Name:     "Layout",
		Template: `<main data-theme="{{.Globals.theme}}">{{.Slots.default}}</main>`,
	}
	w, err := component.Mount(def, component.MountOptions{
		Globals: map[string]any{"theme": "dark"},
		Slots:   map[string]string{"default": `<b class="slotted">x</b>`},
	})
	require.NoError(t, err)

	assert.True(t, w.Exists(component.BySelector("main[data-theme=dark] > b.slotted")))
	assert.Equal(t, "dark", w.VM().Global("theme"))
}

func TestDispatch(t *testing.T) {
	captureWarnings(t)
	var got []store.Action
	s := store.New(store.Options{Actions: map[string]store.Handler{"save": nil}})
	s.SubscribeAction(func(a store.Action) { got = append(got, a) })

	w, err := component.Mount(card, component.MountOptions{Store: s})
	require.NoError(t, err)
	require.Same(t, s, w.Store())
	require.NoError(t, w.VM().Dispatch("save", "x"))
	assert.Equal(t, []store.Action{{Type: "save", Payload: "x"}}, got)

	bare, err := component.Mount(card, component.MountOptions{})
	require.NoError(t, err)
	assert.Nil(t, bare.Store())
	assert.ErrorIs(t, bare.VM().Dispatch("save", nil), component.ErrNoStore)
}

func TestCork(t *testing.T) {
	warnings := captureWarnings(t)

	host := component.Cork(panel)
	w, err := component.Mount(host, component.MountOptions{Props: map[string]any{"count": 99, "title": "ignored"}})
	require.NoError(t, err)

	corked := w.Corked()
	require.NotNil(t, corked)
	assert.Same(t, panel, corked.VM().Definition())
	assert.Equal(t, "Cork", w.VM().Definition().Name)
	assert.Equal(t, 3, corked.Prop("count"))
	assert.Nil(t, corked.Prop("title"))
	assert.True(t, w.Exists(component.ByComponent(panel)))

	// The corked panel is mounted without its required title.
	require.Len(t, *warnings, 1)
	assert.True(t, (*warnings)[0].Contains(`Missing required prop: "title"`))

	plain, err := component.Mount(panel, component.MountOptions{Props: map[string]any{"title": "x"}})
	require.NoError(t, err)
	assert.Nil(t, plain.Corked())
}

func TestMergeMountOptions(t *testing.T) {
	s := store.New(store.Options{})
	base := component.MountOptions{Globals: map[string]any{"a": 1}}

	merged := base.Merge(component.MountOptions{Store: s})
	assert.Equal(t, map[string]any{"a": 1}, merged.Globals)
	assert.Same(t, s, merged.Store)

	assert.Equal(t, base, base.Merge(component.MountOptions{}))
	assert.True(t, component.MountOptions{}.IsZero())
	assert.False(t, merged.IsZero())
}

func TestSetWarnHandlerRestore(t *testing.T) {
	var outer, inner []component.Warning
	restoreOuter := component.SetWarnHandler(func(args ...any) { outer = append(outer, args) })
	defer restoreOuter()

	restoreInner := component.SetWarnHandler(func(args ...any) { inner = append(inner, args) })
	_, err := component.Mount(panel, component.MountOptions{})
	require.NoError(t, err)
	restoreInner()

	_, err = component.Mount(panel, component.MountOptions{})
	require.NoError(t, err)

	assert.Len(t, inner, 1)
	assert.Len(t, outer, 1)
}

func TestTag(t *testing.T) {
	assert.Equal(t, "user-card", component.Tag("UserCard"))
	assert.Equal(t, "panel", component.Tag("Panel"))
	assert.Equal(t, "already-kebab", component.Tag("already-kebab"))
	assert.True(t, strings.HasPrefix(component.Tag("ABC"), "a-b"))
}
