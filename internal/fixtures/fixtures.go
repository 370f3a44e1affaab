// Package fixtures provides small components for testing the matchers.
package fixtures

import (
	"errors"
	"strings"

	"github.com/cboone/compmatch/component"
	"github.com/cboone/compmatch/store"
)

// DefaultAddress is the default of the Props fixture's "address" prop.
const DefaultAddress = "Kitakyushu, Japan"

// ErrorMessage renders a .error element while its "error" state is set.
// The initialError prop seeds the state; showError sets it and hideError
// clears it.
var ErrorMessage = &component.Definition{
	Name: "ErrorMessage",
	Props: map[string]component.Prop{
		"initialError": {Types: []component.Kind{component.String}, Default: ""},
	},
	Data: func(vm *component.Instance) map[string]any {
		return map[string]any{"error": vm.Prop("initialError")}
	},
	Template: `<div class="wrapper">{{with .State.error}}<p class="error" ref="error">{{.}}</p>{{end}}</div>`,
	Methods: map[string]component.Method{
		"showError": func(vm *component.Instance, _ ...any) error {
			vm.Set("error", "Something went wrong")
			return nil
		},
		"hideError": func(vm *component.Instance, _ ...any) error {
			vm.Set("error", "")
			return nil
		},
	},
}

// Event emits "special" when clicked and "another" when the another
// button is clicked. Its methods emit caller-supplied payloads.
var Event = &component.Definition{
	Name:     "Event",
	Template: `<div><button class="special">special</button><button class="another">another</button></div>`,
	Methods: map[string]component.Method{
		"emitEventWithPayload": func(vm *component.Instance, args ...any) error {
			vm.Emit("special", args...)
			return nil
		},
		"emitEventOnRootWithPayload": func(vm *component.Instance, args ...any) error {
			vm.EmitOnRoot("special", args...)
			return nil
		},
		"another": func(vm *component.Instance, _ ...any) error {
			vm.Emit("another")
			return nil
		},
	},
	On: map[string]component.Method{
		"click": func(vm *component.Instance, _ ...any) error {
			vm.Emit("special")
			return nil
		},
	},
}

var colors = []string{"red", "green", "blue"}

// Props declares one prop of each checked shape: a required string, a
// defaulted string, a validated color and a number.
var Props = &component.Definition{
	Name: "Props",
	Props: map[string]component.Prop{
		"name": {Types: []component.Kind{component.String}, Required: true},
		"address": {
			Types:   []component.Kind{component.String},
			Default: DefaultAddress,
		},
		"color": {
			Validator: func(v any) bool {
				s, ok := v.(string)
				if !ok {
					return false
				}
				for _, c := range colors {
					if strings.EqualFold(s, c) {
						return true
					}
				}
				return false
			},
		},
		"age": {Types: []component.Kind{component.Number}},
		"tags": {
			Types:       []component.Kind{component.Array},
			DefaultFunc: func() any { return []string{"go"} },
		},
	},
	Template: `<dl><dt>{{.Props.name}}</dt><dd class="address">{{.Props.address}}</dd></dl>`,
}

// AwesomeAction is the action type dispatched by the Store fixture.
const AwesomeAction = "awesomeAction"

// Store dispatches AwesomeAction when clicked, and AwesomeAction with the
// caller's payload from dispatchActionWithPayload.
var Store = &component.Definition{
	Name:     "Store",
	Template: `<button>dispatch</button>`,
	Methods: map[string]component.Method{
		"dispatchActionWithPayload": func(vm *component.Instance, args ...any) error {
			var payload any
			if len(args) > 0 {
				payload = args[0]
			}
			return vm.Dispatch(AwesomeAction, payload)
		},
	},
	On: map[string]component.Method{
		"click": func(vm *component.Instance, _ ...any) error {
			return vm.Dispatch(AwesomeAction, nil)
		},
	},
}

// NewStore returns a store handling AwesomeAction, with plugins installed.
func NewStore(plugins ...store.Plugin) *store.Store {
	return store.New(store.Options{
		Actions: map[string]store.Handler{
			AwesomeAction: func(*store.Store, any) error { return nil },
		},
		Plugins: plugins,
	})
}

// ErrLater is reported by Later when fn returns it.
var ErrLater = errors.New("fixtures: later failed")

// Later runs fn on its own goroutine once release is closed and returns a
// channel that receives its error. It models an action that settles on a
// later tick.
func Later(release <-chan struct{}, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		<-release
		done <- fn()
		close(done)
	}()
	return done
}
