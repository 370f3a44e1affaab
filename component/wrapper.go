package component

import (
	"fmt"
	"maps"

	"golang.org/x/net/html"

	"github.com/cboone/compmatch/internal/dom"
	"github.com/cboone/compmatch/store"
)

// Wrapper is the inspection handle returned by Mount.
type Wrapper struct {
	vm     *Instance
	corked *Wrapper
}

// VM returns the mounted instance.
func (w *Wrapper) VM() *Instance {
	return w.vm
}

// Corked returns the wrapper of the component corked by Cork, or nil when
// the mounted definition is not a cork host.
func (w *Wrapper) Corked() *Wrapper {
	return w.corked
}

// HTML renders the component. A template execution failure panics with
// an *Error.
func (w *Wrapper) HTML() string {
	return w.document().HTML()
}

// Exists reports whether loc matches at least one element.
func (w *Wrapper) Exists(loc Locator) bool {
	return w.Count(loc) > 0
}

// Count returns the number of elements loc matches in the current render.
// Evaluation renders the component; render failures and invalid selectors
// panic.
func (w *Wrapper) Count(loc Locator) int {
	doc := w.document()
	switch loc.kind {
	case SelectorLocator:
		nodes, err := doc.Select(loc.selector)
		if err != nil {
			panic(&Error{Op: "find", Component: w.vm.def.Name, Err: err})
		}
		return len(nodes)
	case NameLocator:
		return len(doc.Find(func(n *html.Node) bool {
			return w.tagNamesComponent(n.Data, loc.name)
		}))
	case RefLocator:
		return len(doc.Find(func(n *html.Node) bool {
			v, ok := dom.Attr(n, "ref")
			return ok && v == loc.ref
		}))
	case ComponentLocator:
		if loc.component == nil {
			return 0
		}
		tag := w.vm.def.tagFor(loc.component)
		return len(doc.Find(func(n *html.Node) bool {
			return n.Data == tag
		}))
	default:
		panic(fmt.Sprintf("component: invalid locator kind %d", loc.kind))
	}
}

// tagNamesComponent reports whether tag renders a child component called name.
func (w *Wrapper) tagNamesComponent(tag, name string) bool {
	if tag == Tag(name) {
		return true
	}
	if child, ok := w.vm.def.childAt(tag); ok && child.Name == name {
		return true
	}
	return false
}

func (w *Wrapper) document() *dom.Document {
	markup, err := w.vm.render()
	if err != nil {
		panic(err)
	}
	doc, err := dom.Parse(markup)
	if err != nil {
		panic(&Error{Op: "render", Component: w.vm.def.Name, Err: err})
	}
	return doc
}

// Props returns a copy of the resolved props.
func (w *Wrapper) Props() map[string]any {
	return maps.Clone(w.vm.props)
}

// Prop returns the resolved value of a prop.
func (w *Wrapper) Prop(name string) any {
	return w.vm.Prop(name)
}

// Emitted returns the payloads recorded for event on the component.
func (w *Wrapper) Emitted(event string) [][]any {
	return w.vm.Emitted(event)
}

// EmittedOnRoot returns the payloads recorded for event on the root host.
func (w *Wrapper) EmittedOnRoot(event string) [][]any {
	return w.vm.Root().Emitted(event)
}

// Store returns the mounted store, or nil.
func (w *Wrapper) Store() *store.Store {
	return w.vm.store
}

// Call runs a declared method.
func (w *Wrapper) Call(method string, args ...any) error {
	fn, ok := w.vm.def.Methods[method]
	if !ok || fn == nil {
		return &Error{Op: "call " + method, Component: w.vm.def.Name, Err: ErrUnknownMethod}
	}
	return fn(w.vm, args...)
}

// Trigger runs the handler registered for a DOM event. Events without a
// handler are ignored.
func (w *Wrapper) Trigger(event string) error {
	fn, ok := w.vm.def.On[event]
	if !ok || fn == nil {
		return nil
	}
	return fn(w.vm)
}

// Get returns a state value.
func (w *Wrapper) Get(key string) any {
	return w.vm.Get(key)
}

// Set updates a state value.
func (w *Wrapper) Set(key string, value any) {
	w.vm.Set(key, value)
}
