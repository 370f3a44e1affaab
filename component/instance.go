package component

import (
	"html/template"
	"maps"
	"strings"
	"sync"

	"github.com/cboone/compmatch/store"
)

// View is the data a template is executed with.
type View struct {
	Props   map[string]any
	State   map[string]any
	Globals map[string]any
	Slots   map[string]template.HTML
}

// Instance is a mounted component. Methods, event handlers and render
// funcs receive it to read props and state, emit events and dispatch
// store actions.
type Instance struct {
	def     *Definition
	root    *Instance
	props   map[string]any
	globals map[string]any
	slots   map[string]string
	store   *store.Store
	tmpl    *template.Template

	mu      sync.Mutex
	state   map[string]any
	emitted map[string][][]any
}

func newInstance(def *Definition, root *Instance, opts MountOptions) (*Instance, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}
	vm := &Instance{
		def:     def,
		root:    root,
		globals: opts.Globals,
		slots:   opts.Slots,
		store:   opts.Store,
		state:   make(map[string]any),
		emitted: make(map[string][][]any),
	}
	if def.Render == nil {
		tmpl, err := template.New(def.Name).Parse(def.Template)
		if err != nil {
			return nil, &Error{Op: "parse", Component: def.Name, Err: err}
		}
		vm.tmpl = tmpl
	}
	vm.props = resolveProps(def, opts.Props)
	if def.Data != nil {
		state := def.Data(vm)
		vm.mu.Lock()
		maps.Copy(vm.state, state)
		vm.mu.Unlock()
	}
	return vm, nil
}

// newHost returns the disposable root every mounted component hangs off.
func newHost(opts MountOptions) *Instance {
	return &Instance{
		def:     &Definition{Name: "Root"},
		globals: opts.Globals,
		store:   opts.Store,
		state:   make(map[string]any),
		emitted: make(map[string][][]any),
	}
}

// Name returns the component name.
func (vm *Instance) Name() string {
	return vm.def.Name
}

// Definition returns the definition the instance was mounted from.
func (vm *Instance) Definition() *Definition {
	return vm.def
}

// Prop returns the resolved value of a declared prop.
func (vm *Instance) Prop(name string) any {
	return vm.props[name]
}

// Props returns a copy of the resolved props.
func (vm *Instance) Props() map[string]any {
	return maps.Clone(vm.props)
}

// Get returns a state value.
func (vm *Instance) Get(key string) any {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state[key]
}

// Set updates a state value. The next render reflects it.
func (vm *Instance) Set(key string, value any) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state[key] = value
}

// Global returns a value from MountOptions.Globals.
func (vm *Instance) Global(name string) any {
	return vm.globals[name]
}

// Emit records an event with its payload arguments.
func (vm *Instance) Emit(event string, args ...any) {
	payload := make([]any, len(args))
	copy(payload, args)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.emitted[event] = append(vm.emitted[event], payload)
}

// EmitOnRoot records an event on the root host.
func (vm *Instance) EmitOnRoot(event string, args ...any) {
	vm.Root().Emit(event, args...)
}

// Emitted returns a copy of the payloads recorded for event, oldest first.
func (vm *Instance) Emitted(event string) [][]any {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	log := vm.emitted[event]
	out := make([][]any, len(log))
	for i, payload := range log {
		out[i] = make([]any, len(payload))
		copy(out[i], payload)
	}
	return out
}

// Root returns the root host, or vm itself for the host.
func (vm *Instance) Root() *Instance {
	if vm.root == nil {
		return vm
	}
	return vm.root
}

// Store returns the mounted store, or nil.
func (vm *Instance) Store() *store.Store {
	return vm.store
}

// Dispatch dispatches an action on the mounted store.
func (vm *Instance) Dispatch(actionType string, payload any) error {
	if vm.store == nil {
		return &Error{Op: "dispatch", Component: vm.def.Name, Err: ErrNoStore}
	}
	return vm.store.Dispatch(actionType, payload)
}

func (vm *Instance) view() View {
	vm.mu.Lock()
	state := maps.Clone(vm.state)
	vm.mu.Unlock()

	slots := make(map[string]template.HTML, len(vm.slots))
	for name, markup := range vm.slots {
		// Slot content is caller-supplied markup.
		slots[name] = template.HTML(markup)
	}
	return View{
		Props:   vm.props,
		State:   state,
		Globals: vm.globals,
		Slots:   slots,
	}
}

func (vm *Instance) render() (string, error) {
	if vm.def.Render != nil {
		return vm.def.Render(vm), nil
	}
	var b strings.Builder
	if err := vm.tmpl.Execute(&b, vm.view()); err != nil {
		return "", &Error{Op: "render", Component: vm.def.Name, Err: err}
	}
	return b.String(), nil
}
