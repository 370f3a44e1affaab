package component

import (
	"github.com/cboone/compmatch/store"
)

// MountOptions configures Mount.
type MountOptions struct {
	// Props supplies prop values to the mounted component.
	Props map[string]any `yaml:"props"`
	// Globals are shared values available to every component through
	// Instance.Global and View.Globals.
	Globals map[string]any `yaml:"globals"`
	// Slots supplies named slot markup, available as View.Slots.
	Slots map[string]string `yaml:"slots"`
	// Store is attached to the mounted component.
	Store *store.Store `yaml:"-"`
}

// Merge returns a copy of o in which every non-zero field of over replaces
// the corresponding field of o. Maps are replaced, not merged.
func (o MountOptions) Merge(over MountOptions) MountOptions {
	if over.Props != nil {
		o.Props = over.Props
	}
	if over.Globals != nil {
		o.Globals = over.Globals
	}
	if over.Slots != nil {
		o.Slots = over.Slots
	}
	if over.Store != nil {
		o.Store = over.Store
	}
	return o
}

// IsZero reports whether no field of o is set.
func (o MountOptions) IsZero() bool {
	return o.Props == nil && o.Globals == nil && o.Slots == nil && o.Store == nil
}

// Mount mounts def under a fresh root host. Prop validation problems are
// reported through the warning channel; malformed definitions and
// templates are returned as errors.
func Mount(def *Definition, opts MountOptions) (*Wrapper, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}
	root := newHost(opts)
	vm, err := newInstance(def, root, opts)
	if err != nil {
		return nil, err
	}
	w := &Wrapper{vm: vm}

	if def.corking {
		// The corked component receives no props; anything in opts.Props
		// belongs to the host.
		child, err := newInstance(def.corked, root, MountOptions{Globals: opts.Globals, Store: opts.Store})
		if err != nil {
			return nil, err
		}
		w.corked = &Wrapper{vm: child}
	}

	if _, err := vm.render(); err != nil {
		return nil, err
	}
	return w, nil
}
