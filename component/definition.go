package component

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

var (
	// ErrNilDefinition is returned when mounting a nil definition.
	ErrNilDefinition = errors.New("nil definition")
	// ErrNoName is returned when a definition has no name.
	ErrNoName = errors.New("definition has no name")
	// ErrNoTemplate is returned when a definition has neither a template
	// nor a render func.
	ErrNoTemplate = errors.New("definition has no template or render func")
	// ErrUnknownMethod is returned by Call for an undeclared method.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrNoStore is returned by Instance.Dispatch when no store is mounted.
	ErrNoStore = errors.New("no store")
)

// Kind is a prop type accepted by a Prop declaration.
type Kind int

// Prop kinds.
const (
	String Kind = iota + 1
	Number
	Boolean
	Array
	Object
	Function
)

func (k Kind) String() string {
	switch k {
	case String:
		return "String"
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Array:
		return "Array"
	case Object:
		return "Object"
	case Function:
		return "Function"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) accepts(v any) bool {
	return kindOf(v) == k
}

// kindOf classifies a Go value into a prop kind. It returns 0 for nil.
func kindOf(v any) Kind {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		return Object
	}
	switch rv.Kind() {
	case reflect.String:
		return String
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Map, reflect.Struct:
		return Object
	case reflect.Func:
		return Function
	default:
		return 0
	}
}

// Prop declares an input of a component.
type Prop struct {
	// Types lists the accepted kinds. Empty accepts any value.
	Types []Kind
	// Required reports a warning when the prop is not supplied.
	Required bool
	// Default is used when the prop is not supplied.
	Default any
	// DefaultFunc, if set, is called instead of using Default.
	DefaultFunc func() any
	// Validator reports a warning when it returns false.
	Validator func(value any) bool
}

func (p Prop) defaultValue() any {
	if p.DefaultFunc != nil {
		return p.DefaultFunc()
	}
	return p.Default
}

// Method is a component method or event handler.
type Method func(vm *Instance, args ...any) error

// Definition describes a component.
type Definition struct {
	Name  string
	Props map[string]Prop
	// Data returns the initial state. Props are resolved when it runs.
	Data func(vm *Instance) map[string]any
	// Template is an html/template source executed with a View.
	Template string
	// Render, if set, is used instead of Template.
	Render  func(vm *Instance) string
	Methods map[string]Method
	// On maps DOM event names to handlers run by Wrapper.Trigger.
	On map[string]Method
	// Components registers child components by tag.
	Components map[string]*Definition

	corked  *Definition
	corking bool
}

func (d *Definition) validate() error {
	if d == nil {
		return &Error{Op: "mount", Err: ErrNilDefinition}
	}
	if d.Name == "" {
		return &Error{Op: "mount", Err: ErrNoName}
	}
	if d.Template == "" && d.Render == nil {
		return &Error{Op: "mount", Component: d.Name, Err: ErrNoTemplate}
	}
	return nil
}

// tagFor returns the tag under which child is rendered inside d, lowercased
// as the HTML parser reports it.
func (d *Definition) tagFor(child *Definition) string {
	for tag, c := range d.Components {
		if c == child {
			return strings.ToLower(tag)
		}
	}
	return Tag(child.Name)
}

// childAt returns the child registered under tag, compared case-insensitively.
func (d *Definition) childAt(tag string) (*Definition, bool) {
	for key, c := range d.Components {
		if strings.EqualFold(key, tag) && c != nil {
			return c, true
		}
	}
	return nil, false
}

// Cork returns a disposable host whose only content is def. Mounting the
// host mounts def with no props supplied, so every prop of def resolves to
// its declared default. The corked component is available from
// Wrapper.Corked.
func Cork(def *Definition) *Definition {
	tag := "corked-component"
	if def != nil {
		tag = Tag(def.Name)
	}
	host := &Definition{
		Name:     "Cork",
		Template: "<" + tag + "></" + tag + ">",
		corked:   def,
		corking:  true,
	}
	if def != nil {
		host.Components = map[string]*Definition{tag: def}
	}
	return host
}

// Tag converts a component name to its kebab-case tag.
func Tag(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Error represents a mount or render failure.
type Error struct {
	Op        string
	Component string
	Err       error
}

func (e *Error) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("component %s %s: %v", e.Op, e.Component, e.Err)
	}
	return fmt.Sprintf("component %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
