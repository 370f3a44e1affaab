package component

import "fmt"

// LocatorKind identifies how a Locator finds elements.
type LocatorKind int

// Locator kinds.
const (
	SelectorLocator LocatorKind = iota + 1
	NameLocator
	RefLocator
	ComponentLocator
)

// Locator identifies elements or child components in rendered markup.
// Create one with BySelector, ByName, ByRef or ByComponent.
type Locator struct {
	kind      LocatorKind
	selector  string
	name      string
	ref       string
	component *Definition
}

// BySelector locates elements matching a CSS selector. An invalid selector
// causes a panic when the locator is evaluated.
func BySelector(selector string) Locator {
	return Locator{kind: SelectorLocator, selector: selector}
}

// ByName locates child components by component name.
func ByName(name string) Locator {
	return Locator{kind: NameLocator, name: name}
}

// ByRef locates elements carrying a ref attribute with the given value.
func ByRef(ref string) Locator {
	return Locator{kind: RefLocator, ref: ref}
}

// ByComponent locates child components mounted from def.
func ByComponent(def *Definition) Locator {
	return Locator{kind: ComponentLocator, component: def}
}

// Kind returns the locator kind.
func (l Locator) Kind() LocatorKind {
	return l.kind
}

// String returns a human-readable description for messages.
func (l Locator) String() string {
	switch l.kind {
	case SelectorLocator:
		return fmt.Sprintf("BySelector(%q)", l.selector)
	case NameLocator:
		return fmt.Sprintf("ByName(%q)", l.name)
	case RefLocator:
		return fmt.Sprintf("ByRef(%q)", l.ref)
	case ComponentLocator:
		if l.component == nil {
			return "ByComponent(nil)"
		}
		return fmt.Sprintf("ByComponent(%s)", l.component.Name)
	default:
		return "Locator(invalid)"
	}
}
