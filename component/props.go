package component

import (
	"fmt"
	"sort"
	"strings"
)

// resolveProps validates supplied against the declared props of def and
// returns the resolved values. Problems are reported through the warning
// channel in prop-name order.
func resolveProps(def *Definition, supplied map[string]any) map[string]any {
	names := make([]string, 0, len(def.Props))
	for name := range def.Props {
		names = append(names, name)
	}
	sort.Strings(names)

	resolved := make(map[string]any, len(def.Props))
	for _, name := range names {
		prop := def.Props[name]
		value, present := supplied[name]
		absent := !present || value == nil
		if absent {
			value = prop.defaultValue()
		}
		resolved[name] = value
		assertProp(def, name, prop, value, absent)
	}
	return resolved
}

func assertProp(def *Definition, name string, prop Prop, value any, absent bool) {
	if prop.Required && absent {
		warnf(def, "Missing required prop: %s", quoteName(name))
		return
	}
	if value == nil && !prop.Required {
		return
	}
	if len(prop.Types) > 0 && !acceptsAny(prop.Types, value) {
		warnf(def, "Invalid prop: type check failed for prop %s. Expected %s, got %s with value %s.",
			quoteName(name), joinKinds(prop.Types), kindName(value), describe(value))
		return
	}
	if prop.Validator != nil && !prop.Validator(value) {
		warnf(def, "Invalid prop: custom validator check failed for prop %s.", quoteName(name))
	}
}

// quoteName wraps a prop name in double quotes without escaping, so that
// matchers can search for the literal name.
func quoteName(name string) string {
	return `"` + name + `"`
}

func acceptsAny(kinds []Kind, v any) bool {
	for _, k := range kinds {
		if k.accepts(v) {
			return true
		}
	}
	return false
}

func joinKinds(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}

func kindName(v any) string {
	k := kindOf(v)
	if k == 0 {
		if v == nil {
			return "Null"
		}
		return fmt.Sprintf("%T", v)
	}
	return k.String()
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
