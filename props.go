package compmatch

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/kr/pretty"

	"github.com/cboone/compmatch/component"
)

// Substrings of the warnings package component reports during Mount. The
// trailing punctuation keeps "name" from matching a prop called "names".
const (
	missingRequiredWarning = `Missing required prop: "%s"` + "\n"
	typeCheckWarning       = `Invalid prop: type check failed for prop "%s".`
	customValidatorWarning = `Invalid prop: custom validator check failed for prop "%s".` + "\n"
)

// warnCapture serializes use of the process-wide warning channel.
var warnCapture sync.Mutex

// captureWarnings runs mount with the warning channel redirected into the
// returned slice. The previous handler is restored on every path,
// including a panic in mount.
func captureWarnings(mount func() error) ([]component.Warning, error) {
	warnCapture.Lock()
	defer warnCapture.Unlock()

	var warnings []component.Warning
	restore := component.SetWarnHandler(func(args ...any) {
		warnings = append(warnings, component.Warning(args))
	})
	defer restore()

	err := mount()
	return warnings, err
}

// collectWarnings mounts def with props and returns the warnings reported
// during the mount. Mount errors are returned unchanged.
func (m *Matchers) collectWarnings(def *component.Definition, props map[string]any, dynamic []component.MountOptions) ([]component.Warning, error) {
	opts := m.mountOptions(dynamic)
	opts.Props = props
	warnings, err := captureWarnings(func() error {
		_, err := component.Mount(def, opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	m.logger().Debug("compmatch: collected prop warnings", "component", def.Name, "warnings", len(warnings))
	return warnings, nil
}

// hasWarning reports whether a warning contains any of the formats
// applied to name.
func hasWarning(warnings []component.Warning, name string, formats ...string) bool {
	for _, w := range warnings {
		for _, f := range formats {
			if w.Contains(fmt.Sprintf(f, name)) {
				return true
			}
		}
	}
	return false
}

// RequireProp passes when mounting def without props reports name as a
// missing required prop.
func (m *Matchers) RequireProp(def *component.Definition, name string, dynamic ...component.MountOptions) (Result, error) {
	warnings, err := m.collectWarnings(def, map[string]any{}, dynamic)
	if err != nil {
		return Result{}, err
	}
	if hasWarning(warnings, name, missingRequiredWarning) {
		return resultf(true, "'%s' prop is claimed as required", name), nil
	}
	return resultf(false, "'%s' prop is not claimed as required", name), nil
}

// BeValidProp passes when def accepts value for name: no required, type or
// custom validator warning names it.
func (m *Matchers) BeValidProp(def *component.Definition, name string, value any, dynamic ...component.MountOptions) (Result, error) {
	warnings, err := m.collectWarnings(def, map[string]any{name: value}, dynamic)
	if err != nil {
		return Result{}, err
	}
	if hasWarning(warnings, name, typeCheckWarning, missingRequiredWarning, customValidatorWarning) {
		return resultf(false, "'%s' is not valid", name), nil
	}
	return resultf(true, "'%s' is valid", name), nil
}

// BeValidProps passes when mounting def with props reports no warning at
// all.
func (m *Matchers) BeValidProps(def *component.Definition, props map[string]any, dynamic ...component.MountOptions) (Result, error) {
	warnings, err := m.collectWarnings(def, props, dynamic)
	if err != nil {
		return Result{}, err
	}
	if len(warnings) == 0 {
		return resultf(true, "Props are valid"), nil
	}
	return NewResult(false, func() string {
		lines := make([]string, len(warnings))
		for i, w := range warnings {
			lines[i] = "    " + strings.ReplaceAll(w.String(), "\n", "\n    ")
		}
		return "Props are not valid\n\n" + strings.Join(lines, "\n\n")
	}), nil
}

// BeValidPropWithTypeCheck passes when value passes the type check of
// name.
func (m *Matchers) BeValidPropWithTypeCheck(def *component.Definition, name string, value any, dynamic ...component.MountOptions) (Result, error) {
	return m.singleCheck(def, name, value, typeCheckWarning, dynamic)
}

// BeValidPropWithCustomValidator passes when value passes the custom
// validator of name.
func (m *Matchers) BeValidPropWithCustomValidator(def *component.Definition, name string, value any, dynamic ...component.MountOptions) (Result, error) {
	return m.singleCheck(def, name, value, customValidatorWarning, dynamic)
}

func (m *Matchers) singleCheck(def *component.Definition, name string, value any, warning string, dynamic []component.MountOptions) (Result, error) {
	warnings, err := m.collectWarnings(def, map[string]any{name: value}, dynamic)
	if err != nil {
		return Result{}, err
	}
	if hasWarning(warnings, name, warning) {
		return NewResult(false, func() string {
			return fmt.Sprintf("'%s' prop is invalid with %s", name, formatValue(value))
		}), nil
	}
	return NewResult(true, func() string {
		return fmt.Sprintf("'%s' prop is valid with %s", name, formatValue(value))
	}), nil
}

// HaveDefaultProp passes when name resolves to want, compared deeply, when
// def is mounted without a value for it. def is corked so that no
// configured prop value reaches it; warnings from the mount are discarded.
func (m *Matchers) HaveDefaultProp(def *component.Definition, name string, want any, dynamic ...component.MountOptions) (Result, error) {
	opts := m.mountOptions(dynamic)
	var w *component.Wrapper
	_, err := captureWarnings(func() error {
		var err error
		w, err = component.Mount(component.Cork(def), opts)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	given := w.Corked().Prop(name)
	if equal(want, given) {
		return NewResult(true, func() string {
			return fmt.Sprintf("'%s' prop is given %s as default", name, formatValue(want))
		}), nil
	}
	return NewResult(false, func() string {
		return fmt.Sprintf("'%s' prop is not given %s as default (is given %s)",
			name, formatValue(want), formatValue(given))
	}), nil
}

// formatValue renders a prop value for a message. Scalars print as
// written in Go source; composite values go through kr/pretty.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v)
	default:
		return pretty.Sprint(v)
	}
}

// RequireProp calls Matchers.RequireProp with no configured defaults.
func RequireProp(def *component.Definition, name string, dynamic ...component.MountOptions) (Result, error) {
	return std.RequireProp(def, name, dynamic...)
}

// BeValidProp calls Matchers.BeValidProp with no configured defaults.
func BeValidProp(def *component.Definition, name string, value any, dynamic ...component.MountOptions) (Result, error) {
	return std.BeValidProp(def, name, value, dynamic...)
}

// BeValidProps calls Matchers.BeValidProps with no configured defaults.
func BeValidProps(def *component.Definition, props map[string]any, dynamic ...component.MountOptions) (Result, error) {
	return std.BeValidProps(def, props, dynamic...)
}

// BeValidPropWithTypeCheck calls Matchers.BeValidPropWithTypeCheck with no
// configured defaults.
func BeValidPropWithTypeCheck(def *component.Definition, name string, value any, dynamic ...component.MountOptions) (Result, error) {
	return std.BeValidPropWithTypeCheck(def, name, value, dynamic...)
}

// BeValidPropWithCustomValidator calls
// Matchers.BeValidPropWithCustomValidator with no configured defaults.
func BeValidPropWithCustomValidator(def *component.Definition, name string, value any, dynamic ...component.MountOptions) (Result, error) {
	return std.BeValidPropWithCustomValidator(def, name, value, dynamic...)
}

// HaveDefaultProp calls Matchers.HaveDefaultProp with no configured
// defaults.
func HaveDefaultProp(def *component.Definition, name string, want any, dynamic ...component.MountOptions) (Result, error) {
	return std.HaveDefaultProp(def, name, want, dynamic...)
}
