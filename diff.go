package compmatch

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// equal reports deep value equality, including unexported struct fields.
func equal(want, got any) bool {
	return cmp.Equal(want, got, allowUnexported(want, got))
}

// diff returns a (-want +got) structural diff.
func diff(want, got any) string {
	return cmp.Diff(want, got, allowUnexported(want, got))
}

// allowUnexported lets cmp descend into every struct type reachable from vs.
func allowUnexported(vs ...any) cmp.Option {
	w := typeWalk{types: make(map[reflect.Type]struct{}), seen: make(map[visit]struct{})}
	for _, v := range vs {
		w.structTypes(reflect.ValueOf(v))
	}
	typs := make([]any, 0, len(w.types))
	for t := range w.types {
		typs = append(typs, reflect.New(t).Elem().Interface())
	}
	return cmp.AllowUnexported(typs...)
}

// visit identifies a reference already walked. Slices also key on length,
// since a subslice shares its pointer with the slice it came from.
type visit struct {
	typ reflect.Type
	ptr uintptr
	len int
}

type typeWalk struct {
	types map[reflect.Type]struct{}
	seen  map[visit]struct{}
}

// enter reports whether v is walked for the first time. Cyclic values
// stop here.
func (w typeWalk) enter(v reflect.Value) bool {
	k := visit{typ: v.Type(), ptr: v.Pointer()}
	if v.Kind() == reflect.Slice {
		k.len = v.Len()
	}
	if _, ok := w.seen[k]; ok {
		return false
	}
	w.seen[k] = struct{}{}
	return true
}

func (w typeWalk) structTypes(v reflect.Value) {
	if !v.IsValid() {
		return
	}
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() && w.enter(v) {
			w.structTypes(v.Elem())
		}
	case reflect.Interface:
		if !v.IsNil() {
			w.structTypes(v.Elem())
		}
	case reflect.Slice:
		if v.IsNil() || !w.enter(v) {
			return
		}
		for i := 0; i < v.Len(); i++ {
			w.structTypes(v.Index(i))
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			w.structTypes(v.Index(i))
		}
	case reflect.Map:
		if v.IsNil() || !w.enter(v) {
			return
		}
		iter := v.MapRange()
		for iter.Next() {
			w.structTypes(iter.Value())
		}
	case reflect.Struct:
		w.types[v.Type()] = struct{}{}
		for i := 0; i < v.NumField(); i++ {
			w.structTypes(v.Field(i))
		}
	}
}
