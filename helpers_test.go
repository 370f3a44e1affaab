package compmatch_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cboone/compmatch"
	"github.com/cboone/compmatch/component"
)

func mount(t *testing.T, def *component.Definition, opts component.MountOptions) *component.Wrapper {
	t.Helper()
	w, err := component.Mount(def, opts)
	require.NoError(t, err)
	return w
}

// call returns a synchronous action running method on w.
func call(t *testing.T, w *component.Wrapper, method string, args ...any) compmatch.Action {
	t.Helper()
	return compmatch.Sync(func() {
		require.NoError(t, w.Call(method, args...))
	})
}

func trigger(t *testing.T, w *component.Wrapper, event string) compmatch.Action {
	t.Helper()
	return compmatch.Sync(func() {
		require.NoError(t, w.Trigger(event))
	})
}

// recorder is a testing.TB that records failures instead of reporting
// them.
type recorder struct {
	testing.TB
	errors []string
	fatals []string
}

func newRecorder(t *testing.T) *recorder {
	return &recorder{TB: t}
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *recorder) failed() bool {
	return len(r.errors) > 0 || len(r.fatals) > 0
}
