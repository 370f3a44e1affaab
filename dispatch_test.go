package compmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cboone/compmatch"
	"github.com/cboone/compmatch/component"
	"github.com/cboone/compmatch/internal/fixtures"
)

func TestDispatch(t *testing.T) {
	t.Run("dispatched", func(t *testing.T) {
		w := mount(t, fixtures.Store, component.MountOptions{Store: fixtures.NewStore()})
		r := settled(t, compmatch.Dispatch(trigger(t, w, "click"), w, fixtures.AwesomeAction))
		assert.True(t, r.Pass())
		assert.Equal(t, `The action dispatched the "awesomeAction" type on the store`, r.Message())
	})

	t.Run("not dispatched", func(t *testing.T) {
		w := mount(t, fixtures.Store, component.MountOptions{Store: fixtures.NewStore()})
		r := settled(t, compmatch.Dispatch(compmatch.Sync(func() {}), w, fixtures.AwesomeAction))
		assert.False(t, r.Pass())
		assert.Equal(t, `The action never dispatched the "awesomeAction" type on the store`, r.Message())
	})

	t.Run("earlier dispatches are ignored", func(t *testing.T) {
		w := mount(t, fixtures.Store, component.MountOptions{Store: fixtures.NewStore()})
		require.NoError(t, w.Trigger("click"))
		r := settled(t, compmatch.Dispatch(compmatch.Sync(func() {}), w, fixtures.AwesomeAction))
		assert.False(t, r.Pass())
	})

	t.Run("without a store", func(t *testing.T) {
		w := mount(t, fixtures.Store, component.MountOptions{})
		ran := 0
		r := settled(t, compmatch.Dispatch(compmatch.Sync(func() { ran++ }), w, fixtures.AwesomeAction))
		assert.False(t, r.Pass())
		assert.Equal(t, "The component doesn't have a store", r.Message())
		assert.Equal(t, 1, ran)
	})
}

func TestDispatchWith(t *testing.T) {
	payload := map[string]any{"value": "awesome"}

	w := mount(t, fixtures.Store, component.MountOptions{Store: fixtures.NewStore()})
	r := settled(t, compmatch.DispatchWith(call(t, w, "dispatchActionWithPayload", payload), w,
		fixtures.AwesomeAction, map[string]any{"value": "awesome"}))
	assert.True(t, r.Pass())

	w = mount(t, fixtures.Store, component.MountOptions{Store: fixtures.NewStore()})
	r = settled(t, compmatch.DispatchWith(call(t, w, "dispatchActionWithPayload", payload), w,
		fixtures.AwesomeAction, map[string]any{"value": "other"}))
	assert.False(t, r.Pass())
	assert.Contains(t, r.Message(), `The action dispatched the "awesomeAction" type but the payload is not matched on the store`)
	assert.Contains(t, r.Message(), `"awesomeAction" action #0 payloads (-expected +dispatched):`)
}

func TestDispatchAsync(t *testing.T) {
	w := mount(t, fixtures.Store, component.MountOptions{Store: fixtures.NewStore()})
	release := make(chan struct{})

	v := compmatch.Dispatch(compmatch.Async(func() <-chan error {
		return fixtures.Later(release, func() error { return w.Trigger("click") })
	}), w, fixtures.AwesomeAction)

	close(release)
	r := settled(t, v)
	assert.True(t, r.Pass())
}

func TestHaveDispatched(t *testing.T) {
	t.Run("without a store", func(t *testing.T) {
		w := mount(t, fixtures.Store, component.MountOptions{})
		r := compmatch.HaveDispatched(w, fixtures.AwesomeAction)
		assert.False(t, r.Pass())
		assert.Equal(t, "The component doesn't have a store", r.Message())
	})

	t.Run("without the plugin", func(t *testing.T) {
		w := mount(t, fixtures.Store, component.MountOptions{Store: fixtures.NewStore()})
		require.NoError(t, w.Trigger("click"))
		r := compmatch.HaveDispatched(w, fixtures.AwesomeAction)
		assert.False(t, r.Pass())
		assert.Equal(t, "The store doesn't have the compmatch dispatch log plugin", r.Message())
	})

	t.Run("with the plugin", func(t *testing.T) {
		s := fixtures.NewStore(compmatch.DispatchLogPlugin())
		w := mount(t, fixtures.Store, component.MountOptions{Store: s})

		r := compmatch.HaveDispatched(w, fixtures.AwesomeAction)
		assert.False(t, r.Pass())
		assert.Equal(t, `"awesomeAction" action has never been dispatched`, r.Message())

		require.NoError(t, w.Call("dispatchActionWithPayload", 42))
		r = compmatch.HaveDispatched(w, fixtures.AwesomeAction)
		assert.True(t, r.Pass())
		assert.Equal(t, `"awesomeAction" action has been dispatched`, r.Message())

		r = compmatch.HaveDispatchedWith(w, fixtures.AwesomeAction, 42)
		assert.True(t, r.Pass())
		assert.Equal(t, `"awesomeAction" action has been dispatched with expected payload`, r.Message())

		r = compmatch.HaveDispatchedWith(w, fixtures.AwesomeAction, 7)
		assert.False(t, r.Pass())
		assert.Contains(t, r.Message(), `"awesomeAction" action has been dispatched, but payload isn't matched to the expectation`)
	})
}

func TestDispatchLogPluginTwice(t *testing.T) {
	s := fixtures.NewStore(compmatch.DispatchLogPlugin(), compmatch.DispatchLogPlugin())
	require.NoError(t, s.Dispatch(fixtures.AwesomeAction, nil))

	v, ok := s.Attachment(compmatch.DispatchLogKey)
	require.True(t, ok)
	log, ok := v.(*compmatch.DispatchLog)
	require.True(t, ok)
	assert.Len(t, log.Dispatched(), 1)
}

func TestDispatchWithAsync(t *testing.T) {
	s := fixtures.NewStore()
	w := mount(t, fixtures.Store, component.MountOptions{Store: s})
	release := make(chan struct{})

	v := compmatch.DispatchWith(compmatch.Async(func() <-chan error {
		return fixtures.Later(release, func() error {
			return w.Call("dispatchActionWithPayload", "late")
		})
	}), w, fixtures.AwesomeAction, "late")
	require.True(t, v.Deferred())
	assert.Equal(t, 1, s.Subscriptions(), "subscription released before the action settled")

	close(release)
	r := settled(t, v)
	assert.True(t, r.Pass(), r.Message())
	assert.Equal(t, 0, s.Subscriptions())
}

func TestDispatchWithAsyncMismatch(t *testing.T) {
	s := fixtures.NewStore()
	w := mount(t, fixtures.Store, component.MountOptions{Store: s})
	release := make(chan struct{})
	close(release)

	v := compmatch.DispatchWith(compmatch.Async(func() <-chan error {
		return fixtures.Later(release, func() error {
			return w.Call("dispatchActionWithPayload", "late")
		})
	}), w, fixtures.AwesomeAction, "early")

	r := settled(t, v)
	assert.False(t, r.Pass())
	assert.Contains(t, r.Message(), `"awesomeAction" action #0 payloads (-expected +dispatched):`)
	assert.Equal(t, 0, s.Subscriptions())
}

func TestDispatchReleasesSubscription(t *testing.T) {
	s := fixtures.NewStore()
	w := mount(t, fixtures.Store, component.MountOptions{Store: s})

	r := settled(t, compmatch.Dispatch(trigger(t, w, "click"), w, fixtures.AwesomeAction))
	assert.True(t, r.Pass())
	assert.Equal(t, 0, s.Subscriptions())
}
