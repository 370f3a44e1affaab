package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cboone/compmatch/store"
)

func TestDispatchNotifiesBeforeHandler(t *testing.T) {
	var order []string
	s := store.New(store.Options{
		Actions: map[string]store.Handler{
			"save": func(_ *store.Store, payload any) error {
				order = append(order, "handler")
				return nil
			},
		},
	})
	s.SubscribeAction(func(a store.Action) {
		order = append(order, "subscriber:"+a.Type)
	})

	require.NoError(t, s.Dispatch("save", 1))
	assert.Equal(t, []string{"subscriber:save", "handler"}, order)
}

func TestDispatchUnknown(t *testing.T) {
	s := store.New(store.Options{})
	notified := false
	s.SubscribeAction(func(store.Action) { notified = true })

	err := s.Dispatch("nope", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrUnknownAction))
	assert.False(t, notified)
}

func TestDispatchHandlerError(t *testing.T) {
	boom := errors.New("boom")
	s := store.New(store.Options{
		Actions: map[string]store.Handler{
			"fail": func(*store.Store, any) error { return boom },
		},
	})

	err := s.Dispatch("fail", nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"fail"`)
}

func TestUnsubscribe(t *testing.T) {
	s := store.New(store.Options{Actions: map[string]store.Handler{"ping": nil}})

	var got []store.Action
	unsubscribe := s.SubscribeAction(func(a store.Action) { got = append(got, a) })
	assert.Equal(t, 1, s.Subscriptions())

	require.NoError(t, s.Dispatch("ping", "first"))
	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, s.Subscriptions())
	require.NoError(t, s.Dispatch("ping", "second"))

	assert.Equal(t, []store.Action{{Type: "ping", Payload: "first"}}, got)
}

func TestPluginsAndAttachments(t *testing.T) {
	s := store.New(store.Options{
		Plugins: []store.Plugin{
			func(s *store.Store) {
				require.NoError(t, s.Attach("log", "value"))
			},
		},
	})

	v, ok := s.Attachment("log")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	err := s.Attach("log", "other")
	assert.ErrorIs(t, err, store.ErrAttached)

	_, ok = s.Attachment("missing")
	assert.False(t, ok)
}
