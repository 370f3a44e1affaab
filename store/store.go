// Package store implements a small action store for components mounted by
// package component. Components dispatch named actions with an optional
// payload; plugins and tests observe dispatches through SubscribeAction.
package store

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownAction is returned by Dispatch for an action type with no
	// registered handler.
	ErrUnknownAction = errors.New("unknown action type")
	// ErrAttached is returned by Attach when the key is already defined.
	ErrAttached = errors.New("attachment already defined")
)

// Action is a dispatched action as seen by subscribers.
type Action struct {
	Type    string
	Payload any
}

// Handler runs a dispatched action.
type Handler func(s *Store, payload any) error

// Plugin is called once with the store from New.
type Plugin func(s *Store)

// Options configures a Store created by New.
type Options struct {
	Actions map[string]Handler
	Plugins []Plugin
}

// Store holds action handlers, action subscribers and write-once
// attachments. It is safe for concurrent use.
type Store struct {
	actions map[string]Handler

	mu          sync.Mutex
	subs        []*subscription
	attachments map[string]any
}

type subscription struct {
	fn func(Action)
}

// New creates a store and runs its plugins in order.
func New(opts Options) *Store {
	s := &Store{
		actions:     make(map[string]Handler, len(opts.Actions)),
		attachments: make(map[string]any),
	}
	for name, h := range opts.Actions {
		s.actions[name] = h
	}
	for _, p := range opts.Plugins {
		p(s)
	}
	return s
}

// Dispatch notifies action subscribers and then runs the handler for
// actionType. Unknown types return ErrUnknownAction without notifying.
func (s *Store) Dispatch(actionType string, payload any) error {
	h, ok := s.actions[actionType]
	if !ok {
		return fmt.Errorf("store: dispatch %q: %w", actionType, ErrUnknownAction)
	}

	s.mu.Lock()
	subs := make([]*subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	action := Action{Type: actionType, Payload: payload}
	for _, sub := range subs {
		sub.fn(action)
	}

	if h == nil {
		return nil
	}
	if err := h(s, payload); err != nil {
		return fmt.Errorf("store: dispatch %q: %w", actionType, err)
	}
	return nil
}

// SubscribeAction registers fn to receive every dispatched action. The
// returned func removes the subscription and is safe to call more than once.
func (s *Store) SubscribeAction(fn func(Action)) (unsubscribe func()) {
	sub := &subscription{fn: fn}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, existing := range s.subs {
			if existing == sub {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscriptions returns the number of active action subscriptions.
func (s *Store) Subscriptions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Attach defines a named value on the store. A key can be defined once.
func (s *Store) Attach(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attachments[key]; ok {
		return fmt.Errorf("store: attach %q: %w", key, ErrAttached)
	}
	s.attachments[key] = value
	return nil
}

// Attachment returns the value defined for key.
func (s *Store) Attachment(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.attachments[key]
	return v, ok
}
