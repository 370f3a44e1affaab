package compmatch

import (
	"log/slog"
	"sync"

	"github.com/cboone/compmatch/store"
)

// DispatchLogKey is the store attachment key under which DispatchLogPlugin
// records dispatched actions.
const DispatchLogKey = "compmatch"

const (
	msgNoStore       = "The component doesn't have a store"
	msgNoDispatchLog = "The store doesn't have the compmatch dispatch log plugin"
)

var (
	dispatchMessages = recordMessages{
		occurred:            "The action dispatched the %q type on the store",
		occurredWithPayload: "The action dispatched the %q type on the store",
		mismatch:            "The action dispatched the %q type but the payload is not matched on the store\n\n%s",
		never:               "The action never dispatched the %q type on the store",
		label:               "action",
		annotation:          "dispatched",
	}
	dispatchedMessages = recordMessages{
		occurred:            "%q action has been dispatched",
		occurredWithPayload: "%q action has been dispatched with expected payload",
		mismatch:            "%q action has been dispatched, but payload isn't matched to the expectation\n\n%s",
		never:               "%q action has never been dispatched",
		label:               "action",
		annotation:          "dispatched",
	}
)

// DispatchLog records every action dispatched on a store.
type DispatchLog struct {
	mu         sync.Mutex
	dispatched []store.Action
}

// Dispatched returns a copy of the recorded actions, oldest first.
func (l *DispatchLog) Dispatched() []store.Action {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := make([]store.Action, len(l.dispatched))
	copy(cp, l.dispatched)
	return cp
}

func (l *DispatchLog) record(a store.Action) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dispatched = append(l.dispatched, a)
}

// DispatchLogPlugin returns a store plugin that records every dispatched
// action under DispatchLogKey, for HaveDispatched. Installing it twice on
// the same store keeps the first log.
func DispatchLogPlugin() store.Plugin {
	return func(s *store.Store) {
		log := &DispatchLog{}
		if err := s.Attach(DispatchLogKey, log); err != nil {
			return
		}
		s.SubscribeAction(log.record)
	}
}

// Dispatch passes when action dispatches actionType on the store of
// target. Only actions dispatched while the action runs are considered. A
// target without a store fails.
func Dispatch(action Action, target StoreHolder, actionType string) Verdict {
	return dispatchTransition(action, target, actionType, anyPayload())
}

// DispatchWith is Dispatch with an expected payload, compared deeply.
func DispatchWith(action Action, target StoreHolder, actionType string, payload any) Verdict {
	return dispatchTransition(action, target, actionType, payloadOf([]any{payload}, exactArity))
}

func dispatchTransition(action Action, target StoreHolder, actionType string, exp expectation) Verdict {
	s := target.Store()
	if s == nil {
		// The action still runs once and observation still brackets it.
		observe := func() []Record { return nil }
		return Transition(action, observe, func(_, _ []Record) Result {
			return resultf(false, "%s", msgNoStore)
		})
	}

	rec := &actionRecorder{}
	unsubscribe := s.SubscribeAction(rec.record)
	observe := func() []Record {
		return actionRecords(actionType, rec.snapshot())
	}
	return transition(action, observe, func(before, after []Record) Result {
		produced := newRecords(before, after)
		slog.Debug("compmatch: observed dispatches",
			"type", actionType, "before", len(before), "new", len(produced))
		return classifyRecords(actionType, produced, exp, dispatchMessages)
	}, unsubscribe)
}

// HaveDispatched passes when actionType appears in the dispatch log of the
// store of target. The store must have DispatchLogPlugin installed.
func HaveDispatched(target StoreHolder, actionType string) Result {
	return haveDispatched(target, actionType, anyPayload())
}

// HaveDispatchedWith is HaveDispatched with an expected payload.
func HaveDispatchedWith(target StoreHolder, actionType string, payload any) Result {
	return haveDispatched(target, actionType, payloadOf([]any{payload}, exactArity))
}

func haveDispatched(target StoreHolder, actionType string, exp expectation) Result {
	s := target.Store()
	if s == nil {
		return resultf(false, "%s", msgNoStore)
	}
	v, ok := s.Attachment(DispatchLogKey)
	log, isLog := v.(*DispatchLog)
	if !ok || !isLog {
		return resultf(false, "%s", msgNoDispatchLog)
	}
	return classifyRecords(actionType, actionRecords(actionType, log.Dispatched()), exp, dispatchedMessages)
}
