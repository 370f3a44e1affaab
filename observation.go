package compmatch

import (
	"sync"

	"github.com/cboone/compmatch/store"
)

// Record is one emitted event or dispatched action.
type Record struct {
	Type    string
	Payload []any
}

// eventRecords converts an emitted-event log into records.
func eventRecords(event string, log [][]any) []Record {
	records := make([]Record, len(log))
	for i, payload := range log {
		records[i] = Record{Type: event, Payload: payload}
	}
	return records
}

// actionRecords converts dispatched actions of the given type into records.
// Every action carries exactly one payload argument.
func actionRecords(actionType string, actions []store.Action) []Record {
	var records []Record
	for _, a := range actions {
		if a.Type == actionType {
			records = append(records, Record{Type: a.Type, Payload: []any{a.Payload}})
		}
	}
	return records
}

// newRecords returns the records in after that were not in before.
func newRecords(before, after []Record) []Record {
	if len(after) <= len(before) {
		return nil
	}
	return after[len(before):]
}

// actionRecorder collects actions seen by a store subscription.
type actionRecorder struct {
	mu      sync.Mutex
	actions []store.Action
}

func (r *actionRecorder) record(a store.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
}

func (r *actionRecorder) snapshot() []store.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]store.Action, len(r.actions))
	copy(cp, r.actions)
	return cp
}
