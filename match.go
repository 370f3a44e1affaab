package compmatch

import (
	"fmt"
	"strings"
)

// payloadPolicy decides whether a record's payload satisfies an expected
// payload.
type payloadPolicy int

const (
	// exactArity requires the same number of arguments, each deeply equal.
	exactArity payloadPolicy = iota
	// leadingArgument compares the first argument only; trailing
	// arguments are ignored.
	leadingArgument
)

func (p payloadPolicy) matches(want, got []any) bool {
	if p == leadingArgument {
		return len(want) > 0 && len(got) > 0 && equal(want[0], got[0])
	}
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if !equal(want[i], got[i]) {
			return false
		}
	}
	return true
}

func (p payloadPolicy) diff(want, got []any) string {
	if p == leadingArgument {
		var first any
		if len(got) > 0 {
			first = got[0]
		}
		return diff(want[0], first)
	}
	return diff(want, got)
}

// expectation is the optional payload a record matcher looks for.
type expectation struct {
	given   bool
	payload []any
	policy  payloadPolicy
}

func anyPayload() expectation {
	return expectation{}
}

func payloadOf(payload []any, policy payloadPolicy) expectation {
	if len(payload) == 0 && policy == exactArity {
		return expectation{}
	}
	return expectation{given: true, payload: payload, policy: policy}
}

// recordMessages holds the format strings of one record matcher family.
// Each takes the event or action name; mismatch also takes the diffs.
type recordMessages struct {
	occurred            string
	occurredWithPayload string
	mismatch            string
	never               string
	// label names the records in diff headings, e.g. "event".
	label string
	// annotation names the actual side of diffs, e.g. "emitted".
	annotation string
}

// classifyRecords classifies the records produced for name against exp.
func classifyRecords(name string, records []Record, exp expectation, msgs recordMessages) Result {
	if !exp.given {
		if len(records) > 0 {
			return resultf(true, msgs.occurred, name)
		}
		return resultf(false, msgs.never, name)
	}
	for _, r := range records {
		if exp.policy.matches(exp.payload, r.Payload) {
			return resultf(true, msgs.occurredWithPayload, name)
		}
	}
	if len(records) == 0 {
		return resultf(false, msgs.never, name)
	}
	return NewResult(false, func() string {
		return fmt.Sprintf(msgs.mismatch, name, payloadDiffs(name, records, exp, msgs))
	})
}

// payloadDiffs lists a diff of the expected payload against each record.
func payloadDiffs(name string, records []Record, exp expectation, msgs recordMessages) string {
	diffs := make([]string, len(records))
	for i, r := range records {
		diffs[i] = fmt.Sprintf("%q %s #%d payloads (-expected +%s):\n\n%s",
			name, msgs.label, i, msgs.annotation, exp.policy.diff(exp.payload, r.Payload))
	}
	return strings.Join(diffs, "\n\n")
}
