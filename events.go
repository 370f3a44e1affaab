package compmatch

import "log/slog"

var (
	emitMessages = recordMessages{
		occurred:            "The action emitted the %q event",
		occurredWithPayload: "The action emitted the %q event with the expected payload",
		mismatch:            "The action emitted the %q event, but the payload is not matched\n\n%s",
		never:               "The action did not emit the %q event",
		label:               "event",
		annotation:          "emitted",
	}
	emitOnRootMessages = recordMessages{
		occurred:            "The action emitted the %q event on the root",
		occurredWithPayload: "The action emitted the %q event on the root with the expected payload",
		mismatch:            "The action emitted the %q event on the root, but the payload is not matched\n\n%s",
		never:               "The action did not emit the %q event on the root",
		label:               "event",
		annotation:          "emitted",
	}
	emittedMessages = recordMessages{
		occurred:            "The %q event was emitted",
		occurredWithPayload: "The %q event was emitted with the expected payload",
		mismatch:            "The %q event was emitted but the payload is not matched\n\n%s",
		never:               "The %q event was never emitted",
		label:               "event",
		annotation:          "emitted",
	}
	emittedOnRootMessages = recordMessages{
		occurred:            "The %q event was emitted on the root",
		occurredWithPayload: "The %q event was emitted on the root with the expected payload",
		mismatch:            "The %q event was emitted on the root but the payload is not matched\n\n%s",
		never:               "The %q event was never emitted on the root",
		label:               "event",
		annotation:          "emitted",
	}
)

// Emit passes when action makes target emit event. With payloads, at least
// one new emission must carry exactly those arguments, compared deeply.
func Emit(action Action, target Emitter, event string, payloads ...any) Verdict {
	return eventTransition("emit", action, func() [][]any { return target.Emitted(event) },
		event, payloadOf(payloads, exactArity), emitMessages)
}

// EmitOnRoot is Emit for events emitted on the root host.
func EmitOnRoot(action Action, target RootEmitter, event string, payloads ...any) Verdict {
	return eventTransition("emit-on-root", action, func() [][]any { return target.EmittedOnRoot(event) },
		event, payloadOf(payloads, exactArity), emitOnRootMessages)
}

func eventTransition(matcher string, action Action, log func() [][]any, event string, exp expectation, msgs recordMessages) Verdict {
	observe := func() []Record {
		return eventRecords(event, log())
	}
	return Transition(action, observe, func(before, after []Record) Result {
		produced := newRecords(before, after)
		slog.Debug("compmatch: observed events",
			"matcher", matcher, "event", event, "before", len(before), "new", len(produced))
		return classifyRecords(event, produced, exp, msgs)
	})
}

// HaveEmitted passes when target has emitted event. With payloads, at least
// one emission must carry exactly those arguments.
func HaveEmitted(target Emitter, event string, payloads ...any) Result {
	return classifyRecords(event, eventRecords(event, target.Emitted(event)),
		payloadOf(payloads, exactArity), emittedMessages)
}

// HaveEmittedOnRoot is HaveEmitted for the root host.
func HaveEmittedOnRoot(target RootEmitter, event string, payloads ...any) Result {
	return classifyRecords(event, eventRecords(event, target.EmittedOnRoot(event)),
		payloadOf(payloads, exactArity), emittedOnRootMessages)
}

// BeEmitted passes when target has emitted event with any payload.
func BeEmitted(target Emitter, event string) Result {
	return classifyRecords(event, eventRecords(event, target.Emitted(event)), anyPayload(), emittedMessages)
}

// BeEmittedWith passes when an emission of event has payload as its first
// argument. Unlike HaveEmitted, further arguments are ignored.
func BeEmittedWith(target Emitter, event string, payload any) Result {
	return classifyRecords(event, eventRecords(event, target.Emitted(event)),
		payloadOf([]any{payload}, leadingArgument), emittedMessages)
}
