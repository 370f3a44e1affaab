package compmatch

// Transition observes a target across action. It calls observe, runs the
// action once, calls observe again and classifies the pair. When the
// action is asynchronous the second observation and the classification
// happen after it settles, and the returned Verdict is deferred. observe is
// called exactly twice unless the action fails to settle.
func Transition[T any](action Action, observe func() T, classify func(before, after T) Result) Verdict {
	return transition(action, observe, classify, nil)
}

// transition is Transition with a release func that runs once the
// classification is done, on every path.
func transition[T any](action Action, observe func() T, classify func(before, after T) Result, release func()) Verdict {
	releaseNow := release != nil
	defer func() {
		if releaseNow {
			release()
		}
	}()

	before := observe()
	pending := action.start()
	if pending == nil {
		return Immediate(classify(before, observe()))
	}

	releaseNow = false
	return deferVerdict(func() (Result, error) {
		if release != nil {
			defer release()
		}
		if err := <-pending; err != nil {
			return Result{}, err
		}
		return classify(before, observe()), nil
	})
}

type transitionMessages struct {
	already   string
	unchanged string
	changed   string
}

// appearance passes when the observation goes from false to true.
func appearance(msgs transitionMessages) func(before, after bool) Result {
	return func(before, after bool) Result {
		switch {
		case before:
			return resultf(false, "%s", msgs.already)
		case !after:
			return resultf(false, "%s", msgs.unchanged)
		default:
			return resultf(true, "%s", msgs.changed)
		}
	}
}

// disappearance passes when the observation goes from true to false.
func disappearance(msgs transitionMessages) func(before, after bool) Result {
	return func(before, after bool) Result {
		switch {
		case !before:
			return resultf(false, "%s", msgs.already)
		case after:
			return resultf(false, "%s", msgs.unchanged)
		default:
			return resultf(true, "%s", msgs.changed)
		}
	}
}
