package compmatch

import (
	"log/slog"

	"github.com/cboone/compmatch/component"
)

var (
	showMessages = transitionMessages{
		already:   "The target has been showing from the beginning",
		unchanged: "The action doesn't show the target",
		changed:   "The action shows the target",
	}
	hideMessages = transitionMessages{
		already:   "The target has been hiding from the beginning",
		unchanged: "The action doesn't hide the target",
		changed:   "The action hides the target",
	}
	appearMessages = transitionMessages{
		already:   "The target appears from the beginning",
		unchanged: "The target doesn't show even if the action runs",
		changed:   "The target appears by the action",
	}
	disappearMessages = transitionMessages{
		already:   "The target disappears from the beginning",
		unchanged: "The target doesn't disappear even if the action runs",
		changed:   "The target disappears by the action",
	}
)

// Show passes when loc is absent from target before action and present
// after it.
func Show(action Action, target Finder, loc component.Locator) Verdict {
	return visibility("show", action, target, loc, appearance(showMessages))
}

// Hide passes when loc is present in target before action and absent
// after it.
func Hide(action Action, target Finder, loc component.Locator) Verdict {
	return visibility("hide", action, target, loc, disappearance(hideMessages))
}

// Appear is Show with appearance wording.
func Appear(action Action, target Finder, loc component.Locator) Verdict {
	return visibility("appear", action, target, loc, appearance(appearMessages))
}

// Disappear is Hide with disappearance wording.
func Disappear(action Action, target Finder, loc component.Locator) Verdict {
	return visibility("disappear", action, target, loc, disappearance(disappearMessages))
}

func visibility(matcher string, action Action, target Finder, loc component.Locator, classify func(before, after bool) Result) Verdict {
	observe := func() bool {
		return target.Exists(loc)
	}
	return Transition(action, observe, func(before, after bool) Result {
		slog.Debug("compmatch: observed transition",
			"matcher", matcher, "locator", loc.String(), "before", before, "after", after)
		return classify(before, after)
	})
}
