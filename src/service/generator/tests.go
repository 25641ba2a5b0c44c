package generator

import (
	"prism/src/model"
)

// TestCases renders one happy, one negative and one edge scenario per action
func TestCases(e model.Entities) string {
	actor := actorsOrFallback(e)[0]
	object := "the request"
	if len(e.Objects) > 0 {
		object = "the " + e.Objects[0]
	}

	var w writer
	w.line("# Test Cases")
	w.blank()
	for i, action := range actionsOrFallback(e) {
		n := i + 1
		w.line("## Action: %s", action)
		w.blank()

		w.line("### TC-HP-%03d: %s can %s", n, actor, action)
		w.line("- Type: happy path")
		w.line("- Preconditions: the %s is signed in and allowed to %s", actor, action)
		w.line("- Steps:")
		w.line("  1. The %s provides valid input for %s", actor, object)
		w.line("  2. The %s triggers %s", actor, action)
		w.line("- Expected: the operation completes and %s reflects the change", object)
		w.blank()

		w.line("### TC-NG-%03d: %s with invalid input", n, action)
		w.line("- Type: negative")
		w.line("- Preconditions: the %s is signed in", actor)
		w.line("- Steps:")
		w.line("  1. The %s provides missing or malformed input for %s", actor, object)
		w.line("  2. The %s triggers %s", actor, action)
		w.line("- Expected: the request is rejected with a validation error and nothing changes")
		w.blank()

		w.line("### TC-EC-%03d: %s at input boundaries", n, action)
		w.line("- Type: edge case")
		w.line("- Preconditions: the %s is signed in", actor)
		w.line("- Steps:")
		w.line("  1. The %s provides empty, maximum-size and special-character values", actor)
		w.line("  2. The %s triggers %s", actor, action)
		w.line("- Expected: boundary values are accepted or rejected consistently with a clear message")
		w.blank()
	}
	return w.String()
}
