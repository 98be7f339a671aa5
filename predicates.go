// predicates.go: classification questions answered over the unwrap chain.
//
// These use errors.As, so they follow causes (Unwrap) only. A code carried
// by a suppressed failure does not classify the primary.
package xgxscope

import (
	"errors"
)

type coder interface{ CodeVal() Code }

// CodeOf returns the first non-empty Code along err's chain, or "" if none.
func CodeOf(err error) Code {
	for err != nil {
		if c, ok := err.(coder); ok && c.CodeVal() != "" {
			return c.CodeVal()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// HasCode reports whether any error in err's unwrap graph carries code.
func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	for _, e := range chain(err) {
		if c, ok := e.(coder); ok && c.CodeVal() == code {
			return true
		}
	}
	return false
}

// IsDefect reports whether err is (or wraps) a programming defect.
func IsDefect(err error) bool { return HasCode(err, CodeDefect) }

// IsDecode reports whether err is (or wraps) a deserialization failure.
func IsDecode(err error) bool { return HasCode(err, CodeDecode) }

// IsInvalid reports whether err is (or wraps) an invalid-input failure.
func IsInvalid(err error) bool { return HasCode(err, CodeInvalid) }

// chain lists err and every cause reachable through single and multi unwraps,
// without following suppressed lists.
func chain(err error) []error {
	var out []error
	seen := newSeenSet()
	stack := []error{err}
	seen.mark(err)
	for len(stack) > 0 && len(out) < maxWalkDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		var kids []error
		switch u := cur.(type) {
		case multiUnwrapper:
			kids = u.Unwrap()
		case singleUnwrapper:
			kids = []error{u.Unwrap()}
		}
		for i := len(kids) - 1; i >= 0; i-- {
			if k := kids[i]; k != nil && seen.mark(k) {
				stack = append(stack, k)
			}
		}
	}
	return out
}
