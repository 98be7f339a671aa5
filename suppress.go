// suppress.go: attaching release failures to an in-flight primary failure.
//
// Rules:
//   - The primary is what propagates. A secondary never replaces it.
//   - With no primary, the secondary propagates on its own, unchanged.
//   - Suppressed failures are not causes: errors.Is(primary, secondary) stays
//     false. Use Suppressed or Has to look at them.
package xgxscope

import "errors"

type suppressor interface{ Suppressed() []error }

// Suppress records secondary as suppressed under primary and returns the
// failure that should propagate.
//
//	primary  secondary  result
//	nil      nil        nil
//	nil      B          B (identity preserved)
//	A        nil        A (identity preserved)
//	A        B          A' with Error() == A.Error() and Suppressed() == [..., B]
//
// A foreign primary is adopted (see From) so it can carry the list; it still
// unwraps to the original. A secondary identical to the primary is ignored.
func Suppress(primary, secondary error) error {
	switch {
	case primary == nil:
		return secondary
	case secondary == nil, sameError(primary, secondary):
		return primary
	}
	return From(primary).WithSuppressed(secondary)
}

// Suppressed returns the suppressed failures of the first Failure Record along
// err's unwrap chain, in the order they were recorded. It returns nil when err
// is nil or carries none.
func Suppressed(err error) []error {
	if err == nil {
		return nil
	}
	var s suppressor
	if errors.As(err, &s) {
		return s.Suppressed()
	}
	return nil
}

// sameError reports whether a and b are the same error value. Values of
// non-comparable types match only when they point at the same object.
func sameError(a, b error) bool {
	if isComparable(a) && isComparable(b) {
		return a == b
	}
	pa, okA := ptrID(a)
	pb, okB := ptrID(b)
	return okA && okB && pa == pb
}
