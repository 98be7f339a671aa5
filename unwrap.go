// unwrap.go: traversal over causes AND suppressed failures.
//
// errors.Is/As only follow Unwrap. A failure's suppressed list is a second
// kind of edge that stdlib traversal does not see, so these helpers walk both:
//
//   - Walk:    pre-order DFS over distinct nodes; children are the unwrap
//     targets (Unwrap() error or Unwrap() []error) followed by the suppressed
//     list. Stops early if visit returns false.
//   - Flatten: the leaves (nodes with no children) in DFS order.
//   - Has:     errors.Is applied to every node reached by Walk.
//
// We must NOT use map[error] as a blanket "seen" set: interface values whose
// dynamic type is not comparable panic as map keys. The guard uses
// comparable dynamics directly and pointer identity for the rest.
package xgxscope

import (
	"errors"
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxWalkDepth = 1 << 12

func isComparable(err error) bool {
	return err != nil && reflect.TypeOf(err).Comparable()
}

func ptrID(err error) (uintptr, bool) {
	if err == nil {
		return 0, false
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

type seenSet struct {
	errs map[error]struct{}
	ptrs map[uintptr]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{
		errs: make(map[error]struct{}, 16),
		ptrs: make(map[uintptr]struct{}, 16),
	}
}

// mark returns true if err was newly marked. Non-comparable, non-pointer
// dynamics are always treated as new (bounded by maxWalkDepth).
func (s *seenSet) mark(err error) bool {
	if err == nil {
		return false
	}
	if isComparable(err) {
		if _, ok := s.errs[err]; ok {
			return false
		}
		s.errs[err] = struct{}{}
		return true
	}
	if id, ok := ptrID(err); ok {
		if _, dup := s.ptrs[id]; dup {
			return false
		}
		s.ptrs[id] = struct{}{}
	}
	return true
}

// children lists err's unwrap targets followed by its suppressed failures.
func children(err error) []error {
	var out []error
	switch u := err.(type) {
	case multiUnwrapper:
		out = append(out, u.Unwrap()...)
	case singleUnwrapper:
		if c := u.Unwrap(); c != nil {
			out = append(out, c)
		}
	}
	if s, ok := err.(suppressor); ok {
		out = append(out, s.Suppressed()...)
	}
	return out
}

// Walk visits each distinct node reachable from err in pre-order. It is safe
// on cycles; nil err or nil visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if visit == nil {
		return
	}
	walk(err, func(e error, _ []error) bool { return visit(e) })
}

func walk(err error, visit func(e error, kids []error) bool) {
	if err == nil || visit == nil {
		return
	}
	seen := newSeenSet()
	seen.mark(err)
	stack := []error{err}
	for len(stack) > 0 && len(stack) < maxWalkDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kids := children(cur)
		if !visit(cur, kids) {
			return
		}
		// Push in reverse so the leftmost child is visited first.
		for i := len(kids) - 1; i >= 0; i-- {
			if k := kids[i]; k != nil && seen.mark(k) {
				stack = append(stack, k)
			}
		}
	}
}

// Flatten returns the leaf failures reachable from err (through causes and
// suppressed lists) in depth-first order. Nil err returns nil.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	walk(err, func(e error, kids []error) bool {
		if len(kids) == 0 {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Root returns the first leaf along err's causal chain, ignoring suppressed
// failures. Nil err returns nil.
func Root(err error) error {
	for depth := 0; err != nil; depth++ {
		if depth >= maxWalkDepth {
			return err
		}
		next := errors.Unwrap(err)
		if next == nil {
			if m, ok := err.(multiUnwrapper); ok {
				if kids := m.Unwrap(); len(kids) > 0 {
					next = kids[0]
				}
			}
		}
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// Has reports whether target matches (errors.Is) err or anything reachable
// from it, suppressed failures included.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	found := false
	Walk(err, func(e error) bool {
		if errors.Is(e, target) {
			found = true
			return false
		}
		return true
	})
	return found
}
