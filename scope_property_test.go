package xgxscope

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

// TestUse_OrderingProperty checks the body/release table for arbitrary
// messages and for every combination of failing steps.
func TestUse_OrderingProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bodyFails := rapid.Bool().Draw(rt, "body_fails")
		releaseFails := rapid.Bool().Draw(rt, "release_fails")
		msgA := rapid.StringN(1, 32, -1).Draw(rt, "msg_a")
		msgB := rapid.StringN(1, 32, -1).Draw(rt, "msg_b")

		r := &resource{}
		if bodyFails {
			r.workErr = errors.New(msgA)
		}
		if releaseFails {
			r.closeErr = errors.New(msgB)
		}

		err := Use(r, (*resource).work)

		if r.closes != 1 {
			rt.Fatalf("release ran %d times", r.closes)
		}
		switch {
		case bodyFails && releaseFails:
			sup := Suppressed(err)
			if err.Error() != msgA || len(sup) != 1 || sup[0] != r.closeErr {
				rt.Fatalf("both fail: err=%q suppressed=%v", err, sup)
			}
			if !errors.Is(err, r.workErr) {
				rt.Fatalf("primary no longer matches errors.Is")
			}
		case bodyFails:
			if err != r.workErr {
				rt.Fatalf("body fails: err=%v, want the body failure itself", err)
			}
		case releaseFails:
			if err != r.closeErr {
				rt.Fatalf("release fails: err=%v, want the release failure itself", err)
			}
		default:
			if err != nil {
				rt.Fatalf("no failure expected, got %v", err)
			}
		}
	})
}

// TestGroup_AllFailuresSurviveProperty checks that no release failure of a
// group is ever lost, whatever subset of resources fails.
func TestGroup_AllFailuresSurviveProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		fails := rapid.SliceOfN(rapid.Bool(), 1, 8).Draw(rt, "fails")
		bodyFails := rapid.Bool().Draw(rt, "body_fails")

		g := NewGroup()
		var want []error
		for i, f := range fails {
			r := &resource{}
			if f {
				r.closeErr = errors.New("release")
				want = append(want, r.closeErr)
			}
			if err := g.Add(r); err != nil {
				rt.Fatalf("Add %d: %v", i, err)
			}
		}
		bodyErr := errors.New("body")
		err := g.Run(func() error {
			if bodyFails {
				return bodyErr
			}
			return nil
		})

		if bodyFails && !errors.Is(err, bodyErr) {
			rt.Fatalf("body failure lost: %v", err)
		}
		for _, w := range want {
			if !Has(err, w) {
				rt.Fatalf("release failure lost: %+v", err)
			}
		}
		if !bodyFails && len(want) == 0 && err != nil {
			rt.Fatalf("unexpected failure %v", err)
		}
	})
}
