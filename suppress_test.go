package xgxscope

import (
	"errors"
	"fmt"
	"testing"
)

func TestSuppress_Table(t *testing.T) {
	a, b := errors.New("A"), errors.New("B")

	tests := []struct {
		name           string
		primary        error
		secondary      error
		wantNil        bool
		wantMsg        string
		wantSuppressed []string
	}{
		{name: "nil nil", wantNil: true},
		{name: "nil B", secondary: b, wantMsg: "B"},
		{name: "A nil", primary: a, wantMsg: "A"},
		{name: "A B", primary: a, secondary: b, wantMsg: "A", wantSuppressed: []string{"B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suppress(tt.primary, tt.secondary)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Suppress = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Fatalf("message = %q, want %q", got.Error(), tt.wantMsg)
			}
			sup := Suppressed(got)
			if len(sup) != len(tt.wantSuppressed) {
				t.Fatalf("suppressed = %v, want %v", sup, tt.wantSuppressed)
			}
			for i, s := range sup {
				if s.Error() != tt.wantSuppressed[i] {
					t.Fatalf("suppressed[%d] = %q, want %q", i, s.Error(), tt.wantSuppressed[i])
				}
			}
		})
	}
}

func TestSuppress_PreservesIdentityWhenNothingToAttach(t *testing.T) {
	a, b := errors.New("A"), errors.New("B")
	if Suppress(a, nil) != a {
		t.Fatalf("primary identity lost")
	}
	if Suppress(nil, b) != b {
		t.Fatalf("secondary identity lost")
	}
}

func TestSuppress_ForeignPrimaryStillMatchesErrorsIs(t *testing.T) {
	a, b := errors.New("A"), errors.New("B")
	got := Suppress(a, b)

	if !errors.Is(got, a) {
		t.Fatalf("errors.Is(result, primary) = false")
	}
	// Suppressed failures are not causes.
	if errors.Is(got, b) {
		t.Fatalf("errors.Is(result, suppressed) must be false")
	}
	if !Has(got, b) {
		t.Fatalf("Has(result, suppressed) = false")
	}
}

func TestSuppress_AccumulatesInOrder(t *testing.T) {
	err := error(New("A"))
	for i := 1; i <= 3; i++ {
		err = Suppress(err, fmt.Errorf("B%d", i))
	}
	sup := Suppressed(err)
	if len(sup) != 3 {
		t.Fatalf("suppressed = %v", sup)
	}
	for i, s := range sup {
		if want := fmt.Sprintf("B%d", i+1); s.Error() != want {
			t.Fatalf("suppressed[%d] = %q, want %q", i, s.Error(), want)
		}
	}
}

func TestSuppress_SelfIsIgnored(t *testing.T) {
	a := New("A")
	if got := Suppressed(Suppress(a, a)); len(got) != 0 {
		t.Fatalf("self-suppression recorded: %v", got)
	}

	foreign := errors.New("shared")
	got := Suppress(foreign, foreign)
	if got != foreign || len(Suppressed(got)) != 0 {
		t.Fatalf("foreign self-suppression: got %v suppressed=%v", got, Suppressed(got))
	}
}

// sharedCloser returns the same error value its body returns.
type sharedCloser struct{ err error }

func (c sharedCloser) Close() error { return c.err }

func TestUse_BodyAndReleaseReturnSameError(t *testing.T) {
	shared := errors.New("shared")
	err := Use(sharedCloser{err: shared}, func(sharedCloser) error { return shared })
	if err != shared {
		t.Fatalf("Use = %v, want the shared failure itself", err)
	}
	if sup := Suppressed(err); len(sup) != 0 {
		t.Fatalf("shared failure suppressed under itself: %v", sup)
	}
}

func TestSuppressed_FindsRecordBehindWrapping(t *testing.T) {
	inner := Suppress(errors.New("A"), errors.New("B"))
	outer := fmt.Errorf("context: %w", inner)

	sup := Suppressed(outer)
	if len(sup) != 1 || sup[0].Error() != "B" {
		t.Fatalf("Suppressed(wrapped) = %v", sup)
	}
	if Suppressed(nil) != nil || Suppressed(errors.New("plain")) != nil {
		t.Fatalf("Suppressed of nil/plain must be nil")
	}
}
