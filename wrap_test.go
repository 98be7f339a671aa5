package xgxscope

import (
	"errors"
	"testing"
)

func TestFrom(t *testing.T) {
	if From(nil) != nil {
		t.Fatalf("From(nil) must be nil")
	}

	native := New("A")
	if From(native) != native {
		t.Fatalf("From must return native failures unchanged")
	}

	foreign := errors.New("B")
	got := From(foreign)
	if got.Error() != "B" || !errors.Is(got, foreign) {
		t.Fatalf("From(foreign) = %v; must keep message and unwrap", got)
	}
}

func TestWrap(t *testing.T) {
	t.Run("foreign cause", func(t *testing.T) {
		root := errors.New("EOF")
		err := Wrap(root, "read failed", "path", "/tmp/x")
		if err.Error() != "read failed" || !errors.Is(err, root) {
			t.Fatalf("Wrap = %v", err)
		}
		if err.Context()["path"] != "/tmp/x" {
			t.Fatalf("missing context: %#v", err.Context())
		}
	})

	t.Run("native keeps message", func(t *testing.T) {
		err := Wrap(New("A"), "ignored", "k", 1)
		if err.Error() != "A" || err.Context()["k"] != 1 {
			t.Fatalf("Wrap(native) = %v ctx=%#v", err, err.Context())
		}
	})

	t.Run("nil creates failure", func(t *testing.T) {
		if err := Wrap(nil, "msg"); err.Error() != "msg" {
			t.Fatalf("Wrap(nil) = %v", err)
		}
	})
}

func TestWith_Recode_WithStack(t *testing.T) {
	foreign := errors.New("B")

	if got := With(foreign, "k", "v"); got.Context()["k"] != "v" || got.Error() != "B" {
		t.Fatalf("With(foreign) = %v ctx=%#v", got, got.Context())
	}
	if got := With(nil, "k", "v"); got.Context()["k"] != "v" {
		t.Fatalf("With(nil) lost field")
	}

	if got := Recode(foreign, CodeInvalid); CodeOf(got) != CodeInvalid || !errors.Is(got, foreign) {
		t.Fatalf("Recode(foreign) = %v", got)
	}
	if got := Recode(nil, CodeDecode); CodeOf(got) != CodeDecode {
		t.Fatalf("Recode(nil) = %v", got)
	}

	if got := WithStack(foreign); len(StackOf(got)) == 0 {
		t.Fatalf("WithStack(foreign) captured no stack")
	}
	if got := WithStack(nil); len(StackOf(got)) == 0 {
		t.Fatalf("WithStack(nil) captured no stack")
	}
}
