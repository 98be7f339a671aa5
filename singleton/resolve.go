package singleton

import (
	"fmt"
	"reflect"

	xgxscope "github.com/xgx-io/xgx-scope"
)

// Resolver is implemented by values that must be replaced by a canonical
// instance after they are decoded. Decode calls it on every freshly
// materialized value.
type Resolver interface {
	ResolveCanonical() any
}

// Resolve substitutes v with its canonical instance when v implements
// Resolver; other values are returned unchanged. It fails if the canonical
// instance is not a T.
func Resolve[T any](v T) (T, error) {
	r, ok := any(v).(Resolver)
	if !ok {
		return v, nil
	}
	c, ok := r.ResolveCanonical().(T)
	if !ok {
		var zero T
		return zero, xgxscope.Invalid("canonical", "resolver returned a different type").
			With("want", fmt.Sprintf("%T", zero)).
			With("got", fmt.Sprintf("%T", r.ResolveCanonical()))
	}
	return c, nil
}

// isNil reports whether v is a nil pointer, interface, map, slice, or func.
// A codec leaves such a value behind for an explicit null document.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
