// context.go: ordered key-value fields carried by a failure.
package xgxscope

import "errors"

// Field is one key-value pair attached to a failure.
type Field struct {
	Key string
	Val any
}

// fields is append-only once published; every builder returns a new slice.
type fields []Field

// parseKV turns alternating key, value arguments into fields. A pair whose
// key is not a string is skipped; a trailing key gets a nil value.
func parseKV(kv ...any) fields {
	var out fields
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		out = append(out, Field{Key: k, Val: v})
	}
	return out
}

// plus returns a fresh slice holding fs followed by add.
func (fs fields) plus(add ...Field) fields {
	if len(fs)+len(add) == 0 {
		return nil
	}
	out := make(fields, 0, len(fs)+len(add))
	return append(append(out, fs...), add...)
}

// asMap is the unordered view returned by Error.Context. Later keys win.
func (fs fields) asMap() map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}

// Fields returns, in insertion order, the context fields of the first failure
// along err's unwrap chain that carries any.
func Fields(err error) []Field {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if fe, ok := e.(*failureErr); ok && len(fe.ctx) > 0 {
			return fe.ctx.plus()
		}
	}
	return nil
}
