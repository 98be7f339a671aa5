// wrap.go: stdlib-friendly helpers that operate on arbitrary errors.
//
// Foreign errors are adopted without changing their message: the adopted
// failure prints exactly what the original printed and unwraps to it, so
// errors.Is/As keep working on the result.
package xgxscope

// From converts any error into an Error.
//   - nil → nil
//   - Error → returned as-is
//   - other error → adopted (same message, original kept as cause)
func From(err error) Error {
	if err == nil {
		return nil
	}
	if xe, ok := err.(Error); ok {
		return xe
	}
	return lift(err)
}

// Wrap adds a message and optional key-values to any error.
//   - Error → augmented immutably (message set only if empty)
//   - other error → new failure with msg, err kept as cause
//   - nil → new failure with msg and context only
func Wrap(err error, msg string, kv ...any) Error {
	if err == nil {
		return &failureErr{msg: msg, ctx: parseKV(kv...)}
	}
	if xe, ok := err.(Error); ok {
		return xe.Ctx(msg, kv...)
	}
	return &failureErr{msg: msg, ctx: parseKV(kv...), cause: err}
}

// With attaches a single key/value to any error immutably.
func With(err error, key string, val any) Error {
	if err == nil {
		return &failureErr{msg: "error", ctx: parseKV(key, val)}
	}
	return From(err).With(key, val)
}

// Recode sets or overrides the classification code on any error immutably.
func Recode(err error, c Code) Error {
	if err == nil {
		return &failureErr{code: c}
	}
	return From(err).Code(c)
}

// WithStack attaches a stack trace to any error immutably.
func WithStack(err error) Error {
	return WithStackSkip(err, 0)
}

// WithStackSkip attaches a stack while skipping 'skip' frames beyond this call.
func WithStackSkip(err error, skip int) Error {
	if err == nil {
		return (&failureErr{msg: "error"}).WithStackSkip(skip + 1)
	}
	return From(err).WithStackSkip(skip + 1)
}
