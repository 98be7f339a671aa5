// Package xgxscope defines the failure model used by scoped resource
// acquisition: a primary failure that carries an ordered list of suppressed
// failures raised while it was already propagating.
//
// Design tenets:
//   - Interop-first: play nicely with errors.Is/As and errors.Join.
//   - The primary failure is never replaced by a release failure.
//   - Non-mutating ergonomics: fluent builders return a new value.
//   - Selective stacks: callers opt in; defects capture by default.
//
// Implementations SHOULD:
//   - Keep fluent methods non-mutating (copy-on-write).
//   - Implement Unwrap() error so stdlib traversal (errors.Is/As) observes the
//     causal chain. Suppressed failures are NOT causes and are exposed through
//     Suppressed() instead.
package xgxscope

// Code classifies failures into machine-readable categories.
//
// Codes are stringly-typed for stability across serialization boundaries.
// Projects may define their own codes; the core does not reserve semantics.
type Code string

// Error is the fluent, interop-friendly Failure Record.
//
// All fluent methods MUST be non-mutating: they return a new Error value
// (copy-on-write) and MUST NOT alter the receiver state. A failure that is
// observed by a catching frame can therefore never change underneath it.
type Error interface {
	error

	// Ctx sets the message if it is empty and appends optional key-value
	// fields. Returns a NEW Error.
	Ctx(msg string, kv ...any) Error

	// With adds a single key-value field. Returns a NEW Error.
	With(key string, val any) Error

	// Code sets or overrides the classification code. Returns a NEW Error.
	Code(Code) Error

	// WithStack attaches a stack trace captured at the call site.
	WithStack() Error

	// WithStackSkip is like WithStack but skips extra call frames.
	WithStackSkip(skip int) Error

	// WithSuppressed returns a NEW Error whose suppressed list is the
	// receiver's list followed by errs (nils are skipped).
	WithSuppressed(errs ...error) Error

	// CodeVal returns the classification code, or "" when unspecified.
	CodeVal() Code

	// Context returns a copy of the structured fields as a map
	// (last write wins for duplicate keys).
	Context() map[string]any

	// Suppressed returns a copy of the ordered suppressed failures.
	// It returns nil when nothing was suppressed.
	Suppressed() []error

	// Unwrap returns the causal parent, or nil.
	Unwrap() error
}
