// construct.go: the concrete Failure Record and its constructors.
//
// Scope:
//   - One concrete type, failureErr, implementing Error with NON-MUTATING
//     fluent methods.
//   - Semantic constructors for the codes in codes.go.
//   - A message-preserving lift for foreign errors that become primaries.
//
// Message semantics:
//   - .Ctx(...) does NOT concatenate messages; it sets the message once if the
//     receiver has none. Additional details belong in structured context.
//   - Error() prints "<code>: <msg>" when a code is set, otherwise just msg.
package xgxscope

import (
	"fmt"
)

// failureErr is the single concrete Failure Record.
type failureErr struct {
	msg        string
	code       Code
	ctx        fields
	cause      error
	stk        Stack
	suppressed []error
}

func (e *failureErr) Error() string {
	if e.msg == "" {
		if e.code != "" {
			return string(e.code)
		}
		return "error"
	}
	if e.code != "" {
		return fmt.Sprintf("%s: %s", e.code, e.msg)
	}
	return e.msg
}

func (e *failureErr) Unwrap() error           { return e.cause }
func (e *failureErr) CodeVal() Code           { return e.code }
func (e *failureErr) Context() map[string]any { return e.ctx.asMap() }

func (e *failureErr) Suppressed() []error {
	if len(e.suppressed) == 0 {
		return nil
	}
	out := make([]error, len(e.suppressed))
	copy(out, e.suppressed)
	return out
}

func (e *failureErr) Ctx(msg string, kv ...any) Error {
	n := e.clone()
	if msg != "" && n.msg == "" {
		n.msg = msg
	}
	if len(kv) > 0 {
		n.ctx = n.ctx.plus(parseKV(kv...)...)
	}
	return n
}

func (e *failureErr) With(key string, val any) Error {
	n := e.clone()
	n.ctx = n.ctx.plus(Field{Key: key, Val: val})
	return n
}

// Code overrides the classification. Defects keep CodeDefect.
func (e *failureErr) Code(c Code) Error {
	n := e.clone()
	if n.code != CodeDefect {
		n.code = c
	}
	return n
}

func (e *failureErr) WithStack() Error {
	return e.WithStackSkip(0)
}

func (e *failureErr) WithStackSkip(skip int) Error {
	n := e.clone()
	n.stk = captureStackDefault(skip + 1)
	return n
}

// WithSuppressed appends errs to a copy of the suppressed list. The receiver
// itself is never added to its own list.
func (e *failureErr) WithSuppressed(errs ...error) Error {
	n := e.clone()
	for _, s := range errs {
		if s == nil || s == error(e) {
			continue
		}
		n.suppressed = append(n.suppressed, s)
	}
	return n
}

// clone copies e for a fluent builder. ctx is shared because fields are never
// modified in place; suppressed gets its own backing array.
func (e *failureErr) clone() *failureErr {
	n := *e
	n.suppressed = append([]error(nil), e.suppressed...)
	return &n
}

// -----------------------------------------------------------------------------
// Semantic constructors
// -----------------------------------------------------------------------------

// New creates an unclassified failure with a message and optional context.
// Its Error() is exactly msg.
func New(msg string, kv ...any) Error {
	return &failureErr{msg: msg, ctx: parseKV(kv...)}
}

// Errorf is New with fmt formatting. It does not wrap; use Wrap for causes.
func Errorf(format string, args ...any) Error {
	return &failureErr{msg: fmt.Sprintf(format, args...)}
}

// Invalid indicates rejected input or configuration.
func Invalid(field, reason string) Error {
	return &failureErr{
		msg:  "invalid " + field,
		code: CodeInvalid,
		ctx:  parseKV("field", field, "reason", reason),
	}
}

// Decode marks a byte stream that the named codec could not deserialize.
// The codec's own error is kept as cause.
func Decode(codec string, err error) Error {
	return &failureErr{
		msg:   "malformed " + codec + " stream",
		code:  CodeDecode,
		ctx:   parseKV("codec", codec),
		cause: err,
	}
}

// Internal wraps err as an internal failure and captures a stack.
func Internal(err error) Error {
	fe := &failureErr{
		msg:   "internal error",
		code:  CodeInternal,
		cause: err,
	}
	return fe.WithStack()
}

// Defect wraps an unexpected programming error; always captures a stack.
func Defect(err error) Error {
	if err == nil {
		err = fmt.Errorf("nil defect")
	}
	return &failureErr{
		msg:   err.Error(),
		code:  CodeDefect,
		cause: err,
		stk:   captureStackDefault(0),
	}
}

// lift turns any non-nil error into a Failure Record without changing what
// Error() prints. Native failures are returned as-is.
func lift(err error) *failureErr {
	if fe, ok := err.(*failureErr); ok {
		return fe
	}
	return &failureErr{msg: err.Error(), cause: err}
}

var _ Error = (*failureErr)(nil)
