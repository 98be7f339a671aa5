// codes.go: the small set of codes the scope core ships with.
//
// Conventions (documented, not enforced here):
//   - Codes are lowercase snake_case ASCII.
//   - Avoid the empty string for custom codes; it is never a built-in.
package xgxscope

const (
	// CodeInternal is the default for failures without a better class.
	CodeInternal Code = "internal"
	// CodeInvalid marks rejected input or configuration.
	CodeInvalid Code = "invalid"
	// CodeDecode marks a malformed byte stream that could not be deserialized.
	CodeDecode Code = "decode"
	// CodeDefect marks a programming error, e.g. a recovered panic.
	CodeDefect Code = "defect"
)

// allBuiltinCodes is the ordered set of codes the core ships with.
var allBuiltinCodes = []Code{
	CodeInternal,
	CodeInvalid,
	CodeDecode,
	CodeDefect,
}

var builtinCodeSet = map[Code]struct{}{
	CodeInternal: {},
	CodeInvalid:  {},
	CodeDecode:   {},
	CodeDefect:   {},
}

// BuiltinCodes returns a copy of the built-in codes in a stable order.
func BuiltinCodes() []Code {
	out := make([]Code, len(allBuiltinCodes))
	copy(out, allBuiltinCodes)
	return out
}

// IsBuiltin reports whether c is one of the built-in core codes.
func (c Code) IsBuiltin() bool {
	_, ok := builtinCodeSet[c]
	return ok
}
