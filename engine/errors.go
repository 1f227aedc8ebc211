package engine

import (
	"errors"
	"fmt"
)

// ErrNoSubstitute is returned by operations that need a native
// substitution primitive when the engine behind a handle does not
// implement Substituter.
var ErrNoSubstitute = errors.New("engine does not provide native substitution")

// CompileError reports invalid pattern syntax.
type CompileError struct {
	// Pattern is the source text that failed to compile.
	Pattern string
	// Offset is the byte offset into Pattern where the problem was
	// detected, or -1 when the engine does not report one.
	Offset int
	// Message is the engine's diagnostic, without pattern or offset.
	Message string
}

func (e *CompileError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("error parsing regexp: %s: `%s` at offset %d", e.Message, e.Pattern, e.Offset)
	}
	return fmt.Sprintf("error parsing regexp: %s: `%s`", e.Message, e.Pattern)
}

// SubstituteError reports an invalid construct in a native substitution
// template (see Substituter). The template grammar is engine-defined, so
// only engines with a native primitive produce this; the rematch
// template language itself never fails.
type SubstituteError struct {
	// Template is the replacement template that was rejected.
	Template string
	// Offset is the byte offset into Template where the problem was
	// detected, or -1 when the engine does not report one.
	Offset int
	// Message is the engine's diagnostic text.
	Message string
}

func (e *SubstituteError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("invalid replacement template: %s: `%s` at offset %d", e.Message, e.Template, e.Offset)
	}
	return fmt.Sprintf("invalid replacement template: %s: `%s`", e.Message, e.Template)
}

// ExecError reports an abnormal engine condition during matching, such as
// an internal match or recursion limit being exceeded. It is distinct
// from no-match: iteration layers must propagate it, never treat it as
// end of matches.
type ExecError struct {
	// Code is the engine-specific error code, 0 when the engine has none.
	Code int
	// Message is the engine's diagnostic text.
	Message string
	// Pattern is the source text of the pattern being matched.
	Pattern string
}

func (e *ExecError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("regexp engine failure (code %d): %s: `%s`", e.Code, e.Message, e.Pattern)
	}
	return fmt.Sprintf("regexp engine failure: %s: `%s`", e.Message, e.Pattern)
}
