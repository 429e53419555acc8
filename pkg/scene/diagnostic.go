package scene

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Error kinds. Every failed load yields a *Diagnostic that unwraps to
// exactly one of these, so callers classify with errors.Is.
var (
	ErrCompile       = errors.New("scene: compile error")
	ErrResolve       = errors.New("scene: unresolved import")
	ErrRuntime       = errors.New("scene: runtime error")
	ErrMissingExport = errors.New("scene: missing scene export")
	ErrTypeMismatch  = errors.New("scene: type mismatch")
	ErrValidation    = errors.New("scene: invalid argument")
	ErrClosed        = errors.New("scene: context closed")
	ErrEvaluated     = errors.New("scene: context already evaluated")
)

// fallbackMessage is used when an interpreter exception carries no usable
// text at all.
const fallbackMessage = "unknown script error"

// Diagnostic is the single shape every load failure is normalized into:
// one kind, a human-readable message, and the interpreter trace when one
// was attached.
type Diagnostic struct {
	Kind    error
	Message string
	Trace   string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%v: %s", d.Kind, d.Message)
}

func (d *Diagnostic) Unwrap() error { return d.Kind }

// Text returns the most detailed description available: the interpreter
// trace when present, else the message, else the fixed fallback.
func (d *Diagnostic) Text() string {
	if d.Trace != "" {
		return d.Message + "\n" + d.Trace
	}
	if d.Message != "" {
		return d.Message
	}
	return fallbackMessage
}

// capture normalizes an interpreter-level error into a Diagnostic. kind is
// the stage default; bindings and the resolver may have recorded a more
// precise kind on the context before raising.
func (c *Context) capture(err error, kind error) *Diagnostic {
	if c.raisedKind != nil {
		kind = c.raisedKind
		c.raisedKind = nil
	}
	d := &Diagnostic{Kind: kind, Message: fallbackMessage}
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) {
		if apiErr.Object != nil && apiErr.Object != lua.LNil {
			d.Message = apiErr.Object.String()
		}
		d.Trace = apiErr.StackTrace
		return d
	}
	if err != nil {
		d.Message = err.Error()
	}
	return d
}

// raise records the precise error kind and throws a script-visible error.
// The kernel is never invoked after a raise.
func (c *Context) raise(kind error, format string, args ...any) {
	c.raisedKind = kind
	c.L.RaiseError(format, args...)
}
