package size

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput           = errors.New("size is empty")
	ErrUnrecognizedFormat   = errors.New("unrecognized size")
	ErrMalformedNumber      = errors.New("malformed number")
	ErrInvalidMaxSyntax     = errors.New("invalid max syntax, separate each size with a comma and no extra spaces")
	ErrUnresolvedIdentifier = errors.New("unresolved identifier")
	ErrNoLookup             = errors.New("no resource lookup available")
	ErrNonStaticMetric      = errors.New("metric is not static")
)

// ParseError describes why encoded size could not be parsed. Kind is one of
// the sentinel errors above, Err keeps underlying cause if any (for max
// syntax it is the error of the failed relation).
type ParseError struct {
	Kind   error
	Raw    string
	Suffix string
	Err    error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	switch {
	case errors.Is(e.Kind, ErrMalformedNumber) && len(e.Suffix) == 0:
		fmt.Fprintf(&sb, "expected an integer resource id after %s in %q", prefixRef, e.Raw)
	case errors.Is(e.Kind, ErrMalformedNumber):
		fmt.Fprintf(&sb, "expected a float value followed by %s in %q", e.Suffix, e.Raw)
	case errors.Is(e.Kind, ErrUnresolvedIdentifier):
		fmt.Fprintf(&sb, "resource with id %q not found", e.Raw)
	case errors.Is(e.Kind, ErrEmptyInput):
		sb.WriteString(e.Kind.Error())
	default:
		fmt.Fprintf(&sb, "%s '%s'", e.Kind, e.Raw)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap makes both kind and cause visible to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newParseError(kind error, raw string) *ParseError {
	return &ParseError{Kind: kind, Raw: raw}
}

// MisuseError is the panic value of MeasureStatic when it is given a size it
// cannot measure. It signals broken caller invariant, not a bad input.
type MisuseError struct {
	Metric Metric
	Raw    string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("metric value '%s' is not static (%q)", e.Metric, e.Raw)
}

func (e *MisuseError) Unwrap() error {
	return ErrNonStaticMetric
}
