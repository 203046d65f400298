package size

import "math"

// MillimetersPerInch is used together with reference density of 160 units per
// inch to convert millimeters into density scaled pixels.
const (
	MillimetersPerInch = 25.4
	ReferenceDensity   = 160
	mmToPxRatio        = float32(ReferenceDensity) / float32(MillimetersPerInch)
)

// Metrics describes display static sizes are measured for.
type Metrics interface {
	ScreenDensity() float64
	ScreenScaledDensity() float64
	ParagraphUnitSize() float64
}

// MeasureStatic computes size in pixels for a static descriptor. Container is
// the size ratios are taken of. Arithmetic is single precision and results
// are truncated toward zero, saturating at 32 bit integer range, so layouts
// computed here and on device land on the same pixel grid.
//
// Calling it for a size which is not static is a programming error and it
// panics with *MisuseError, check IsStatic first.
func MeasureStatic(s Size, container int, m Metrics) int {
	switch v := s.(type) {
	case Pixel:
		return truncate(v.value)
	case Millimeter:
		return truncate(v.value * float32(m.ScreenDensity()) * mmToPxRatio)
	case Paragraph:
		return truncate(v.value * float32(m.ParagraphUnitSize()))
	case Ratio:
		return truncate(v.value * float32(container))
	case Dp:
		return truncate(v.value * float32(m.ScreenDensity()))
	case Sp:
		return truncate(v.value * float32(m.ScreenScaledDensity()))
	}
	panic(misuse(s))
}

// TryMeasureStatic is MeasureStatic which reports non static sizes as error
// wrapping ErrNonStaticMetric instead of panicking.
func TryMeasureStatic(s Size, container int, m Metrics) (int, error) {
	if !IsStatic(s) {
		return 0, misuse(s)
	}
	return MeasureStatic(s, container, m), nil
}

func misuse(s Size) *MisuseError {
	if s == nil {
		return &MisuseError{Metric: Metric(-1)}
	}
	return &MisuseError{Metric: s.Metric(), Raw: s.String()}
}

// truncate drops fraction, NaN becomes 0 and out of range values stick to
// the int32 bounds.
func truncate(v float32) int {
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

func finite(v float32) bool {
	return !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v))
}
