package size

import (
	"fmt"
	"strconv"
)

// Weighted is reported by layout passes for sizes taking part in weighted
// distribution before the remaining space is known.
const Weighted = -1

// Size is a parsed size descriptor. Concrete values are Dp, Sp, Pixel,
// Millimeter, Paragraph, Ratio, Weight, Wrap, ViewRatio, Align and Max. All of
// them are immutable values.
type Size interface {
	// Metric returns kind of the descriptor.
	Metric() Metric
	// String returns encoded form the descriptor was parsed from.
	String() string

	sealed()
}

// IsStatic reports whether s could be measured with MeasureStatic.
func IsStatic(s Size) bool {
	return s != nil && s.Metric().IsStatic()
}

// IsElementRelated reports whether s depends on other layout elements.
func IsElementRelated(s Size) bool {
	return s != nil && s.Metric().IsElementRelated()
}

// scalar is a numeric magnitude with its encoded form.
type scalar struct {
	raw   string
	value float32
}

func (s scalar) String() string { return s.raw }
func (s scalar) Value() float32 { return s.value }
func (scalar) sealed() {}

type (
	// Dp is density independent size ("dip" suffix).
	Dp struct{ scalar }
	// Sp is scale independent size ("sp" suffix).
	Sp struct{ scalar }
	// Pixel is raw pixel size ("px" and "dp" suffixes, dimension references).
	Pixel struct{ scalar }
	// Millimeter is physical size ("mm" suffix).
	Millimeter struct{ scalar }
	// Paragraph is size in paragraph units ("pg" suffix).
	Paragraph struct{ scalar }
	// Ratio is fraction of container size ("%" suffix), value is already
	// divided by 100.
	Ratio struct{ scalar }
	// Weight is share of space left after everything else is measured ("w"
	// suffix).
	Weight struct{ scalar }
)

func (Dp) Metric() Metric { return MetricDp }
func (Sp) Metric() Metric { return MetricSp }
func (Pixel) Metric() Metric { return MetricPx }
func (Millimeter) Metric() Metric { return MetricMm }
func (Paragraph) Metric() Metric { return MetricPg }
func (Ratio) Metric() Metric { return MetricRatio }
func (Weight) Metric() Metric { return MetricWeight }

// Wrap sizes element to its content.
type Wrap struct {
	raw string
}

func (Wrap) Metric() Metric { return MetricWrap }
func (w Wrap) String() string { return w.raw }
func (Wrap) sealed() {}

// ViewRatio is fraction of the size of another element.
type ViewRatio struct {
	raw     string
	value   float32
	related int
}

func (ViewRatio) Metric() Metric { return MetricViewRatio }
func (v ViewRatio) String() string { return v.raw }
func (ViewRatio) sealed() {}
func (v ViewRatio) Value() float32 { return v.value }
func (v ViewRatio) Related() int { return v.related }

// Align makes element end where related element ends.
type Align struct {
	raw     string
	related int
}

func (Align) Metric() Metric { return MetricAlign }
func (a Align) String() string { return a.raw }
func (Align) sealed() {}
func (a Align) Related() int { return a.related }

// Max is the largest of its relations. Relations are resolved by layout pass
// one by one, every one of them could be any kind of size including Max.
type Max struct {
	raw       string
	relations []Size
}

func (Max) Metric() Metric { return MetricMax }
func (m Max) String() string { return m.raw }
func (Max) sealed() {}

// Relations returns copy of the ordered list of child descriptors.
func (m Max) Relations() []Size {
	out := make([]Size, len(m.relations))
	copy(out, m.relations)
	return out
}

// Len returns number of relations.
func (m Max) Len() int {
	return len(m.relations)
}

// Of builds numeric descriptor for metric programmatically. Encoded form is
// synthesized so it parses back into the same descriptor.
func Of(metric Metric, value float32) (Size, error) {
	if !finite(value) {
		return nil, fmt.Errorf("size value %v is not a finite number", value)
	}
	num := func(v float32) string {
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	}
	switch metric {
	case MetricDp:
		return Dp{scalar{raw: num(value) + suffixDip, value: value}}, nil
	case MetricSp:
		return Sp{scalar{raw: num(value) + suffixSp, value: value}}, nil
	case MetricPx:
		return Pixel{scalar{raw: num(value) + suffixPx, value: value}}, nil
	case MetricMm:
		return Millimeter{scalar{raw: num(value) + suffixMm, value: value}}, nil
	case MetricPg:
		return Paragraph{scalar{raw: num(value) + suffixPg, value: value}}, nil
	case MetricRatio:
		return Ratio{scalar{raw: num(value*100) + suffixRatio, value: value}}, nil
	case MetricWeight:
		return Weight{scalar{raw: num(value) + suffixWeight, value: value}}, nil
	case MetricWrap:
		return Wrap{raw: suffixWrap}, nil
	default:
		return nil, fmt.Errorf("metric %s could not be built from a number", metric)
	}
}

// Bound pairs descriptor with identifier of the element owning it. Layout
// passes use it instead of modifying descriptors.
type Bound struct {
	ViewID int
	Size   Size
}

// Bind attaches owner view identifier to the descriptor.
func Bind(viewID int, s Size) Bound {
	return Bound{ViewID: viewID, Size: s}
}

func (b Bound) String() string {
	if b.Size == nil {
		return fmt.Sprintf("%d:<nil>", b.ViewID)
	}
	return fmt.Sprintf("%d:%s", b.ViewID, b.Size)
}
