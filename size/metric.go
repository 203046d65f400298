package size

// Kind of a size descriptor. Order matches the integer tags used by layout
// definitions produced before descriptors became typed.
// ENUM(dp, sp, px, mm, pg, ratio, view-ratio, align, max, wrap, weight)
type Metric int

// IsStatic reports whether sizes of this kind could be computed from unit
// conversion alone.
func (x Metric) IsStatic() bool {
	switch x {
	case MetricDp, MetricSp, MetricPg, MetricPx, MetricRatio, MetricMm:
		return true
	default:
		return false
	}
}

// IsElementRelated reports whether sizes of this kind depend on other
// elements of the layout. Max belongs here even when all its relations are
// static, layout pass resolves it.
func (x Metric) IsElementRelated() bool {
	switch x {
	case MetricViewRatio, MetricAlign, MetricMax:
		return true
	default:
		return false
	}
}

func (x Metric) IsWrapping() bool {
	return x == MetricWrap
}

func (x Metric) IsWeighted() bool {
	return x == MetricWeight
}
