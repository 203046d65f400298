package inspect

import (
	"fmt"

	"seqsize/size"
	"seqsize/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// Class names classification group of the descriptor.
func Class(s size.Size) string {
	switch {
	case s == nil:
		return "none"
	case size.IsStatic(s):
		return "static"
	case size.IsElementRelated(s):
		return "element-related"
	case s.Metric().IsWrapping():
		return "wrapping"
	case s.Metric().IsWeighted():
		return "weighted"
	default:
		return "unknown"
	}
}

// Tree returns readable dump of descriptor including all nested relations.
func Tree(s size.Size) string {
	tw := treeWriter{debug.NewTreeWriter()}
	tw.size(0, s)
	return tw.String()
}

func (tw treeWriter) size(depth int, s size.Size) {
	if s == nil {
		tw.Line(depth, "<nil>")
		return
	}

	tw.Line(depth, "Size %s (%s)", s.Metric(), Class(s))
	tw.TextBlock(depth+1, "encoded", s.String())

	switch v := s.(type) {
	case size.Max:
		tw.Fields(depth+1, "relations", v.Len())
		for _, r := range v.Relations() {
			tw.size(depth+2, r)
		}
	case size.ViewRatio:
		tw.Fields(depth+1, "value", v.Value(), "related", fmt.Sprintf("%#x", v.Related()))
	case size.Align:
		tw.Fields(depth+1, "related", fmt.Sprintf("%#x", v.Related()))
	case interface{ Value() float32 }:
		tw.Fields(depth+1, "value", v.Value())
	}
}
