// Package debug has helpers producing human readable dumps of program
// structures for logs and debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates indented lines, depth is given by caller for every
// line.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// Bytes returns accumulated text, handy for storing in debug report.
func (tw TreeWriter) Bytes() []byte {
	return []byte(tw.w.String())
}

func (tw TreeWriter) pad(depth int) {
	tw.w.WriteString(strings.Repeat(indent, depth))
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label with quoted value, empty value is left as is.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Fields writes label=value pairs on a single line, kv must have even length.
func (tw TreeWriter) Fields(depth int, kv ...any) {
	tw.pad(depth)
	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			tw.w.WriteByte(' ')
		}
		fmt.Fprintf(tw.w, "%v=%v", kv[i], kv[i+1])
	}
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
