package size

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// sizeCmp allows comparing descriptor trees.
var sizeCmp = cmp.AllowUnexported(scalar{}, Dp{}, Sp{}, Pixel{}, Millimeter{}, Paragraph{},
	Ratio{}, Weight{}, Wrap{}, ViewRatio{}, Align{}, Max{})

type fakeLookup struct {
	ids  map[string]int
	dims map[int]float64
	refs []string
}

func (f *fakeLookup) Identifier(ref string) (int, bool) {
	f.refs = append(f.refs, ref)
	id, ok := f.ids[ref]
	return id, ok
}

func (f *fakeLookup) Dimension(id int) (float64, bool) {
	v, ok := f.dims[id]
	return v, ok
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		ids: map[string]int{
			"@id/some_view": 0x7f080001,
			"@id/foo":       0x7f080002,
			"@id/zero":      0,
		},
		dims: map[int]float64{
			0x7f060001: 24,
			0x7f060002: 12.75,
		},
	}
}

func TestParse_Static(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Size
	}{
		{"pixels", "10px", Pixel{scalar{"10px", 10}}},
		{"fractional pixels", "10.5px", Pixel{scalar{"10.5px", 10.5}}},
		{"negative pixels", "-3px", Pixel{scalar{"-3px", -3}}},
		{"dp means pixels", "5dp", Pixel{scalar{"5dp", 5}}},
		{"dip", "5dip", Dp{scalar{"5dip", 5}}},
		{"sp", "14sp", Sp{scalar{"14sp", 14}}},
		{"millimeters", "2mm", Millimeter{scalar{"2mm", 2}}},
		{"paragraph", "1.5pg", Paragraph{scalar{"1.5pg", 1.5}}},
		{"ratio", "50%", Ratio{scalar{"50%", 0.5}}},
		{"leading dot", ".5px", Pixel{scalar{".5px", 0.5}}},
		{"explicit plus", "+4px", Pixel{scalar{"+4px", 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, nil)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got, sizeCmp); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			if !IsStatic(got) {
				t.Errorf("IsStatic(%q) = false, want true", tt.input)
			}
			if IsElementRelated(got) {
				t.Errorf("IsElementRelated(%q) = true, want false", tt.input)
			}
		})
	}
}

func TestParse_WrapAndWeight(t *testing.T) {
	got, err := Parse("wrap", nil)
	if err != nil {
		t.Fatalf("Parse(wrap) error = %v", err)
	}
	if got.Metric() != MetricWrap {
		t.Errorf("Metric = %s, want wrap", got.Metric())
	}
	if IsStatic(got) || IsElementRelated(got) {
		t.Error("wrap must be neither static nor element related")
	}

	got, err = Parse("2.5w", nil)
	if err != nil {
		t.Fatalf("Parse(2.5w) error = %v", err)
	}
	w, ok := got.(Weight)
	if !ok {
		t.Fatalf("Parse(2.5w) = %T, want Weight", got)
	}
	if w.Value() != 2.5 {
		t.Errorf("Value = %v, want 2.5", w.Value())
	}
	if IsStatic(got) || IsElementRelated(got) {
		t.Error("weight must be neither static nor element related")
	}
	if !got.Metric().IsWeighted() {
		t.Error("weight metric must be weighted")
	}
}

func TestParse_Max(t *testing.T) {
	got, err := Parse("@MAX(10px,20px,5%)", nil)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want := Max{raw: "@MAX(10px,20px,5%)", relations: []Size{
		Pixel{scalar{"10px", 10}},
		Pixel{scalar{"20px", 20}},
		Ratio{scalar{"5%", 0.05}},
	}}
	if diff := cmp.Diff(Size(want), got, sizeCmp); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !IsElementRelated(got) {
		t.Error("max must be element related")
	}
	if IsStatic(got) {
		t.Error("max must not be static")
	}
}

func TestParse_MaxNested(t *testing.T) {
	lookup := newFakeLookup()
	got, err := Parse("@MAX(@MAX(1px,2dip),align@foo,wrap)", lookup)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	m, ok := got.(Max)
	if !ok {
		t.Fatalf("Parse = %T, want Max", got)
	}
	if m.Len() != 3 {
		t.Fatalf("Len = %d, want 3", m.Len())
	}
	rels := m.Relations()
	inner, ok := rels[0].(Max)
	if !ok {
		t.Fatalf("first relation = %T, want Max", rels[0])
	}
	if inner.String() != "@MAX(1px,2dip)" {
		t.Errorf("inner = %q, want %q", inner.String(), "@MAX(1px,2dip)")
	}
	if inner.Len() != 2 {
		t.Errorf("inner Len = %d, want 2", inner.Len())
	}
	if a, ok := rels[1].(Align); !ok || a.Related() != 0x7f080002 {
		t.Errorf("second relation = %#v, want Align to foo", rels[1])
	}
	if rels[2].Metric() != MetricWrap {
		t.Errorf("third relation metric = %s, want wrap", rels[2].Metric())
	}
}

func TestParse_MaxRelationsAreCopied(t *testing.T) {
	got, err := Parse("@MAX(1px,2px)", nil)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	m := got.(Max)
	rels := m.Relations()
	rels[0] = Wrap{raw: "wrap"}
	if m.Relations()[0].Metric() != MetricPx {
		t.Error("modifying returned relations changed descriptor")
	}
}

func TestParse_ViewRatio(t *testing.T) {
	lookup := newFakeLookup()
	got, err := Parse("50%some_view", lookup)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want := ViewRatio{raw: "50%some_view", value: 0.5, related: 0x7f080001}
	if diff := cmp.Diff(Size(want), got, sizeCmp); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if len(lookup.refs) != 1 || lookup.refs[0] != "@id/some_view" {
		t.Errorf("lookup refs = %v, want [@id/some_view]", lookup.refs)
	}
	if !IsElementRelated(got) {
		t.Error("view ratio must be element related")
	}
}

func TestParse_Align(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ref   string
	}{
		{"bare name", "align@foo", "@id/foo"},
		{"existing id", "align@@id/foo", "@id/foo"},
		{"new id", "align@+id/foo", "@id/foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := newFakeLookup()
			got, err := Parse(tt.input, lookup)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			a, ok := got.(Align)
			if !ok {
				t.Fatalf("Parse(%q) = %T, want Align", tt.input, got)
			}
			if a.Related() != 0x7f080002 {
				t.Errorf("Related = %#x, want %#x", a.Related(), 0x7f080002)
			}
			if len(lookup.refs) != 1 || lookup.refs[0] != tt.ref {
				t.Errorf("lookup refs = %v, want [%s]", lookup.refs, tt.ref)
			}
		})
	}
}

func TestParse_NamesWithUnitSuffixes(t *testing.T) {
	lookup := newFakeLookup()
	lookup.ids["@id/header_px"] = 7
	lookup.ids["@id/list_wrap"] = 8

	tests := []struct {
		input   string
		metric  Metric
		related int
	}{
		{"align@some_view", MetricAlign, 0x7f080001},
		{"align@header_px", MetricAlign, 7},
		{"25%list_wrap", MetricViewRatio, 8},
		{"100%some_view", MetricViewRatio, 0x7f080001},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input, lookup)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.input, err)
			continue
		}
		if got.Metric() != tt.metric {
			t.Errorf("Parse(%q) metric = %s, want %s", tt.input, got.Metric(), tt.metric)
		}
		var related int
		switch v := got.(type) {
		case Align:
			related = v.Related()
		case ViewRatio:
			related = v.Related()
		}
		if related != tt.related {
			t.Errorf("Parse(%q) related = %d, want %d", tt.input, related, tt.related)
		}
	}
}

func TestParse_Reference(t *testing.T) {
	got, err := Parse("@2131099650", newFakeLookup())
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want := Pixel{scalar{"@2131099650", 12.75}}
	if diff := cmp.Diff(Size(want), got, sizeCmp); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []error
	}{
		{"empty", "", []error{ErrEmptyInput}},
		{"unknown", "banana", []error{ErrUnrecognizedFormat}},
		{"bad number px", "abcpx", []error{ErrMalformedNumber}},
		{"bad number dip", "1.2.3dip", []error{ErrMalformedNumber}},
		{"space in number", " 5px", []error{ErrMalformedNumber}},
		{"only suffix", "px", []error{ErrMalformedNumber}},
		{"bad weight", "abc_w", []error{ErrMalformedNumber}},
		{"bad ratio", "x%", []error{ErrMalformedNumber}},
		{"max with space", "@MAX(10px, 20px)", []error{ErrInvalidMaxSyntax, ErrMalformedNumber}},
		{"max empty", "@MAX()", []error{ErrInvalidMaxSyntax, ErrEmptyInput}},
		{"max trailing comma", "@MAX(10px,)", []error{ErrInvalidMaxSyntax, ErrEmptyInput}},
		{"max unterminated", "@MAX(10px", []error{ErrInvalidMaxSyntax}},
		{"max bad relation", "@MAX(10px,banana)", []error{ErrInvalidMaxSyntax, ErrUnrecognizedFormat}},
		{"reference not integer", "@dimen", []error{ErrMalformedNumber}},
		{"reference unknown", "@42", []error{ErrUnresolvedIdentifier}},
		{"view ratio unknown", "50%missing", []error{ErrUnresolvedIdentifier}},
		{"view ratio bad number", "5o%foo", []error{ErrMalformedNumber}},
		{"align unknown", "align@missing", []error{ErrUnresolvedIdentifier}},
		{"align zero id", "align@zero", []error{ErrUnresolvedIdentifier}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, newFakeLookup())
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
			}
			if got != nil {
				t.Errorf("Parse(%q) returned descriptor %v along with error", tt.input, got)
			}
			for _, kind := range tt.kinds {
				if !errors.Is(err, kind) {
					t.Errorf("Parse(%q) error = %v, want it to match %v", tt.input, err, kind)
				}
			}
		})
	}
}

func TestParse_ErrorDetails(t *testing.T) {
	_, err := Parse("50%some_view", &fakeLookup{})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not *ParseError", err)
	}
	if pe.Raw != "some_view" {
		t.Errorf("Raw = %q, want %q", pe.Raw, "some_view")
	}

	_, err = Parse("abcdip", nil)
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not *ParseError", err)
	}
	if pe.Suffix != "dip" || pe.Raw != "abcdip" {
		t.Errorf("got suffix %q raw %q, want dip and abcdip", pe.Suffix, pe.Raw)
	}

	_, err = Parse("@MAX(1px, 2px)", nil)
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not *ParseError", err)
	}
	if !errors.Is(pe.Kind, ErrInvalidMaxSyntax) {
		t.Errorf("outer kind = %v, want invalid max syntax", pe.Kind)
	}
	var cause *ParseError
	if !errors.As(pe.Err, &cause) || cause.Raw != " 2px" {
		t.Errorf("cause = %v, want malformed number for %q", pe.Err, " 2px")
	}
}

func TestParse_NoLookup(t *testing.T) {
	for _, input := range []string{"align@foo", "50%foo", "@12"} {
		_, err := Parse(input, nil)
		if !errors.Is(err, ErrUnresolvedIdentifier) || !errors.Is(err, ErrNoLookup) {
			t.Errorf("Parse(%q) error = %v, want unresolved identifier without lookup", input, err)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"10px", "5dp", "5dip", "3sp", "1mm", "2pg", "12.5%", "1w", "wrap",
		"@MAX(10px,20px,5%)", "50%some_view", "align@+id/foo", "@2131099649",
	}
	for _, input := range inputs {
		s, err := Parse(input, newFakeLookup())
		if err != nil {
			t.Errorf("Parse(%q) error = %v", input, err)
			continue
		}
		if s.String() != input {
			t.Errorf("String() = %q, want %q", s.String(), input)
		}
	}
}

func TestCanonicalID(t *testing.T) {
	tests := map[string]string{
		"foo":       "@id/foo",
		"@id/foo":   "@id/foo",
		"@+id/foo":  "@id/foo",
		"@+id/a+b":  "@id/a+b",
		"":          "@id/",
		"with_line": "@id/with_line",
	}
	for in, want := range tests {
		if got := CanonicalID(in); got != want {
			t.Errorf("CanonicalID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParser_Logging(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	p := NewParser(log, newFakeLookup())

	s, err := p.Parse("align@foo")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if s.Metric() != MetricAlign {
		t.Errorf("Metric = %s, want align", s.Metric())
	}
	if _, err := p.Parse("nope"); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("Parse(nope) error = %v, want unrecognized", err)
	}
}

func TestNewParser_NilLogger(t *testing.T) {
	p := NewParser(nil, nil)
	if _, err := p.Parse("1px"); err != nil {
		t.Errorf("Parse error = %v", err)
	}
}
