// Package inspect implements command line actions: parsing sizes into
// descriptor trees, measuring them for configured display and listing
// resources.
package inspect

import (
	"fmt"
	"io"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"seqsize/config"
	"seqsize/size"
)

// Result of parsing single entry, either Size or Err is set.
type Result struct {
	Entry
	Size size.Size
	Err  error
}

// Measurement is what measure output template is executed with.
type Measurement struct {
	Name      string
	Input     string
	Metric    string
	Class     string
	Static    bool
	Pixels    int
	Container int
}

// Inspector parses and measures sizes.
type Inspector struct {
	log     *zap.Logger
	parser  *size.Parser
	metrics size.Metrics
	rpt     *config.Report
}

// New creates inspector. Report may be nil, when set parsed trees are put
// into it.
func New(log *zap.Logger, lookup size.Lookup, metrics size.Metrics, rpt *config.Report) *Inspector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inspector{
		log:     log,
		parser:  size.NewParser(log, lookup),
		metrics: metrics,
		rpt:     rpt,
	}
}

// ParseAll parses every entry. Returned error combines failures of all
// entries, results always have one record per entry.
func (in *Inspector) ParseAll(entries []Entry) ([]Result, error) {
	var err error

	results := make([]Result, 0, len(entries))
	for i, e := range entries {
		s, er := in.parser.Parse(e.Raw)
		if er != nil {
			in.log.Warn("Unable to parse size", zap.String("name", e.Name), zap.Error(er))
			err = multierr.Append(err, fmt.Errorf("%s: %w", e.Name, er))
		} else {
			in.rpt.StoreData(fmt.Sprintf("trees/%03d-%s.txt", i+1, config.CleanFileName(e.Name)), []byte(Tree(s)))
		}
		results = append(results, Result{Entry: e, Size: s, Err: er})
	}
	return results, err
}

// Measure resolves static descriptor, anything else is left for layout pass
// and only classified.
func (in *Inspector) Measure(r Result, container int) Measurement {
	m := Measurement{
		Name:      r.Name,
		Input:     r.Raw,
		Metric:    r.Size.Metric().String(),
		Class:     Class(r.Size),
		Container: container,
	}
	if px, err := size.TryMeasureStatic(r.Size, container, in.metrics); err == nil {
		m.Static, m.Pixels = true, px
	}
	return m
}

// WriteTrees outputs descriptor trees of successfully parsed results.
func (in *Inspector) WriteTrees(w io.Writer, results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if r.Name != r.Raw {
			if _, err := fmt.Fprintf(w, "%s:\n", r.Name); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, Tree(r.Size)); err != nil {
			return err
		}
	}
	return nil
}

// WriteMeasurements measures successfully parsed results and outputs them
// formatted with f.
func (in *Inspector) WriteMeasurements(w io.Writer, results []Result, container int, f *Formatter) error {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		m := in.Measure(r, container)
		in.log.Debug("Measured", zap.String("input", m.Input), zap.String("class", m.Class), zap.Int("px", m.Pixels))
		if err := f.Write(w, m); err != nil {
			return err
		}
	}
	return nil
}

// Formatter renders measurements with text template, sprig functions are
// available.
type Formatter struct {
	tmpl *template.Template
}

// NewFormatter parses output template, referencing a field Measurement does
// not have is an error at execution time.
func NewFormatter(text string) (*Formatter, error) {
	tmpl, err := template.New("measure").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("bad output template: %w", err)
	}
	return &Formatter{tmpl: tmpl}, nil
}

// Write outputs single measurement followed by new line.
func (f *Formatter) Write(w io.Writer, m Measurement) error {
	if err := f.tmpl.Execute(w, m); err != nil {
		return fmt.Errorf("unable to format '%s': %w", m.Input, err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
