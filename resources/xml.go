package resources

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"seqsize/archive"
	"seqsize/size"
)

const (
	dimenRefPrefix = "@dimen/"
	// default configuration values inside Android packages
	archiveValuesDir = "res/values"
)

// XMLLoader reads Android values resources (ids.xml, dimens.xml and alike)
// into a table. Dimension values are converted to pixels the way Android
// does it for the display described by metrics.
type XMLLoader struct {
	log     *zap.Logger
	metrics size.Metrics
}

// NewXMLLoader creates a new values XML loader.
func NewXMLLoader(log *zap.Logger, metrics size.Metrics) *XMLLoader {
	if log == nil {
		log = zap.NewNop()
	}
	return &XMLLoader{log: log.Named("xml-resources"), metrics: metrics}
}

// LoadFile reads values XML from file into table.
func (l *XMLLoader) LoadFile(t *Table, path string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return fmt.Errorf("unable to read resources '%s': %w", path, err)
	}
	l.log.Debug("Loading resources", zap.String("file", path))
	return l.load(t, doc)
}

// Load reads values XML from data into table. Entries which could not be
// understood are skipped, all problems are reported together.
func (l *XMLLoader) Load(t *Table, data []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("unable to parse resources: %w", err)
	}
	return l.load(t, doc)
}

// LoadArchive reads every values XML from default configuration of Android
// package (.aar, .apk with plain XML resources) into table. Problems with
// individual files do not stop loading of the rest.
func (l *XMLLoader) LoadArchive(t *Table, path string) error {
	var (
		files   int
		loadErr error
	)
	err := archive.Walk(path, archiveValuesDir, ".xml", func(_ string, f *zip.File) error {
		r, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open '%s': %w", f.Name, err)
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("unable to read '%s': %w", f.Name, err)
		}
		files++
		l.log.Debug("Loading resources", zap.String("archive", path), zap.String("file", f.Name))
		if err := l.Load(t, data); err != nil {
			loadErr = multierr.Append(loadErr, fmt.Errorf("%s: %w", f.Name, err))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to read resources from '%s': %w", path, err)
	}
	if files == 0 {
		return fmt.Errorf("no values resources found in '%s'", path)
	}
	return loadErr
}

func (l *XMLLoader) load(t *Table, doc *etree.Document) (err error) {
	root := doc.SelectElement("resources")
	if root == nil {
		return errors.New("no <resources> element found")
	}

	var ids, dims int
	for i, el := range root.ChildElements() {
		name := el.SelectAttrValue("name", "")
		kind := el.Tag
		if kind == "item" {
			kind = el.SelectAttrValue("type", "")
		}

		switch kind {
		case "id":
			if len(name) == 0 {
				err = multierr.Append(err, fmt.Errorf("entry %d: id without name", i+1))
				continue
			}
			t.AddID(name)
			ids++
		case "dimen":
			if len(name) == 0 {
				err = multierr.Append(err, fmt.Errorf("entry %d: dimen without name", i+1))
				continue
			}
			px, er := l.dimension(t, strings.TrimSpace(el.Text()))
			if er != nil {
				err = multierr.Append(err, fmt.Errorf("entry %d: dimen '%s': %w", i+1, name, er))
				continue
			}
			t.AddDimension(name, px)
			dims++
		default:
			l.log.Debug("Skipping resource", zap.String("tag", el.Tag), zap.String("name", name))
		}
	}
	l.log.Debug("Resources loaded", zap.Int("ids", ids), zap.Int("dimens", dims), zap.Int("errors", len(multierr.Errors(err))))
	return err
}

// dimension converts complex dimension value to pixels.
func (l *XMLLoader) dimension(t *Table, value string) (float64, error) {
	if name, ok := strings.CutPrefix(value, dimenRefPrefix); ok {
		_, px, found := t.DimensionByName(name)
		if !found {
			return 0, fmt.Errorf("reference to undefined dimension '%s'", name)
		}
		return px, nil
	}

	v, n := pstrconv.ParseFloat([]byte(value))
	if n == 0 {
		return 0, fmt.Errorf("bad dimension value '%s'", value)
	}

	var (
		density = l.metrics.ScreenDensity()
		xdpi    = density * size.ReferenceDensity
	)
	switch unit := value[n:]; unit {
	case "px":
		return v, nil
	case "dp", "dip":
		return v * density, nil
	case "sp":
		return v * l.metrics.ScreenScaledDensity(), nil
	case "pt":
		return v * xdpi / 72, nil
	case "in":
		return v * xdpi, nil
	case "mm":
		return v * xdpi / size.MillimetersPerInch, nil
	default:
		return 0, fmt.Errorf("unsupported dimension unit '%s' in '%s'", unit, value)
	}
}
