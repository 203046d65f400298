package state

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"seqsize/config"
	"seqsize/resources"
)

func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:     time.Now(),
		Resources: resources.NewTable(""),
	}
}

// LoadResources reads resource table configured in Cfg. Nothing is loaded
// when path is empty. In debug mode resource file is copied into report.
func (e *LocalEnv) LoadResources() error {
	conf := e.Cfg.Resources
	if len(conf.Path) == 0 {
		e.Resources = resources.NewTable(conf.Package)
		return nil
	}

	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}

	format := conf.Format
	if format == config.ResourceFormatAuto {
		var err error
		if format, err = detectFormat(conf.Path); err != nil {
			return fmt.Errorf("unable to load resources '%s': %w", conf.Path, err)
		}
		log.Debug("Resource format detected", zap.Stringer("format", format))
	}

	var (
		t   *resources.Table
		err error
	)
	switch format {
	case config.ResourceFormatXml:
		t = resources.NewTable(conf.Package)
		err = resources.NewXMLLoader(log, e.Cfg.Display).LoadFile(t, conf.Path)
	case config.ResourceFormatAar:
		t = resources.NewTable(conf.Package)
		err = resources.NewXMLLoader(log, e.Cfg.Display).LoadArchive(t, conf.Path)
	case config.ResourceFormatSqlite:
		if t, err = resources.LoadStore(conf.Path); err == nil && len(conf.Package) > 0 {
			t.Package = conf.Package
		}
	default:
		err = fmt.Errorf("unsupported resource format %s", format)
	}
	if err != nil {
		return fmt.Errorf("unable to load resources '%s': %w", conf.Path, err)
	}

	if er := e.Rpt.StoreCopy("resources/values"+format.Ext(), conf.Path); er != nil {
		log.Warn("Unable to put resources into report", zap.Error(er))
	}
	log.Debug("Resources loaded",
		zap.String("package", t.Package), zap.Stringer("format", format), zap.Int("entries", t.Len()))

	e.Resources = t
	return nil
}

// detectFormat looks at the file signature: SQLite database is a store, any
// other archive is treated as Android package, the rest is expected to be
// values XML.
func detectFormat(path string) (config.ResourceFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return 0, err
	}
	head = head[:n]

	kind, _ := filetype.Match(head)
	switch {
	case kind.Extension == "sqlite":
		return config.ResourceFormatSqlite, nil
	case filetype.IsArchive(head):
		return config.ResourceFormatAar, nil
	default:
		return config.ResourceFormatXml, nil
	}
}
