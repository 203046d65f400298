package inspect

import (
	"fmt"
	"io"

	"seqsize/resources"
)

// WriteResources lists table entries, identifiers first.
func WriteResources(w io.Writer, t *resources.Table) error {
	if len(t.Package) > 0 {
		if _, err := fmt.Fprintf(w, "package %s\n", t.Package); err != nil {
			return err
		}
	}
	for _, e := range t.Entries() {
		var err error
		switch e.Kind {
		case resources.KindId:
			_, err = fmt.Fprintf(w, "%-5s %#x @id/%s\n", e.Kind, e.ID, e.Name)
		case resources.KindDimen:
			_, err = fmt.Fprintf(w, "%-5s %#x @dimen/%s %gpx\n", e.Kind, e.ID, e.Name, e.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
