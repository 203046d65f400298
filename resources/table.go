// Package resources provides lookup tables sizes reference: element
// identifiers and dimension resources. Tables could be built in code, loaded
// from Android values XML or from SQLite store.
package resources

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"seqsize/size"
)

// Identifier ranges follow Android application resources layout, so ids
// copied from generated R classes keep working.
const (
	FirstID    = 0x7f080001
	FirstDimen = 0x7f060001

	refPrefix = "@id/"
)

// Entry is a single record of the table.
type Entry struct {
	Kind  Kind
	Name  string
	ID    int
	Value float64 // pixels, for dimensions only
}

// Table keeps identifiers and dimensions of a single package. It implements
// size.Lookup. Table is not safe for concurrent modification, concurrent
// lookups of populated table are fine.
type Table struct {
	Package string

	ids      map[string]int
	dimNames map[string]int
	dims     map[int]float64
	nextID   int
	nextDim  int
}

var _ size.Lookup = (*Table)(nil)

// NewTable creates empty table for package.
func NewTable(pkg string) *Table {
	return &Table{
		Package:  pkg,
		ids:      make(map[string]int),
		dimNames: make(map[string]int),
		dims:     make(map[int]float64),
		nextID:   FirstID,
		nextDim:  FirstDimen,
	}
}

// AddID declares element identifier and returns it. Name could be bare,
// "@id/name" or "@+id/name", declaring the same name twice returns the same
// identifier.
func (t *Table) AddID(name string) int {
	name = bareName(name)
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := t.nextID
	t.nextID++
	t.ids[name] = id
	return id
}

// SetID puts identifier with known value into the table.
func (t *Table) SetID(name string, id int) error {
	if id == 0 {
		return fmt.Errorf("identifier for '%s' could not be zero", name)
	}
	name = bareName(name)
	t.ids[name] = id
	if id >= t.nextID {
		t.nextID = id + 1
	}
	return nil
}

// AddDimension declares dimension resource with value in pixels and returns
// its identifier. Redefinition keeps identifier and replaces value.
func (t *Table) AddDimension(name string, px float64) int {
	if id, ok := t.dimNames[name]; ok {
		t.dims[id] = px
		return id
	}
	id := t.nextDim
	t.nextDim++
	t.dimNames[name] = id
	t.dims[id] = px
	return id
}

// SetDimension puts dimension with known identifier into the table.
func (t *Table) SetDimension(name string, id int, px float64) error {
	if id == 0 {
		return fmt.Errorf("identifier for dimension '%s' could not be zero", name)
	}
	if old, ok := t.dimNames[name]; ok && old != id {
		delete(t.dims, old)
	}
	t.dimNames[name] = id
	t.dims[id] = px
	if id >= t.nextDim {
		t.nextDim = id + 1
	}
	return nil
}

// Identifier implements size.Lookup.
func (t *Table) Identifier(ref string) (int, bool) {
	id, ok := t.ids[bareName(ref)]
	return id, ok
}

// Dimension implements size.Lookup.
func (t *Table) Dimension(id int) (float64, bool) {
	v, ok := t.dims[id]
	return v, ok
}

// DimensionByName returns dimension identifier and value.
func (t *Table) DimensionByName(name string) (int, float64, bool) {
	id, ok := t.dimNames[name]
	if !ok {
		return 0, 0, false
	}
	return id, t.dims[id], true
}

// Len returns number of entries in the table.
func (t *Table) Len() int {
	return len(t.ids) + len(t.dimNames)
}

// Entries returns all records, identifiers first, names in natural order
// ("item2" goes before "item10").
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.Len())
	for name, id := range t.ids {
		entries = append(entries, Entry{Kind: KindId, Name: name, ID: id})
	}
	for name, id := range t.dimNames {
		entries = append(entries, Entry{Kind: KindDimen, Name: name, ID: id, Value: t.dims[id]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind < entries[j].Kind
		}
		return natural.Less(entries[i].Name, entries[j].Name)
	})
	return entries
}

func bareName(ref string) string {
	return strings.TrimPrefix(size.CanonicalID(ref), refPrefix)
}
