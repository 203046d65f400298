package inspect

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

// Entry is a named encoded size.
type Entry struct {
	Name string
	Raw  string
}

// LoadSheet reads sizes sheet from file, see ReadSheet.
func LoadSheet(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet: %w", err)
	}
	entries, err := ReadSheet(data)
	if err != nil {
		return nil, fmt.Errorf("bad sheet '%s': %w", path, err)
	}
	return entries, nil
}

// ReadSheet decodes YAML mapping of names to encoded sizes keeping document
// order. Sizes starting with "@" have to be quoted in YAML. All problems
// are reported together, good entries are returned regardless.
func ReadSheet(data []byte) (entries []Entry, err error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: sheet must be a mapping of names to sizes", root.Line)
	}

	seen := make(map[string]int)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if line, ok := seen[k.Value]; ok {
			err = multierr.Append(err, fmt.Errorf("line %d: '%s' already defined on line %d", k.Line, k.Value, line))
			continue
		}
		seen[k.Value] = k.Line
		if v.Kind != yaml.ScalarNode {
			err = multierr.Append(err, fmt.Errorf("line %d: size of '%s' must be a string", v.Line, k.Value))
			continue
		}
		entries = append(entries, Entry{Name: k.Value, Raw: v.Value})
	}
	return entries, err
}
