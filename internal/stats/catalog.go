// Package stats holds the vocabulary of stat keys a UI offers for modifiers.
//
// The catalog is loaded once at startup and never mutated. It only shapes
// what is offered for entry; bonus aggregation sums whatever keys are stored.
package stats

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultCatalog []byte

// Option is one selectable stat key
type Option struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

type catalogFile struct {
	Options []Option `yaml:"options"`
}

// Catalog is an ordered, read-only set of stat options
type Catalog struct {
	options []Option
	labels  map[string]string
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(strings.NewReader(string(defaultCatalog)))
	if err != nil {
		panic(fmt.Sprintf("stats: embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file. An empty path yields the default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path) // #nosec G304 -- operator supplied config path
	if err != nil {
		return nil, fmt.Errorf("open stat catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse decodes a YAML catalog. Keys must be non-empty and unique.
func Parse(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode stat catalog: %w", err)
	}
	if len(file.Options) == 0 {
		return nil, fmt.Errorf("stat catalog has no options")
	}

	c := &Catalog{
		options: make([]Option, 0, len(file.Options)),
		labels:  make(map[string]string, len(file.Options)),
	}
	for i, opt := range file.Options {
		key := strings.TrimSpace(opt.Key)
		if key == "" {
			return nil, fmt.Errorf("stat option %d has no key", i)
		}
		if _, dup := c.labels[key]; dup {
			return nil, fmt.Errorf("stat option %q is listed twice", key)
		}
		label := strings.TrimSpace(opt.Label)
		if label == "" {
			label = key
		}
		c.options = append(c.options, Option{Key: key, Label: label})
		c.labels[key] = label
	}
	return c, nil
}

// Options returns a copy of the options in display order
func (c *Catalog) Options() []Option {
	out := make([]Option, len(c.options))
	copy(out, c.options)
	return out
}

// Has reports whether key is in the catalog
func (c *Catalog) Has(key string) bool {
	_, ok := c.labels[key]
	return ok
}

// Label returns the display label for key, or key itself when unknown
func (c *Catalog) Label(key string) string {
	if label, ok := c.labels[key]; ok {
		return label
	}
	return key
}
