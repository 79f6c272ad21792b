// Package catalog holds the static item-set and powerset data the planner
// reads. Data is loaded once from YAML and never mutated afterwards.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog indexes item sets and powersets by ID
type Catalog struct {
	sets      map[string]*ItemSet
	powersets map[string]*Powerset
}

// New creates a catalog from already-built entries. Map keys become IDs.
func New(sets map[string]*ItemSet, powersets map[string]*Powerset) *Catalog {
	c := &Catalog{
		sets:      make(map[string]*ItemSet, len(sets)),
		powersets: make(map[string]*Powerset, len(powersets)),
	}
	for id, set := range sets {
		if set == nil {
			continue
		}
		set.ID = id
		c.sets[id] = set
	}
	for id, ps := range powersets {
		if ps == nil {
			continue
		}
		ps.ID = id
		c.powersets[id] = ps
	}
	return c
}

// Set returns the item set with the given ID
func (c *Catalog) Set(id string) (*ItemSet, bool) {
	if c == nil {
		return nil, false
	}
	set, ok := c.sets[id]
	return set, ok
}

// Powerset returns the powerset with the given ID
func (c *Catalog) Powerset(id string) (*Powerset, bool) {
	if c == nil {
		return nil, false
	}
	ps, ok := c.powersets[id]
	return ps, ok
}

// SetIDs returns every set ID in ascending order
func (c *Catalog) SetIDs() []string {
	ids := make([]string, 0, len(c.sets))
	for id := range c.sets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetsInCategory returns the sets of a category ordered by ID
func (c *Catalog) SetsInCategory(category SetCategory) []*ItemSet {
	var sets []*ItemSet
	for _, id := range c.SetIDs() {
		if set := c.sets[id]; set.Category == category {
			sets = append(sets, set)
		}
	}
	return sets
}

// Len returns the number of item sets loaded
func (c *Catalog) Len() int {
	return len(c.sets)
}

type catalogFile struct {
	Sets      map[string]*ItemSet  `yaml:"sets"`
	Powersets map[string]*Powerset `yaml:"powersets"`
}

// Parse decodes a catalog document
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for id, set := range file.Sets {
		if set == nil {
			return nil, fmt.Errorf("set %q has no body", id)
		}
		if set.Name == "" {
			return nil, fmt.Errorf("set %q is missing a name", id)
		}
	}

	return New(file.Sets, file.Powersets), nil
}

// Load reads and parses a catalog file from disk
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(raw)
}
