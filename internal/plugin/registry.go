package plugin

import (
	"fmt"
	"sort"

	"github.com/gaspardpetit/plugargs/modules/clone"
	"github.com/gaspardpetit/plugargs/modules/fluentbuilder"
	"github.com/gaspardpetit/plugargs/modules/immutable"
	"github.com/gaspardpetit/plugargs/sdk/api/spi"
)

// Factory builds a fresh plugin instance. Every parse gets its own instances
// because plugins hold their option values.
type Factory func() (spi.Plugin, error)

// Catalog maps plugin IDs to factories.
type Catalog struct {
	factories map[string]Factory
	order     []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: map[string]Factory{}}
}

// Register adds a factory for a plugin ID. Registering an ID twice replaces
// the factory but keeps its position.
func (c *Catalog) Register(id string, f Factory) {
	if _, ok := c.factories[id]; !ok {
		c.order = append(c.order, id)
	}
	c.factories[id] = f
}

// Get returns a factory by ID.
func (c *Catalog) Get(id string) (Factory, bool) { f, ok := c.factories[id]; return f, ok }

// IDs returns the registered plugin IDs in registration order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Plugins instantiates the plugins named by ids, in catalog order. An empty
// list or "*" selects every plugin. Unknown IDs are an error.
func (c *Catalog) Plugins(ids ...string) ([]spi.Plugin, error) {
	selected, err := c.selectIDs(ids)
	if err != nil {
		return nil, err
	}
	out := make([]spi.Plugin, 0, len(selected))
	for _, id := range selected {
		p, err := c.factories[id]()
		if err != nil {
			return nil, fmt.Errorf("plugin %s: %w", id, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Descriptors returns the default descriptors of the selected plugins.
func (c *Catalog) Descriptors(ids ...string) ([]spi.PluginDescriptor, error) {
	plugins, err := c.Plugins(ids...)
	if err != nil {
		return nil, err
	}
	out := make([]spi.PluginDescriptor, 0, len(plugins))
	for _, p := range plugins {
		out = append(out, p.Describe())
	}
	return out, nil
}

func (c *Catalog) selectIDs(ids []string) ([]string, error) {
	want := map[string]bool{}
	for _, id := range ids {
		if id == "*" {
			return c.IDs(), nil
		}
		if _, ok := c.factories[id]; !ok {
			known := c.IDs()
			sort.Strings(known)
			return nil, fmt.Errorf("unknown plugin %q (known: %v)", id, known)
		}
		want[id] = true
	}
	if len(want) == 0 {
		return c.IDs(), nil
	}
	var out []string
	for _, id := range c.order {
		if want[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

// Builtin returns a catalog of the plugins shipped with this module.
func Builtin() *Catalog {
	c := NewCatalog()
	c.Register("fluent-builder", func() (spi.Plugin, error) { return fluentbuilder.New() })
	c.Register("immutable", func() (spi.Plugin, error) { return immutable.New() })
	c.Register("clone", func() (spi.Plugin, error) { return clone.New() })
	return c
}
