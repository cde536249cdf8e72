// Package immutable declares the options of the immutable plugin.
package immutable

import (
	"embed"
	"io/fs"

	"github.com/gaspardpetit/plugargs/core/options"
	"github.com/gaspardpetit/plugargs/sdk/base/plugin"
)

// OptionName activates the plugin.
const OptionName = "-Ximmutable"

//go:embed messages/*.yaml
var messagesFS embed.FS

// Config holds the plugin settings.
type Config struct {
	Fake                    bool
	OverrideCollectionClass string
	ConstructorAccess       string
	GenerateModifier        bool
	ModifierClassName       string
	ModifierMethodName      string
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		ConstructorAccess:  "public",
		GenerateModifier:   true,
		ModifierClassName:  "Modifier",
		ModifierMethodName: "modifier",
	}
}

// DeclareOptions registers the immutable options.
func (c *Config) DeclareOptions(b *options.Builder) {
	b.Flag("fake", &c.Fake).
		Text("overrideCollectionClass", &c.OverrideCollectionClass, options.WithChoice("class name")).
		Text("constructorAccess", &c.ConstructorAccess, options.WithChoice("public|protected|private")).
		Flag("generateModifier", &c.GenerateModifier).
		Text("modifierClassName", &c.ModifierClassName, options.WithChoice("Java identifier")).
		Text("modifierMethodName", &c.ModifierMethodName, options.WithChoice("Java identifier"))
}

// Plugin makes generated classes immutable.
type Plugin struct {
	*plugin.Base
	cfg Config
}

// New returns the plugin with default settings.
func New() (*Plugin, error) {
	p := &Plugin{cfg: DefaultConfig()}
	sub, err := fs.Sub(messagesFS, "messages")
	if err != nil {
		return nil, err
	}
	base, err := plugin.NewBase(OptionName, []fs.FS{sub}, &p.cfg)
	if err != nil {
		return nil, err
	}
	p.Base = base
	return p, nil
}

// Config returns the current settings.
func (p *Plugin) Config() Config { return p.cfg }
