// Package clone declares the options of the deep copy plugin.
package clone

import (
	"embed"
	"io/fs"

	"github.com/gaspardpetit/plugargs/core/options"
	"github.com/gaspardpetit/plugargs/modules/common/codegen"
	"github.com/gaspardpetit/plugargs/sdk/base/plugin"
)

// OptionName activates the plugin.
const OptionName = "-Xclone"

//go:embed messages/*.yaml
var messagesFS embed.FS

// Config holds the plugin settings.
type Config struct {
	codegen.Settings
	CloneThrows     bool
	CopyConstructor bool
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		Settings:        codegen.DefaultSettings(),
		CloneThrows:     true,
		CopyConstructor: true,
	}
}

// DeclareOptions registers the shared settings, then the clone options.
func (c *Config) DeclareOptions(b *options.Builder) {
	c.Settings.DeclareOptions(b)
	b.Flag("cloneThrows", &c.CloneThrows).
		Flag("copyConstructor", &c.CopyConstructor)
}

// Plugin generates deep copy methods.
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
	base, err := plugin.NewBase(OptionName, []fs.FS{sub, codegen.Messages()}, &p.cfg)
	if err != nil {
		return nil, err
	}
	p.Base = base
	return p, nil
}

// Config returns the current settings.
func (p *Plugin) Config() Config { return p.cfg }
