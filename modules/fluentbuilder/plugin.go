// Package fluentbuilder declares the options of the fluent builder plugin.
package fluentbuilder

import (
	"embed"
	"io/fs"

	"github.com/gaspardpetit/plugargs/core/options"
	"github.com/gaspardpetit/plugargs/modules/common/codegen"
	"github.com/gaspardpetit/plugargs/sdk/base/plugin"
)

// OptionName activates the plugin.
const OptionName = "-Xfluent-builder"

//go:embed messages/*.yaml
var messagesFS embed.FS

// Config holds the plugin settings.
type Config struct {
	codegen.Settings
	RootSelectorClassName    string
	SelectorClassName        string
	BuilderClassName         string
	BuilderInterfaceName     string
	NewBuilderMethodName     string
	NewCopyBuilderMethodName string
	CopyToMethodName         string
	CopyAlways               bool
	GenerateJavadoc          bool
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		Settings:                 codegen.DefaultSettings(),
		RootSelectorClassName:    "Select",
		SelectorClassName:        "Selector",
		BuilderClassName:         "Builder",
		BuilderInterfaceName:     "BuildSupport",
		NewBuilderMethodName:     "builder",
		NewCopyBuilderMethodName: "newCopyBuilder",
		CopyToMethodName:         "copyTo",
	}
}

// DeclareOptions registers the shared settings, then the builder options.
func (c *Config) DeclareOptions(b *options.Builder) {
	c.Settings.DeclareOptions(b)
	b.Text("rootSelectorClassName", &c.RootSelectorClassName, options.WithChoice("Java identifier")).
		Text("selectorClassName", &c.SelectorClassName, options.WithChoice("Java identifier")).
		Text("builderClassName", &c.BuilderClassName, options.WithChoice("Java identifier")).
		Text("builderInterfaceName", &c.BuilderInterfaceName, options.WithChoice("Java identifier")).
		Text("newBuilderMethodName", &c.NewBuilderMethodName, options.WithChoice("Java identifier")).
		Text("newCopyBuilderMethodName", &c.NewCopyBuilderMethodName, options.WithChoice("Java identifier")).
		Text("copyToMethodName", &c.CopyToMethodName, options.WithChoice("Java identifier")).
		Flag("copyAlways", &c.CopyAlways).
		Flag("generateJavadocFromAnnotations", &c.GenerateJavadoc)
}

// Plugin generates fluent builders for generated classes.
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
