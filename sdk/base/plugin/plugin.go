package plugin

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/language"

	"github.com/gaspardpetit/plugargs/core/options"
	"github.com/gaspardpetit/plugargs/internal/metrics"
	"github.com/gaspardpetit/plugargs/internal/usage"
	"github.com/gaspardpetit/plugargs/sdk/api/spi"
	"github.com/gaspardpetit/plugargs/sdk/base/i18n"
)

// Base provides the option handling shared by all plugins: the option
// registry, argument parsing, usage text and metadata. Concrete plugins embed
// *Base and pass their configuration declarers to NewBase.
type Base struct {
	id       string
	registry *options.Registry
	messages []fs.FS
	locale   language.Tag
}

// NewBase builds the option registry of a plugin activated by optionName
// (e.g. "-Xfluent-builder"). Declarers are registered in order, so pass
// shared settings before plugin specific ones. messages lists the catalogs
// describing the options, most specific first.
func NewBase(optionName string, messages []fs.FS, declarers ...options.Declarer) (*Base, error) {
	ns := strings.TrimPrefix(optionName, "-")
	if ns == "" || strings.ContainsAny(ns, ".= \t") {
		return nil, &options.ConfigurationError{Namespace: ns, Reason: fmt.Sprintf("invalid plugin option name %q", optionName)}
	}
	reg, err := options.Build(ns, declarers...)
	if err != nil {
		return nil, err
	}
	metrics.SetDeclaredOptions(ns, reg.Len())
	return &Base{
		id:       strings.TrimPrefix(ns, "X"),
		registry: reg,
		messages: messages,
		locale:   language.Und,
	}, nil
}

// ID returns the plugin identifier: the namespace without the "X" prefix.
func (b *Base) ID() string { return b.id }

// OptionName returns the switch that activates the plugin.
func (b *Base) OptionName() string { return b.registry.OptionName() }

// Namespace returns the option namespace.
func (b *Base) Namespace() string { return b.registry.Namespace() }

// Options returns the plugin's option registry.
func (b *Base) Options() *options.Registry { return b.registry }

// SetLocale selects the language of error messages and usage text.
func (b *Base) SetLocale(tag language.Tag) { b.locale = tag }

// Messages returns the plugin catalogs for tag backed by the shared strings.
func (b *Base) Messages(tag language.Tag) *i18n.Bundle {
	return i18n.ForPlugin(tag, b.messages...)
}

// ParseArgument offers args[i] to the plugin's options. Tokens outside the
// plugin namespace yield 0. A namespaced token no option claims yields a
// *BadCommandLineError with a localized message.
func (b *Base) ParseArgument(args []string, i int) (int, error) {
	if i < 0 || i >= len(args) || !b.registry.IsOwnToken(args[i]) {
		return 0, nil
	}
	n, err := b.registry.Dispatch(args[i])
	if err != nil {
		metrics.RecordToken(b.Namespace(), metrics.ResultUnrecognized)
		var ue *options.UnrecognizedArgumentError
		if errors.As(err, &ue) {
			msg := b.Messages(b.locale).Format("exception.unrecognizedArgument", ue.Namespace, ue.Token)
			return 0, &BadCommandLineError{Message: msg, Err: err}
		}
		return 0, err
	}
	metrics.RecordToken(b.Namespace(), metrics.ResultClaimed)
	return n, nil
}

// Describe returns a snapshot of the plugin metadata and current values.
func (b *Base) Describe() spi.PluginDescriptor {
	d := spi.PluginDescriptor{
		ID:         b.id,
		OptionName: b.OptionName(),
		Namespace:  b.Namespace(),
		Messages:   b.messages,
	}
	for _, o := range b.registry.Options() {
		typ := spi.ArgText
		if o.Kind() == options.Flag {
			typ = spi.ArgFlag
		}
		d.Args = append(d.Args, spi.ArgSpec{
			Name:   o.Name(),
			Token:  o.Token(),
			Type:   typ,
			Choice: o.Choice(),
			Value:  o.Display(),
			Secret: o.Secret(),
		})
	}
	return d
}

// Usage returns the plain-text usage of the plugin in its current locale.
func (b *Base) Usage() string {
	return usage.PlainText(b.Describe(), b.Messages(b.locale))
}

var _ spi.Plugin = (*Base)(nil)

// BadCommandLineError is a user-facing command line error.
type BadCommandLineError struct {
	Message string
	Err     error
}

func (e *BadCommandLineError) Error() string { return e.Message }

func (e *BadCommandLineError) Unwrap() error { return e.Err }
