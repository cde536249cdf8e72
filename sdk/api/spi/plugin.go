package spi

import "golang.org/x/text/language"

// Plugin is implemented by all plugins.
type Plugin interface {
	// ID returns the short plugin identifier.
	ID() string
	// OptionName returns the switch that activates the plugin, e.g. "-Xclone".
	OptionName() string
	// ParseArgument offers args[i] to the plugin. It returns the number of
	// options that claimed the token, or an error that must abort startup.
	ParseArgument(args []string, i int) (int, error)
	// SetLocale selects the language of error messages and usage text.
	SetLocale(tag language.Tag)
	// Usage returns the plain-text usage of the plugin.
	Usage() string
	// Describe returns the plugin metadata for usage and documentation.
	Describe() PluginDescriptor
}
