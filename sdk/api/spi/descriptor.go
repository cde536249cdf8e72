package spi

import "io/fs"

// ArgType represents the value kind of a plugin option.
type ArgType string

const (
	ArgText ArgType = "text"
	ArgFlag ArgType = "flag"
)

// ArgSpec describes a single declared option of a plugin, as seen by usage and
// documentation formatters. It is a snapshot; changing it has no effect on the
// plugin.
type ArgSpec struct {
	Name   string  // canonical option name (e.g. generateTools)
	Token  string  // fully qualified token (e.g. -Xfluent-builder.generateTools)
	Type   ArgType // value kind
	Choice string  // free-text hint of legal values, documentation only
	Value  string  // rendered current value, masked when Secret
	Secret bool    // true if the value must not be shown in clear
}

// PluginDescriptor provides the metadata of a plugin and its options.
type PluginDescriptor struct {
	ID         string // short identifier (e.g. "fluent-builder")
	OptionName string // activation switch (e.g. "-Xfluent-builder")
	Namespace  string // option name without the leading "-"
	Args       []ArgSpec
	// Messages holds the plugin's translated catalogs ("messages.yaml",
	// "messages_<tag>.yaml"), most specific first. The "usage" key is the
	// plugin summary and "<option>.desc" the description of an option.
	Messages []fs.FS
}
