// Package codegen holds option settings shared by the code generating
// plugins.
package codegen

import (
	"embed"
	"io/fs"

	"github.com/gaspardpetit/plugargs/core/options"
)

//go:embed messages/*.yaml
var messagesFS embed.FS

// Messages returns the catalogs describing the shared settings.
func Messages() fs.FS {
	sub, err := fs.Sub(messagesFS, "messages")
	if err != nil {
		panic(err)
	}
	return sub
}

// Settings are the options every generating plugin accepts. Plugins embed
// Settings and call its DeclareOptions before declaring their own options.
type Settings struct {
	GenerateTools bool
	Narrow        bool
	CopyPartial   bool
}

// DefaultSettings returns the settings used when no option is given.
func DefaultSettings() Settings {
	return Settings{GenerateTools: true, Narrow: false, CopyPartial: true}
}

// DeclareOptions registers the shared options.
func (s *Settings) DeclareOptions(b *options.Builder) {
	b.Flag("generateTools", &s.GenerateTools).
		Flag("narrow", &s.Narrow).
		Flag("copyPartial", &s.CopyPartial)
}
