package i18n

import (
	"embed"
	"io/fs"

	"golang.org/x/text/language"
)

// CatalogBase is the catalog name used by plugins and the shared strings.
const CatalogBase = "messages"

//go:embed messages/*.yaml
var sharedFS embed.FS

// Shared returns the catalogs every plugin falls back to: error messages and
// usage headings.
func Shared() fs.FS {
	sub, err := fs.Sub(sharedFS, "messages")
	if err != nil {
		panic(err)
	}
	return sub
}

// SharedBundle returns the shared strings for tag.
func SharedBundle(tag language.Tag) *Bundle {
	b, err := Load(Shared(), CatalogBase, tag)
	if err != nil {
		// the root catalog is embedded
		panic(err)
	}
	return b
}

// ForPlugin returns the bundle for tag built from catalogs, most specific
// first, backed by the shared strings. Nil entries and catalogs without a
// "messages" file are skipped.
func ForPlugin(tag language.Tag, catalogs ...fs.FS) *Bundle {
	var out *Bundle
	for _, fsys := range catalogs {
		if fsys == nil {
			continue
		}
		b, err := Load(fsys, CatalogBase, tag)
		if err != nil {
			continue
		}
		out = out.WithFallback(b)
	}
	return out.WithFallback(SharedBundle(tag))
}
