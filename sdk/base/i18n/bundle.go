// Package i18n loads translated message catalogs. A catalog is a flat YAML map
// of keys to strings; "<base>.yaml" holds the root locale and
// "<base>_<tag>.yaml" a translation, e.g. "messages_de.yaml".
package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Bundle resolves message keys for one locale. Lookups walk the locale chain
// from the most specific tag to the root catalog, then the fallback bundle.
type Bundle struct {
	tag      language.Tag
	tables   []map[string]string
	fallback *Bundle
}

// Load reads the catalogs named base from fsys for tag and its parents. The
// root catalog is optional only if at least one catalog exists.
func Load(fsys fs.FS, base string, tag language.Tag) (*Bundle, error) {
	b := &Bundle{tag: tag}
	for _, t := range Chain(tag) {
		name := LocalizedName(base, t, ".yaml")
		table, err := readTable(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		b.tables = append(b.tables, table)
	}
	if len(b.tables) == 0 {
		return nil, fmt.Errorf("i18n: no catalog %q for %s: %w", base, tagName(tag), fs.ErrNotExist)
	}
	return b, nil
}

// Empty returns a bundle without messages.
func Empty(tag language.Tag) *Bundle { return &Bundle{tag: tag} }

// WithFallback returns b with next consulted for keys b lacks.
func (b *Bundle) WithFallback(next *Bundle) *Bundle {
	if b == nil {
		return next
	}
	cp := *b
	if cp.fallback != nil {
		cp.fallback = cp.fallback.WithFallback(next)
	} else {
		cp.fallback = next
	}
	return &cp
}

// Tag returns the locale of the bundle.
func (b *Bundle) Tag() language.Tag { return b.tag }

// Lookup returns the message for key.
func (b *Bundle) Lookup(key string) (string, bool) {
	for cur := b; cur != nil; cur = cur.fallback {
		for _, t := range cur.tables {
			if v, ok := t[key]; ok {
				return v, true
			}
		}
	}
	return "", false
}

// Get returns the message for key or "" when it is missing.
func (b *Bundle) Get(key string) string {
	v, _ := b.Lookup(key)
	return v
}

// Format looks up key and substitutes positional arguments written as {0},
// {1}, ... Missing keys format to "".
func (b *Bundle) Format(key string, args ...any) string {
	return Substitute(b.Get(key), args...)
}

// Substitute replaces {n} placeholders in pattern with args[n]. Placeholders
// without a matching argument are left untouched.
func Substitute(pattern string, args ...any) string {
	if len(args) == 0 || !strings.Contains(pattern, "{") {
		return pattern
	}
	var sb strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '{' {
			if end := strings.IndexByte(pattern[i:], '}'); end > 1 {
				if n, err := strconv.Atoi(pattern[i+1 : i+end]); err == nil && n >= 0 && n < len(args) {
					sb.WriteString(fmt.Sprint(args[n]))
					i += end
					continue
				}
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Chain lists tag and its parents, most specific first, ending with the root
// locale.
func Chain(tag language.Tag) []language.Tag {
	var out []language.Tag
	for t := tag; ; t = t.Parent() {
		out = append(out, t)
		if t == language.Und {
			return out
		}
	}
}

// LocalizedName returns base+ext for the root locale and base_<tag>+ext
// otherwise.
func LocalizedName(base string, tag language.Tag, ext string) string {
	if tag == language.Und {
		return base + ext
	}
	return base + "_" + tag.String() + ext
}

// ParseTags parses locale names. The empty string and "root" name the root
// locale.
func ParseTags(names []string) ([]language.Tag, error) {
	out := make([]language.Tag, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || strings.EqualFold(n, "root") {
			out = append(out, language.Und)
			continue
		}
		t, err := language.Parse(n)
		if err != nil {
			return nil, fmt.Errorf("i18n: locale %q: %w", n, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func readTable(fsys fs.FS, name string) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	table := map[string]string{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
	}
	return table, nil
}

func tagName(t language.Tag) string {
	if t == language.Und {
		return "root locale"
	}
	return t.String()
}
