// Package docgen writes the markdown documentation of the plugins: one usage
// file per plugin and locale, the option cheat sheets in usage.md and the
// stitched README files.
package docgen

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/language"

	"github.com/gaspardpetit/plugargs/internal/fs"
	"github.com/gaspardpetit/plugargs/internal/logx"
	"github.com/gaspardpetit/plugargs/internal/metrics"
	"github.com/gaspardpetit/plugargs/internal/usage"
	"github.com/gaspardpetit/plugargs/sdk/api/spi"
	"github.com/gaspardpetit/plugargs/sdk/base/i18n"
)

// indexPattern matches the link index lines appended to a README.
var indexPattern = regexp.MustCompile(`^\[\d+\]: #.*$`)

// readmeSections are the site files that open every README, in order.
var readmeSections = []string{"index", "getting", "history", "usage"}

const (
	usageFile     = "usage"
	argsOpen      = "<args>"
	argsClose     = "</args>"
	cheatIndent   = 6
	cheatPrefix   = "<arg>-"
	cheatSuffix   = "</arg>"
	markdownExt   = ".md"
	generatedMode = 0o644
)

// Generator writes documentation for a set of plugins.
type Generator struct {
	Fs      afero.Fs
	SiteDir string
	// Readme is the root locale README; other locales get README_<tag>.md
	// next to it.
	Readme string
	// CopyDir receives a copy of every README. Empty disables the copy.
	CopyDir string
	Locales []language.Tag
	Plugins []spi.PluginDescriptor
}

// Run writes the usage files, then the READMEs.
func (g *Generator) Run() error {
	if err := g.WriteUsageFiles(); err != nil {
		return err
	}
	return g.WriteReadmes()
}

// ReadmePath returns the README file of a locale.
func (g *Generator) ReadmePath(tag language.Tag) string {
	ext := filepath.Ext(g.Readme)
	return i18n.LocalizedName(strings.TrimSuffix(g.Readme, ext), tag, ext)
}

// UsagePath returns the usage markdown file of a plugin for a locale.
func (g *Generator) UsagePath(d spi.PluginDescriptor, tag language.Tag) string {
	return filepath.Join(g.SiteDir, i18n.LocalizedName(d.Namespace, tag, markdownExt))
}

// LocalizedFile returns <base>_<tag>.md in the site directory, or <base>.md
// when there is no translation. exact reports whether the translation exists.
func (g *Generator) LocalizedFile(base string, tag language.Tag) (path string, exact bool) {
	if tag != language.Und {
		p := filepath.Join(g.SiteDir, i18n.LocalizedName(base, tag, markdownExt))
		if ok, _ := afero.Exists(g.Fs, p); ok {
			return p, true
		}
	}
	return filepath.Join(g.SiteDir, base+markdownExt), tag == language.Und
}

// WriteUsageFiles splices the cheat sheets into each locale's usage.md and
// writes the markdown usage of every plugin for every locale.
func (g *Generator) WriteUsageFiles() error {
	for _, tag := range g.Locales {
		if err := g.spliceCheatSheets(tag); err != nil {
			return err
		}
		for _, d := range g.Plugins {
			md := usage.Markdown(d, i18n.ForPlugin(tag, d.Messages...))
			if err := g.write(g.UsagePath(d, tag), []byte(md), tag); err != nil {
				return err
			}
		}
	}
	return nil
}

// spliceCheatSheets replaces the lines between <args> and </args> of the
// locale's usage.md with the plugin cheat sheets. A locale without its own
// usage file leaves the root one alone.
func (g *Generator) spliceCheatSheets(tag language.Tag) error {
	path, exact := g.LocalizedFile(usageFile, tag)
	if !exact {
		return nil
	}
	lines, err := g.readLines(path)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	skip := false
	for _, line := range lines {
		switch {
		case strings.TrimSpace(line) == argsOpen:
			out.WriteString(line + "\n")
			for _, d := range g.Plugins {
				out.WriteString(usage.CheatSheet(d, i18n.ForPlugin(tag, d.Messages...), cheatIndent, cheatPrefix, cheatSuffix))
			}
			skip = true
			continue
		case skip:
			skip = strings.TrimSpace(line) != argsClose
		}
		if !skip {
			out.WriteString(line + "\n")
		}
	}
	return g.write(path, out.Bytes(), tag)
}

// WriteReadmes stitches the README of every locale from the site sections
// and the plugin usage files, then appends a link index of the plugins.
func (g *Generator) WriteReadmes() error {
	for _, tag := range g.Locales {
		var out bytes.Buffer
		for _, section := range readmeSections {
			path, _ := g.LocalizedFile(section, tag)
			if err := g.appendFile(&out, path); err != nil {
				return err
			}
		}
		for _, d := range g.Plugins {
			if err := g.appendFile(&out, g.UsagePath(d, tag)); err != nil {
				return err
			}
		}
		for i, d := range g.Plugins {
			fmt.Fprintf(&out, "[%d]: #%s\n", i+1, d.Namespace)
		}
		readme := g.ReadmePath(tag)
		if err := g.write(readme, out.Bytes(), tag); err != nil {
			return err
		}
		if g.CopyDir == "" {
			continue
		}
		dst := filepath.Join(g.CopyDir, filepath.Base(readme))
		if filepath.Clean(dst) == filepath.Clean(readme) {
			continue
		}
		if err := g.write(dst, out.Bytes(), tag); err != nil {
			return err
		}
	}
	return nil
}

// appendFile copies path into out without link index lines. Missing site
// sections are skipped.
func (g *Generator) appendFile(out *bytes.Buffer, path string) error {
	if ok, err := afero.Exists(g.Fs, path); err != nil {
		return fmt.Errorf("docgen: stat %s: %w", path, err)
	} else if !ok {
		logx.Log.Warn().Str("file", path).Msg("documentation section missing")
		return nil
	}
	lines, err := g.readLines(path)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if !indexPattern.MatchString(line) {
			out.WriteString(line + "\n")
		}
	}
	return nil
}

func (g *Generator) readLines(path string) ([]string, error) {
	f, err := g.Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("docgen: open %s: %w", path, err)
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("docgen: read %s: %w", path, err)
	}
	return lines, nil
}

// write stores data at path unless the file already holds it.
func (g *Generator) write(path string, data []byte, tag language.Tag) error {
	if fs.SameContent(g.Fs, path, data) {
		logx.Log.Debug().Str("file", path).Msg("documentation unchanged")
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := g.Fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("docgen: mkdir %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(g.Fs, path, data, generatedMode); err != nil {
		return fmt.Errorf("docgen: write %s: %w", path, err)
	}
	metrics.RecordDocFile(localeLabel(tag))
	logx.Log.Info().Str("file", path).Str("locale", localeLabel(tag)).Msg("wrote documentation")
	return nil
}

func localeLabel(tag language.Tag) string {
	if tag == language.Und {
		return "root"
	}
	return tag.String()
}
