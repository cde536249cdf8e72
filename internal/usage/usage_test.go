package usage

import (
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"

	"github.com/gaspardpetit/plugargs/sdk/api/spi"
	"github.com/gaspardpetit/plugargs/sdk/base/i18n"
)

func descriptor() spi.PluginDescriptor {
	return spi.PluginDescriptor{
		ID:         "demo",
		OptionName: "-Xdemo",
		Namespace:  "Xdemo",
		Args: []spi.ArgSpec{
			{Name: "fast", Token: "-Xdemo.fast", Type: spi.ArgFlag, Value: "y"},
			{Name: "mode", Token: "-Xdemo.mode", Type: spi.ArgText, Choice: "a|b"},
			{Name: "label", Token: "-Xdemo.label", Type: spi.ArgText},
			{Name: "token", Token: "-Xdemo.token", Type: spi.ArgText, Value: "s******t", Secret: true},
		},
	}
}

func bundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	fsys := fstest.MapFS{
		"messages.yaml": {Data: []byte("usage: Demo plugin.\nfast.desc: Go fast.\n")},
	}
	return i18n.ForPlugin(language.Und, fsys)
}

func TestPlaceholder(t *testing.T) {
	msgs := bundle(t)
	d := descriptor()
	want := []string{"y", "a|b", "<string>", "<string>"}
	for i, a := range d.Args {
		if got := Placeholder(a, msgs); got != want[i] {
			t.Errorf("%s: placeholder %q, want %q", a.Name, got, want[i])
		}
	}
	if got := Placeholder(spi.ArgSpec{Type: spi.ArgFlag}, msgs); got != "{y|n}" {
		t.Errorf("empty flag placeholder %q", got)
	}
}

func TestPlainText(t *testing.T) {
	out := PlainText(descriptor(), bundle(t))
	for _, want := range []string{
		"  -Xdemo                  :  Demo plugin.\n",
		"      -Xdemo.fast={y|n}  (Default: y)\n",
		"          Go fast.\n",
		"      -Xdemo.mode=<string>\n",
		"          Values: a|b\n",
		"      -Xdemo.token=<string>  (Default: s******t)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestPlainTextWrapsDescriptions(t *testing.T) {
	long := strings.Repeat("word ", 40)
	fsys := fstest.MapFS{"messages.yaml": {Data: []byte("label.desc: " + long + "\n")}}
	out := PlainText(descriptor(), i18n.ForPlugin(language.Und, fsys))
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "          word") && len(line) > 10+wrapWidth {
			t.Errorf("line not wrapped: %q", line)
		}
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(descriptor(), bundle(t))
	for _, want := range []string{
		"<a name=\"Xdemo\"></a>\n",
		"### Plugin Xdemo\n\nDemo plugin.\n\n",
		"```\n-Xdemo [-Xdemo.fast={y|n}] [-Xdemo.mode=<string>]",
		"##### -Xdemo.fast\nGo fast.\n\n",
		"##### -Xdemo.label\n(no description)\n\n",
		"| Option",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestMarkdownWithoutOptions(t *testing.T) {
	d := spi.PluginDescriptor{OptionName: "-Xbare", Namespace: "Xbare"}
	out := Markdown(d, i18n.SharedBundle(language.Und))
	if !strings.HasSuffix(out, "This plugin has no options.\n") {
		t.Errorf("unexpected markdown:\n%s", out)
	}
}

func TestMarkdownGerman(t *testing.T) {
	out := Markdown(descriptor(), i18n.SharedBundle(language.German))
	for _, want := range []string{"#### Aufruf\n", "#### Optionen\n", "[-Xdemo.label=<Zeichenkette>]"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestCheatSheet(t *testing.T) {
	got := CheatSheet(descriptor(), bundle(t), 2, "<arg>-", "</arg>")
	want := "  <arg>-Xdemo</arg>\n" +
		"  <arg>-Xdemo.fast=y</arg>\n" +
		"  <arg>-Xdemo.mode=a|b</arg>\n" +
		"  <arg>-Xdemo.label=<string></arg>\n" +
		"  <arg>-Xdemo.token=<string></arg>\n"
	if got != want {
		t.Errorf("cheat sheet:\n%s\nwant:\n%s", got, want)
	}
}
