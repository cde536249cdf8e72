package i18n

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func catalogs() fstest.MapFS {
	return fstest.MapFS{
		"messages.yaml":       {Data: []byte("usage: Generates builders\ngreeting: Hello {0}, you are {1}\nonly.root: root\n")},
		"messages_de.yaml":    {Data: []byte("usage: Erzeugt Builder\ngreeting: Hallo {0}, du bist {1}\n")},
		"messages_de-CH.yaml": {Data: []byte("usage: Erzeugt Builder (CH)\n")},
		"broken.yaml":         {Data: []byte("usage: [unterminated\n")},
		"other.yaml":          {Data: []byte("shared: from other\nusage: other usage\n")},
	}
}

func TestLoadWalksLocaleChain(t *testing.T) {
	tests := []struct {
		tag      language.Tag
		usage    string
		greeting string
	}{
		{language.Und, "Generates builders", "Hello {0}, you are {1}"},
		{language.German, "Erzeugt Builder", "Hallo {0}, du bist {1}"},
		{language.MustParse("de-CH"), "Erzeugt Builder (CH)", "Hallo {0}, du bist {1}"},
		{language.French, "Generates builders", "Hello {0}, you are {1}"},
	}
	for _, tt := range tests {
		b, err := Load(catalogs(), "messages", tt.tag)
		if err != nil {
			t.Fatalf("%s: %v", tt.tag, err)
		}
		if got := b.Get("usage"); got != tt.usage {
			t.Errorf("%s usage = %q, want %q", tt.tag, got, tt.usage)
		}
		if got := b.Get("greeting"); got != tt.greeting {
			t.Errorf("%s greeting = %q, want %q", tt.tag, got, tt.greeting)
		}
		if got := b.Get("only.root"); got != "root" {
			t.Errorf("%s only.root = %q", tt.tag, got)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(catalogs(), "missing", language.Und); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if _, err := Load(catalogs(), "broken", language.Und); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFallbackAndFormat(t *testing.T) {
	plugin, err := Load(catalogs(), "messages", language.German)
	if err != nil {
		t.Fatal(err)
	}
	other, err := Load(catalogs(), "other", language.German)
	if err != nil {
		t.Fatal(err)
	}
	b := plugin.WithFallback(other)
	if b.Get("usage") != "Erzeugt Builder" {
		t.Fatalf("own key not preferred: %q", b.Get("usage"))
	}
	if b.Get("shared") != "from other" {
		t.Fatalf("fallback not consulted: %q", b.Get("shared"))
	}
	if _, ok := b.Lookup("nope"); ok {
		t.Fatal("missing key reported as found")
	}
	if got := b.Format("greeting", "Ada", 3); got != "Hallo Ada, du bist 3" {
		t.Fatalf("format = %q", got)
	}
	if got := b.Format("nope", 1); got != "" {
		t.Fatalf("missing key format = %q", got)
	}
	if plugin.Get("shared") != "" {
		t.Fatal("WithFallback mutated the receiver")
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		pattern string
		args    []any
		want    string
	}{
		{"{0}-{1}", []any{"a", "b"}, "a-b"},
		{"{1}{0}{1}", []any{"a", "b"}, "bab"},
		{"{2} stays", []any{"a"}, "{2} stays"},
		{"{} and {x}", []any{"a"}, "{} and {x}"},
		{"no args {0}", nil, "no args {0}"},
		{"unterminated {0", []any{"a"}, "unterminated {0"},
	}
	for _, tt := range tests {
		if got := Substitute(tt.pattern, tt.args...); got != tt.want {
			t.Errorf("Substitute(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestLocalizedNameAndChain(t *testing.T) {
	if got := LocalizedName("README", language.Und, ".md"); got != "README.md" {
		t.Fatalf("root name = %q", got)
	}
	if got := LocalizedName("README", language.German, ".md"); got != "README_de.md" {
		t.Fatalf("de name = %q", got)
	}
	want := []language.Tag{language.MustParse("de-CH"), language.German, language.Und}
	if diff := cmp.Diff(want, Chain(language.MustParse("de-CH")), cmp.Comparer(func(a, b language.Tag) bool { return a == b })); diff != "" {
		t.Fatalf("chain (-want +got):\n%s", diff)
	}
}

func TestParseTags(t *testing.T) {
	tags, err := ParseTags([]string{"", "root", "de", " fr-CA "})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"und", "und", "de", "fr-CA"}
	var got []string
	for _, tg := range tags {
		got = append(got, tg.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tags (-want +got):\n%s", diff)
	}
	if _, err := ParseTags([]string{"not a tag!"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestForPlugin(t *testing.T) {
	b := ForPlugin(language.German, catalogs(), fstest.MapFS{"messages.yaml": {Data: []byte("extra: more\nusage: shadowed\n")}})
	if b.Get("usage") != "Erzeugt Builder" {
		t.Fatalf("plugin key = %q", b.Get("usage"))
	}
	if b.Get("extra") != "more" {
		t.Fatalf("second catalog not consulted: %q", b.Get("extra"))
	}
	if got := b.Format("exception.unrecognizedArgument", "Xclone", "-Xclone.x"); got != `Unbekanntes Argument für Plugin "Xclone": -Xclone.x` {
		t.Fatalf("shared key = %q", got)
	}
	if got := ForPlugin(language.Und, nil).Get("usage.options"); got != "Options" {
		t.Fatalf("nil fs = %q", got)
	}
	if got := ForPlugin(language.French, fstest.MapFS{}).Get("usage.options"); got != "Options" {
		t.Fatalf("empty fs = %q", got)
	}
}
