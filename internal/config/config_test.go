package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plugargs.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	var c Config
	c.BindFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))
	want := Config{
		ConfigFile: DefaultConfigPath("plugargs.yaml"),
		SiteDir:    "src/site/markdown",
		Readme:     "README.md",
		Locales:    []string{"", "de"},
		LogLevel:   "info",
		Plugins:    []string{"*"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestEnv(t *testing.T) {
	t.Setenv("PLUGARGS_SITE_DIR", "docs")
	t.Setenv("PLUGARGS_LOCALES", "de, fr")
	t.Setenv("PLUGARGS_PLUGINS", "clone")
	var c Config
	c.BindFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))
	if c.SiteDir != "docs" {
		t.Errorf("site dir %q", c.SiteDir)
	}
	if diff := cmp.Diff([]string{"de", "fr"}, c.Locales); diff != "" {
		t.Errorf("locales (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"clone"}, c.Plugins); diff != "" {
		t.Errorf("plugins (-want +got):\n%s", diff)
	}
}

func TestResolvePrecedence(t *testing.T) {
	path := writeFile(t, "site_dir: from-file\nreadme: FILE.md\nlog_level: debug\nlocales: [fr]\n")
	t.Setenv("PLUGARGS_CONFIG_FILE", path)
	t.Setenv("PLUGARGS_README", "ENV.md")

	var c Config
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)
	if err := fs.Parse([]string{"--log-level", "warn"}); err != nil {
		t.Fatal(err)
	}
	if err := c.Resolve(fs); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := Config{
		ConfigFile: path,
		SiteDir:    "from-file",
		Readme:     "ENV.md",
		Locales:    []string{"fr"},
		LogLevel:   "warn",
		Plugins:    []string{"*"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveMissingFile(t *testing.T) {
	var c Config
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)
	if err := fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}); err != nil {
		t.Fatal(err)
	}
	if err := c.Resolve(fs); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
	if c.SiteDir != "src/site/markdown" {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestResolveBadFile(t *testing.T) {
	path := writeFile(t, "locales: {not a list\n")
	var c Config
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)
	if err := fs.Parse([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}
	if err := c.Resolve(fs); err == nil {
		t.Fatal("expected parse error")
	}
}
