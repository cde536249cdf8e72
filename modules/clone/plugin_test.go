package clone

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	args := []string{"-Xclone", "-XCLONE.cloneThrows=false", "-Xclone.copyPartial=n"}
	for i := range args {
		if _, err := p.ParseArgument(args, i); err != nil {
			t.Fatalf("arg %q: %v", args[i], err)
		}
	}
	want := DefaultConfig()
	want.CloneThrows = false
	want.CopyPartial = false
	if diff := cmp.Diff(want, p.Config()); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSharedDescriptions(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	msgs := p.Messages(language.German)
	for _, o := range p.Options().Options() {
		if _, ok := msgs.Lookup(o.Name() + ".desc"); !ok {
			t.Errorf("no description for %s", o.Name())
		}
	}
	if got := p.Describe().Messages; len(got) != 2 {
		t.Errorf("expected plugin and shared catalogs, got %d", len(got))
	}
}
