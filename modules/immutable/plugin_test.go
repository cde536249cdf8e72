package immutable

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/gaspardpetit/plugargs/core/options"
)

func TestParse(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	args := []string{"-Ximmutable", "-Ximmutable.fake", "-Ximmutable.constructorAccess=protected", "-Ximmutable.generate-modifier=0"}
	for i := range args {
		if _, err := p.ParseArgument(args, i); err != nil {
			t.Fatalf("arg %q: %v", args[i], err)
		}
	}
	want := DefaultConfig()
	want.Fake = true
	want.ConstructorAccess = "protected"
	want.GenerateModifier = false
	if diff := cmp.Diff(want, p.Config()); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownOption(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// immutable does not carry the shared codegen settings
	if _, err := p.ParseArgument([]string{"-Ximmutable.narrow"}, 0); !errors.Is(err, options.ErrUnrecognizedArgument) {
		t.Fatalf("expected unrecognized argument, got %v", err)
	}
}

func TestEveryOptionIsDescribed(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, tag := range []language.Tag{language.Und, language.German} {
		msgs := p.Messages(tag)
		for _, o := range p.Options().Options() {
			if _, ok := msgs.Lookup(o.Name() + ".desc"); !ok {
				t.Errorf("%s: no description for %s", tag, o.Name())
			}
		}
	}
}
