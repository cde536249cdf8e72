package options

import (
	"fmt"
	"strings"
)

// Declarer is implemented by plugin configuration types that declare options.
// A declarer that embeds another one calls the embedded DeclareOptions (or
// Builder.Include) before registering its own options, so ancestors come
// first.
type Declarer interface {
	DeclareOptions(b *Builder)
}

// DeclarerFunc adapts a function to Declarer.
type DeclarerFunc func(b *Builder)

// DeclareOptions calls f(b).
func (f DeclarerFunc) DeclareOptions(b *Builder) { f(b) }

// Setting customises an option at registration time.
type Setting func(*Option)

// WithChoice documents the legal value domain of an option.
func WithChoice(hint string) Setting {
	return func(o *Option) { o.choice = hint }
}

// AsSecret masks the option's value in usage text and logs.
func AsSecret() Setting {
	return func(o *Option) { o.secret = true }
}

// Builder collects option registrations for one plugin in call order. The
// first registration error is kept and returned by Build.
type Builder struct {
	namespace string
	options   []*Option
	seen      map[string]string
	err       error
}

// NewBuilder returns a builder for the plugin namespace (the plugin option
// name without its leading "-").
func NewBuilder(namespace string) *Builder {
	return &Builder{
		namespace: strings.TrimPrefix(namespace, "-"),
		seen:      map[string]string{},
	}
}

// Namespace returns the namespace options are registered under.
func (b *Builder) Namespace() string { return b.namespace }

// Include lets d register its options at the current position.
func (b *Builder) Include(d Declarer) *Builder {
	if d != nil {
		d.DeclareOptions(b)
	}
	return b
}

// Text registers a text option stored in *slot.
func (b *Builder) Text(name string, slot *string, settings ...Setting) *Builder {
	if slot == nil {
		return b.fail(name, "nil value slot")
	}
	return b.TextFunc(name, func() string { return *slot }, func(v string) { *slot = v }, settings...)
}

// Flag registers a flag option stored in *slot.
func (b *Builder) Flag(name string, slot *bool, settings ...Setting) *Builder {
	if slot == nil {
		return b.fail(name, "nil value slot")
	}
	return b.FlagFunc(name, func() bool { return *slot }, func(v bool) { *slot = v }, settings...)
}

// TextFunc registers a text option reading and writing through get and set.
func (b *Builder) TextFunc(name string, get func() string, set func(string), settings ...Setting) *Builder {
	if get == nil || set == nil {
		return b.fail(name, "missing accessor")
	}
	return b.add(&Option{name: name, kind: Text, get: get, set: set}, settings)
}

// FlagFunc registers a flag option reading and writing through get and set.
func (b *Builder) FlagFunc(name string, get func() bool, set func(bool), settings ...Setting) *Builder {
	if get == nil || set == nil {
		return b.fail(name, "missing accessor")
	}
	return b.add(&Option{
		name: name,
		kind: Flag,
		get:  func() string { return FormatFlag(get()) },
		set:  func(raw string) { set(ParseFlag(raw)) },
	}, settings)
}

// Bind registers an option whose kind follows the slot type: *string is Text
// and *bool is Flag. Any other slot type is a configuration error.
func (b *Builder) Bind(name string, slot any, settings ...Setting) *Builder {
	switch s := slot.(type) {
	case *string:
		return b.Text(name, s, settings...)
	case *bool:
		return b.Flag(name, s, settings...)
	default:
		return b.fail(name, fmt.Sprintf("unsupported value kind %T (want *string or *bool)", slot))
	}
}

// Err returns the first registration error, if any.
func (b *Builder) Err() error { return b.err }

// Build returns the registry, or the first registration error.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	opts := make([]*Option, len(b.options))
	copy(opts, b.options)
	return &Registry{namespace: b.namespace, options: opts}, nil
}

func (b *Builder) add(o *Option, settings []Setting) *Builder {
	if b.err != nil {
		return b
	}
	if strings.TrimSpace(o.name) == "" || canonicalKey(o.name) == "" {
		return b.fail(o.name, "empty option name")
	}
	if strings.ContainsAny(o.name, "= \t") {
		return b.fail(o.name, "option name must not contain '=' or whitespace")
	}
	key := canonicalKey(o.name)
	if prev, dup := b.seen[key]; dup {
		return b.fail(o.name, fmt.Sprintf("duplicate option name (already declared as %q)", prev))
	}
	for _, s := range settings {
		s(o)
	}
	o.namespace = b.namespace
	b.seen[key] = o.name
	b.options = append(b.options, o)
	return b
}

func (b *Builder) fail(name, reason string) *Builder {
	if b.err == nil {
		b.err = &ConfigurationError{Namespace: b.namespace, Option: name, Reason: reason}
	}
	return b
}

// Build collects the options of declarers, in order, into a registry for
// namespace. Pass ancestors before descendants.
func Build(namespace string, declarers ...Declarer) (*Registry, error) {
	b := NewBuilder(namespace)
	for _, d := range declarers {
		b.Include(d)
	}
	return b.Build()
}

// Registry is the ordered, immutable set of options of one plugin instance.
// A registry must not be shared between plugin instances or parses.
type Registry struct {
	namespace string
	options   []*Option
}

// Namespace returns the plugin namespace, without leading "-".
func (r *Registry) Namespace() string { return r.namespace }

// OptionName returns the plugin option name, "-" + namespace.
func (r *Registry) OptionName() string { return "-" + r.namespace }

// Options returns the options in registration order.
func (r *Registry) Options() []*Option {
	out := make([]*Option, len(r.options))
	copy(out, r.options)
	return out
}

// Len returns the number of options.
func (r *Registry) Len() int { return len(r.options) }

// Lookup finds an option by name using the same equivalence as token matching.
func (r *Registry) Lookup(name string) (*Option, bool) {
	key := canonicalKey(name)
	for _, o := range r.options {
		if canonicalKey(o.name) == key {
			return o, true
		}
	}
	return nil, false
}
