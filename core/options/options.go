package options

import (
	"strings"

	"github.com/gaspardpetit/plugargs/core/secret"
)

// Kind is the value kind of an option.
type Kind int

const (
	// Text options store the raw value verbatim.
	Text Kind = iota
	// Flag options store a boolean; a token without "=value" sets true.
	Flag
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Flag:
		return "flag"
	default:
		return "unknown"
	}
}

// flagSentinel is the raw value used when a token carries no "=value".
const flagSentinel = "y"

// Option is one declared, typed, named setting of a plugin. It owns read and
// write access to exactly one value slot of the plugin's configuration.
type Option struct {
	namespace string
	name      string
	kind      Kind
	choice    string
	secret    bool
	get       func() string
	set       func(string)
}

// Name returns the canonical option name.
func (o *Option) Name() string { return o.name }

// Kind returns the value kind.
func (o *Option) Kind() Kind { return o.kind }

// Choice returns the documentation hint describing legal values. It is never
// validated.
func (o *Option) Choice() string { return o.choice }

// Secret reports whether rendered values must be masked for display.
func (o *Option) Secret() bool { return o.secret }

// Namespace returns the namespace of the owning plugin.
func (o *Option) Namespace() string { return o.namespace }

// Token returns the fully qualified token prefix of the option, e.g.
// "-Xfluent-builder.generateTools".
func (o *Option) Token() string { return "-" + o.namespace + "." + o.name }

// Render returns the current value as text. Flags render as "y" or "n".
func (o *Option) Render() string { return o.get() }

// Display is Render with secret values masked.
func (o *Option) Display() string {
	if o.secret {
		return secret.Mask(o.get())
	}
	return o.get()
}

// Matches reports whether token addresses this option. The namespace prefix
// and any "=value" suffix are stripped; the remainder must equal the option
// name ignoring case, either literally or after variable name normalisation
// of both sides.
func (o *Option) Matches(token string) bool {
	rest, ok := trimNamespace(o.namespace, token)
	if !ok {
		return false
	}
	if i := strings.IndexByte(rest, '='); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return false
	}
	return strings.EqualFold(o.name, rest) || canonicalKey(o.name) == canonicalKey(rest)
}

// TryClaim stores the value carried by token when the token matches the
// option. The raw value is the text after the first "="; without "=" the
// flag sentinel "y" is used. It returns false without side effects when the
// token does not match.
func (o *Option) TryClaim(token string) bool {
	if !o.Matches(token) {
		return false
	}
	raw := flagSentinel
	if i := strings.IndexByte(token, '='); i >= 0 {
		raw = token[i+1:]
	}
	o.set(raw)
	return true
}

// ParseFlag converts a raw flag value. "y", "yes", "true" and "1" are true
// regardless of case; every other value is false. Unknown values are
// deliberately not rejected.
func ParseFlag(raw string) bool {
	switch strings.ToLower(raw) {
	case "y", "yes", "true", "1":
		return true
	default:
		return false
	}
}

// FormatFlag renders a flag value the way tokens spell it.
func FormatFlag(v bool) string {
	if v {
		return "y"
	}
	return "n"
}

// trimNamespace strips "-<namespace>." from token, ignoring case.
func trimNamespace(namespace, token string) (string, bool) {
	prefix := "-" + namespace + "."
	if len(token) < len(prefix) || !strings.EqualFold(token[:len(prefix)], prefix) {
		return "", false
	}
	return token[len(prefix):], true
}
