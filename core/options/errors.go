package options

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedArgument is wrapped by UnrecognizedArgumentError.
	ErrUnrecognizedArgument = errors.New("unrecognized argument")
	// ErrConfiguration is wrapped by ConfigurationError.
	ErrConfiguration = errors.New("invalid option configuration")
)

// UnrecognizedArgumentError reports a token inside a plugin's namespace that
// no declared option claimed.
type UnrecognizedArgumentError struct {
	Namespace string
	Token     string
}

// Option returns the option part of the token, without namespace and value.
func (e *UnrecognizedArgumentError) Option() string {
	rest, ok := trimNamespace(e.Namespace, e.Token)
	if !ok {
		return e.Token
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] == '=' {
			return rest[:i]
		}
	}
	return rest
}

func (e *UnrecognizedArgumentError) Error() string {
	return fmt.Sprintf("%s: option %q of plugin %q (argument %q)", ErrUnrecognizedArgument, e.Option(), e.Namespace, e.Token)
}

func (e *UnrecognizedArgumentError) Unwrap() error { return ErrUnrecognizedArgument }

// ConfigurationError reports a bad option declaration, detected while the
// registry is built.
type ConfigurationError struct {
	Namespace string
	Option    string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: plugin %q option %q: %s", ErrConfiguration, e.Namespace, e.Option, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
