package options

import (
	"strings"

	"github.com/gaspardpetit/plugargs/internal/logx"
)

// IsOwnToken reports whether token starts with "-<namespace>." ignoring case.
func (r *Registry) IsOwnToken(token string) bool {
	_, ok := trimNamespace(r.namespace, token)
	return ok
}

// Dispatch offers token to every option in order and returns how many
// claimed it. Tokens outside the namespace are ignored and yield 0. A token
// inside the namespace that no option claims is an UnrecognizedArgumentError.
// Repeated tokens overwrite earlier values.
func (r *Registry) Dispatch(token string) (int, error) {
	if !r.IsOwnToken(token) {
		return 0, nil
	}
	count := 0
	for _, o := range r.options {
		if o.TryClaim(token) {
			count++
			logx.Log.Debug().
				Str("namespace", r.namespace).
				Str("option", o.name).
				Str("value", o.Display()).
				Msg("option claimed")
		}
	}
	switch {
	case count == 0:
		return 0, &UnrecognizedArgumentError{Namespace: r.namespace, Token: token}
	case count > 1:
		logx.Log.Warn().
			Str("namespace", r.namespace).
			Str("token", token).
			Int("claims", count).
			Msg("argument claimed by more than one option")
	}
	return count, nil
}

// DispatchAll dispatches every token and stops at the first error. It returns
// the number of claims made.
func (r *Registry) DispatchAll(tokens []string) (int, error) {
	total := 0
	for _, t := range tokens {
		n, err := r.Dispatch(t)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Values returns the rendered value of every option keyed by name, with
// secret values masked.
func (r *Registry) Values() map[string]string {
	out := make(map[string]string, len(r.options))
	for _, o := range r.options {
		out[o.name] = o.Display()
	}
	return out
}

// String lists the options as "-ns.name=value" separated by spaces.
func (r *Registry) String() string {
	parts := make([]string, 0, len(r.options))
	for _, o := range r.options {
		parts = append(parts, o.Token()+"="+o.Display())
	}
	return strings.Join(parts, " ")
}
