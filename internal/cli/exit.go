package cli

import (
	"errors"

	"github.com/gaspardpetit/plugargs/core/options"
)

// ErrUsage marks command line mistakes detected by the command tree itself.
var ErrUsage = errors.New("usage error")

// Exit codes of the plugargs command.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps an error returned by the command tree to a process status.
// Command line mistakes exit with ExitUsage.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage), errors.Is(err, options.ErrUnrecognizedArgument):
		return ExitUsage
	default:
		return ExitError
	}
}
