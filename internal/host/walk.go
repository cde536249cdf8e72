// Package host drives plugin argument parsing over a compiler command line
// the way the schema compiler does.
package host

import (
	"fmt"
	"strings"

	"github.com/gaspardpetit/plugargs/internal/logx"
	"github.com/gaspardpetit/plugargs/sdk/api/spi"
)

// standardArgs are the compiler's own switches.
var standardArgs = map[string]bool{
	"-nv": true, "-extension": true, "-b": true, "-d": true, "-p": true,
	"-httpproxy": true, "-httpproxyfile": true, "-classpath": true, "-catalog": true,
	"-readOnly": true, "-npa": true, "-no-header": true, "-target": true, "-encoding": true,
	"-enableIntrospection": true, "-contentForWildcard": true, "-xmlschema": true,
	"-relaxng": true, "-relaxng-compact": true, "-dtd": true, "-wsdl": true,
	"-verbose": true, "-quiet": true, "-help": true, "-version": true, "-fullversion": true,
	"-Xinject-code": true, "-Xlocator": true, "-Xsync-methods": true,
	"-mark-generated": true, "-episode": true,
}

// valueArgs are the standard switches followed by a separate value token.
var valueArgs = map[string]bool{
	"-b": true, "-d": true, "-p": true, "-httpproxy": true, "-httpproxyfile": true,
	"-classpath": true, "-catalog": true, "-target": true, "-encoding": true, "-episode": true,
}

// IsStandardArg reports whether arg is one of the compiler's own switches.
func IsStandardArg(arg string) bool { return standardArgs[arg] }

// IsEndOfPluginArgs reports whether arg ends the argument block of the
// plugin activated before it: a standard switch or another plugin switch.
func IsEndOfPluginArgs(arg string) bool {
	return standardArgs[arg] || strings.HasPrefix(arg, "-X") || strings.HasPrefix(arg, "-B-X")
}

// Result is the outcome of a walk.
type Result struct {
	// Enabled lists the plugins whose switch appeared, in command line order.
	Enabled []spi.Plugin
	// PassThrough holds the tokens no plugin consumed, in order.
	PassThrough []string
	// Claims is the total number of option claims.
	Claims int
}

// Walk offers every token of args to every plugin. A token equal to a
// plugin's option name enables that plugin. Tokens and values of standard
// switches are passed through unchanged. The first plugin error aborts the
// walk.
func Walk(args []string, plugins []spi.Plugin) (Result, error) {
	var res Result
	enabled := map[string]bool{}
	block := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if p := byOptionName(plugins, arg); p != nil {
			if !enabled[p.ID()] {
				enabled[p.ID()] = true
				res.Enabled = append(res.Enabled, p)
			}
			block = arg
			continue
		}
		if IsStandardArg(arg) {
			block = ""
			res.PassThrough = append(res.PassThrough, arg)
			if valueArgs[arg] && i+1 < len(args) {
				i++
				res.PassThrough = append(res.PassThrough, args[i])
			}
			continue
		}
		claims := 0
		for _, p := range plugins {
			n, err := p.ParseArgument(args, i)
			if err != nil {
				return res, fmt.Errorf("plugin %s: %w", p.ID(), err)
			}
			claims += n
		}
		res.Claims += claims
		if claims > 0 {
			continue
		}
		if IsEndOfPluginArgs(arg) {
			block = ""
		} else if block != "" {
			logx.Log.Debug().Str("plugin", block).Str("arg", arg).Msg("argument in plugin block not claimed by any plugin")
		}
		res.PassThrough = append(res.PassThrough, arg)
	}
	return res, nil
}

func byOptionName(plugins []spi.Plugin, arg string) spi.Plugin {
	for _, p := range plugins {
		if p.OptionName() == arg {
			return p
		}
	}
	return nil
}
