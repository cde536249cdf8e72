package main

import (
	"os"

	"github.com/gaspardpetit/plugargs/internal/cli"
	"github.com/gaspardpetit/plugargs/internal/logx"
)

var (
	version   = "dev"
	buildSHA  = "unknown"
	buildDate = "unknown"
)

func main() {
	root := cli.NewApp(version, buildSHA, buildDate).Command()
	if err := root.Execute(); err != nil {
		logx.Log.Error().Err(err).Msg("plugargs failed")
		os.Exit(cli.ExitCode(err))
	}
}
