package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/gaspardpetit/plugargs/internal/host"
)

func (a *App) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse -- <argv...>",
		Short: "Run the plugins over a compiler command line and print the result",
		Example: "  plugargs parse -- -Xfluent-builder -Xfluent-builder.narrow=y schema.xsd",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := a.tag()
			if err != nil {
				return err
			}
			plugins, err := a.Catalog.Plugins(a.cfg.Plugins...)
			if err != nil {
				return err
			}
			for _, p := range plugins {
				p.SetLocale(tag)
			}
			res, err := host.Walk(args, plugins)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ids := make([]string, 0, len(res.Enabled))
			for _, p := range res.Enabled {
				ids = append(ids, p.ID())
			}
			fmt.Fprintf(out, "enabled: %s\n", strings.Join(ids, " "))

			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.AppendHeader(table.Row{"plugin", "option", "value"})
			for _, p := range plugins {
				for _, arg := range p.Describe().Args {
					tw.AppendRow(table.Row{p.ID(), arg.Name, arg.Value})
				}
			}
			tw.Render()
			fmt.Fprintf(out, "pass-through: %s\n", strings.Join(res.PassThrough, " "))
			return nil
		},
	}
}
