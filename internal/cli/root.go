// Package cli implements the plugargs command tree.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gaspardpetit/plugargs/internal/config"
	"github.com/gaspardpetit/plugargs/internal/docgen"
	"github.com/gaspardpetit/plugargs/internal/logx"
	"github.com/gaspardpetit/plugargs/internal/metrics"
	"github.com/gaspardpetit/plugargs/internal/plugin"
	"github.com/gaspardpetit/plugargs/sdk/base/i18n"
)

// App holds what the commands need besides the configuration.
type App struct {
	Fs      afero.Fs
	Catalog *plugin.Catalog
	Version string
	SHA     string
	Date    string

	cfg      config.Config
	locale   string
	registry *prometheus.Registry
}

// NewApp returns an App working on the OS filesystem with the built-in
// plugins.
func NewApp(version, sha, date string) *App {
	return &App{
		Fs:      afero.NewOsFs(),
		Catalog: plugin.Builtin(),
		Version: version,
		SHA:     sha,
		Date:    date,
	}
}

// Command builds the root command.
func (a *App) Command() *cobra.Command {
	a.registry = prometheus.NewRegistry()
	metrics.Register(a.registry)
	metrics.SetBuildInfo(a.Version, a.SHA, a.Date)

	root := &cobra.Command{
		Use:           "plugargs",
		Short:         "Inspect and document schema compiler plugin options",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.Resolve(cmd.Flags()); err != nil {
				return err
			}
			logx.ConfigureOutput(a.cfg.LogLevel, cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.cfg.MetricsFile == "" {
				return nil
			}
			if err := metrics.WriteTextfile(a.cfg.MetricsFile, a.registry); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
			return nil
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	a.cfg.BindFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "language of messages and usage text; empty is the root locale")

	root.AddCommand(a.usageCmd(), a.docsCmd(), a.parseCmd(), a.versionCmd())
	return root
}

func (a *App) tag() (language.Tag, error) {
	tags, err := i18n.ParseTags([]string{a.locale})
	if err != nil {
		return language.Und, err
	}
	return tags[0], nil
}

func (a *App) usageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage [plugin...]",
		Short: "Print the plain-text usage of plugins",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := a.tag()
			if err != nil {
				return err
			}
			ids := args
			if len(ids) == 0 {
				ids = a.cfg.Plugins
			}
			plugins, err := a.Catalog.Plugins(ids...)
			if err != nil {
				return err
			}
			for _, p := range plugins {
				p.SetLocale(tag)
				fmt.Fprint(cmd.OutOrStdout(), p.Usage())
			}
			return nil
		},
	}
}

func (a *App) docsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Generate the markdown usage files and READMEs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptors, err := a.Catalog.Descriptors(a.cfg.Plugins...)
			if err != nil {
				return err
			}
			tags, err := i18n.ParseTags(a.cfg.Locales)
			if err != nil {
				return err
			}
			g := &docgen.Generator{
				Fs:      a.Fs,
				SiteDir: a.cfg.SiteDir,
				Readme:  a.cfg.Readme,
				CopyDir: filepath.Dir(a.cfg.SiteDir),
				Locales: tags,
				Plugins: descriptors,
			}
			if err := g.Run(); err != nil {
				return fmt.Errorf("docs: %w", err)
			}
			return nil
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "plugargs version=%s sha=%s date=%s\n", a.Version, a.SHA, a.Date)
		},
	}
}
