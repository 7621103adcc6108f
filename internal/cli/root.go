// Package cli implements the specform command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-specform/internal/config"
	"github.com/goliatone/go-specform/pkg/forms"
	"github.com/goliatone/go-specform/pkg/renderers/tui"
	"github.com/goliatone/go-specform/pkg/spec"
)

// app carries the state built once the configuration is loaded.
type app struct {
	configPath string
	output     string

	cfg     *config.Config
	logger  *zap.Logger
	manager *forms.Manager

	// driver replaces the terminal prompts of the edit command.
	driver tui.PromptDriver
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "specform",
		Short: "Parse, format and convert spec forms",
		Long: `specform converts between tagged form text, server protocol
dictionaries and structured records.

Examples:
  specform fields client
  specform parse client client.txt
  specform convert --command client response.txt
  specform render job job.txt --renderer html
  specform serve --addr :8383`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default ./specform.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Record output format: json or yaml")

	rootCmd.AddCommand(newTypesCommand(a))
	rootCmd.AddCommand(newFieldsCommand(a))
	rootCmd.AddCommand(newDefinitionCommand(a))
	rootCmd.AddCommand(newParseCommand(a))
	rootCmd.AddCommand(newValidateCommand(a))
	rootCmd.AddCommand(newFormatCommand(a))
	rootCmd.AddCommand(newConvertCommand(a))
	rootCmd.AddCommand(newSchemaCommand(a))
	rootCmd.AddCommand(newRenderCommand(a))
	rootCmd.AddCommand(newEditCommand(a))
	rootCmd.AddCommand(newServeCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}

	registry := spec.NewRegistry()
	if cfg.SpecDir != "" {
		if err := spec.LoadFS(os.DirFS(cfg.SpecDir), registry); err != nil {
			return fmt.Errorf("load %s: %w", cfg.SpecDir, err)
		}
		warnOverrides(cmd, registry)
	}

	a.cfg = cfg
	a.logger = logger
	a.manager = forms.New(
		forms.WithRegistry(registry),
		forms.WithLogger(logger),
		forms.WithCollisionSuffix(cfg.CollisionSuffix),
	)
	return nil
}

// warnOverrides reports built-in types whose definition the spec directory
// replaced.
func warnOverrides(cmd *cobra.Command, registry *spec.Registry) {
	warn := color.New(color.FgYellow)
	for _, typ := range registry.Types() {
		builtin, ok := spec.Builtin(typ)
		if !ok {
			continue
		}
		if current, _ := registry.Lookup(typ); current != builtin {
			warn.Fprintf(cmd.ErrOrStderr(), "warning: %s overrides the built-in definition\n", typ)
		}
	}
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
