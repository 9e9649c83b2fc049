// Package cli implements the formbuilder command line: schema validation,
// previews, terminal filling and scaffolding.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

// EnvPrefix namespaces the environment variables read through viper.
const EnvPrefix = "FORMBUILDER"

var version = "dev"

type app struct {
	v       *viper.Viper
	cfgFile string
	logger  zerolog.Logger
	// prompts replaces the survey driver of the fill command when set.
	prompts tui.PromptDriver
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd assembles the command tree. Each call gets its own viper
// instance so commands can be executed repeatedly in tests.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{v: viper.New(), logger: zerolog.Nop()})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "formbuilder",
		Short: "Build, validate and preview form schemas",
		Long: `formbuilder works with form schema documents (JSON or YAML).

It validates and repairs documents, previews them as HTML or as a render plan,
fills them interactively in the terminal and scaffolds new ones.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			a.initLogging(cmd)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is .formbuilder/config.yaml)")
	root.PersistentFlags().String("log-level", "disabled", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		a.newValidateCmd(),
		a.newPreviewCmd(),
		a.newFillCmd(),
		a.newSchemaCmd(),
		a.newNewCmd(),
	)
	return root
}

// initConfig loads .env, then the config file and FORMBUILDER_* variables.
// A missing default config file is not an error; a missing --config file is.
func (a *app) initConfig() error {
	_ = godotenv.Load()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".formbuilder")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".formbuilder"))
		}
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix(EnvPrefix)
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && a.cfgFile == "" {
			return nil
		}
		return fmt.Errorf("cli: read config: %w", err)
	}
	return nil
}

func (a *app) initLogging(cmd *cobra.Command) {
	level := zerolog.Disabled
	switch a.v.GetString("log-level") {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()
	if a.v.ConfigFileUsed() != "" {
		a.logger.Debug().Str("file", a.v.ConfigFileUsed()).Msg("using config file")
	}
}

// bindFlags binds the named local flags of cmd so that config keys and
// FORMBUILDER_* variables act as their defaults. Binding happens per
// invocation because several commands share key names.
func (a *app) bindFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if err := a.v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("cli: bind --%s: %w", name, err)
		}
	}
	return nil
}
