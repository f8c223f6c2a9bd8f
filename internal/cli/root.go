package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rest-explorer/internal/shared"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "REST_EXPLORER"

type RootConfig struct {
	ConfigFile   string
	LogLevel     string
	CatalogPath  string
	RequireToken bool
}

func Execute() {
	os.Exit(execute(newRootCommand(), os.Stderr))
}

// execute runs root and reports a failure as one line on stderr.
func execute(root *cobra.Command, stderr io.Writer) int {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error: "+shared.ErrorMessage(err))
		return exitCodeForError(err)
	}
	return 0
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "rest-explorer",
		Short:   "Browse the REST request catalog",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.CatalogPath, "catalog", "", "Catalog document path (default: bundled catalog)")
	cmd.PersistentFlags().BoolVar(&cfg.RequireToken, "require-token", false, "Fail when no access token is configured")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("catalog_path", cmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("require_access_token", cmd.PersistentFlags().Lookup("require-token"))

	cmd.AddCommand(newGroupsCommand())
	cmd.AddCommand(newGroupCommand())
	cmd.AddCommand(newItemCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newExportCommand())
	cmd.AddCommand(newFormatCommand())
	return cmd
}

func initConfig(configFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to load .env file").
			WithCause(err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("rest-explorer")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/rest-explorer")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setupLogging writes logs to w so command output on stdout stays parseable.
// Contexts without a logger fall back to the global one.
func setupLogging(w io.Writer, level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	zerolog.DefaultContextLogger = &log.Logger
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 4
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
