package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cmskit/pkg/config"
	"github.com/dmitrymomot/cmskit/pkg/logger"
)

// appConfig is read from the environment and an optional .env file.
type appConfig struct {
	Env       string `env:"CMSKIT_ENV" envDefault:"development"`
	LogLevel  string `env:"CMSKIT_LOG_LEVEL"`
	LogFormat string `env:"CMSKIT_LOG_FORMAT"`
}

type app struct {
	cfg    appConfig
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logger.Discard()}
	var envFile string

	root := &cobra.Command{
		Use:           "cmskit",
		Short:         "Content project helpers",
		Long:          "cmskit inspects project config documents and checks paths and schema versions. It can also push queue jobs and send mail.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envFile != "" {
				if err := config.LoadEnv(envFile); err != nil {
					return err
				}
			}
			if err := config.Load(&a.cfg); err != nil {
				return err
			}
			return a.initLogger(cmd)
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this file")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "log format (text, json)")

	root.AddCommand(
		newVersionCmd(),
		newConfigMapCmd(a),
		newDepsCmd(),
		newContainedCmd(),
		newSchemaCmd(),
		newPushCmd(a),
		newMailCmd(a),
	)
	return root
}

func (a *app) initLogger(cmd *cobra.Command) error {
	levelName := a.cfg.LogLevel
	if flag, _ := cmd.Flags().GetString("log-level"); flag != "" {
		levelName = flag
	}
	format := a.cfg.LogFormat
	if flag, _ := cmd.Flags().GetString("log-format"); flag != "" {
		format = flag
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, "cmskit"),
		logger.WithOutput(cmd.ErrOrStderr()),
	}
	if levelName != "" {
		level, err := logger.ParseLevel(levelName)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	switch f := logger.Format(format); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	a.logger = logger.New(opts...)
	return nil
}
