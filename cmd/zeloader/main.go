package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fxnlabs/level-zero-loader/internal/app"
	"github.com/fxnlabs/level-zero-loader/internal/config"
	"github.com/fxnlabs/level-zero-loader/internal/driver"
	"github.com/fxnlabs/level-zero-loader/internal/loader"
	"github.com/fxnlabs/level-zero-loader/internal/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	var (
		configPath string
		verbosity  string
	)
	return &cli.App{
		Name:   "zeloader",
		Usage:  "Inspect and exercise the Level Zero dispatch loader",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the loader configuration file",
				EnvVars:     []string{"ZELOADER_CONFIG"},
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "verbosity",
				Usage:       "Override the configured log level",
				Destination: &verbosity,
			},
		},
		Before: func(c *cli.Context) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			if verbosity != "" {
				cfg.Logger.Verbosity = verbosity
			}
			zapLogger, err := logger.New(cfg.Logger.Verbosity, logger.WithEncoding(cfg.Logger.Encoding))
			if err != nil {
				return err
			}
			c.App.Metadata = map[string]any{
				"config": cfg,
				"logger": zapLogger.Named("cli"),
			}
			return nil
		},
		Commands: []*cli.Command{
			opsCommand(),
			driversCommand(),
			checkCommand(),
			demoCommand(),
			configCommands(),
		},
	}
}

func configFrom(c *cli.Context) *config.Config {
	return c.App.Metadata["config"].(*config.Config)
}

func loggerFrom(c *cli.Context) *zap.Logger {
	return c.App.Metadata["logger"].(*zap.Logger)
}

// withLoader starts the configured drivers for the duration of fn.
func withLoader(c *cli.Context, fn func(*loader.Loader, *driver.Manager) error) error {
	var (
		l   *loader.Loader
		mgr *driver.Manager
	)
	fxApp := fx.New(
		app.Module(configFrom(c)),
		fx.NopLogger,
		fx.Populate(&l, &mgr),
	)
	if err := fxApp.Start(c.Context); err != nil {
		return err
	}
	defer func() {
		if err := fxApp.Stop(context.Background()); err != nil {
			loggerFrom(c).Warn("Failed to stop loader", zap.Error(err))
		}
	}()
	return fn(l, mgr)
}
