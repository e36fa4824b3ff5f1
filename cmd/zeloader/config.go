package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxnlabs/level-zero-loader/fixtures"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func configCommands() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the loader configuration",
		Subcommands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Write a configuration file from the default template",
				ArgsUsage: "PATH",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing file"},
				},
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					if path == "" {
						path = "config.yaml"
					}
					if _, err := os.Stat(path); err == nil && !c.Bool("force") {
						return fmt.Errorf("%s already exists, use --force to overwrite", path)
					} else if err != nil && !errors.Is(err, os.ErrNotExist) {
						return err
					}
					if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
						return err
					}
					if err := os.WriteFile(path, fixtures.ConfigTemplate, 0o644); err != nil {
						return err
					}
					loggerFrom(c).Info("Configuration written", zap.String("path", path))
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Action: func(c *cli.Context) error {
					enc := yaml.NewEncoder(c.App.Writer)
					enc.SetIndent(2)
					if err := enc.Encode(configFrom(c)); err != nil {
						return err
					}
					return enc.Close()
				},
			},
		},
	}
}
