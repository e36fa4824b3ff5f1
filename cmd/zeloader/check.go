package main

import (
	"fmt"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/driver"
	"github.com/fxnlabs/level-zero-loader/internal/loader"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report the result the loader would return for an entry point, without calling it",
		ArgsUsage: "SYMBOL...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "driver", Value: "cpu", Usage: "Driver whose record is checked"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one entry point symbol is required", 2)
			}
			var ops []ddi.Op
			for _, symbol := range c.Args().Slice() {
				op, ok := ddi.LookupOp(symbol)
				if !ok {
					return fmt.Errorf("unknown entry point %q", symbol)
				}
				ops = append(ops, op)
			}

			name := c.String("driver")
			return withLoader(c, func(l *loader.Loader, mgr *driver.Manager) error {
				rec, ok := mgr.Record(name)
				if !ok {
					return fmt.Errorf("%w: %q", driver.ErrUnknownDriver, name)
				}
				for _, op := range ops {
					res := l.Check(rec, op.ID)
					loggerFrom(c).Debug("Checked entry point",
						zap.String("op", op.Symbol),
						zap.Stringer("record", rec),
						zap.Stringer("result", res))
					fmt.Fprintf(c.App.Writer, "%s\t%s\n", op.Symbol, res)
				}
				return nil
			})
		},
	}
}
