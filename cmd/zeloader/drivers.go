package main

import (
	"github.com/fxnlabs/level-zero-loader/internal/driver"
	"github.com/fxnlabs/level-zero-loader/internal/loader"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func driversCommand() *cli.Command {
	return &cli.Command{
		Name:  "drivers",
		Usage: "Load the configured drivers and show their dispatch records",
		Action: func(c *cli.Context) error {
			return withLoader(c, func(_ *loader.Loader, mgr *driver.Manager) error {
				tw := table.NewWriter()
				tw.SetOutputMirror(c.App.Writer)
				tw.SetStyle(table.StyleLight)
				tw.AppendHeader(table.Row{"Record", "Driver", "Version", "Valid", "Entries", "Handles"})
				for _, rec := range mgr.Records() {
					tw.AppendRow(table.Row{rec.ID(), rec.Name(), rec.Version(), rec.Valid(), rec.Tables().Implemented(), rec.Handles()})
				}
				tw.Render()

				available := table.NewWriter()
				available.SetOutputMirror(c.App.Writer)
				available.SetStyle(table.StyleLight)
				available.AppendHeader(table.Row{"Registered drivers"})
				for _, name := range driver.Names() {
					available.AppendRow(table.Row{name})
				}
				available.Render()
				return nil
			})
		},
	}
}
