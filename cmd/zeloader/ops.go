package main

import (
	"fmt"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func opsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ops",
		Usage: "List catalogued entry points",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "Only list entry points of this category, e.g. CommandList"},
			&cli.StringFlag{Name: "since", Usage: "Only list entry points introduced at or after this version"},
			&cli.BoolFlag{Name: "loader", Usage: "Only list loader-level entry points"},
		},
		Action: func(c *cli.Context) error {
			var filters []func(ddi.Op) bool
			if name := c.String("category"); name != "" {
				cat, err := ddi.ParseCategory(name)
				if err != nil {
					return err
				}
				filters = append(filters, func(op ddi.Op) bool { return op.Category == cat })
			}
			if s := c.String("since"); s != "" {
				since, err := ze.ParseAPIVersion(s)
				if err != nil {
					return err
				}
				filters = append(filters, func(op ddi.Op) bool { return op.Since >= since })
			}
			if c.Bool("loader") {
				filters = append(filters, func(op ddi.Op) bool { return op.Loader })
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(c.App.Writer)
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"Symbol", "Category", "Since", "Handle"})
			n := 0
		next:
			for _, op := range ddi.Ops() {
				for _, keep := range filters {
					if !keep(op) {
						continue next
					}
				}
				tw.AppendRow(table.Row{op.Symbol, op.Category, op.Since, handleColumn(op)})
				n++
			}
			tw.AppendFooter(table.Row{"", "", "Total", n})
			tw.Render()
			return nil
		},
	}
}

func handleColumn(op ddi.Op) string {
	switch {
	case op.Loader:
		return "(all drivers)"
	case op.HandleArray:
		return fmt.Sprintf("%s[0]", op.Handle)
	default:
		return op.Handle
	}
}
