// Command ddigen renders the dispatch tables, loader intercepts and trace
// declarations from the entry point catalog.
package main

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// outputs maps each template to the file it renders, relative to the module
// root.
var outputs = []struct {
	template string
	path     string
}{
	{"tables.go.tmpl", "internal/ddi/tables_gen.go"},
	{"ops.go.tmpl", "internal/ddi/ops_gen.go"},
	{"intercept.go.tmpl", "internal/loader/intercept_gen.go"},
	{"callbacks.go.tmpl", "internal/trace/callbacks_gen.go"},
	{"layer.go.tmpl", "internal/trace/layer_gen.go"},
}

func main() {
	app := &cli.App{
		Name:  "ddigen",
		Usage: "Generate dispatch code from catalog.yaml",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog", Value: "internal/ddi/catalog.yaml", Usage: "Path to the catalog"},
			&cli.StringFlag{Name: "root", Value: ".", Usage: "Module root the outputs are written under"},
			&cli.StringFlag{Name: "module", Value: "github.com/fxnlabs/level-zero-loader", Usage: "Module import path"},
			&cli.BoolFlag{Name: "check", Usage: "Fail if any generated file is out of date instead of writing"},
		},
		Action: func(c *cli.Context) error {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			catalog, err := LoadCatalog(c.String("catalog"))
			if err != nil {
				return err
			}
			catalog.Module = c.String("module")
			files, err := Render(catalog)
			if err != nil {
				return err
			}
			root := c.String("root")
			for path, src := range files {
				full := filepath.Join(root, path)
				if c.Bool("check") {
					current, err := os.ReadFile(full)
					if err != nil {
						return err
					}
					if !bytes.Equal(current, src) {
						return fmt.Errorf("%s is out of date", path)
					}
					continue
				}
				if err := os.WriteFile(full, src, 0o644); err != nil {
					return err
				}
				log.Info("Generated file", zap.String("path", path), zap.Int("bytes", len(src)))
			}
			log.Info("Catalog rendered", zap.Int("categories", len(catalog.Categories)), zap.Int("ops", len(catalog.AllOps())))
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ddigen: %v\n", err)
		os.Exit(1)
	}
}

// Render executes every template against c and returns gofmt'ed sources
// keyed by output path.
func Render(c *Catalog) (map[string][]byte, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	files := make(map[string][]byte, len(outputs))
	for _, out := range outputs {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, out.template, c); err != nil {
			return nil, fmt.Errorf("render %s: %w", out.path, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", out.path, err)
		}
		files[out.path] = src
	}
	return files, nil
}
