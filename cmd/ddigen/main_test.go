package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogPath = "../../internal/ddi/catalog.yaml"

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog(catalogPath)
	require.NoError(t, err)
	c.Module = "github.com/fxnlabs/level-zero-loader"
	return c
}

// The generated ddi package must describe exactly what the catalog says.
func TestCatalog_MatchesGeneratedOps(t *testing.T) {
	c := loadTestCatalog(t)

	var want []ddi.Op
	for i, op := range c.AllOps() {
		cat, err := ddi.ParseCategory(op.Category)
		require.NoError(t, err)
		since, err := ze.ParseAPIVersion(op.Since)
		require.NoError(t, err)
		d := ddi.Op{
			ID:            ddi.OpID(i + 1),
			Symbol:        op.Symbol,
			Category:      cat,
			Field:         op.Field,
			Since:         since,
			ReturnsHandle: op.Returns != "",
			Loader:        op.Loader,
		}
		if op.Handle != nil {
			d.Handle = op.Handle.Name
			d.HandleArray = op.Handle.IsArray
		}
		want = append(want, d)
	}

	if diff := cmp.Diff(want, ddi.Ops()); diff != "" {
		t.Errorf("generated ops differ from catalog (-catalog +generated):\n%s", diff)
	}
	assert.Len(t, c.Categories, len(ddi.Categories()))
}

func TestRender(t *testing.T) {
	c := loadTestCatalog(t)
	files, err := Render(c)
	require.NoError(t, err)
	require.Len(t, files, len(outputs))

	fset := token.NewFileSet()
	for path, src := range files {
		t.Run(path, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(string(src), "// Code generated by ddigen from catalog.yaml. DO NOT EDIT.\n\npackage "))
			_, err := parser.ParseFile(fset, path, src, parser.AllErrors)
			assert.NoError(t, err)
		})
	}

	intercept := string(files["internal/loader/intercept_gen.go"])
	assert.Contains(t, intercept, "func (l *Loader) ContextCreate(hDriver ze.DriverHandle,")
	assert.Contains(t, intercept, "t, res := resolveFirst(l, phModules, ddi.OpModuleDynamicLink)")
	assert.NotContains(t, intercept, "func (l *Loader) Init(")

	ops := string(files["internal/ddi/ops_gen.go"])
	assert.Contains(t, ops, `{ID: OpInit, Symbol: "zeInit", Category: CategoryGlobal, Field: "Init", Since: ze.APIVersion1_0, Loader: true},`)
}

func TestLoadCatalog_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "duplicate symbol",
			yaml: `
handles: [ze.DriverHandle]
categories:
  - name: Driver
    ops:
      - {field: Get, symbol: zeDriverGet, since: "1.0", params: [hDriver ze.DriverHandle]}
      - {field: Other, symbol: zeDriverGet, since: "1.0", params: [hDriver ze.DriverHandle]}
`,
			wantErr: "duplicate symbol",
		},
		{
			name: "no dispatch handle",
			yaml: `
handles: [ze.DriverHandle]
categories:
  - name: Mem
    ops:
      - {field: Free, symbol: zeMemFree, since: "1.0", params: [ptr unsafe.Pointer]}
`,
			wantErr: "no handle parameter",
		},
		{
			name: "bad version",
			yaml: `
handles: [ze.DriverHandle]
categories:
  - name: Driver
    ops:
      - {field: Get, symbol: zeDriverGet, since: "one", params: [hDriver ze.DriverHandle]}
`,
			wantErr: "invalid since",
		},
		{
			name:    "not yaml",
			yaml:    "categories: [",
			wantErr: "parse",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o600))
			_, err := LoadCatalog(path)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
