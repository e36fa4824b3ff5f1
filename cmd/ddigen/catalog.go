package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Catalog is the parsed catalog.yaml.
type Catalog struct {
	Version    string      `yaml:"version"`
	Handles    []string    `yaml:"handles"`
	Categories []*Category `yaml:"categories"`

	Module string `yaml:"-"`
}

type Category struct {
	Name string `yaml:"name"`
	Ops  []*Op  `yaml:"ops"`
}

type Op struct {
	Field   string   `yaml:"field"`
	Symbol  string   `yaml:"symbol"`
	Since   string   `yaml:"since"`
	Loader  bool     `yaml:"loader"`
	Returns string   `yaml:"returns"`
	Specs   []string `yaml:"params"`

	Category string   `yaml:"-"`
	Params   []*Param `yaml:"-"`
	// Handle is the parameter the dispatch record is resolved from.
	Handle *Param `yaml:"-"`
}

type Param struct {
	Name     string
	Type     string
	IsHandle bool
	IsArray  bool
}

// Field is the name of the parameter's slot in the trace params record.
func (p *Param) Field() string { return "P" + p.Name }

// Func is the symbol without its "ze" prefix.
func (o *Op) Func() string { return strings.TrimPrefix(o.Symbol, "ze") }
func (o *Op) Pfn() string  { return "Pfn" + o.Func() }
func (o *Op) OpID() string { return "Op" + o.Func() }

func (o *Op) Ret() string {
	if o.Returns != "" {
		return o.Returns
	}
	return "ze.Result"
}

func (o *Op) Sig() string {
	parts := make([]string, len(o.Params))
	for i, p := range o.Params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

func (o *Op) Args() string {
	names := make([]string, len(o.Params))
	for i, p := range o.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// SinceConst renders the version as its ze constant, e.g. ze.APIVersion1_3.
func (o *Op) SinceConst() string {
	return "ze.APIVersion" + strings.Replace(o.Since, ".", "_", 1)
}

// AllOps returns the operations of every category in catalog order.
func (c *Catalog) AllOps() []*Op {
	var out []*Op
	for _, cat := range c.Categories {
		out = append(out, cat.Ops...)
	}
	return out
}

func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.resolve(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return &c, nil
}

// resolve derives parameters and designated handles and reports every
// inconsistency found.
func (c *Catalog) resolve() error {
	handles := make(map[string]bool, len(c.Handles))
	for _, h := range c.Handles {
		handles[h] = true
	}
	var errs error
	symbols := make(map[string]bool)
	for _, cat := range c.Categories {
		fields := make(map[string]bool)
		for _, op := range cat.Ops {
			op.Category = cat.Name
			if symbols[op.Symbol] {
				errs = multierr.Append(errs, fmt.Errorf("%s: duplicate symbol", op.Symbol))
			}
			symbols[op.Symbol] = true
			if fields[op.Field] {
				errs = multierr.Append(errs, fmt.Errorf("%s: duplicate field %s.%s", op.Symbol, cat.Name, op.Field))
			}
			fields[op.Field] = true
			if major, minor, ok := strings.Cut(op.Since, "."); !ok || major == "" || minor == "" {
				errs = multierr.Append(errs, fmt.Errorf("%s: invalid since %q", op.Symbol, op.Since))
			}
			for _, spec := range op.Specs {
				name, typ, ok := strings.Cut(spec, " ")
				if !ok {
					errs = multierr.Append(errs, fmt.Errorf("%s: invalid parameter %q", op.Symbol, spec))
					continue
				}
				elem, isSlice := strings.CutPrefix(typ, "[]")
				op.Params = append(op.Params, &Param{
					Name:     name,
					Type:     typ,
					IsHandle: handles[typ],
					IsArray:  isSlice && handles[elem],
				})
			}
			if op.Loader {
				continue
			}
			for _, p := range op.Params {
				if p.IsHandle || p.IsArray {
					op.Handle = p
					break
				}
			}
			if op.Handle == nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: no handle parameter to dispatch on", op.Symbol))
			}
		}
	}
	return errs
}
