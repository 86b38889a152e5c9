// Package main generates typed query builders from client/endpoints.yaml.
//
//go:generate go run .
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/DrewBradfordXYZ/tushare-go/core"
)

// BuilderSpec represents a builder to be generated
type BuilderSpec struct {
	APIName     string
	BuilderName string
	MethodName  string
	Description string
	Doc         string
	Params      []ParamSpec
	Paged       bool
}

// ParamSpec is one parameter setter.
type ParamSpec struct {
	Name   string // wire name (ts_code)
	GoName string // setter name (TsCode)
	Field  string // struct field (qpTsCode)
	IsDate bool
}

func main() {
	schema, err := readSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading schema: %v\n", err)
		os.Exit(1)
	}

	builders, err := extractBuilders(schema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in schema: %v\n", err)
		os.Exit(1)
	}

	src, err := generateCode(builders)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating code: %v\n", err)
		os.Exit(1)
	}

	outputPath := findOutputPath()
	if err := os.WriteFile(outputPath, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s with %d builders\n", outputPath, len(builders))
}

func readSchema() (*core.Schema, error) {
	var data []byte
	var err error
	for _, p := range schemaPaths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return core.ParseSchema(data)
}

// extractBuilders keeps schema order so regenerating after an edit gives a
// minimal diff.
func extractBuilders(schema *core.Schema) ([]BuilderSpec, error) {
	builders := make([]BuilderSpec, 0, len(schema.Endpoints))
	for _, ep := range schema.Endpoints {
		name := toPascalCase(ep.Name)
		b := BuilderSpec{
			APIName:     ep.Name,
			BuilderName: name + "Builder",
			MethodName:  name,
			Description: ep.Description,
			Doc:         ep.Doc,
			Paged:       ep.Paged,
		}
		if ep.Paged {
			for _, p := range pagingParams {
				if !ep.HasParam(p) {
					return nil, fmt.Errorf("paged endpoint %s does not declare %s", ep.Name, p)
				}
			}
		}
		for _, p := range ep.Params {
			b.Params = append(b.Params, ParamSpec{
				Name:   p,
				GoName: toPascalCase(p),
				Field:  fieldName(p),
				IsDate: ep.IsDate(p),
			})
		}
		builders = append(builders, b)
	}
	return builders, nil
}

func hasDates(builders []BuilderSpec) bool {
	return slices.ContainsFunc(builders, func(b BuilderSpec) bool {
		return slices.ContainsFunc(b.Params, func(p ParamSpec) bool { return p.IsDate })
	})
}

func hasPaged(builders []BuilderSpec) bool {
	return slices.ContainsFunc(builders, func(b BuilderSpec) bool { return b.Paged })
}

func generateCode(builders []BuilderSpec) ([]byte, error) {
	funcMap := template.FuncMap{
		"hasDates": hasDates,
		"hasPaged": hasPaged,
	}

	tmpl := template.Must(template.New("builders").Funcs(funcMap).Parse(buildersTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Builders []BuilderSpec
	}{
		Builders: builders,
	}); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func findOutputPath() string {
	for _, dir := range outputPaths {
		if _, err := os.Stat(dir); err == nil {
			return filepath.Join(dir, outputFile)
		}
	}
	return filepath.Join(outputPaths[len(outputPaths)-1], outputFile)
}

const buildersTemplate = `// Code generated by cmd/generate-builders. DO NOT EDIT.

package client

import (
	"context"
{{- if hasPaged .Builders}}
	"iter"
{{- end}}
	"slices"

	"github.com/go-gota/gota/dataframe"
{{- if hasDates .Builders}}
	"github.com/oapi-codegen/runtime/types"

	"github.com/DrewBradfordXYZ/tushare-go/core"
{{- end}}
)

// --- Auto-generated builder types ---
// One builder per endpoint in endpoints.yaml. Builders are values: each
// setter returns an updated copy, and only parameters that were set are
// sent. Setter names follow the tushare parameter names.
{{range $b := .Builders}}
// {{$b.BuilderName}} builds a {{$b.APIName}} query.
{{- if $b.Description}}
// {{$b.Description}}
{{- end}}
{{- if $b.Doc}}
//
// See {{$b.Doc}}
{{- end}}
type {{$b.BuilderName}} struct {
	client *Client
{{- range $b.Params}}
	{{.Field}} *string
{{- end}}
	fields []string
}

// {{$b.MethodName}} starts building a {{$b.APIName}} query.
func (c *Client) {{$b.MethodName}}() {{$b.BuilderName}} {
	return {{$b.BuilderName}}{client: c}
}
{{range $p := $b.Params}}
// {{$p.GoName}} sets the {{$p.Name}} parameter.
func (b {{$b.BuilderName}}) {{$p.GoName}}(value string) {{$b.BuilderName}} {
	b.{{$p.Field}} = &value
	return b
}
{{- if $p.IsDate}}

// {{$p.GoName}}On sets the {{$p.Name}} parameter from a date.
func (b {{$b.BuilderName}}) {{$p.GoName}}On(value types.Date) {{$b.BuilderName}} {
	return b.{{$p.GoName}}(core.FormatTypesDate(value))
}
{{- end}}
{{end}}
// Fields restricts the returned columns.
func (b {{$b.BuilderName}}) Fields(names ...string) {{$b.BuilderName}} {
	b.fields = slices.Clone(names)
	return b
}

// QueryBuilder converts to an untyped QueryBuilder holding only the
// parameters that were set.
func (b {{$b.BuilderName}}) QueryBuilder() QueryBuilder {
	params := make(map[string]string)
{{- range $b.Params}}
	if b.{{.Field}} != nil {
		params["{{.Name}}"] = *b.{{.Field}}
	}
{{- end}}
	return b.client.QueryBuilder("{{$b.APIName}}").Params(params).Fields(b.fields...)
}

// Query executes the {{$b.APIName}} query and returns the parsed table.
func (b {{$b.BuilderName}}) Query(ctx context.Context) (dataframe.DataFrame, error) {
	return b.QueryBuilder().Query(ctx)
}
{{- if $b.Paged}}

// Pages iterates over {{$b.APIName}} results page by page.
func (b {{$b.BuilderName}}) Pages(ctx context.Context, opts PaginationOptions) iter.Seq2[dataframe.DataFrame, error] {
	return b.QueryBuilder().Pages(ctx, opts)
}

// QueryAll fetches every page and returns one combined table.
func (b {{$b.BuilderName}}) QueryAll(ctx context.Context, pageSize int) (dataframe.DataFrame, error) {
	return b.QueryBuilder().QueryAll(ctx, pageSize)
}
{{- end}}
{{end}}`
