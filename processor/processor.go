/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"text/template"

	"gopkg.in/yaml.v3"
)

// ParseSchema unmarshals and validates a YAML accessor schema.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadSchema reads and parses a YAML accessor schema from a file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	return ParseSchema(data)
}

// Generate renders the Go source for a schema and gofmt-formats it.
func Generate(s *Schema) ([]byte, error) {
	data := buildFileData(s)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting code: %w", err)
	}
	return formatted, nil
}

// fileData is the template input for one generated file.
type fileData struct {
	Package      string
	NeedsContext bool
	Hosts        []hostData
}

type hostData struct {
	Name       string
	Generate   string // Accessor method used to generate: Readers, Writers, or Accessors
	HasReaders bool
	HasWriters bool
	Entries    []entryData
}

type entryData struct {
	Method string
	Name   string
	Key    string
}

func buildFileData(s *Schema) fileData {
	data := fileData{Package: s.Package}
	for _, h := range s.Hosts {
		hd := hostData{
			Name:       h.Name,
			HasReaders: h.mode() != ModeWriters,
			HasWriters: h.mode() != ModeReaders,
		}
		switch h.mode() {
		case ModeReaders:
			hd.Generate = "GenerateReaders"
		case ModeWriters:
			hd.Generate = "GenerateWriters"
		default:
			hd.Generate = "GenerateAccessors"
		}

		for _, key := range h.Keys {
			hd.Entries = append(hd.Entries, entryData{Method: exportName(key), Name: key, Key: key})
		}
		aliasNames := make([]string, 0, len(h.Aliases))
		for name := range h.Aliases {
			aliasNames = append(aliasNames, name)
		}
		sort.Strings(aliasNames)
		for _, name := range aliasNames {
			hd.Entries = append(hd.Entries, entryData{Method: exportName(name), Name: name, Key: h.Aliases[name]})
		}

		if len(hd.Entries) > 0 {
			data.NeedsContext = true
		}
		data.Hosts = append(data.Hosts, hd)
	}
	return data
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by kvaccessorgen. DO NOT EDIT.

package {{.Package}}

import (
{{- if .NeedsContext}}
	"context"
{{- end}}
	"fmt"

	"github.com/suparena/kvaccessor"
	"github.com/suparena/kvaccessor/delegate"
	"github.com/suparena/kvaccessor/registry"
)
{{range .Hosts}}
// {{.Name}} exposes the generated accessors of its delegate.
type {{.Name}} struct {
	acc *kvaccessor.Accessor[string, any]
}

// New{{.Name}} binds the generated accessors to index.
func New{{.Name}}(index delegate.Index[string, any]) (*{{.Name}}, error) {
	acc := kvaccessor.New[string, any](index)
	spec := kvaccessor.NewSpec[string]()
{{- range .Entries}}
	spec.Alias({{printf "%q" .Name}}, {{printf "%q" .Key}})
{{- end}}
	if _, err := acc.{{.Generate}}(spec); err != nil {
		return nil, err
	}
	return &{{.Name}}{acc: acc}, nil
}

// Table returns the accessor table of {{.Name}}.
func (h *{{.Name}}) Table() kvaccessor.Table[string] {
	return h.acc.ReaderTable().Union(h.acc.WriterTable())
}
{{$host := .}}
{{- range .Entries}}
{{- if $host.HasReaders}}
// {{.Method}} reads the delegate entry stored under {{printf "%q" .Key}}.
func (h *{{$host.Name}}) {{.Method}}(ctx context.Context) (any, error) {
	return h.acc.Get(ctx, {{printf "%q" .Name}})
}
{{end}}
{{- if $host.HasWriters}}
// Set{{.Method}} writes the delegate entry stored under {{printf "%q" .Key}}.
func (h *{{$host.Name}}) Set{{.Method}}(ctx context.Context, value any) error {
	return h.acc.Set(ctx, {{printf "%q" .Name}}, value)
}
{{end}}
{{- end}}
func init() {
	registry.RegisterTable[{{.Name}}](kvaccessor.Table[string]{
{{- range .Entries}}
		{{printf "%q" .Name}}: {{printf "%q" .Key}},
{{- end}}
	})
	registry.RegisterBinder({{printf "%q" .Name}}, func(index any) (interface{}, error) {
		idx, ok := index.(delegate.Index[string, any])
		if !ok {
			return nil, fmt.Errorf("binder for {{.Name}}: unsupported delegate %T", index)
		}
		return New{{.Name}}(idx)
	})
}
{{end -}}
`))

// Run loads a schema, generates its accessor file, and writes it to outPath.
func Run(schemaPath, outPath string) error {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return err
	}

	src, err := Generate(schema)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	log.Printf("wrote %s (%d host types)", outPath, len(schema.Hosts))
	return nil
}
