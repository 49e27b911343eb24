// Package wootgen generates typed Go wrappers for the resources of a
// registry.
//
// Every resource becomes a struct and every action a method whose
// parameters are the path placeholders of the action URL, followed by the
// query and body structs when the action declares them:
//
//	func (r *Contacts) Get(ctx context.Context, accountID, id string, extra ...woot.Args) (*woot.Response, error)
//
// The generated methods delegate to a *woot.Client, so they share its
// transport, interceptors and validation.
package wootgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"path"
	"reflect"
	"slices"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
	"golang.org/x/tools/imports"

	"github.com/dearkafka/woot/descriptor"
)

// wootImport is the import path of the runtime the generated code calls.
const wootImport = "github.com/dearkafka/woot"

// Options configures the generator.
type Options struct {
	// Package is the package name of the generated file. Default "wootapi".
	Package string

	// PkgPath is the import path of the generated package. Schema types
	// declared in that package are referenced without a qualifier.
	PkgPath string

	// Command is recorded in the generated header, e.g. "woot gen -o api.go".
	Command string
}

// Generate renders wrappers for every resource of reg as a formatted Go
// source file.
func Generate(reg *descriptor.Registry, opts Options) ([]byte, error) {
	if reg == nil {
		return nil, errors.New("wootgen: nil registry")
	}
	if opts.Package == "" {
		opts.Package = "wootapi"
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("wootgen: invalid package name %q", opts.Package)
	}

	f := &file{
		Package: opts.Package,
		Command: opts.Command,
		Imports: map[string]bool{wootImport: true, "context": true},
	}
	for _, r := range reg.Resources() {
		res := resource{
			Type: ExportedName(r.Name),
			Attr: r.AttrName(),
		}
		for _, a := range r.Actions {
			m, err := f.method(r, a, opts.PkgPath)
			if err != nil {
				return nil, fmt.Errorf("wootgen: %s.%s: %w", r.AttrName(), a.Name, err)
			}
			res.Methods = append(res.Methods, m)
		}
		f.Resources = append(f.Resources, res)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("wootgen: execute template: %w", err)
	}
	src, err := imports.Process(opts.Package+".go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return buf.Bytes(), fmt.Errorf("wootgen: format: %w", err)
	}
	return src, nil
}

type file struct {
	Package   string
	Command   string
	Imports   map[string]bool
	Resources []resource
}

// SortedImports lists the imports of the file; the formatter groups them.
func (f *file) SortedImports() []string {
	out := make([]string, 0, len(f.Imports))
	for p := range f.Imports {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

type resource struct {
	Type    string
	Attr    string
	Methods []method
}

type param struct {
	Name string // Go identifier
	Key  string // keyword argument name
}

type method struct {
	Name      string
	Action    string
	Verb      string
	URL       string
	Summary   string
	Path      []param
	QueryType string
	BodyType  string
}

func (m method) Signature() string {
	var b strings.Builder
	b.WriteString("ctx context.Context")
	if len(m.Path) > 0 {
		b.WriteString(", ")
		for i, p := range m.Path {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Name)
		}
		b.WriteString(" string")
	}
	if m.QueryType != "" {
		b.WriteString(", query " + m.QueryType)
	}
	if m.BodyType != "" {
		b.WriteString(", body " + m.BodyType)
	}
	b.WriteString(", extra ...woot.Args")
	return b.String()
}

var reservedParams = map[string]bool{
	"ctx": true, "query": true, "body": true, "extra": true,
	"args": true, "err": true, "r": true, "woot": true, "context": true,
}

func (f *file) method(r descriptor.Resource, a descriptor.Action, pkgPath string) (method, error) {
	m := method{
		Name:    ExportedName(a.Name),
		Action:  a.Name,
		Verb:    a.Method.String(),
		URL:     a.URL,
		Summary: a.Summary,
	}
	if m.Name == "" {
		return m, fmt.Errorf("action name %q has no Go identifier", a.Name)
	}

	seen := make(map[string]bool)
	for _, key := range a.PathParams() {
		if seen[key] {
			continue
		}
		seen[key] = true
		m.Path = append(m.Path, param{Name: ParamName(key), Key: key})
	}

	var err error
	if m.QueryType, err = f.typeRef(a.Query, pkgPath); err != nil {
		return m, err
	}
	if m.BodyType, err = f.typeRef(a.Body, pkgPath); err != nil {
		return m, err
	}
	return m, nil
}

// typeRef returns the Go type expression of a struct-backed schema, recording
// its import. Hand-written schemas have no Go type and are passed via extra.
func (f *file) typeRef(s *descriptor.Schema, pkgPath string) (string, error) {
	if s == nil || s.GoType == nil {
		return "", nil
	}
	t := s.GoType
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return "", nil
	}
	if !token.IsExported(t.Name()) {
		if t.PkgPath() == pkgPath {
			return t.Name(), nil
		}
		return "", nil
	}
	if t.PkgPath() == "" || t.PkgPath() == pkgPath {
		return t.Name(), nil
	}
	if t.PkgPath() == "main" {
		return "", fmt.Errorf("type %s is declared in package main", t.Name())
	}
	f.Imports[t.PkgPath()] = true
	return path.Base(t.PkgPath()) + "." + t.Name(), nil
}

var initialisms = map[string]string{
	"id":  "ID",
	"ids": "IDs",
	"url": "URL",
	"api": "API",
}

// ExportedName converts a snake_case or CamelCase name into an exported Go
// identifier, e.g. "get_conversations" -> "GetConversations" and
// "agent_bot_id" -> "AgentBotID".
func ExportedName(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(strcase.ToSnake(name), "_") {
		if word == "" {
			continue
		}
		if s, ok := initialisms[word]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteString(strcase.ToCamel(word))
	}
	return b.String()
}

// ParamName converts a keyword argument name into an unexported Go
// parameter name that does not collide with keywords or the generated
// locals, e.g. "account_id" -> "accountID".
func ParamName(key string) string {
	exp := ExportedName(key)
	if exp == "" {
		return "p"
	}
	name := strings.ToLower(exp[:1]) + exp[1:]
	for _, s := range []string{"IDs", "ID", "URL", "API"} {
		if strings.HasPrefix(exp, s) {
			name = strings.ToLower(s) + exp[len(s):]
			break
		}
	}
	if token.IsKeyword(name) || reservedParams[name] {
		name += "Arg"
	}
	return name
}

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"comment": func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\n", "\n// ")
	},
}).Parse(`// Code generated by woot gen{{with .Command}} ({{.}}){{end}}; DO NOT EDIT.

package {{.Package}}

import (
{{- range .SortedImports}}
	{{quote .}}
{{- end}}
)

// Client groups the typed resources of a woot client.
type Client struct {
	c *woot.Client
{{range .Resources}}
	{{.Type}} *{{.Type}}
{{- end}}
}

// New wraps c.
func New(c *woot.Client) *Client {
	return &Client{
		c: c,
{{- range .Resources}}
		{{.Type}}: &{{.Type}}{r: c.Resource({{quote .Attr}})},
{{- end}}
	}
}

// Woot returns the underlying client.
func (c *Client) Woot() *woot.Client { return c.c }
{{range $res := .Resources}}
// {{.Type}} wraps the {{quote .Attr}} resource.
type {{.Type}} struct {
	r *woot.Resource
}
{{range .Methods}}
// {{.Name}} calls {{$res.Attr}}.{{.Action}}: {{.Verb}} {{.URL}}.{{with .Summary}}
// {{comment .}}{{end}}
func (r *{{$res.Type}}) {{.Name}}({{.Signature}}) (*woot.Response, error) {
	args := woot.Args{}
{{- if .QueryType}}
	q, err := woot.QueryArgs(query)
	if err != nil {
		return nil, err
	}
	args = args.Merge(q)
{{- end}}
{{- if .BodyType}}
	b, err := woot.StructArgs(body)
	if err != nil {
		return nil, err
	}
	args = args.Merge(b)
{{- end}}
{{- range .Path}}
	args[{{quote .Key}}] = {{.Name}}
{{- end}}
	for _, e := range extra {
		args = args.Merge(e)
	}
	return r.r.Call(ctx, {{quote .Action}}, args)
}
{{end}}
{{- end}}`))
