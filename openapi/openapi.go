// Package openapi exports a resource registry as an OpenAPI 3 document.
//
// Every action becomes one operation. The path is the action URL template
// without its literal query, path placeholders become path parameters, query
// schema fields become query parameters and the body schema is published
// under components/schemas.
package openapi

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/dearkafka/woot/descriptor"
)

// Version is the OpenAPI version of generated documents.
const Version = "3.0.3"

// VariantsExtension lists the operation ids of actions that share a path and
// method with the operation carrying it.
const VariantsExtension = "x-woot-variants"

// securityScheme names the access token scheme.
const securityScheme = "api_access_token"

// Info describes the generated document.
type Info struct {
	Title       string
	Version     string
	Description string
	// ServerURL is the API root, e.g. "https://app.chatwoot.com".
	ServerURL string
	// TokenHeader is the header carrying the access token. Default
	// "api_access_token".
	TokenHeader string
}

// Build converts every resource of reg into an OpenAPI document.
func Build(reg *descriptor.Registry, info Info) (*openapi3.T, error) {
	if info.Title == "" {
		info.Title = "woot"
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}
	if info.TokenHeader == "" {
		info.TokenHeader = securityScheme
	}

	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas),
			SecuritySchemes: openapi3.SecuritySchemes{
				securityScheme: &openapi3.SecuritySchemeRef{
					Value: openapi3.NewSecurityScheme().
						WithType("apiKey").
						WithIn("header").
						WithName(info.TokenHeader),
				},
			},
		},
		Security: openapi3.SecurityRequirements{
			openapi3.NewSecurityRequirement().Authenticate(securityScheme),
		},
	}
	if info.ServerURL != "" {
		doc.Servers = openapi3.Servers{{URL: info.ServerURL}}
	}

	b := &builder{doc: doc}
	for _, r := range reg.Resources() {
		for _, a := range r.Actions {
			if err := b.addAction(r, a); err != nil {
				return nil, fmt.Errorf("openapi: %s.%s: %w", r.AttrName(), a.Name, err)
			}
		}
	}
	return doc, nil
}

type builder struct {
	doc *openapi3.T
}

func (b *builder) addAction(r descriptor.Resource, a descriptor.Action) error {
	id := OperationID(r, a)
	op := &openapi3.Operation{
		OperationID: id,
		Summary:     a.Summary,
		Tags:        []string{r.Name},
		Responses:   responses(),
	}
	if op.Summary == "" {
		op.Summary = fmt.Sprintf("%s %s", strings.ReplaceAll(a.Name, "_", " "), strings.ReplaceAll(r.AttrName(), "_", " "))
	}

	seen := make(map[string]bool)
	for _, name := range a.PathParams() {
		if seen[name] {
			continue
		}
		seen[name] = true
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{
			Value: openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()),
		})
	}

	if a.Query.Len() > 0 {
		props, err := b.properties(a.Query)
		if err != nil {
			return err
		}
		for _, f := range a.Query.Fields {
			schema := openapi3.NewStringSchema()
			if ref, ok := props[f.Name]; ok && ref.Value != nil {
				schema = ref.Value
			}
			p := openapi3.NewQueryParameter(f.Name).WithSchema(schema).WithRequired(f.Required)
			op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: p})
		}
	}

	if a.Body.Len() > 0 {
		ref, err := b.component(a.Body)
		if err != nil {
			return err
		}
		body := openapi3.NewRequestBody().
			WithJSONSchemaRef(ref).
			WithRequired(hasRequired(a.Body))
		op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	path := Path(r, a)
	item := b.doc.Paths.Value(path)
	if item == nil {
		item = &openapi3.PathItem{}
		b.doc.Paths.Set(path, item)
	}
	method := a.Method.String()
	if existing := item.GetOperation(method); existing != nil {
		if existing.Extensions == nil {
			existing.Extensions = make(map[string]any)
		}
		variants, _ := existing.Extensions[VariantsExtension].([]string)
		existing.Extensions[VariantsExtension] = append(variants, id)
		return nil
	}
	item.SetOperation(method, op)
	return nil
}

// component publishes s under components/schemas and returns a reference to it.
func (b *builder) component(s *descriptor.Schema) (*openapi3.SchemaRef, error) {
	name := s.Name
	if name == "" {
		return nil, fmt.Errorf("body schema has no name")
	}
	if _, ok := b.doc.Components.Schemas[name]; !ok {
		schema, err := b.objectSchema(s)
		if err != nil {
			return nil, err
		}
		b.doc.Components.Schemas[name] = openapi3.NewSchemaRef("", schema)
	}
	return openapi3.NewSchemaRef("#/components/schemas/"+name, nil), nil
}

func (b *builder) properties(s *descriptor.Schema) (openapi3.Schemas, error) {
	schema, err := b.objectSchema(s)
	if err != nil {
		return nil, err
	}
	return schema.Properties, nil
}

// objectSchema renders s as an object schema. Schemas derived from a struct
// are generated from the struct; hand-written ones from the declared types.
func (b *builder) objectSchema(s *descriptor.Schema) (*openapi3.Schema, error) {
	var schema *openapi3.Schema
	if s.GoType != nil {
		ref, err := openapi3gen.NewSchemaRefForValue(
			reflect.New(s.GoType).Elem().Interface(),
			make(openapi3.Schemas),
			openapi3gen.UseAllExportedFields(),
			openapi3gen.SchemaCustomizer(applyRules),
		)
		if err != nil {
			return nil, err
		}
		schema = ref.Value
	} else {
		schema = openapi3.NewObjectSchema()
		for _, f := range s.Fields {
			schema.WithPropertyRef(f.Name, openapi3.NewSchemaRef("", TypeSchema(f.Type)))
		}
	}
	schema.Required = nil
	for _, f := range s.Fields {
		if f.Required {
			schema.Required = append(schema.Required, f.Name)
		}
	}
	return schema, nil
}

// applyRules maps validator rules of a struct field onto its schema.
func applyRules(name string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	rules := tag.Get("validate")
	if rules == "" {
		return nil
	}
	for _, rule := range strings.Split(rules, ",") {
		switch {
		case strings.HasPrefix(rule, "oneof="):
			for _, v := range strings.Fields(strings.TrimPrefix(rule, "oneof=")) {
				schema.Enum = append(schema.Enum, v)
			}
		case rule == "email":
			schema.Format = "email"
		case rule == "url":
			schema.Format = "uri"
		}
	}
	return nil
}

// TypeSchema maps a declared field type to a schema.
func TypeSchema(typ string) *openapi3.Schema {
	switch {
	case typ == "string":
		return openapi3.NewStringSchema()
	case typ == "bool":
		return openapi3.NewBoolSchema()
	case typ == "float32" || typ == "float64":
		return openapi3.NewFloat64Schema()
	case strings.HasPrefix(typ, "int") || strings.HasPrefix(typ, "uint"):
		return openapi3.NewIntegerSchema()
	case typ == "[]uint8":
		return openapi3.NewBytesSchema()
	case strings.HasPrefix(typ, "[]"):
		return openapi3.NewArraySchema().WithItems(TypeSchema(strings.TrimPrefix(typ, "[]")))
	default:
		return openapi3.NewObjectSchema()
	}
}

func responses() *openapi3.Responses {
	res := openapi3.NewResponses()
	res.Delete("default")
	res.Set("200", &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("Successful response").
			WithJSONSchema(openapi3.NewObjectSchema()),
	})
	res.Set("default", &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription("Error response"),
	})
	return res
}

func hasRequired(s *descriptor.Schema) bool {
	for _, f := range s.Fields {
		if f.Required {
			return true
		}
	}
	return false
}

// OperationID names the operation of action a, e.g. "contactsGetConversations".
func OperationID(r descriptor.Resource, a descriptor.Action) string {
	return strcase.ToLowerCamel(r.AttrName() + "_" + a.Name)
}

// Path is the OpenAPI path of action a: its URL template without the literal
// query, rooted at "/".
func Path(r descriptor.Resource, a descriptor.Action) string {
	p, _, _ := strings.Cut(a.URL, "?")
	p = "/" + strings.TrimPrefix(p, "/")
	if r.AppendSlash && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// JSON renders doc as indented JSON.
func JSON(doc *openapi3.T) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// YAML renders doc as YAML.
func YAML(doc *openapi3.T) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}
