package descriptor

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Field is one entry of a query or body schema.
type Field struct {
	// Name is the programmatic name of the field. It is also the key used on
	// the wire (query string key or body key).
	Name string
	// Alias, when set, replaces Name as the keyword callers pass.
	Alias string
	// Type is the declared type, for documentation and introspection only.
	Type string
	// Required is set when the field must be supplied.
	Required bool
	// Validate holds go-playground/validator rules for the field value.
	Validate string
}

// ExternalName is the keyword callers use to supply the field.
func (f Field) ExternalName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Schema is an ordered set of fields.
type Schema struct {
	Name   string
	Fields []Field
	// GoType is the struct the schema was derived from, if any.
	GoType reflect.Type
}

// Field returns the field whose programmatic name is name.
func (s *Schema) Field(name string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Names returns the programmatic field names in declaration order.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of fields; a nil schema has none.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Fields)
}

// String renders the schema as {name: type, ...}.
func (s *Schema) String() string {
	if s == nil {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range s.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", f.ExternalName(), f.Type)
	}
	b.WriteByte('}')
	return b.String()
}

var schemaCache sync.Map // map[reflect.Type]*Schema

// SchemaOf derives a Schema from a struct value or struct type pointer.
//
// Field names come from the json tag (falling back to the Go field name), the
// alias tag sets Field.Alias and the validate tag sets Field.Validate. A field
// is required when its validate rules contain "required". Fields tagged
// json:"-" and unexported fields are skipped.
//
// SchemaOf panics if v is not a struct; schemas are declared statically and a
// bad declaration is a programming error.
func SchemaOf(v any) *Schema {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("descriptor: SchemaOf requires a struct, got %T", v))
	}
	if cached, ok := schemaCache.Load(t); ok {
		return cached.(*Schema)
	}

	s := &Schema{Name: t.Name(), GoType: t}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		rules := sf.Tag.Get("validate")
		s.Fields = append(s.Fields, Field{
			Name:     name,
			Alias:    sf.Tag.Get("alias"),
			Type:     TypeName(sf.Type),
			Required: hasRule(rules, "required"),
			Validate: rules,
		})
	}

	actual, _ := schemaCache.LoadOrStore(t, s)
	return actual.(*Schema)
}

// TypeName renders t the way schemas declare types: pointers are dropped,
// package qualifiers are removed and the empty interface is "any".
func TypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	switch t.Kind() {
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), TypeName(t.Elem()))
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return "any"
		}
	}
	return t.String()
}

func hasRule(rules, rule string) bool {
	for _, r := range strings.Split(rules, ",") {
		if r == rule {
			return true
		}
	}
	return false
}
