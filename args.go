package woot

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/gorilla/schema"

	"github.com/dearkafka/woot/descriptor"
)

// Args are keyword arguments of an action call.
type Args map[string]any

// Arg is a single keyword argument.
type Arg struct {
	Name  string
	Value any
}

// KV returns a single keyword argument.
func KV(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

var queryEncoder = func() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.SetAliasTag("json")
	return enc
}()

// QueryArgs turns a query struct into keyword arguments. Field names come
// from json tags; zero fields tagged omitempty are left out.
//
//	args, err := woot.QueryArgs(chatwoot.ContactsListQuery{Sort: chatwoot.SortName, Page: 2})
func QueryArgs(v any) (Args, error) {
	dst := make(map[string][]string)
	if err := queryEncoder.Encode(v, dst); err != nil {
		return nil, fmt.Errorf("woot: encode query args: %w", err)
	}
	args := make(Args, len(dst))
	for k, vs := range dst {
		if len(vs) == 1 {
			args[k] = vs[0]
		} else {
			args[k] = vs
		}
	}
	return args, nil
}

// StructArgs turns a body struct into keyword arguments, keeping JSON types.
// Fields carrying an alias tag are keyed by their alias.
func StructArgs(v any) (Args, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("woot: encode args: %w", err)
	}
	var args Args
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("woot: encode args: %w", err)
	}
	if isStruct(v) {
		for _, f := range descriptor.SchemaOf(v).Fields {
			if x, ok := args[f.Name]; ok && f.Alias != "" {
				delete(args, f.Name)
				args[f.Alias] = x
			}
		}
	}
	return args, nil
}

func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct
}

// Merge returns a copy of a with b laid over it.
func (a Args) Merge(b Args) Args {
	out := make(Args, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// collectArgs merges the keyword arguments of a call. Anything that is not
// Args, a map[string]any or an Arg is a positional argument, reported by its
// index.
func collectArgs(args []any) (Args, int, any, bool) {
	out := make(Args)
	for i, a := range args {
		switch v := a.(type) {
		case Args:
			for k, x := range v {
				out[k] = x
			}
		case map[string]any:
			for k, x := range v {
				out[k] = x
			}
		case Arg:
			out[v.Name] = v.Value
		case *Arg:
			if v == nil {
				return nil, i, a, false
			}
			out[v.Name] = v.Value
		default:
			return nil, i, a, false
		}
	}
	return out, 0, nil, true
}

// isNil reports whether v is nil or a nil pointer, map or slice.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
