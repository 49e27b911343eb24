// Package partition splits the keyword arguments of one action call into
// path, query and body values plus the leftovers handed to the transport.
package partition

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/dearkafka/woot/internal/signature"
)

// Call is the partitioned form of one invocation. It lives for one call only.
type Call struct {
	// Path holds stringified path values in placeholder order. It is shorter
	// than the placeholder list when a path keyword was not supplied.
	Path []string
	// Missing lists placeholders for which no value, or a nil value, was
	// supplied.
	Missing []string
	// PathArgs are the raw path values by keyword.
	PathArgs map[string]any
	// Query and Body are keyed by the programmatic field name.
	Query  map[string]any
	Body   map[string]any
	Extras map[string]any

	external map[string]string // field name -> keyword, where they differ
}

// Partition assigns every keyword in kwargs to exactly one bucket: path when
// the action has a placeholder of that name, otherwise query, otherwise body,
// otherwise extras. Precedence follows that order when a schema declares a
// name twice.
func Partition(kwargs map[string]any, sig signature.Signature) Call {
	c := Call{
		PathArgs: make(map[string]any),
		Query:    make(map[string]any),
		Body:     make(map[string]any),
		Extras:   make(map[string]any),
	}
	for name, v := range kwargs {
		p, ok := sig.Lookup(name)
		if !ok {
			c.Extras[name] = v
			continue
		}
		switch p.Kind {
		case signature.Path:
			c.PathArgs[name] = v
		case signature.Query:
			c.Query[p.Field] = v
		case signature.Body:
			c.Body[p.Field] = v
		default:
			c.Extras[name] = v
			continue
		}
		if p.Field != name {
			if c.external == nil {
				c.external = make(map[string]string)
			}
			c.external[p.Field] = name
		}
	}
	for _, name := range sig.PathOrder {
		v, ok := c.PathArgs[name]
		if !ok || isNil(v) {
			c.Missing = append(c.Missing, name)
			continue
		}
		c.Path = append(c.Path, Stringify(v))
	}
	return c
}

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

// QueryValues converts the query bucket into url.Values. Nil values are
// dropped and slices become repeated keys.
func (c Call) QueryValues() url.Values {
	if len(c.Query) == 0 {
		return nil
	}
	q := make(url.Values, len(c.Query))
	for k, v := range c.Query {
		if vs := Strings(v); len(vs) > 0 {
			q[k] = vs
		}
	}
	return q
}

// Join merges the buckets back into keyword arguments. For a call whose
// keywords were each declared once, Join returns the original mapping.
func (c Call) Join() map[string]any {
	out := make(map[string]any, len(c.PathArgs)+len(c.Query)+len(c.Body)+len(c.Extras))
	for k, v := range c.PathArgs {
		out[k] = v
	}
	for _, bucket := range []map[string]any{c.Query, c.Body} {
		for k, v := range bucket {
			if ext, ok := c.external[k]; ok {
				k = ext
			}
			out[k] = v
		}
	}
	for k, v := range c.Extras {
		out[k] = v
	}
	return out
}

// Stringify is the canonical conversion of a value placed in a URL.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case encoding.TextMarshaler:
		if b, err := x.MarshalText(); err == nil {
			return string(b)
		}
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
		return Stringify(rv.Elem().Interface())
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	}
	return fmt.Sprint(v)
}

// Strings converts a query value into its string forms: nil yields none,
// slices and arrays one per element, anything else a single string.
func Strings(v any) []string {
	if v == nil {
		return nil
	}
	switch x := v.(type) {
	case []string:
		return append([]string(nil), x...)
	case []byte:
		return []string{string(x)}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Strings(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, Stringify(rv.Index(i).Interface()))
		}
		return out
	}
	return []string{Stringify(v)}
}
