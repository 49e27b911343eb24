// Package signature derives the keyword-argument shape of a bound action from
// its path placeholders and its query and body schemas.
package signature

import (
	"fmt"
	"strings"

	"github.com/dearkafka/woot/descriptor"
)

// Kind says where an argument ends up in the request.
type Kind uint8

const (
	Path Kind = iota + 1
	Query
	Body
)

func (k Kind) String() string {
	switch k {
	case Path:
		return "path"
	case Query:
		return "query"
	case Body:
		return "body"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Param is one keyword parameter of a bound action.
type Param struct {
	// Name is the keyword callers pass.
	Name string
	// Field is the programmatic name used as the query or body key. For path
	// params it equals Name.
	Field    string
	Kind     Kind
	Type     string
	Position int
	Required bool
	Validate string
}

// Signature is the ordered parameter list of one action: path params first,
// then query fields, then body fields.
type Signature struct {
	Action string
	Params []Param
	// PathOrder holds one entry per placeholder occurrence in the template.
	PathOrder []string

	lookup map[string]int
}

// Synthesize builds the signature of the action called name. Path params are
// typed string, as are query fields since they travel in the URL; body fields
// keep their declared type. A keyword declared in several places resolves to
// the earliest of path, query and body.
func Synthesize(name string, path []string, query, body *descriptor.Schema) Signature {
	sig := Signature{
		Action:    name,
		PathOrder: append([]string(nil), path...),
		lookup:    make(map[string]int),
	}
	add := func(p Param) {
		p.Position = len(sig.Params)
		if _, dup := sig.lookup[p.Name]; !dup {
			sig.lookup[p.Name] = p.Position
		}
		sig.Params = append(sig.Params, p)
	}

	seen := make(map[string]bool, len(path))
	for _, p := range path {
		if seen[p] {
			continue
		}
		seen[p] = true
		add(Param{Name: p, Field: p, Kind: Path, Type: "string", Required: true})
	}
	if query != nil {
		for _, f := range query.Fields {
			add(Param{Name: f.ExternalName(), Field: f.Name, Kind: Query, Type: "string", Required: f.Required, Validate: f.Validate})
		}
	}
	if body != nil {
		for _, f := range body.Fields {
			add(Param{Name: f.ExternalName(), Field: f.Name, Kind: Body, Type: f.Type, Required: f.Required, Validate: f.Validate})
		}
	}
	return sig
}

// Lookup returns the parameter a keyword resolves to.
func (s Signature) Lookup(name string) (Param, bool) {
	i, ok := s.lookup[name]
	if !ok {
		return Param{}, false
	}
	return s.Params[i], true
}

// Kind returns where keyword name goes, or 0 if the action does not declare it.
func (s Signature) Kind(name string) Kind {
	p, ok := s.Lookup(name)
	if !ok {
		return 0
	}
	return p.Kind
}

// Names returns the keywords of the given kind in order. A zero kind returns
// every keyword.
func (s Signature) Names(kind Kind) []string {
	var names []string
	for _, p := range s.Params {
		if kind == 0 || p.Kind == kind {
			names = append(names, p.Name)
		}
	}
	return names
}

// Of returns the parameters of the given kind in order.
func (s Signature) Of(kind Kind) []Param {
	var params []Param
	for _, p := range s.Params {
		if p.Kind == kind {
			params = append(params, p)
		}
	}
	return params
}

const rule = "--------------------"

// Doc renders a human readable description of the signature.
func (s Signature) Doc() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(%s)\n", s.Action, strings.Join(s.Names(0), ", "))
	for _, section := range []struct {
		title string
		kind  Kind
	}{
		{"Path parameters", Path},
		{"Query parameters", Query},
		{"Body schema", Body},
	} {
		fmt.Fprintf(&b, "\n%s:\n%s\n", section.title, rule)
		params := s.Of(section.kind)
		if len(params) == 0 {
			b.WriteString("(none)\n")
			continue
		}
		for _, p := range params {
			fmt.Fprintf(&b, "%s: %s", p.Name, p.Type)
			if p.Required {
				b.WriteString(" (required)")
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
