// Package descriptor holds the static description of an API: resources, their
// actions and the schemas of query strings and request bodies.
//
// Descriptors are plain data. They are built once, registered in a [Registry]
// during package initialization and never mutated afterwards. The woot package
// binds them into callable actions.
package descriptor

import "fmt"

// Method is the HTTP method of an action.
type Method string

const (
	GET    Method = "GET"
	POST   Method = "POST"
	PUT    Method = "PUT"
	PATCH  Method = "PATCH"
	DELETE Method = "DELETE"
)

// Methods lists every method an action may declare.
var Methods = []Method{GET, POST, PUT, PATCH, DELETE}

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	switch m {
	case GET, POST, PUT, PATCH, DELETE:
		return true
	default:
		return false
	}
}

// HasBody reports whether requests using m carry a body.
func (m Method) HasBody() bool {
	switch m {
	case POST, PUT, PATCH, DELETE:
		return true
	case GET:
		return false
	default:
		return false
	}
}

func (m Method) String() string {
	return string(m)
}

// ParseMethod converts s to a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !m.Valid() {
		return "", fmt.Errorf("descriptor: unknown method %q", s)
	}
	return m, nil
}
