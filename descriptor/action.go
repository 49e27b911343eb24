package descriptor

import (
	"errors"
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/dearkafka/woot/internal/urltemplate"
)

var (
	// ErrInvalidAction is returned when an action declaration is malformed.
	ErrInvalidAction = errors.New("descriptor: invalid action")
	// ErrDuplicateAction is returned when a resource declares an action twice.
	ErrDuplicateAction = errors.New("descriptor: duplicate action")
)

// Action describes one HTTP operation of a resource.
type Action struct {
	Name   string
	Method Method
	// URL is a template relative to the API base URL. Placeholders are written
	// as {name} and may be followed by a literal query string.
	URL     string
	Query   *Schema
	Body    *Schema
	Summary string
}

// PathParams returns the placeholder names of the URL template in order.
func (a Action) PathParams() []string {
	return urltemplate.Placeholders(a.URL)
}

// Validate checks the declaration.
func (a Action) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAction)
	}
	if !a.Method.Valid() {
		return fmt.Errorf("%w: %s has unknown method %q", ErrInvalidAction, a.Name, a.Method)
	}
	if a.URL == "" {
		return fmt.Errorf("%w: %s has empty url", ErrInvalidAction, a.Name)
	}
	seen := make(map[string]bool)
	for _, p := range a.PathParams() {
		if p == "" {
			return fmt.Errorf("%w: %s has an empty placeholder in %q", ErrInvalidAction, a.Name, a.URL)
		}
		if seen[p] {
			return fmt.Errorf("%w: %s repeats placeholder {%s}", ErrInvalidAction, a.Name, p)
		}
		seen[p] = true
	}
	return nil
}

// Resource is a named group of actions.
type Resource struct {
	// Name is the CamelCase name, e.g. "AccountAgentBot".
	Name string
	// AppendSlash makes rendered paths end with a slash.
	AppendSlash bool
	Actions     []Action
}

// AttrName is the snake_case name the resource is exposed under.
func (r Resource) AttrName() string {
	return AttrName(r.Name)
}

// Action returns the action called name.
func (r Resource) Action(name string) (Action, bool) {
	for _, a := range r.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// ActionNames returns the action names in declaration order.
func (r Resource) ActionNames() []string {
	names := make([]string, len(r.Actions))
	for i, a := range r.Actions {
		names[i] = a.Name
	}
	return names
}

// Validate checks every action and rejects duplicate action names.
func (r Resource) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: resource with empty name", ErrInvalidAction)
	}
	seen := make(map[string]bool, len(r.Actions))
	for _, a := range r.Actions {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateAction, r.Name, a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}

// AttrName converts a CamelCase resource name into its snake_case attribute
// name, splitting on case boundaries: "AccountAgentBot" becomes
// "account_agent_bot".
func AttrName(name string) string {
	return strcase.ToSnake(name)
}
