package woot

import (
	"context"
	"fmt"

	"github.com/dearkafka/woot/descriptor"
)

// Resource is a bound resource of a synchronous Client: a fixed set of
// actions looked up by name.
type Resource struct {
	desc    descriptor.Resource
	actions map[string]*BoundAction
}

// bindResource binds every action of desc to dispatch.
func bindResource(desc descriptor.Resource, cfg *Config, dispatch dispatchFunc) (map[string]*BoundAction, []*BoundAction) {
	byName := make(map[string]*BoundAction, len(desc.Actions))
	ordered := make([]*BoundAction, 0, len(desc.Actions))
	for _, ad := range desc.Actions {
		a := bindAction(desc, ad, cfg, dispatch)
		byName[ad.Name] = a
		ordered = append(ordered, a)
	}
	return byName, ordered
}

func newResource(desc descriptor.Resource, cfg *Config, t Transport) *Resource {
	actions, _ := bindResource(desc, cfg, t.Do)
	return &Resource{desc: desc, actions: actions}
}

// Name returns the attribute name, e.g. "account_agent_bot".
func (r *Resource) Name() string { return r.desc.AttrName() }

// Descriptor returns the static declaration of the resource.
func (r *Resource) Descriptor() descriptor.Resource { return r.desc }

// Actions returns the action names in declaration order.
func (r *Resource) Actions() []string { return r.desc.ActionNames() }

// Action returns the bound action called name, or nil if there is none.
func (r *Resource) Action(name string) *BoundAction {
	return r.actions[name]
}

// Call invokes the action called name.
func (r *Resource) Call(ctx context.Context, action string, args ...any) (*Response, error) {
	a, ok := r.actions[action]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownAction, r.Name(), action)
	}
	return a.Call(ctx, args...)
}

// Describe lists the actions of the resource with their method, URL and schemas.
func (r *Resource) Describe() string {
	return describeResource(r.desc)
}

func (r *Resource) String() string { return r.Describe() }
