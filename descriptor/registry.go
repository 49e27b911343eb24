package descriptor

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDuplicateResource is returned when two resources share an attribute name.
	ErrDuplicateResource = errors.New("descriptor: duplicate resource")
	// ErrSealed is returned when registering into a sealed registry.
	ErrSealed = errors.New("descriptor: registry is sealed")
)

// Registry is an ordered set of resource descriptors.
//
// Resources are registered once, typically from a package init function, and
// the registry is then sealed. Reads are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	resources []Resource
	index     map[string]int
	sealed    bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register validates r and appends it.
func (reg *Registry) Register(r Resource) error {
	if err := r.Validate(); err != nil {
		return err
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.sealed {
		return ErrSealed
	}
	key := r.AttrName()
	if _, exists := reg.index[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateResource, key)
	}
	reg.index[key] = len(reg.resources)
	reg.resources = append(reg.resources, r)
	return nil
}

// MustRegister is like Register but panics on error.
func (reg *Registry) MustRegister(resources ...Resource) *Registry {
	for _, r := range resources {
		if err := reg.Register(r); err != nil {
			panic(err)
		}
	}
	return reg
}

// Seal prevents further registrations.
func (reg *Registry) Seal() *Registry {
	reg.mu.Lock()
	reg.sealed = true
	reg.mu.Unlock()
	return reg
}

// Lookup returns the resource registered under attribute name attr.
func (reg *Registry) Lookup(attr string) (Resource, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	i, ok := reg.index[attr]
	if !ok {
		return Resource{}, false
	}
	return reg.resources[i], true
}

// Resources returns a copy of the registered resources in registration order.
func (reg *Registry) Resources() []Resource {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Resource, len(reg.resources))
	copy(out, reg.resources)
	return out
}

// Len returns the number of registered resources.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.resources)
}
