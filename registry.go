// File: lixenwraith/drift/registry.go
package drift

import (
	"fmt"
	"sort"
)

// Registry resolves resolver and callback names from configuration values
// to constructors. It replaces classpath scanning: implementations register
// themselves under a name, and the configuration layer instantiates them
// when a property names them.
//
// A Registry is captured by a Config at construction and is not safe for
// concurrent mutation afterwards.
type Registry struct {
	callbacks map[string]func() Callback
	resolvers map[string]func() Resolver
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		callbacks: make(map[string]func() Callback),
		resolvers: make(map[string]func() Resolver),
	}
}

// RegisterCallback makes a callback constructor available under name,
// replacing any previous registration.
func (r *Registry) RegisterCallback(name string, fn func() Callback) {
	r.callbacks[name] = fn
}

// RegisterResolver makes a resolver constructor available under name,
// replacing any previous registration.
func (r *Registry) RegisterResolver(name string, fn func() Resolver) {
	r.resolvers[name] = fn
}

// Callback instantiates the callback registered under name.
func (r *Registry) Callback(name string) (Callback, error) {
	fn, ok := r.callbacks[name]
	if !ok {
		return nil, fmt.Errorf("unknown callback %q (registered: %v)", name, sortedKeys(r.callbacks))
	}
	return fn(), nil
}

// Resolver instantiates the resolver registered under name.
func (r *Registry) Resolver(name string) (Resolver, error) {
	fn, ok := r.resolvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown resolver %q (registered: %v)", name, sortedKeys(r.resolvers))
	}
	return fn(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
