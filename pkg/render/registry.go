package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry keeps the renderer backends available to an application, keyed by
// the name each backend reports. The zero value is ready to use; applications
// that need their own registration policy can wrap or embed it.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Renderer)}
}

// Register adds renderer under the name it reports. Nil renderers, unnamed
// renderers, and names already taken are rejected.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: cannot register a nil renderer")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer reports an empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[name]; taken {
		return fmt.Errorf("render: renderer %q registered twice", name)
	}
	if r.byName == nil {
		r.byName = make(map[string]Renderer)
	}
	r.byName[name] = renderer
	return nil
}

// MustRegister registers renderer and panics on failure. Intended for
// program start-up, where a collision means the binary is miswired.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer registered under name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: no renderer registered as %q", name)
	}
	return renderer, nil
}

// MustGet returns the named renderer and panics when it is absent.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok
}
