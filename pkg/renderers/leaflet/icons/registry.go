package icons

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-mapgen/internal/sanitize"
)

// Descriptor bundles the inline SVG for one marker icon with the geometry
// Leaflet needs to place it. Sizes and anchors are pixel offsets.
type Descriptor struct {
	Name      string
	ClassName string
	// Markup holds the inline SVG. It is sanitized on Register, so
	// descriptors fetched from the registry are safe to embed as-is.
	Markup string
	// Size is the rendered width and height.
	Size [2]int
	// Anchor is the point of the icon that sits on the marker coordinates,
	// measured from the top-left corner.
	Anchor [2]int
	// PopupAnchor is where popups open, relative to Anchor.
	PopupAnchor [2]int
}

// Registry tracks icon descriptors keyed by category name. Callers can
// register new categories or override defaults.
type Registry struct {
	mu       sync.RWMutex
	icons    map[string]Descriptor
	fallback string
}

// New creates an empty registry with NamePin as the fallback category.
func New() *Registry {
	return &Registry{
		icons:    make(map[string]Descriptor),
		fallback: NamePin,
	}
}

// Clone returns a deep copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	cloned.fallback = r.fallback
	for name, descriptor := range r.icons {
		cloned.icons[name] = descriptor
	}
	return cloned
}

// Register associates a descriptor with the provided category name. Existing
// entries are replaced. The descriptor markup is sanitized; registration
// fails when nothing safe remains.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("icons: icon name is required")
	}

	markup := sanitize.SVG(descriptor.Markup)
	if markup == "" {
		return fmt.Errorf("icons: markup for %q is empty after sanitizing", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	descriptor.Markup = markup
	r.icons[name] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// registry setup.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// SetFallback changes the category returned for unknown names.
func (r *Registry) SetFallback(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if name = normalize(name); name != "" {
		r.fallback = name
	}
}

// Descriptor fetches a descriptor by category name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.icons[normalize(name)]
	return descriptor, ok
}

// Resolve returns the descriptor for a marker category, falling back to the
// registry's fallback icon when the category is unknown or empty. The second
// return is false only when the fallback itself is missing.
func (r *Registry) Resolve(category string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if descriptor, ok := r.icons[normalize(category)]; ok {
		return descriptor, true
	}
	descriptor, ok := r.icons[r.fallback]
	return descriptor, ok
}

// Names returns a sorted slice of registered category names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.icons))
	for name := range r.icons {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
