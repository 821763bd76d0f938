package locate

import (
	"slices"

	"github.com/fwojciec/locmap"
)

// Factory creates a provider.
type Factory func() locmap.Provider

// Registry maps provider names to factories so providers can be chosen by
// configuration.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name, replacing any previous one.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Names returns all registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Providers creates the providers registered under names, in the given order.
// Returns *locmap.ProviderNotSupportedError for the first unknown name.
func (r *Registry) Providers(names []string) ([]locmap.Provider, error) {
	providers := make([]locmap.Provider, 0, len(names))
	for _, name := range names {
		factory, ok := r.factories[name]
		if !ok {
			return nil, &locmap.ProviderNotSupportedError{Name: name}
		}
		providers = append(providers, factory())
	}
	return providers, nil
}
