package providers

import (
	"fmt"
	"sync"
)

// Registry manages provider instances and selects the active one by name.
type Registry struct {
	mu sync.RWMutex

	providers map[ProviderType]Provider
	default_  ProviderType
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[ProviderType]Provider),
	}
}

// Register adds a provider. The first registered provider becomes the
// default. Providers with checkable configuration are validated here so
// configuration errors fail at startup.
func (r *Registry) Register(providerType ProviderType, provider Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := provider.(ProviderValidator); ok {
		if err := v.ValidateConfig(); err != nil {
			return fmt.Errorf("invalid provider config for %s: %w", providerType, err)
		}
	}

	r.providers[providerType] = provider

	if len(r.providers) == 1 {
		r.default_ = providerType
	}
	return nil
}

// Get returns the provider registered under providerType.
func (r *Registry) Get(providerType ProviderType) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[providerType]
	if !ok {
		return nil, fmt.Errorf("provider %s not registered", providerType)
	}
	return p, nil
}

// Default returns the default provider.
func (r *Registry) Default() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.default_ == "" {
		return nil, fmt.Errorf("no providers registered")
	}
	return r.providers[r.default_], nil
}

// SetDefault selects the default provider.
func (r *Registry) SetDefault(providerType ProviderType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[providerType]; !ok {
		return fmt.Errorf("provider %s not registered", providerType)
	}
	r.default_ = providerType
	return nil
}
