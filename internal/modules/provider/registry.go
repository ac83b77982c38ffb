// README: Provider registry; builds fresh agent sessions per comparison.
package provider

import (
	"log"

	"cabnav/internal/automation"
	"cabnav/internal/config"
)

// Registry knows the configured providers and mints a fresh agent
// session for each use. Agents are never shared between concurrent
// comparisons.
type Registry struct {
	profiles []Profile
	executor automation.Executor
	timeouts config.TimeoutConfig
	logger   *log.Logger
}

// NewRegistry builds a registry over the given profiles, in order.
// Profile order is the configured provider order used for tie-breaks.
func NewRegistry(profiles []Profile, executor automation.Executor, timeouts config.TimeoutConfig, logger *log.Logger) *Registry {
	if len(profiles) == 0 {
		profiles = DefaultProfiles
	}
	return &Registry{profiles: profiles, executor: executor, timeouts: timeouts, logger: logger}
}

// Names returns the provider keys in configured order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.profiles))
	for i, p := range r.profiles {
		names[i] = p.Name
	}
	return names
}

// New returns a fresh closed session for the named provider, or false
// when the provider is not configured.
func (r *Registry) New(name string) (Agent, bool) {
	for _, p := range r.profiles {
		if p.Name == name {
			return NewAppAgent(p, r.executor, r.timeouts, r.logger), true
		}
	}
	return nil, false
}
