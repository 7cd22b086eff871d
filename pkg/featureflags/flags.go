// ABOUTME: Feature flag management for toggling ingestion sources
// ABOUTME: Provides interface-based feature toggling with env and static backends

package featureflags

import (
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags. Source flags default to enabled and exist so a
// misbehaving source can be switched off without a redeploy.
const (
	// SourceHackerNews enables the Hacker News adapter
	SourceHackerNews FeatureFlag = "source_hacker_news"

	// SourceGitHub enables the GitHub adapter
	SourceGitHub FeatureFlag = "source_github"

	// SourceDevTo enables the Dev.to adapter
	SourceDevTo FeatureFlag = "source_devto"

	// SourceArXiv enables the arXiv adapter
	SourceArXiv FeatureFlag = "source_arxiv"

	// SourceLobsters enables the Lobsters adapter
	SourceLobsters FeatureFlag = "source_lobsters"
)

// defaultStates holds the built-in state of every defined flag.
var defaultStates = map[FeatureFlag]bool{
	SourceHackerNews: true,
	SourceGitHub:     true,
	SourceDevTo:      true,
	SourceArXiv:      true,
	SourceLobsters:   true,
}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all defined flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables. An unset
// variable leaves the flag at its built-in default.
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *EnvManager) IsEnabled(flag FeatureFlag) bool {
	m.mu.RLock()
	if enabled, ok := m.overrides[flag]; ok {
		m.mu.RUnlock()
		return enabled
	}
	m.mu.RUnlock()

	envKey := m.prefix + strings.ToUpper(string(flag))
	switch strings.ToLower(os.Getenv(envKey)) {
	case "true", "1", "enabled":
		return true
	case "false", "0", "disabled":
		return false
	}

	return defaultStates[flag]
}

// SetEnabled sets a feature flag's state (mainly for testing)
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	flags := make(map[FeatureFlag]bool, len(defaultStates))
	for flag := range defaultStates {
		flags[flag] = m.IsEnabled(flag)
	}
	return flags
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	if flags == nil {
		flags = make(map[FeatureFlag]bool)
	}
	return &StaticManager{
		flags: flags,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns all flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool)
	for k, v := range m.flags {
		result[k] = v
	}
	return result
}
