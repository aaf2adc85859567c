// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confset

import (
	"errors"

	"github.com/confset-go/confset/schema"
)

// Entry pairs a unique configuration name with its raw settings mapping.
type Entry struct {
	Name     string
	Settings map[string]any
}

// Option configures optional Manager construction behavior.
type Option func(*managerOptions)

type managerOptions struct {
	schema *schema.Schema
}

// WithSchema validates every configuration entry against the given schema
// before the Manager is constructed. Construction fails on the first
// non-conforming entry with a SchemaValidationError naming it.
func WithSchema(s *schema.Schema) Option {
	return func(mo *managerOptions) {
		mo.schema = s
	}
}

// Manager owns a named collection of immutable Settings trees, tracks
// which one is active and answers lookups against the active tree.
//
// Construction is all or nothing: either every entry validates and a fully
// loaded Manager is returned, or no Manager is produced at all.
//
// A Manager itself carries no synchronization. SetActiveConfiguration
// writes the active name and lookups read it, so switching concurrently
// with lookups requires external locking by the caller. The Settings
// trees are immutable and safe to share without locking.
type Manager struct {
	schema  *schema.Schema
	names   []string
	configs map[string]*Settings
	active  string
}

// New constructs a Manager from in-memory configuration entries. The
// initial name must match one of the entries; it becomes the active
// configuration.
func New(entries []Entry, initial string, opts ...Option) (*Manager, error) {
	var mo managerOptions
	for _, opt := range opts {
		opt(&mo)
	}

	// Validation runs over the whole batch before any entry is accepted.
	if mo.schema != nil {
		for _, e := range entries {
			if vs := mo.schema.Validate(e.Settings); len(vs) > 0 {
				return nil, SchemaValidationError{Config: e.Name, Violations: vs}
			}
		}
	}

	m := &Manager{
		schema:  mo.schema,
		names:   make([]string, 0, len(entries)),
		configs: make(map[string]*Settings, len(entries)),
	}
	for _, e := range entries {
		if _, ok := m.configs[e.Name]; ok {
			return nil, DuplicateNameError{Name: e.Name}
		}

		s, err := newSettings(e.Settings)
		if err != nil {
			var ive InvalidValueError
			if errors.As(err, &ive) {
				ive.Config = e.Name
				return nil, ive
			}
			return nil, err
		}
		m.names = append(m.names, e.Name)
		m.configs[e.Name] = s
	}

	if _, ok := m.configs[initial]; !ok {
		return nil, UnknownConfigurationError{Name: initial}
	}
	m.active = initial
	return m, nil
}

// GetSetting resolves a key path against the active configuration. See
// [Settings.Get] for the path semantics and failure modes.
func (m *Manager) GetSetting(keys ...string) (any, error) {
	return m.configs[m.active].Get(keys...)
}

// SetActiveConfiguration switches which configuration answers lookups.
// On failure the previously active configuration remains active.
func (m *Manager) SetActiveConfiguration(name string) error {
	if _, ok := m.configs[name]; !ok {
		return UnknownConfigurationError{Name: name}
	}
	m.active = name
	return nil
}

// ActiveConfiguration returns the name of the active configuration.
func (m *Manager) ActiveConfiguration() string {
	return m.active
}

// Configuration returns the Settings tree loaded under the given name.
func (m *Manager) Configuration(name string) (*Settings, error) {
	s, ok := m.configs[name]
	if !ok {
		return nil, UnknownConfigurationError{Name: name}
	}
	return s, nil
}

// Schema returns the schema supplied at load time, or nil when none was.
func (m *Manager) Schema() *schema.Schema {
	return m.schema
}

// ConfigurationNames returns the loaded names in insertion order.
func (m *Manager) ConfigurationNames() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}
