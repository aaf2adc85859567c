// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package confset is a runtime store of named, schema validated
// configuration sets with hierarchical settings, switchable at runtime.
//
// The package is built around two types:
//
//   - Settings: an immutable tree holding one configuration's data
//   - Manager: a named collection of Settings trees, one of which is active
//
// # Basic Usage
//
// Construct a Manager from in-memory entries and query the active tree:
//
//	m, err := confset.New([]confset.Entry{
//	    {Name: "staging", Settings: map[string]any{"enabled": true, "limit": 10}},
//	    {Name: "production", Settings: map[string]any{"enabled": false, "limit": 100}},
//	}, "staging")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	limit, err := m.GetSetting("limit") // 10
//
// Nested settings resolve through a multi key path:
//
//	v, err := m.GetSetting("database", "pool", "size")
//
// Switch the active configuration at any time:
//
//	err = m.SetActiveConfiguration("production")
//
// # Schema Validation
//
// A schema describes the exact shape a settings tree must have. Schemas
// are closed: every declared key is required and undeclared keys are
// rejected, at every nesting level.
//
//	s, err := schema.Parse([]byte(`{
//	    "enabled": {"type": "bool"},
//	    "limit":   {"type": "int"},
//	    "note":    {"type": ["string", "null"]}
//	}`))
//	m, err := confset.New(entries, "staging", confset.WithSchema(s))
//
// Validation is all or nothing: construction either yields a fully
// validated Manager or no Manager at all.
//
// # Serialized Input
//
// FromJSON and FromYAML build a Manager directly from serialized text, for
// callers which load configuration files or fetch configuration remotely:
//
//	m, err := confset.FromJSON(configsFile, schemaFile, "staging")
//
// The package performs no I/O of its own beyond draining the readers it
// is handed.
package confset
