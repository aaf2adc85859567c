// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confset

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/confset-go/confset/schema"

	"github.com/stretchr/testify/require"
)

const configsJSON = `[
	{"name": "staging", "settings": {"enabled": true, "limit": 10, "ratio": 0.5, "db": {"host": "stg.local"}}},
	{"name": "production", "settings": {"enabled": false, "limit": 100, "ratio": 1.0, "db": {"host": "prod.local"}}}
]`

const schemaJSON = `{
	"enabled": {"type": "bool"},
	"limit": {"type": "int"},
	"ratio": {"type": "float"},
	"db": {"host": {"type": "string"}}
}`

func TestFromJSON(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the configurations text is malformed", func(t *testing.T) {
			_, err := FromJSON(strings.NewReader(`[{"name":`), nil, "staging")

			var pe ParseError
			require.ErrorAs(t, err, &pe)
		})

		t.Run("if an entry is missing its name", func(t *testing.T) {
			_, err := FromJSON(strings.NewReader(`[{"settings": {}}]`), nil, "staging")

			var pe ParseError
			require.ErrorAs(t, err, &pe)
		})

		t.Run("if an entry is missing its settings", func(t *testing.T) {
			_, err := FromJSON(strings.NewReader(`[{"name": "staging"}]`), nil, "staging")

			var pe ParseError
			require.ErrorAs(t, err, &pe)
		})

		t.Run("if an entry carries undeclared fields", func(t *testing.T) {
			_, err := FromJSON(strings.NewReader(`[{"name": "staging", "settings": {}, "oops": 1}]`), nil, "staging")

			var pe ParseError
			require.ErrorAs(t, err, &pe)
		})

		t.Run("if the schema text is malformed", func(t *testing.T) {
			_, err := FromJSON(strings.NewReader(configsJSON), strings.NewReader(`{"x":`), "staging")

			var pe ParseError
			require.ErrorAs(t, err, &pe)
		})

		t.Run("if a configuration fails schema validation", func(t *testing.T) {
			configs := `[{"name": "staging", "settings": {"enabled": "yes", "limit": 10, "ratio": 0.5, "db": {"host": "h"}}}]`
			_, err := FromJSON(strings.NewReader(configs), strings.NewReader(schemaJSON), "staging")

			var sve SchemaValidationError
			require.ErrorAs(t, err, &sve)
			require.Equal(t, "staging", sve.Config)
		})
	})

	t.Run("will construct a manager", func(t *testing.T) {
		t.Run("if no schema is supplied", func(t *testing.T) {
			m, err := FromJSON(strings.NewReader(configsJSON), nil, "staging")
			require.NoError(t, err)
			require.Equal(t, []string{"staging", "production"}, m.ConfigurationNames())
			require.Equal(t, "staging", m.ActiveConfiguration())

			v, err := m.GetSetting("db", "host")
			require.NoError(t, err)
			require.Equal(t, "stg.local", v)
		})

		t.Run("if every configuration conforms to the schema", func(t *testing.T) {
			m, err := FromJSON(strings.NewReader(configsJSON), strings.NewReader(schemaJSON), "production")
			require.NoError(t, err)

			v, err := m.GetSetting("limit")
			require.NoError(t, err)
			require.Equal(t, int64(100), v)
		})
	})

	t.Run("will close the readers", func(t *testing.T) {
		t.Run("if they implement io.Closer", func(t *testing.T) {
			configs := &closeRecorder{Reader: strings.NewReader(configsJSON)}
			schemaSrc := &closeRecorder{Reader: strings.NewReader(schemaJSON)}

			_, err := FromJSON(configs, schemaSrc, "staging")
			require.NoError(t, err)
			require.True(t, configs.closed)
			require.True(t, schemaSrc.closed)
		})
	})
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (r *closeRecorder) Close() error {
	r.closed = true
	return nil
}

func TestParseJSON(t *testing.T) {
	t.Run("decodes integral lexemes as int64 and the rest as float64", func(t *testing.T) {
		entries, err := ParseJSON(strings.NewReader(`[
			{"name": "a", "settings": {"i": 10, "f": 10.0, "e": 1e2, "nested": {"n": 3}}}
		]`))
		require.NoError(t, err)
		require.Len(t, entries, 1)

		s := entries[0].Settings
		require.Equal(t, int64(10), s["i"])
		require.Equal(t, 10.0, s["f"])
		require.Equal(t, 100.0, s["e"])
		require.Equal(t, int64(3), s["nested"].(map[string]any)["n"])
	})

	t.Run("preserves entry order", func(t *testing.T) {
		entries, err := ParseJSON(strings.NewReader(`[
			{"name": "c", "settings": {}},
			{"name": "a", "settings": {}},
			{"name": "b", "settings": {}}
		]`))
		require.NoError(t, err)

		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		require.Equal(t, []string{"c", "a", "b"}, names)
	})

	t.Run("accepts empty settings", func(t *testing.T) {
		entries, err := ParseJSON(strings.NewReader(`[{"name": "a", "settings": {}}]`))
		require.NoError(t, err)
		require.Empty(t, entries[0].Settings)
	})

	t.Run("reports the underlying decode failure", func(t *testing.T) {
		_, err := ParseJSON(strings.NewReader(`{"name": "a"}`))

		var pe ParseError
		require.ErrorAs(t, err, &pe)
		require.NotNil(t, errors.Unwrap(pe))
	})
}

func TestFromJSON_SchemaValidatesJSONNumbers(t *testing.T) {
	// A JSON 10 must satisfy "int" while 10.5 must not.
	configs := `[{"name": "a", "settings": {"limit": 10}}]`
	s := `{"limit": {"type": "int"}}`

	m, err := FromJSON(strings.NewReader(configs), strings.NewReader(s), "a")
	require.NoError(t, err)

	v, err := m.GetSetting("limit")
	require.NoError(t, err)
	require.Equal(t, int64(10), v)

	configs = `[{"name": "a", "settings": {"limit": 10.5}}]`
	_, err = FromJSON(strings.NewReader(configs), strings.NewReader(s), "a")

	var sve SchemaValidationError
	require.ErrorAs(t, err, &sve)
	require.Equal(t, schema.TypeMismatch, sve.Violations[0].Kind)
}
