// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettings_Get(t *testing.T) {
	raw := map[string]any{
		"enabled": true,
		"limit":   10,
		"ratio":   0.5,
		"note":    nil,
		"db": map[string]any{
			"host": "localhost",
			"pool": map[string]any{
				"size": 5,
			},
		},
	}

	s, err := newSettings(raw)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		keys        []string
		expected    any
		expectedErr error
	}{
		{
			name:     "returns a top level scalar",
			keys:     []string{"enabled"},
			expected: true,
		},
		{
			name:     "normalizes ints to int64",
			keys:     []string{"limit"},
			expected: int64(10),
		},
		{
			name:     "returns a float",
			keys:     []string{"ratio"},
			expected: 0.5,
		},
		{
			name:     "returns nil for a null setting",
			keys:     []string{"note"},
			expected: nil,
		},
		{
			name:     "resolves a nested path",
			keys:     []string{"db", "pool", "size"},
			expected: int64(5),
		},
		{
			name:        "fails with NotFound for an absent top level key",
			keys:        []string{"missing"},
			expectedErr: NotFoundError{Key: "missing", Path: "missing", Available: []string{"db", "enabled", "limit", "note", "ratio"}},
		},
		{
			name:        "fails with NotFound for an absent nested key",
			keys:        []string{"db", "port"},
			expectedErr: NotFoundError{Key: "port", Path: "db.port", Available: []string{"host", "pool"}},
		},
		{
			name:        "fails with TypeMismatch when descending into a scalar",
			keys:        []string{"db", "host", "oops"},
			expectedErr: TypeMismatchError{Path: "db.host", Value: "localhost"},
		},
		{
			name:        "fails when no keys are given",
			keys:        nil,
			expectedErr: EmptyKeyPathError{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := s.Get(tc.keys...)
			if tc.expectedErr != nil {
				require.Equal(t, tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
		})
	}
}

func TestSettings_Get_NestedObjectsAreQueryable(t *testing.T) {
	s, err := newSettings(map[string]any{
		"a": map[string]any{
			"b": 5,
		},
	})
	require.NoError(t, err)

	v, err := s.Get("a")
	require.NoError(t, err)

	sub, ok := v.(*Settings)
	require.True(t, ok)

	chained, err := sub.Get("b")
	require.NoError(t, err)

	direct, err := s.Get("a", "b")
	require.NoError(t, err)
	require.Equal(t, direct, chained)
	require.Equal(t, int64(5), chained)
}

func TestSettings_ImmutableAfterConstruction(t *testing.T) {
	raw := map[string]any{
		"limit": 10,
		"db": map[string]any{
			"host": "localhost",
		},
	}

	s, err := newSettings(raw)
	require.NoError(t, err)

	// Mutating the input mapping must not leak into the tree.
	raw["limit"] = 99
	raw["db"].(map[string]any)["host"] = "evil"

	v, err := s.Get("limit")
	require.NoError(t, err)
	require.Equal(t, int64(10), v)

	v, err = s.Get("db", "host")
	require.NoError(t, err)
	require.Equal(t, "localhost", v)

	// Mutating the exported copy must not leak either.
	m := s.Map()
	m["limit"] = 1
	m["db"].(map[string]any)["host"] = "other"

	v, err = s.Get("limit")
	require.NoError(t, err)
	require.Equal(t, int64(10), v)
}

func TestSettings_RejectsSequences(t *testing.T) {
	_, err := newSettings(map[string]any{
		"db": map[string]any{
			"replicas": []any{"a", "b"},
		},
	})

	var ive InvalidValueError
	require.ErrorAs(t, err, &ive)
	require.Equal(t, "db.replicas", ive.Path)
}

func TestSettings_KeysAndLen(t *testing.T) {
	s, err := newSettings(map[string]any{
		"b": 1,
		"a": 2,
		"c": map[string]any{},
	})
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b", "c"}, s.Keys())
	require.Equal(t, 3, s.Len())
}

func TestSettings_Map(t *testing.T) {
	s, err := newSettings(map[string]any{
		"enabled": true,
		"db": map[string]any{
			"pool": map[string]any{"size": 5},
		},
	})
	require.NoError(t, err)

	require.Equal(t, map[string]any{
		"enabled": true,
		"db": map[string]any{
			"pool": map[string]any{"size": int64(5)},
		},
	}, s.Map())
}
