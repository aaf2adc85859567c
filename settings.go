// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confset

import (
	"sort"
	"strings"
)

// Settings holds one configuration's data as a tree of values. A value is
// either a scalar (bool, int64, float64, string), nil or a nested *Settings.
// Sequences are not part of the data model and are rejected at load time.
//
// A Settings instance is immutable once constructed and is therefore safe
// to share across goroutines without locking.
type Settings struct {
	values map[string]any
}

// newSettings wraps a plain key/value mapping into an immutable tree.
// Nested maps are converted recursively so the input mapping can be
// mutated by the caller afterwards without affecting the tree.
func newSettings(m map[string]any) (*Settings, error) {
	return buildSettings("", m)
}

func buildSettings(path string, m map[string]any) (*Settings, error) {
	values := make(map[string]any, len(m))
	for k, v := range m {
		nv, err := normalizeValue(childPath(path, k), v)
		if err != nil {
			return nil, err
		}
		values[k] = nv
	}
	return &Settings{values: values}, nil
}

func normalizeValue(path string, v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case bool, string, int64, float64:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case float32:
		return float64(x), nil
	case map[string]any:
		return buildSettings(path, x)
	default:
		return nil, InvalidValueError{Path: path, Value: v}
	}
}

// Get resolves a sequence of keys by descending into nested settings in
// order. Every intermediate key must resolve to a nested *Settings or Get
// fails with a TypeMismatchError. The final key must exist or Get fails
// with a NotFoundError.
//
// The result is either a terminal scalar (or nil) or a nested *Settings
// which can be queried the same way, so
//
//	s.Get("a", "b")
//
// and
//
//	sub, _ := s.Get("a")
//	sub.(*Settings).Get("b")
//
// yield identical results.
func (s *Settings) Get(keys ...string) (any, error) {
	if len(keys) == 0 {
		return nil, EmptyKeyPathError{}
	}

	cur := s
	for i, k := range keys {
		v, ok := cur.values[k]
		if !ok {
			return nil, NotFoundError{
				Key:       k,
				Path:      strings.Join(keys[:i+1], "."),
				Available: cur.Keys(),
			}
		}
		if i == len(keys)-1 {
			return v, nil
		}

		sub, ok := v.(*Settings)
		if !ok {
			return nil, TypeMismatchError{
				Path:  strings.Join(keys[:i+1], "."),
				Value: v,
			}
		}
		cur = sub
	}
	// unreachable: the loop always returns on the final key
	return nil, EmptyKeyPathError{}
}

// Keys returns the top level keys of this tree in lexical order.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of top level keys.
func (s *Settings) Len() int {
	return len(s.values)
}

// Map returns a deep copy of the tree as plain nested maps. Mutating the
// returned map does not affect the Settings instance.
func (s *Settings) Map() map[string]any {
	m := make(map[string]any, len(s.values))
	for k, v := range s.values {
		if sub, ok := v.(*Settings); ok {
			m[k] = sub.Map()
			continue
		}
		m[k] = v
	}
	return m
}

func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
