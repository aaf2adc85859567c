// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import "sort"

// Validate walks the schema and the candidate settings tree in lockstep
// and returns every divergence found. A nil or empty result means the tree
// conforms. Validation is a pure function of its inputs: no state is kept
// and the candidate is never modified.
func (s *Schema) Validate(settings map[string]any) []Violation {
	var vs []Violation
	validateFields("", s.Fields, settings, &vs)
	return vs
}

func validateFields(path string, fields map[string]*Field, values map[string]any, vs *[]Violation) {
	for _, name := range sortedKeys(fields) {
		f := fields[name]
		p := join(path, name)

		v, ok := values[name]
		if !ok {
			*vs = append(*vs, Violation{Kind: MissingKey, Path: p, Expected: f.expects()})
			continue
		}
		validateField(p, f, v, vs)
	}

	for _, name := range sortedKeys(values) {
		if _, ok := fields[name]; ok {
			continue
		}
		*vs = append(*vs, Violation{Kind: ExtraKey, Path: join(path, name), Got: values[name]})
	}
}

func validateField(path string, f *Field, v any, vs *[]Violation) {
	if f.Fields != nil {
		m, ok := v.(map[string]any)
		if !ok {
			*vs = append(*vs, Violation{Kind: TypeMismatch, Path: path, Expected: "object", Got: v})
			return
		}
		validateFields(path, f.Fields, m, vs)
		return
	}

	if !f.Type.matches(v) {
		*vs = append(*vs, Violation{Kind: TypeMismatch, Path: path, Expected: f.Type.String(), Got: v})
	}
}

func (f *Field) expects() string {
	if f.Fields != nil {
		return "object"
	}
	return f.Type.String()
}

// matches reports whether the value's type is one of the declared types.
// Null only matches when it is explicitly declared. An integral value
// satisfies a float declaration, a fractional value never satisfies an
// int declaration.
func (ts TypeSet) matches(v any) bool {
	switch v.(type) {
	case nil:
		return ts.Is(Null)
	case bool:
		return ts.Is(Bool)
	case string:
		return ts.Is(String)
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return ts.Is(Int) || ts.Is(Float)
	case float32, float64:
		return ts.Is(Float)
	default:
		return false
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
