// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import "fmt"

// ViolationKind classifies how a settings tree diverged from its schema.
type ViolationKind string

const (
	// MissingKey means a schema declared key is absent from the tree.
	MissingKey ViolationKind = "missing key"

	// ExtraKey means the tree holds a key the schema does not declare.
	ExtraKey ViolationKind = "extra key"

	// TypeMismatch means a key holds a value of the wrong type, including
	// a scalar where a nested object was declared and vice versa.
	TypeMismatch ViolationKind = "type mismatch"
)

// Violation is a single divergence between a settings tree and a schema,
// located by the dotted path to the offending key.
type Violation struct {
	Kind     ViolationKind
	Path     string
	Expected string
	Got      any
}

// Error implements the error interface.
func (v Violation) Error() string {
	switch v.Kind {
	case MissingKey:
		return fmt.Sprintf("%s: required key is missing", v.Path)
	case ExtraKey:
		return fmt.Sprintf("%s: key is not declared in the schema", v.Path)
	default:
		return fmt.Sprintf("%s: expected %s, got %s", v.Path, v.Expected, TypeName(v.Got))
	}
}

// TypeName reports the settings data model name for a value, falling back
// to the Go type for values outside of the model.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return "int"
	case float32, float64:
		return "float"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
