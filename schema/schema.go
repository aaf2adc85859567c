// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schema describes the structural contract a settings tree must
// satisfy: which keys exist, which primitive type each key holds and, for
// nested objects, the same contract recursively. Schemas are closed, a key
// not declared at a level is a violation at that level.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Type is the tag for a primitive setting type.
type Type string

const (
	Bool   Type = "bool"
	Int    Type = "int"
	Float  Type = "float"
	String Type = "string"
	Null   Type = "null"
)

func (t Type) valid() bool {
	switch t {
	case Bool, Int, Float, String, Null:
		return true
	default:
		return false
	}
}

// UnknownTypeError occurs when a schema declares a type tag outside of
// bool, int, float, string and null.
type UnknownTypeError struct {
	Tag string
}

// Error implements the error interface.
func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type tag: %q", e.Tag)
}

// TypeSet is the set of types a key accepts. Declaring more than one type
// is how a key is marked nullable:
//
//	{"note": {"type": ["string", "null"]}}
type TypeSet []Type

// Is reports whether the set contains the given type.
func (ts TypeSet) Is(t Type) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}

// String returns a human readable form, e.g. "string or null".
func (ts TypeSet) String() string {
	switch len(ts) {
	case 0:
		return "none"
	case 1:
		return string(ts[0])
	}
	var buf bytes.Buffer
	for i, t := range ts {
		if i > 0 {
			buf.WriteString(" or ")
		}
		buf.WriteString(string(t))
	}
	return buf.String()
}

// UnmarshalJSON accepts both a single type tag and an array of tags.
func (ts *TypeSet) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		t := Type(single)
		if !t.valid() {
			return UnknownTypeError{Tag: single}
		}
		*ts = TypeSet{t}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("type must be a string or an array of strings: %w", err)
	}
	set := make(TypeSet, len(many))
	for i, s := range many {
		t := Type(s)
		if !t.valid() {
			return UnknownTypeError{Tag: s}
		}
		set[i] = t
	}
	*ts = set
	return nil
}

// MarshalJSON emits a single tag as a string and multiple tags as an array.
func (ts TypeSet) MarshalJSON() ([]byte, error) {
	if len(ts) == 1 {
		return json.Marshal(string(ts[0]))
	}
	return json.Marshal([]Type(ts))
}

// Field declares what a single key may hold: either a set of primitive
// types or, when Fields is non-nil, a nested object with its own closed
// set of declared keys.
type Field struct {
	Type   TypeSet
	Fields map[string]*Field
}

// Leaf declares a key holding one of the given primitive types.
func Leaf(types ...Type) *Field {
	return &Field{Type: TypeSet(types)}
}

// Object declares a key holding a nested object with the given fields.
func Object(fields map[string]*Field) *Field {
	if fields == nil {
		fields = make(map[string]*Field)
	}
	return &Field{Fields: fields}
}

// UnmarshalJSON distinguishes a type declaration from a nested object by
// shape: an object whose "type" key holds a string or an array of strings
// is a declaration, any other object recurses as a nested schema. A nested
// key literally named "type" therefore remains expressible:
//
//	{"type": {"type": "string"}}
func (f *Field) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("schema field must be an object: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("schema field must be an object, not null")
	}

	if t, ok := raw["type"]; ok && isTypeDecl(t) {
		if len(raw) > 1 {
			return fmt.Errorf("type declaration must not carry keys other than %q", "type")
		}
		return json.Unmarshal(t, &f.Type)
	}

	fields := make(map[string]*Field, len(raw))
	for k, v := range raw {
		sub := new(Field)
		if err := json.Unmarshal(v, sub); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		fields[k] = sub
	}
	f.Fields = fields
	return nil
}

// MarshalJSON is the inverse of [Field.UnmarshalJSON].
func (f *Field) MarshalJSON() ([]byte, error) {
	if f.Fields == nil {
		return json.Marshal(struct {
			Type TypeSet `json:"type"`
		}{Type: f.Type})
	}
	return json.Marshal(f.Fields)
}

func isTypeDecl(b json.RawMessage) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '"', '[':
			return true
		default:
			return false
		}
	}
	return false
}

// Schema is the contract for a whole settings tree. Its shape mirrors the
// shape of a compliant tree.
type Schema struct {
	Fields map[string]*Field
}

// New constructs a schema from declared fields.
func New(fields map[string]*Field) *Schema {
	if fields == nil {
		fields = make(map[string]*Field)
	}
	return &Schema{Fields: fields}
}

// Parse parses a schema from JSON text.
func Parse(b []byte) (*Schema, error) {
	s := new(Schema)
	if err := json.Unmarshal(b, s); err != nil {
		return nil, err
	}
	return s, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Schema) UnmarshalJSON(b []byte) error {
	var fields map[string]*Field
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	if fields == nil {
		fields = make(map[string]*Field)
	}
	s.Fields = fields
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Fields)
}
