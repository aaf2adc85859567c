// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confset

import (
	"fmt"
	"strings"

	"github.com/confset-go/confset/schema"
)

// ParseError occurs when serialized configuration input is not well formed.
// It is reported before any schema validation takes place.
type ParseError struct {
	Cause error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse configuration input: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ParseError) Unwrap() error {
	return e.Cause
}

// DuplicateNameError occurs when two configuration entries share a name.
type DuplicateNameError struct {
	Name string
}

// Error implements the error interface.
func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("configuration %q already exists", e.Name)
}

// UnknownConfigurationError occurs when the requested configuration name
// does not match any loaded entry.
type UnknownConfigurationError struct {
	Name string
}

// Error implements the error interface.
func (e UnknownConfigurationError) Error() string {
	return fmt.Sprintf("configuration %q undefined", e.Name)
}

// SchemaValidationError occurs when a configuration's settings do not
// conform to the schema supplied at construction time. It carries the
// offending configuration name and every violation found in its tree.
type SchemaValidationError struct {
	Config     string
	Violations []schema.Violation
}

// Error implements the error interface.
func (e SchemaValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("configuration %q does not conform to the schema: %s", e.Config, strings.Join(msgs, "; "))
}

// InvalidValueError occurs when a configuration holds a value outside of
// the settings data model, for example a sequence.
type InvalidValueError struct {
	Config string
	Path   string
	Value  any
}

// Error implements the error interface.
func (e InvalidValueError) Error() string {
	if e.Config == "" {
		return fmt.Sprintf("setting %q holds an unsupported value of type %T", e.Path, e.Value)
	}
	return fmt.Sprintf("configuration %q: setting %q holds an unsupported value of type %T", e.Config, e.Path, e.Value)
}

// NotFoundError occurs when a lookup references a key which is absent
// from the tree it is resolved against.
type NotFoundError struct {
	// Key is the absent key itself.
	Key string

	// Path is the dotted path up to and including Key.
	Path string

	// Available lists the keys present at the level Key was looked up in.
	Available []string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("setting %q could not be found amongst %v", e.Path, e.Available)
}

// TypeMismatchError occurs when a lookup path descends into a value
// which is not a nested settings object.
type TypeMismatchError struct {
	// Path is the dotted path to the scalar the lookup tried to descend into.
	Path string

	// Value is the scalar found at Path.
	Value any
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("setting %q does not resolve to a nested object: got %s", e.Path, schema.TypeName(e.Value))
}

// EmptyKeyPathError occurs when a lookup is attempted with no keys at all.
type EmptyKeyPathError struct{}

// Error implements the error interface.
func (e EmptyKeyPathError) Error() string {
	return "no keys were provided for the lookup"
}
