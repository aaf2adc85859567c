// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confset

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/confset-go/confset/internal/try"
	"github.com/confset-go/confset/schema"
)

// FromJSON constructs a Manager from serialized JSON input. The configs
// reader must yield a sequence of objects each carrying a "name" string
// and a "settings" object:
//
//	[
//	  {"name": "staging", "settings": {"enabled": true, "limit": 10}},
//	  {"name": "production", "settings": {"enabled": false, "limit": 100}}
//	]
//
// schemaSrc may be nil, in which case no schema validation is performed.
// Readers which are also io.Closers are closed before returning. Malformed
// input fails with a ParseError, independent of schema validation.
func FromJSON(configs io.Reader, schemaSrc io.Reader, initial string) (_ *Manager, err error) {
	defer try.Close(&err, schemaSrc)

	entries, err := ParseJSON(configs)
	if err != nil {
		return nil, err
	}

	var opts []Option
	if schemaSrc != nil {
		var sb []byte
		sb, err = io.ReadAll(schemaSrc)
		if err != nil {
			return nil, err
		}
		var s *schema.Schema
		s, err = schema.Parse(sb)
		if err != nil {
			return nil, ParseError{Cause: err}
		}
		opts = append(opts, WithSchema(s))
	}
	return New(entries, initial, opts...)
}

// ParseJSON deserializes a sequence of configuration entries from JSON
// text without constructing a Manager. Numbers with an integral lexeme
// decode as int64, all others as float64.
func ParseJSON(r io.Reader) (_ []Entry, err error) {
	defer try.Close(&err, r)

	dec := json.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var docs []entryDoc
	if err := dec.Decode(&docs); err != nil {
		return nil, ParseError{Cause: err}
	}

	entries := make([]Entry, len(docs))
	for i, d := range docs {
		if d.Name == nil {
			return nil, ParseError{Cause: fmt.Errorf("configuration at index %d is missing a name", i)}
		}
		if d.Settings == nil {
			return nil, ParseError{Cause: fmt.Errorf("configuration %q is missing settings", *d.Name)}
		}
		entries[i] = Entry{
			Name:     *d.Name,
			Settings: normalizeNumbers(d.Settings),
		}
	}
	return entries, nil
}

type entryDoc struct {
	Name     *string        `json:"name" yaml:"name"`
	Settings map[string]any `json:"settings" yaml:"settings"`
}

func normalizeNumbers(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeNumber(v)
	}
	return m
}

func normalizeNumber(v any) any {
	switch x := v.(type) {
	case json.Number:
		if !strings.ContainsAny(x.String(), ".eE") {
			if n, err := x.Int64(); err == nil {
				return n
			}
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case map[string]any:
		return normalizeNumbers(x)
	case []any:
		for i := range x {
			x[i] = normalizeNumber(x[i])
		}
		return x
	default:
		return v
	}
}
