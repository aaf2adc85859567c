// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confset

import (
	"fmt"
	"io"

	"github.com/confset-go/confset/internal/try"
	"github.com/confset-go/confset/schema"

	"gopkg.in/yaml.v3"
)

// FromYAML is the YAML counterpart of [FromJSON]:
//
//	- name: staging
//	  settings:
//	    enabled: true
//	    limit: 10
//
// schemaSrc, when given, is parsed as YAML with the same declaration shape
// as a JSON schema document.
func FromYAML(configs io.Reader, schemaSrc io.Reader, initial string) (_ *Manager, err error) {
	defer try.Close(&err, schemaSrc)

	entries, err := ParseYAML(configs)
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
		s, err = schema.ParseYAML(sb)
		if err != nil {
			return nil, ParseError{Cause: err}
		}
		opts = append(opts, WithSchema(s))
	}
	return New(entries, initial, opts...)
}

// ParseYAML deserializes a sequence of configuration entries from YAML
// text without constructing a Manager.
func ParseYAML(r io.Reader) (_ []Entry, err error) {
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var docs []entryDoc
	if err := yaml.Unmarshal(b, &docs); err != nil {
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
			Settings: d.Settings,
		}
	}
	return entries, nil
}
