// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a schema from YAML text. The YAML document is decoded
// into generic form and re-encoded as JSON so that the declaration shape
// rules of [Parse] apply unchanged.
func ParseYAML(b []byte) (*Schema, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, err
	}

	jb, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return Parse(jb)
}
