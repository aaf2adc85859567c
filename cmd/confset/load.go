// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/confset-go/confset"
	"github.com/confset-go/confset/schema"
)

// loadInput reads the configuration set and the optional schema named by
// the persistent flags. The schema return value is nil when no schema
// path was given.
func (f *rootFlags) loadInput() ([]confset.Entry, *schema.Schema, error) {
	if f.configsPath == "" {
		return nil, nil, errors.New("a configuration set file is required, see --configs")
	}

	entries, err := f.parseEntries(openFile(f.configsPath))
	if err != nil {
		return nil, nil, err
	}

	if f.schemaPath == "" {
		return entries, nil, nil
	}

	s, err := f.parseSchema(openFile(f.schemaPath))
	if err != nil {
		return nil, nil, err
	}
	return entries, s, nil
}

// loadManager builds a fully validated Manager with the given active
// configuration. An empty active name selects the first entry.
func (f *rootFlags) loadManager(active string) (*confset.Manager, error) {
	entries, s, err := f.loadInput()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("the configuration set is empty")
	}
	if active == "" {
		active = entries[0].Name
	}

	var opts []confset.Option
	if s != nil {
		opts = append(opts, confset.WithSchema(s))
	}
	return confset.New(entries, active, opts...)
}

func (f *rootFlags) parseEntries(r io.Reader) ([]confset.Entry, error) {
	if f.yaml {
		return confset.ParseYAML(r)
	}
	return confset.ParseJSON(r)
}

func (f *rootFlags) parseSchema(r io.Reader) (_ *schema.Schema, err error) {
	defer func() {
		if c, ok := r.(io.Closer); ok {
			cerr := c.Close()
			if err == nil {
				err = cerr
			}
		}
	}()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if f.yaml {
		return schema.ParseYAML(b)
	}
	return schema.Parse(b)
}

func openFile(path string) io.Reader {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return confset.NewFileReader(os.DirFS(dir), file)
}
