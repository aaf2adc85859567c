// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confset

import (
	"io"
	"io/fs"
	"sync"
)

// FileReader is an io.Reader over a configuration file which defers
// opening until the first Read. It also implements io.Closer, so readers
// handed to [FromJSON] or [FromYAML] are closed for the caller.
type FileReader struct {
	path string

	openOnce sync.Once
	fsys     fs.FS
	file     io.ReadCloser
}

// NewFileReader configures a FileReader for the given path within fsys.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{
		path: path,
		fsys: fsys,
	}
}

// Read implements the io.Reader interface.
func (r *FileReader) Read(b []byte) (int, error) {
	var err error
	r.openOnce.Do(func() {
		r.file, err = r.fsys.Open(r.path)
	})
	if err != nil {
		return 0, err
	}
	if r.file == nil {
		return 0, fs.ErrClosed
	}
	return r.file.Read(b)
}

// Close implements the io.Closer interface.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}
