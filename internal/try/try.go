// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try helps propagate errors out of deferred cleanup.
package try

import (
	"errors"
	"fmt"
	"io"
)

// CloseError wraps the error returned by an io.Closer during deferred cleanup.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes v if it is an io.Closer and merges any close failure into
// the referenced error. Values which are not closers are ignored, so it is
// safe to defer Close over plain io.Readers.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}

	var merged error = CloseError{Cause: cerr}
	if *err == nil {
		*err = merged
		return
	}
	*err = errors.Join(*err, merged)
}
