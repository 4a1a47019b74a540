// Package errdefer provides functions for running operations
// that must be deferred until the end of a function,
// but which may return errors that should be returned from the function.
//
// All functions here expect a pointer to a named error return.
package errdefer

import (
	"errors"
	"io"
	"os"
)

// Close calls Close on the given Closer,
// and joins any error returned with the given error.
//
// Use it inside a defer statement with a named return.
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}

// Remove deletes the file at path if the function is returning an error.
// Use it to avoid leaving partially written files behind.
//
// Failure to delete the file is joined into the error.
func Remove(err *error, path string) {
	if *err == nil {
		return
	}

	if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		*err = errors.Join(*err, rmErr)
	}
}
