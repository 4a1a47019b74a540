// Package iotest provides io helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

var _newline = []byte("\n")

// Writer builds an io.Writer that writes to the given testing.TB.
// Each line written is reported with a separate t.Logf call.
func Writer(t testing.TB) io.Writer {
	return &writer{t}
}

type writer struct{ t testing.TB }

func (w *writer) Write(b []byte) (int, error) {
	w.t.Helper()

	for _, line := range bytes.Split(bytes.TrimSuffix(b, _newline), _newline) {
		w.t.Logf("%s", line)
	}
	return len(b), nil
}
