package flagvalue

import "flag"

// String is a plain string [flag.Getter].
// Use it with [ListOf] to accept a flag multiple times.
type String string

var _ flag.Getter = (*String)(nil)

// Get returns the string.
func (s *String) Get() any { return string(*s) }

// String returns the string.
func (s *String) String() string { return string(*s) }

// Set stores the given value.
func (s *String) Set(v string) error {
	*s = String(v)
	return nil
}
