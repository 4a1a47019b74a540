// Package flagvalue holds flag.Value types for anchorcode's flags
// that the flag package does not provide.
package flagvalue

import (
	"flag"
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// valuePtr is satisfied by *T when *T is a [flag.Getter].
type valuePtr[T any] interface {
	*T
	flag.Getter
}

// List collects every occurrence of a repeatable flag,
// like -sidebar or -exclude, in the order given.
// Lines of a config file count as occurrences too.
type List[T any, P valuePtr[T]] []T

// ListOf returns a [flag.Getter] that appends to *vs
// each time the flag is set.
//
//	flag.Var(flagvalue.ListOf(&p.Excludes), "exclude", "")
func ListOf[T any, P valuePtr[T]](vs *[]T) *List[T, P] {
	return (*List[T, P])(vs)
}

// Get returns the collected values as a []T.
func (l *List[T, P]) Get() any { return []T(*l) }

// String lists the collected values separated by commas.
func (l *List[T, P]) String() string {
	items := make([]string, len(*l))
	for i, v := range *l {
		items[i] = fmt.Sprint(P(&v))
	}
	return strings.Join(items, ", ")
}

// Set parses s with T's Set method and appends the result.
// Nothing is appended if s is invalid.
func (l *List[T, P]) Set(s string) error {
	var v T
	if err := P(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*l = append(*l, v)
	return nil
}
