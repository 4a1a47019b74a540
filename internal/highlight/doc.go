// Package highlight teaches Chroma the Move language
// and answers questions about the languages of source files.
//
// Importing this package registers the Move lexer
// with Chroma's global registry,
// so lexers.Get("move") and lexers.Match("sources/lib.move") find it.
package highlight
