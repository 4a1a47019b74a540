package highlight

import (
	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// MoveLexer is a [Lexer] that recognizes Move.
// Adjacent tokens of the same type are merged.
var MoveLexer Lexer = &chromaLexer{l: chroma.Coalesce(_move)}

// Lexer analyzes source code and generates a stream of tokens.
// Text the lexer does not recognize is reported as [chroma.Error] tokens.
type Lexer interface {
	Lex(src []byte) ([]chroma.Token, error)
}

// Invalid returns the tokens of src that a code block labeled lang
// would not recognize.
// Only Move is checked; other languages report nothing.
func Invalid(lang string, src []byte) ([]chroma.Token, error) {
	if l := lexers.Get(lang); l == nil || l.Config().Name != _move.Config().Name {
		return nil, nil
	}

	tokens, err := MoveLexer.Lex(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var invalid []chroma.Token
	for _, tok := range tokens {
		if tok.Type == chroma.Error {
			invalid = append(invalid, tok)
		}
	}
	return invalid, nil
}

// chromaLexer builds a [Lexer] from a Chroma lexer.
type chromaLexer struct{ l chroma.Lexer }

// Lex lexically analyzes the given source code using Chroma.
func (cl *chromaLexer) Lex(src []byte) ([]chroma.Token, error) {
	return errtrace.Wrap2(chroma.Tokenise(cl.l, nil, string(src)))
}

// Mismatch reports whether a code block labeled with lang
// is known to hold a different language than the named file.
//
// It reports false if either language is unknown to Chroma,
// or if lang is plain text.
func Mismatch(lang, filename string) bool {
	want := lexers.Get(lang)
	got := lexers.Match(filename)
	if want == nil || got == nil {
		return false
	}

	name := want.Config().Name
	if name == _plaintext {
		return false
	}
	return name != got.Config().Name
}

// Name of Chroma's plain text lexer.
const _plaintext = "plaintext"
