package highlight

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

var _move = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      "Move",
		Aliases:   []string{"move"},
		Filenames: []string{"*.move"},
		MimeTypes: []string{"text/x-move"},
		EnsureNL:  true,
	},
	moveRules,
))

func moveRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{`\s+`, chroma.TextWhitespace, nil},
			{`//[^\n]*`, chroma.CommentSingle, nil},
			{`/\*`, chroma.CommentMultiline, chroma.Push("comment")},
			{`#!?\[`, chroma.NameAttribute, chroma.Push("attribute")},

			{`(module)(\s+)(\w+)(::)(\w+)`, chroma.ByGroups(chroma.KeywordNamespace, chroma.TextWhitespace, chroma.NameNamespace, chroma.Punctuation, chroma.NameNamespace), nil},
			{chroma.Words(``, `\b`, `module`, `use`, `friend`), chroma.KeywordNamespace, nil},
			{`(fun)(\s+)([a-zA-Z_]\w*)`, chroma.ByGroups(chroma.KeywordDeclaration, chroma.TextWhitespace, chroma.NameFunction), nil},
			{`(struct|enum)(\s+)([A-Za-z_]\w*)`, chroma.ByGroups(chroma.KeywordDeclaration, chroma.TextWhitespace, chroma.NameClass), nil},
			{chroma.Words(``, `\b`, `fun`, `struct`, `enum`, `const`, `let`, `mut`, `has`, `phantom`, `macro`), chroma.KeywordDeclaration, nil},
			{chroma.Words(``, `\b`, `public`, `package`, `entry`, `native`), chroma.Keyword, nil},
			{chroma.Words(``, `\b`, `abort`, `break`, `continue`, `return`, `as`, `if`, `else`, `loop`, `while`, `match`), chroma.Keyword, nil},
			{chroma.Words(``, `\b`, `true`, `false`), chroma.KeywordConstant, nil},
			{chroma.Words(``, `\b`, `bool`, `address`, `signer`, `vector`, `u8`, `u16`, `u32`, `u64`, `u128`, `u256`), chroma.KeywordType, nil},
			{chroma.Words(``, `\b`, `key`, `store`, `copy`, `drop`), chroma.NameBuiltin, nil},

			{`b"(\\.|[^\\"])*"`, chroma.LiteralString, nil},
			{`x"[0-9A-Fa-f]*"`, chroma.LiteralString, nil},
			{`@0x[0-9A-Fa-f_]+`, chroma.LiteralNumberHex, nil},
			{`@[A-Za-z_]\w*`, chroma.NameConstant, nil},
			{`0x[0-9A-Fa-f_]+`, chroma.LiteralNumberHex, nil},
			{`\d[\d_]*(u8|u16|u32|u64|u128|u256)?`, chroma.LiteralNumberInteger, nil},

			{`([a-z_]\w*)(!)(?!=)`, chroma.ByGroups(chroma.NameBuiltin, chroma.Operator), nil},
			{`\$[A-Za-z_]\w*`, chroma.NameVariableMagic, nil},
			{`'[A-Za-z_]\w*`, chroma.NameLabel, nil},
			{`E[A-Z]\w*`, chroma.NameException, nil},
			{`[A-Z][A-Z0-9_]+\b`, chroma.NameConstant, nil},
			{`[A-Z]\w*`, chroma.NameClass, nil},
			{`[a-z_]\w*(?=\s*[<(])`, chroma.NameFunction, nil},
			{`[A-Za-z_]\w*`, chroma.Name, nil},

			{`::`, chroma.Punctuation, nil},
			{`(==|!=|<=|>=|&&|\|\||<<|>>|\.\.|[-+*/%&|^!<>=])`, chroma.Operator, nil},
			{`[{}()\[\];,.:]`, chroma.Punctuation, nil},
		},
		// Move block comments nest.
		"comment": {
			{`[^*/]+`, chroma.CommentMultiline, nil},
			{`/\*`, chroma.CommentMultiline, chroma.Push()},
			{`\*/`, chroma.CommentMultiline, chroma.Pop(1)},
			{`[*/]`, chroma.CommentMultiline, nil},
		},
		"attribute": {
			{`"(\\.|[^\\"])*"`, chroma.LiteralString, nil},
			{`\]`, chroma.NameAttribute, chroma.Pop(1)},
			{`[^\]"]+`, chroma.NameAttribute, nil},
		},
	}
}
