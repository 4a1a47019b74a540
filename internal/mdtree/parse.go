package mdtree

import (
	"bytes"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Parser turns markdown source into a [Document].
//
// A Parser is safe for concurrent use.
type Parser struct {
	// Markdown is the goldmark instance used to parse documents.
	// Defaults to goldmark with GitHub Flavored Markdown enabled.
	Markdown goldmark.Markdown

	once sync.Once
	md   goldmark.Markdown
}

func (p *Parser) init() {
	p.once.Do(func() {
		p.md = p.Markdown
		if p.md == nil {
			p.md = goldmark.New(goldmark.WithExtensions(extension.GFM))
		}
	})
}

// Parse parses the given markdown.
// Markdown has no invalid input, so parsing always succeeds.
//
// The returned document retains src;
// callers must not modify it afterwards.
func (p *Parser) Parse(src []byte) *Document {
	p.init()

	root := p.md.Parser().Parse(text.NewReader(src))
	b := treeBuilder{src: src}
	return &Document{
		Children: b.children(root),
		src:      src,
	}
}

type treeBuilder struct{ src []byte }

func (b *treeBuilder) children(n ast.Node) []Node {
	var nodes []Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		nodes = append(nodes, b.node(c))
	}
	return nodes
}

func (b *treeBuilder) node(n ast.Node) Node {
	switch n := n.(type) {
	case *ast.Heading:
		return &Heading{Level: n.Level, Text: b.text(n)}
	case *ast.Paragraph, *ast.TextBlock:
		return &Paragraph{Text: b.text(n)}
	case *ast.FencedCodeBlock:
		return b.fencedCode(n)
	case *ast.CodeBlock:
		v := b.body(n)
		return &CodeBlock{Value: v, orig: v}
	case *ast.Blockquote:
		return &Container{Kind: BlockQuote, Children: b.children(n)}
	case *ast.List:
		return &Container{Kind: List, Children: b.children(n)}
	case *ast.ListItem:
		return &Container{Kind: ListItem, Children: b.children(n)}
	default:
		return &Raw{Kind: n.Kind().String()}
	}
}

// text joins the lines of a block with newlines.
func (b *treeBuilder) text(n ast.Node) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, strings.TrimRight(string(seg.Value(b.src)), "\r\n"))
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// body returns the contents of a code block
// without the newline that ends its last line.
func (b *treeBuilder) body(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(b.src))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func (b *treeBuilder) fencedCode(n *ast.FencedCodeBlock) *CodeBlock {
	v := b.body(n)
	cb := &CodeBlock{Fenced: true, Value: v, orig: v}
	if n.Info == nil {
		// Without an info string there is nothing to resolve,
		// so the block is never rewritten.
		return cb
	}

	info := n.Info.Segment
	cb.Lang, cb.Meta = splitInfo(string(info.Value(b.src)))

	fenceLine := lineStart(b.src, info.Start)
	cb.pad = linePadding(b.src[fenceLine:info.Start])

	openStart := fenceLine + bytes.IndexAny(b.src[fenceLine:info.Start], "`~")
	cb.open = span{start: openStart, end: fenceRun(b.src, openStart)}
	cb.fenceChar = b.src[openStart]

	if lines := n.Lines(); lines.Len() > 0 {
		cb.body = span{
			start: lineStart(b.src, lines.At(0).Start),
			end:   lines.At(lines.Len() - 1).Stop,
		}
	} else {
		end := lineEnd(b.src, info.Stop)
		cb.body = span{start: end, end: end}
	}
	cb.close, cb.closed = b.closingFence(cb.body.end, cb.open)
	cb.ok = true
	return cb
}

// closingFence finds the fence on the line starting at offset i
// that closes a block opened by the given fence.
func (b *treeBuilder) closingFence(i int, open span) (span, bool) {
	if i >= len(b.src) {
		return span{}, false
	}

	line := b.src[i:lineEnd(b.src, i)]
	idx := bytes.IndexByte(line, b.src[open.start])
	if idx < 0 || len(bytes.Trim(line[:idx], " \t>")) > 0 {
		return span{}, false
	}

	start := i + idx
	end := fenceRun(b.src, start)
	if end-start < open.end-open.start || len(bytes.TrimSpace(b.src[end:i+len(line)])) > 0 {
		return span{}, false
	}
	return span{start: start, end: end}, true
}

// fenceRun returns the offset just past the run of fence characters
// starting at src[i].
func fenceRun(src []byte, i int) int {
	c := src[i]
	for i < len(src) && src[i] == c {
		i++
	}
	return i
}

// splitInfo splits a fence info string into its language
// and the remaining meta string.
func splitInfo(info string) (lang, meta string) {
	info = strings.TrimSpace(info)
	idx := strings.IndexAny(info, " \t")
	if idx < 0 {
		return info, ""
	}
	return info[:idx], strings.TrimSpace(info[idx+1:])
}

// lineStart returns the offset of the start of the line holding src[i].
func lineStart(src []byte, i int) int {
	return bytes.LastIndexByte(src[:i], '\n') + 1
}

// lineEnd returns the offset just past the newline
// ending the line holding src[i],
// or len(src) if that line is not terminated.
func lineEnd(src []byte, i int) int {
	if idx := bytes.IndexByte(src[i:], '\n'); idx >= 0 {
		return i + idx + 1
	}
	return len(src)
}

// linePadding builds the prefix for code lines inside a fence
// given everything on the fence's line before its info string.
//
// Block quote markers and whitespace are kept;
// list markers become spaces of the same width.
func linePadding(prefix []byte) string {
	if idx := bytes.IndexAny(prefix, "`~"); idx >= 0 {
		prefix = prefix[:idx]
	}
	pad := []byte(string(prefix))
	for i, c := range pad {
		switch c {
		case '>', ' ', '\t':
		default:
			pad[i] = ' '
		}
	}
	return string(pad)
}
