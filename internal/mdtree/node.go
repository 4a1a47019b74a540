// Package mdtree represents a parsed markdown document
// as a small, closed set of block node kinds.
//
// Trees are built from goldmark's AST by [Parser].
// Only code blocks are mutable:
// a changed [CodeBlock] is written back into the original source
// by [Document.Bytes], leaving every other byte as it was.
package mdtree

type (
	// Node is a block in a markdown document.
	//
	// The set of node kinds is closed:
	// [Document], [Heading], [Paragraph], [CodeBlock], [Container], and [Raw].
	Node interface{ node() }

	// Document is the root of a parsed markdown file.
	Document struct {
		Children []Node

		src []byte
	}

	// Heading is an ATX or setext heading.
	Heading struct {
		Level int
		Text  string
	}

	// Paragraph is a run of inline text.
	// Tight list items hold their text in paragraphs too.
	Paragraph struct {
		Text string
	}

	// CodeBlock is a fenced or indented code block.
	CodeBlock struct {
		// Fenced reports whether this block was opened with ``` or ~~~.
		// Indented code blocks have no language or meta.
		Fenced bool

		// Lang is the first word of the fence's info string.
		Lang string

		// Meta is the rest of the info string after Lang,
		// with surrounding whitespace removed.
		Meta string

		// Value is the body of the code block:
		// its lines joined by "\n" without a trailing newline.
		Value string

		orig      string
		body      span   // source bytes holding the body
		pad       string // prefix written before each body line
		ok        bool   // whether body and pad are known
		open      span   // opening fence characters
		close     span   // closing fence characters, if closed
		closed    bool
		fenceChar byte // '`' or '~'
	}

	// Container is a block that holds other blocks.
	Container struct {
		Kind     ContainerKind
		Children []Node
	}

	// Raw is any other block, such as a thematic break,
	// an HTML block, or a table.
	// Its contents are not represented in the tree.
	Raw struct {
		// Kind is goldmark's name for the block.
		Kind string
	}
)

var (
	_ Node = (*Document)(nil)
	_ Node = (*Heading)(nil)
	_ Node = (*Paragraph)(nil)
	_ Node = (*CodeBlock)(nil)
	_ Node = (*Container)(nil)
	_ Node = (*Raw)(nil)
)

func (*Document) node()  {}
func (*Heading) node()   {}
func (*Paragraph) node() {}
func (*CodeBlock) node() {}
func (*Container) node() {}
func (*Raw) node()       {}

// ContainerKind identifies the kind of a [Container].
type ContainerKind int

const (
	// BlockQuote is a "> " quoted region.
	BlockQuote ContainerKind = iota + 1

	// List is an ordered or unordered list.
	List

	// ListItem is a single item of a List.
	ListItem
)

func (k ContainerKind) String() string {
	switch k {
	case BlockQuote:
		return "blockquote"
	case List:
		return "list"
	case ListItem:
		return "list item"
	default:
		return "unknown"
	}
}

// Append adds text to the end of the code block's body.
// Existing content is kept in front of the new text.
func (c *CodeBlock) Append(text string) {
	c.Value += text
}

// Changed reports whether Value differs from what was parsed.
func (c *CodeBlock) Changed() bool {
	return c.Value != c.orig
}

// span is a half-open byte range [start, end) in the source.
type span struct{ start, end int }
