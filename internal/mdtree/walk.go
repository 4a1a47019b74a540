package mdtree

import "fmt"

// Walk calls fn for n and then for each of its descendants,
// in document order.
//
// Walk stops at the first error returned by fn
// and returns it unchanged.
func Walk(n Node, fn func(Node) error) error {
	if err := fn(n); err != nil {
		return err
	}

	var children []Node
	switch n := n.(type) {
	case *Document:
		children = n.Children
	case *Container:
		children = n.Children
	case *Heading, *Paragraph, *CodeBlock, *Raw:
		// leaves
	default:
		panic(fmt.Sprintf("unrecognized node type %T", n))
	}

	for _, c := range children {
		if err := Walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkCodeBlocks calls fn for every code block under n,
// in document order.
// Other kinds of nodes are not reported.
func WalkCodeBlocks(n Node, fn func(*CodeBlock) error) error {
	return Walk(n, func(n Node) error {
		if cb, ok := n.(*CodeBlock); ok {
			return fn(cb)
		}
		return nil
	})
}
