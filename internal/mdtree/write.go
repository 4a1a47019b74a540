package mdtree

import (
	"bytes"
	"strings"
)

// Bytes renders the document back to markdown.
//
// The output is the source the document was parsed from,
// with the body of every changed fenced code block
// replaced by its current Value.
// Changes to code blocks without an info string are not written.
func (d *Document) Bytes() []byte {
	var edits []*CodeBlock
	_ = WalkCodeBlocks(d, func(cb *CodeBlock) error {
		if cb.ok && cb.Changed() {
			edits = append(edits, cb)
		}
		return nil
	})
	if len(edits) == 0 {
		return bytes.Clone(d.src)
	}

	var buf bytes.Buffer
	buf.Grow(len(d.src))

	last := 0
	copyTo := func(i int) {
		buf.Write(d.src[last:i])
		last = i
	}
	for _, cb := range edits {
		fence := cb.fence()
		if len(fence) > 0 {
			copyTo(cb.open.start)
			buf.WriteString(fence)
			last = cb.open.end
		}

		copyTo(cb.body.start)
		if start := cb.body.start; start > 0 && d.src[start-1] != '\n' {
			// Fence ran to the end of the file.
			buf.WriteByte('\n')
		}
		writeBody(&buf, cb.pad, cb.Value)
		last = cb.body.end

		if len(fence) > 0 && cb.closed {
			copyTo(cb.close.start)
			buf.WriteString(fence)
			last = cb.close.end
		}
	}
	buf.Write(d.src[last:])
	return buf.Bytes()
}

// fence returns a longer fence for the block
// if a line of Value would close the original one.
// It returns "" if the original fence can stay.
func (c *CodeBlock) fence() string {
	char := string(c.fenceChar)
	longest := 0
	for _, line := range strings.Split(c.Value, "\n") {
		// Closing fences may be indented by up to three spaces.
		trimmed := strings.TrimLeft(line, " ")
		if len(line)-len(trimmed) > 3 {
			continue
		}
		longest = max(longest, len(trimmed)-len(strings.TrimLeft(trimmed, char)))
	}

	if longest < c.open.end-c.open.start {
		return ""
	}
	return strings.Repeat(char, longest+1)
}

func writeBody(buf *bytes.Buffer, pad, value string) {
	if len(value) == 0 {
		return
	}

	for _, line := range strings.Split(value, "\n") {
		buf.WriteString(pad)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}
