package render

import (
	"bytes"
	"errors"
	"io"

	"github.com/jpl-au/htmlvm/node"
)

// ErrDynamicContent is returned by NewFlattener when the given tree
// contains context-dependent content, which cannot be safely pre-rendered
// once and cached.
var ErrDynamicContent = errors.New("render: NewFlattener requires fully static content — use Compile for context-dependent content")

// Flattener is a fast path for templates whose entire tree is static: the
// HTML is rendered once at construction, and every subsequent Render call
// is a direct byte copy with no bytecode interpretation at all.
type Flattener struct {
	html []byte
}

// NewFlattener caches n's rendered bytes. It returns ErrDynamicContent if n
// (or any descendant) contains a node.ContextValue — decided by a direct
// tree walk before anything is optimized or compiled.
func NewFlattener(n node.Node) (*Flattener, error) {
	if isDynamic(n) {
		return nil, ErrDynamicContent
	}

	// No ContextValue survives the check above, so compiling and
	// rendering with a nil context is equivalent to rendering n directly —
	// reusing Compile/Render avoids a second tree-serialization path.
	tmpl, err := Compile(n)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Render(tmpl, &buf, nil); err != nil {
		return nil, err
	}

	return &Flattener{html: buf.Bytes()}, nil
}

// isDynamic reports whether n or any descendant is, or contains, a
// node.ContextValue.
func isDynamic(n node.Node) bool {
	switch t := n.(type) {
	case nil, node.None, node.Literal:
		return false
	case node.ContextValue:
		return true
	case node.Lazy:
		return isDynamic(t.Produce())
	case *node.Tag:
		return isDynamic(t.Content)
	case node.List:
		for _, c := range t {
			if isDynamic(c) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Render writes the cached bytes to w, or returns them directly if w is
// omitted.
func (f *Flattener) Render(w ...io.Writer) []byte {
	if len(w) > 0 && w[0] != nil {
		_, _ = w[0].Write(f.html)
		return nil
	}
	return f.html
}

// Bytes returns the cached, pre-rendered HTML.
func (f *Flattener) Bytes() []byte { return f.html }

// WriteTo appends the cached bytes to buf and reports how many were
// written. It takes a *bytes.Buffer rather than an io.Writer, so Flattener
// does not satisfy io.WriterTo.
func (f *Flattener) WriteTo(buf *bytes.Buffer) (int64, error) {
	n, err := buf.Write(f.html)
	return int64(n), err
}
