// Package render compiles an optimized node tree to bytecode and
// interprets that bytecode to produce HTML.
//
// Rendering performs no HTML escaping: literals and attribute values are
// emitted verbatim. Templates are assumed trusted; callers that need
// dynamic, user-supplied content are responsible for pre-escaping it
// before it reaches a node.Literal or node.Modifier.
//
// CompiledTemplate holds only the immutable bytecode — no cursor or other
// per-render state — so a single instance is safe to render concurrently
// from multiple goroutines: each call to Render allocates its own cursor.
package render

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jpl-au/htmlvm/bytecode"
	"github.com/jpl-au/htmlvm/cursor"
	"github.com/jpl-au/htmlvm/node"
	"github.com/jpl-au/htmlvm/optimize"
)

// ErrInternalCompiler is returned by Render (or any other consumer of a
// CompiledTemplate's bytecode) when the bytecode is malformed: an unknown
// opcode, a length-prefixed read that can't be satisfied, or a declared
// modifier/child/path count that can't be consumed.
var ErrInternalCompiler = errors.New("render: internal compiler error")

// CompiledTemplate is an immutable bytecode region, built once by Compile
// and renderable many times.
type CompiledTemplate struct {
	bytecode []byte
}

// Bytecode returns the compiled template's raw bytecode.
func (t *CompiledTemplate) Bytecode() []byte { return t.bytecode }

// Compile optimizes root and serializes the result to bytecode, returning
// an immutable, shareable CompiledTemplate.
func Compile(root node.Node) (*CompiledTemplate, error) {
	optimized, _, err := optimize.Optimize(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternalCompiler, err)
	}

	w := bytecode.NewWriter()
	if err := w.Write(optimized); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternalCompiler, err)
	}

	// Bytecode is copied out of the writer's internal buffer so later
	// mutation of the writer (there is none today, but Writer is not
	// documented as single-use) can never alias a live CompiledTemplate.
	out := make([]byte, len(w.Bytes()))
	copy(out, w.Bytes())

	return &CompiledTemplate{bytecode: out}, nil
}

// Render walks tmpl's bytecode once, in document order, appending HTML
// bytes to out. Each call uses a private cursor over the shared,
// immutable bytecode, so concurrent renders of the same CompiledTemplate
// never interleave cursor state.
func Render(tmpl *CompiledTemplate, out *bytes.Buffer, ctx *Context) error {
	if tmpl == nil || len(tmpl.bytecode) == 0 {
		return nil
	}

	c := cursor.New(tmpl.bytecode)
	for {
		op, ok := c.ReadByte()
		if !ok {
			return nil
		}
		if err := renderOp(op, c, out, ctx); err != nil {
			return err
		}
	}
}

// renderNode reads exactly one opcode and its payload — the "nested node
// record" referenced throughout the bytecode format.
func renderNode(c *cursor.Cursor, out *bytes.Buffer, ctx *Context) error {
	op, ok := c.ReadByte()
	if !ok {
		return fmt.Errorf("%w: unexpected end of bytecode", ErrInternalCompiler)
	}
	return renderOp(op, c, out, ctx)
}

func renderOp(op byte, c *cursor.Cursor, out *bytes.Buffer, ctx *Context) error {
	switch op {
	case bytecode.OpLiteral:
		s, ok := c.ReadString()
		if !ok {
			return fmt.Errorf("%w: truncated literal", ErrInternalCompiler)
		}
		out.WriteString(s)
		return nil

	case bytecode.OpTag:
		name, ok := c.ReadString()
		if !ok {
			return fmt.Errorf("%w: truncated tag name", ErrInternalCompiler)
		}
		modCount, ok := c.ReadByte()
		if !ok {
			return fmt.Errorf("%w: truncated modifier count", ErrInternalCompiler)
		}

		out.WriteByte('<')
		out.WriteString(name)
		for i := 0; i < int(modCount); i++ {
			key, ok := c.ReadString()
			if !ok {
				return fmt.Errorf("%w: truncated modifier key", ErrInternalCompiler)
			}
			val, ok := c.ReadString()
			if !ok {
				return fmt.Errorf("%w: truncated modifier value", ErrInternalCompiler)
			}
			out.WriteByte(' ')
			out.WriteString(key)
			out.WriteString(`="`)
			out.WriteString(val)
			out.WriteByte('"')
		}
		out.WriteByte('>')

		if err := renderNode(c, out, ctx); err != nil {
			return err
		}

		out.WriteString("</")
		out.WriteString(name)
		out.WriteByte('>')
		return nil

	case bytecode.OpList:
		count, ok := c.ReadByte()
		if !ok {
			return fmt.Errorf("%w: truncated list count", ErrInternalCompiler)
		}
		for i := 0; i < int(count); i++ {
			if err := renderNode(c, out, ctx); err != nil {
				return err
			}
		}
		return nil

	case bytecode.OpContextValue:
		count, ok := c.ReadByte()
		if !ok {
			return fmt.Errorf("%w: truncated context path length", ErrInternalCompiler)
		}
		var first string
		for i := 0; i < int(count); i++ {
			key, ok := c.ReadString()
			if !ok {
				return fmt.Errorf("%w: truncated context path key", ErrInternalCompiler)
			}
			if i == 0 {
				first = key
			}
			// Paths deeper than one key are reserved: the source this
			// spec is derived from never wires them through rendering,
			// so only the first key is resolved.
		}
		if count > 0 {
			v := ctx.Get(first)
			if !v.IsNull() {
				out.WriteString(v.String())
			}
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown opcode 0x%02x", ErrInternalCompiler, op)
	}
}
