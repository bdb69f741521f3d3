// Package bytecode defines the opcode-prefixed wire format produced by
// Writer from an optimized node tree, and consumed by the render package's
// interpreter.
//
// Every opcode byte is followed by a complete payload for that variant;
// nested Tag/List payloads recursively satisfy the same contract. A
// length-prefixed string is a u32 little-endian length followed by
// exactly that many UTF-8 bytes, no terminator. Modifier and child counts
// fit in a single byte — Writer rejects trees exceeding 255 rather than
// truncating.
package bytecode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jpl-au/htmlvm/node"
)

const (
	// OpNone is reserved and never emitted by Writer: a Tag whose content
	// optimized to None is written as an empty List (count 0) instead,
	// which renders to zero bytes with no need for a no-op opcode.
	OpNone byte = 0x00
	// OpTag: len-prefixed name, u8 modifier count, modifier pairs, then
	// one nested node record for content.
	OpTag byte = 0x01
	// OpLiteral: len-prefixed UTF-8 bytes, written verbatim.
	OpLiteral byte = 0x02
	// OpList: u8 child count, then that many nested node records in order.
	OpList byte = 0x03
	// OpContextValue: u8 path length, then that many len-prefixed keys.
	OpContextValue byte = 0x04
)

// MaxCount is the largest modifier, child, or path-segment count the wire
// format can represent in a single u8 count field. Exported so the
// optimize package can reject an oversized Tag itself: folding bakes a
// Tag's modifiers directly into a literal open-tag string, which never
// passes back through Write's own per-Tag check below.
const MaxCount = 255

// ErrTooManyElements is returned when a Tag has more than MaxCount
// modifiers, a List has more than MaxCount children, or a ContextValue
// path has more than MaxCount segments. The source silently truncates via
// a narrowing integer conversion; this is treated as a precondition
// violation and reported instead.
var ErrTooManyElements = errors.New("bytecode: more than 255 modifiers, children, or path segments")

// ErrUnoptimizedNode is returned when Write encounters a Lazy node —
// meaning the tree was not run through optimize.Optimize first.
var ErrUnoptimizedNode = errors.New("bytecode: tree contains an unresolved Lazy node; run optimize.Optimize first")

// Writer serializes an optimized node tree into a contiguous byte stream.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the bytecode written so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *Writer) writeString(s string) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
	w.buf.Write(lenBuf[:])
	w.buf.WriteString(s)
}

// Write appends n's bytecode record to the stream.
func (w *Writer) Write(n node.Node) error {
	switch t := n.(type) {
	case nil, node.None:
		// An empty List (count 0) stands in for None so opcode 0x00 is
		// never emitted — see OpNone's doc comment.
		w.buf.WriteByte(OpList)
		w.buf.WriteByte(0)
		return nil

	case node.Literal:
		w.buf.WriteByte(OpLiteral)
		w.writeString(string(t))
		return nil

	case node.List:
		if len(t) > MaxCount {
			return ErrTooManyElements
		}
		w.buf.WriteByte(OpList)
		w.buf.WriteByte(byte(len(t)))
		for _, c := range t {
			if err := w.Write(c); err != nil {
				return err
			}
		}
		return nil

	case *node.Tag:
		if len(t.Modifiers) > MaxCount {
			return ErrTooManyElements
		}
		w.buf.WriteByte(OpTag)
		w.writeString(t.Name)
		w.buf.WriteByte(byte(len(t.Modifiers)))
		for _, m := range t.Modifiers {
			w.writeString(m.Name)
			w.writeString(m.Value)
		}
		return w.Write(t.Content)

	case node.ContextValue:
		if len(t.Path) > MaxCount {
			return ErrTooManyElements
		}
		w.buf.WriteByte(OpContextValue)
		w.buf.WriteByte(byte(len(t.Path)))
		for _, key := range t.Path {
			w.writeString(key)
		}
		return nil

	case node.Lazy:
		return ErrUnoptimizedNode

	default:
		return fmt.Errorf("bytecode: unsupported node type %T", n)
	}
}
