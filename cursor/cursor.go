// Package cursor implements a read-only, bounds-checked forward reader
// over a byte region, used by the render package to walk bytecode without
// copying it.
//
// A Cursor owns no memory; the backing slice must outlive it. All reads
// advance the cursor on success; a failed read leaves the cursor's
// position unchanged and reports absence rather than panicking.
package cursor

import "encoding/binary"

// Cursor is a bounds-checked, non-owning forward reader over a byte slice.
type Cursor struct {
	data []byte
	pos  int
}

// New returns a Cursor positioned at the start of data.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current reader index.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total length of the underlying region.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Seek moves the cursor to an absolute position, failing (and leaving the
// position unchanged) if pos is out of bounds.
func (c *Cursor) Seek(pos int) bool {
	if pos < 0 || pos > len(c.data) {
		return false
	}
	c.pos = pos
	return true
}

// ReadByte reads and advances past a single byte.
func (c *Cursor) ReadByte() (byte, bool) {
	if c.Remaining() < 1 {
		return 0, false
	}
	b := c.data[c.pos]
	c.pos++
	return b, true
}

// ReadUint32 reads a little-endian u32 and advances past it.
func (c *Cursor) ReadUint32() (uint32, bool) {
	if c.Remaining() < 4 {
		return 0, false
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos : c.pos+4])
	c.pos += 4
	return v, true
}

// ReadSlice returns a bounds-checked sub-slice of n bytes over the same
// backing memory, advancing past it. The returned slice is a view, not a
// copy — callers that need to retain it beyond the cursor's lifetime
// should copy it themselves.
func (c *Cursor) ReadSlice(n int) ([]byte, bool) {
	if n < 0 || c.Remaining() < n {
		return nil, false
	}
	s := c.data[c.pos : c.pos+n]
	c.pos += n
	return s, true
}

// ReadString reads a length-prefixed UTF-8 string: a little-endian u32
// length followed by exactly that many bytes, no terminator.
func (c *Cursor) ReadString() (string, bool) {
	start := c.pos
	n, ok := c.ReadUint32()
	if !ok {
		return "", false
	}
	s, ok := c.ReadSlice(int(n))
	if !ok {
		c.pos = start
		return "", false
	}
	return string(s), true
}
