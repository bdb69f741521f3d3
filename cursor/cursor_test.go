package cursor

import "testing"

func TestReadByteAdvancesAndFailsAtEnd(t *testing.T) {
	c := New([]byte{0x01, 0x02})

	b, ok := c.ReadByte()
	if !ok || b != 0x01 {
		t.Fatalf("first ReadByte = %v, %v; want 0x01, true", b, ok)
	}
	b, ok = c.ReadByte()
	if !ok || b != 0x02 {
		t.Fatalf("second ReadByte = %v, %v; want 0x02, true", b, ok)
	}
	if _, ok := c.ReadByte(); ok {
		t.Fatal("ReadByte past the end should fail")
	}
}

func TestFailedReadLeavesPositionUnchanged(t *testing.T) {
	c := New([]byte{0x01})
	before := c.Pos()
	if _, ok := c.ReadUint32(); ok {
		t.Fatal("ReadUint32 with insufficient bytes should fail")
	}
	if c.Pos() != before {
		t.Fatalf("failed read should not advance position: before=%d after=%d", before, c.Pos())
	}
}

func TestReadUint32LittleEndian(t *testing.T) {
	c := New([]byte{0x01, 0x00, 0x00, 0x00})
	v, ok := c.ReadUint32()
	if !ok || v != 1 {
		t.Fatalf("ReadUint32 = %v, %v; want 1, true", v, ok)
	}
}

func TestReadStringRoundTrip(t *testing.T) {
	data := []byte{5, 0, 0, 0, 'h', 'e', 'l', 'l', 'o', 0xFF}
	c := New(data)
	s, ok := c.ReadString()
	if !ok || s != "hello" {
		t.Fatalf("ReadString = %q, %v; want hello, true", s, ok)
	}
	if c.Remaining() != 1 {
		t.Fatalf("Remaining() = %d; want 1 (trailing byte untouched)", c.Remaining())
	}
}

func TestReadStringTruncatedFails(t *testing.T) {
	data := []byte{10, 0, 0, 0, 'h', 'i'}
	c := New(data)
	if _, ok := c.ReadString(); ok {
		t.Fatal("ReadString should fail when declared length exceeds remaining bytes")
	}
}

func TestEmptyStringRoundTrip(t *testing.T) {
	data := []byte{0, 0, 0, 0}
	c := New(data)
	s, ok := c.ReadString()
	if !ok || s != "" {
		t.Fatalf("ReadString(empty) = %q, %v; want \"\", true", s, ok)
	}
}

func TestSeekBounds(t *testing.T) {
	c := New([]byte{1, 2, 3})
	if !c.Seek(2) {
		t.Fatal("Seek within bounds should succeed")
	}
	if c.Pos() != 2 {
		t.Fatalf("Pos() = %d; want 2", c.Pos())
	}
	if c.Seek(-1) || c.Seek(4) {
		t.Fatal("Seek out of bounds should fail")
	}
	if c.Pos() != 2 {
		t.Fatalf("failed Seek should not change position, got %d", c.Pos())
	}
}

func TestReadSliceIsView(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := New(data)
	s, ok := c.ReadSlice(2)
	if !ok || len(s) != 2 || s[0] != 1 || s[1] != 2 {
		t.Fatalf("ReadSlice(2) = %v, %v", s, ok)
	}
	data[0] = 99
	if s[0] != 99 {
		t.Fatal("ReadSlice should return a view over the backing array, not a copy")
	}
}
