package htmlvm

import (
	"bytes"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// NewBuffer returns a pooled, empty *bytes.Buffer, optionally pre-grown to
// hint, so callers that know a predicted render size (e.g. from
// render.AdaptiveSizer) avoid the reallocation a cold buffer would
// otherwise pay on the first few writes. Pass the buffer to PutBuffer when
// done to make it available for reuse.
func NewBuffer(hint ...int) *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer) //nolint:forcetypeassert // pool only ever stores *bytes.Buffer
	buf.Reset()
	if len(hint) > 0 && hint[0] > buf.Cap() {
		buf.Grow(hint[0])
	}
	return buf
}

// PutBuffer returns buf to the pool for reuse. Callers must not touch buf
// after calling PutBuffer.
func PutBuffer(buf *bytes.Buffer) {
	bufferPool.Put(buf)
}
