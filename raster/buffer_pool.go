package raster

import (
	"bytes"
	"sync"
)

// Buffers above this size are dropped instead of pooled; the 8K images are
// the only ones that get close.
const maxPooledBuffer = 16 * 1024 * 1024

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	bufferPool.Put(buf)
}
