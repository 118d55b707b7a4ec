package handler

import (
	"bytes"
	"sync"
)

// Response buffer sizing. Tree and reward views dominate; anything that grew
// past maxPooledBufferSize is left for the GC instead of pinning memory.
const (
	initialBufferSize   = 1 << 10
	maxPooledBufferSize = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
