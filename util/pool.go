package util

import (
	"bufio"
	"sync"
)

// DefaultBufSize is the initial scanner buffer size, matching
// bufio.MaxScanTokenSize.
const DefaultBufSize = bufio.MaxScanTokenSize

// BufPool provides reusable line buffers so that reading many small
// files does not allocate a fresh scanner buffer for each one.
var BufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, DefaultBufSize)
		return &buf
	},
}

// GetBuf retrieves a buffer from the pool.  Callers must return it
// with [PutBuf] when finished.
func GetBuf() *[]byte {
	return BufPool.Get().(*[]byte)
}

// PutBuf returns a buffer to the pool for reuse.
func PutBuf(buf *[]byte) {
	if buf == nil {
		return
	}
	BufPool.Put(buf)
}
