package util

import (
	"bufio"
	"io"
)

// LineReader yields input one line at a time.  ReadLine returns io.EOF
// once the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// ScanReader is a LineReader over any io.Reader.  Line terminators
// ("\n" or "\r\n") are stripped.
type ScanReader struct {
	sc   *bufio.Scanner
	buf  *[]byte
	line int
}

// NewScanReader returns a ScanReader that rejects lines longer than
// maxLine bytes with bufio.ErrTooLong.
func NewScanReader(r io.Reader, maxLine int) *ScanReader {
	buf := GetBuf()
	sc := bufio.NewScanner(r)
	if maxLine < len(*buf) {
		maxLine = len(*buf)
	}
	sc.Buffer(*buf, maxLine)
	return &ScanReader{sc: sc, buf: buf}
}

// ReadLine returns the next line.  The pooled buffer is released at the
// end of input or on the first error.
func (s *ScanReader) ReadLine() (string, error) {
	if s.buf == nil {
		return "", io.EOF
	}
	if s.sc.Scan() {
		s.line++
		return s.sc.Text(), nil
	}
	s.Close()
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close releases the pooled buffer.  Later reads return io.EOF.
func (s *ScanReader) Close() {
	PutBuf(s.buf)
	s.buf = nil
}

// Line returns how many lines have been read so far.
func (s *ScanReader) Line() int { return s.line }

// ReadLines calls fn for every line of r, in order.  It stops at the
// first error from fn or from the reader; io.EOF is not an error.
// The returned count is the number of lines read.
func ReadLines(r io.Reader, maxLine int, fn func(line string) error) (int, error) {
	sr := NewScanReader(r, maxLine)
	defer sr.Close()
	for {
		line, err := sr.ReadLine()
		if err == io.EOF {
			return sr.Line(), nil
		}
		if err != nil {
			return sr.Line(), err
		}
		if err := fn(line); err != nil {
			return sr.Line(), err
		}
	}
}
