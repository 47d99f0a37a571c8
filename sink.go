package ufmt

import "io"

// Sink receives formatted output one byte at a time.
// Implementations perform their side effect synchronously.
type Sink interface {
	PutByte(c byte)
}

// SinkFunc adapts a plain function to a [Sink].
type SinkFunc func(c byte)

// PutByte calls f(c).
func (f SinkFunc) PutByte(c byte) { f(c) }

// Discard is a [Sink] that drops every byte.
var Discard Sink = SinkFunc(func(byte) {})

// WriterSink forwards bytes to an io.Writer. The first write error is kept
// and every later byte is dropped.
type WriterSink struct {
	w   io.Writer
	buf [1]byte
	n   int
	err error
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// PutByte writes c unless a previous write failed.
func (s *WriterSink) PutByte(c byte) {
	if s.err != nil {
		return
	}
	s.buf[0] = c
	n, err := s.w.Write(s.buf[:])
	s.n += n
	s.err = err
}

// Written reports how many bytes reached the writer.
func (s *WriterSink) Written() int { return s.n }

// Err returns the first write error, if any.
func (s *WriterSink) Err() error { return s.err }

// BoundedSink stores bytes into a caller buffer, keeping the last byte free
// for a NUL terminator. Bytes beyond capacity are dropped silently.
type BoundedSink struct {
	buf []byte
	pos int
}

// NewBoundedSink returns a sink over buf.
func NewBoundedSink(buf []byte) *BoundedSink {
	return &BoundedSink{buf: buf}
}

// PutByte stores c if there is room before the terminator slot.
func (s *BoundedSink) PutByte(c byte) {
	if s.pos < len(s.buf)-1 {
		s.buf[s.pos] = c
		s.pos++
	}
}

// Terminate writes the NUL terminator and returns the number of bytes stored.
func (s *BoundedSink) Terminate() int {
	if len(s.buf) > 0 {
		s.buf[s.pos] = 0
	}
	return s.pos
}

// Len returns the number of bytes stored so far.
func (s *BoundedSink) Len() int { return s.pos }

// appendSink grows a byte slice without bound.
type appendSink struct {
	buf []byte
}

func (s *appendSink) PutByte(c byte) { s.buf = append(s.buf, c) }

func putString(out Sink, s string) {
	for i := 0; i < len(s); i++ {
		out.PutByte(s[i])
	}
}

func putBytes(out Sink, b []byte) {
	for _, c := range b {
		out.PutByte(c)
	}
}

func putRepeat(out Sink, c byte, n int) {
	for ; n > 0; n-- {
		out.PutByte(c)
	}
}
