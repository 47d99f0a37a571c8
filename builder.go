package ufmt

// Builder accumulates formatted text. A fixed builder stops accepting bytes
// once it holds its capacity; a growing builder has no limit.
type Builder struct {
	buf   []byte
	fixed bool
	limit int
}

// NewBuilder creates a growing builder with the given initial capacity.
func NewBuilder(size int) *Builder {
	return &Builder{buf: make([]byte, 0, max(size, 0))}
}

// NewFixedBuilder creates a builder that keeps at most size bytes and drops
// the rest.
func NewFixedBuilder(size int) *Builder {
	size = max(size, 0)
	return &Builder{buf: make([]byte, 0, size), fixed: true, limit: size}
}

// PutByte appends c, or drops it when a fixed builder is full.
func (b *Builder) PutByte(c byte) {
	if b.fixed && len(b.buf) >= b.limit {
		return
	}
	b.buf = append(b.buf, c)
}

// WriteString appends s, truncated for a fixed builder.
func (b *Builder) WriteString(s string) {
	putString(b, s)
}

// Printf appends formatted text using the default printer.
func (b *Builder) Printf(format string, args ...any) {
	_, _ = std.Printf(b, format, args...)
}

// Len returns the number of bytes held.
func (b *Builder) Len() int { return len(b.buf) }

// Full reports whether a fixed builder has reached its capacity.
func (b *Builder) Full() bool { return b.fixed && len(b.buf) >= b.limit }

// String returns the accumulated text.
func (b *Builder) String() string { return string(b.buf) }

// Reset empties the builder, keeping its storage.
func (b *Builder) Reset() { b.buf = b.buf[:0] }
