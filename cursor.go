package ufmt

// cursor is a read-only view over a template that only moves forward.
// Reading at or past the end yields NUL.
type cursor struct {
	s string
	i int
}

func (c *cursor) done() bool { return c.i >= len(c.s) }

func (c *cursor) peek() byte {
	if c.i >= len(c.s) {
		return 0
	}
	return c.s[c.i]
}

func (c *cursor) advance() {
	if c.i < len(c.s) {
		c.i++
	}
}

// next returns the current byte and advances past it.
func (c *cursor) next() byte {
	b := c.peek()
	c.advance()
	return b
}

// since returns the text consumed after position start.
func (c *cursor) since(start int) string {
	return c.s[start:c.i]
}

// literal returns the run of bytes up to the next '%' or the end, and
// advances past it.
func (c *cursor) literal() string {
	start := c.i
	for c.i < len(c.s) && c.s[c.i] != '%' {
		c.i++
	}
	return c.s[start:c.i]
}
