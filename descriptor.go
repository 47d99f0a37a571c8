package ufmt

import "strconv"

// Flags is the set of presentation flags parsed from an escape.
type Flags uint8

const (
	FlagLeft  Flags = 1 << iota // '-'
	FlagPlus                    // '+'
	FlagSpace                   // ' '
	FlagZero                    // '0'
	FlagAlt                     // '#'
)

// Has reports whether every flag in f2 is set.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// String renders the flags in canonical order.
func (f Flags) String() string {
	var b []byte
	if f.Has(FlagLeft) {
		b = append(b, '-')
	}
	if f.Has(FlagPlus) {
		b = append(b, '+')
	}
	if f.Has(FlagSpace) {
		b = append(b, ' ')
	}
	if f.Has(FlagZero) {
		b = append(b, '0')
	}
	if f.Has(FlagAlt) {
		b = append(b, '#')
	}
	return string(b)
}

// Length is the argument width class selected by a length modifier.
type Length uint8

const (
	LengthDefault  Length = iota
	LengthChar            // hh
	LengthShort           // h
	LengthLong            // l
	LengthLongLong        // ll
	LengthSize            // z
	LengthPtrdiff         // t
	LengthIntmax          // j
)

var lengthText = [...]string{"", "hh", "h", "l", "ll", "z", "t", "j"}

// String returns the modifier text, empty for the default class.
func (l Length) String() string {
	if int(l) < len(lengthText) {
		return lengthText[l]
	}
	return ""
}

// Descriptor is one parsed conversion: %[flags][width][.precision][length]verb.
// HasWidth and HasPrecision distinguish an absent field from an explicit zero.
type Descriptor struct {
	Flags        Flags
	Width        int
	HasWidth     bool
	Precision    int
	HasPrecision bool
	Length       Length
	Verb         byte
}

// String rebuilds the escape text with argument-supplied fields resolved.
func (d Descriptor) String() string {
	b := []byte{'%'}
	b = append(b, d.Flags.String()...)
	if d.HasWidth {
		b = strconv.AppendInt(b, int64(d.Width), 10)
	}
	if d.HasPrecision {
		b = append(b, '.')
		b = strconv.AppendInt(b, int64(d.Precision), 10)
	}
	b = append(b, d.Length.String()...)
	if d.Verb != 0 {
		b = append(b, d.Verb)
	}
	return string(b)
}

// parseDescriptor consumes the escape body following '%'. The order of the
// steps is significant: flags, width, precision, length, verb. A Verb of NUL
// means the template ended inside the escape.
func parseDescriptor(c *cursor, args *Args) Descriptor {
	var d Descriptor

flags:
	for {
		switch c.peek() {
		case '-':
			d.Flags |= FlagLeft
		case '+':
			d.Flags |= FlagPlus
		case ' ':
			d.Flags |= FlagSpace
		case '0':
			d.Flags |= FlagZero
		case '#':
			d.Flags |= FlagAlt
		default:
			break flags
		}
		c.advance()
	}

	if c.peek() == '*' {
		c.advance()
		w := int(args.Int())
		if w < 0 {
			d.Flags |= FlagLeft
			w = -w
		}
		d.Width, d.HasWidth = w, true
	} else if n, ok := parseDigits(c); ok {
		d.Width, d.HasWidth = n, true
	}

	if c.peek() == '.' {
		c.advance()
		if c.peek() == '*' {
			c.advance()
			if p := int(args.Int()); p >= 0 {
				d.Precision, d.HasPrecision = p, true
			}
		} else {
			n, _ := parseDigits(c)
			d.Precision, d.HasPrecision = n, true
		}
	}

	switch c.peek() {
	case 'h':
		c.advance()
		d.Length = LengthShort
		if c.peek() == 'h' {
			c.advance()
			d.Length = LengthChar
		}
	case 'l':
		c.advance()
		d.Length = LengthLong
		if c.peek() == 'l' {
			c.advance()
			d.Length = LengthLongLong
		}
	case 'z':
		c.advance()
		d.Length = LengthSize
	case 't':
		c.advance()
		d.Length = LengthPtrdiff
	case 'j':
		c.advance()
		d.Length = LengthIntmax
	}

	d.Verb = c.next()
	return d
}

// maxFieldDigits bounds literal width/precision parsing so an absurd run of
// digits cannot overflow int.
const maxFieldDigits = 9

func parseDigits(c *cursor) (int, bool) {
	n, digits := 0, 0
	for {
		b := c.peek()
		if b < '0' || b > '9' {
			break
		}
		if digits < maxFieldDigits {
			n = n*10 + int(b-'0')
		}
		digits++
		c.advance()
	}
	return n, digits > 0
}
