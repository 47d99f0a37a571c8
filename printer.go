package ufmt

import (
	"log/slog"
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// Printer interprets format templates. It carries the state that would
// otherwise be process-wide: the handler registry, the decimal point, the
// float toggle and the default output. A Printer is safe for concurrent use.
type Printer struct {
	registry     *Registry
	decimalPoint atomic.Uint32
	floatOff     atomic.Bool
	defaultOut   atomic.Pointer[Sink]
	logger       *slog.Logger
}

// New creates a Printer with a registry of [DefaultMaxHandlers] slots,
// '.' as decimal point and float support enabled.
func New(opts ...Option) *Printer {
	p := &Printer{
		registry: NewRegistry(DefaultMaxHandlers),
		logger:   slog.New(slog.DiscardHandler),
	}
	p.decimalPoint.Store('.')
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the printer's handler registry.
func (p *Printer) Registry() *Registry { return p.registry }

// RegisterHandler installs h for verb. Installed handlers take precedence
// over the built-in verbs.
func (p *Printer) RegisterHandler(verb byte, h Handler) error {
	_, replaced := p.registry.Lookup(verb)
	if err := p.registry.Register(verb, h); err != nil {
		p.logger.Warn("handler not registered",
			slog.String("verb", string(verb)),
			slog.String("error", err.Error()),
		)
		return err
	}
	p.logger.Debug("handler registered",
		slog.String("verb", string(verb)),
		slog.Bool("replaced", replaced),
	)
	return nil
}

// UnregisterHandler removes the handler for verb, restoring the built-in
// behaviour for it.
func (p *Printer) UnregisterHandler(verb byte) error {
	if err := p.registry.Unregister(verb); err != nil {
		return err
	}
	p.logger.Debug("handler removed", slog.String("verb", string(verb)))
	return nil
}

// SetFloatSupport toggles %f and %F. When disabled they echo literally.
func (p *Printer) SetFloatSupport(enabled bool) { p.floatOff.Store(!enabled) }

// FloatSupport reports whether %f and %F are rendered.
func (p *Printer) FloatSupport() bool { return !p.floatOff.Load() }

// SetDecimalPoint sets the separator written by %f.
func (p *Printer) SetDecimalPoint(c byte) { p.decimalPoint.Store(uint32(c)) }

// DecimalPoint returns the separator written by %f.
func (p *Printer) DecimalPoint() byte { return byte(p.decimalPoint.Load()) }

// SetLocale takes the first byte of locale as the decimal point. An empty
// locale is ignored.
func (p *Printer) SetLocale(locale string) {
	if locale != "" {
		p.SetDecimalPoint(locale[0])
	}
}

// SetDefaultOutput sets the sink used by [Printer.Outputf]. nil clears it.
func (p *Printer) SetDefaultOutput(out Sink) {
	if out == nil {
		p.defaultOut.Store(nil)
		return
	}
	p.defaultOut.Store(&out)
}

// Outputf formats to the default output.
func (p *Printer) Outputf(format string, args ...any) (int, error) {
	out := p.defaultOut.Load()
	if out == nil {
		return -1, ErrNilSink
	}
	return p.Vprintf(*out, format, NewArgs(args...))
}

// Printf formats args according to format and writes the result to out.
// It returns the number of bytes written. The only failure is a nil sink,
// reported as -1 and [ErrNilSink]; malformed templates are echoed, never
// rejected.
func (p *Printer) Printf(out Sink, format string, args ...any) (int, error) {
	return p.Vprintf(out, format, NewArgs(args...))
}

// Vprintf is Printf over an already opened argument cursor.
func (p *Printer) Vprintf(out Sink, format string, args *Args) (int, error) {
	if out == nil {
		return -1, ErrNilSink
	}
	if args == nil {
		args = NewArgs()
	}
	c := cursor{s: format}
	total := 0
	for !c.done() {
		lit := c.literal()
		putString(out, lit)
		total += len(lit)
		if c.done() {
			break
		}
		c.advance()
		if c.done() {
			break
		}
		total += p.escape(out, &c, args, total)
	}
	return total, nil
}

// escape handles one conversion, c positioned just past '%'. written is the
// count emitted so far, needed by %n.
func (p *Printer) escape(out Sink, c *cursor, args *Args, written int) int {
	start := c.i
	d := parseDescriptor(c, args)
	if d.Verb == 0 {
		body := c.since(start)
		out.PutByte('%')
		putString(out, body)
		return 1 + len(body)
	}

	if h, ok := p.registry.Lookup(d.Verb); ok {
		return h.Format(out, d, args)
	}

	var buf scratch
	switch d.Verb {
	case 'd', 'i':
		v := truncSigned(args.Int(), d.Length)
		digits := AppendInt(buf[:0], v, 10, false)
		n := Number{Signed: true, IntPrecision: true, Digits: digits}
		if v < 0 {
			n.Negative, n.Digits = true, digits[1:]
		}
		return n.Write(out, d)

	case 'u', 'o', 'x', 'X':
		u := truncUnsigned(args.Uint(), d.Length)
		n := Number{Signed: true, IntPrecision: true}
		switch d.Verb {
		case 'u':
			n.Digits = AppendUint(buf[:0], u, 10, false)
		case 'o':
			digits := buf[:0]
			if d.Flags.Has(FlagAlt) && u != 0 {
				digits = append(digits, '0')
			}
			n.Digits = AppendUint(digits, u, 8, false)
		default:
			upper := d.Verb == 'X'
			if d.Flags.Has(FlagAlt) && u != 0 {
				n.Prefix = "0x"
				if upper {
					n.Prefix = "0X"
				}
			}
			n.Digits = AppendUint(buf[:0], u, 16, upper)
		}
		return n.Write(out, d)

	case 'f', 'F':
		if !p.FloatSupport() {
			args.Next()
			out.PutByte('%')
			out.PutByte(d.Verb)
			return 2
		}
		prec := -1
		if d.HasPrecision {
			prec = d.Precision
		}
		v := args.Float()
		digits := AppendFixed(buf[:0], v, prec, p.DecimalPoint())
		n := Number{Signed: true, Digits: digits}
		if digits[0] == '-' {
			n.Negative, n.Digits = true, digits[1:]
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			// width still applies; zero fill does not
			n.NoZeroFill = true
		}
		return n.Write(out, d)

	case 'c':
		r := args.Char()
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		return writePadded(out, d, utf8.AppendRune(buf[:0], r))

	case 's':
		s, ok := args.Str()
		if !ok {
			s = "(null)"
		}
		return WriteText(out, d, s)

	case 'p':
		n := Number{Signed: true, Prefix: "0x", Digits: AppendUint(buf[:0], uint64(args.Pointer()), 16, false)}
		return n.Write(out, d)

	case '%':
		out.PutByte('%')
		return 1

	case 'n':
		args.Counter()(written)
		return 0
	}

	out.PutByte('%')
	out.PutByte(d.Verb)
	return 2
}

// Number is a rendered numeric value ready for field composition.
type Number struct {
	// Negative emits '-' ahead of the digits. Digits never carry the sign.
	Negative bool
	// Signed lets the '+' and ' ' flags emit a sign for non-negative values.
	Signed bool
	// IntPrecision makes an explicit precision a minimum digit count and
	// disables zero fill of the field width.
	IntPrecision bool
	// NoZeroFill ignores the '0' flag.
	NoZeroFill bool
	// Prefix is emitted after the sign and before any zero fill, e.g. "0x".
	Prefix string
	Digits []byte
}

// Write emits n padded to d's width and returns the byte count. The order is
// leading spaces, sign, prefix, zeros, digits, trailing spaces.
func (n Number) Write(out Sink, d Descriptor) int {
	var sign byte
	switch {
	case n.Negative:
		sign = '-'
	case n.Signed && d.Flags.Has(FlagPlus):
		sign = '+'
	case n.Signed && d.Flags.Has(FlagSpace):
		sign = ' '
	}
	signLen := 0
	if sign != 0 {
		signLen = 1
	}

	zeros := 0
	if n.IntPrecision && d.HasPrecision && d.Precision > len(n.Digits) {
		zeros = d.Precision - len(n.Digits)
	}
	spaces := 0
	if size := signLen + len(n.Prefix) + zeros + len(n.Digits); d.HasWidth && d.Width > size {
		spaces = d.Width - size
	}
	precisionWins := n.IntPrecision && d.HasPrecision
	if d.Flags.Has(FlagZero) && !d.Flags.Has(FlagLeft) && !precisionWins && !n.NoZeroFill {
		zeros += spaces
		spaces = 0
	}

	left := d.Flags.Has(FlagLeft)
	if !left {
		putRepeat(out, ' ', spaces)
	}
	if sign != 0 {
		out.PutByte(sign)
	}
	putString(out, n.Prefix)
	putRepeat(out, '0', zeros)
	putBytes(out, n.Digits)
	if left {
		putRepeat(out, ' ', spaces)
	}
	return spaces + signLen + len(n.Prefix) + zeros + len(n.Digits)
}

// WriteText emits s truncated to d's precision and padded with spaces to d's
// width, returning the byte count.
func WriteText(out Sink, d Descriptor, s string) int {
	if d.HasPrecision && d.Precision < len(s) {
		s = s[:d.Precision]
	}
	pad := 0
	if d.HasWidth && d.Width > len(s) {
		pad = d.Width - len(s)
	}
	left := d.Flags.Has(FlagLeft)
	if !left {
		putRepeat(out, ' ', pad)
	}
	putString(out, s)
	if left {
		putRepeat(out, ' ', pad)
	}
	return len(s) + pad
}

func writePadded(out Sink, d Descriptor, b []byte) int {
	pad := 0
	if d.HasWidth && d.Width > len(b) {
		pad = d.Width - len(b)
	}
	left := d.Flags.Has(FlagLeft)
	if !left {
		putRepeat(out, ' ', pad)
	}
	putBytes(out, b)
	if left {
		putRepeat(out, ' ', pad)
	}
	return len(b) + pad
}
