package ufmt

import "io"

// Sprintf formats into a new string.
func (p *Printer) Sprintf(format string, args ...any) string {
	var s appendSink
	_, _ = p.Vprintf(&s, format, NewArgs(args...))
	return string(s.buf)
}

// Append formats onto dst, growing it as needed, and returns the extended
// slice.
func (p *Printer) Append(dst []byte, format string, args ...any) []byte {
	s := appendSink{buf: dst}
	_, _ = p.Vprintf(&s, format, NewArgs(args...))
	return s.buf
}

// Snprintf formats into buf, storing at most len(buf)-1 bytes followed by a
// NUL terminator. It returns the number of bytes stored, not counting the
// terminator, or -1 when buf is empty. The whole template is still walked.
func (p *Printer) Snprintf(buf []byte, format string, args ...any) int {
	if len(buf) == 0 {
		return -1
	}
	s := NewBoundedSink(buf)
	_, _ = p.Vprintf(s, format, NewArgs(args...))
	return s.Terminate()
}

// Fprintf formats to w. It returns the bytes that reached w and the first
// write error.
func (p *Printer) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	if w == nil {
		return -1, ErrNilSink
	}
	s := NewWriterSink(w)
	_, _ = p.Vprintf(s, format, NewArgs(args...))
	return s.Written(), s.Err()
}

var std = New()

// Default returns the printer behind the package-level functions.
func Default() *Printer { return std }

// Printf formats to out with the default printer.
func Printf(out Sink, format string, args ...any) (int, error) {
	return std.Printf(out, format, args...)
}

// Vprintf formats to out with the default printer over an open cursor.
func Vprintf(out Sink, format string, args *Args) (int, error) {
	return std.Vprintf(out, format, args)
}

// Sprintf formats into a new string with the default printer.
func Sprintf(format string, args ...any) string {
	return std.Sprintf(format, args...)
}

// Append formats onto dst with the default printer.
func Append(dst []byte, format string, args ...any) []byte {
	return std.Append(dst, format, args...)
}

// Snprintf formats into buf with the default printer. See [Printer.Snprintf].
func Snprintf(buf []byte, format string, args ...any) int {
	return std.Snprintf(buf, format, args...)
}

// Fprintf formats to w with the default printer.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return std.Fprintf(w, format, args...)
}

// Outputf formats to the default printer's default output.
func Outputf(format string, args ...any) (int, error) {
	return std.Outputf(format, args...)
}

// RegisterHandler installs h for verb on the default printer.
func RegisterHandler(verb byte, h Handler) error {
	return std.RegisterHandler(verb, h)
}

// UnregisterHandler removes the handler for verb from the default printer.
func UnregisterHandler(verb byte) error {
	return std.UnregisterHandler(verb)
}

// SetFloatSupport toggles %f and %F on the default printer.
func SetFloatSupport(enabled bool) { std.SetFloatSupport(enabled) }

// SetLocale sets the default printer's decimal point from locale.
func SetLocale(locale string) { std.SetLocale(locale) }

// SetDefaultOutput sets the default printer's default output.
func SetDefaultOutput(out Sink) { std.SetDefaultOutput(out) }
