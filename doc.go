// Package ufmt is a printf-style formatting engine that writes through a
// caller-supplied [Sink] one byte at a time and accepts caller-defined verbs.
//
// The central entry point is [Printer.Printf], which walks a format template,
// copies literal text, and expands each conversion using the next values of
// its argument list. The package-level [Printf], [Sprintf], [Snprintf],
// [Fprintf] and [Append] use a shared default [Printer].
//
// # Template Grammar
//
// Each conversion has the form
//
//	%[flags][width][.precision][length]verb
//
// parsed strictly in that order:
//
//   - flags: any of '-' (left align), '+' (always sign), ' ' (space for
//     positive), '0' (zero fill), '#' (alternate form). The sign flags
//     apply to every numeric verb, unsigned ones included: %+x of 255 is
//     "+ff".
//   - width: decimal digits, or '*' to take it from the argument list. A
//     negative '*' width left aligns to its absolute value.
//   - precision: '.' followed by digits or '*'. A bare '.' means 0; a
//     negative '*' precision is ignored.
//   - length: hh, h, l, ll, z, t or j. hh and h truncate integers to 8 and
//     16 bits; the others are accepted and change nothing.
//
// Built-in verbs:
//
//   - d, i: signed decimal
//   - u, o, x, X: unsigned decimal, octal and hexadecimal
//   - f, F: fixed-point with half-up rounding, default precision 6
//   - c: one character, written as UTF-8
//   - s: string; nil renders as "(null)"
//   - p: address as 0x-prefixed hexadecimal
//   - n: stores the count written so far into *int, *int32 or *int64
//   - %: a literal '%'
//
// Malformed templates are never rejected. An unknown verb is echoed as '%'
// plus the verb, and a template ending inside an escape echoes the escape
// text consumed so far.
//
// Field composition for numbers follows one order: leading spaces, sign,
// prefix, zeros, digits, trailing spaces. Zero fill is ignored when left
// aligned, and for integers when a precision is given.
//
// # Arguments
//
// Values are consumed strictly left to right, one per conversion plus one
// per '*'. A value of the wrong kind, or a template that asks for more
// values than were passed, is a caller error: the conversion panics with
// an [*ArgError] that wraps [ErrArgument].
//
// # Custom Verbs
//
// Install a [Handler] to own a verb. Handlers are consulted before the
// built-in verbs, so they can also replace them:
//
//	p := ufmt.New()
//	p.RegisterHandler('b', ufmt.BinaryHandler{})
//	p.Sprintf("%#010b", 5) // "0b00000101"
//
// A handler receives the parsed [Descriptor] and pulls its own values. The
// exported [Number] and [WriteText] apply the same padding rules as the
// built-in verbs. A registry is bounded; see [WithMaxHandlers].
//
// # Concurrency
//
// A [Printer] is safe for concurrent use. Handler lookups read an immutable
// snapshot of the registry, and registration swaps in a new one, so a
// format call in flight sees either the old or the new handler set. The
// decimal point, float toggle and default output are atomics.
//
// A [Sink] is owned by the caller; sharing one between goroutines needs the
// caller's own synchronisation.
//
// # Sinks
//
// [WriterSink] forwards to an [io.Writer]. [BoundedSink] fills a fixed buffer
// and backs [Snprintf]. [Pipeline] rewrites or observes bytes on their way
// to another sink, [Broadcaster] fans them out to several, and [Builder]
// collects them in memory.
//
// # Configuration
//
// [Config] is the file form of the printer options and of named templates.
// It loads from YAML or JSON with [LoadConfig]:
//
//	decimal_point: ","
//	float_support: true
//	max_handlers: 32
//	templates:
//	  greeting: "Hello, {{name}}!"
package ufmt
