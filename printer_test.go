package ufmt_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/ufmt"
)

// --- Test helpers ---

type errWriter struct{}

var errWrite = errors.New("write failed")

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }

type failAfterN struct {
	n       int
	written int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.written >= f.n {
		return 0, errWrite
	}
	f.written += len(p)
	return len(p), nil
}

func argPanic(t *testing.T, fn func()) (err *ufmt.ArgError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, e, ufmt.ErrArgument)
		require.ErrorAs(t, e, &err)
	}()
	fn()
	return nil
}

type format struct {
	format string
	args   []any
	want   string
}

func runFormats(t *testing.T, tests map[string]format) {
	t.Helper()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := ufmt.New()
			assert.Equal(t, tt.want, p.Sprintf(tt.format, tt.args...))
		})
	}
}

// --- Built-in verbs ---

func TestSignedIntegers(t *testing.T) {
	t.Parallel()
	runFormats(t, map[string]format{
		"plain":                 {"%d", []any{42}, "42"},
		"i verb":                {"%i", []any{7}, "7"},
		"zero":                  {"%d", []any{0}, "0"},
		"width":                 {"%5d", []any{42}, "   42"},
		"left":                  {"%-5d|", []any{42}, "42   |"},
		"zero fill":             {"%05d", []any{42}, "00042"},
		"left beats zero":       {"%-05d|", []any{42}, "42   |"},
		"negative width":        {"%5d", []any{-42}, "  -42"},
		"negative zero fill":    {"%05d", []any{-42}, "-0042"},
		"negative left":         {"%-6d|", []any{-42}, "-42   |"},
		"plus":                  {"%+d", []any{42}, "+42"},
		"plus negative":         {"%+d", []any{-42}, "-42"},
		"space":                 {"% d", []any{42}, " 42"},
		"plus beats space":      {"%+ d", []any{42}, "+42"},
		"plus zero fill":        {"%+05d", []any{42}, "+0042"},
		"precision":             {"%.5d", []any{42}, "00042"},
		"precision and width":   {"%8.5d", []any{42}, "   00042"},
		"precision drops zero":  {"%08.5d", []any{42}, "   00042"},
		"precision negative":    {"%.4d", []any{-7}, "-0007"},
		"precision shorter":     {"%.1d", []any{12345}, "12345"},
		"width shorter":         {"%2d", []any{12345}, "12345"},
		"int8":                  {"%d", []any{int8(-128)}, "-128"},
		"uint64 as signed":      {"%d", []any{uint64(7)}, "7"},
		"hh truncates":          {"%hhd", []any{200}, "-56"},
		"h truncates":           {"%hd", []any{70000}, "4464"},
		"l":                     {"%ld", []any{int64(1) << 40}, "1099511627776"},
		"ll min":                {"%lld", []any{int64(math.MinInt64)}, "-9223372036854775808"},
		"z t j accepted":        {"%zd %td %jd", []any{1, 2, 3}, "1 2 3"},
		"surrounded by literal": {"a%db", []any{1}, "a1b"},
	})
}

func TestUnsignedIntegers(t *testing.T) {
	t.Parallel()
	runFormats(t, map[string]format{
		"u":                 {"%u", []any{uint32(4294967295)}, "4294967295"},
		"u of negative int": {"%u", []any{-1}, "18446744073709551615"},
		"u width":           {"%6u", []any{uint(42)}, "    42"},
		"x":                 {"%x", []any{0xABCDEF}, "abcdef"},
		"X":                 {"%X", []any{0xABCDEF}, "ABCDEF"},
		"alt x":             {"%#x", []any{0xABC}, "0xabc"},
		"alt X":             {"%#X", []any{0xABC}, "0XABC"},
		"alt x zero":        {"%#x", []any{0}, "0"},
		"alt x zero fill":   {"%#08x", []any{255}, "0x0000ff"},
		"alt x width":       {"%#8x", []any{255}, "    0xff"},
		"alt x precision":   {"%#.4x", []any{255}, "0x00ff"},
		"x width":           {"%8x", []any{255}, "      ff"},
		"x int8 negative":   {"%x", []any{int8(-1)}, "ff"},
		"x int32 negative":  {"%x", []any{int32(-1)}, "ffffffff"},
		"hhx":               {"%hhx", []any{0x1234}, "34"},
		"hx":                {"%hx", []any{0x12345}, "2345"},
		"plus x":            {"%+x", []any{255}, "+ff"},
		"plus alt x":        {"%+#x", []any{255}, "+0xff"},
		"plus u":            {"%+u", []any{uint(5)}, "+5"},
		"space u":           {"% u", []any{uint(5)}, " 5"},
		"plus o zero fill":  {"%+05o", []any{8}, "+0010"},
		"space x width":     {"% 5x", []any{255}, "   ff"},
		"o":                 {"%o", []any{511}, "777"},
		"alt o":             {"%#o", []any{511}, "0777"},
		"alt o zero":        {"%#o", []any{0}, "0"},
		"alt o width":       {"%#5o", []any{8}, "  010"},
	})
}

func TestCharacters(t *testing.T) {
	t.Parallel()
	runFormats(t, map[string]format{
		"ascii":        {"%c", []any{'A'}, "A"},
		"byte":         {"%c", []any{byte('z')}, "z"},
		"width":        {"%5c", []any{'A'}, "    A"},
		"left":         {"%-3c|", []any{'A'}, "A  |"},
		"multibyte":    {"%c", []any{'世'}, "世"},
		"invalid rune": {"%c", []any{rune(-1)}, "�"},
	})
}

type stringer struct{ s string }

func (s *stringer) String() string { return s.s }

func TestStrings(t *testing.T) {
	t.Parallel()
	var nilStr *string
	var nilStringer *stringer
	runFormats(t, map[string]format{
		"plain":               {"%s", []any{"hello"}, "hello"},
		"width":               {"%10s", []any{"hello"}, "     hello"},
		"left":                {"%-10s|", []any{"hello"}, "hello     |"},
		"precision":           {"%.2s", []any{"hello"}, "he"},
		"precision zero":      {"%.s", []any{"hello"}, ""},
		"width and precision": {"%5.1s", []any{"abc"}, "    a"},
		"zero flag ignored":   {"%05s", []any{"ab"}, "   ab"},
		"nil":                 {"%s", []any{nil}, "(null)"},
		"nil string pointer":  {"%s", []any{nilStr}, "(null)"},
		"nil stringer":        {"%s", []any{nilStringer}, "(null)"},
		"nil padded":          {"%8s", []any{nil}, "  (null)"},
		"bytes":               {"%s", []any{[]byte("hi")}, "hi"},
		"error":               {"%s", []any{errors.New("boom")}, "boom"},
		"stringer":            {"%s", []any{&stringer{"st"}}, "st"},
		"empty":               {"[%s]", []any{""}, "[]"},
	})
}

func TestPointers(t *testing.T) {
	t.Parallel()
	runFormats(t, map[string]format{
		"uintptr":   {"%p", []any{uintptr(0x1234)}, "0x1234"},
		"nil":       {"%p", []any{nil}, "0x0"},
		"width":     {"%8p", []any{uintptr(0xff)}, "    0xff"},
		"zero fill": {"%08p", []any{uintptr(0xff)}, "0x0000ff"},
		"plus":      {"%+p", []any{uintptr(0xff)}, "+0xff"},
		"space":     {"% p", []any{uintptr(0xff)}, " 0xff"},
	})

	t.Run("real pointer", func(t *testing.T) {
		t.Parallel()
		x := 1
		got := ufmt.New().Sprintf("%p", &x)
		assert.True(t, strings.HasPrefix(got, "0x"), got)
		assert.Greater(t, len(got), 2)
	})
}

func TestFloats(t *testing.T) {
	t.Parallel()
	runFormats(t, map[string]format{
		"default precision":   {"%f", []any{3.14159}, "3.141590"},
		"F":                   {"%F", []any{1.5}, "1.500000"},
		"precision":           {"%.2f", []any{3.14159}, "3.14"},
		"rounds half up":      {"%.0f", []any{2.5}, "3"},
		"rounds down":         {"%.0f", []any{0.4}, "0"},
		"carry":               {"%.1f", []any{9.96}, "10.0"},
		"width":               {"%8.3f", []any{3.14159}, "   3.142"},
		"left":                {"%-8.2f|", []any{3.14159}, "3.14    |"},
		"zero fill negative":  {"%08.2f", []any{-3.14159}, "-0003.14"},
		"zero fill":           {"%07.2f", []any{2.5}, "0002.50"},
		"plus":                {"%+.1f", []any{2.0}, "+2.0"},
		"space":               {"% .1f", []any{2.0}, " 2.0"},
		"negative tiny":       {"%.2f", []any{-0.001}, "-0.00"},
		"float32":             {"%.1f", []any{float32(0.5)}, "0.5"},
		"integer argument":    {"%.1f", []any{3}, "3.0"},
		"beyond uint64":       {"%.3f", []any{1e20}, "100000000000000000000.000"},
		"nan":                 {"%f", []any{math.NaN()}, "nan"},
		"inf":                 {"%f", []any{math.Inf(1)}, "inf"},
		"negative inf":        {"%f", []any{math.Inf(-1)}, "-inf"},
		"inf width":           {"%5f", []any{math.Inf(1)}, "  inf"},
		"inf never zero fill": {"%05f", []any{math.Inf(-1)}, " -inf"},
		"precision clamped":   {"%.100f", []any{0.0}, "0." + strings.Repeat("0", ufmt.MaxPrecision)},
	})
}

func TestEscapes(t *testing.T) {
	t.Parallel()
	runFormats(t, map[string]format{
		"percent":             {"%%", nil, "%"},
		"percent in text":     {"100%%", nil, "100%"},
		"empty":               {"", nil, ""},
		"literal only":        {"Hello, World!", nil, "Hello, World!"},
		"trailing percent":    {"abc%", nil, "abc"},
		"unknown verb":        {"%y", nil, "%y"},
		"unknown with flags":  {"%-5y", nil, "%y"},
		"length then end":     {"%z", nil, "%z"},
		"width then end":      {"%5", nil, "%5"},
		"flags then end":      {"%-", nil, "%-"},
		"precision then end":  {"a%.3", nil, "a%.3"},
		"unknown then verb":   {"%q%d", []any{1}, "%q1"},
		"multiple":            {"%d-%s-%c", []any{1, "two", '3'}, "1-two-3"},
		"star width":          {"%*d", []any{5, 42}, "   42"},
		"star width left":     {"%-*d|", []any{5, 42}, "42   |"},
		"negative star width": {"%*d|", []any{-5, 42}, "42   |"},
		"star precision":      {"%.*f", []any{2, 3.14159}, "3.14"},
		"negative star prec":  {"%.*s", []any{-1, "abc"}, "abc"},
		"star both":           {"%*.*s|", []any{4, 2, "abc"}, "  ab|"},
	})
}

// --- Return values and sinks ---

func TestPrintfReturnsCount(t *testing.T) {
	t.Parallel()
	var b ufmt.Builder
	n, err := ufmt.New().Printf(&b, "Hello, %s!", "World")
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.Equal(t, "Hello, World!", b.String())
}

func TestPrintfCountIncludesPadding(t *testing.T) {
	t.Parallel()
	n, err := ufmt.New().Printf(ufmt.Discard, "%-5d|%05.1f|%#6x|%%|%3c", -1, 2.5, 10, 'x')
	require.NoError(t, err)
	assert.Equal(t, len("-1   |002.5|   0xa|%|  x"), n)
}

func TestPrintfNilSink(t *testing.T) {
	t.Parallel()
	n, err := ufmt.New().Printf(nil, "hello")
	assert.Equal(t, -1, n)
	assert.ErrorIs(t, err, ufmt.ErrNilSink)
}

func TestSnprintfTruncates(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 10)
	n := ufmt.New().Snprintf(buf, "Hello, %s!", "World")
	assert.Equal(t, 9, n)
	assert.Equal(t, "Hello, Wo", string(buf[:n]))
	assert.Equal(t, byte(0), buf[9])
}

func TestSnprintfFits(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 32)
	n := ufmt.New().Snprintf(buf, "%d+%d", 1, 2)
	assert.Equal(t, 3, n)
	assert.Equal(t, "1+2\x00", string(buf[:4]))
}

func TestSnprintfEmptyBuffer(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, ufmt.New().Snprintf(nil, "x"))
}

func TestSnprintfSingleByte(t *testing.T) {
	t.Parallel()
	buf := []byte{'z'}
	assert.Equal(t, 0, ufmt.New().Snprintf(buf, "abc"))
	assert.Equal(t, byte(0), buf[0])
}

func TestAppend(t *testing.T) {
	t.Parallel()
	got := ufmt.New().Append([]byte("n="), "%d", 5)
	assert.Equal(t, "n=5", string(got))
}

func TestFprintf(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := ufmt.New().Fprintf(&buf, "%s=%d\n", "x", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "x=1\n", buf.String())
}

func TestFprintfWriteError(t *testing.T) {
	t.Parallel()
	n, err := ufmt.New().Fprintf(errWriter{}, "hello")
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, 0, n)
}

func TestFprintfPartialWrite(t *testing.T) {
	t.Parallel()
	n, err := ufmt.New().Fprintf(&failAfterN{n: 3}, "hello")
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, 3, n)
}

func TestFprintfNilWriter(t *testing.T) {
	t.Parallel()
	n, err := ufmt.New().Fprintf(nil, "hello")
	assert.Equal(t, -1, n)
	assert.ErrorIs(t, err, ufmt.ErrNilSink)
}

func TestSinkFunc(t *testing.T) {
	t.Parallel()
	var got []byte
	sink := ufmt.SinkFunc(func(c byte) { got = append(got, c) })
	n, err := ufmt.New().Printf(sink, "[%3s]", "a")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "[  a]", string(got))
}

func TestVprintf(t *testing.T) {
	t.Parallel()
	args := ufmt.NewArgs(1, 2, 3)
	var b ufmt.Builder
	_, err := ufmt.New().Vprintf(&b, "%d", args)
	require.NoError(t, err)
	assert.Equal(t, "1", b.String())
	assert.Equal(t, 1, args.Consumed())
	assert.Equal(t, 2, args.Remaining())
}

// --- %n ---

func TestCountVerb(t *testing.T) {
	t.Parallel()
	var n int
	var n32 int32
	var n64 int64
	got := ufmt.New().Sprintf("hello%n wor%nld%n", &n, &n32, &n64)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, 5, n)
	assert.Equal(t, int32(9), n32)
	assert.Equal(t, int64(11), n64)
}

func TestCountVerbNilPointer(t *testing.T) {
	t.Parallel()
	var p *int
	assert.Equal(t, "ab", ufmt.New().Sprintf("a%nb", p))
}

// --- Argument errors ---

func TestMissingArgumentPanics(t *testing.T) {
	t.Parallel()
	err := argPanic(t, func() { ufmt.New().Sprintf("%d %d", 1) })
	assert.True(t, err.Missing)
	assert.Equal(t, 1, err.Index)
}

type (
	level  int
	small  int8
	mask   uint8
	ratio  float64
	color  string
	blob   []byte
	letter rune
)

func TestNamedArgumentTypes(t *testing.T) {
	t.Parallel()
	runFormats(t, map[string]format{
		"named int":        {"%d", []any{level(3)}, "3"},
		"duration":         {"%d", []any{time.Duration(7)}, "7"},
		"named int x":      {"%x", []any{level(-1)}, "ffffffffffffffff"},
		"named int8 x":     {"%x", []any{small(-1)}, "ff"},
		"named uint8 u":    {"%u", []any{mask(200)}, "200"},
		"named uint8 d":    {"%d", []any{mask(200)}, "200"},
		"named float":      {"%.2f", []any{ratio(1.5)}, "1.50"},
		"named int float":  {"%.1f", []any{level(2)}, "2.0"},
		"named string":     {"%s", []any{color("red")}, "red"},
		"named string pad": {"%-5s|", []any{color("red")}, "red  |"},
		"named bytes":      {"%s", []any{blob("hi")}, "hi"},
		"nil named bytes":  {"%s", []any{blob(nil)}, "(null)"},
		"named rune":       {"%c", []any{letter('A')}, "A"},
		"named star width": {"%*d", []any{level(4), 7}, "   7"},
		"duration string":  {"%s", []any{2 * time.Second}, "2s"},
	})
}

func TestWrongArgumentKindPanics(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		arg    any
		want   string
	}{
		"string for d":    {"%d", "x", "integer"},
		"int for s":       {"%s", 5, "string"},
		"string for f":    {"%f", "x", "float"},
		"float for c":     {"%c", 1.5, "character"},
		"string for n":    {"%n", "x", "*int"},
		"int for p":       {"%p", 5, "pointer"},
		"string for star": {"%*d", "x", "integer"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := argPanic(t, func() { ufmt.New().Sprintf(tt.format, tt.arg, 1) })
			assert.Equal(t, 0, err.Index)
			assert.Equal(t, tt.want, err.Want)
			assert.False(t, err.Missing)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// --- Float toggle, locale, default output ---

func TestFloatSupportDisabled(t *testing.T) {
	t.Parallel()
	p := ufmt.New(ufmt.WithFloatSupport(false))
	assert.False(t, p.FloatSupport())
	assert.Equal(t, "%f|7|%F", p.Sprintf("%f|%d|%.2F", 1.5, 7, 2.5))

	p.SetFloatSupport(true)
	assert.Equal(t, "1.50", p.Sprintf("%.2f", 1.5))
}

func TestDecimalPoint(t *testing.T) {
	t.Parallel()
	p := ufmt.New(ufmt.WithDecimalPoint(','))
	assert.Equal(t, byte(','), p.DecimalPoint())
	assert.Equal(t, "3,14", p.Sprintf("%.2f", 3.14159))
}

func TestSetLocale(t *testing.T) {
	t.Parallel()
	p := ufmt.New()
	p.SetLocale(",")
	assert.Equal(t, "1,5", p.Sprintf("%.1f", 1.5))
	p.SetLocale("")
	assert.Equal(t, byte(','), p.DecimalPoint())
}

func TestOutputf(t *testing.T) {
	t.Parallel()
	p := ufmt.New()
	n, err := p.Outputf("x")
	assert.Equal(t, -1, n)
	assert.ErrorIs(t, err, ufmt.ErrNilSink)

	var b ufmt.Builder
	p.SetDefaultOutput(&b)
	n, err = p.Outputf("%d!", 9)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "9!", b.String())

	p.SetDefaultOutput(nil)
	_, err = p.Outputf("x")
	assert.ErrorIs(t, err, ufmt.ErrNilSink)
}

func TestWithDefaultOutput(t *testing.T) {
	t.Parallel()
	var b ufmt.Builder
	p := ufmt.New(ufmt.WithDefaultOutput(&b))
	_, err := p.Outputf("ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", b.String())
}

// --- Handlers ---

func TestCustomHandler(t *testing.T) {
	t.Parallel()
	p := ufmt.New()
	require.NoError(t, p.RegisterHandler('K', ufmt.HandlerFunc(func(out ufmt.Sink, _ ufmt.Descriptor, _ *ufmt.Args) int {
		return ufmt.WriteText(out, ufmt.Descriptor{}, "CUSTOM")
	})))
	assert.Equal(t, "[CUSTOM]", p.Sprintf("[%K]"))

	require.NoError(t, p.UnregisterHandler('K'))
	assert.Equal(t, "[%K]", p.Sprintf("[%K]"))
}

func TestHandlerSeesDescriptorAndArgs(t *testing.T) {
	t.Parallel()
	p := ufmt.New()
	var seen ufmt.Descriptor
	require.NoError(t, p.RegisterHandler('v', ufmt.HandlerFunc(func(out ufmt.Sink, d ufmt.Descriptor, args *ufmt.Args) int {
		seen = d
		s, _ := args.Str()
		return ufmt.WriteText(out, d, strings.ToUpper(s))
	})))
	got := p.Sprintf("%-*.2lv|%d", 6, "abc", 5)
	assert.Equal(t, "AB    |5", got)
	assert.True(t, seen.Flags.Has(ufmt.FlagLeft))
	assert.Equal(t, 6, seen.Width)
	assert.Equal(t, 2, seen.Precision)
	assert.Equal(t, ufmt.LengthLong, seen.Length)
	assert.Equal(t, byte('v'), seen.Verb)
	assert.Equal(t, "%-6.2lv", seen.String())
}

func TestHandlerOverridesBuiltin(t *testing.T) {
	t.Parallel()
	p := ufmt.New()
	require.NoError(t, p.RegisterHandler('d', ufmt.HandlerFunc(func(out ufmt.Sink, d ufmt.Descriptor, args *ufmt.Args) int {
		v := args.Int()
		return ufmt.Number{Digits: []byte(strings.Repeat("I", int(v)))}.Write(out, d)
	})))
	assert.Equal(t, "  III", p.Sprintf("%5d", 3))
}

func TestHandlerCountFeedsCountVerb(t *testing.T) {
	t.Parallel()
	p := ufmt.New()
	require.NoError(t, p.RegisterHandler('Q', ufmt.HandlerFunc(func(out ufmt.Sink, _ ufmt.Descriptor, _ *ufmt.Args) int {
		out.PutByte('q')
		out.PutByte('q')
		return 2
	})))
	var n int
	assert.Equal(t, "aqq", p.Sprintf("a%Q%n", &n))
	assert.Equal(t, 3, n)
}

func TestRegisterHandlerErrors(t *testing.T) {
	t.Parallel()
	noop := ufmt.HandlerFunc(func(ufmt.Sink, ufmt.Descriptor, *ufmt.Args) int { return 0 })
	p := ufmt.New(ufmt.WithMaxHandlers(2))

	require.NoError(t, p.RegisterHandler('a', noop))
	require.NoError(t, p.RegisterHandler('b', noop))
	assert.ErrorIs(t, p.RegisterHandler('c', noop), ufmt.ErrRegistryFull)
	assert.NoError(t, p.RegisterHandler('a', noop), "replacing never fails for capacity")
	assert.ErrorIs(t, p.RegisterHandler('x', nil), ufmt.ErrNilHandler)
	assert.ErrorIs(t, p.RegisterHandler(0, noop), ufmt.ErrInvalidVerb)
	assert.ErrorIs(t, p.UnregisterHandler('z'), ufmt.ErrHandlerNotFound)

	assert.Equal(t, []byte{'a', 'b'}, p.Registry().Verbs())
	assert.Equal(t, 2, p.Registry().Len())
	assert.Equal(t, 2, p.Registry().Cap())
}

func TestRegisterHandlerLogs(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	noop := ufmt.HandlerFunc(func(ufmt.Sink, ufmt.Descriptor, *ufmt.Args) int { return 0 })
	p := ufmt.New(ufmt.WithLogger(logger), ufmt.WithMaxHandlers(1))

	require.NoError(t, p.RegisterHandler('a', noop))
	require.Error(t, p.RegisterHandler('b', noop))
	require.NoError(t, p.UnregisterHandler('a'))

	out := buf.String()
	assert.Contains(t, out, "handler registered")
	assert.Contains(t, out, "handler not registered")
	assert.Contains(t, out, "handler removed")
}

func TestSharedRegistry(t *testing.T) {
	t.Parallel()
	reg := ufmt.NewRegistry(0)
	a := ufmt.New(ufmt.WithRegistry(reg))
	b := ufmt.New(ufmt.WithRegistry(reg), ufmt.WithDecimalPoint(','))
	require.NoError(t, a.RegisterHandler('b', ufmt.BinaryHandler{}))
	assert.Equal(t, "101", b.Sprintf("%b", 5))
	assert.Equal(t, 0, reg.Cap())
}

func TestConcurrentFormatAndRegister(t *testing.T) {
	t.Parallel()
	p := ufmt.New()
	h := ufmt.HandlerFunc(func(out ufmt.Sink, _ ufmt.Descriptor, _ *ufmt.Args) int {
		out.PutByte('!')
		return 1
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				got := p.Sprintf("%05d%K", j)
				if got[5:] != "!" && got[5:] != "%K" {
					t.Errorf("unexpected output %q", got)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = p.RegisterHandler('K', h)
				_ = p.UnregisterHandler('K')
			}
		}()
	}
	wg.Wait()
}

// --- Package-level functions ---

func TestDefaultPrinter(t *testing.T) {
	assert.Same(t, ufmt.Default(), ufmt.Default())
	assert.Equal(t, "Hello, World!", ufmt.Sprintf("Hello, %s!", "World"))
	assert.Equal(t, "x1", string(ufmt.Append([]byte("x"), "%d", 1)))

	buf := make([]byte, 4)
	assert.Equal(t, 3, ufmt.Snprintf(buf, "%s", "abcdef"))

	var b ufmt.Builder
	n, err := ufmt.Printf(&b, "%c", 'a')
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = ufmt.Vprintf(&b, "%d", ufmt.NewArgs(2))
	require.NoError(t, err)
	assert.Equal(t, "a2", b.String())

	var w bytes.Buffer
	_, err = ufmt.Fprintf(&w, "%s", "w")
	require.NoError(t, err)
	assert.Equal(t, "w", w.String())
}
