package ufmt

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// The helpers in this file measure text in terminal display columns, so wide
// and combining characters line up. The format interpreter itself counts
// bytes.

// Repeat writes c n times and returns the count written.
func Repeat(out Sink, c byte, n int) int {
	if n <= 0 {
		return 0
	}
	putRepeat(out, c, n)
	return n
}

// Align writes text inside a field of width columns, padding with spaces.
func Align(out Sink, text string, width int, a Alignment) int {
	return Fill(out, text, width, a, ' ')
}

// Fill writes text inside a field of width columns, padding with fill.
// Text wider than the field is written unchanged. AlignJustify stretches the
// gaps between words; a single word is left aligned.
func Fill(out Sink, text string, width int, a Alignment, fill byte) int {
	pad := width - runewidth.StringWidth(text)
	if pad <= 0 {
		putString(out, text)
		return len(text)
	}
	switch a {
	case AlignRight:
		putRepeat(out, fill, pad)
		putString(out, text)
	case AlignCenter:
		left := pad / 2
		putRepeat(out, fill, left)
		putString(out, text)
		putRepeat(out, fill, pad-left)
	case AlignJustify:
		return justify(out, text, pad, fill)
	default:
		putString(out, text)
		putRepeat(out, fill, pad)
	}
	return len(text) + pad
}

func justify(out Sink, text string, pad int, fill byte) int {
	words := strings.Fields(text)
	if len(words) < 2 {
		putString(out, text)
		putRepeat(out, fill, pad)
		return len(text) + pad
	}
	// Columns not taken by words, spread over the gaps left to right.
	free := pad + runewidth.StringWidth(text)
	for _, w := range words {
		free -= runewidth.StringWidth(w)
	}
	gaps := len(words) - 1
	n := 0
	for i, w := range words {
		putString(out, w)
		n += len(w)
		if i == gaps {
			break
		}
		g := free / gaps
		if i < free%gaps {
			g++
		}
		putRepeat(out, fill, g)
		n += g
	}
	return n
}

// Truncate writes text cut to width columns, ending in tail when cut. A
// width of zero or less writes text unchanged.
func Truncate(out Sink, text string, width int, tail string) int {
	if width > 0 && runewidth.StringWidth(text) > width {
		if width <= runewidth.StringWidth(tail) {
			tail = ""
		}
		text = runewidth.Truncate(text, width, tail)
	}
	putString(out, text)
	return len(text)
}

// Wrap writes text as lines of at most width columns, breaking between
// words and splitting words that are wider than a line. Every line starts
// with prefix; lines are separated by '\n'.
func Wrap(out Sink, text string, width int, prefix string) int {
	lines := wrapLines(text, width)
	n := 0
	for i, line := range lines {
		if i > 0 {
			out.PutByte('\n')
			n++
		}
		putString(out, prefix)
		putString(out, line)
		n += len(prefix) + len(line)
	}
	return n
}

func wrapLines(text string, width int) []string {
	words := strings.Fields(text)
	if width <= 0 {
		if len(words) == 0 {
			return nil
		}
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	var cur strings.Builder
	curWidth := 0
	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
	}
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if ww > width {
			flush()
			parts := splitWidth(w, width)
			lines = append(lines, parts[:len(parts)-1]...)
			last := parts[len(parts)-1]
			cur.WriteString(last)
			curWidth = runewidth.StringWidth(last)
			continue
		}
		if curWidth > 0 && curWidth+1+ww > width {
			flush()
		}
		if curWidth > 0 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(w)
		curWidth += ww
	}
	flush()
	return lines
}

// splitWidth cuts s into pieces of at most width columns.
func splitWidth(s string, width int) []string {
	var parts []string
	for len(s) > 0 {
		part := runewidth.Truncate(s, width, "")
		if part == "" {
			// Safety: advance at least one rune to avoid an infinite loop.
			_, size := utf8.DecodeRuneInString(s)
			part = s[:size]
		}
		parts = append(parts, part)
		s = s[len(part):]
	}
	return parts
}

// TransformText writes text rewritten by t and returns the byte count.
func TransformText(out Sink, text string, t Transform) int {
	var s string
	switch t {
	case TransformUpper:
		s = strings.ToUpper(text)
	case TransformLower:
		s = strings.ToLower(text)
	case TransformCapitalize:
		s = capitalize(text)
	case TransformReverse:
		r := []rune(text)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		s = string(r)
	case TransformROT13:
		s = strings.Map(rot13, text)
	default:
		s = text
	}
	putString(out, s)
	return len(s)
}

func capitalize(s string) string {
	prevSpace := true
	return strings.Map(func(r rune) rune {
		if prevSpace {
			prevSpace = unicode.IsSpace(r)
			return unicode.ToUpper(r)
		}
		prevSpace = unicode.IsSpace(r)
		return r
	}, s)
}

func rot13(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+13)%26
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+13)%26
	}
	return r
}
