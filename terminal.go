package ufmt

// ANSI control sequences for cursor and screen handling. Each helper writes
// the sequence to out and returns its length.

const (
	seqSavePosition    = "\033[s"
	seqRestorePosition = "\033[u"
	seqClearLine       = "\033[2K"
	seqClearScreen     = "\033[2J"
)

// MoveTo positions the cursor at column x, row y (both 1-based).
func MoveTo(out Sink, x, y int) int {
	n, _ := std.Printf(out, "\033[%d;%dH", y, x)
	return n
}

// SavePosition stores the cursor position.
func SavePosition(out Sink) int { return writeSeq(out, seqSavePosition) }

// RestorePosition returns the cursor to the last saved position.
func RestorePosition(out Sink) int { return writeSeq(out, seqRestorePosition) }

// ClearLine erases the current line.
func ClearLine(out Sink) int { return writeSeq(out, seqClearLine) }

// ClearScreen erases the whole screen.
func ClearScreen(out Sink) int { return writeSeq(out, seqClearScreen) }

func writeSeq(out Sink, seq string) int {
	putString(out, seq)
	return len(seq)
}
