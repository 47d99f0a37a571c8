package ufmt

import "iter"

// WriteSeq formats each value of seq with format, one value per call, and
// writes the results to out as they arrive. It returns the total byte
// count. A nil p uses the default printer.
//
//	ufmt.WriteSeq(nil, out, "%5d\n", slices.Values(nums))
func WriteSeq[T any](p *Printer, out Sink, format string, seq iter.Seq[T]) (int, error) {
	if p == nil {
		p = std
	}
	if out == nil {
		return -1, ErrNilSink
	}
	total := 0
	for v := range seq {
		n, err := p.Vprintf(out, format, NewArgs(v))
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// WriteChan formats values received from ch until it is closed.
// It is a thin wrapper around [WriteSeq].
func WriteChan[T any](p *Printer, out Sink, format string, ch <-chan T) (int, error) {
	return WriteSeq(p, out, format, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
