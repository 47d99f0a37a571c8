package ufmt

import (
	"github.com/google/uuid"
)

// Ready-made handlers for verbs the interpreter does not know. Install them
// with RegisterHandler, e.g. RegisterHandler('b', BinaryHandler{}).

// BinaryHandler renders an integer in base 2. The '#' flag adds a "0b"
// prefix to non-zero values. Width, precision and the sign, '0' and '-'
// flags behave as they do for %x.
type BinaryHandler struct{}

// Format implements [Handler].
func (BinaryHandler) Format(out Sink, d Descriptor, args *Args) int {
	u := truncUnsigned(args.Uint(), d.Length)
	var buf scratch
	n := Number{Signed: true, IntPrecision: true, Digits: AppendUint(buf[:0], u, 2, false)}
	if d.Flags.Has(FlagAlt) && u != 0 {
		n.Prefix = "0b"
	}
	return n.Write(out, d)
}

// UUIDHandler renders a uuid.UUID, a *uuid.UUID or a [16]byte in canonical
// hyphenated form. The '#' flag selects the "urn:uuid:" form. A nil
// *uuid.UUID renders as "(null)". Width and precision apply as for %s.
type UUIDHandler struct{}

// Format implements [Handler].
func (UUIDHandler) Format(out Sink, d Descriptor, args *Args) int {
	v := args.Next()
	var id uuid.UUID
	switch t := v.(type) {
	case uuid.UUID:
		id = t
	case *uuid.UUID:
		if t == nil {
			return WriteText(out, d, "(null)")
		}
		id = *t
	case [16]byte:
		id = uuid.UUID(t)
	default:
		panic(&ArgError{Index: args.Consumed() - 1, Want: "uuid", Value: v})
	}
	if d.Flags.Has(FlagAlt) {
		return WriteText(out, d, id.URN())
	}
	return WriteText(out, d, id.String())
}
