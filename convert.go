package ufmt

import (
	"math"
	"strconv"
)

const (
	digitsLower = "0123456789abcdefghijklmnopqrstuvwxyz"
	digitsUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DefaultPrecision is used by %f when no precision is given.
	DefaultPrecision = 6
	// MaxPrecision is the largest fractional digit count %f renders.
	// Larger precisions are clamped.
	MaxPrecision = 64

	// scratchSize holds the widest rendering: 64 binary digits plus sign and
	// prefix, or a 309-digit float integer part plus point and MaxPrecision.
	scratchSize = 400
)

// scratch is the per-conversion buffer. Appending within its capacity does
// not allocate.
type scratch [scratchSize]byte

// AppendUint appends the minimal representation of v in base (2..36), most
// significant digit first. Zero renders as "0". An out-of-range base appends
// nothing.
func AppendUint(dst []byte, v uint64, base int, upper bool) []byte {
	if base < 2 || base > 36 {
		return dst
	}
	digits := digitsLower
	if upper {
		digits = digitsUpper
	}
	var tmp [64]byte
	i := len(tmp)
	b := uint64(base)
	for {
		i--
		tmp[i] = digits[v%b]
		v /= b
		if v == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// AppendInt appends v in base. A '-' is written only for negative values in
// base 10; other bases render the two's-complement bits as unsigned.
func AppendInt(dst []byte, v int64, base int, upper bool) []byte {
	if base < 2 || base > 36 {
		return dst
	}
	if v < 0 && base == 10 {
		return AppendUint(append(dst, '-'), uint64(-v), 10, upper)
	}
	return AppendUint(dst, uint64(v), base, upper)
}

// two64 is 2^64, the first float whose integer part no longer fits a uint64.
const two64 = 1 << 64

// AppendFixed appends v in fixed-point notation with exactly prec fractional
// digits, using point as the decimal separator. A negative prec selects
// DefaultPrecision and prec is clamped to MaxPrecision.
//
// Rounding is half-up: a bias of half a unit at the requested precision is
// added once before the digits are produced by repeated multiplication, so
// the result follows the binary value of v plus the bias. NaN and the
// infinities render as "nan", "inf" and "-inf".
func AppendFixed(dst []byte, v float64, prec int, point byte) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "nan"...)
	case math.IsInf(v, 1):
		return append(dst, "inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-inf"...)
	}
	if prec < 0 {
		prec = DefaultPrecision
	}
	if prec > MaxPrecision {
		prec = MaxPrecision
	}
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}

	bias := 0.5
	for i := 0; i < prec; i++ {
		bias /= 10
	}
	v += bias

	whole := math.Floor(v)
	frac := v - whole
	if whole < two64 {
		dst = AppendUint(dst, uint64(whole), 10, false)
	} else {
		dst = strconv.AppendFloat(dst, whole, 'f', 0, 64)
	}

	if prec == 0 {
		return dst
	}
	dst = append(dst, point)
	for i := 0; i < prec; i++ {
		frac *= 10
		d := int(frac)
		if d > 9 {
			d = 9
		}
		dst = append(dst, byte('0'+d))
		frac -= float64(d)
	}
	return dst
}

func truncSigned(v int64, l Length) int64 {
	switch l {
	case LengthChar:
		return int64(int8(v))
	case LengthShort:
		return int64(int16(v))
	}
	return v
}

func truncUnsigned(v uint64, l Length) uint64 {
	switch l {
	case LengthChar:
		return uint64(uint8(v))
	case LengthShort:
		return uint64(uint16(v))
	}
	return v
}
