// Package numfmt writes decimal text for numbers directly into reserved
// buffer memory.
//
// Every writer takes dst, the spare capacity of a buffer, formats into
// dst[:0] and returns the number of bytes written. Callers reserve the
// matching maximum length first, so the append never reallocates; a writer
// whose output would not fit panics instead of silently writing elsewhere.
package numfmt

import (
	"math/big"
	"strconv"

	"github.com/wippyai/render-runtime/errors"
)

// Upper bounds for the float writers.
const (
	MaxFloat32Len = 17
	MaxFloat64Len = 24
)

// IntLen returns the longest decimal form of an integer of the given byte
// size, sign included.
func IntLen(size uintptr, signed bool) int {
	var n int
	switch size {
	case 1:
		n = 3
	case 2:
		n = 5
	case 4:
		n = 10
	default:
		// MaxUint64 and MinInt64 are both 20 bytes
		return 20
	}
	if signed {
		n++
	}
	return n
}

// Int writes v in base 10.
func Int(dst []byte, v int64) int {
	return written(dst, strconv.AppendInt(dst[:0], v, 10))
}

// Uint writes v in base 10.
func Uint(dst []byte, v uint64) int {
	return written(dst, strconv.AppendUint(dst[:0], v, 10))
}

// BigIntLen returns an upper bound for the decimal form of v.
func BigIntLen(v *big.Int) int {
	// log10(2) rounded up, plus one digit and the sign
	return v.BitLen()*30103/100000 + 2
}

// BigInt writes v in base 10.
func BigInt(dst []byte, v *big.Int) int {
	return written(dst, v.Append(dst[:0], 10))
}

// Float32 writes the shortest decimal that parses back to f. f must be finite.
func Float32(dst []byte, f float32) int {
	return shortest(dst, float64(f), 32, -6, 13)
}

// Float64 writes the shortest decimal that parses back to f. f must be finite.
func Float64(dst []byte, f float64) int {
	return shortest(dst, f, 64, -5, 16)
}

// shortest lays out the shortest round-trip digits of f:
//
//	1234e7   -> 12340000000.0   integral, point at or before maxPoint
//	1234e-2  -> 12.34           point inside the digits
//	1234e-6  -> 0.001234        point just before the digits, after minPoint
//	1e30     -> 1e30            single digit, scientific
//	1234e30  -> 1.234e33        scientific
func shortest(dst []byte, f float64, bitSize, minPoint, maxPoint int) int {
	var scratch [32]byte
	sci := strconv.AppendFloat(scratch[:0], f, 'e', -1, bitSize)

	out := dst[:0]
	if sci[0] == '-' {
		out = append(out, '-')
		sci = sci[1:]
	}

	var digits [17]byte
	nd := 0
	i := 0
	for ; sci[i] != 'e'; i++ {
		if sci[i] != '.' {
			digits[nd] = sci[i]
			nd++
		}
	}
	exp := parseExponent(sci[i+1:])

	// 10^(point-1) <= |f| < 10^point
	point := exp + 1
	trailing := point - nd

	switch {
	case trailing >= 0 && point <= maxPoint:
		out = append(out, digits[:nd]...)
		for z := 0; z < trailing; z++ {
			out = append(out, '0')
		}
		out = append(out, '.', '0')
	case point > 0 && point <= maxPoint:
		out = append(out, digits[:point]...)
		out = append(out, '.')
		out = append(out, digits[point:nd]...)
	case point > minPoint && point <= 0:
		out = append(out, '0', '.')
		for z := 0; z < -point; z++ {
			out = append(out, '0')
		}
		out = append(out, digits[:nd]...)
	case nd == 1:
		out = append(out, digits[0], 'e')
		out = strconv.AppendInt(out, int64(point-1), 10)
	default:
		out = append(out, digits[0], '.')
		out = append(out, digits[1:nd]...)
		out = append(out, 'e')
		out = strconv.AppendInt(out, int64(point-1), 10)
	}
	return written(dst, out)
}

// parseExponent parses the "+07" / "-308" tail of an 'e' formatted float.
func parseExponent(p []byte) int {
	neg := p[0] == '-'
	n := 0
	for _, c := range p[1:] {
		n = n*10 + int(c-'0')
	}
	if neg {
		return -n
	}
	return n
}

func written(dst, out []byte) int {
	if len(out) > len(dst) {
		panic(errors.New(errors.PhaseFormat, errors.KindOverflow).
			Detail("formatted %d bytes into %d bytes of reserved space", len(out), len(dst)).
			Build())
	}
	return len(out)
}
