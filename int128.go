package arraystring

import (
	"math"
	"math/bits"
	"strconv"
)

// Uint128 is an unsigned 128-bit integer, Hi<<64 | Lo.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a two's complement signed 128-bit integer. Hi holds the sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Limits of the 128-bit types.
var (
	MaxUint128 = Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	MinInt128  = Int128{Hi: math.MinInt64}
	MaxInt128  = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
)

// Uint128From64 widens v.
func Uint128From64(v uint64) Uint128 { return Uint128{Lo: v} }

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 { return Int128{Hi: v >> 63, Lo: uint64(v)} }

// IsZero reports whether v is zero.
func (v Uint128) IsZero() bool { return v.Hi == 0 && v.Lo == 0 }

// IsNeg reports whether v is negative.
func (v Int128) IsNeg() bool { return v.Hi < 0 }

// Magnitude returns |v| as an unsigned value. It is exact for MinInt128,
// whose magnitude 2^127 has no positive Int128 form.
func (v Int128) Magnitude() Uint128 {
	if v.Hi >= 0 {
		return Uint128{Hi: uint64(v.Hi), Lo: v.Lo}
	}
	lo, borrow := bits.Sub64(0, v.Lo, 0)
	hi, _ := bits.Sub64(0, uint64(v.Hi), borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// pow19 is the largest power of ten below 2^64.
const pow19 = 1e19

func appendUint128(dst []byte, v Uint128) []byte {
	if v.Hi == 0 {
		return strconv.AppendUint(dst, v.Lo, 10)
	}
	// Peel 19-digit chunks off the low end until the rest fits in 64 bits.
	// A value this wide needs at most two chunks.
	var tmp [2 * 19]byte
	i := len(tmp)
	hi, lo := v.Hi, v.Lo
	for hi != 0 {
		var r uint64
		q := hi / pow19
		lo, r = bits.Div64(hi%pow19, lo, pow19)
		hi = q
		for range 19 {
			i--
			tmp[i] = byte('0' + r%10)
			r /= 10
		}
	}
	dst = strconv.AppendUint(dst, lo, 10)
	return append(dst, tmp[i:]...)
}

func appendInt128(dst []byte, v Int128) []byte {
	if v.IsNeg() {
		dst = append(dst, '-')
	}
	return appendUint128(dst, v.Magnitude())
}
