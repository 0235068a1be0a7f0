package arraystring

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Digit generation is delegated to strconv and unicode/utf8. Each helper
// appends to a dst whose capacity is the Maximum-Length Constant of its
// source type, so none of them grows dst.

func appendBool(dst []byte, v bool) []byte {
	return strconv.AppendBool(dst, v)
}

// appendRune writes U+FFFD for invalid code points, as string(r) does.
func appendRune(dst []byte, r rune) []byte {
	return utf8.AppendRune(dst, r)
}

func appendUint(dst []byte, v uint64) []byte {
	return strconv.AppendUint(dst, v, 10)
}

func appendInt(dst []byte, v int64) []byte {
	return strconv.AppendInt(dst, v, 10)
}

// Floats use the shortest text that parses back to the same value, in the
// form fmt prints them with %v.

func appendFloat32(dst []byte, v float32) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
}

func appendFloat64(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', -1, 64)
}

// view returns b as a string sharing b's memory.
func view(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
