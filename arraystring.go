package arraystring

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

//go:generate go run ./cmd/arraystring-gen --table types.yaml --out zz_generated.go

// Sentinel errors for programmatic error handling.
var (
	ErrCapacity    = errors.New("text exceeds capacity")
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
	ErrZero        = errors.New("zero value for non-zero integer")
)

// MaxCap is the capacity of [Any]. It equals the widest Maximum-Length
// Constant in the package, MaxLenInt128.
const MaxCap = String40Cap

// Char is a Unicode code point that formats as its UTF-8 encoding. Since rune
// is an alias of int32, generic code passes a Char to get character text
// rather than digits.
type Char rune

// Text is a read-only view of any bounded string, whatever its capacity.
//
// The string returned by String aliases the bounded string's storage and is
// valid for as long as that value is alive and unmodified. The interface is
// sealed: only this package's bounded strings implement it.
type Text interface {
	String() string
	bounded()
}

// Any is a bounded string with capacity [MaxCap]. It is what [Format] returns
// when the concrete capacity of the source type is not known to the caller.
type Any struct {
	buf [MaxCap]byte
	n   uint8
}

// String returns the held text without copying.
func (a *Any) String() string { return view(a.buf[:a.n]) }

// Bytes returns the held bytes. The slice must not be modified.
func (a *Any) Bytes() []byte { return a.buf[:a.n:a.n] }

// Len returns the length of the held text in bytes.
func (a *Any) Len() int { return int(a.n) }

func (*Any) bounded() {}

// Format returns the canonical text of v in an [Any].
//
// Use the typed FormatX functions when the concrete capacity is wanted; they
// return the exact-size bounded string for their source type.
func Format[T Value](v T) Any {
	var a Any
	limit := maxLen[T]()
	a.n = fill(a.buf[:limit], appendValue(a.buf[:0:limit], v))
	return a
}

// Append appends the canonical text of v to dst and returns the extended
// slice. It writes exactly what [Format] would hold.
func Append[T Value](dst []byte, v T) []byte {
	return appendValue(dst, v)
}

// MaxLen returns the Maximum-Length Constant of T: the longest text [Format]
// can produce for any value of T.
func MaxLen[T Value]() int {
	return maxLen[T]()
}

// check reports whether text can be held in a bounded string of capacity c.
func check(text string, c int) error {
	if len(text) > c {
		return fmt.Errorf("%w: %d bytes into capacity %d", ErrCapacity, len(text), c)
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: %q", ErrInvalidUTF8, text)
	}
	return nil
}

// fill records the length of out, which a generator appended to buf[:0].
// Growing past buf means a Maximum-Length Constant is wrong.
func fill(buf, out []byte) uint8 {
	if len(out) > len(buf) {
		panic(fmt.Errorf("%w: formatted %d bytes into capacity %d", ErrCapacity, len(out), len(buf)))
	}
	return uint8(len(out))
}
