// Package arraystring formats booleans, characters, integers and floats into
// fixed-capacity strings without allocating.
//
// Every supported type has a Maximum-Length Constant, the longest text any of
// its values can produce, and a bounded string type of exactly that capacity.
// The typed entry points return that bounded string by value, so the text
// lives wherever the caller keeps the result, usually on the stack:
//
//	s := arraystring.FormatInt64(-42)
//	w.Write(s.Bytes())
//
// The text is the same as fmt.Sprint would produce for the value.
//
// # Bounded Strings
//
// A bounded string ([String3] through [String40]) holds at most its capacity
// in bytes of valid UTF-8. Build one from text with the NewStringN
// constructors, which fail with [ErrCapacity] or [ErrInvalidUTF8]. Read it
// through String and Bytes, both of which alias the value's storage rather
// than copy it, so they are only valid while the value is alive.
//
// String has a pointer receiver, so only a pointer to a bounded string is a
// [fmt.Stringer]. Pass the pointer when printing, or the struct fields are
// printed instead of the text:
//
//	s := arraystring.FormatInt(5)
//	fmt.Println(&s)         // 5
//	fmt.Println(s.String()) // 5
//
// # Capacity Table
//
//	bool              5   FormatBool
//	rune, Char        4   FormatRune, FormatChar
//	uint8 / int8      3 / 4
//	uint16 / int16    5 / 6
//	uint32 / int32    10 / 11
//	uint64 / int64    20 / 21
//	Uint128 / Int128  39 / 40
//	uint, uintptr     20 on 64-bit platforms, 10 on 32-bit
//	int               21 on 64-bit platforms, 11 on 32-bit
//	float32           16
//	float64           24
//
// [NonZero] integers use the capacity of the integer they wrap and format
// identically to it.
//
// # Generic Code
//
// Code that accepts any formattable value uses [Format], which returns an
// [Any] holding the text, or [Append], which appends it to a byte slice.
// Both accept the types in [Value]. Since rune is an alias of int32, generic
// callers convert to [Char] to get a character rather than its code point.
//
// [Text] is the capacity-independent read-only view implemented by every
// bounded string pointer and by *Any:
//
//	func write(w io.Writer, t arraystring.Text) { io.WriteString(w, t.String()) }
//
// # Errors
//
// Formatting never fails. Errors come only from constructors given
// caller-supplied input:
//
//   - [ErrCapacity]: text longer than the bounded string's capacity
//   - [ErrInvalidUTF8]: text that is not valid UTF-8
//   - [ErrZero]: zero passed to [MustNonZero]
//
// The per-type bindings in zz_generated.go and the native-width files
// zz_native_32.go and zz_native_64.go are produced from types.yaml by
// cmd/arraystring-gen.
package arraystring
