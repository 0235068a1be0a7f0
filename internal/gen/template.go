package gen

const source = `// Code generated by arraystring-gen from {{.Source}}. DO NOT EDIT.

package arraystring

// Byte capacities of the bounded string types.
const (
{{- range .Capacities}}
	String{{.}}Cap = {{.}}
{{- end}}
)

// Maximum-Length Constants. Each is the capacity of the bounded string its
// Format function returns.
const (
{{- range .Types}}
	MaxLen{{.Name}} = String{{.MaxLen}}Cap
{{- end}}
)
{{range .Capacities}}
// String{{.}} is a bounded UTF-8 string of at most {{.}} bytes. The zero value
// is the empty string.
type String{{.}} struct {
	buf [String{{.}}Cap]byte
	n   uint8
}

// NewString{{.}} returns text as a String{{.}}. It fails with ErrCapacity if
// text is longer than {{.}} bytes and with ErrInvalidUTF8 if text is not valid
// UTF-8.
func NewString{{.}}(text string) (String{{.}}, error) {
	if err := check(text, String{{.}}Cap); err != nil {
		return String{{.}}{}, err
	}
	var s String{{.}}
	s.n = uint8(copy(s.buf[:], text))
	return s, nil
}

// String returns the held text without copying.
func (s *String{{.}}) String() string { return view(s.buf[:s.n]) }

// Bytes returns the held bytes. The slice must not be modified.
func (s *String{{.}}) Bytes() []byte { return s.buf[:s.n:s.n] }

// Len returns the length of the held text in bytes.
func (s *String{{.}}) Len() int { return int(s.n) }

// Cap returns String{{.}}Cap.
func (*String{{.}}) Cap() int { return String{{.}}Cap }

// ArrayString returns s unchanged.
func (s String{{.}}) ArrayString() String{{.}} { return s }

// Any copies s into an Any.
func (s *String{{.}}) Any() Any {
	var a Any
	a.n = uint8(copy(a.buf[:], s.buf[:s.n]))
	return a
}

func (*String{{.}}) bounded() {}
{{end}}
{{- range .Types}}
// Format{{.Name}} returns the text of v in a {{.ResultType}}.
func Format{{.Name}}(v {{.Go}}) {{.ResultType}} {
	var s {{.ResultType}}
	s.n = fill(s.buf[:], {{appendExpr . "s.buf[:0]" "v"}})
	return s
}
{{end}}
{{- range .Native}}
// Format{{.Name}} returns the text of v in a {{.ResultType}}, whose capacity
// depends on the platform's pointer width.
func Format{{.Name}}(v {{.Go}}) {{.ResultType}} {
	var s {{.ResultType}}
	s.n = fill(s.buf[:], {{appendExpr . "s.buf[:0]" "v"}})
	return s
}
{{end}}
{{- range .NonZeroBindings}}
// FormatNonZero{{.Name}} formats v exactly like Format{{.Name}}.
func FormatNonZero{{.Name}}(v NonZero[{{.Go}}]) {{.ResultType}} {
	return Format{{.Name}}(v.Get())
}
{{end}}
// Value is the set of types accepted by Format, Append and MaxLen.
type Value interface {
{{- range .Generic}}
	{{.Go}} |
{{- end}}
{{- range .NonZeroBindings}}
	NonZero[{{.Go}}] |
{{- end}}
{{- range $i, $c := .Capacities}}{{if $i}} |{{end}}
	String{{$c}}
{{- end}}
}

func appendValue[T Value](dst []byte, v T) []byte {
	switch v := any(v).(type) {
{{- range .Generic}}
	case {{.Go}}:
		return {{appendExpr . "dst" "v"}}
{{- end}}
{{- range .NonZeroBindings}}
	case NonZero[{{.Go}}]:
		return {{appendExpr . "dst" "v.Get()"}}
{{- end}}
{{- range .Capacities}}
	case String{{.}}:
		return append(dst, v.buf[:v.n]...)
{{- end}}
	}
	panic("arraystring: unsupported type")
}

func maxLen[T Value]() int {
	var zero T
	switch any(zero).(type) {
{{- range .Generic}}
	case {{.Go}}:
		return MaxLen{{.Name}}
{{- end}}
{{- range .NonZeroBindings}}
	case NonZero[{{.Go}}]:
		return MaxLen{{.Name}}
{{- end}}
{{- range .Capacities}}
	case String{{.}}:
		return String{{.}}Cap
{{- end}}
	}
	panic("arraystring: unsupported type")
}
`

const nativeSource = `// Code generated by arraystring-gen from {{.Source}}. DO NOT EDIT.

//go:build {{.Constraint}}

package arraystring

// Maximum-Length Constants of the native-width integers on {{.Bits}}-bit platforms.
const (
{{- range .Rows}}
	MaxLen{{.Name}} = String{{.Cap}}Cap
{{- end}}
)

// Bounded strings returned by the native-width Format functions.
type (
{{- range .Rows}}
	{{.Result}} = String{{.Cap}}
{{- end}}
)
`
