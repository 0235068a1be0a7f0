// Package gen renders the per-type bindings of package arraystring from the
// types.yaml binding table.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"slices"
	"strconv"
	"text/template"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTable reports a binding table that would generate code whose
// constants and capacities disagree.
var ErrInvalidTable = errors.New("invalid binding table")

// maxCapacity is the widest bounded string the uint8 length field can track.
const maxCapacity = 255

// Table is the decoded form of types.yaml.
type Table struct {
	Capacities []int         `yaml:"capacities"`
	Types      []Binding     `yaml:"types"`
	Native     []Binding     `yaml:"native"`
	Widths     map[int]Width `yaml:"widths"`
}

// Binding ties one Go source type to its digit generator and bounded string.
type Binding struct {
	Name    string `yaml:"name"`
	Go      string `yaml:"go"`
	Kind    string `yaml:"kind"`
	MaxLen  int    `yaml:"maxlen"`
	Result  string `yaml:"result"`
	NonZero bool   `yaml:"nonzero"`
	Alias   bool   `yaml:"alias"`
}

// Width lists the native integer lengths for one pointer width.
type Width struct {
	Uint int `yaml:"uint"`
	Int  int `yaml:"int"`
}

// ResultType is the bounded string type returned by the binding's Format
// function.
func (b Binding) ResultType() string {
	if b.Result != "" {
		return b.Result
	}
	return "String" + strconv.Itoa(b.MaxLen)
}

// generator is the append helper and its parameter type for a kind.
type generator struct {
	fn    string
	param string
}

var generators = map[string]generator{
	"bool":    {fn: "appendBool", param: "bool"},
	"rune":    {fn: "appendRune", param: "rune"},
	"uint":    {fn: "appendUint", param: "uint64"},
	"int":     {fn: "appendInt", param: "int64"},
	"uint128": {fn: "appendUint128", param: "Uint128"},
	"int128":  {fn: "appendInt128", param: "Int128"},
	"float32": {fn: "appendFloat32", param: "float32"},
	"float64": {fn: "appendFloat64", param: "float64"},
}

// Load decodes and validates a binding table.
func Load(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every binding names a declared capacity and a known
// kind, and that names are unique.
func (t *Table) Validate() error {
	if len(t.Capacities) == 0 {
		return fmt.Errorf("%w: no capacities", ErrInvalidTable)
	}
	caps := make(map[int]bool, len(t.Capacities))
	for _, c := range t.Capacities {
		if c <= 0 || c > maxCapacity {
			return fmt.Errorf("%w: capacity %d out of range 1..%d", ErrInvalidTable, c, maxCapacity)
		}
		if caps[c] {
			return fmt.Errorf("%w: duplicate capacity %d", ErrInvalidTable, c)
		}
		caps[c] = true
	}

	names := make(map[string]bool)
	for _, b := range slices.Concat(t.Types, t.Native) {
		if b.Name == "" || b.Go == "" {
			return fmt.Errorf("%w: binding %q needs name and go type", ErrInvalidTable, b.Name)
		}
		if names[b.Name] {
			return fmt.Errorf("%w: duplicate binding %q", ErrInvalidTable, b.Name)
		}
		names[b.Name] = true
		if _, ok := generators[b.Kind]; !ok {
			return fmt.Errorf("%w: binding %q has unknown kind %q", ErrInvalidTable, b.Name, b.Kind)
		}
	}
	for _, b := range t.Types {
		if !caps[b.MaxLen] {
			return fmt.Errorf("%w: binding %q uses undeclared capacity %d", ErrInvalidTable, b.Name, b.MaxLen)
		}
		if b.Result != "" {
			return fmt.Errorf("%w: binding %q sets result; only native bindings may", ErrInvalidTable, b.Name)
		}
	}
	for _, b := range t.Native {
		if b.Result == "" || b.MaxLen != 0 {
			return fmt.Errorf("%w: native binding %q needs a result alias and no maxlen", ErrInvalidTable, b.Name)
		}
	}
	for _, b := range t.Native {
		if b.Kind != "uint" && b.Kind != "int" {
			return fmt.Errorf("%w: native binding %q must be of kind uint or int", ErrInvalidTable, b.Name)
		}
	}
	for bitSize, w := range t.Widths {
		if !caps[w.Uint] || !caps[w.Int] {
			return fmt.Errorf("%w: %d-bit width uses undeclared capacity", ErrInvalidTable, bitSize)
		}
	}
	return nil
}

// Generic returns the bindings that get a case in the generic dispatch.
func (t *Table) Generic() []Binding {
	var out []Binding
	for _, b := range slices.Concat(t.Types, t.Native) {
		if !b.Alias {
			out = append(out, b)
		}
	}
	return out
}

// NonZeroBindings returns the bindings that have a NonZero form.
func (t *Table) NonZeroBindings() []Binding {
	var out []Binding
	for _, b := range slices.Concat(t.Types, t.Native) {
		if b.NonZero {
			out = append(out, b)
		}
	}
	return out
}

// appendExpr returns the call that appends val, of the binding's Go type,
// to dst.
func appendExpr(b Binding, dst, val string) string {
	g := generators[b.Kind]
	if b.Go != g.param {
		val = g.param + "(" + val + ")"
	}
	return g.fn + "(" + dst + ", " + val + ")"
}

var (
	tmpl = template.Must(template.New("zz_generated.go").Funcs(template.FuncMap{
		"appendExpr": appendExpr,
	}).Parse(source))
	nativeTmpl = template.Must(template.New("native").Parse(nativeSource))
)

// constraints are the build constraints selecting each pointer width. Go has
// no 16-bit port, so a 16-bit width is validated but never rendered.
var constraints = map[int]string{
	32: "386 || arm || mips || mipsle",
	64: "!(386 || arm || mips || mipsle)",
}

// Render generates gofmt-formatted Go source for t. name is recorded in the
// generated header as the table's origin.
func Render(t *Table, name string) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*Table
		Source string
	}{Table: t, Source: name}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return gofmt(buf.Bytes())
}

// NativeWidths returns the pointer widths in t that have a build constraint,
// in ascending order.
func (t *Table) NativeWidths() []int {
	var out []int
	for bits := range t.Widths {
		if _, ok := constraints[bits]; ok {
			out = append(out, bits)
		}
	}
	slices.Sort(out)
	return out
}

// NativeFile is the name of the file holding the bits-wide native bindings.
func NativeFile(bits int) string {
	return "zz_native_" + strconv.Itoa(bits) + ".go"
}

// RenderNative generates the constants and result aliases of the native
// bindings for one pointer width. Unsigned bindings take the width's uint
// length and signed ones its int length.
func RenderNative(t *Table, bits int, name string) ([]byte, error) {
	w, ok := t.Widths[bits]
	if !ok {
		return nil, fmt.Errorf("%w: no %d-bit width", ErrInvalidTable, bits)
	}
	constraint, ok := constraints[bits]
	if !ok {
		return nil, fmt.Errorf("%w: no build constraint for %d-bit platforms", ErrInvalidTable, bits)
	}

	type row struct {
		Name   string
		Result string
		Cap    int
	}
	rows := make([]row, 0, len(t.Native))
	for _, b := range t.Native {
		c := w.Uint
		if b.Kind == "int" {
			c = w.Int
		}
		rows = append(rows, row{Name: b.Name, Result: b.Result, Cap: c})
	}

	var buf bytes.Buffer
	data := struct {
		Source     string
		Constraint string
		Bits       int
		Rows       []row
	}{Source: name, Constraint: constraint, Bits: bits, Rows: rows}
	if err := nativeTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return gofmt(buf.Bytes())
}

func gofmt(src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}
