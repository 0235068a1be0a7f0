package gen_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/bjaus/arraystring/internal/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalTable = `
capacities: [3, 5]
types:
  - {name: Bool, go: bool, kind: bool, maxlen: 5}
  - {name: Uint8, go: uint8, kind: uint, maxlen: 3, nonzero: true}
`

func loadFile(t *testing.T, path string) *gen.Table {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	table, err := gen.Load(f)
	require.NoError(t, err)
	return table
}

// declared returns the top-level function, type and const names in src.
func declared(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "zz_generated.go", src, 0)
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
	return names
}

func TestRenderRepositoryTable(t *testing.T) {
	t.Parallel()
	table := loadFile(t, "../../types.yaml")

	src, err := gen.Render(table, "types.yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(src), "// Code generated by arraystring-gen from types.yaml. DO NOT EDIT."))

	names := declared(t, src)
	for _, want := range []string{"Value", "appendValue", "maxLen", "FormatRune", "FormatChar", "FormatInt", "FormatNonZeroUintptr"} {
		assert.True(t, names[want], "missing %s", want)
	}
	for _, c := range table.Capacities {
		n := "String" + strconv.Itoa(c)
		assert.True(t, names[n], "missing %s", n)
		assert.True(t, names["New"+n], "missing New%s", n)
		assert.True(t, names[n+"Cap"], "missing %sCap", n)
	}
	for _, b := range table.Types {
		assert.True(t, names["Format"+b.Name], "missing Format%s", b.Name)
		assert.True(t, names["MaxLen"+b.Name], "missing MaxLen%s", b.Name)
	}
}

func TestRenderMatchesCommittedFile(t *testing.T) {
	t.Parallel()
	table := loadFile(t, "../../types.yaml")
	src, err := gen.Render(table, "types.yaml")
	require.NoError(t, err)

	committed, err := os.ReadFile("../../zz_generated.go")
	require.NoError(t, err)
	// Compare tokens so the check is about content; run go generate to refresh.
	assert.Equal(t, strings.Fields(string(committed)), strings.Fields(string(src)))
}

func TestRenderNativeMatchesCommittedFiles(t *testing.T) {
	t.Parallel()
	table := loadFile(t, "../../types.yaml")
	require.Equal(t, []int{32, 64}, table.NativeWidths())

	for _, bits := range table.NativeWidths() {
		t.Run(gen.NativeFile(bits), func(t *testing.T) {
			t.Parallel()
			src, err := gen.RenderNative(table, bits, "types.yaml")
			require.NoError(t, err)

			committed, err := os.ReadFile("../../" + gen.NativeFile(bits))
			require.NoError(t, err)
			assert.Equal(t, strings.Fields(string(committed)), strings.Fields(string(src)))
		})
	}
}

func TestRenderNativeLengths(t *testing.T) {
	t.Parallel()
	table := loadFile(t, "../../types.yaml")
	tests := map[int][]string{
		32: {"MaxLenUint = String10Cap", "MaxLenInt = String11Cap", "MaxLenUintptr = String10Cap", "IntString = String11"},
		64: {"MaxLenUint = String20Cap", "MaxLenInt = String21Cap", "MaxLenUintptr = String20Cap", "UintptrString = String20"},
	}
	for bits, want := range tests {
		t.Run(strconv.Itoa(bits), func(t *testing.T) {
			t.Parallel()
			src, err := gen.RenderNative(table, bits, "types.yaml")
			require.NoError(t, err)
			// Collapse gofmt's alignment padding.
			out := strings.Join(strings.Fields(string(src)), " ")
			for _, w := range want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRenderNativeRejects(t *testing.T) {
	t.Parallel()
	table := loadFile(t, "../../types.yaml")
	tests := map[string]int{
		"no build constraint": 16,
		"no width entry":      128,
	}
	for name, bits := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := gen.RenderNative(table, bits, "types.yaml")
			require.ErrorIs(t, err, gen.ErrInvalidTable)
		})
	}
}

func TestRenderExpressions(t *testing.T) {
	t.Parallel()
	table, err := gen.Load(strings.NewReader(minimalTable))
	require.NoError(t, err)

	src, err := gen.Render(table, "mini.yaml")
	require.NoError(t, err)
	out := string(src)
	assert.Contains(t, out, "appendBool(s.buf[:0], v)")
	assert.Contains(t, out, "appendUint(s.buf[:0], uint64(v))")
	assert.Contains(t, out, "return appendUint(dst, uint64(v.Get()))")
	assert.Contains(t, out, "func FormatNonZeroUint8(v NonZero[uint8]) String3 {")
	assert.NotContains(t, out, "FormatNonZeroBool")
}

func TestRenderSkipsAliasesInDispatch(t *testing.T) {
	t.Parallel()
	table := loadFile(t, "../../types.yaml")
	for _, b := range table.Generic() {
		assert.NotEqual(t, "rune", b.Go)
	}
	src, err := gen.Render(table, "types.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(src), "func FormatRune(v rune) String4 {")
	assert.NotContains(t, string(src), "case rune:")
}

func TestBindingResultType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "String21", gen.Binding{MaxLen: 21}.ResultType())
	assert.Equal(t, "IntString", gen.Binding{Result: "IntString"}.ResultType())
}

func TestLoadRejects(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"no capacities": `
types:
  - {name: Bool, go: bool, kind: bool, maxlen: 5}
`,
		"capacity too wide": `
capacities: [256]
`,
		"duplicate capacity": `
capacities: [5, 5]
`,
		"undeclared capacity": `
capacities: [4]
types:
  - {name: Bool, go: bool, kind: bool, maxlen: 5}
`,
		"unknown kind": `
capacities: [5]
types:
  - {name: Bool, go: bool, kind: boolean, maxlen: 5}
`,
		"duplicate name": `
capacities: [5]
types:
  - {name: Bool, go: bool, kind: bool, maxlen: 5}
native:
  - {name: Bool, go: bool, kind: bool, result: BoolString}
`,
		"native without result": `
capacities: [20]
native:
  - {name: Uint, go: uint, kind: uint}
`,
		"result on fixed type": `
capacities: [5]
types:
  - {name: Bool, go: bool, kind: bool, maxlen: 5, result: String5}
`,
		"native float": `
capacities: [24]
native:
  - {name: Float, go: float64, kind: float64, result: FloatString}
`,
		"width capacity": `
capacities: [5]
widths:
  64: {uint: 20, int: 21}
`,
		"missing go type": `
capacities: [5]
types:
  - {name: Bool, kind: bool, maxlen: 5}
`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := gen.Load(strings.NewReader(src))
			require.ErrorIs(t, err, gen.ErrInvalidTable)
		})
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	t.Parallel()
	_, err := gen.Load(strings.NewReader("capacities: [5]\ncapacity: 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode table")
}
