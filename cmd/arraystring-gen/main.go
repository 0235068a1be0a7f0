// Command arraystring-gen writes the per-type bindings of package arraystring
// from its binding table. It is run by go generate.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"github.com/bjaus/arraystring/internal/gen"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, errOut io.Writer) int {
	flagSet := flag.NewFlagSet("arraystring-gen", flag.ContinueOnError)
	flagSet.SetOutput(errOut)

	table := flagSet.StringP("table", "t", "types.yaml", "Binding table to read")
	out := flagSet.StringP("out", "o", "zz_generated.go", "Go file to write; native-width files go beside it")

	if err := flagSet.Parse(args); err != nil {
		return 2
	}

	written, err := generate(*table, *out)
	for _, path := range written {
		fmt.Fprintf(errOut, "arraystring-gen: wrote %s\n", path)
	}

	if err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	return 0
}

// generate renders the bindings to outPath and each native width to its own
// file in the same directory. It returns the paths written.
func generate(tablePath, outPath string) ([]string, error) {
	f, err := os.Open(tablePath)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	defer f.Close()

	t, err := gen.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", tablePath, err)
	}

	name := filepath.Base(tablePath)

	src, err := gen.Render(t, name)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	files := map[string][]byte{outPath: src}
	paths := []string{outPath}

	for _, bits := range t.NativeWidths() {
		src, err := gen.RenderNative(t, bits, name)
		if err != nil {
			return nil, fmt.Errorf("render %d-bit: %w", bits, err)
		}

		path := filepath.Join(filepath.Dir(outPath), gen.NativeFile(bits))
		files[path] = src
		paths = append(paths, path)
	}

	// Everything renders before anything is written.
	var written []string

	for _, path := range paths {
		if err := atomic.WriteFile(path, bytes.NewReader(files[path])); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}

		written = append(written, path)
	}

	return written, nil
}
