// convgen renders the typed conversion functions of package convert from the
// relation table, and optionally writes or checks a JSON manifest of the
// table.
//
// Usage:
//
//	convgen [-o pairs_gen.go] [-package convert] [-manifest relations.json] [-check]
//
// With -check, convgen compares the manifest file against the current table,
// prints the differing rows and exits with status 1 if there are any. Nothing
// is written in that mode.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.dw1.io/constconv/internal/gen"
)

// errDrift is returned by -check when the manifest no longer matches the
// table.
var errDrift = errors.New("relation table drifted")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "convgen: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("convgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		out      = fs.String("o", "pairs_gen.go", "output file for the generated functions (\"-\" for stdout)")
		pkg      = fs.String("package", "convert", "package clause of the generated file")
		manifest = fs.String("manifest", "", "JSON manifest of the relation table to write or check")
		check    = fs.Bool("check", false, "compare -manifest against the current table instead of writing")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *check {
		return checkManifest(*manifest, stderr)
	}

	src, err := gen.Render(gen.WithPackage(*pkg))
	if err != nil {
		return err
	}

	if *out == "-" {
		if _, err := stdout.Write(src); err != nil {
			return err
		}
	} else if err := os.WriteFile(*out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}

	if *manifest == "" {
		return nil
	}

	data, err := gen.MarshalManifest()
	if err != nil {
		return err
	}

	if err := os.WriteFile(*manifest, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *manifest, err)
	}

	return nil
}

func checkManifest(path string, stderr io.Writer) error {
	if path == "" {
		return errors.New("-check requires -manifest")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	old, err := gen.UnmarshalManifest(data)
	if err != nil {
		return err
	}

	cur := gen.NewManifest()
	diff := gen.Diff(old, cur)
	if old.Version == cur.Version && len(diff) == 0 {
		return nil
	}

	fmt.Fprintf(stderr, "relation table drifted (manifest version %d, table version %d):\n", old.Version, cur.Version)
	for _, line := range diff {
		fmt.Fprintln(stderr, line)
	}

	return fmt.Errorf("%w: %s is out of date", errDrift, path)
}
