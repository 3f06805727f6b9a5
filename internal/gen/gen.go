package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"go.dw1.io/constconv/internal/relation"
)

// Func describes one generated function.
type Func struct {
	Name   string
	Source string
	Target string
	Doc    string
	Body   string
}

var fileTmpl = template.Must(template.New("pairs").Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}

// RelationVersion is the revision of the relation set this file was
// generated from.
const RelationVersion = {{.Version}}
{{range .From}}
// {{.Doc}}
func {{.Name}}(v {{.Source}}) {{.Target}} { return {{.Body}} }
{{end}}{{range .Try}}
// {{.Doc}}
func {{.Name}}(v {{.Source}}) ({{.Target}}, error) { return {{.Body}} }
{{end}}`))

// FromFuncs returns the lossless functions in table order.
func FromFuncs() []Func {
	pairs := relation.Pairs(relation.Lossless)
	funcs := make([]Func, 0, len(pairs))
	for _, p := range pairs {
		f := Func{
			Name:   p.Target.Title() + "From" + p.Source.Title(),
			Source: p.Source.String(),
			Target: p.Target.String(),
			Body:   p.Target.String() + "(v)",
		}
		f.Doc = fmt.Sprintf("%s converts %s to %s losslessly.", f.Name, article(f.Source), article(f.Target))
		if p.Source == relation.Bool {
			f.Body = "From[" + f.Target + "](v)"
			f.Doc = fmt.Sprintf("%s converts a bool to %s: 1 for true, 0 for false.", f.Name, article(f.Target))
		}

		funcs = append(funcs, f)
	}

	return funcs
}

// TryFuncs returns the fallible functions in table order. Lossless pairs are
// included, as every lossless conversion is also a fallible one.
func TryFuncs() []Func {
	var funcs []Func
	for _, src := range relation.Kinds() {
		for _, dst := range relation.Kinds() {
			r := relation.Lookup(src, dst)
			if src == dst || !r.Fallible() {
				continue
			}

			f := Func{
				Name:   "Try" + dst.Title() + "From" + src.Title(),
				Source: src.String(),
				Target: dst.String(),
				Body:   "TryFrom[" + dst.String() + "](v)",
			}
			if r == relation.Bounded {
				f.Doc = fmt.Sprintf("%s converts %s to %s, failing when the value is out of range.", f.Name, article(f.Source), article(f.Target))
			} else {
				f.Doc = fmt.Sprintf("%s converts %s to %s. It never fails.", f.Name, article(f.Source), article(f.Target))
			}

			funcs = append(funcs, f)
		}
	}

	return funcs
}

// article prefixes a type name with "a" or "an" as it reads aloud.
func article(name string) string {
	if strings.HasPrefix(name, "i") {
		return "an " + name
	}

	return "a " + name
}

// Render returns the gofmt-ed source of the typed conversion functions.
func Render(opts ...Option) ([]byte, error) {
	o := newOptions(opts)

	var buf bytes.Buffer
	err := fileTmpl.Execute(&buf, struct {
		Generator string
		Package   string
		Version   int
		From      []Func
		Try       []Func
	}{
		Generator: o.generator,
		Package:   o.pkg,
		Version:   relation.Version,
		From:      FromFuncs(),
		Try:       TryFuncs(),
	})
	if err != nil {
		return nil, fmt.Errorf("gen: execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format source: %w", err)
	}

	return src, nil
}
