// Package gen renders the width-class registration files of the cast package.
package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"text/template"

	"github.com/jfrog/convi/log"
	"github.com/jfrog/convi/widthclass"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const DefaultPackage = "cast"

type method struct {
	Wrapper string
	Method  string
	GoType  string
	From    string
}

type fileData struct {
	Package     string
	Constraint  string
	Bits        int
	Guard       string
	UintSources []string
	IntSources  []string
	Methods     []method
}

func goTypes(kinds []widthclass.Kind) []string {
	return lo.Map(kinds, func(k widthclass.Kind, _ int) string { return k.GoType() })
}

func newFileData(pkg string, c widthclass.Class) (*fileData, error) {
	if !c.Valid() {
		return nil, errors.Errorf("unknown width class %d", int(c))
	}
	uintSources := widthclass.Sources(c, widthclass.Uint)
	if !slices.Equal(uintSources, widthclass.Sources(c, widthclass.Uintptr)) {
		return nil, errors.Errorf("%s: uint and uintptr sources differ", c)
	}
	methods := lo.Map(widthclass.NativePairs(c), func(p widthclass.Pair, _ int) method {
		return method{
			Wrapper: p.Source.Wrapper(),
			Method:  p.Dest.Method(),
			GoType:  p.Dest.GoType(),
			From:    p.Dest.FromFunc(),
		}
	})
	return &fileData{
		Package:     pkg,
		Constraint:  c.Constraint(),
		Bits:        c.Bits(),
		Guard:       GuardName(c),
		UintSources: goTypes(uintSources),
		IntSources:  goTypes(widthclass.Sources(c, widthclass.Int)),
		Methods:     methods,
	}, nil
}

func render(tmpl *template.Template, data *fileData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "executing %s template", tmpl.Name())
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "formatting %s template output", tmpl.Name())
	}
	return src, nil
}

// RenderClass returns the source registering the conversions enabled by c.
func RenderClass(pkg string, c widthclass.Class) ([]byte, error) {
	data, err := newFileData(pkg, c)
	if err != nil {
		return nil, err
	}
	return render(classTemplate, data)
}

// RenderGuard returns the source that stops the build on targets narrower
// than c. The base class has no guard.
func RenderGuard(pkg string, c widthclass.Class) ([]byte, error) {
	if !HasGuard(c) {
		return nil, errors.Errorf("%s has no build guard", c)
	}
	data, err := newFileData(pkg, c)
	if err != nil {
		return nil, err
	}
	return render(guardTemplate, data)
}

func HasGuard(c widthclass.Class) bool {
	return c != widthclass.Base
}

// GuardName is the identifier reported by the compiler when the guard trips.
func GuardName(c widthclass.Class) string {
	return fmt.Sprintf("requiresAtLeast%dBitTarget", c.Bits())
}

func fileStem(c widthclass.Class) string {
	if c == widthclass.Base {
		return "zz_generated_base"
	}
	return fmt.Sprintf("zz_generated_min%d", c.Bits())
}

func ClassFileName(c widthclass.Class) string {
	return fileStem(c) + ".go"
}

func GuardFileName(c widthclass.Class) string {
	return fileStem(c) + "_guard.go"
}

type Generator struct {
	Dir     string
	Package string
	// Maximum number of files rendered concurrently, 0 means no limit.
	Limit  int
	Logger log.Log
}

func (g *Generator) logger() log.Log {
	if g.Logger == nil {
		return log.GetLogger()
	}
	return g.Logger
}

func (g *Generator) pkg() string {
	if g.Package == "" {
		return DefaultPackage
	}
	return g.Package
}

type renderedFile struct {
	path string
	src  []byte
}

// Run renders the class and guard files of every given class and, once all
// of them rendered, writes them into g.Dir. It returns the written paths,
// sorted.
func (g *Generator) Run(ctx context.Context, classes []widthclass.Class) ([]string, error) {
	if len(classes) == 0 {
		classes = widthclass.Classes()
	}

	var (
		mu    sync.Mutex
		files []renderedFile
	)
	eg, egCtx := errgroup.WithContext(ctx)
	if g.Limit > 0 {
		eg.SetLimit(g.Limit)
	}

	emit := func(name string, renderFn func() ([]byte, error)) {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			src, err := renderFn()
			if err != nil {
				return err
			}
			mu.Lock()
			files = append(files, renderedFile{path: filepath.Join(g.Dir, name), src: src})
			mu.Unlock()
			return nil
		})
	}

	for _, c := range lo.Uniq(classes) {
		class := c
		g.logger().Debug("rendering width class", class)
		emit(ClassFileName(class), func() ([]byte, error) { return RenderClass(g.pkg(), class) })
		if HasGuard(class) {
			emit(GuardFileName(class), func() ([]byte, error) { return RenderGuard(g.pkg(), class) })
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", g.Dir)
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.WriteFile(f.path, f.src, 0o644); err != nil {
			return written, errors.Wrapf(err, "writing %s", f.path)
		}
		g.logger().Debug("wrote", f.path)
		written = append(written, f.path)
	}
	slices.Sort(written)
	return written, nil
}
