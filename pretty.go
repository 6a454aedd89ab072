package pretty

import (
	"io"
	"reflect"
	"strings"
)

// Render returns the textual rendering of v. It panics with a *CompileError
// when the type of v cannot be composed; rendering itself never fails.
func Render(v any, opts ...Option) string {
	return RenderContext(v, newContext(opts))
}

// RenderContext renders v with an explicit context. Presenter
// implementations use it to render their children with ctx.Next().
func RenderContext(v any, ctx Context) string {
	var b strings.Builder
	if v == nil {
		emitAny(&b, nil, ctx)
		return b.String()
	}
	rv := reflect.ValueOf(v)
	root := reflect.New(rv.Type()).Elem()
	root.Set(rv)
	mustLookup(rv.Type()).emit(&b, root, ctx)
	return b.String()
}

// Named returns "name: " followed by the rendering of v.
func Named(name string, v any, opts ...Option) string {
	return name + ": " + Render(v, opts...)
}

// Fprint writes the rendering of v to w.
func Fprint(w io.Writer, v any, opts ...Option) error {
	_, err := io.WriteString(w, Render(v, opts...))
	return err
}

// Printer renders values of one type with a renderer composed up front.
type Printer[T any] struct {
	n *node
}

// For composes the renderer for T. The returned error is a *CompileError
// when T cannot be rendered.
func For[T any]() (*Printer[T], error) {
	n, err := lookup(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return &Printer[T]{n: n}, nil
}

// MustFor is like For but panics on error. It is meant for package-level
// variables, so a bad type fails at startup.
func MustFor[T any]() *Printer[T] {
	p, err := For[T]()
	if err != nil {
		panic(err)
	}
	return p
}

// Shape reports the shape T is rendered with.
func (p *Printer[T]) Shape() Shape { return p.n.shape }

// Render returns the textual rendering of v.
func (p *Printer[T]) Render(v T, opts ...Option) string {
	var b strings.Builder
	p.n.emit(&b, reflect.ValueOf(&v).Elem(), newContext(opts))
	return b.String()
}

// Write writes the rendering of v to w.
func (p *Printer[T]) Write(w io.Writer, v T, opts ...Option) error {
	_, err := io.WriteString(w, p.Render(v, opts...))
	return err
}
