package pretty

import (
	"io"
	"reflect"
	"strings"
)

// Pre pairs a value with the context it should be rendered with. Printing a
// Pre (through fmt or WriteTo) runs the renderer composed for T.
//
//	fmt.Println(pretty.Of(items, pretty.WithLimit(4)))
type Pre[T any] struct {
	v   T
	ctx Context
}

// Of wraps v with the default context adjusted by opts.
func Of[T any](v T, opts ...Option) Pre[T] {
	return Pre[T]{v: v, ctx: newContext(opts)}
}

// OfContext wraps v with an explicit context.
func OfContext[T any](v T, ctx Context) Pre[T] {
	return Pre[T]{v: v, ctx: ctx}
}

func (p Pre[T]) Limit() int       { return p.ctx.Limit }
func (p Pre[T]) Depth() int       { return p.ctx.Depth }
func (p Pre[T]) Verbose() bool    { return p.ctx.Verbose }
func (p Pre[T]) Inner() T         { return p.v }
func (p Pre[T]) Context() Context { return p.ctx }
func (p Pre[T]) Next() Context    { return p.ctx.Next() }

// String renders the wrapped value. It panics with a *CompileError when T
// cannot be composed.
func (p Pre[T]) String() string {
	n := mustLookup(reflect.TypeFor[T]())
	var b strings.Builder
	n.emit(&b, reflect.ValueOf(&p.v).Elem(), p.ctx)
	return b.String()
}

// WriteTo implements io.WriterTo.
func (p Pre[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	return int64(n), err
}
