package pretty

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// MaxFields is the largest struct arity the aggregate renderer decomposes.
const MaxFields = 32

// ErrTooManyFields is returned when a struct has more than MaxFields fields.
var ErrTooManyFields = errors.New("too many fields")

// CompileError reports a type that no renderer can be composed for.
type CompileError struct {
	Type reflect.Type
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("pretty: cannot compose renderer for %s: %v", e.Type, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

var diag atomic.Pointer[zerolog.Logger]

// SetLogger installs the sink composition failures are reported to. The
// default discards everything.
func SetLogger(l zerolog.Logger) {
	diag.Store(&l)
}

func logger() *zerolog.Logger {
	if l := diag.Load(); l != nil {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}

// node is the composed renderer for one type.
type node struct {
	typ   reflect.Type
	shape Shape
	write func(b *strings.Builder, v reflect.Value, ctx Context)
}

// emit renders v, collapsing to "..." once the depth budget is spent.
func (n *node) emit(b *strings.Builder, v reflect.Value, ctx Context) {
	if ctx.Exhausted() {
		b.WriteString(ellipsis)
		return
	}
	n.write(b, v, ctx)
}

var cache sync.Map // reflect.Type -> *node

// Compile composes the renderer for t, reporting a *CompileError when t or
// any type reachable from it cannot be rendered. Types only reachable through
// interface values are composed when such a value is first rendered; a
// failure there renders as "..." instead.
func Compile(t reflect.Type) error {
	_, err := lookup(t)
	return err
}

func lookup(t reflect.Type) (*node, error) {
	if n, ok := cache.Load(t); ok {
		return n.(*node), nil
	}
	c := &compiler{pending: make(map[reflect.Type]*node)}
	n, err := c.compile(t)
	if err != nil {
		var ce *CompileError
		if errors.As(err, &ce) {
			logger().Error().Err(ce.Err).Str("type", ce.Type.String()).Msg("renderer composition failed")
		}
		return nil, err
	}
	for typ, pn := range c.pending {
		cache.LoadOrStore(typ, pn)
	}
	return n, nil
}

func mustLookup(t reflect.Type) *node {
	n, err := lookup(t)
	if err != nil {
		panic(err)
	}
	return n
}

// emitDynamic renders v with the node for its dynamic type, composing it on
// first use. A type that cannot be composed renders as "..." ("{label ...}"
// for structs); lookup has already logged why.
func emitDynamic(b *strings.Builder, v reflect.Value, ctx Context) {
	if ctx.Exhausted() {
		b.WriteString(ellipsis)
		return
	}
	n, err := lookup(v.Type())
	if err != nil {
		if v.Kind() == reflect.Struct {
			b.WriteString("{" + typeLabel(v.Type()) + " " + ellipsis + "}")
			return
		}
		b.WriteString(ellipsis)
		return
	}
	n.emit(b, v, ctx)
}

type compiler struct {
	pending map[reflect.Type]*node
}

func (c *compiler) compile(t reflect.Type) (*node, error) {
	if n, ok := cache.Load(t); ok {
		return n.(*node), nil
	}
	// Recursive types resolve to the node under construction.
	if n, ok := c.pending[t]; ok {
		return n, nil
	}
	n := &node{typ: t}
	c.pending[t] = n

	capa := probe(t)
	n.shape = capShapes[capa]

	var err error
	switch capa {
	case capPresenter:
		n.write = writePresenter
	case capPair:
		n.write = writePairLike
	case capTuple:
		n.write = writeTupleLike
	case capOptional:
		n.write = writeOptionalLike
	case capAdapter:
		n.write = writeAdapter
	case capSequenceLike:
		n.write = writeSequenceLike
	case capAllMethod:
		n.write = writeAllMethod
	case capAtomic:
		n.write = writeAtomic
	case capList:
		n.write = writeList
	case capError:
		n.write = writeError
	case capStringer:
		n.write = writeStringer
	case capBool:
		n.write = writeBool
	case capInt:
		n.write = writeInt
	case capUint:
		n.write = writeUint
	case capFloat:
		n.write = writeFloat
	case capComplex:
		n.write = writeComplex
	case capString:
		n.write = writeString
	case capAddress:
		n.write = writeAddress
	case capSeq:
		n.write, err = c.seq(t)
	case capSeq2:
		n.write, err = c.seq2(t)
	case capSlice:
		n.write, err = c.slice(t)
	case capMap:
		n.write, err = c.mapping(t)
	case capSet:
		n.write, err = c.set(t)
	case capInterface:
		n.write = writeDynamic
	case capStruct:
		n.write, err = c.aggregate(t)
	}
	if err != nil {
		var ce *CompileError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &CompileError{Type: t, Err: err}
	}
	return n, nil
}
