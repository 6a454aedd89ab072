package pretty

import (
	"container/list"
	"fmt"
	"reflect"
)

// Shape is the structural category that decides how a type is rendered.
// Exactly one shape applies to a type and it never depends on the value.
type Shape int

const (
	ShapeScalar    Shape = iota // natively formattable
	ShapeSequence               // sized and indexable from both ends
	ShapeForward                // single pass, size unknown until consumed
	ShapeAdapter                // restricted view over a backing sequence
	ShapeTuple                  // fixed-arity heterogeneous sequence
	ShapePair                   // two-element tuple
	ShapeOptional               // zero or one value
	ShapeAtomic                 // single value read through Load
	ShapeAggregate              // struct decomposed into its fields
	ShapeDynamic                // interface, classified by its dynamic type
)

var shapeNames = [...]string{
	ShapeScalar:    "scalar",
	ShapeSequence:  "sequence",
	ShapeForward:   "forward",
	ShapeAdapter:   "adapter",
	ShapeTuple:     "tuple",
	ShapePair:      "pair",
	ShapeOptional:  "optional",
	ShapeAtomic:    "atomic",
	ShapeAggregate: "aggregate",
	ShapeDynamic:   "dynamic",
}

// String returns the shape name.
func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// --- Capability Interfaces ---

// Presenter is a user-supplied renderer. It takes precedence over every
// other shape. Use [RenderContext] to render children with ctx.Next().
type Presenter interface {
	Present(ctx Context) string
}

// PairLike renders as "(first, second)".
type PairLike interface {
	PairElems() (any, any)
}

// TupleLike renders as "<e0, e1, ...>".
type TupleLike interface {
	TupleElems() []any
}

// OptionalLike renders as "nullopt" or "some(v)".
type OptionalLike interface {
	OptionalValue() (any, bool)
}

// AdapterLike exposes the sequence behind a queue or stack. The backing
// value is rendered in place of the adapter with the same context.
type AdapterLike interface {
	Backing() any
}

// SequenceLike is a random-access container.
type SequenceLike interface {
	Len() int
	At(i int) any
}

var (
	presenterType = reflect.TypeFor[Presenter]()
	pairType      = reflect.TypeFor[PairLike]()
	tupleType     = reflect.TypeFor[TupleLike]()
	optionalType  = reflect.TypeFor[OptionalLike]()
	adapterType   = reflect.TypeFor[AdapterLike]()
	sequenceType  = reflect.TypeFor[SequenceLike]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
	errorType     = reflect.TypeFor[error]()
	listType      = reflect.TypeFor[*list.List]()
)

// capability is the concrete mechanism behind a shape.
type capability int

const (
	capPresenter capability = iota
	capPair
	capTuple
	capOptional
	capAdapter
	capSequenceLike
	capAllMethod
	capAtomic
	capList
	capError
	capStringer
	capBool
	capInt
	capUint
	capFloat
	capComplex
	capString
	capAddress
	capSeq
	capSeq2
	capSlice
	capMap
	capSet
	capInterface
	capStruct
)

var capShapes = map[capability]Shape{
	capPresenter:    ShapeScalar,
	capPair:         ShapePair,
	capTuple:        ShapeTuple,
	capOptional:     ShapeOptional,
	capAdapter:      ShapeAdapter,
	capSequenceLike: ShapeSequence,
	capAllMethod:    ShapeForward,
	capAtomic:       ShapeAtomic,
	capList:         ShapeSequence,
	capError:        ShapeScalar,
	capStringer:     ShapeScalar,
	capBool:         ShapeScalar,
	capInt:          ShapeScalar,
	capUint:         ShapeScalar,
	capFloat:        ShapeScalar,
	capComplex:      ShapeScalar,
	capString:       ShapeScalar,
	capAddress:      ShapeScalar,
	capSeq:          ShapeForward,
	capSeq2:         ShapeForward,
	capSlice:        ShapeSequence,
	capMap:          ShapeSequence,
	capSet:          ShapeSequence,
	capInterface:    ShapeDynamic,
	capStruct:       ShapeAggregate,
}

// Classify reports the shape t is rendered with.
func Classify(t reflect.Type) Shape {
	return capShapes[probe(t)]
}

func probe(t reflect.Type) capability {
	if t.Kind() == reflect.Interface {
		return capInterface
	}
	switch {
	case t.Implements(presenterType):
		return capPresenter
	case t.Implements(pairType):
		return capPair
	case t.Implements(tupleType):
		return capTuple
	case t.Implements(optionalType):
		return capOptional
	case t.Implements(adapterType):
		return capAdapter
	case t.Implements(sequenceType):
		return capSequenceLike
	case allMethod(t):
		return capAllMethod
	case loadMethod(t):
		return capAtomic
	case t == listType:
		return capList
	case t.Implements(errorType):
		return capError
	case t.Implements(stringerType):
		return capStringer
	}

	switch t.Kind() {
	case reflect.Bool:
		return capBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return capInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return capUint
	case reflect.Float32, reflect.Float64:
		return capFloat
	case reflect.Complex64, reflect.Complex128:
		return capComplex
	case reflect.String:
		return capString
	case reflect.Func:
		switch seqArity(t) {
		case 1:
			return capSeq
		case 2:
			return capSeq2
		}
		return capAddress
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		return capAddress
	case reflect.Slice, reflect.Array:
		return capSlice
	case reflect.Map:
		if isEmptyStruct(t.Elem()) {
			return capSet
		}
		return capMap
	default:
		return capStruct
	}
}

// seqArity returns 1 for iter.Seq shaped funcs, 2 for iter.Seq2 and 0
// otherwise.
func seqArity(t reflect.Type) int {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return 0
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.NumOut() != 1 || y.Out(0).Kind() != reflect.Bool || y.IsVariadic() {
		return 0
	}
	if n := y.NumIn(); n == 1 || n == 2 {
		return n
	}
	return 0
}

// allMethod reports whether t has All() returning an iterator.
func allMethod(t reflect.Type) bool {
	m, ok := t.MethodByName("All")
	return ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1 && seqArity(m.Type.Out(0)) > 0
}

// loadMethod reports whether t, or a pointer to struct t, has a Load() T and
// Store(T) pair. Every sync/atomic type matches; a lone Load method does not.
func loadMethod(t reflect.Type) bool {
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Struct {
		return false
	}
	if t.Kind() == reflect.Struct {
		t = reflect.PointerTo(t)
	}
	load, ok := t.MethodByName("Load")
	if !ok || load.Type.NumIn() != 1 || load.Type.NumOut() != 1 {
		return false
	}
	store, ok := t.MethodByName("Store")
	return ok && store.Type.NumIn() == 2 && store.Type.NumOut() == 0 &&
		store.Type.In(1) == load.Type.Out(0)
}

func isEmptyStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}
