package pretty

import (
	"reflect"
	"strings"
)

// Pairs, tuples, optionals, atomics and adapters are transparent: their
// payload is rendered with the same context, so they never consume depth.

func writePairLike(b *strings.Builder, v reflect.Value, ctx Context) {
	if isNil(v) {
		b.WriteString(nullptr)
		return
	}
	x, ok := iface(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	first, second := x.(PairLike).PairElems()
	b.WriteByte('(')
	emitAny(b, first, ctx)
	b.WriteString(", ")
	emitAny(b, second, ctx)
	b.WriteByte(')')
}

func writeTupleLike(b *strings.Builder, v reflect.Value, ctx Context) {
	if isNil(v) && v.Kind() != reflect.Slice {
		b.WriteString(nullptr)
		return
	}
	x, ok := iface(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	b.WriteByte('<')
	for i, e := range x.(TupleLike).TupleElems() {
		if i > 0 {
			b.WriteString(", ")
		}
		emitAny(b, e, ctx)
	}
	b.WriteByte('>')
}

func writeOptionalLike(b *strings.Builder, v reflect.Value, ctx Context) {
	if isNil(v) {
		b.WriteString("nullopt")
		return
	}
	x, ok := iface(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	val, present := x.(OptionalLike).OptionalValue()
	if !present {
		b.WriteString("nullopt")
		return
	}
	b.WriteString("some(")
	emitAny(b, val, ctx)
	b.WriteByte(')')
}

func writeAdapter(b *strings.Builder, v reflect.Value, ctx Context) {
	if isNil(v) {
		b.WriteString(nullptr)
		return
	}
	x, ok := iface(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	emitAny(b, x.(AdapterLike).Backing(), ctx)
}

// writeAtomic reads the value through Load. The read is a snapshot for
// display only; it orders nothing.
func writeAtomic(b *strings.Builder, v reflect.Value, ctx Context) {
	if isNil(v) {
		b.WriteString(nullptr)
		return
	}
	r, ok := reach(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	if r.Kind() != reflect.Pointer {
		r = r.Addr()
	}
	loaded := r.MethodByName("Load").Call(nil)[0]
	b.WriteString("atomic(")
	emitDynamic(b, loaded, ctx)
	b.WriteByte(')')
}
