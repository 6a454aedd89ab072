package pretty

import (
	"cmp"
	"container/list"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// writeSequence renders n elements between lb and rb. When the limit
// is smaller than n, the first ceil(limit/2) and last limit-ceil(limit/2)
// elements are shown around a "..." marker. Elements get ctx.Next().
func writeSequence(b *strings.Builder, lb, rb string, n int, ctx Context, item func(i int, ctx Context)) {
	head, tail := n, 0
	if limit := ctx.limit(); limit < n {
		head = (limit + 1) / 2
		tail = limit - head
	}
	omitted := n - head - tail
	next := ctx.Next()

	b.WriteString(lb)
	sep := false
	put := func(i int) {
		if sep {
			b.WriteString(", ")
		}
		sep = true
		if next.Exhausted() {
			b.WriteString(ellipsis)
			return
		}
		item(i, next)
	}
	for i := range head {
		put(i)
	}
	if omitted > 0 {
		if sep {
			b.WriteString(", ")
		}
		b.WriteString(ellipsis)
		sep = true
	}
	for i := n - tail; i < n; i++ {
		put(i)
	}
	if ctx.Verbose {
		fmt.Fprintf(b, " (sz: %d, ommitted %d)", n, omitted)
	}
	b.WriteString(rb)
}

// writeForward renders at most limit elements from the front. There is no
// tail: a "..." marks elements left unread.
func writeForward(b *strings.Builder, lb, rb string, ctx Context, items iter.Seq[func(Context)]) {
	limit := ctx.limit()
	next := ctx.Next()
	count := 0
	more := false

	b.WriteString(lb)
	for item := range items {
		if count == limit {
			more = true
			break
		}
		if count > 0 {
			b.WriteString(", ")
		}
		if next.Exhausted() {
			b.WriteString(ellipsis)
		} else {
			item(next)
		}
		count++
	}
	if more {
		if count > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ellipsis)
	}
	b.WriteString(rb)
}

func (c *compiler) slice(t reflect.Type) (func(*strings.Builder, reflect.Value, Context), error) {
	elem, err := c.compile(t.Elem())
	if err != nil {
		return nil, err
	}
	return func(b *strings.Builder, v reflect.Value, ctx Context) {
		if v.Kind() == reflect.Array && !v.CanAddr() {
			if r, ok := reach(v); ok {
				v = r
			}
		}
		writeSequence(b, "[", "]", v.Len(), ctx, func(i int, ctx Context) {
			elem.emit(b, v.Index(i), ctx)
		})
	}, nil
}

type entry struct {
	key, val reflect.Value
}

// sortedEntries returns the entries of map m ordered by key.
func sortedEntries(m reflect.Value) []entry {
	entries := make([]entry, 0, m.Len())
	it := m.MapRange()
	for it.Next() {
		k, _ := reach(it.Key())
		v, _ := reach(it.Value())
		entries = append(entries, entry{key: k, val: v})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return compareValues(a.key, b.key)
	})
	return entries
}

func (c *compiler) mapping(t reflect.Type) (func(*strings.Builder, reflect.Value, Context), error) {
	key, err := c.compile(t.Key())
	if err != nil {
		return nil, err
	}
	val, err := c.compile(t.Elem())
	if err != nil {
		return nil, err
	}
	return func(b *strings.Builder, v reflect.Value, ctx Context) {
		m, ok := reach(v)
		if !ok {
			b.WriteString(ellipsis)
			return
		}
		entries := sortedEntries(m)
		writeSequence(b, "{", "}", len(entries), ctx, func(i int, ctx Context) {
			b.WriteByte('(')
			key.emit(b, entries[i].key, ctx)
			b.WriteString(", ")
			val.emit(b, entries[i].val, ctx)
			b.WriteByte(')')
		})
	}, nil
}

func (c *compiler) set(t reflect.Type) (func(*strings.Builder, reflect.Value, Context), error) {
	key, err := c.compile(t.Key())
	if err != nil {
		return nil, err
	}
	return func(b *strings.Builder, v reflect.Value, ctx Context) {
		m, ok := reach(v)
		if !ok {
			b.WriteString(ellipsis)
			return
		}
		entries := sortedEntries(m)
		writeSequence(b, "{", "}", len(entries), ctx, func(i int, ctx Context) {
			key.emit(b, entries[i].key, ctx)
		})
	}, nil
}

func writeSequenceLike(b *strings.Builder, v reflect.Value, ctx Context) {
	if isNil(v) {
		b.WriteString(nullptr)
		return
	}
	x, ok := iface(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	s := x.(SequenceLike)
	writeSequence(b, "[", "]", s.Len(), ctx, func(i int, ctx Context) {
		emitAny(b, s.At(i), ctx)
	})
}

// writeList walks a container/list from the front for the head and from the
// back for the tail.
func writeList(b *strings.Builder, v reflect.Value, ctx Context) {
	if v.IsNil() {
		b.WriteString(nullptr)
		return
	}
	x, ok := iface(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	l := x.(*list.List)
	n := l.Len()
	head, tail := n, 0
	if limit := ctx.limit(); limit < n {
		head = (limit + 1) / 2
		tail = limit - head
	}
	shown := make([]any, 0, head+tail)
	e := l.Front()
	for range head {
		shown = append(shown, e.Value)
		e = e.Next()
	}
	back := make([]any, 0, tail)
	e = l.Back()
	for range tail {
		back = append(back, e.Value)
		e = e.Prev()
	}
	slices.Reverse(back)
	shown = append(shown, back...)

	writeSequence(b, "[", "]", n, ctx, func(i int, ctx Context) {
		if i >= head {
			i = head + i - (n - tail)
		}
		emitAny(b, shown[i], ctx)
	})
}

// callSeq drives an iter.Seq or iter.Seq2 shaped func value through reflect.
func callSeq(fn reflect.Value, item func(args []reflect.Value) func(Context)) iter.Seq[func(Context)] {
	yieldType := fn.Type().In(0)
	return func(yield func(func(Context)) bool) {
		y := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(item(args)))}
		})
		fn.Call([]reflect.Value{y})
	}
}

func (c *compiler) seq(t reflect.Type) (func(*strings.Builder, reflect.Value, Context), error) {
	elem, err := c.compile(t.In(0).In(0))
	if err != nil {
		return nil, err
	}
	return func(b *strings.Builder, v reflect.Value, ctx Context) {
		fn, ok := reach(v)
		if !ok || fn.IsNil() {
			b.WriteString(nullptr)
			return
		}
		writeForward(b, "[", "]", ctx, callSeq(fn, func(args []reflect.Value) func(Context) {
			x, _ := reach(args[0])
			return func(ctx Context) { elem.emit(b, x, ctx) }
		}))
	}, nil
}

func (c *compiler) seq2(t reflect.Type) (func(*strings.Builder, reflect.Value, Context), error) {
	key, err := c.compile(t.In(0).In(0))
	if err != nil {
		return nil, err
	}
	val, err := c.compile(t.In(0).In(1))
	if err != nil {
		return nil, err
	}
	return func(b *strings.Builder, v reflect.Value, ctx Context) {
		fn, ok := reach(v)
		if !ok || fn.IsNil() {
			b.WriteString(nullptr)
			return
		}
		writeForward(b, "{", "}", ctx, callSeq(fn, func(args []reflect.Value) func(Context) {
			k, _ := reach(args[0])
			e, _ := reach(args[1])
			return func(ctx Context) {
				b.WriteByte('(')
				key.emit(b, k, ctx)
				b.WriteString(", ")
				val.emit(b, e, ctx)
				b.WriteByte(')')
			}
		}))
	}, nil
}

// writeAllMethod renders types that expose their elements through All().
func writeAllMethod(b *strings.Builder, v reflect.Value, ctx Context) {
	if isNil(v) {
		b.WriteString(nullptr)
		return
	}
	r, ok := reach(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	seq := r.MethodByName("All").Call(nil)[0]
	emitDynamic(b, seq, ctx)
}

// compareValues orders map keys. Values of different dynamic types order by
// type name.
func compareValues(a, b reflect.Value) int {
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case a.Bool():
			return 1
		default:
			return -1
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ac, bc := a.Complex(), b.Complex()
		if c := cmp.Compare(real(ac), real(bc)); c != 0 {
			return c
		}
		return cmp.Compare(imag(ac), imag(bc))
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		return cmp.Compare(a.Pointer(), b.Pointer())
	case reflect.Array:
		for i := range a.Len() {
			if c := compareValues(a.Index(i), b.Index(i)); c != 0 {
				return c
			}
		}
		return 0
	case reflect.Struct:
		for i := range a.NumField() {
			if c := compareValues(a.Field(i), b.Field(i)); c != 0 {
				return c
			}
		}
		return 0
	case reflect.Interface:
		switch {
		case a.IsNil() && b.IsNil():
			return 0
		case a.IsNil():
			return -1
		case b.IsNil():
			return 1
		}
		ae, be := a.Elem(), b.Elem()
		if ae.Type() != be.Type() {
			return cmp.Compare(ae.Type().String(), be.Type().String())
		}
		return compareValues(ae, be)
	}
	return 0
}
