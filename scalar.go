package pretty

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unsafe"
)

// reach returns an addressable value whose methods may be called. Values read
// through unexported fields are re-pointed at the same memory; values that are
// neither addressable nor exported cannot be reached.
func reach(v reflect.Value) (reflect.Value, bool) {
	if v.CanAddr() {
		if v.CanInterface() {
			return v, true
		}
		return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem(), true
	}
	if !v.CanInterface() {
		return v, false
	}
	tmp := reflect.New(v.Type()).Elem()
	tmp.Set(v)
	return tmp, true
}

// iface returns v as an interface value, or false when v cannot be reached.
func iface(v reflect.Value) (any, bool) {
	r, ok := reach(v)
	if !ok {
		return nil, false
	}
	return r.Interface(), true
}

// isNil reports whether v is a nil pointer-like value.
func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

const nullptr = "nullptr"

// emitAny renders a value handed out by a capability method. The step is
// transparent: x is rendered with the caller's context.
func emitAny(b *strings.Builder, x any, ctx Context) {
	if x == nil {
		if ctx.Exhausted() {
			b.WriteString(ellipsis)
			return
		}
		b.WriteString(nullptr)
		return
	}
	v := reflect.ValueOf(x)
	emitDynamic(b, v, ctx)
}

func writeDynamic(b *strings.Builder, v reflect.Value, ctx Context) {
	if v.IsNil() {
		b.WriteString(nullptr)
		return
	}
	r, ok := reach(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	e := r.Elem()
	emitDynamic(b, e, ctx)
}

func writePresenter(b *strings.Builder, v reflect.Value, ctx Context) {
	if isNil(v) {
		b.WriteString(nullptr)
		return
	}
	x, ok := iface(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	b.WriteString(x.(Presenter).Present(ctx))
}

func writeError(b *strings.Builder, v reflect.Value, _ Context) {
	if isNil(v) {
		b.WriteString(nullptr)
		return
	}
	x, ok := iface(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	b.WriteString(x.(error).Error())
}

func writeStringer(b *strings.Builder, v reflect.Value, _ Context) {
	if isNil(v) {
		b.WriteString(nullptr)
		return
	}
	x, ok := iface(v)
	if !ok {
		b.WriteString(ellipsis)
		return
	}
	b.WriteString(x.(fmt.Stringer).String())
}

func writeBool(b *strings.Builder, v reflect.Value, _ Context) {
	b.WriteString(strconv.FormatBool(v.Bool()))
}

func writeInt(b *strings.Builder, v reflect.Value, _ Context) {
	b.WriteString(strconv.FormatInt(v.Int(), 10))
}

func writeUint(b *strings.Builder, v reflect.Value, _ Context) {
	b.WriteString(strconv.FormatUint(v.Uint(), 10))
}

func writeFloat(b *strings.Builder, v reflect.Value, _ Context) {
	b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits()))
}

func writeComplex(b *strings.Builder, v reflect.Value, _ Context) {
	b.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits()))
}

// writeString quotes without escaping; interior quotes pass through.
func writeString(b *strings.Builder, v reflect.Value, _ Context) {
	b.WriteByte('"')
	b.WriteString(v.String())
	b.WriteByte('"')
}

func writeAddress(b *strings.Builder, v reflect.Value, _ Context) {
	if v.IsNil() {
		b.WriteString(nullptr)
		return
	}
	b.WriteString("0x")
	b.WriteString(strconv.FormatUint(uint64(v.Pointer()), 16))
}
