package pretty

import (
	"fmt"
	"reflect"
	"strings"
)

// aggregate composes the renderer for a struct with no other shape. Fields
// are rendered in declaration order as a tuple one nesting level below the
// struct itself: {label <f0, f1, ...>}.
func (c *compiler) aggregate(t reflect.Type) (func(*strings.Builder, reflect.Value, Context), error) {
	if n := t.NumField(); n > MaxFields {
		return nil, fmt.Errorf("%w: %d fields, at most %d are supported", ErrTooManyFields, n, MaxFields)
	}
	fields := make([]*node, t.NumField())
	for i := range fields {
		n, err := c.compile(t.Field(i).Type)
		if err != nil {
			return nil, err
		}
		fields[i] = n
	}
	label := typeLabel(t)

	return func(b *strings.Builder, v reflect.Value, ctx Context) {
		if r, ok := reach(v); ok {
			v = r
		}
		b.WriteByte('{')
		b.WriteString(label)
		b.WriteByte(' ')
		next := ctx.Next()
		if next.Exhausted() {
			b.WriteString(ellipsis)
		} else {
			b.WriteByte('<')
			for i, f := range fields {
				if i > 0 {
					b.WriteString(", ")
				}
				f.emit(b, v.Field(i), next)
			}
			b.WriteByte('>')
		}
		b.WriteByte('}')
	}, nil
}

// typeLabel is the package-qualified name of t, or empty for unnamed types.
func typeLabel(t reflect.Type) string {
	if t.Name() == "" {
		return ""
	}
	return t.String()
}
