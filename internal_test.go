package pretty

import (
	"bytes"
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextNextSaturates(t *testing.T) {
	t.Parallel()
	ctx := Context{Depth: math.MinInt}
	assert.Equal(t, math.MinInt, ctx.Next().Depth)
	assert.Equal(t, 4, Context{Depth: 5}.Next().Depth)
	assert.True(t, Context{Depth: -1}.Exhausted())
	assert.False(t, Context{Depth: 0}.Exhausted())
}

func TestContextOptions(t *testing.T) {
	t.Parallel()
	ctx := newContext([]Option{WithLimit(3), WithDepth(2), WithVerbose(true)})
	assert.Equal(t, Context{Limit: 3, Depth: 2, Verbose: true}, ctx)
	assert.Equal(t, Context{Limit: 1}, newContext([]Option{WithDepth(9), WithContext(Context{Limit: 1})}))
	assert.Equal(t, DefaultContext(), newContext(nil))
}

func TestWriteSequenceSplit(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n     int
		limit int
		want  string
	}{
		"fits":      {n: 3, limit: 3, want: "[0, 1, 2]"},
		"odd limit": {n: 10, limit: 5, want: "[0, 1, 2, ..., 8, 9]"},
		"even":      {n: 10, limit: 6, want: "[0, 1, 2, ..., 7, 8, 9]"},
		"one":       {n: 10, limit: 1, want: "[0, ...]"},
		"zero":      {n: 10, limit: 0, want: "[...]"},
		"empty":     {n: 0, limit: 0, want: "[]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var b strings.Builder
			ctx := Context{Limit: tt.limit, Depth: Unbounded}
			writeSequence(&b, "[", "]", tt.n, ctx, func(i int, _ Context) {
				b.WriteString(strconv.Itoa(i))
			})
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestWriteSequencePassesNextContext(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	var seen []int
	writeSequence(&b, "[", "]", 2, Context{Limit: Unbounded, Depth: 3}, func(_ int, ctx Context) {
		seen = append(seen, ctx.Depth)
	})
	assert.Equal(t, []int{2, 2}, seen)
}

func TestCompareValues(t *testing.T) {
	t.Parallel()
	keys := []any{"b", 2, "a", 1, true, false, 1.5}
	vals := make([]reflect.Value, len(keys))
	for i := range keys {
		vals[i] = reflect.ValueOf(&keys[i]).Elem()
	}
	assert.Equal(t, -1, compareValues(vals[3], vals[1]))
	assert.Equal(t, 1, compareValues(vals[0], vals[2]))
	assert.Equal(t, 1, compareValues(vals[4], vals[5]))
	assert.Equal(t, 0, compareValues(vals[2], vals[2]))
	// Different dynamic types order by type name: float64 < int < string.
	assert.Equal(t, -1, compareValues(vals[6], vals[1]))
	assert.Equal(t, -1, compareValues(vals[1], vals[0]))

	type key struct{ A, B int }
	assert.Equal(t, -1, compareValues(reflect.ValueOf(key{1, 2}), reflect.ValueOf(key{1, 3})))
	assert.Equal(t, 1, compareValues(reflect.ValueOf([2]int{2, 0}), reflect.ValueOf([2]int{1, 9})))
}

func TestTypeLabel(t *testing.T) {
	t.Parallel()
	type named struct{}
	assert.Equal(t, "pretty.named", typeLabel(reflect.TypeFor[named]()))
	assert.Empty(t, typeLabel(reflect.TypeFor[struct{ A int }]()))
}

func TestReachUnexported(t *testing.T) {
	t.Parallel()
	type inner struct{ c Char }
	v := reflect.ValueOf(&inner{c: 'z'}).Elem().Field(0)
	require.False(t, v.CanInterface())
	r, ok := reach(v)
	require.True(t, ok)
	assert.Equal(t, Char('z'), r.Interface())

	// A non-addressable value read through an unexported field cannot be
	// reached.
	nv := reflect.ValueOf(inner{c: 'z'}).Field(0)
	_, ok = reach(nv)
	assert.False(t, ok)
}

func TestCompileCachesNodes(t *testing.T) {
	t.Parallel()
	type cached struct{ Xs []int }
	a, err := lookup(reflect.TypeFor[cached]())
	require.NoError(t, err)
	b, err := lookup(reflect.TypeFor[cached]())
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, ShapeAggregate, a.shape)
}

func TestCompileFailureIsLogged(t *testing.T) {
	type loud struct {
		f0, f1, f2, f3, f4, f5, f6, f7, f8, f9, f10, f11, f12, f13, f14, f15, f16 int
		f17, f18, f19, f20, f21, f22, f23, f24, f25, f26, f27, f28, f29, f30, f31, f32 int
	}
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { SetLogger(zerolog.Nop()) })

	err := Compile(reflect.TypeFor[loud]())
	require.ErrorIs(t, err, ErrTooManyFields)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "pretty.loud")

	buf.Reset()
	assert.Equal(t, "[{pretty.loud ...}]", Render([]any{loud{}}))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "pretty.loud")
}
