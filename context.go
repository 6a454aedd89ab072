package pretty

import "math"

// Unbounded is the Limit and Depth of a context that never truncates.
const Unbounded = math.MaxInt

const ellipsis = "..."

// Context controls how wide and how deep a render goes. It is a small value
// copied on every recursion step.
type Context struct {
	// Limit is the maximum number of elements shown per container level.
	// Negative values behave like zero.
	Limit int
	// Depth is the number of nesting levels left before content collapses
	// to "...".
	Depth int
	// Verbose appends a size and omitted-count annotation to sequences.
	Verbose bool
}

// DefaultContext returns a context with unbounded limit and depth.
func DefaultContext() Context {
	return Context{Limit: Unbounded, Depth: Unbounded}
}

// Next returns the context one logical nesting step below c. Depth saturates
// at math.MinInt instead of wrapping.
func (c Context) Next() Context {
	if c.Depth > math.MinInt {
		c.Depth--
	}
	return c
}

// Exhausted reports whether a value rendered with c collapses to "...".
func (c Context) Exhausted() bool { return c.Depth < 0 }

func (c Context) limit() int {
	if c.Limit < 0 {
		return 0
	}
	return c.Limit
}

// Option adjusts the context a render starts with.
type Option func(*Context)

// WithLimit sets the maximum number of elements shown per container level.
func WithLimit(n int) Option {
	return func(c *Context) { c.Limit = n }
}

// WithDepth sets the number of nesting levels rendered before truncation.
func WithDepth(n int) Option {
	return func(c *Context) { c.Depth = n }
}

// WithVerbose toggles the "(sz: N, ommitted M)" annotation on sequences.
func WithVerbose(v bool) Option {
	return func(c *Context) { c.Verbose = v }
}

// WithContext replaces the whole starting context.
func WithContext(ctx Context) Option {
	return func(c *Context) { *c = ctx }
}

func newContext(opts []Option) Context {
	ctx := DefaultContext()
	for _, opt := range opts {
		opt(&ctx)
	}
	return ctx
}
