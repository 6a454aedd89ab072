// Package pretty renders arbitrary Go values as compact single-line text.
//
// Output is bounded in two directions: a width limit caps how many elements of
// each container are shown, and a depth limit caps how far nested values are
// expanded. Everything beyond either bound is replaced by "...".
//
//	pretty.Render([]int{1, 2, 3, 4, 5}, pretty.WithLimit(3))
//	// [1, 2, ..., 5]
//
// # Shapes
//
// Every type is classified into exactly one [Shape] when its renderer is
// composed, and the shape never depends on the value:
//
//   - scalars: bool, numbers, strings, pointers, error and fmt.Stringer
//   - sequences: slices, arrays, maps, [SequenceLike] and *list.List
//   - forward containers: iter.Seq, iter.Seq2 and types with an All method
//   - adapters: [AdapterLike], such as [Queue], [Stack] and [PriorityQueue]
//   - tuples and pairs: [TupleLike] and [PairLike]
//   - optionals: [OptionalLike]
//   - atomics: types with matching Load and Store methods, such as atomic.Int64
//   - aggregates: any other struct, decomposed field by field
//
// A [Presenter] overrides classification entirely.
//
// # Limits
//
// A sequence longer than the limit shows its first ceil(limit/2) and last
// floor(limit/2) elements around a "..." marker. Forward containers can only
// be read from the front, so they show the first limit elements. Each
// container consumes one level of depth; pairs, tuples, optionals, adapters
// and atomics are transparent and do not.
//
//	pretty.Render([][]int{{1, 2}, {3}}, pretty.WithDepth(0))
//	// [..., ...]
//
// [WithVerbose] appends the size and omitted count to sequences:
//
//	pretty.Render([]int{1, 2, 3, 4}, pretty.WithLimit(2), pretty.WithVerbose(true))
//	// [1, ..., 4 (sz: 4, ommitted 2)]
//
// # Composition
//
// Renderers are composed once per type and cached. Composition fails only for
// structs with more than [MaxFields] fields; [For] and [Compile] report that
// as a *[CompileError], while [Render] panics. Rendering a composed type never
// fails.
//
//	var printRecord = pretty.MustFor[Record]()
//	fmt.Println(printRecord.Render(r))
//
// Values held in interfaces are classified by their dynamic type when they
// are rendered. A dynamic type that cannot be composed renders as "..." and
// the failure goes to the logger installed with [SetLogger].
//
// # Deferred rendering
//
// [Of] wraps a value with its limits so it can be passed to fmt or a logger
// and rendered only when formatted:
//
//	log.Info().Stringer("req", pretty.Of(req, pretty.WithDepth(2))).Msg("handled")
package pretty
