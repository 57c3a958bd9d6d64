package corpus

// Source is a finite, restartable sequence of token records.
//
// Contract:
//   - Each invokes fn once per record, in a stable order that is identical
//     across repeated calls on the same Source.
//   - The *Record passed to fn is borrowed: fn must not retain or mutate it
//     beyond the call.
//   - fn returning a non-nil error aborts iteration and Each returns that
//     error unchanged.
//
// Restartability is a hard requirement: downstream builders iterate the same
// Source several times and rely on bit-identical replay for deterministic
// vocabulary indexing.
type Source interface {
	Each(fn func(*Record) error) error
}

// SliceSource is an in-memory Source backed by a fixed record slice.
// Iteration order is slice order; restartable by construction.
type SliceSource struct {
	records []Record
}

// NewSliceSource copies records into a new SliceSource. The copy guarantees
// the Source stays stable even if the caller later mutates its slice.
func NewSliceSource(records []Record) *SliceSource {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &SliceSource{records: rs}
}

// Each replays every record in slice order.
func (s *SliceSource) Each(fn func(*Record) error) error {
	for i := range s.records {
		if err := fn(&s.records[i]); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of records held by the source.
func (s *SliceSource) Len() int { return len(s.records) }

// FilterOptions selects a sub-corpus out of a larger Source.
// The zero value keeps everything except uncertain-glyph tokens.
type FilterOptions struct {
	// System restricts iteration to one Currier hand; empty keeps all.
	System System

	// Section restricts iteration to one thematic section; empty keeps all.
	Section Section

	// MinLineLen drops lines with fewer tokens than this count. Lines are
	// delimited by (Page, Line) change under the stable source order.
	MinLineLen int

	// KeepUncertain keeps tokens carrying the uncertain-glyph marker.
	// Off by default: the analysis core must never see them.
	KeepUncertain bool
}

// Filter is a Source decorator applying FilterOptions. It preserves the
// order and restartability of the wrapped Source.
type Filter struct {
	src  Source
	opts FilterOptions
}

// NewFilter wraps src with the given options.
func NewFilter(src Source, opts FilterOptions) *Filter {
	return &Filter{src: src, opts: opts}
}

// Each replays the wrapped source, yielding only records that pass every
// configured predicate. MinLineLen requires a full pre-pass to count line
// lengths; the pre-pass reuses the same stable iteration, so the filtered
// order is still deterministic.
func (f *Filter) Each(fn func(*Record) error) error {
	lineLen := map[[2]string]int{}
	if f.opts.MinLineLen > 1 {
		err := f.src.Each(func(r *Record) error {
			if f.keeps(r) {
				lineLen[[2]string{r.Page, r.Line}]++
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return f.src.Each(func(r *Record) error {
		if !f.keeps(r) {
			return nil
		}
		if f.opts.MinLineLen > 1 && lineLen[[2]string{r.Page, r.Line}] < f.opts.MinLineLen {
			return nil
		}
		return fn(r)
	})
}

// keeps applies the per-record predicates (everything but MinLineLen).
func (f *Filter) keeps(r *Record) bool {
	if !f.opts.KeepUncertain && r.Uncertain() {
		return false
	}
	if f.opts.System != "" && r.System != f.opts.System {
		return false
	}
	if f.opts.Section != "" && r.Section != f.opts.Section {
		return false
	}
	return r.Text != ""
}
