package pool

import "context"

const cancelCheckEvery = 1024

// Span is a half-open index range [Start, End).
type Span struct {
	Start int
	End   int
}

// Partition splits n items into at most parts contiguous, non-empty spans of
// near-equal length.
func Partition(n, parts int) []Span {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	size := n / parts
	rem := n % parts
	spans := make([]Span, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		end := start + size
		if i < rem {
			end++
		}
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}

// Reduce folds items into a single accumulator. Each partition is folded into
// a fresh accumulator from zero while holding a worker slot; partial results
// are then merged in partition order. The result does not depend on parts as
// long as merge is associative and zero is its identity.
func Reduce[T, A any](
	ctx context.Context,
	p *Pool,
	items []T,
	parts int,
	zero func() A,
	fold func(acc A, index int, item T) (A, error),
	merge func(dst, src A) A,
) (A, error) {
	spans := Partition(len(items), parts)
	partials := make([]A, len(spans))
	err := p.Each(ctx, len(spans), func(ctx context.Context, i int) error {
		return p.Do(ctx, func() error {
			acc := zero()
			span := spans[i]
			for idx := span.Start; idx < span.End; idx++ {
				if (idx-span.Start)%cancelCheckEvery == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				var err error
				acc, err = fold(acc, idx, items[idx])
				if err != nil {
					return err
				}
			}
			partials[i] = acc
			return nil
		})
	})
	if err != nil {
		var empty A
		return empty, err
	}
	result := zero()
	for _, partial := range partials {
		result = merge(result, partial)
	}
	return result, nil
}
