package mass

import (
	"context"
	"sync"

	"github.com/ib-77/vrop/pkg/vrop"
	"github.com/ib-77/vrop/pkg/vrop/join"
)

type indexed[Out, E any] struct {
	pos int
	res vrop.Result[Out, E]
}

// Collect evaluates independent checks against one input across a fixed
// number of worker lines and merges the outcomes exactly as join.Checks
// would: declaration order, not completion order. Checks must be pure and
// must not panic; a panicking check escapes on a worker goroutine.
//
// A non-nil error is returned only when ctx aborts evaluation before every
// check has reported; the Result is then the zero value and must not be
// used.
func Collect[In, Out, E any](ctx context.Context, input In,
	checks []func(in In) vrop.Result[Out, E], lines int) (vrop.Result[[]Out, E], error) {

	return gather(ctx, len(checks), lines, func(pos int) vrop.Result[Out, E] {
		return checks[pos](input)
	})
}

// Traverse evaluates one check per input across worker lines and merges the
// outcomes in input order, matching join.Traverse run sequentially.
func Traverse[In, Out, E any](ctx context.Context, ins []In,
	check func(in In) vrop.Result[Out, E], lines int) (vrop.Result[[]Out, E], error) {

	return gather(ctx, len(ins), lines, func(pos int) vrop.Result[Out, E] {
		return check(ins[pos])
	})
}

func gather[Out, E any](ctx context.Context, n int, lines int,
	eval func(pos int) vrop.Result[Out, E]) (vrop.Result[[]Out, E], error) {

	if err := ctx.Err(); err != nil {
		return vrop.Result[[]Out, E]{}, err
	}
	if lines < 1 {
		lines = 1
	}

	work := make(chan int)
	out := make(chan indexed[Out, E])
	wg := &sync.WaitGroup{}

	for w := 0; w < lines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for pos := range work {
				select {
				case out <- indexed[Out, E]{pos: pos, res: eval(pos)}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(work)

		for i := 0; i < n; i++ {
			select {
			case work <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]vrop.Result[Out, E], n)
	seen := 0
	for r := range out {
		results[r.pos] = r.res
		seen++
	}

	if seen != n {
		return vrop.Result[[]Out, E]{}, ctx.Err()
	}
	return join.Collect(results), nil
}
