package set

import (
	"context"
	"sync"
)

// FilteredAsync builds a set of the distinct values in items for which
// keep returns true, evaluating the predicate with up to concurrency
// goroutines. The first predicate error aborts the build and is
// returned, as is context cancellation. Under an error-free predicate
// the result equals Filtered(items, keep).
func FilteredAsync[T comparable](
	baseCtx context.Context,
	items []T,
	keep PredicateContext[T],
	concurrency uint32,
) (*HashSet[T], error) {
	result := New[T]()
	c := int(concurrency)
	if c < 1 {
		c = 1
	}

	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	var mux sync.Mutex
	errCh := make(chan error)
	doneCh := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		sem := make(chan struct{}, c)
		for _, item := range items {
			sem <- struct{}{}
			wg.Add(1)
			go func(item T) {
				defer func() {
					<-sem
					wg.Done()
				}()

				ok, err := keep(ctx, item)
				if err != nil {
					select {
					case errCh <- err:
					case <-ctx.Done():
					}
				} else if ok {
					mux.Lock()
					result.Insert(item)
					mux.Unlock()
				}
			}(item)
		}
		wg.Wait()
		close(doneCh)
	}()

	select {
	case <-doneCh:
		if err := baseCtx.Err(); err != nil {
			return nil, err
		}
		return result, nil
	case err := <-errCh:
		cancel()
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
