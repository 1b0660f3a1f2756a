package oraclient

import (
	"github.com/foundation-rs/oraclient/internal/results"
)

// RowIter drives execute + batched fetch and yields decoded rows until the
// server reports end-of-data (spec.md §4.3 "Row iterator", §4.5's iteration
// protocol). An execute or fetch error is yielded exactly once as a terminal
// element; every call after that returns ok=false, err=nil. An error from the
// ResultsProvider decoding a row is returned for that row only; the next call
// moves on to the following row.
type RowIter[R any] struct {
	area     *results.Area[R]
	provider ResultsProvider[R]
}

// Next decodes and returns the next row, or ok=false when the result set is
// exhausted.
func (it *RowIter[R]) Next() (row R, ok bool, err error) {
	var zero R
	values, ok, err := it.area.Next()
	if err != nil {
		return zero, false, errFetch(err)
	}
	if !ok {
		return zero, false, nil
	}
	row, err = it.provider.GenResult(values)
	if err != nil {
		return zero, false, errInternal("fetch", err.Error())
	}
	return row, true, nil
}
