package oraclient

import (
	"github.com/foundation-rs/oraclient/internal/oci"
	"github.com/foundation-rs/oraclient/internal/params"
	"github.com/foundation-rs/oraclient/internal/results"
)

// Query is a Statement specialized for a row type (spec.md §4.3 "Query"):
// it exclusively owns the Statement it was built from and a result area,
// exposing FetchOne, FetchList, and a lazy FetchIter.
type Query[P, R any] struct {
	backend oci.Backend
	svc     oci.Handle
	stmt    oci.Handle
	pArea   *params.Area[P]
	rArea   *results.Area[R]
	rprov   ResultsProvider[R]
	closed  bool
}

// intoQuery consumes stmt and attaches a result area for rprov sized for
// prefetch rows, implementing spec.md §4.3's Query(self)/QueryOne(self)/
// QueryMany(self, prefetch_rows). Go has no generic methods, so this is a
// free function rather than a method on Statement[P].
func intoQuery[P, R any](stmt *Statement[P], rprov ResultsProvider[R], prefetch uint32) (*Query[P, R], error) {
	rArea, err := results.New[R](stmt.backend, stmt.svc, stmt.stmt, rprov, prefetch)
	if err != nil {
		return nil, errDefine(err)
	}
	stmt.closed = true // Query now owns the handle; Statement.Close must no-op.
	return &Query[P, R]{
		backend: stmt.backend,
		svc:     stmt.svc,
		stmt:    stmt.stmt,
		pArea:   stmt.area,
		rArea:   rArea,
		rprov:   rprov,
	}, nil
}

// FetchOne writes p into the parameter area, executes, and returns the first
// row (spec.md §6 "Query.fetch_one(params) → Row"). Errors with NoRow if the
// query returns zero rows.
func (q *Query[P, R]) FetchOne(p P) (R, error) {
	var zero R
	it, err := q.FetchIter(p)
	if err != nil {
		return zero, err
	}
	row, ok, err := it.Next()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, errNoRow()
	}
	return row, nil
}

// FetchList writes p into the parameter area, executes, and collects every
// row into a slice (spec.md §6 "Query.fetch_list(params) → Vec<Row>").
func (q *Query[P, R]) FetchList(p P) ([]R, error) {
	it, err := q.FetchIter(p)
	if err != nil {
		return nil, err
	}
	rows := make([]R, 0)
	for {
		row, ok, err := it.Next()
		if err != nil {
			return rows, err
		}
		if !ok {
			return rows, nil
		}
		rows = append(rows, row)
	}
}

// FetchIter writes p into the parameter area and returns a lazy row
// iterator driving execute + batched fetch (spec.md §6
// "Query.fetch_iter(params) → RowIterator", spec.md §4.5/§4.6).
func (q *Query[P, R]) FetchIter(p P) (*RowIter[R], error) {
	if err := q.pArea.Project(p); err != nil {
		return nil, errInternal("execute", err.Error())
	}
	q.rArea.Reset()
	return &RowIter[R]{area: q.rArea, provider: q.rprov}, nil
}

// Close releases the query's statement handle, parameter area, and result
// area. Idempotent.
func (q *Query[P, R]) Close() error {
	if q.closed {
		return nil
	}
	q.closed = true
	q.pArea.Close()
	q.rArea.Close()
	return q.backend.StmtRelease(q.stmt)
}
