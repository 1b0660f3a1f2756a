package oraclient

import (
	"github.com/foundation-rs/oraclient/internal/oci"
	"github.com/foundation-rs/oraclient/internal/params"
)

// Statement owns a prepared OCI handle and its parameter area (spec.md §4.3):
// exclusively, released together on Close. A Statement is reusable across
// Execute calls. NewQuery/NewQueryOne/NewQueryMany prepare a statement of
// their own and consume it into the Query they return; a Statement obtained
// from Prepare cannot be turned into a Query.
type Statement[P any] struct {
	backend oci.Backend
	svc     oci.Handle
	stmt    oci.Handle
	area    *params.Area[P]
	closed  bool
}

func newStatement[P any](backend oci.Backend, svc oci.Handle, sql string, prov ParamsProvider[P]) (*Statement[P], error) {
	stmt, err := backend.StmtPrepare(svc, sql)
	if err != nil {
		return nil, errPrepare(err)
	}
	area, err := params.New[P](backend, stmt, prov)
	if err != nil {
		_ = backend.StmtRelease(stmt)
		return nil, errBind(err)
	}
	return &Statement[P]{backend: backend, svc: svc, stmt: stmt, area: area}, nil
}

// Execute writes p through the provider into the parameter area and runs the
// statement once (spec.md §4.3 Execute, `iters = 1`); for non-SELECT SQL.
func (s *Statement[P]) Execute(p P) error {
	if err := s.area.Project(p); err != nil {
		return errInternal("execute", err.Error())
	}
	if err := s.backend.StmtExecute(s.svc, s.stmt, 1); err != nil {
		return errExecute(err)
	}
	return nil
}

// Close releases the statement handle and its parameter area. Idempotent.
func (s *Statement[P]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.area.Close()
	return s.backend.StmtRelease(s.stmt)
}
