package oraclient

import (
	"github.com/foundation-rs/oraclient/internal/oci"
)

// DefaultPrefetch / QueryOnePrefetch are spec.md §4.3's fixed prefetch sizes
// for Query and QueryOne respectively; QueryMany takes a caller-supplied size.
const (
	DefaultPrefetch  = 10
	QueryOnePrefetch = 1
)

// Connection is the minimal external-collaborator stub spec.md §1 calls out
// as out of scope for this library (environment/handle bootstrap, pooling):
// just enough of a service-context holder for Statement/Query to compile and
// be exercised against a fake internal/oci.Backend in this module's own
// tests. A real deployment wires backend to internal/oci.LiveBackend behind
// its own connect/pool lifecycle.
type Connection struct {
	backend oci.Backend
	svc     oci.Handle
}

// NewConnection wraps an already-established OCI service context handle and
// the backend it was opened through. Establishing that handle (environment
// creation, logon) is outside this library's scope (spec.md §1).
func NewConnection(backend oci.Backend, svc oci.Handle) *Connection {
	return &Connection{backend: backend, svc: svc}
}

// Prepare compiles sql against the connection and binds prov's members into
// a new Statement (spec.md §4.3 Prepare).
func Prepare[P any](c *Connection, sql string, prov ParamsProvider[P]) (*Statement[P], error) {
	return newStatement(c.backend, c.svc, sql, prov)
}

// NewQuery prepares sql and attaches a result area sized for DefaultPrefetch
// rows (spec.md §4.3 "Query(self)").
func NewQuery[P, R any](c *Connection, sql string, pprov ParamsProvider[P], rprov ResultsProvider[R]) (*Query[P, R], error) {
	stmt, err := newStatement(c.backend, c.svc, sql, pprov)
	if err != nil {
		return nil, err
	}
	return intoQuery(stmt, rprov, DefaultPrefetch)
}

// NewQueryOne prepares sql and attaches a result area sized for exactly one
// row (spec.md §4.3 "QueryOne(self)").
func NewQueryOne[P, R any](c *Connection, sql string, pprov ParamsProvider[P], rprov ResultsProvider[R]) (*Query[P, R], error) {
	stmt, err := newStatement(c.backend, c.svc, sql, pprov)
	if err != nil {
		return nil, err
	}
	return intoQuery(stmt, rprov, QueryOnePrefetch)
}

// NewQueryMany prepares sql and attaches a result area sized for the given
// prefetch batch size (spec.md §4.3 "QueryMany(self, prefetch_rows)").
func NewQueryMany[P, R any](c *Connection, sql string, prefetch uint32, pprov ParamsProvider[P], rprov ResultsProvider[R]) (*Query[P, R], error) {
	stmt, err := newStatement(c.backend, c.svc, sql, pprov)
	if err != nil {
		return nil, err
	}
	return intoQuery(stmt, rprov, prefetch)
}

// Execute is the one-shot non-SELECT convenience spec.md §6 lists
// (`Connection.execute(sql)`): prepare sql with a Unit parameter provider,
// execute it once with no bound values, and release the statement.
func (c *Connection) Execute(sql string) error {
	stmt, err := Prepare[Unit](c, sql, Unit{})
	if err != nil {
		return err
	}
	defer stmt.Close()
	return stmt.Execute(Unit{})
}
