// Package oci wraps the external OCI (Oracle Call Interface) boundary
// spec.md §6 describes. Per spec.md §1, environment/handle bootstrap,
// connection lifecycle, and the OCI entry-point wrappers' own status
// plumbing are external collaborators, not specified here — this package
// is the thin, teacher-style (purego, no cgo) boundary that the core
// statement/query engine calls into, modeled on the teacher's odbc.go.
package oci

// Handle is an opaque OCI handle (environment, service context, error,
// or statement handle) addressed by its raw pointer value.
type Handle uintptr

// Attr identifies a handle attribute read or written via AttrGet/AttrSet.
type Attr int

const (
	// AttrRowsFetched reads OCI_ATTR_ROWS_FETCHED off a statement handle.
	AttrRowsFetched Attr = iota
	// AttrPrefetchRows writes OCI_ATTR_PREFETCH_ROWS on a statement handle.
	AttrPrefetchRows
)

// Oracle error numbers that are not errors at the iterator boundary
// (spec.md §4.5/§7).
const (
	ErrEndOfData = 1403 // ORA-01403: no data
	ErrTruncated = 1406 // ORA-01406: truncated fetch
)

// Backend is the external OCI collaborator boundary from spec.md §6's
// table. The statement/query engine (internal/params, internal/results,
// and the root package) only ever calls through this interface; the
// concrete purego-backed implementation lives in this package
// (client.go/oci_unix.go/oci_windows.go) and the in-memory fake used by
// this module's own tests lives in internal/oci/ocitest.
type Backend interface {
	// StmtPrepare compiles sql against the service context and returns a
	// statement handle.
	StmtPrepare(svc Handle, sql string) (Handle, error)
	// StmtRelease releases a statement handle.
	StmtRelease(stmt Handle) error
	// BindByPos binds a 1-based positional placeholder to a parameter slot.
	BindByPos(stmt Handle, pos int, valp, indp, lenp uintptr, size int, dtype uint16) error
	// BindByName binds a named placeholder to a parameter slot.
	BindByName(stmt Handle, name string, valp, indp, lenp uintptr, size int, dtype uint16) error
	// DefineByPos registers a 1-based select-list column's output slot.
	DefineByPos(stmt Handle, pos int, valp, indp, lenp uintptr, size int, dtype uint16) error
	// SetPrefetchSize advises the server to preload n rows per round trip.
	SetPrefetchSize(stmt Handle, n uint32) error
	// StmtExecute runs the statement; iters is the expected batch size.
	StmtExecute(svc, stmt Handle, iters uint32) error
	// StmtFetch fetches up to n more rows. code is the Oracle error number
	// (0 on success, ErrEndOfData, ErrTruncated, or another server code).
	StmtFetch(stmt Handle, n uint32) (code int32, err error)
	// AttrGet reads a handle attribute.
	AttrGet(handle Handle, attr Attr) (uint32, error)
	// AttrSet writes a handle attribute.
	AttrSet(handle Handle, attr Attr, value uint32) error
}

// Error is the error value every Backend method that fails must return,
// matching spec.md §4.7's shape. The oraclient package re-wraps this as
// its own public Error type; oci.Error exists so the boundary layer does
// not import the root package (avoiding an import cycle).
type Error struct {
	Code      int32
	Message   string
	Operation string
}

func (e *Error) Error() string {
	return e.Operation + ": ORA-" + itoa(e.Code) + ": " + e.Message
}

// OCICode exposes the Oracle error number for callers that need to inspect
// the numeric code without a type assertion on the concrete error type.
func (e *Error) OCICode() int32 {
	return e.Code
}

func itoa(n int32) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
