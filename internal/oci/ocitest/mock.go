// Package ocitest is an in-memory fake of the oci.Backend boundary, used
// by this module's own tests in place of a live Oracle instance — mirroring
// how the teacher's own test suite (odbc_test.go) exercises buffer/convert
// logic without a live ODBC driver connected.
package ocitest

import (
	"sync"
	"unsafe"

	"github.com/foundation-rs/oraclient/internal/oci"
)

// Cell is one pre-encoded column value for one row of a scripted result
// set: the test encodes the logical value itself and
// hands the raw bytes to the mock, which writes them into the define
// buffers the way the server would.
type Cell struct {
	Indicator int16
	Length    uint32
	Bytes     []byte
}

type column struct {
	valp, indp, lenp uintptr
	size             int
	dtype            uint16
}

type stmtState struct {
	sql      string
	columns  []column
	params   []column
	rows     [][]Cell
	cursor   int
	prefetch uint32

	// truncateAtRow, if >= 0, makes the batch that would deliver this
	// (0-based, cumulative) row index return ErrTruncated instead of
	// success, after writing the rows up to and including it.
	truncateAtRow int

	rowsFetchedLastBatch uint32
}

// Mock implements oci.Backend entirely in memory.
type Mock struct {
	stmts      map[oci.Handle]*stmtState
	nextHandle uintptr
	releaseMu  sync.Mutex // serializes StmtRelease, which CloseAll calls concurrently

	// PrepareHook seeds a newly-prepared statement's scripted rows and
	// truncation point from its SQL text.
	PrepareHook func(sql string) (rows [][]Cell, truncateAtRow int)
}

// New returns an empty Mock backend.
func New() *Mock {
	return &Mock{stmts: make(map[oci.Handle]*stmtState), nextHandle: 1}
}

func (m *Mock) StmtPrepare(_ oci.Handle, sql string) (oci.Handle, error) {
	h := oci.Handle(m.nextHandle)
	m.nextHandle++
	st := &stmtState{sql: sql, truncateAtRow: -1}
	if m.PrepareHook != nil {
		st.rows, st.truncateAtRow = m.PrepareHook(sql)
	}
	m.stmts[h] = st
	return h, nil
}

func (m *Mock) StmtRelease(stmt oci.Handle) error {
	m.releaseMu.Lock()
	defer m.releaseMu.Unlock()
	delete(m.stmts, stmt)
	return nil
}

func (m *Mock) BindByPos(stmt oci.Handle, pos int, valp, indp, lenp uintptr, size int, dtype uint16) error {
	st := m.stmts[stmt]
	for len(st.params) < pos {
		st.params = append(st.params, column{})
	}
	st.params[pos-1] = column{valp: valp, indp: indp, lenp: lenp, size: size, dtype: dtype}
	return nil
}

func (m *Mock) BindByName(stmt oci.Handle, _ string, valp, indp, lenp uintptr, size int, dtype uint16) error {
	st := m.stmts[stmt]
	st.params = append(st.params, column{valp: valp, indp: indp, lenp: lenp, size: size, dtype: dtype})
	return nil
}

func (m *Mock) DefineByPos(stmt oci.Handle, pos int, valp, indp, lenp uintptr, size int, dtype uint16) error {
	st := m.stmts[stmt]
	for len(st.columns) < pos {
		st.columns = append(st.columns, column{})
	}
	st.columns[pos-1] = column{valp: valp, indp: indp, lenp: lenp, size: size, dtype: dtype}
	return nil
}

func (m *Mock) SetPrefetchSize(stmt oci.Handle, n uint32) error {
	m.stmts[stmt].prefetch = n
	return nil
}

func (m *Mock) StmtExecute(_, stmt oci.Handle, iters uint32) error {
	st := m.stmts[stmt]
	st.cursor = 0
	st.deliver(iters)
	return nil
}

func (m *Mock) StmtFetch(stmt oci.Handle, n uint32) (int32, error) {
	st := m.stmts[stmt]
	truncated := st.deliver(n)
	if truncated {
		return oci.ErrTruncated, nil
	}
	if st.rowsFetchedLastBatch == 0 {
		return oci.ErrEndOfData, nil
	}
	return 0, nil
}

// deliver writes up to n rows into the defined column buffers starting at
// the statement's current cursor, returning true if this batch crossed the
// scripted truncation point.
func (st *stmtState) deliver(n uint32) (truncated bool) {
	remaining := len(st.rows) - st.cursor
	k := int(n)
	if k > remaining {
		k = remaining
	}
	for r := 0; r < k; r++ {
		row := st.rows[st.cursor+r]
		for c, col := range st.columns {
			if c >= len(row) {
				continue
			}
			writeCell(col, r, row[c])
		}
		if st.truncateAtRow >= 0 && st.cursor+r == st.truncateAtRow {
			truncated = true
			k = r + 1
			break
		}
	}
	st.cursor += k
	st.rowsFetchedLastBatch = uint32(k)
	return truncated
}

func writeCell(col column, row int, cell Cell) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(col.valp+uintptr(row*col.size))), col.size)
	n := copy(dst, cell.Bytes)
	for i := n; i < col.size; i++ {
		dst[i] = 0
	}
	indPtr := (*int16)(unsafe.Pointer(col.indp + uintptr(row*2)))
	*indPtr = cell.Indicator
	// Result columns use a 2-byte (ub2) return-length field, matching real
	// OCI's DefineByPos rlenp and internal/results's column-major layout.
	lenPtr := (*uint16)(unsafe.Pointer(col.lenp + uintptr(row*2)))
	*lenPtr = uint16(cell.Length)
}

func (m *Mock) AttrGet(handle oci.Handle, attr oci.Attr) (uint32, error) {
	st := m.stmts[handle]
	switch attr {
	case oci.AttrRowsFetched:
		return st.rowsFetchedLastBatch, nil
	case oci.AttrPrefetchRows:
		return st.prefetch, nil
	}
	return 0, nil
}

func (m *Mock) AttrSet(handle oci.Handle, attr oci.Attr, value uint32) error {
	st := m.stmts[handle]
	if attr == oci.AttrPrefetchRows {
		st.prefetch = value
	}
	return nil
}

// ParamBytes lets a test peek at the raw bytes a Statement wrote into its
// parameter area for a given 1-based position, to assert encode correctness.
func (m *Mock) ParamBytes(stmt oci.Handle, pos int) []byte {
	st := m.stmts[stmt]
	col := st.params[pos-1]
	return unsafe.Slice((*byte)(unsafe.Pointer(col.valp)), col.size)
}

var _ oci.Backend = (*Mock)(nil)
