// Package params implements the parameter area from spec.md §4.4: a
// fixed-size scratch region co-allocated per prepared statement, laid out
// as [indicators | lengths | values], bound to OCI placeholders by position
// or name and reused across executions.
//
// Grounded on original_source/oracle/src/statement/params.rs's
// ParamsProcessor::new, translated from a Rust alloc/Layout/Drop block to a
// Go []byte backed by a runtime.Pinner (no cgo: buffers must stay pinned
// Go memory addressable from the purego-reached OCI calls, the teacher's
// convert.go/rows.go already do the equivalent raw pointer math for ODBC
// buffers).
package params

import (
	"runtime"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/foundation-rs/oraclient/internal/layout"
	"github.com/foundation-rs/oraclient/internal/oci"
	"github.com/foundation-rs/oraclient/provider"
)

// Area owns one statement's parameter area and its OCI bindings.
type Area[P any] struct {
	backend  oci.Backend
	stmt     oci.Handle
	provider provider.ParamsProvider[P]

	buf    []byte
	pinner runtime.Pinner
	slots  []provider.ParamSlot
}

// New allocates the parameter area for prov's members against stmt and
// binds each slot (spec.md §4.4 steps 1-7).
func New[P any](backend oci.Backend, stmt oci.Handle, prov provider.ParamsProvider[P]) (*Area[P], error) {
	members := prov.Members()
	n := len(members)

	valSize := 0
	for _, m := range members {
		valSize += m.Descriptor.Size
	}
	areaSize := layout.AlignTo(valSize, 128)
	indsSize := layout.AlignTo(2*n, 64)
	lensSize := layout.AlignTo(4*n, 64)
	total := layout.AlignTo(indsSize+lensSize+areaSize, 256)

	a := &Area[P]{backend: backend, stmt: stmt, provider: prov, buf: make([]byte, total)}
	if total > 0 {
		a.pinner.Pin(&a.buf[0])
	}

	indicators := a.buf[:indsSize]
	lengths := a.buf[indsSize : indsSize+lensSize]
	values := a.buf[indsSize+lensSize:]

	a.slots = make([]provider.ParamSlot, n)
	offset := 0
	for i, m := range members {
		size := m.Descriptor.Size
		valSlice := values[offset : offset+size]
		indp := (*int16)(unsafe.Pointer(&indicators[i*2]))
		lenp := (*uint32)(unsafe.Pointer(&lengths[i*4]))

		a.slots[i] = provider.ParamSlot{Value: valSlice, Indicator: indp, Length: lenp}

		valptr := uintptr(unsafe.Pointer(&valSlice[0]))
		indptr := uintptr(unsafe.Pointer(indp))
		lenptr := uintptr(unsafe.Pointer(lenp))

		var err error
		if name, named := m.Identifier.IsNamed(); named {
			err = backend.BindByName(stmt, name, valptr, indptr, lenptr, size, m.Descriptor.Code)
		} else {
			err = backend.BindByPos(stmt, i+1, valptr, indptr, lenptr, size, m.Descriptor.Code)
		}
		if err != nil {
			a.pinner.Unpin()
			return nil, errors.Wrapf(err, "params: bind member %d", i)
		}
		offset += size
	}

	return a, nil
}

// Project writes p into the parameter area through the provider, ready for
// the next execute call.
func (a *Area[P]) Project(p P) error {
	return a.provider.ProjectValues(p, a.slots)
}

// Close releases the pinned buffer. Idempotent.
func (a *Area[P]) Close() {
	a.pinner.Unpin()
}
