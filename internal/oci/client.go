package oci

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/rs/zerolog/log"
)

// Raw OCI C ABI types, following the teacher's SQLHSTMT/SQLINTEGER style of
// naming every wire-level type explicitly instead of reusing Go's own int
// widths by accident.
type (
	ociHandle  uintptr
	ociSword   int32
	ociUb4     uint32
	ociUb2     uint16
	ociSb4     int32
)

const (
	ociSuccess        ociSword = 0
	ociSuccessWithInfo ociSword = 1
	ociNoData         ociSword = 100
	ociError          ociSword = -1
	ociInvalidHandle  ociSword = -2
)

const (
	ociHtypeError = ociUb4(2)
	ociHtypeSvcCtx = ociUb4(4)
	ociHtypeStmt  = ociUb4(4)

	ociAttrRowsFetched  = ociUb4(197)
	ociAttrPrefetchRows = ociUb4(11)

	ociDefaultMode = ociUb4(0)
)

var (
	lib      uintptr
	initOnce sync.Once
	initErr  error
)

var (
	ociStmtPrepare2 func(svchp, stmthpp uintptr, errhp ociHandle, stmt *byte, stmtLen ociUb4, key *byte, keyLen ociUb4, language, mode ociUb4) ociSword
	ociStmtRelease  func(stmthp, errhp ociHandle, key *byte, keyLen, mode ociUb4) ociSword
	ociBindByPos    func(stmtp uintptr, bindpp *uintptr, errhp ociHandle, position ociUb4, valuep uintptr, valueSz int64, dty ociUb2, indp uintptr, alenp uintptr, rcodep uintptr, maxarrLen ociUb4, curelep uintptr, mode ociUb4) ociSword
	ociBindByName   func(stmtp uintptr, bindpp *uintptr, errhp ociHandle, placeholder *byte, placehLen ociSb4, valuep uintptr, valueSz int64, dty ociUb2, indp uintptr, alenp uintptr, rcodep uintptr, maxarrLen ociUb4, curelep uintptr, mode ociUb4) ociSword
	ociDefineByPos  func(stmtp uintptr, defnpp *uintptr, errhp ociHandle, position ociUb4, valuep uintptr, valueSz int64, dty ociUb2, indp uintptr, rlenp uintptr, rcodep uintptr, mode ociUb4) ociSword
	ociAttrSet      func(trgthndlp uintptr, trghndltyp ociUb4, attributep uintptr, size ociUb4, attrtype ociUb4, errhp ociHandle) ociSword
	ociAttrGet      func(trgthndlp uintptr, trghndltyp ociUb4, attributep uintptr, sizep uintptr, attrtype ociUb4, errhp ociHandle) ociSword
	ociStmtExecute  func(svchp, stmtp uintptr, errhp ociHandle, iters, rowoff ociUb4, snapIn, snapOut uintptr, mode ociUb4) ociSword
	ociStmtFetch2   func(stmtp uintptr, errhp ociHandle, nrows ociUb4, orientation ociUb2, fetchOffset ociSb4, mode ociUb4) ociSword
	ociErrorGet     func(hndlp uintptr, recordno ociUb4, sqlstate *byte, errcodep *ociSb4, bufp *byte, bufsiz ociUb4, typ ociUb4) ociSword
)

// libraryPath returns the platform default location of the OCI shared
// library, overridable with ORACLIENT_LIBRARY_PATH, mirroring the teacher's
// GODBC_LIBRARY_PATH/getLibraryPath convention.
func libraryPath() string {
	if path := os.Getenv("ORACLIENT_LIBRARY_PATH"); path != "" {
		return path
	}
	switch runtime.GOOS {
	case "windows":
		return "oci.dll"
	case "darwin":
		return "libclntsh.dylib"
	default:
		return "libclntsh.so"
	}
}

func initLib() error {
	initOnce.Do(func() {
		path := libraryPath()
		lib, initErr = loadOCILibrary(path)
		if initErr != nil {
			initErr = fmt.Errorf("failed to load OCI library %q: %w (set ORACLIENT_LIBRARY_PATH to override)", path, initErr)
			return
		}

		purego.RegisterLibFunc(&ociStmtPrepare2, lib, "OCIStmtPrepare2")
		purego.RegisterLibFunc(&ociStmtRelease, lib, "OCIStmtRelease")
		purego.RegisterLibFunc(&ociBindByPos, lib, "OCIBindByPos")
		purego.RegisterLibFunc(&ociBindByName, lib, "OCIBindByName")
		purego.RegisterLibFunc(&ociDefineByPos, lib, "OCIDefineByPos")
		purego.RegisterLibFunc(&ociAttrSet, lib, "OCIAttrSet")
		purego.RegisterLibFunc(&ociAttrGet, lib, "OCIAttrGet")
		purego.RegisterLibFunc(&ociStmtExecute, lib, "OCIStmtExecute")
		purego.RegisterLibFunc(&ociStmtFetch2, lib, "OCIStmtFetch2")
		purego.RegisterLibFunc(&ociErrorGet, lib, "OCIErrorGet")

		log.Debug().Str("library", path).Msg("oci: library loaded")
	})
	return initErr
}

// LiveBackend is the purego-backed Backend talking to a real OCI shared
// library, the production counterpart to ocitest's in-memory fake.
type LiveBackend struct {
	Err Handle // shared OCIError handle this connection allocated
}

// NewLiveBackend initializes the OCI library (once per process) and
// returns a Backend bound to the given error handle.
func NewLiveBackend(errHandle Handle) (*LiveBackend, error) {
	if err := initLib(); err != nil {
		return nil, err
	}
	return &LiveBackend{Err: errHandle}, nil
}

func (b *LiveBackend) checkStatus(op string, ret ociSword) error {
	if ret == ociSuccess || ret == ociSuccessWithInfo {
		return nil
	}
	var sqlstate [16]byte
	var msg [1024]byte
	var code ociSb4
	ociErrorGet(uintptr(b.Err), 1, &sqlstate[0], &code, &msg[0], ociUb4(len(msg)), ociHtypeError)
	return &Error{Code: int32(code), Message: string(msg[:cstrlen(msg[:])]), Operation: op}
}

func cstrlen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}

func cbytes(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

func (b *LiveBackend) StmtPrepare(svc Handle, sql string) (Handle, error) {
	var stmthp uintptr
	ret := ociStmtPrepare2(uintptr(svc), uintptr(unsafe.Pointer(&stmthp)), b.Err, cbytes(sql), ociUb4(len(sql)), nil, 0, 1 /* OCI_NTV_SYNTAX */, ociDefaultMode)
	if err := b.checkStatus("prepare", ret); err != nil {
		return 0, err
	}
	return Handle(stmthp), nil
}

func (b *LiveBackend) StmtRelease(stmt Handle) error {
	ret := ociStmtRelease(uintptr(stmt), b.Err, nil, 0, ociDefaultMode)
	return b.checkStatus("stmt_release", ret)
}

func (b *LiveBackend) BindByPos(stmt Handle, pos int, valp, indp, lenp uintptr, size int, dtype uint16) error {
	var bindp uintptr
	ret := ociBindByPos(uintptr(stmt), &bindp, b.Err, ociUb4(pos), valp, int64(size), ociUb2(dtype), indp, lenp, 0, 0, 0, ociDefaultMode)
	return b.checkStatus("bind_by_pos", ret)
}

func (b *LiveBackend) BindByName(stmt Handle, name string, valp, indp, lenp uintptr, size int, dtype uint16) error {
	var bindp uintptr
	ret := ociBindByName(uintptr(stmt), &bindp, b.Err, cbytes(name), ociSb4(len(name)), valp, int64(size), ociUb2(dtype), indp, lenp, 0, 0, 0, ociDefaultMode)
	return b.checkStatus("bind_by_name", ret)
}

func (b *LiveBackend) DefineByPos(stmt Handle, pos int, valp, indp, lenp uintptr, size int, dtype uint16) error {
	var defnp uintptr
	ret := ociDefineByPos(uintptr(stmt), &defnp, b.Err, ociUb4(pos), valp, int64(size), ociUb2(dtype), indp, lenp, 0, ociDefaultMode)
	return b.checkStatus("define_by_pos", ret)
}

func (b *LiveBackend) SetPrefetchSize(stmt Handle, n uint32) error {
	v := ociUb4(n)
	ret := ociAttrSet(uintptr(stmt), ociHtypeStmt, uintptr(unsafe.Pointer(&v)), 4, ociAttrPrefetchRows, b.Err)
	return b.checkStatus("attr_set", ret)
}

func (b *LiveBackend) StmtExecute(svc, stmt Handle, iters uint32) error {
	ret := ociStmtExecute(uintptr(svc), uintptr(stmt), b.Err, ociUb4(iters), 0, 0, 0, ociDefaultMode)
	return b.checkStatus("execute", ret)
}

func (b *LiveBackend) StmtFetch(stmt Handle, n uint32) (int32, error) {
	ret := ociStmtFetch2(uintptr(stmt), b.Err, ociUb4(n), 2 /* OCI_FETCH_NEXT */, 0, ociDefaultMode)
	switch ret {
	case ociSuccess:
		return 0, nil
	case ociNoData:
		return ErrEndOfData, nil
	case ociSuccessWithInfo:
		// OCI reports truncation as a warning attached to OCI_SUCCESS_WITH_INFO;
		// the column-level indicator/length still tells the caller which
		// value was cut short, but at the fetch-call level this maps to
		// spec.md's "truncation" outcome.
		return ErrTruncated, nil
	default:
		var sqlstate [16]byte
		var msg [1024]byte
		var code ociSb4
		ociErrorGet(uintptr(b.Err), 1, &sqlstate[0], &code, &msg[0], ociUb4(len(msg)), ociHtypeError)
		return int32(code), &Error{Code: int32(code), Message: string(msg[:cstrlen(msg[:])]), Operation: "fetch"}
	}
}

func (b *LiveBackend) AttrGet(handle Handle, attr Attr) (uint32, error) {
	var v ociUb4
	var size ociUb4
	attrID := ociAttrRowsFetched
	if attr == AttrPrefetchRows {
		attrID = ociAttrPrefetchRows
	}
	ret := ociAttrGet(uintptr(handle), ociHtypeStmt, uintptr(unsafe.Pointer(&v)), uintptr(unsafe.Pointer(&size)), attrID, b.Err)
	if err := b.checkStatus("attr_get", ret); err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func (b *LiveBackend) AttrSet(handle Handle, attr Attr, value uint32) error {
	v := ociUb4(value)
	attrID := ociAttrRowsFetched
	if attr == AttrPrefetchRows {
		attrID = ociAttrPrefetchRows
	}
	ret := ociAttrSet(uintptr(handle), ociHtypeStmt, uintptr(unsafe.Pointer(&v)), 4, attrID, b.Err)
	return b.checkStatus("attr_set", ret)
}

var _ Backend = (*LiveBackend)(nil)
