// Package typedesc describes the C-compatible shape of one column or
// parameter slot: a pair of (external OCI type code, in-buffer size in
// bytes). It mirrors original_source/oracle/src/types.rs, translated from
// Rust trait-based dispatch to Go generics-friendly functions since Go has
// no free-standing impls over external primitive types.
package typedesc

// External OCI type codes (must fit in a u16 on the wire). Values taken
// verbatim from original_source/oracle/src/types.rs's constants module.
// This library produces descriptors only for SQLT_CHR, SQLT_INT, SQLT_FLT,
// SQLT_RID and SQLT_DAT; the rest are kept for documentation of the full
// table spec.md §6 assumes.
const (
	SQLT_CHR       uint16 = 1
	SQLT_NUM       uint16 = 2
	SQLT_INT       uint16 = 3
	SQLT_FLT       uint16 = 4
	SQLT_STR       uint16 = 5
	SQLT_VNU       uint16 = 6
	SQLT_LNG       uint16 = 8
	SQLT_VCS       uint16 = 9
	SQLT_RID       uint16 = 11
	SQLT_DAT       uint16 = 12
	SQLT_BIN       uint16 = 23
	SQLT_AVC       uint16 = 97
	SQLT_CLOB      uint16 = 112
	SQLT_BLOB      uint16 = 113
	SQLT_TIMESTAMP uint16 = 187
	SQLT_BOL       uint16 = 252
)

// Descriptor is the immutable (external_type_code, size) pair from spec.md §3.
type Descriptor struct {
	Code uint16
	Size int
}

// Canonical scalar descriptors (spec.md §3's mapping table).
var (
	Int16   = Descriptor{Code: SQLT_INT, Size: 2}
	Int32   = Descriptor{Code: SQLT_INT, Size: 4}
	Int64   = Descriptor{Code: SQLT_INT, Size: 8}
	Uint16  = Descriptor{Code: SQLT_INT, Size: 2}
	Uint32  = Descriptor{Code: SQLT_INT, Size: 4}
	Uint64  = Descriptor{Code: SQLT_INT, Size: 8}
	Float64 = Descriptor{Code: SQLT_FLT, Size: 8}
	// Bool is encoded as a 16-bit integer per spec.md §3/§4.1.
	Bool = Descriptor{Code: SQLT_INT, Size: 2}
	// Date/DateTime share the uniform 7-byte encoding spec.md §4.1/§9 mandates.
	Date     = Descriptor{Code: SQLT_DAT, Size: 7}
	DateTime = Descriptor{Code: SQLT_DAT, Size: 7}
	// RowID backs the supplemented Oracle ROWID type (SPEC_FULL.md §3 domain stack).
	RowID = Descriptor{Code: SQLT_RID, Size: 16}
)

// DefaultStringCapacity is used when no caller-supplied capacity is given
// (spec.md §3: "Strings default to capacity 128").
const DefaultStringCapacity = 128

// DefaultNumberPrecision is Oracle's maximum NUMBER precision, used as the
// default capacity for the supplemented decimal Number type.
const DefaultNumberPrecision = 39

// String returns the descriptor for a variable-length string of the given
// capacity, sized capacity+2 bytes. The codec writes the characters from the
// start of the slot and records their byte length in the slot's separate
// length field; no length prefix is stored in the value bytes.
func String(capacity int) Descriptor {
	if capacity <= 0 {
		capacity = DefaultStringCapacity
	}
	return Descriptor{Code: SQLT_CHR, Size: capacity + 2}
}

// Number returns the descriptor for the supplemented shopspring/decimal
// backed Number type, stored as a fixed-capacity decimal string.
func Number(precision int) Descriptor {
	if precision <= 0 {
		precision = DefaultNumberPrecision
	}
	return Descriptor{Code: SQLT_CHR, Size: precision + 2}
}

// NChar returns the descriptor for a fixed-capacity NCHAR/NVARCHAR2 column,
// stored UTF-16LE (2 bytes/character, plus 2 bytes, sized like String). Oracle reports
// these over the same SQLT_CHR code with UCS2 charset form; this library
// only distinguishes them at the codec layer (codec.WideString).
func NChar(capacity int) Descriptor {
	if capacity <= 0 {
		capacity = DefaultStringCapacity
	}
	return Descriptor{Code: SQLT_CHR, Size: capacity*2 + 2}
}
