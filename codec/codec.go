// Package codec implements the value codec from spec.md §4.1: a pair of
// total functions per logical type translating between raw buffer
// bytes+length+null-indicator and the library's logical Go values.
//
// Grounded on original_source/oracle/src/values.rs's convert_sql_and_primitive!
// macro, translated from Rust trait impls to Go generic dispatch functions
// (Go has no free-standing impls over external primitive types, so dispatch
// happens via a type switch on `any(v)` instead of a trait method set).
package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"

	"github.com/foundation-rs/oraclient/typedesc"
)

// wideEncoding is the UTF-16LE transcoder backing WideString, matching the
// byte order Oracle's OCI uses for NCHAR/NVARCHAR2 columns on little-endian
// platforms (spec.md §3 domain stack: golang.org/x/text/encoding/unicode).
var wideEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DescriptorFor returns the typedesc.Descriptor for T, mirroring
// original_source/oracle/src/types.rs's TypeDescriptorProducer trait as a
// generic dispatch function instead of a per-type trait impl. capacity is
// only meaningful for string-shaped logical types (string, Number,
// WideString); 0 means
// "use the type's default".
func DescriptorFor[T any](capacity int) (typedesc.Descriptor, error) {
	var zero T
	switch any(zero).(type) {
	case int16:
		return typedesc.Int16, nil
	case int32:
		return typedesc.Int32, nil
	case int64:
		return typedesc.Int64, nil
	case uint16:
		return typedesc.Uint16, nil
	case uint32:
		return typedesc.Uint32, nil
	case uint64:
		return typedesc.Uint64, nil
	case float64:
		return typedesc.Float64, nil
	case bool:
		return typedesc.Bool, nil
	case time.Time:
		return typedesc.DateTime, nil
	case Date:
		return typedesc.Date, nil
	case string:
		return typedesc.String(capacity), nil
	case Number:
		return typedesc.Number(capacity), nil
	case RowID:
		return typedesc.RowID, nil
	case WideString:
		return typedesc.NChar(capacity), nil
	default:
		return typedesc.Descriptor{}, fmt.Errorf("codec: no type descriptor for %T", zero)
	}
}

// Date is a calendar date with no time-of-day, distinct from DateTime so the
// 7-byte decode can zero the clock per spec.md §4.1 ("when the decode
// function is used for a pure date, the hour/minute/second offsets are
// ignored and the result defaults the clock to midnight").
type Date time.Time

// Number is the supplemented exact-precision decimal logical type
// (SPEC_FULL.md §3), backed by shopspring/decimal and encoded as a decimal
// string within a fixed-capacity SQLT_CHR slot.
type Number = decimal.Decimal

// RowID is the supplemented Oracle ROWID logical type (SPEC_FULL.md §3),
// adapted from the teacher's convert.go GUID machinery.
type RowID = uuid.UUID

// WideString is the supplemented NCHAR/NVARCHAR2 logical type (SPEC_FULL.md
// §3), encoded UTF-16LE instead of the single-byte encoding plain string
// uses.
type WideString string

// indicatorNull / indicatorPresent are the two indicator values a codec
// function ever writes; a negative indicator of any magnitude means NULL.
const (
	indicatorNull    int16 = -1
	indicatorPresent int16 = 0
)

// Encode writes v's raw bytes into value (len(value) must equal the slot
// size from the matching typedesc.Descriptor) and returns the indicator and
// actual byte length to record in the parameter slot's length field.
func Encode[T any](v T, value []byte) (indicator int16, length uint32, err error) {
	return EncodeAny(v, value)
}

// EncodeAny is Encode's reflection-friendly counterpart, used by the
// struct-field record provider where the field's static type isn't known
// at the generic-instantiation call site.
func EncodeAny(v any, value []byte) (indicator int16, length uint32, err error) {
	switch x := v.(type) {
	case int16:
		binary.LittleEndian.PutUint16(value, uint16(x))
		return indicatorPresent, 2, nil
	case int32:
		binary.LittleEndian.PutUint32(value, uint32(x))
		return indicatorPresent, 4, nil
	case int64:
		binary.LittleEndian.PutUint64(value, uint64(x))
		return indicatorPresent, 8, nil
	case uint16:
		binary.LittleEndian.PutUint16(value, x)
		return indicatorPresent, 2, nil
	case uint32:
		binary.LittleEndian.PutUint32(value, x)
		return indicatorPresent, 4, nil
	case uint64:
		binary.LittleEndian.PutUint64(value, x)
		return indicatorPresent, 8, nil
	case float64:
		binary.LittleEndian.PutUint64(value, math.Float64bits(x))
		return indicatorPresent, 8, nil
	case bool:
		return encodeBool(x, value), 2, nil
	case string:
		return encodeString(x, value)
	case time.Time:
		encodeDateTime(x, value)
		return indicatorPresent, 7, nil
	case Date:
		encodeDateTime(time.Time(x), value)
		return indicatorPresent, 7, nil
	case Number:
		return encodeString(x.String(), value)
	case RowID:
		copy(value, x[:])
		return indicatorPresent, uint32(len(x)), nil
	case WideString:
		return encodeWideString(string(x), value)
	default:
		return 0, 0, fmt.Errorf("codec: unsupported encode type %T", v)
	}
}

// Decode reads a slot's raw bytes+length+indicator back into a logical Go
// value of type T. NULL (indicator < 0) produces the type's default value
// (0 / "" / false / current local time), never an error: only the pointer
// (optional) variants in this package distinguish NULL from a present
// zero-like value.
func Decode[T any](value []byte, length uint32, indicator int16) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int16:
		return any(decodeInt16(value, indicator)).(T), nil
	case int32:
		return any(decodeInt32(value, indicator)).(T), nil
	case int64:
		return any(decodeInt64(value, indicator)).(T), nil
	case uint16:
		return any(decodeUint16(value, indicator)).(T), nil
	case uint32:
		return any(decodeUint32(value, indicator)).(T), nil
	case uint64:
		return any(decodeUint64(value, indicator)).(T), nil
	case float64:
		return any(decodeFloat64(value, indicator)).(T), nil
	case bool:
		return any(decodeBool(value, indicator)).(T), nil
	case string:
		return any(decodeString(value, length, indicator)).(T), nil
	case time.Time:
		return any(decodeDateTime(value, indicator)).(T), nil
	case Date:
		return any(Date(decodeDate(value, indicator))).(T), nil
	case Number:
		s := decodeString(value, length, indicator)
		if s == "" {
			return any(decimal.Zero).(T), nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return zero, fmt.Errorf("codec: decode Number: %w", err)
		}
		return any(d).(T), nil
	case RowID:
		if indicator < 0 {
			return any(uuid.Nil).(T), nil
		}
		id, err := uuid.FromBytes(value[:16])
		if err != nil {
			return zero, fmt.Errorf("codec: decode RowID: %w", err)
		}
		return any(id).(T), nil
	case WideString:
		s, err := decodeWideString(value, length, indicator)
		if err != nil {
			return zero, fmt.Errorf("codec: decode WideString: %w", err)
		}
		return any(WideString(s)).(T), nil
	default:
		return zero, fmt.Errorf("codec: unsupported decode type %T", zero)
	}
}

// DecodeReflect is Decode's counterpart for the reflection-driven struct
// record provider, which only has a runtime reflect.Type for each field and
// no compile-time type parameter to instantiate Decode[T] with. It supports
// the same primitive kinds reflectDescriptorFor (package oraclient) assigns
// descriptors for.
func DecodeReflect(t reflect.Type, value []byte, length uint32, indicator int16) (any, error) {
	switch t.Kind() {
	case reflect.Int16:
		return decodeInt16(value, indicator), nil
	case reflect.Int32:
		return decodeInt32(value, indicator), nil
	case reflect.Int64:
		return decodeInt64(value, indicator), nil
	case reflect.Uint16:
		return decodeUint16(value, indicator), nil
	case reflect.Uint32:
		return decodeUint32(value, indicator), nil
	case reflect.Uint64:
		return decodeUint64(value, indicator), nil
	case reflect.Float64:
		return decodeFloat64(value, indicator), nil
	case reflect.Bool:
		return decodeBool(value, indicator), nil
	case reflect.String:
		return decodeString(value, length, indicator), nil
	default:
		return nil, fmt.Errorf("codec: unsupported reflect kind %s", t.Kind())
	}
}

// DecodeOptionalString distinguishes NULL from "" on the read side by
// inspecting the indicator directly instead of decoding first, per
// spec.md §9's note that "the optional will never observe a Some(\"\")".
func DecodeOptionalString(value []byte, length uint32, indicator int16) *string {
	if indicator < 0 {
		return nil
	}
	s := decodeString(value, length, indicator)
	return &s
}

// DecodeOptionalDateTime returns nil on NULL, a decoded timestamp otherwise.
func DecodeOptionalDateTime(value []byte, indicator int16) *time.Time {
	if indicator < 0 {
		return nil
	}
	t := decodeDateTime(value, indicatorPresent)
	return &t
}

func encodeBool(b bool, value []byte) int16 {
	v := uint16(0)
	if b {
		v = 1
	}
	binary.LittleEndian.PutUint16(value, v)
	return indicatorPresent
}

func decodeBool(value []byte, indicator int16) bool {
	if indicator < 0 {
		return false
	}
	// spec.md §4.1/§9: non-zero -> true. Do not invert this; the original
	// Rust source's values.rs decodes the opposite polarity, which this
	// library deliberately does not replicate.
	return binary.LittleEndian.Uint16(value) != 0
}

// encodeString copies s's bytes into value up to its capacity, and marks an
// empty string as NULL since Oracle represents empty strings as NULL
// (spec.md §4.1).
func encodeString(s string, value []byte) (int16, uint32, error) {
	if s == "" {
		return indicatorNull, 0, nil
	}
	n := copy(value, s)
	return indicatorPresent, uint32(n), nil
}

func decodeString(value []byte, length uint32, indicator int16) string {
	if indicator < 0 {
		return ""
	}
	if int(length) > len(value) {
		length = uint32(len(value))
	}
	return string(value[:length])
}

// encodeWideString transcodes s to UTF-16LE before copying into value,
// mirroring encodeString's empty-string-is-NULL convention.
func encodeWideString(s string, value []byte) (int16, uint32, error) {
	if s == "" {
		return indicatorNull, 0, nil
	}
	b, err := wideEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return 0, 0, fmt.Errorf("codec: encode WideString: %w", err)
	}
	n := copy(value, b)
	return indicatorPresent, uint32(n), nil
}

func decodeWideString(value []byte, length uint32, indicator int16) (string, error) {
	if indicator < 0 {
		return "", nil
	}
	if int(length) > len(value) {
		length = uint32(len(value))
	}
	b, err := wideEncoding.NewDecoder().Bytes(value[:length])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeInt16(value []byte, indicator int16) int16 {
	if indicator < 0 {
		return 0
	}
	return int16(binary.LittleEndian.Uint16(value))
}

func decodeInt32(value []byte, indicator int16) int32 {
	if indicator < 0 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(value))
}

func decodeInt64(value []byte, indicator int16) int64 {
	if indicator < 0 {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(value))
}

func decodeUint16(value []byte, indicator int16) uint16 {
	if indicator < 0 {
		return 0
	}
	return binary.LittleEndian.Uint16(value)
}

func decodeUint32(value []byte, indicator int16) uint32 {
	if indicator < 0 {
		return 0
	}
	return binary.LittleEndian.Uint32(value)
}

func decodeUint64(value []byte, indicator int16) uint64 {
	if indicator < 0 {
		return 0
	}
	return binary.LittleEndian.Uint64(value)
}

func decodeFloat64(value []byte, indicator int16) float64 {
	if indicator < 0 {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(value))
}

// encodeDateTime writes the uniform 7-byte layout spec.md §4.1/§9 mandates
// for both Date and DateTime: [century+100, year_of_century+100, month,
// day, hour+1, minute+1, second+1].
func encodeDateTime(t time.Time, value []byte) {
	year := t.Year()
	century := year / 100
	yearOfCentury := year % 100
	value[0] = byte(century + 100)
	value[1] = byte(yearOfCentury + 100)
	value[2] = byte(t.Month())
	value[3] = byte(t.Day())
	value[4] = byte(t.Hour() + 1)
	value[5] = byte(t.Minute() + 1)
	value[6] = byte(t.Second() + 1)
}

func decodeDateTime(value []byte, indicator int16) time.Time {
	if indicator < 0 {
		return time.Now().Local()
	}
	century := int(value[0]) - 100
	yearOfCentury := int(value[1]) - 100
	year := century*100 + yearOfCentury
	month := time.Month(value[2])
	day := int(value[3])
	hour := int(value[4]) - 1
	minute := int(value[5]) - 1
	second := int(value[6]) - 1
	return time.Date(year, month, day, hour, minute, second, 0, time.Local)
}

func decodeDate(value []byte, indicator int16) time.Time {
	if indicator < 0 {
		return time.Now().Local()
	}
	century := int(value[0]) - 100
	yearOfCentury := int(value[1]) - 100
	year := century*100 + yearOfCentury
	month := time.Month(value[2])
	day := int(value[3])
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
