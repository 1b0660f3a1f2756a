package oraclient

import (
	"fmt"
	"reflect"

	"github.com/foundation-rs/oraclient/codec"
	"github.com/foundation-rs/oraclient/provider"
	"github.com/foundation-rs/oraclient/typedesc"
)

// Unit is both ParamsProvider[Unit] and ResultsProvider[Unit] for the
// zero-column case, adapted from original_source/oracle/src/singulars.rs's
// `impl ParamsProvider for ()`.
type Unit struct{}

func (Unit) Members() []Member                              { return nil }
func (Unit) ProjectValues(Unit, []ParamSlot) error           { return nil }
func (Unit) SQLDescriptors() []typedesc.Descriptor           { return nil }
func (Unit) GenResult(row []ResultValue) (Unit, error)       { return Unit{}, nil }

// Single is the Go-generics analogue of original_source/oracle/src/
// singulars.rs's blanket `impl<T> ParamsProvider for T` / ResultsProvider
// impl for every primitive: since Go has no free-standing impls over
// external type parameters, Single[T] is an explicit adapter type backing
// one unnamed column of logical type T. Capacity only matters for
// string-shaped T (string, codec.Number, codec.WideString); 0 uses the
// type's default.
type Single[T any] struct {
	Capacity int
}

func (s Single[T]) Members() []Member {
	d, err := codec.DescriptorFor[T](s.Capacity)
	if err != nil {
		panic(err) // Members() is called once at Prepare time; a bad T is a programmer error.
	}
	return []Member{provider.NewMember(d, Unnamed)}
}

func (s Single[T]) ProjectValues(v T, slots []ParamSlot) error {
	if len(slots) != 1 {
		return fmt.Errorf("oraclient: Single expects 1 slot, got %d", len(slots))
	}
	ind, length, err := codec.Encode[T](v, slots[0].Value)
	if err != nil {
		return err
	}
	*slots[0].Indicator = ind
	*slots[0].Length = length
	return nil
}

func (s Single[T]) SQLDescriptors() []typedesc.Descriptor {
	d, err := codec.DescriptorFor[T](s.Capacity)
	if err != nil {
		panic(err)
	}
	return []typedesc.Descriptor{d}
}

func (s Single[T]) GenResult(row []ResultValue) (T, error) {
	var zero T
	if len(row) != 1 {
		return zero, fmt.Errorf("oraclient: Single expects 1 column, got %d", len(row))
	}
	return decodeResultValue[T](row[0])
}

func decodeResultValue[T any](rv ResultValue) (T, error) {
	if rv.Null {
		return codec.Decode[T](nil, 0, -1)
	}
	return codec.Decode[T](rv.Value, rv.Length, 0)
}

// Pair is the Go-generics analogue of original_source/oracle/src/
// singulars.rs's `impl<T,V> ParamsProvider for (T,V)` pair-tuple impl: Go
// has no tuple type, so Pair is both the parameter/result value type and
// its own provider.
type Pair[A, B any] struct {
	A A
	B B
}

// PairProvider adapts Pair[A,B] to ParamsProvider/ResultsProvider.
type PairProvider[A, B any] struct {
	ACapacity, BCapacity int
}

func (p PairProvider[A, B]) Members() []Member {
	da, err := codec.DescriptorFor[A](p.ACapacity)
	if err != nil {
		panic(err)
	}
	db, err := codec.DescriptorFor[B](p.BCapacity)
	if err != nil {
		panic(err)
	}
	return []Member{
		provider.NewMember(da, Unnamed),
		provider.NewMember(db, Unnamed),
	}
}

func (p PairProvider[A, B]) ProjectValues(v Pair[A, B], slots []ParamSlot) error {
	if len(slots) != 2 {
		return fmt.Errorf("oraclient: Pair expects 2 slots, got %d", len(slots))
	}
	ind, length, err := codec.Encode[A](v.A, slots[0].Value)
	if err != nil {
		return err
	}
	*slots[0].Indicator = ind
	*slots[0].Length = length

	ind, length, err = codec.Encode[B](v.B, slots[1].Value)
	if err != nil {
		return err
	}
	*slots[1].Indicator = ind
	*slots[1].Length = length
	return nil
}

func (p PairProvider[A, B]) SQLDescriptors() []typedesc.Descriptor {
	da, err := codec.DescriptorFor[A](p.ACapacity)
	if err != nil {
		panic(err)
	}
	db, err := codec.DescriptorFor[B](p.BCapacity)
	if err != nil {
		panic(err)
	}
	return []typedesc.Descriptor{da, db}
}

func (p PairProvider[A, B]) GenResult(row []ResultValue) (Pair[A, B], error) {
	var zero Pair[A, B]
	if len(row) != 2 {
		return zero, fmt.Errorf("oraclient: Pair expects 2 columns, got %d", len(row))
	}
	a, err := decodeResultValue[A](row[0])
	if err != nil {
		return zero, err
	}
	b, err := decodeResultValue[B](row[1])
	if err != nil {
		return zero, err
	}
	return Pair[A, B]{A: a, B: b}, nil
}

// fieldCapacityTag is the struct tag a record type may use to size its
// string-shaped fields, standing in for the derive-macro machinery
// spec.md §1 treats as external ("we specify only what those
// implementations must do, not how code generation produces them").
const fieldCapacityTag = "oracle_capacity"

// reflectDescriptorFor is the reflection-based fallback used by
// StructProvider for a struct field's Go type, since a struct's field
// types are only known at runtime through reflect.Type here.
func reflectDescriptorFor(t reflect.Type, capacity int) (typedesc.Descriptor, error) {
	switch t.Kind() {
	case reflect.Int16:
		return typedesc.Int16, nil
	case reflect.Int32:
		return typedesc.Int32, nil
	case reflect.Int64:
		return typedesc.Int64, nil
	case reflect.Uint16:
		return typedesc.Uint16, nil
	case reflect.Uint32:
		return typedesc.Uint32, nil
	case reflect.Uint64:
		return typedesc.Uint64, nil
	case reflect.Float64:
		return typedesc.Float64, nil
	case reflect.Bool:
		return typedesc.Bool, nil
	case reflect.String:
		return typedesc.String(capacity), nil
	default:
		return typedesc.Descriptor{}, fmt.Errorf("oraclient: unsupported struct field type %s", t)
	}
}
