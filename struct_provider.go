package oraclient

import (
	"fmt"
	"reflect"

	"github.com/foundation-rs/oraclient/codec"
	"github.com/foundation-rs/oraclient/provider"
	"github.com/foundation-rs/oraclient/typedesc"
)

// fieldNameTag lets a record type bind a field by placeholder name instead
// of position; absent, the field binds positionally in declaration order.
const fieldNameTag = "oracle_name"

// structField caches one exported field's resolved descriptor and binding,
// computed once by newStructFields and reused across every Members/
// ProjectValues/SQLDescriptors/GenResult call.
type structField struct {
	index      int
	descriptor typedesc.Descriptor
	identifier Identifier
}

func newStructFields(t reflect.Type) ([]structField, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("oraclient: StructProvider requires a struct type, got %s", t)
	}
	fields := make([]structField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		capacity := 0
		if tag, ok := sf.Tag.Lookup(fieldCapacityTag); ok {
			fmt.Sscanf(tag, "%d", &capacity)
		}
		desc, err := reflectDescriptorFor(sf.Type, capacity)
		if err != nil {
			return nil, fmt.Errorf("oraclient: field %s: %w", sf.Name, err)
		}
		id := Unnamed
		if name, ok := sf.Tag.Lookup(fieldNameTag); ok {
			id = Named(name)
		}
		fields = append(fields, structField{index: i, descriptor: desc, identifier: id})
	}
	return fields, nil
}

// StructProvider is the reflection-based record provider standing in for
// the derive-macro codegen spec.md §1/§4.2/§9 treats as external: register
// one per record type T (a struct with exported, primitive-kinded fields)
// and it implements both ParamsProvider[T] and ResultsProvider[T] by
// iterating exported fields in declaration order, matching the other
// adapter types in this file (Single, Pair) rather than generating code.
type StructProvider[T any] struct {
	fields []structField
}

// NewStructProvider resolves T's field descriptors once via reflection and
// returns a provider ready to bind/decode values of type T.
func NewStructProvider[T any]() (StructProvider[T], error) {
	var zero T
	fields, err := newStructFields(reflect.TypeOf(zero))
	if err != nil {
		return StructProvider[T]{}, err
	}
	return StructProvider[T]{fields: fields}, nil
}

func (p StructProvider[T]) Members() []Member {
	members := make([]Member, len(p.fields))
	for i, f := range p.fields {
		members[i] = provider.NewMember(f.descriptor, f.identifier)
	}
	return members
}

func (p StructProvider[T]) ProjectValues(v T, slots []ParamSlot) error {
	if len(slots) != len(p.fields) {
		return fmt.Errorf("oraclient: StructProvider expects %d slots, got %d", len(p.fields), len(slots))
	}
	rv := reflect.ValueOf(v)
	for i, f := range p.fields {
		fv := rv.Field(f.index)
		ind, length, err := codec.EncodeAny(fv.Interface(), slots[i].Value)
		if err != nil {
			return fmt.Errorf("oraclient: field %d: %w", i, err)
		}
		*slots[i].Indicator = ind
		*slots[i].Length = length
	}
	return nil
}

func (p StructProvider[T]) SQLDescriptors() []typedesc.Descriptor {
	descs := make([]typedesc.Descriptor, len(p.fields))
	for i, f := range p.fields {
		descs[i] = f.descriptor
	}
	return descs
}

func (p StructProvider[T]) GenResult(row []ResultValue) (T, error) {
	var zero T
	if len(row) != len(p.fields) {
		return zero, fmt.Errorf("oraclient: StructProvider expects %d columns, got %d", len(p.fields), len(row))
	}
	out := reflect.New(reflect.TypeOf(zero)).Elem()
	for i, f := range p.fields {
		fv := out.Field(f.index)
		var decoded any
		var err error
		if row[i].Null {
			decoded, err = codec.DecodeReflect(fv.Type(), nil, 0, -1)
		} else {
			decoded, err = codec.DecodeReflect(fv.Type(), row[i].Value, row[i].Length, 0)
		}
		if err != nil {
			return zero, fmt.Errorf("oraclient: field %d: %w", i, err)
		}
		fv.Set(reflect.ValueOf(decoded))
	}
	return out.Interface().(T), nil
}
