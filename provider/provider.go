// Package provider holds the projection surface spec.md §4.2 specifies:
// the ParamsProvider/ResultsProvider contracts and the small value types
// they're built from (Member, Identifier). It is a separate package (not
// internal) so both the root oraclient package and the internal parameter/
// result area allocators can depend on it without a cycle; oraclient
// re-exports these names as type aliases for callers.
package provider

import "github.com/foundation-rs/oraclient/typedesc"

// Identifier selects how a Member binds to its placeholder: by 1-based
// position, or by name. A single statement's parameter list must use a
// consistent style (spec.md §3).
type Identifier struct {
	name   string
	named  bool
}

// Unnamed is the zero Identifier: bind by 1-based position.
var Unnamed = Identifier{}

// Named returns an Identifier that binds by placeholder name.
func Named(name string) Identifier {
	return Identifier{name: name, named: true}
}

// IsNamed reports whether this Identifier binds by name, and the name if so.
func (id Identifier) IsNamed() (string, bool) {
	return id.name, id.named
}

// Member is one column of a compound parameter or result type: its
// type descriptor paired with how it binds (spec.md §3).
type Member struct {
	Descriptor typedesc.Descriptor
	Identifier Identifier
}

// NewMember constructs a Member.
func NewMember(d typedesc.Descriptor, id Identifier) Member {
	return Member{Descriptor: d, Identifier: id}
}

// ParamSlot is the runtime (value_ptr, indicator_ptr, length_ptr, slot_size)
// record a ParamsProvider projects a parameter value into (spec.md §3's
// Parameter slot). The value slice and the two pointers alias the statement's owned
// parameter area for the duration of one execute call.
type ParamSlot struct {
	Value     []byte
	Indicator *int16
	Length    *uint32
}

// ParamsProvider emits column descriptors for a SQL statement's placeholders
// and writes a P value into the pre-existing parameter slots (spec.md §4.2).
type ParamsProvider[P any] interface {
	// Members returns the ordered placeholder list in SQL declaration order.
	Members() []Member
	// ProjectValues writes p into slots, whose length is guaranteed to equal
	// len(Members()).
	ProjectValues(p P, slots []ParamSlot) error
}

// ResultValue is the sum type a row iterator decodes one column into before
// handing it to a ResultsProvider (spec.md §3's Result value / §4.6).
type ResultValue struct {
	Null   bool
	Value  []byte
	Length uint32
}

// ResultsProvider emits column descriptors for a SQL statement's select list
// and decodes one row's ResultValue slice into an R value (spec.md §4.2).
type ResultsProvider[R any] interface {
	// SQLDescriptors returns the ordered column descriptor list.
	SQLDescriptors() []typedesc.Descriptor
	// GenResult decodes one fetched row. Called exactly once per row.
	GenResult(row []ResultValue) (R, error)
}
