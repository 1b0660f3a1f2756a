package oraclient

import (
	"github.com/foundation-rs/oraclient/provider"
	"github.com/foundation-rs/oraclient/typedesc"
)

// ParamsProvider and ResultsProvider are spec.md §4.2's projection surface,
// re-exported from package provider so callers only need to import
// oraclient. See provider.ParamsProvider/provider.ResultsProvider for the
// contract documentation.
type (
	ParamsProvider[P any]  = provider.ParamsProvider[P]
	ResultsProvider[R any] = provider.ResultsProvider[R]
	Member                 = provider.Member
	Identifier             = provider.Identifier
	ParamSlot              = provider.ParamSlot
	ResultValue            = provider.ResultValue
)

// Unnamed and Named construct Identifiers (spec.md §3).
var Unnamed = provider.Unnamed

func Named(name string) Identifier { return provider.Named(name) }

// NewMember constructs a Member (spec.md §3).
func NewMember(d typedesc.Descriptor, id Identifier) Member {
	return provider.NewMember(d, id)
}
