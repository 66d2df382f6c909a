// Package meta resolves mapping directives for types and struct fields.
//
// A directive set controls how the objmap engine turns one value into
// tree nodes: name overrides, attribute-vs-element classification,
// wrapper elements, string conversion, post-build adapters, and field
// suppression. Directives come from two sources: `xmlsmith` struct tags
// and a programmatic Registry. Field-level directives take precedence;
// directives missing at the field level fall back to those of the
// field's declared type, independently per directive.
package meta

import (
	"reflect"

	"github.com/xmlsmith/go-xmlsmith/entity"
)

// ConvertFunc turns a mapped value into its string representation.
type ConvertFunc func(v any) (string, error)

// AdapterFunc is invoked on a freshly built node, in place.
type AdapterFunc func(e entity.Entity)

// Directives is the resolved directive set for one mapping target.
// The zero value means "no directives": empty EntityName and nil
// pointers/functions are treated as unset.
type Directives struct {
	// Ignore makes the mapping engine skip the target entirely.
	Ignore bool

	// EntityName overrides the generated node's name.
	EntityName string

	// Attr, when non-nil, renders the value as an attribute of the
	// enclosing element instead of a child element. An empty string
	// means "use the element name as the attribute key".
	Attr *string

	// Wrapper, when non-nil, introduces an intermediate composite
	// around the target's contribution. An empty string means "use
	// the element name".
	Wrapper *string

	// Converter replaces the default string conversion.
	Converter ConvertFunc

	// Adapter runs on the built node before mapNode returns.
	Adapter AdapterFunc
}

// merge overlays d on top of fallback, per directive.
func (d Directives) merge(fallback Directives) Directives {
	res := d
	if !res.Ignore {
		res.Ignore = fallback.Ignore
	}
	if res.EntityName == "" {
		res.EntityName = fallback.EntityName
	}
	if res.Attr == nil {
		res.Attr = fallback.Attr
	}
	if res.Wrapper == nil {
		res.Wrapper = fallback.Wrapper
	}
	if res.Converter == nil {
		res.Converter = fallback.Converter
	}
	if res.Adapter == nil {
		res.Adapter = fallback.Adapter
	}
	return res
}

// String returns a pointer to s, for filling Directives.Attr and
// Directives.Wrapper literals.
func String(s string) *string { return &s }

// Target is the unit of directive resolution: a type, or one exported
// field of a struct type.
type Target struct {
	// Type is the target type. For a field target it is the owning
	// struct type.
	Type reflect.Type

	// Field is set for field targets.
	Field *reflect.StructField
}

// TypeTarget returns the target for a whole type.
func TypeTarget(t reflect.Type) Target {
	return Target{Type: t}
}

// FieldTarget returns the target for one field of owner.
func FieldTarget(owner reflect.Type, field reflect.StructField) Target {
	return Target{Type: owner, Field: &field}
}
