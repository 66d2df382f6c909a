package meta

import "reflect"

type fieldKey struct {
	typ  reflect.Type
	name string
}

// Registry holds programmatically registered directives. It is the
// only way to attach Converter and Adapter directives, since functions
// cannot be expressed in struct tags. A nil *Registry is usable and
// empty.
//
// Registration is expected to happen before mapping begins; the
// registry has no internal locking.
type Registry struct {
	types  map[reflect.Type]Directives
	fields map[fieldKey]Directives
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types:  map[reflect.Type]Directives{},
		fields: map[fieldKey]Directives{},
	}
}

// Type registers type-level directives for t, replacing any previous
// registration. It returns the registry for chaining.
func (r *Registry) Type(t reflect.Type, d Directives) *Registry {
	r.types[t] = d
	return r
}

// Field registers directives for the named field of owner, replacing
// any previous registration. It returns the registry for chaining.
func (r *Registry) Field(owner reflect.Type, name string, d Directives) *Registry {
	r.fields[fieldKey{typ: owner, name: name}] = d
	return r
}

func (r *Registry) typeDirectives(t reflect.Type) (Directives, bool) {
	if r == nil {
		return Directives{}, false
	}
	d, ok := r.types[t]
	return d, ok
}

func (r *Registry) fieldDirectives(owner reflect.Type, name string) (Directives, bool) {
	if r == nil {
		return Directives{}, false
	}
	d, ok := r.fields[fieldKey{typ: owner, name: name}]
	return d, ok
}
