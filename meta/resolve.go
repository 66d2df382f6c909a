package meta

import "reflect"

// Resolver performs directive lookup with the fallback chain: field
// directives first, then directives of the field's declared type. At
// each level, registry entries overlay struct tags.
type Resolver struct {
	reg *Registry
}

// NewResolver returns a resolver backed by reg, which may be nil.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve returns the merged directives for tgt.
func (r *Resolver) Resolve(tgt Target) (Directives, error) {
	if tgt.Field == nil {
		return r.typeLevel(tgt.Type)
	}

	fieldLevel, _, err := tagDirectives(tgt.Field.Tag)
	if err != nil {
		return Directives{}, err
	}
	if reg, ok := r.reg.fieldDirectives(tgt.Type, tgt.Field.Name); ok {
		fieldLevel = reg.merge(fieldLevel)
	}

	typeLevel, err := r.typeLevel(derefType(tgt.Field.Type))
	if err != nil {
		return Directives{}, err
	}
	return fieldLevel.merge(typeLevel), nil
}

func (r *Resolver) typeLevel(t reflect.Type) (Directives, error) {
	tagged, err := typeTagDirectives(t)
	if err != nil {
		return Directives{}, err
	}
	if reg, ok := r.reg.typeDirectives(t); ok {
		return reg.merge(tagged), nil
	}
	return tagged, nil
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
