package objmap

import (
	"fmt"
	"reflect"
	"sort"
	"unicode"

	"github.com/xmlsmith/go-xmlsmith/entity"
	"github.com/xmlsmith/go-xmlsmith/meta"
)

// Map converts a Go value to an entity tree. The value's struct tags
// and the registry supplied via WithRegistry steer the conversion; see
// the package documentation for the directive set.
func Map(v any, opts ...Option) (entity.Entity, error) {
	cfg := newConfig(opts)
	if v == nil {
		return nil, &MapError{Message: "cannot map nil value"}
	}
	m := &mapper{resolver: meta.NewResolver(cfg.registry)}

	val := reflect.ValueOf(v)
	concrete := unwrap(val)
	if !concrete.IsValid() {
		return nil, &MapError{Message: "cannot map nil value"}
	}

	node, err := m.mapNode(concrete, nil, meta.TypeTarget(concrete.Type()), cfg.rootName, false, "")
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, &MapError{Message: "value produced no node (ignored, or a root collection without a wrapper)"}
	}
	return node, nil
}

type mapper struct {
	resolver *meta.Resolver
}

// mapNode maps one value. It returns the node it produced, or the
// effective parent when the branch produced none (ignored value,
// attribute branch, collection branch). listItem suppresses wrapper
// creation: the wrapper belongs to the collection as a whole, not to
// each element.
func (m *mapper) mapNode(val reflect.Value, parent *entity.Composite, tgt meta.Target, nameHint string, listItem bool, fieldPath string) (entity.Entity, error) {
	d, err := m.resolver.Resolve(tgt)
	if err != nil {
		return nil, &MapError{FieldPath: fieldPath, Message: "resolving directives", Err: err}
	}
	if d.Ignore {
		return parent, nil
	}

	val = unwrap(val)

	elementName := nameHint
	if elementName == "" {
		elementName = declaredName(tgt)
	}

	effParent := parent
	if d.Wrapper != nil && !listItem {
		wrapperName := *d.Wrapper
		if wrapperName == "" {
			wrapperName = elementName
		}
		wrapper, err := entity.NewComposite(wrapperName)
		if err != nil {
			return nil, &MapError{FieldPath: fieldPath, Message: "wrapper name", Err: err}
		}
		if parent != nil {
			parent.AddChild(wrapper)
		}
		effParent = wrapper
	}

	converter := d.Converter
	if converter == nil {
		converter = meta.Default
	}
	stringRepr, err := converter(val.Interface())
	if err != nil {
		return nil, &MapError{FieldPath: fieldPath, Message: "converting value", Err: err}
	}

	if d.Attr != nil {
		key := *d.Attr
		if key == "" {
			key = elementName
		}
		if effParent == nil {
			return nil, &MapError{FieldPath: fieldPath, Message: "attribute directive requires an enclosing element"}
		}
		if _, _, err := effParent.PutAttribute(key, stringRepr); err != nil {
			return nil, &MapError{FieldPath: fieldPath, Message: "attribute key", Err: err}
		}
		return effParent, nil
	}

	entityName := d.EntityName
	if entityName == "" {
		entityName = elementName
	}
	if entityName == "" {
		return nil, &MapError{FieldPath: fieldPath, Message: "cannot derive an element name; use RootName or a name directive"}
	}

	var produced entity.Entity
	switch {
	case d.Converter != nil || isScalar(val):
		// an explicit converter forces text rendering regardless of
		// the value's kind
		tn, err := entity.NewText(entityName)
		if err != nil {
			return nil, &MapError{FieldPath: fieldPath, Message: "element name", Err: err}
		}
		tn.SetText(stringRepr)
		produced = tn

	case val.Kind() == reflect.Slice || val.Kind() == reflect.Array:
		for i := 0; i < val.Len(); i++ {
			elem := val.Index(i)
			if isNil(elem) {
				continue
			}
			elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
			if _, err := m.mapNode(elem, effParent, tgt, nameHint, true, elemPath); err != nil {
				return nil, err
			}
		}

	case val.Kind() == reflect.Map:
		comp, err := m.mapMap(val, entityName, fieldPath)
		if err != nil {
			return nil, err
		}
		produced = comp

	case val.Kind() == reflect.Struct:
		comp, err := m.mapStruct(val, entityName, fieldPath)
		if err != nil {
			return nil, err
		}
		produced = comp

	default:
		return nil, &MapError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported type %s", val.Type())}
	}

	if produced != nil && effParent != nil {
		effParent.AddChild(produced)
	}
	if d.Adapter != nil && produced != nil {
		d.Adapter(produced)
	}
	if produced != nil {
		return produced, nil
	}
	return effParent, nil
}

func (m *mapper) mapStruct(val reflect.Value, entityName, fieldPath string) (*entity.Composite, error) {
	comp, err := entity.NewComposite(entityName)
	if err != nil {
		return nil, &MapError{FieldPath: fieldPath, Message: "element name", Err: err}
	}
	for _, ref := range structFields(val.Type()) {
		fv := val.FieldByIndex(ref.index)
		if isNil(fv) {
			continue
		}
		childPath := ref.field.Name
		if fieldPath != "" {
			childPath = fieldPath + "." + ref.field.Name
		}
		tgt := meta.FieldTarget(ref.owner, ref.field)
		if _, err := m.mapNode(fv, comp, tgt, "", false, childPath); err != nil {
			return nil, err
		}
	}
	return comp, nil
}

// mapMap converts a string-keyed map into a composite with one child
// per key, in sorted key order.
func (m *mapper) mapMap(val reflect.Value, entityName, fieldPath string) (*entity.Composite, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MapError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	comp, err := entity.NewComposite(entityName)
	if err != nil {
		return nil, &MapError{FieldPath: fieldPath, Message: "element name", Err: err}
	}

	keys := make([]string, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	sort.Strings(keys)

	for _, key := range keys {
		mv := val.MapIndex(reflect.ValueOf(key).Convert(val.Type().Key()))
		if isNil(mv) {
			continue
		}
		childPath := key
		if fieldPath != "" {
			childPath = fieldPath + "." + key
		}
		concrete := unwrap(mv)
		if !concrete.IsValid() {
			continue
		}
		tgt := meta.TypeTarget(concrete.Type())
		if _, err := m.mapNode(concrete, comp, tgt, key, false, childPath); err != nil {
			return nil, err
		}
	}
	return comp, nil
}

type fieldRef struct {
	owner reflect.Type
	field reflect.StructField
	index []int
}

// structFields enumerates the mappable fields of t in declaration
// order, flattening untagged embedded structs and skipping type-level
// tag markers and unexported fields.
func structFields(t reflect.Type) []fieldRef {
	var res []fieldRef
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if meta.IsMarkerField(f) {
				continue
			}
			if f.Type.Kind() == reflect.Struct {
				for _, ref := range structFields(f.Type) {
					idx := make([]int, 0, len(f.Index)+len(ref.index))
					idx = append(idx, f.Index...)
					idx = append(idx, ref.index...)
					ref.index = idx
					res = append(res, ref)
				}
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		res = append(res, fieldRef{owner: t, field: f, index: f.Index})
	}
	return res
}

// declaredName is the target's own name: the field name for field
// targets, the type's simple name otherwise, both with the first rune
// lowered to follow XML element naming convention.
func declaredName(tgt meta.Target) string {
	if tgt.Field != nil {
		return lowerFirst(tgt.Field.Name)
	}
	return lowerFirst(tgt.Type.Name())
}

// lowerFirst converts an exported Go name to lowerCamel: "Name" to
// "name", "ID" to "id", "HTMLBody" to "htmlBody".
func lowerFirst(s string) string {
	runes := []rune(s)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	if upper == 0 {
		return s
	}
	if upper > 1 && upper < len(runes) {
		// keep the last upper rune: it starts the next word
		upper--
	}
	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func unwrap(val reflect.Value) reflect.Value {
	for val.IsValid() && (val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface) {
		if val.IsNil() {
			return val
		}
		val = val.Elem()
	}
	return val
}

func isNil(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return val.IsNil()
	default:
		return false
	}
}

func isScalar(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}
