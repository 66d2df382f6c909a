package meta

import (
	"fmt"
	"reflect"
	"strings"
)

// TagKey is the struct tag key read by this package.
const TagKey = "xmlsmith"

// ParseStructTag parses an xmlsmith tag value into key/value pairs.
// The grammar is comma-separated `key=value` pairs and bare flags:
// `xmlsmith:"name=student,attr=studentGrade,omit"`. Values may be
// quoted with single or double quotes to include spaces or commas.
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if tag == "" {
		return result, nil
	}

	var parts []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false

	for i := 0; i < len(tag); i++ {
		char := tag[i]
		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			current.WriteByte(char)
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(char)
		case char == ',' && !inSingleQuote && !inDoubleQuote:
			part := strings.TrimSpace(current.String())
			if part != "" {
				parts = append(parts, part)
			}
			current.Reset()
		default:
			current.WriteByte(char)
		}
	}
	part := strings.TrimSpace(current.String())
	if part != "" {
		parts = append(parts, part)
	}

	for _, part := range parts {
		if idx := strings.Index(part, "="); idx >= 0 {
			key := strings.TrimSpace(part[:idx])
			value := strings.TrimSpace(part[idx+1:])
			if key == "" {
				return nil, fmt.Errorf("invalid tag: empty key in %q", part)
			}
			result[key] = unquoteValue(value)
		} else {
			// bare flag
			result[part] = ""
		}
	}
	return result, nil
}

func unquoteValue(value string) string {
	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1]
	}
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}

// tagDirectives extracts directives from a struct tag. The second
// return is false when the tag carries no xmlsmith key at all.
func tagDirectives(tag reflect.StructTag) (Directives, bool, error) {
	raw, ok := tag.Lookup(TagKey)
	if !ok {
		return Directives{}, false, nil
	}
	parsed, err := ParseStructTag(raw)
	if err != nil {
		return Directives{}, false, err
	}

	var d Directives
	if _, ok := parsed["omit"]; ok {
		d.Ignore = true
	}
	if _, ok := parsed["-"]; ok {
		d.Ignore = true
	}
	if name, ok := parsed["name"]; ok {
		d.EntityName = name
	}
	if attr, ok := parsed["attr"]; ok {
		d.Attr = String(attr)
	}
	if wrapper, ok := parsed["wrapper"]; ok {
		d.Wrapper = String(wrapper)
	}
	return d, true, nil
}

// typeTagDirectives looks for a type-level xmlsmith tag. Following the
// owning type's declaration style, type-level tags sit on an anonymous
// marker field:
//
//	type Student struct {
//	    xmlMeta `xmlsmith:"name=student"`
//	    Name string
//	}
func typeTagDirectives(t reflect.Type) (Directives, error) {
	if t.Kind() != reflect.Struct {
		return Directives{}, nil
	}
	var found Directives
	var foundField string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous {
			continue
		}
		d, ok, err := tagDirectives(field.Tag)
		if err != nil {
			return Directives{}, fmt.Errorf("field %s.%s: %w", t.Name(), field.Name, err)
		}
		if !ok {
			continue
		}
		if foundField != "" {
			return Directives{}, fmt.Errorf("multiple type-level %s tags on %s (fields %s and %s)",
				TagKey, t.Name(), foundField, field.Name)
		}
		found = d
		foundField = field.Name
	}
	return found, nil
}

// IsMarkerField reports whether field is an anonymous type-level tag
// carrier rather than a mappable field.
func IsMarkerField(field reflect.StructField) bool {
	if !field.Anonymous {
		return false
	}
	_, ok := field.Tag.Lookup(TagKey)
	return ok
}
