// Package objmap builds entity trees from arbitrary Go values.
//
// # Usage
//
//	type Student struct {
//	    Name   string
//	    Grades []int `xmlsmith:"wrapper"`
//	}
//	node, err := objmap.Map(Student{Name: "John", Grades: []int{15, 16}})
//
// Mapping walks the value and its metadata together: struct tags and a
// meta.Registry decide per field whether a value becomes a child
// element, an attribute of the enclosing element, a wrapped group, or
// is skipped entirely. See the meta package for the directive set and
// its resolution rules.
//
// # Related Packages
//
//   - github.com/xmlsmith/go-xmlsmith/entity - tree model
//   - github.com/xmlsmith/go-xmlsmith/meta - directive resolution
package objmap
