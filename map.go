package xmlsmith

import (
	"github.com/xmlsmith/go-xmlsmith/objmap"
)

// MapDocument maps v to an entity tree and wraps it in a fresh
// document with default version and encoding.
func MapDocument(v any, opts ...objmap.Option) (*Document, error) {
	node, err := objmap.Map(v, opts...)
	if err != nil {
		return nil, err
	}
	doc := NewDocument()
	if err := doc.SetRoot(node); err != nil {
		return nil, err
	}
	return doc, nil
}
