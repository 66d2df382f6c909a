// Package render produces XML text from entity trees.
//
// Output follows a fixed layout: four spaces of indentation per depth
// level beyond the root, composites without children rendered
// self-closing, text entities always rendered with an explicit closing
// tag, and attributes emitted in their insertion order.
package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/xmlsmith/go-xmlsmith/entity"
)

const indentWidth = 4

type renderState struct {
	depth int
	Color func(ColorAttr, string) string
}

// Encode writes the XML rendering of e to w.
func Encode(e entity.Entity, w io.Writer, opts ...RenderOption) error {
	rs := &renderState{}
	for _, opt := range opts {
		opt(rs)
	}
	return encode(e, w, rs)
}

// String returns the XML rendering of e.
func String(e entity.Entity, opts ...RenderOption) string {
	var buf bytes.Buffer
	if err := Encode(e, &buf, opts...); err != nil {
		// bytes.Buffer writes cannot fail; nothing else errors here.
		panic(err)
	}
	return buf.String()
}

func encode(e entity.Entity, w io.Writer, rs *renderState) error {
	ind := strings.Repeat(" ", indentWidth*rs.depth)
	switch n := e.(type) {
	case *entity.Text:
		if err := writeString(w, ind); err != nil {
			return err
		}
		if err := writeOpenTag(n, w, rs, false); err != nil {
			return err
		}
		if err := writeString(w, applyColor(rs, TextColor, n.Text())); err != nil {
			return err
		}
		return writeCloseTag(n, w, rs)

	case *entity.Composite:
		if err := writeString(w, ind); err != nil {
			return err
		}
		children := n.Children()
		if len(children) == 0 {
			return writeOpenTag(n, w, rs, true)
		}
		if err := writeOpenTag(n, w, rs, false); err != nil {
			return err
		}
		rs.depth++
		for _, child := range children {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			if err := encode(child, w, rs); err != nil {
				return err
			}
		}
		rs.depth--
		if err := writeString(w, "\n"+ind); err != nil {
			return err
		}
		return writeCloseTag(n, w, rs)

	default:
		panic("entity kind")
	}
}

// writeOpenTag emits "<name k=\"v\" ...>" or, when selfClose is set,
// "<name k=\"v\" ... />".
func writeOpenTag(e entity.Entity, w io.Writer, rs *renderState, selfClose bool) error {
	if err := writeString(w, "<"+applyColor(rs, TagColor, e.Name())); err != nil {
		return err
	}
	for _, attr := range e.Attributes() {
		s := " " + applyColor(rs, AttrKeyColor, attr.Key) +
			"=" + applyColor(rs, AttrValueColor, `"`+attr.Value+`"`)
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	if selfClose {
		return writeString(w, " />")
	}
	return writeString(w, ">")
}

func writeCloseTag(e entity.Entity, w io.Writer, rs *renderState) error {
	return writeString(w, "</"+applyColor(rs, TagColor, e.Name())+">")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(rs *renderState, attr ColorAttr, v string) string {
	if rs.Color == nil {
		return v
	}
	return rs.Color(attr, v)
}
