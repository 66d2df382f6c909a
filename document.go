// Package xmlsmith wraps an entity tree in an XML document and exposes
// whole-document query and mutation operations over it.
package xmlsmith

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xmlsmith/go-xmlsmith/entity"
	"github.com/xmlsmith/go-xmlsmith/render"
)

// Supported document versions and encodings.
const (
	Version10 = "1.0"
	Version11 = "1.1"

	EncodingUTF8  = "UTF-8"
	EncodingUTF16 = "UTF-16"
)

var (
	ErrVersion  = errors.New("unsupported XML version")
	ErrEncoding = errors.New("unsupported document encoding")
)

// Document holds an optional root entity together with the XML
// declaration fields. The zero value is not usable; create documents
// with NewDocument.
//
// A document is a plain mutable structure with no internal locking.
type Document struct {
	root     entity.Entity
	version  string
	encoding string
}

// NewDocument returns a rootless document with version 1.0 and UTF-8
// encoding.
func NewDocument() *Document {
	return &Document{version: Version10, encoding: EncodingUTF8}
}

// Root returns the document root, or nil.
func (d *Document) Root() entity.Entity { return d.root }

// SetRoot replaces the document root. The root must be parentless;
// pass nil to clear it.
func (d *Document) SetRoot(e entity.Entity) error {
	if e != nil && e.Parent() != nil {
		return fmt.Errorf("document root %q must not have a parent", e.Name())
	}
	d.root = e
	return nil
}

// Version returns the declared XML version.
func (d *Document) Version() string { return d.version }

// SetVersion sets the declared XML version, which must be 1.0 or 1.1.
func (d *Document) SetVersion(v string) error {
	switch v {
	case Version10, Version11:
		d.version = v
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrVersion, v)
	}
}

// Encoding returns the declared encoding.
func (d *Document) Encoding() string { return d.encoding }

// SetEncoding sets the declared encoding, which must be UTF-8 or
// UTF-16.
func (d *Document) SetEncoding(e string) error {
	switch e {
	case EncodingUTF8, EncodingUTF16:
		d.encoding = e
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrEncoding, e)
	}
}

// Render returns the document text: the declaration line followed, if
// a root is present, by the root's rendering.
func (d *Document) Render(opts ...render.RenderOption) string {
	var sb strings.Builder
	// strings.Builder writes cannot fail
	d.Encode(&sb, opts...)
	return sb.String()
}

// Encode writes the document text to w.
func (d *Document) Encode(w io.Writer, opts ...render.RenderOption) error {
	decl := fmt.Sprintf("<?xml version=%q encoding=%q?>", d.version, d.encoding)
	if colorFn := render.ColorFromOpts(opts...); colorFn != nil {
		decl = colorFn(render.DeclColor, decl)
	}
	if _, err := w.Write([]byte(decl)); err != nil {
		return err
	}
	if d.root == nil {
		return nil
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}
	return render.Encode(d.root, w, opts...)
}

// WriteFile writes the rendered document to path in a single
// whole-buffer write, replacing any existing file.
func (d *Document) WriteFile(path string) error {
	return os.WriteFile(path, []byte(d.Render()), 0644)
}

// PutAttribute sets key=value on every entity named entityName, in
// pre-order. It fails with the entity package's InvalidName error when
// key is invalid; entities visited before the failure keep the
// attribute. Without a root it does nothing.
func (d *Document) PutAttribute(entityName, key, value string) error {
	return d.each(entityName, func(e entity.Entity) error {
		_, _, err := e.PutAttribute(key, value)
		return err
	})
}

// RemoveAttribute removes the attribute under key from every entity
// named entityName.
func (d *Document) RemoveAttribute(entityName, key string) {
	d.each(entityName, func(e entity.Entity) error {
		e.RemoveAttribute(key)
		return nil
	})
}

// RenameAttribute renames the attribute oldKey to newKey on every
// entity named entityName. Renames applied before a validation failure
// are kept; the traversal is not transactional.
func (d *Document) RenameAttribute(entityName, oldKey, newKey string) error {
	return d.each(entityName, func(e entity.Entity) error {
		_, _, err := e.RenameAttribute(oldKey, newKey)
		return err
	})
}

// RenameEntity renames every entity named oldName to newName. On an
// invalid newName the first attempted rename fails and the traversal
// stops; nodes renamed earlier keep the new name.
func (d *Document) RenameEntity(oldName, newName string) error {
	return d.each(oldName, func(e entity.Entity) error {
		return e.SetName(newName)
	})
}

// each applies fn to every entity named name, stopping at the first
// error.
func (d *Document) each(name string, fn func(entity.Entity) error) error {
	if d.root == nil {
		return nil
	}
	var failed error
	d.root.Visit(func(e entity.Entity) bool {
		if failed != nil {
			return false
		}
		if e.Name() == name {
			if err := fn(e); err != nil {
				failed = err
				return false
			}
		}
		return true
	})
	return failed
}

// RemoveEntity detaches every entity named name from the tree. A
// matching root clears the document's root reference. Detached
// subtrees keep their own children; they are simply no longer
// reachable from the document.
func (d *Document) RemoveEntity(name string) {
	if d.root == nil {
		return
	}
	// Collect first: detaching while the parent's child list is being
	// traversed would skip siblings. Every node is visited, including
	// the ones being removed.
	var matches []entity.Entity
	d.root.Visit(func(e entity.Entity) bool {
		if e.Name() == name {
			matches = append(matches, e)
		}
		return true
	})
	for _, e := range matches {
		if e == d.root {
			d.root = nil
		}
		if p := e.Parent(); p != nil {
			p.RemoveChild(e)
		}
	}
}
