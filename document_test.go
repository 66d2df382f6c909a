package xmlsmith

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xmlsmith/go-xmlsmith/entity"
)

func TestNewDocumentDefaults(t *testing.T) {
	d := NewDocument()
	if d.Version() != Version10 {
		t.Errorf("version = %q, want %q", d.Version(), Version10)
	}
	if d.Encoding() != EncodingUTF8 {
		t.Errorf("encoding = %q, want %q", d.Encoding(), EncodingUTF8)
	}
	if d.Root() != nil {
		t.Error("new document has a root")
	}
}

func TestSetVersionAndEncoding(t *testing.T) {
	d := NewDocument()
	if err := d.SetVersion(Version11); err != nil {
		t.Errorf("SetVersion(1.1) error = %v", err)
	}
	if err := d.SetVersion("2.0"); !errors.Is(err, ErrVersion) {
		t.Errorf("SetVersion(2.0) error = %v, want ErrVersion", err)
	}
	if d.Version() != Version11 {
		t.Errorf("version after failed set = %q, want 1.1", d.Version())
	}

	if err := d.SetEncoding(EncodingUTF16); err != nil {
		t.Errorf("SetEncoding(UTF-16) error = %v", err)
	}
	if err := d.SetEncoding("latin-1"); !errors.Is(err, ErrEncoding) {
		t.Errorf("SetEncoding(latin-1) error = %v, want ErrEncoding", err)
	}
}

func TestSetRootRejectsAttachedEntity(t *testing.T) {
	parent := entity.MustComposite("parent")
	child := entity.MustComposite("child")
	parent.AddChild(child)

	d := NewDocument()
	if err := d.SetRoot(child); err == nil {
		t.Error("SetRoot(attached entity) succeeded, want error")
	}
	if err := d.SetRoot(parent); err != nil {
		t.Errorf("SetRoot(parentless entity) error = %v", err)
	}
}

func TestRenderDeclarationOnly(t *testing.T) {
	d := NewDocument()
	want := `<?xml version="1.0" encoding="UTF-8"?>`
	if got := d.Render(); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderWithRoot(t *testing.T) {
	d := NewDocument()
	root := entity.MustComposite("root")
	root.PutAttribute("id", "1")
	root.PutAttribute("age", "32")
	d.SetRoot(root)
	d.SetVersion(Version11)
	d.SetEncoding(EncodingUTF16)

	want := `<?xml version="1.1" encoding="UTF-16"?>` + "\n" +
		`<root id="1" age="32" />`
	if diff := cmp.Diff(want, d.Render()); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func buildTestDoc(t *testing.T) (*Document, *entity.Composite) {
	t.Helper()
	root := entity.MustComposite("root")
	item1 := entity.MustComposite("item")
	item2 := entity.MustText("item")
	other := entity.MustComposite("other")
	root.AddChild(item1)
	root.AddChild(other)
	other.AddChild(item2)

	d := NewDocument()
	if err := d.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	return d, root
}

func TestPutAttributeOnAllMatches(t *testing.T) {
	d, root := buildTestDoc(t)
	if err := d.PutAttribute("item", "checked", "yes"); err != nil {
		t.Fatalf("PutAttribute error = %v", err)
	}
	var got int
	root.Visit(func(e entity.Entity) bool {
		if e.Name() == "item" {
			if v, ok := e.Attribute("checked"); !ok || v != "yes" {
				t.Errorf("entity %q missing checked attribute", e.Name())
			}
			got++
		} else if len(e.Attributes()) != 0 {
			t.Errorf("entity %q unexpectedly has attributes", e.Name())
		}
		return true
	})
	if got != 2 {
		t.Errorf("matched %d entities, want 2", got)
	}
}

func TestPutAttributeInvalidKey(t *testing.T) {
	d, root := buildTestDoc(t)
	if err := d.PutAttribute("item", "1bad", "x"); !errors.Is(err, entity.ErrInvalidName) {
		t.Errorf("PutAttribute error = %v, want ErrInvalidName", err)
	}
	// key validation is argument-only, so the first matched node fails
	// before mutating and no match in the tree gains the attribute
	root.Visit(func(e entity.Entity) bool {
		if len(e.Attributes()) != 0 {
			t.Errorf("entity %q mutated by failed bulk put", e.Name())
		}
		return true
	})
}

func TestPutAttributeWithoutRoot(t *testing.T) {
	d := NewDocument()
	if err := d.PutAttribute("item", "k", "v"); err != nil {
		t.Errorf("PutAttribute on rootless document error = %v", err)
	}
}

func TestRemoveAttributeOnAllMatches(t *testing.T) {
	d, root := buildTestDoc(t)
	d.PutAttribute("item", "checked", "yes")
	d.RemoveAttribute("item", "checked")
	root.Visit(func(e entity.Entity) bool {
		if _, ok := e.Attribute("checked"); ok {
			t.Errorf("entity %q still has checked attribute", e.Name())
		}
		return true
	})
}

func TestRenameAttributeOnAllMatches(t *testing.T) {
	d, root := buildTestDoc(t)
	d.PutAttribute("item", "old", "v")
	if err := d.RenameAttribute("item", "old", "new"); err != nil {
		t.Fatalf("RenameAttribute error = %v", err)
	}
	root.Visit(func(e entity.Entity) bool {
		if e.Name() != "item" {
			return true
		}
		if _, ok := e.Attribute("old"); ok {
			t.Error("old attribute key survives rename")
		}
		if v, ok := e.Attribute("new"); !ok || v != "v" {
			t.Errorf("new attribute = (%q, %v), want (v, true)", v, ok)
		}
		return true
	})
}

func TestRenameEntity(t *testing.T) {
	d, root := buildTestDoc(t)
	if err := d.RenameEntity("item", "entry"); err != nil {
		t.Fatalf("RenameEntity error = %v", err)
	}
	var entries int
	root.Visit(func(e entity.Entity) bool {
		if e.Name() == "entry" {
			entries++
		}
		if e.Name() == "item" {
			t.Error("an item survived the rename")
		}
		return true
	})
	if entries != 2 {
		t.Errorf("renamed %d entities, want 2", entries)
	}
}

func TestRenameEntityInvalidNameStopsTraversal(t *testing.T) {
	d, root := buildTestDoc(t)
	if err := d.RenameEntity("item", "9bad"); !errors.Is(err, entity.ErrInvalidName) {
		t.Errorf("RenameEntity error = %v, want ErrInvalidName", err)
	}
	// bulk mutations are all-or-nothing in practice: the failure does
	// not depend on the node, so it hits the first match before any
	// rename lands and every match keeps its old name
	var items int
	root.Visit(func(e entity.Entity) bool {
		if e.Name() == "item" {
			items++
		}
		return true
	})
	if items != 2 {
		t.Errorf("items after failed rename = %d, want 2", items)
	}
}

func TestRemoveEntity(t *testing.T) {
	d, root := buildTestDoc(t)
	d.RemoveEntity("item")
	root.Visit(func(e entity.Entity) bool {
		if e.Name() == "item" {
			t.Error("an item survived removal")
		}
		return true
	})
	if d.Root() != root {
		t.Error("root changed")
	}
}

func TestRemoveEntityRoot(t *testing.T) {
	root := entity.MustComposite("entity")
	child := entity.MustText("child")
	root.AddChild(child)
	d := NewDocument()
	d.SetRoot(root)

	d.RemoveEntity("entity")
	if d.Root() != nil {
		t.Error("root not cleared")
	}
	// the orphaned root keeps its own children
	if root.Len() != 1 {
		t.Errorf("former root children = %d, want 1", root.Len())
	}
	if child.Parent() != root {
		t.Error("child detached from former root")
	}
}
