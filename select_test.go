package xmlsmith

import (
	"testing"

	"github.com/xmlsmith/go-xmlsmith/entity"
)

func TestSelect(t *testing.T) {
	// root
	//   parent
	//     child1 (composite)
	//     child  (composite)
	//     child  (text)
	//   parent2
	//     child  (composite)
	root := entity.MustComposite("root")
	parent := entity.MustComposite("parent")
	parent2 := entity.MustComposite("parent2")
	child1 := entity.MustComposite("child1")
	childA := entity.MustComposite("child")
	childB := entity.MustText("child")
	childOther := entity.MustComposite("child")
	root.AddChild(parent)
	root.AddChild(parent2)
	parent.AddChild(child1)
	parent.AddChild(childA)
	parent.AddChild(childB)
	parent2.AddChild(childOther)

	d := NewDocument()
	if err := d.SetRoot(root); err != nil {
		t.Fatal(err)
	}

	got := d.Select("parent/child")
	if len(got) != 2 {
		t.Fatalf("Select returned %d entities, want 2", len(got))
	}
	if got[0] != entity.Entity(childA) || got[1] != entity.Entity(childB) {
		t.Errorf("Select returned wrong entities: %v", names(got))
	}
}

func TestSelectSingleSegment(t *testing.T) {
	d, _ := buildTestDoc(t)
	got := d.Select("item")
	if len(got) != 2 {
		t.Fatalf("Select(item) returned %d entities, want 2", len(got))
	}
	if got := d.Select("root"); len(got) != 1 {
		t.Errorf("Select(root) returned %d entities, want 1", len(got))
	}
}

func TestSelectSuffixMatch(t *testing.T) {
	// a path shorter than the entity's depth still matches as a suffix
	d, _ := buildTestDoc(t)
	got := d.Select("other/item")
	if len(got) != 1 {
		t.Fatalf("Select(other/item) returned %d entities, want 1", len(got))
	}
	if got[0].Name() != "item" {
		t.Errorf("selected %q, want item", got[0].Name())
	}
}

func TestSelectNoMatch(t *testing.T) {
	d, _ := buildTestDoc(t)
	if got := d.Select("missing"); len(got) != 0 {
		t.Errorf("Select(missing) returned %d entities, want 0", len(got))
	}
	// path longer than any ancestry
	if got := d.Select("a/b/c/root"); len(got) != 0 {
		t.Errorf("Select(a/b/c/root) returned %d entities, want 0", len(got))
	}
}

func TestSelectEmptyAndRootless(t *testing.T) {
	d := NewDocument()
	if got := d.Select("anything"); got != nil {
		t.Errorf("Select on rootless document = %v, want nil", got)
	}
	d2, _ := buildTestDoc(t)
	if got := d2.Select(""); len(got) != 0 {
		t.Errorf("Select(\"\") returned %d entities, want 0", len(got))
	}
	if got := d2.Select("//item//"); len(got) != 2 {
		t.Errorf("Select with empty segments returned %d entities, want 2", len(got))
	}
}

func names(es []entity.Entity) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name()
	}
	return out
}
