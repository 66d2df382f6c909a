// Package entity provides the in-memory tree model for XML documents.
//
// A tree is made of nodes implementing the Entity interface. There are
// two kinds of node: Composite, which holds an ordered list of child
// entities, and Text, which holds string content. Every node carries a
// name and an ordered attribute list; names and attribute keys are
// validated against ^[A-Za-z][A-Za-z0-9]*$ on every set.
//
// Nodes maintain parent back-references. A node has at most one parent
// at a time, and Composite.AddChild refuses (returning false) to attach
// a node that already has a parent or that is the composite's own
// current parent.
//
// Trees are plain mutable structures with no internal locking; callers
// must not mutate the same tree from multiple goroutines.
package entity
