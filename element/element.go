// Package element implements the typed composition layer of the builder
// DSL: parent-element constraints enforced by Go generics, attribute
// chaining, and the block/optional/conditional/lazy/context-value
// composition primitives described by the html5 tag packages.
//
// The source this spec is derived from uses associated-type witnesses to
// enforce parent-child constraints at the type level; Go has no
// associated types, so the constraint is reproduced with phantom marker
// types and a type-parameterized wrapper instead. Passing an Elem built
// for one parent where a different parent is required is a compile
// error, not a runtime assertion.
package element

import "github.com/jpl-au/htmlvm/node"

// DocumentParent marks the top-level Root value, which has no parent
// of its own.
type DocumentParent struct{}

// RootParent marks element types valid directly under Root (Head, Body).
type RootParent struct{}

// HeadParent marks element types valid directly under Head (Title).
type HeadParent struct{}

// BodyParent marks element types valid directly under Body (P, A, ...).
type BodyParent struct{}

// ParentTag constrains Elem's type parameter to the closed set of
// parent-context markers above.
type ParentTag interface {
	DocumentParent | RootParent | HeadParent | BodyParent
}

// Elem is a typed wrapper around a template node, parameterized by the
// parent context it is valid inside of. It is the DSL's only concrete
// element type — per-tag html5 packages just fix P when constructing one.
type Elem[P ParentTag] struct {
	n node.Node
}

// Node returns the underlying template node, for uniform traversal by
// the optimizer and bytecode writer regardless of P.
func (e Elem[P]) Node() node.Node {
	if e.n == nil {
		return node.None{}
	}
	return e.n
}

// NewTag builds an Elem wrapping a fresh Tag node. Used by html5/<tag>
// constructors to fix the tag name and required parent context.
func NewTag[P ParentTag](name string, mods []node.Modifier, content node.Node) Elem[P] {
	if content == nil {
		content = node.None{}
	}
	return Elem[P]{n: &node.Tag{Name: name, Modifiers: mods, Content: content}}
}

// Text wraps a literal string as an Elem valid under parent P — the
// mechanism for mixing raw text into a block alongside typed elements
// (e.g. a paragraph followed by bare text followed by another paragraph).
func Text[P ParentTag](s string) Elem[P] {
	return Elem[P]{n: node.Literal(s)}
}

// Attr appends an attribute modifier to the element's underlying tag,
// returning a new Elem with the extended, order-preserving modifier
// list — the DSL's modification chain (repeated calls append).
//
// Attr panics if called on an element that does not wrap a Tag (the
// result of Block/Optional/Conditional/Lazy/Context composition, or a
// bare Text node): those have no attributes to attach, and a construction-
// time panic surfaces the misuse immediately rather than silently
// discarding the attribute.
func (e Elem[P]) Attr(name, value string) Elem[P] {
	t, ok := e.n.(*node.Tag)
	if !ok {
		panic("element: Attr called on a non-tag element")
	}
	mods := make([]node.Modifier, len(t.Modifiers), len(t.Modifiers)+1)
	copy(mods, t.Modifiers)
	mods = append(mods, node.Attr(name, value))
	return Elem[P]{n: &node.Tag{Name: t.Name, Modifiers: mods, Content: t.Content}}
}

// Block collects 0, 1, 2, or N children belonging to the same parent
// context into a single Elem, matching the DSL's variadic block builder.
func Block[P ParentTag](children ...Elem[P]) Elem[P] {
	switch len(children) {
	case 0:
		return Elem[P]{n: node.None{}}
	case 1:
		return children[0]
	default:
		list := make(node.List, len(children))
		for i, c := range children {
			list[i] = c.Node()
		}
		return Elem[P]{n: list}
	}
}

// Optional resolves to None if present is false, or to e otherwise.
func Optional[P ParentTag](present bool, e Elem[P]) Elem[P] {
	if !present {
		return Elem[P]{n: node.None{}}
	}
	return e
}

// Conditional resolves to onTrue or onFalse depending on cond. Both
// branches share the same parent context by construction.
func Conditional[P ParentTag](cond bool, onTrue, onFalse Elem[P]) Elem[P] {
	if cond {
		return onTrue
	}
	return onFalse
}

// Lazy defers construction of an Elem until optimization time, for
// constructs (notably a document root) that capture their content in a
// closure invoked later. Each optimizer pass invokes the closure once
// (render.NewFlattener's staticness check invokes it once more before
// optimizing) — Lazy never reaches the bytecode writer.
func Lazy[P ParentTag](produce func() Elem[P]) Elem[P] {
	return Elem[P]{n: node.Lazy{Produce: func() node.Node { return produce().Node() }}}
}

// Context constructs a runtime context-value substitution, resolved by
// the renderer from the path's first key at render time.
func Context[P ParentTag](path ...string) Elem[P] {
	return Elem[P]{n: node.ContextValue{Path: path}}
}

// Retag reassigns the parent-context type parameter of an Elem without
// touching the underlying node. The only legitimate use is the assembled
// Root value, which is built as Elem[RootParent] (the constraint its own
// children satisfy) but has no parent of its own.
func Retag[From, To ParentTag](e Elem[From]) Elem[To] {
	return Elem[To]{n: e.Node()}
}
