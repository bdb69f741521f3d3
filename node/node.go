// Package node defines TemplateNode, the algebraic tree produced by the
// html5 builder DSL and consumed by the optimizer and bytecode writer.
//
// Node is a closed, tagged-variant type. The six variants below are the
// only implementations; each carries exactly the fields it needs to
// describe its contribution to the rendered document.
package node

// Node is the tagged-variant type at the heart of the template tree.
// isNode is unexported so the variant set stays closed to this package.
type Node interface {
	isNode()
}

// None contributes nothing to output. A List never contains None after
// optimization.
type None struct{}

func (None) isNode() {}

// Literal is a run of bytes written verbatim to output.
type Literal string

func (Literal) isNode() {}

// List renders each child in order. Adjacent Literal siblings never occur
// inside a List after optimization — they are coalesced.
type List []Node

func (List) isNode() {}

// Modifier is an attribute attached to a Tag. Serialized as `key="value"`,
// a single leading space before each, in the order they were added.
type Modifier struct {
	Name  string
	Value string
}

// Attr constructs a Modifier. Attribute values are not escaped; callers
// are responsible for providing safe values.
func Attr(name, value string) Modifier {
	return Modifier{Name: name, Value: value}
}

// Tag emits `<name mod...>content</name>`. Content is always a single
// Node — None if the tag has no body.
type Tag struct {
	Name      string
	Modifiers []Modifier
	Content   Node
}

func (*Tag) isNode() {}

// ContextValue is a runtime substitution resolved from a render context
// by Path; the render package looks up only Path's first key.
type ContextValue struct {
	Path []string
}

func (ContextValue) isNode() {}

// Producer defers construction of a Node until optimization. Lazy never
// appears in an optimized tree — it is always resolved in place.
type Producer func() Node

// Lazy wraps a deferred node producer. Used for constructs (notably a
// document root) that capture their content in a closure invoked later.
type Lazy struct {
	Produce Producer
}

func (Lazy) isNode() {}
