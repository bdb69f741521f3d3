// Package body builds the <body> element, whose valid children are
// BodyParent-typed elements (p.New, a.New, body.Text, ...).
package body

import "github.com/jpl-au/htmlvm/element"

// T is a <body> element, valid as a child of Root.
type T = element.Elem[element.RootParent]

// New builds a <body> from 0..N body-context children.
func New(children ...element.Elem[element.BodyParent]) T {
	return element.NewTag[element.RootParent]("body", nil, element.Block(children...).Node())
}

// Text wraps a raw string as body content, for mixing bare text between
// typed elements (e.g. a paragraph, then text, then another paragraph).
func Text(s string) element.Elem[element.BodyParent] {
	return element.Text[element.BodyParent](s)
}
