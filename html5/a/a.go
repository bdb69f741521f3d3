// Package a builds the <a> anchor element, valid only inside <body>.
package a

import (
	"github.com/jpl-au/htmlvm/element"
	"github.com/jpl-au/htmlvm/node"
)

// T is an <a> element, valid as a child of Body.
type T = element.Elem[element.BodyParent]

// New builds an <a> from its link text.
func New(text string) T {
	return element.NewTag[element.BodyParent]("a", nil, node.Literal(text))
}

// Href appends the href attribute, chaining off New the way the DSL's
// modification chain accumulates attributes.
func Href(anchor T, url string) T {
	return anchor.Attr("href", url)
}
