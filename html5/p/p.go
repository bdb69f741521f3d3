// Package p builds the <p> paragraph element, valid only inside <body>.
package p

import (
	"github.com/jpl-au/htmlvm/element"
	"github.com/jpl-au/htmlvm/node"
)

// T is a <p> element, valid as a child of Body.
type T = element.Elem[element.BodyParent]

// New builds a <p> from plain text content.
func New(text string) T {
	return element.NewTag[element.BodyParent]("p", nil, node.Literal(text))
}

// Block builds a <p> from nested body-context content instead of a
// plain string.
func Block(children ...element.Elem[element.BodyParent]) T {
	return element.NewTag[element.BodyParent]("p", nil, element.Block(children...).Node())
}
