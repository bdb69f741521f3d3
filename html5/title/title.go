// Package title builds the <title> element, valid only inside <head>.
package title

import (
	"github.com/jpl-au/htmlvm/element"
	"github.com/jpl-au/htmlvm/node"
)

// T is a <title> element, valid as a child of Head.
type T = element.Elem[element.HeadParent]

// New builds a <title> from its text content.
func New(text string) T {
	return element.NewTag[element.HeadParent]("title", nil, node.Literal(text))
}

// Empty builds a <title> with no content.
func Empty() T {
	return element.NewTag[element.HeadParent]("title", nil, node.None{})
}
