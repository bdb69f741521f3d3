// Package head builds the <head> element, whose only valid children are
// HeadParent-typed elements (title.New, ...).
package head

import "github.com/jpl-au/htmlvm/element"

// T is a <head> element, valid as a child of Root.
type T = element.Elem[element.RootParent]

// New builds a <head> from 0..N Title (or other HeadParent) children.
func New(children ...element.Elem[element.HeadParent]) T {
	return element.NewTag[element.RootParent]("head", nil, element.Block(children...).Node())
}
