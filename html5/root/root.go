// Package root builds the document root: the top-level concatenation of
// Head and Body content. Root has no parent of its own and emits no
// wrapping tag — only its children's output, in order.
package root

import "github.com/jpl-au/htmlvm/element"

// T is the document root element.
type T = element.Elem[element.DocumentParent]

// New builds a Root from 0..N Head/Body children.
func New(children ...element.Elem[element.RootParent]) T {
	return element.Retag[element.RootParent, element.DocumentParent](
		element.Block(children...),
	)
}

// Lazy builds a Root whose content is captured in a closure and resolved
// once during optimization — the common pattern for a template type
// whose body is assembled from the enclosing function's state.
func Lazy(build func() element.Elem[element.RootParent]) T {
	return element.Retag[element.RootParent, element.DocumentParent](
		element.Lazy(build),
	)
}
