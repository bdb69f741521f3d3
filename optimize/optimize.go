// Package optimize implements the bottom-up tree rewrite that flattens
// nested Lists, concatenates adjacent static fragments into single
// Literals, resolves Lazy thunks, and marks each subtree as optimizable
// (free of context dependency) or not.
//
// Optimizer correctness: the HTML produced by serializing and rendering
// an optimized tree must be byte-identical to serializing and rendering
// the unoptimized tree.
package optimize

import (
	"strings"

	"github.com/jpl-au/htmlvm/bytecode"
	"github.com/jpl-au/htmlvm/node"
)

// Optimize rewrites n bottom-up into an equivalent, denser tree and
// reports whether the result is entirely free of context dependency
// (true means every ContextValue has already been eliminated or none
// were ever present). It returns bytecode.ErrTooManyElements if any Tag
// carries more than bytecode.MaxCount modifiers — folding bakes a Tag's
// modifiers into a literal open-tag string, so the limit has to be
// enforced here rather than left to bytecode.Writer, which never sees a
// folded Tag's original modifier list.
func Optimize(n node.Node) (node.Node, bool, error) {
	switch t := n.(type) {
	case nil:
		return node.None{}, true, nil
	case node.None:
		return node.None{}, true, nil
	case node.Literal:
		return t, true, nil
	case node.Lazy:
		return Optimize(t.Produce())
	case node.ContextValue:
		return t, false, nil
	case *node.Tag:
		return optimizeTag(t)
	case node.List:
		return optimizeList(t)
	default:
		// Unreachable for the closed Node variant set; preserved rather
		// than dropped so an unrecognized future variant fails at the
		// bytecode writer instead of silently vanishing here.
		return n, true, nil
	}
}

// optimizeTag optimizes a Tag's content first, then folds the whole tag
// into a single Literal when the content is a Literal and the subtree has
// no context dependency. Otherwise it runs the open/content/close sequence
// through optimizeList, so the open and close literals merge with any
// literals at the edges of content, a None content disappears, and the
// result stays optimizable unless content depends on context.
func optimizeTag(t *node.Tag) (node.Node, bool, error) {
	if len(t.Modifiers) > bytecode.MaxCount {
		return nil, false, bytecode.ErrTooManyElements
	}

	content, optimizable, err := Optimize(t.Content)
	if err != nil {
		return nil, false, err
	}

	if lit, ok := content.(node.Literal); ok && optimizable {
		return node.Literal(openTag(t.Name, t.Modifiers) + string(lit) + "</" + t.Name + ">"), true, nil
	}

	return optimizeList(node.List{
		node.Literal(openTag(t.Name, t.Modifiers)),
		content,
		node.Literal("</" + t.Name + ">"),
	})
}

func openTag(name string, mods []node.Modifier) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, m := range mods {
		b.WriteByte(' ')
		b.WriteString(m.Name)
		b.WriteString(`="`)
		b.WriteString(m.Value)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

// optimizeList flattens children (including nested Lists, after they are
// themselves optimized) and merges adjacent Literals into a single
// accumulator, emitting a new element to the output sequence only when a
// non-Literal, non-None node is encountered. Recursing into nested Lists
// here, rather than appending their already-optimized elements wholesale,
// is what lets a Literal at the end of one child List merge with a
// Literal at the start of the next sibling in a single pass.
func optimizeList(children node.List) (node.Node, bool, error) {
	var acc strings.Builder
	out := make(node.List, 0, len(children))
	optimizable := true

	flush := func() {
		if acc.Len() > 0 {
			out = append(out, node.Literal(acc.String()))
			acc.Reset()
		}
	}

	var emit func(n node.Node)
	emit = func(n node.Node) {
		switch c := n.(type) {
		case node.None:
			// contributes nothing
		case node.List:
			for _, e := range c {
				emit(e)
			}
		case node.Literal:
			acc.WriteString(string(c))
		default:
			flush()
			out = append(out, c)
		}
	}

	for _, child := range children {
		optimizedChild, childOptimizable, err := Optimize(child)
		if err != nil {
			return nil, false, err
		}
		if !childOptimizable {
			optimizable = false
		}
		emit(optimizedChild)
	}
	flush()

	switch len(out) {
	case 0:
		return node.None{}, optimizable, nil
	case 1:
		return out[0], optimizable, nil
	default:
		return out, optimizable, nil
	}
}
