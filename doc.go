// Package htmlvm is a compile-once, render-many HTML templating engine: a
// typed builder DSL assembles an algebraic node tree, a bottom-up optimizer
// folds it into its densest equivalent form, a bytecode writer serializes
// the result to a compact binary instruction stream, and an allocation-light
// interpreter renders that stream to HTML.
//
// Typical use wires the three stages together through the render
// sub-package:
//
//	tmpl, err := render.Compile(doc.Node())
//	var buf bytes.Buffer
//	err = render.Render(tmpl, &buf, ctx)
//
// Sub-packages:
//   - node: the closed set of tree node variants.
//   - element: the typed Elem[P] wrapper enforcing parent-child constraints.
//   - html5/...: per-tag constructors fixing a concrete Elem[P] parent.
//   - optimize: the bottom-up tree rewrite.
//   - bytecode: the binary instruction writer.
//   - cursor: a bounds-checked, non-owning byte reader.
//   - render: Compile/Render, context substitution, adaptive buffer sizing,
//     static-tree flattening, and the process-wide compiled-template cache.
package htmlvm
