// Package forestfmt glyph renderer.
//
// Errors:
//
//	rendering and bracket emission return ograph sentinel errors
//	(ErrUndirected, ErrMultiParent, ErrCycle) when the input is not an
//	ordered directed forest.
package forestfmt

import (
	"strings"

	"github.com/katalvlaran/treealign/ograph"
)

// glyphs is one rendering dialect of the tree drawing.
type glyphs struct {
	empty       string // rendered for a graph with no vertices
	newtreeLast string // prefix of the last (or only) root
	newtreeMid  string // prefix of a non-last root
	endOfForest string // indent below the last root
	withinForest string // indent below a non-last root
	withinTree  string // indent below a non-last child
	last        string // prefix of a last child
	mid         string // prefix of a non-last child
}

var utfGlyphs = glyphs{
	empty:        "╙",
	newtreeLast:  "╙── ",
	newtreeMid:   "╟── ",
	endOfForest:  "    ",
	withinForest: "╎   ",
	withinTree:   "│   ",
	last:         "└─╼ ",
	mid:          "├─╼ ",
}

var asciiGlyphs = glyphs{
	empty:        "+",
	newtreeLast:  "+-- ",
	newtreeMid:   "+-- ",
	endOfForest:  "    ",
	withinForest: ":   ",
	withinTree:   "|   ",
	last:         "L-> ",
	mid:          "|-> ",
}

// Option configures rendering.
type Option func(*options)

type options struct {
	ascii bool
}

// WithASCII switches Sprint to the pure-ASCII glyph set.
func WithASCII() Option {
	return func(o *options) { o.ascii = true }
}

// Sprint renders an ordered directed forest as multi-line box-drawing
// text, one root per top-level branch, children in sibling order.
// Vertices with an explicit label render as "id:label".
func Sprint(g *ograph.Graph, opts ...Option) (string, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	gl := utfGlyphs
	if o.ascii {
		gl = asciiGlyphs
	}

	if err := g.ValidateForest(); err != nil {
		return "", err
	}
	if g.IsEmpty() {
		return gl.empty + "\n", nil
	}

	var b strings.Builder
	var render func(id, prefix string) error
	render = func(id, prefix string) error {
		children, err := g.Successors(id)
		if err != nil {
			return err
		}
		for i, child := range children {
			branch, indent := gl.mid, gl.withinTree
			if i == len(children)-1 {
				branch, indent = gl.last, gl.endOfForest
			}
			b.WriteString(prefix + branch + vertexText(g, child) + "\n")
			if err = render(child, prefix+indent); err != nil {
				return err
			}
		}

		return nil
	}

	roots := g.Roots()
	for i, root := range roots {
		branch, indent := gl.newtreeMid, gl.withinForest
		if i == len(roots)-1 {
			branch, indent = gl.newtreeLast, gl.endOfForest
		}
		b.WriteString(branch + vertexText(g, root) + "\n")
		if err := render(root, indent); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

// vertexText renders one vertex: bare ID, or id:label when a label is set.
func vertexText(g *ograph.Graph, id string) string {
	v, err := g.Vertex(id)
	if err != nil || v.Label == "" {
		return id
	}

	return id + ":" + v.Label
}
