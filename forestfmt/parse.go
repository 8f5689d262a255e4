package forestfmt

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle"

	"github.com/katalvlaran/treealign/ograph"
)

// nodeAST is one tree in bracket notation: an identifier, an optional
// ":label", and an optional parenthesized child forest.
type nodeAST struct {
	ID       string     `@(Ident|Int)`
	Label    string     `(":" @(Ident|Int))?`
	Children []*nodeAST `("(" (@@ ","?)* ")")?`
}

// forestAST is a comma-separated list of trees.
type forestAST struct {
	Trees []*nodeAST `(@@ ","?)*`
}

var parser = participle.MustBuild(&forestAST{}, participle.UseLookahead(1))

// Parse reads bracket notation like "a(b,c(d)),e" into a directed
// ordered graph. Sibling order is the textual order; "id:label"
// attaches a label. The result must be an ordered directed forest:
// an ID appearing under two parents is an error, never a silent merge.
func Parse(s string) (*ograph.Graph, error) {
	ast := &forestAST{}
	if err := parser.ParseString(s, ast); err != nil {
		return nil, fmt.Errorf("forestfmt: parse %q: %w", s, err)
	}

	g := ograph.New()
	var add func(n *nodeAST, parent string) error
	add = func(n *nodeAST, parent string) error {
		if n.Label != "" {
			if err := g.AddVertex(n.ID, ograph.WithLabel(n.Label)); err != nil {
				return err
			}
		} else if err := g.AddVertex(n.ID); err != nil {
			return err
		}
		if parent != "" {
			if err := g.AddEdge(parent, n.ID); err != nil {
				return err
			}
		}
		for _, child := range n.Children {
			if err := add(child, n.ID); err != nil {
				return err
			}
		}

		return nil
	}
	for _, tree := range ast.Trees {
		if err := add(tree, ""); err != nil {
			return nil, fmt.Errorf("forestfmt: parse %q: %w", s, err)
		}
	}
	if err := g.ValidateForest(); err != nil {
		return nil, fmt.Errorf("forestfmt: parse %q: %w", s, err)
	}

	return g, nil
}

// Brackets is the inverse of Parse: the one-line bracket notation of a
// forest, trees and siblings in order.
func Brackets(g *ograph.Graph) (string, error) {
	if err := g.ValidateForest(); err != nil {
		return "", err
	}

	var render func(id string) (string, error)
	render = func(id string) (string, error) {
		children, err := g.Successors(id)
		if err != nil {
			return "", err
		}
		text := vertexText(g, id)
		if len(children) == 0 {
			return text, nil
		}
		parts := make([]string, len(children))
		for i, child := range children {
			if parts[i], err = render(child); err != nil {
				return "", err
			}
		}

		return text + "(" + strings.Join(parts, ",") + ")", nil
	}

	roots := g.Roots()
	parts := make([]string, len(roots))
	var err error
	for i, root := range roots {
		if parts[i], err = render(root); err != nil {
			return "", err
		}
	}

	return strings.Join(parts, ","), nil
}
