// Package forestfmt renders ordered forests as box-drawing text and
// parses the compact bracket notation back into graphs.
//
// 🚀 Two notations
//
//	Sprint draws a forest the way you'd sketch it in a terminal:
//
//	  ╟── a
//	  ╎   ├─╼ b
//	  ╎   └─╼ c
//	  ╎       └─╼ d
//	  ╙── e
//
//	Brackets emits the one-line form "a(b,c(d)),e", and Parse reads it
//	back — Parse(Brackets(g)) reproduces g's vertices, edges, sibling
//	order and labels ("id:label"); the parsed graph lists its vertices
//	in the preorder of the notation, not in g's insertion order.
//
// ✨ Key features:
//   - UTF glyphs by default, pure-ASCII via WithASCII for plain logs
//   - explicit labels rendered as id:label in both notations
//   - forests only: Sprint and Brackets validate the graph class first
//
// ⚙️ Usage:
//
//	g, _ := forestfmt.Parse("a(b,c(d)),e")
//	text, _ := forestfmt.Sprint(g)
//	fmt.Println(text)
//
// The bracket grammar: a forest is trees separated by commas; a tree is
// an identifier, an optional ":label", and an optional parenthesized
// child forest.
package forestfmt
