package forestfmt_test

import (
	"fmt"

	"github.com/katalvlaran/treealign/forestfmt"
)

// ExampleSprint parses bracket notation and draws the forest.
func ExampleSprint() {
	g, _ := forestfmt.Parse("a(b,c(d))")
	text, _ := forestfmt.Sprint(g)
	fmt.Print(text)
	// Output:
	// ╙── a
	//     ├─╼ b
	//     └─╼ c
	//         └─╼ d
}

// ExampleBrackets shows the one-line notation round-tripping.
func ExampleBrackets() {
	g, _ := forestfmt.Parse("r(x:mark,y),z")
	text, _ := forestfmt.Brackets(g)
	fmt.Println(text)
	// Output:
	// r(x:mark,y),z
}
