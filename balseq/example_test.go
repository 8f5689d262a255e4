package balseq_test

import (
	"fmt"

	"github.com/katalvlaran/treealign/balseq"
)

// ExampleDecompose peels the first subtree off a two-tree forest
// encoded as [1 2 -2 -1 3 -3]: a path of two nodes, then a lone node.
func ExampleDecompose() {
	alpha, _ := balseq.NewAlphabet(balseq.ModeDefault)
	o1, c1, _ := alpha.Next()
	o2, c2, _ := alpha.Next()
	o3, c3, _ := alpha.Next()

	s := balseq.New(balseq.ModeDefault, []balseq.Token{o1, o2, c2, c1, o3, c3})
	a, head, tail, _ := balseq.Decompose(s, alpha.OpenToClose())

	fmt.Println("a:   ", a)
	fmt.Println("head:", head)
	fmt.Println("tail:", tail)
	// Output:
	// a:    [1 2 -2 -1]
	// head: [2 -2]
	// tail: [3 -3]
}

// ExampleRandomBalancedSequence shows seeded generation: re-running the
// program prints the same sequence every time.
func ExampleRandomBalancedSequence() {
	s, otc, _ := balseq.RandomBalancedSequence(4, balseq.ModeDefault, balseq.WithSeed(3))
	fmt.Println("len:", s.Len())
	fmt.Println("balanced:", s.Validate(otc) == nil)
	// Output:
	// len: 8
	// balanced: true
}
