package balembed_test

import (
	"testing"

	"github.com/katalvlaran/treealign/balembed"
	"github.com/katalvlaran/treealign/balseq"
)

// benchmarkLCBE runs the DP over two random sequences of n1 and n2
// nodes sharing one alphabet, under an always-match affinity.
func benchmarkLCBE(b *testing.B, n1, n2 int, impl balembed.Impl) {
	alpha, err := balseq.NewAlphabet(balseq.ModeDefault)
	if err != nil {
		b.Fatalf("alphabet: %v", err)
	}
	s1, _, err := balseq.RandomBalancedSequence(n1, balseq.ModeDefault,
		balseq.WithSeed(1), balseq.WithAlphabet(alpha))
	if err != nil {
		b.Fatalf("sequence 1: %v", err)
	}
	s2, otc, err := balseq.RandomBalancedSequence(n2, balseq.ModeDefault,
		balseq.WithSeed(2), balseq.WithAlphabet(alpha))
	if err != nil {
		b.Fatalf("sequence 2: %v", err)
	}

	opts := balembed.Options{Affinity: balembed.AnyTokens, Impl: impl}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = balembed.LongestCommonBalancedEmbedding(s1, s2, otc, &opts); err != nil {
			b.Fatalf("LCBE failed: %v", err)
		}
	}
}

// BenchmarkLCBE_IterativeSmall exercises the default engine on 10×10 nodes.
func BenchmarkLCBE_IterativeSmall(b *testing.B) {
	benchmarkLCBE(b, 10, 10, balembed.ImplIterative)
}

// BenchmarkLCBE_RecursiveSmall exercises the recursive engine on 10×10 nodes.
func BenchmarkLCBE_RecursiveSmall(b *testing.B) {
	benchmarkLCBE(b, 10, 10, balembed.ImplRecursive)
}

// BenchmarkLCBE_IterativeMedium exercises the default engine on 25×25 nodes.
func BenchmarkLCBE_IterativeMedium(b *testing.B) {
	benchmarkLCBE(b, 25, 25, balembed.ImplIterative)
}

// BenchmarkLCBE_RecursiveMedium exercises the recursive engine on 25×25 nodes.
func BenchmarkLCBE_RecursiveMedium(b *testing.B) {
	benchmarkLCBE(b, 25, 25, balembed.ImplRecursive)
}
