package baliso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treealign/balembed"
	"github.com/katalvlaran/treealign/baliso"
	"github.com/katalvlaran/treealign/balseq"
)

// nextPairs allocates n pairs from a fresh alphabet.
func nextPairs(t *testing.T, n int) ([]balseq.Token, []balseq.Token, balseq.OpenToClose) {
	t.Helper()
	alpha, err := balseq.NewAlphabet(balseq.ModeDefault)
	require.NoError(t, err)

	opens := make([]balseq.Token, n)
	closes := make([]balseq.Token, n)
	for i := 0; i < n; i++ {
		opens[i], closes[i], err = alpha.Next()
		require.NoError(t, err)
	}

	return opens, closes, alpha.OpenToClose()
}

// TestLCBI_SelfIsomorphism: a sequence against itself keeps every node.
func TestLCBI_SelfIsomorphism(t *testing.T) {
	s, otc, err := balseq.RandomBalancedSequence(12, balseq.ModeDefault, balseq.WithSeed(5))
	require.NoError(t, err)

	for _, impl := range baliso.AvailableImpls() {
		opts := baliso.DefaultOptions()
		opts.Impl = impl

		common, err := baliso.LongestCommonBalancedIsomorphism(s, s, otc, &opts)
		require.NoError(t, err)
		assert.Equal(t, float64(12), common.Value, "impl %s", impl)
		assert.True(t, common.Sub1.Equal(s), "impl %s", impl)
		assert.True(t, common.Sub2.Equal(s), "impl %s", impl)
	}
}

// TestLCBI_NoInteriorContraction: s1 = (1 (3)), s2 = (1 (2 (3))). The
// embedding deletes interior node 2 and keeps both 1 and 3; the
// isomorphism cannot remove 2 without taking 3 down with it, so only
// the roots match.
func TestLCBI_NoInteriorContraction(t *testing.T) {
	opens, closes, otc := nextPairs(t, 3)

	s1 := balseq.New(balseq.ModeDefault, []balseq.Token{
		opens[0], opens[2], closes[2], closes[0]})
	s2 := balseq.New(balseq.ModeDefault, []balseq.Token{
		opens[0], opens[1], opens[2], closes[2], closes[1], closes[0]})

	for _, impl := range baliso.AvailableImpls() {
		opts := baliso.DefaultOptions()
		opts.Impl = impl

		common, err := baliso.LongestCommonBalancedIsomorphism(s1, s2, otc, &opts)
		require.NoError(t, err)
		assert.Equal(t, float64(1), common.Value, "impl %s", impl)
		assert.Equal(t, []balseq.Token{opens[0], closes[0]}, common.Sub1.Tokens(), "impl %s", impl)
	}

	// The embedding variant contracts node 2 of s2 and reaches value 2.
	emb, err := balembed.LongestCommonBalancedEmbedding(s1, s2, otc, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(2), emb.Value)
}

// TestLCBI_AtMostEmbedding: pruning is a special case of deletion, so
// the isomorphism value is bounded by the embedding value on random
// inputs under a label-like affinity.
func TestLCBI_AtMostEmbedding(t *testing.T) {
	classAffinity := func(t1, t2 balseq.Token) float64 {
		if t1%4 == t2%4 {
			return 1
		}

		return 0
	}

	for seed := int64(0); seed < 8; seed++ {
		alpha, err := balseq.NewAlphabet(balseq.ModeDefault)
		require.NoError(t, err)
		s1, _, err := balseq.RandomBalancedSequence(10, balseq.ModeDefault,
			balseq.WithSeed(seed), balseq.WithAlphabet(alpha))
		require.NoError(t, err)
		s2, otc, err := balseq.RandomBalancedSequence(11, balseq.ModeDefault,
			balseq.WithSeed(seed+50), balseq.WithAlphabet(alpha))
		require.NoError(t, err)

		isoOpts := baliso.Options{Affinity: baliso.Affinity(classAffinity)}
		iso, err := baliso.LongestCommonBalancedIsomorphism(s1, s2, otc, &isoOpts)
		require.NoError(t, err)

		embOpts := balembed.Options{Affinity: balembed.Affinity(classAffinity)}
		emb, err := balembed.LongestCommonBalancedEmbedding(s1, s2, otc, &embOpts)
		require.NoError(t, err)

		assert.LessOrEqual(t, iso.Value, emb.Value, "seed %d", seed)
	}
}

// TestLCBI_ImplAgreement: values and witnesses agree across engines.
func TestLCBI_ImplAgreement(t *testing.T) {
	for seed := int64(0); seed < 6; seed++ {
		alpha, err := balseq.NewAlphabet(balseq.ModeDefault)
		require.NoError(t, err)
		s1, _, err := balseq.RandomBalancedSequence(13, balseq.ModeDefault,
			balseq.WithSeed(seed), balseq.WithAlphabet(alpha))
		require.NoError(t, err)
		s2, otc, err := balseq.RandomBalancedSequence(8, balseq.ModeDefault,
			balseq.WithSeed(seed+31), balseq.WithAlphabet(alpha))
		require.NoError(t, err)

		var results []baliso.Common
		for _, impl := range baliso.AvailableImpls() {
			opts := baliso.Options{Affinity: baliso.AnyTokens, Impl: impl}
			common, err := baliso.LongestCommonBalancedIsomorphism(s1, s2, otc, &opts)
			require.NoError(t, err)
			require.NoError(t, common.Sub1.Validate(otc))
			require.NoError(t, common.Sub2.Validate(otc))
			results = append(results, common)
		}

		assert.Equal(t, results[0].Value, results[1].Value, "seed %d", seed)
		assert.Equal(t, results[0].Sub1.Key(), results[1].Sub1.Key(), "seed %d", seed)
		assert.Equal(t, results[0].Sub2.Key(), results[1].Sub2.Key(), "seed %d", seed)
	}
}

// TestLCBI_Validation covers the entry checks.
func TestLCBI_Validation(t *testing.T) {
	s, otc, err := balseq.RandomBalancedSequence(3, balseq.ModeDefault, balseq.WithSeed(2))
	require.NoError(t, err)

	opts := baliso.Options{Impl: baliso.Impl("gpu")}
	_, err = baliso.LongestCommonBalancedIsomorphism(s, s, otc, &opts)
	assert.ErrorIs(t, err, baliso.ErrUnknownImpl)

	_, err = baliso.LongestCommonBalancedIsomorphism(s, s, nil, nil)
	assert.ErrorIs(t, err, baliso.ErrNilOpenToClose)

	bad := balseq.New(balseq.ModeDefault, []balseq.Token{1})
	_, err = baliso.LongestCommonBalancedIsomorphism(bad, s, otc, nil)
	assert.ErrorIs(t, err, balseq.ErrUnbalanced)
}

// TestDecompNoCat agrees with the balseq split and AllDecompNoCat
// enumerates exactly the {head, tail} closure.
func TestDecompNoCat(t *testing.T) {
	opens, closes, otc := nextPairs(t, 3)

	// Path of three nodes.
	s := balseq.New(balseq.ModeDefault, []balseq.Token{
		opens[0], opens[1], opens[2], closes[2], closes[1], closes[0]})

	a, head, tail, err := baliso.DecompNoCat(s, otc)
	require.NoError(t, err)
	assert.True(t, a.Equal(s))
	assert.Equal(t, 4, head.Len())
	assert.True(t, tail.IsEmpty())

	all, err := baliso.AllDecompNoCat(s, otc)
	require.NoError(t, err)
	// Closure of a path: the path itself and each proper suffix depth.
	assert.Len(t, all, 3)
	for key, d := range all {
		assert.Equal(t, d.Seq.Key(), key)
		assert.Equal(t, d.Seq.At(0), d.Open)
		assert.True(t, d.A.Concat(d.Tail).Equal(d.Seq))
	}

	_, err = baliso.AllDecompNoCat(balseq.New(balseq.ModeDefault, []balseq.Token{opens[0]}), otc)
	assert.ErrorIs(t, err, balseq.ErrUnbalanced)
}
