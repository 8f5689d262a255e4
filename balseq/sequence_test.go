package balseq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treealign/balseq"
)

// buildAlphabet allocates n pairs and returns the opens, closes and map.
func buildAlphabet(t *testing.T, mode balseq.Mode, n int) ([]balseq.Token, []balseq.Token, balseq.OpenToClose) {
	t.Helper()
	alpha, err := balseq.NewAlphabet(mode)
	require.NoError(t, err)

	opens := make([]balseq.Token, n)
	closes := make([]balseq.Token, n)
	for i := 0; i < n; i++ {
		opens[i], closes[i], err = alpha.Next()
		require.NoError(t, err)
	}

	return opens, closes, alpha.OpenToClose()
}

// TestMode_Validate accepts the four supported modes and rejects the rest.
func TestMode_Validate(t *testing.T) {
	for _, m := range balseq.Modes() {
		assert.NoError(t, m.Validate())
	}

	bad := balseq.Mode{Item: balseq.ItemNumber, Container: balseq.ContainerString}
	assert.ErrorIs(t, bad.Validate(), balseq.ErrBadMode)
}

// TestAlphabet_Disjoint verifies open and close ranges never meet and
// the pairing is injective in both modes.
func TestAlphabet_Disjoint(t *testing.T) {
	for _, mode := range balseq.Modes() {
		opens, closes, otc := buildAlphabet(t, mode, 50)

		seen := make(map[balseq.Token]bool)
		for i := range opens {
			assert.False(t, seen[opens[i]], "open tokens must be distinct")
			assert.False(t, seen[closes[i]], "close tokens must be distinct")
			seen[opens[i]] = true
			seen[closes[i]] = true
			assert.Equal(t, closes[i], otc[opens[i]])
		}
		for _, c := range closes {
			_, isOpen := otc[c]
			assert.False(t, isOpen, "close tokens must not be opens")
		}
	}
}

// TestSequence_SliceConcatKey verifies zero-copy views, concatenation
// and value-based keys.
func TestSequence_SliceConcatKey(t *testing.T) {
	opens, closes, _ := buildAlphabet(t, balseq.ModeDefault, 2)

	// (o1 (o2 c2) c1)
	s := balseq.New(balseq.ModeDefault, []balseq.Token{opens[0], opens[1], closes[1], closes[0]})
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, opens[0], s.At(0))

	head := s.Slice(1, 3)
	tail := s.Slice(3, 4)
	joined := head.Concat(tail)
	assert.Equal(t, []balseq.Token{opens[1], closes[1], closes[0]}, joined.Tokens())

	// Equal token runs hash equally regardless of provenance.
	rebuilt := balseq.New(balseq.ModeDefault, joined.Tokens())
	assert.Equal(t, joined.Key(), rebuilt.Key())
	assert.True(t, joined.Equal(rebuilt))
	assert.NotEqual(t, s.Key(), joined.Key())

	assert.True(t, balseq.Empty(balseq.ModeDefault).IsEmpty())
	assert.Equal(t, "", balseq.Empty(balseq.ModeDefault).Key())
}

// TestSequence_Validate covers nesting and alphabet-membership checks.
func TestSequence_Validate(t *testing.T) {
	opens, closes, otc := buildAlphabet(t, balseq.ModeDefault, 2)

	ok := balseq.New(balseq.ModeDefault, []balseq.Token{opens[0], opens[1], closes[1], closes[0]})
	assert.NoError(t, ok.Validate(otc))
	assert.NoError(t, balseq.Empty(balseq.ModeDefault).Validate(otc))

	crossed := balseq.New(balseq.ModeDefault, []balseq.Token{opens[0], opens[1], closes[0], closes[1]})
	assert.ErrorIs(t, crossed.Validate(otc), balseq.ErrUnbalanced)

	unclosed := balseq.New(balseq.ModeDefault, []balseq.Token{opens[0]})
	assert.ErrorIs(t, unclosed.Validate(otc), balseq.ErrUnbalanced)

	alien := balseq.New(balseq.ModeDefault, []balseq.Token{opens[0], 999, closes[0]})
	assert.ErrorIs(t, alien.Validate(otc), balseq.ErrUnknownToken)
}

// TestSequence_String renders chr modes as runes and number modes as lists.
func TestSequence_String(t *testing.T) {
	chrMode := balseq.Mode{Item: balseq.ItemChr, Container: balseq.ContainerString}
	opens, closes, _ := buildAlphabet(t, chrMode, 1)
	s := balseq.New(chrMode, []balseq.Token{opens[0], closes[0]})
	assert.Len(t, []rune(s.String()), 2)

	n := balseq.New(balseq.ModeDefault, []balseq.Token{1, -1})
	assert.Equal(t, "[1 -1]", n.String())
}
