package balseq

// Rune ranges for ItemChr alphabets. Opens start at '!' so small
// sequences render as printable ASCII; closes live in a plane far above
// any open, keeping the ranges disjoint for up to chrCapacity pairs.
const (
	chrOpenBase  = 0x21
	chrCloseBase = 0x10021
	chrCapacity  = chrCloseBase - chrOpenBase
)

// Alphabet allocates open/close token pairs in visit order and records
// the open→close bijection. One Alphabet may span several forests so
// their token namespaces stay disjoint (the encoder relies on this when
// it feeds two trees into a single DP call).
type Alphabet struct {
	mode Mode
	n    int
	otc  OpenToClose
}

// NewAlphabet creates an empty alphabet for the given container mode.
func NewAlphabet(mode Mode) (*Alphabet, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	return &Alphabet{mode: mode, otc: make(OpenToClose)}, nil
}

// Mode returns the container mode the alphabet allocates for.
func (a *Alphabet) Mode() Mode { return a.mode }

// Size returns the number of pairs allocated so far.
func (a *Alphabet) Size() int { return a.n }

// Next allocates a fresh (open, close) token pair and records it in the
// open→close map.
//
//	Number mode: open = n+1, close = -(n+1)
//	Chr mode:    open = chrOpenBase+n, close = chrCloseBase+n
func (a *Alphabet) Next() (open, close Token, err error) {
	if a.mode.Item == ItemChr && a.n >= chrCapacity {
		return 0, 0, ErrAlphabetExhausted
	}

	switch a.mode.Item {
	case ItemChr:
		open = Token(chrOpenBase + a.n)
		close = Token(chrCloseBase + a.n)
	default: // ItemNumber
		open = Token(a.n + 1)
		close = Token(-(a.n + 1))
	}
	a.otc[open] = close
	a.n++

	return open, close, nil
}

// OpenToClose returns the live open→close map. It keeps growing as Next
// is called; callers that need a snapshot should copy it.
func (a *Alphabet) OpenToClose() OpenToClose { return a.otc }
