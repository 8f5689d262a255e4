package subtree

import (
	"fmt"

	"github.com/katalvlaran/treealign/balseq"
	"github.com/katalvlaran/treealign/ograph"
)

// tokenAffinity lowers a vertex-level affinity mode to the token-level
// predicate the DPs consume. Tokens resolve to vertices through the
// per-forest encodings, so the DP itself never sees a graph.
func tokenAffinity(o Options, t1, t2 *ograph.Graph, enc1, enc2 *Encoding) (func(a, b balseq.Token) float64, error) {
	vertex := func(g *ograph.Graph, enc *Encoding, tok balseq.Token) ograph.Vertex {
		v, err := g.Vertex(enc.OpenToNode[tok])
		if err != nil {
			// Tokens handed to the affinity always come from the
			// encodings built in the same call; a miss is a bug.
			panic(fmt.Sprintf("subtree: token %d has no vertex: %v", tok, err))
		}

		return v
	}
	label := func(v ograph.Vertex) string {
		if v.Label != "" {
			return v.Label
		}

		return v.ID
	}

	switch o.Affinity {
	case AffinityAny:
		return func(balseq.Token, balseq.Token) float64 { return 1 }, nil

	case AffinityCustom:
		return func(a, b balseq.Token) float64 {
			return o.Score(vertex(t1, enc1, a), vertex(t2, enc2, b))
		}, nil

	case AffinityAuto:
		return func(a, b balseq.Token) float64 {
			v1, v2 := vertex(t1, enc1, a), vertex(t2, enc2, b)
			if v1.Label != "" && v2.Label != "" {
				if v1.Label == v2.Label {
					return 1
				}

				return 0
			}
			if v1.ID == v2.ID {
				return 1
			}

			return 0
		}, nil

	case AffinityEqual:
		return func(a, b balseq.Token) float64 {
			if label(vertex(t1, enc1, a)) == label(vertex(t2, enc2, b)) {
				return 1
			}

			return 0
		}, nil

	default:
		return nil, ErrUnknownAffinity
	}
}
