package pairalign

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlignmentValid(t *testing.T) {
	aln, err := NewAlignment([]AlignmentAnchor{
		{0, 0, START},
		{4, 4, SEQ_MATCH},
		{6, 4, INSERT},
		{9, 7, SEQ_MATCH},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, aln.StartSeq())
	assert.Equal(t, 0, aln.StartRef())
}

func TestNewAlignmentRejectsMissingStart(t *testing.T) {
	_, err := NewAlignment([]AlignmentAnchor{{4, 4, SEQ_MATCH}})
	require.ErrorIs(t, err, ErrInvalidAnchors)
}

func TestNewAlignmentRejectsNonMonotone(t *testing.T) {
	_, err := NewAlignment([]AlignmentAnchor{
		{0, 0, START},
		{4, 4, SEQ_MATCH},
		{2, 4, INSERT},
	})
	require.ErrorIs(t, err, ErrInvalidAnchors)
}

func TestNewAlignmentRejectsDeltaMismatch(t *testing.T) {
	_, err := NewAlignment([]AlignmentAnchor{
		{0, 0, START},
		{4, 3, SEQ_MATCH}, // match family needs ds==dr
	})
	require.ErrorIs(t, err, ErrInvalidAnchors)
}

func TestNewAlignmentAcceptsHardClipAndPad(t *testing.T) {
	for _, op := range []Operation{HARD_CLIP, PAD} {
		_, err := NewAlignment([]AlignmentAnchor{
			{0, 0, START},
			{0, 0, op},
		})
		require.NoError(t, err, "op %v should be constructible with ds==0 dr==0", op)
	}
}

func TestNewAlignmentRejectsUncompressedRuns(t *testing.T) {
	_, err := NewAlignment([]AlignmentAnchor{
		{0, 0, START},
		{2, 2, SEQ_MATCH},
		{4, 4, SEQ_MATCH}, // same op as previous anchor, not compressed
	})
	require.ErrorIs(t, err, ErrInvalidAnchors)
}

// randomMonotoneAnchors generates a valid, compressed anchor walk on an
// m x n grid for the CIGAR round-trip property test.
func randomMonotoneAnchors(rng *rand.Rand, steps int) []AlignmentAnchor {
	anchors := []AlignmentAnchor{{0, 0, START}}
	seqPos, refPos := 0, 0
	var lastOp Operation = INVALID
	families := []Operation{SEQ_MATCH, INSERT, DELETE}
	for i := 0; i < steps; i++ {
		op := families[rng.Intn(len(families))]
		for op == lastOp {
			op = families[rng.Intn(len(families))]
		}
		n := 1 + rng.Intn(4)
		switch {
		case IsMatchOp(op):
			seqPos += n
			refPos += n
		case IsInsertOp(op):
			seqPos += n
		case IsDeleteOp(op):
			refPos += n
		}
		anchors = append(anchors, AlignmentAnchor{seqPos, refPos, op})
		lastOp = op
	}
	return anchors
}

func TestCigarRoundTripProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		anchors := randomMonotoneAnchors(rng, 1+rng.Intn(10))
		aln, err := NewAlignment(anchors)
		require.NoError(t, err)

		text, err := Emit(aln)
		require.NoError(t, err)

		back, err := Parse(text, aln.StartSeq()+1, aln.StartRef()+1)
		require.NoError(t, err)

		assert.Equal(t, aln.Anchors(), back.Anchors())
	}
}

func TestAnchorSwapPropertyFailsConstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		anchors := randomMonotoneAnchors(rng, 4+rng.Intn(6))
		if len(anchors) < 4 {
			continue
		}
		// pick two distinct, non-adjacent anchor indices with different ops.
		i := 1 + rng.Intn(len(anchors)-1)
		j := 1 + rng.Intn(len(anchors)-1)
		if i == j || abs(i-j) < 2 || anchors[i].Op == anchors[j].Op {
			continue
		}
		swapped := append([]AlignmentAnchor(nil), anchors...)
		swapped[i], swapped[j] = swapped[j], swapped[i]

		_, err := NewAlignment(swapped)
		assert.Error(t, err, "swapping anchors %d and %d should break an invariant", i, j)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
