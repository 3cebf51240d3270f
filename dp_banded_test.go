package pairalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandedGlobalMatchesFullWhenBandCoversMatrix(t *testing.T) {
	m := scoreModel(t, 1, -1, 5, 1)
	a, b := Bytes("GATTACAGATTACA"), Bytes("GATCACAGATTACC")

	fullScore, fullAln, err := alignFull(a, b, m, kindGlobal, false)
	require.NoError(t, err)

	bandedScore, bandedAln, err := alignGlobalBanded(a, b, m, -len(a), len(b), false)
	require.NoError(t, err)

	assert.Equal(t, fullScore, bandedScore)
	assert.Equal(t, fullAln.Anchors(), bandedAln.Anchors())
}

func TestBandedGlobalNarrowBandMatchesFullOnNearDiagonalPair(t *testing.T) {
	m := scoreModel(t, 1, -1, 5, 1)
	a, b := Bytes("ACGTACGTAC"), Bytes("ACGTACGTAC")

	fullScore, _, err := alignFull(a, b, m, kindGlobal, false)
	require.NoError(t, err)

	// the sequences are identical, so even a band of width 1 (the main
	// diagonal only) must reach the same optimum.
	bandedScore, _, err := alignGlobalBanded(a, b, m, 0, 0, false)
	require.NoError(t, err)

	assert.Equal(t, fullScore, bandedScore)
}

func TestBandedGlobalScenarioBandEqualsFullAlignment(t *testing.T) {
	// a band wide enough to contain the optimal path around the
	// terminal diagonal offset n-m, symmetric around zero (see
	// DESIGN.md's Open Question decision) since a one-sided band cannot
	// satisfy the lower<=0<=upper precondition.
	m := scoreModel(t, 1, -1, 3, 1)
	a, b := Bytes("ACGTACGT"), Bytes("ACGTTACGT")

	fullScore, fullAln, err := alignFull(a, b, m, kindGlobal, false)
	require.NoError(t, err)

	bandedScore, bandedAln, err := alignGlobalBanded(a, b, m, -2, 2, false)
	require.NoError(t, err)

	assert.Equal(t, fullScore, bandedScore)
	assert.Equal(t, fullAln.Anchors(), bandedAln.Anchors())
}

func TestBandedGlobalRejectsBandExcludingOrigin(t *testing.T) {
	m := scoreModel(t, 1, -1, 5, 1)
	_, _, err := alignGlobalBanded(Bytes("ACGT"), Bytes("ACGT"), m, 1, 4, false)
	require.ErrorIs(t, err, ErrBandExcludesEndpoints)
}

func TestBandedGlobalRejectsBandExcludingTerminal(t *testing.T) {
	m := scoreModel(t, 1, -1, 5, 1)
	// n-m == 6, well outside [-1,1].
	_, _, err := alignGlobalBanded(Bytes("A"), Bytes("ACGTACG"), m, -1, 1, false)
	require.ErrorIs(t, err, ErrBandExcludesEndpoints)
}

func TestBandedGlobalScoreOnlyAgreesWithTraceback(t *testing.T) {
	m := scoreModel(t, 2, -1, 4, 1)
	a, b := Bytes("GATTACAGATTACA"), Bytes("GATCACAGATTACC")
	full, _, err := alignGlobalBanded(a, b, m, -3, 3, false)
	require.NoError(t, err)
	only, _, err := alignGlobalBanded(a, b, m, -3, 3, true)
	require.NoError(t, err)
	assert.Equal(t, full, only)
}
