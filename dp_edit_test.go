package pairalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func costModel(t *testing.T, insertionCost, deletionCost float64) *CostModel {
	t.Helper()
	m, err := NewCostModel(DichotomousSubstitutionMatrix(0, 1), insertionCost, deletionCost)
	require.NoError(t, err)
	return m
}

func TestEditDistanceSingleDeletion(t *testing.T) {
	m := costModel(t, 1, 1)
	dist, aln, err := alignEditDistance(Bytes("ACGT"), Bytes("ACT"), m, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist)
	st := aln.Stats()
	assert.Equal(t, 1, st.Gaps)
}

func TestEditDistanceScoreOnlyAgreesWithTraceback(t *testing.T) {
	m := costModel(t, 1, 1)
	full, _, err := alignEditDistance(Bytes("GATTACA"), Bytes("GCATGCU"), m, false)
	require.NoError(t, err)
	only, _, err := alignEditDistance(Bytes("GATTACA"), Bytes("GCATGCU"), m, true)
	require.NoError(t, err)
	assert.Equal(t, full, only)
}

func TestLevenshteinTriangleInequality(t *testing.T) {
	a, b, c := Bytes("kitten"), Bytes("sitting"), Bytes("mitten")
	dab, _, err := alignLevenshtein(a, b, true)
	require.NoError(t, err)
	dbc, _, err := alignLevenshtein(b, c, true)
	require.NoError(t, err)
	dac, _, err := alignLevenshtein(a, c, true)
	require.NoError(t, err)
	assert.LessOrEqual(t, dac, dab+dbc)
}

func TestLevenshteinIsSymmetric(t *testing.T) {
	a, b := Bytes("intention"), Bytes("execution")
	dab, _, err := alignLevenshtein(a, b, true)
	require.NoError(t, err)
	dba, _, err := alignLevenshtein(b, a, true)
	require.NoError(t, err)
	assert.Equal(t, dab, dba)
}

func TestLevenshteinOfIdenticalSequencesIsZero(t *testing.T) {
	dist, _, err := alignLevenshtein(Bytes("banana"), Bytes("banana"), true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
}

func TestHammingUnequalLengthError(t *testing.T) {
	_, _, err := alignHamming(Bytes("ACGT"), Bytes("ACG"))
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestHammingCountsMismatches(t *testing.T) {
	dist, aln, err := alignHamming(Bytes("GAGCCTACTAACGGGAT"), Bytes("CATCGTAATGACGGCCT"))
	require.NoError(t, err)
	assert.Equal(t, 7, dist)
	require.Len(t, aln.Anchors(), 2)
	assert.Equal(t, MATCH, aln.Anchors()[1].Op)
}

func TestHammingIsSymmetric(t *testing.T) {
	a, b := Bytes("ACGTACGT"), Bytes("TGCATGCA")
	dab, _, err := alignHamming(a, b)
	require.NoError(t, err)
	dba, _, err := alignHamming(b, a)
	require.NoError(t, err)
	assert.Equal(t, dab, dba)
}

func TestHammingEmptySequencesYieldZero(t *testing.T) {
	dist, aln, err := alignHamming(Bytes(""), Bytes(""))
	require.NoError(t, err)
	assert.Equal(t, 0, dist)
	require.Len(t, aln.Anchors(), 1)
}
