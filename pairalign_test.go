package pairalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairAlignGlobalDispatch(t *testing.T) {
	m := scoreModel(t, 1, -1, 5, 1)
	res, err := PairAlign(GlobalAlignment, Bytes("ACGT"), Bytes("ACGT"), m, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Score)
	cigar, err := res.CIGAR()
	require.NoError(t, err)
	assert.Equal(t, "4=", cigar)
}

func TestPairAlignRejectsWrongModelType(t *testing.T) {
	_, err := PairAlign(GlobalAlignment, Bytes("ACGT"), Bytes("ACGT"), costModel(t, 1, 1), Options{})
	require.Error(t, err)
}

func TestPairAlignEditDistanceRequiresCostModel(t *testing.T) {
	_, err := PairAlign(EditDistance, Bytes("ACGT"), Bytes("ACGT"), nil, Options{})
	require.Error(t, err)
}

func TestPairAlignBandedRejectedForNonGlobal(t *testing.T) {
	m := scoreModel(t, 1, -1, 5, 1)
	_, err := PairAlign(LocalAlignment, Bytes("ACGT"), Bytes("ACGT"), m, Options{Banded: true, Lower: -1, Upper: 1})
	require.Error(t, err)
}

func TestPairAlignUnknownRegime(t *testing.T) {
	_, err := PairAlign(Regime(99), Bytes("ACGT"), Bytes("ACGT"), nil, Options{})
	require.ErrorIs(t, err, ErrUnknownRegime)
}

func TestPairAlignScoreOnlyOmitsAlignment(t *testing.T) {
	m := scoreModel(t, 1, -1, 5, 1)
	res, err := PairAlign(GlobalAlignment, Bytes("ACGT"), Bytes("ACGT"), m, Options{ScoreOnly: true})
	require.NoError(t, err)
	assert.Nil(t, res.Alignment)
	assert.Nil(t, res.AlignedSequence())
	_, err = res.CIGAR()
	require.Error(t, err)
}

func TestPairAlignHammingDistanceOnlyOmitsAlignment(t *testing.T) {
	res, err := PairAlign(HammingDistance, Bytes("ACGT"), Bytes("ACGG"), nil, Options{DistanceOnly: true})
	require.NoError(t, err)
	assert.Nil(t, res.Alignment)
	assert.Equal(t, 1.0, res.Score)
}

func TestPairAlignLevenshteinDispatch(t *testing.T) {
	res, err := PairAlign(LevenshteinDistance, Bytes("kitten"), Bytes("sitting"), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Score)
}

func TestPairAlignBandedGlobalDispatch(t *testing.T) {
	m := scoreModel(t, 1, -1, 5, 1)
	res, err := PairAlign(GlobalAlignment, Bytes("ACGT"), Bytes("ACGT"), m, Options{Banded: true, Lower: -1, Upper: 1})
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Score)
}

func TestAlignedSequenceStringRendersThreeLines(t *testing.T) {
	m := scoreModel(t, 1, -1, 5, 1)
	a, b := Bytes("ACGT"), Bytes("ACGT")
	res, err := PairAlign(GlobalAlignment, a, b, m, Options{})
	require.NoError(t, err)
	text := res.AlignedSequence().String(b)
	assert.Contains(t, text, "ACGT")
	assert.Contains(t, text, "||||")
}
