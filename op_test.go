package pairalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationLetterBijection(t *testing.T) {
	cases := []struct {
		op     Operation
		letter byte
	}{
		{MATCH, 'M'},
		{SEQ_MATCH, '='},
		{SEQ_MISMATCH, 'X'},
		{INSERT, 'I'},
		{DELETE, 'D'},
		{SKIP, 'N'},
		{SOFT_CLIP, 'S'},
		{HARD_CLIP, 'H'},
		{PAD, 'P'},
	}
	for _, c := range cases {
		letter, err := c.op.Letter()
		require.NoError(t, err)
		assert.Equal(t, c.letter, letter)

		back, err := OperationFromLetter(c.letter)
		require.NoError(t, err)
		assert.Equal(t, c.op, back)
	}
}

func TestOperationFromLetterUnknown(t *testing.T) {
	_, err := OperationFromLetter('Z')
	require.ErrorIs(t, err, ErrInvalidOperationCode)
}

func TestStartHasNoLetter(t *testing.T) {
	_, err := START.Letter()
	require.ErrorIs(t, err, ErrInvalidOperationCode)
}

func TestOperationPredicates(t *testing.T) {
	assert.True(t, IsMatchOp(MATCH))
	assert.True(t, IsMatchOp(SEQ_MATCH))
	assert.True(t, IsMatchOp(SEQ_MISMATCH))
	assert.False(t, IsMatchOp(INSERT))

	assert.True(t, IsInsertOp(INSERT))
	assert.True(t, IsInsertOp(SOFT_CLIP))
	assert.False(t, IsInsertOp(DELETE))

	assert.True(t, IsDeleteOp(DELETE))
	assert.True(t, IsDeleteOp(SKIP))
	assert.False(t, IsDeleteOp(INSERT))
}
