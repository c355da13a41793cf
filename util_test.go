package FHEAES

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("KeyTest", func(t *testing.T) {
		key, err := DecodeKey("000102030405060708090a0b0c0d0e0f")
		require.NoError(t, err)
		assert.Equal(t, Key{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, key)
	})

	t.Run("PrefixTest", func(t *testing.T) {
		block, err := DecodeBlock("0x00112233445566778899aabbccddeeff")
		require.NoError(t, err)
		assert.Len(t, block, BlockSize)
		assert.Equal(t, byte(0xff), block[15])
	})

	t.Run("InvalidSizeTest", func(t *testing.T) {
		_, err := DecodeKey("0001")
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		_, err = DecodeBlock("00112233445566778899aabbccddeeff00")
		assert.ErrorIs(t, err, ErrInvalidBlockSize)
	})

	t.Run("InvalidHexTest", func(t *testing.T) {
		_, err := DecodeBlock("zz112233445566778899aabbccddeeff")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidBlockSize)
	})
}

func TestDeriveBlock(t *testing.T) {
	a := DeriveBlock([]byte("seed"), "key", KeySize)
	b := DeriveBlock([]byte("seed"), "key", KeySize)
	c := DeriveBlock([]byte("seed"), "iv", BlockSize)
	assert.Len(t, a, KeySize)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRotateSlice(t *testing.T) {
	testCases := []struct {
		offset int
		want   []int
	}{
		{0, []int{0, 1, 2, 3}},
		{1, []int{1, 2, 3, 0}},
		{3, []int{3, 0, 1, 2}},
		{4, []int{0, 1, 2, 3}},
		{-1, []int{3, 0, 1, 2}},
	}
	for _, tc := range testCases {
		s := []int{0, 1, 2, 3}
		RotateSlice(s, tc.offset)
		assert.Equal(t, tc.want, s, "offset %d", tc.offset)
	}

	var empty []int
	RotateSlice(empty, 2)
	assert.Empty(t, empty)
}
