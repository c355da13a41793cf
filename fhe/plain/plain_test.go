package plain

import (
	"sync"
	"testing"

	"FHEAES/fhe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ fhe.Evaluator[Byte, Bit] = (*Evaluator)(nil)
var _ fhe.Encryptor[Byte] = (*Encryptor)(nil)
var _ fhe.Decryptor[Byte] = (*Decryptor)(nil)

func TestByteOps(t *testing.T) {
	eval := NewEvaluator()
	dec := NewDecryptor()
	a, b := eval.Trivial(0xb6), eval.Trivial(0x53)

	x, err := eval.Xor(a, b)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xb6^0x53), dec.DecryptByte(x))

	eq, err := eval.Equal(a, a)
	require.NoError(t, err)
	assert.True(t, dec.DecryptBit(eq))
	eq, err = eval.Equal(a, b)
	require.NoError(t, err)
	assert.False(t, dec.DecryptBit(eq))

	s, err := eval.Select(eq, a, b)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x53), dec.DecryptByte(s))

	m, err := eval.MulConst(eval.Trivial(1), 0x1b)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x1b), dec.DecryptByte(m))

	l, err := eval.ShiftLeft(a, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x6c), dec.DecryptByte(l))
	l, err = eval.ShiftLeft(a, 9)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), dec.DecryptByte(l))

	r, err := eval.ShiftRight(a, 7)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), dec.DecryptByte(r))

	k, err := eval.AndConst(a, 0x0f)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x06), dec.DecryptByte(k))

	_, err = eval.ShiftRight(a, -1)
	assert.Error(t, err)
}

func TestCounter(t *testing.T) {
	eval := NewEvaluator()
	enc := NewEncryptor(eval)
	counter := eval.Counter()

	a, err := enc.EncryptByte(7)
	require.NoError(t, err)
	_, err = eval.Xor(a, eval.Trivial(1))
	require.NoError(t, err)
	assert.Equal(t, map[Op]uint64{OpEncrypt: 1, OpTrivial: 1, OpXor: 1}, counter.Snapshot())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(copied fhe.Evaluator[Byte, Bit]) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = copied.Equal(a, a)
			}
		}(eval.ShallowCopy())
	}
	wg.Wait()
	assert.Equal(t, uint64(800), counter.Count(OpEqual))

	counter.Reset()
	assert.Empty(t, counter.Snapshot())
	assert.Equal(t, "Select", OpSelect.String())
	assert.Equal(t, "Op(42)", Op(42).String())
}
