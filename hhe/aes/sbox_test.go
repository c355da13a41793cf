package aes

import (
	"testing"

	"FHEAES/fhe"
	"FHEAES/fhe/plain"
	symaes "FHEAES/sym/aes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	pc := newPlainContext()
	for v := 0; v < 256; v++ {
		ct, err := pc.enc.EncryptByte(uint8(v))
		require.NoError(t, err)
		out, err := Substitute(pc.evaluator, ct)
		require.NoError(t, err)
		assert.Equal(t, symaes.SBox[v], pc.dec.DecryptByte(out), "S(%#02x)", v)
	}
}

// TestSubstituteOblivious checks that the primitive trace of Substitute does
// not depend on the hidden input
func TestSubstituteOblivious(t *testing.T) {
	pc := newPlainContext()
	counter := pc.eval.Counter()

	var traces []map[plain.Op]uint64
	for _, v := range []uint8{0x00, 0x53, 0xff} {
		ct, err := pc.enc.EncryptByte(v)
		require.NoError(t, err)
		counter.Reset()
		_, err = Substitute(pc.evaluator, ct)
		require.NoError(t, err)
		traces = append(traces, counter.Snapshot())
	}

	want := map[plain.Op]uint64{
		plain.OpEqual:   256,
		plain.OpSelect:  256,
		plain.OpXor:     256,
		plain.OpTrivial: 2*256 + 1,
	}
	for _, trace := range traces {
		assert.Equal(t, want, trace)
	}
}

func TestLookUp(t *testing.T) {
	var identity [256]byte
	for i := range identity {
		identity[i] = byte(i)
	}
	pc := newPlainContext()
	for _, v := range []uint8{0, 1, 0x80, 0xfe} {
		ct, err := pc.enc.EncryptByte(v)
		require.NoError(t, err)
		out, err := LookUp(pc.evaluator, &identity, ct)
		require.NoError(t, err)
		assert.Equal(t, v, pc.dec.DecryptByte(out))
	}
}

func TestSubBytes(t *testing.T) {
	pc := newPlainContext()
	block := pc.encrypt(t, mustHex("00102030405060708090a0b0c0d0e0f0"))
	var in [16]plain.Byte
	copy(in[:], block)
	s := FromBlock(in)
	require.NoError(t, SubBytes(pc.evaluator, s))
	out := s.ToBlock()
	assert.Equal(t, mustHex("63cab7040953d051cd60e0e7ba70e18c"), fhe.DecryptBytes[plain.Byte](pc.dec, out[:]))
}
