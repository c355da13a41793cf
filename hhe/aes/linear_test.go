package aes

import (
	"testing"

	"FHEAES/fhe"
	"FHEAES/fhe/plain"
	symaes "FHEAES/sym/aes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftRows(t *testing.T) {
	var block [16]int
	for i := range block {
		block[i] = i
	}
	s := FromBlock(block)
	ShiftRows(s)

	// row r moved left by r
	assert.Equal(t, [4]int{0, 4, 8, 12}, s[0])
	assert.Equal(t, [4]int{5, 9, 13, 1}, s[1])
	assert.Equal(t, [4]int{10, 14, 2, 6}, s[2])
	assert.Equal(t, [4]int{15, 3, 7, 11}, s[3])

	// bijection on the 16 cells
	seen := make(map[int]bool)
	for r := range s {
		for c := range s[r] {
			seen[s[r][c]] = true
		}
	}
	assert.Len(t, seen, 16)

	// row 2 has period 2, rows 1 and 3 period 4
	orig := FromBlock(block)
	ShiftRows(s)
	assert.Equal(t, orig[0], s[0])
	assert.Equal(t, orig[2], s[2])
	assert.NotEqual(t, orig[1], s[1])
	ShiftRows(s)
	ShiftRows(s)
	assert.Equal(t, *orig, *s)
}

func TestGaloisMul(t *testing.T) {
	pc := newPlainContext()
	for a := 0; a < 256; a++ {
		ct, err := pc.enc.EncryptByte(uint8(a))
		require.NoError(t, err)

		for k := 0; k < 256; k++ {
			out, err := GaloisMul(pc.evaluator, ct, uint8(k))
			require.NoError(t, err)
			require.Equal(t, symaes.GMul(byte(a), byte(k)), pc.dec.DecryptByte(out), "%#02x * %#02x", a, k)
		}

		one, err := GaloisMul(pc.evaluator, ct, 1)
		require.NoError(t, err)
		assert.Equal(t, uint8(a), pc.dec.DecryptByte(one))
		zero, err := GaloisMul(pc.evaluator, ct, 0)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), pc.dec.DecryptByte(zero))

		twice, err := GaloisMul(pc.evaluator, ct, 2)
		require.NoError(t, err)
		twice, err = GaloisMul(pc.evaluator, twice, 2)
		require.NoError(t, err)
		four, err := GaloisMul(pc.evaluator, ct, 4)
		require.NoError(t, err)
		assert.Equal(t, pc.dec.DecryptByte(four), pc.dec.DecryptByte(twice))
	}

	a, err := pc.enc.EncryptByte(0x57)
	require.NoError(t, err)
	for k, want := range map[uint8]uint8{0x02: 0xae, 0x03: 0xf9, 0x13: 0xfe, 0x83: 0xc1} {
		out, err := GaloisMul(pc.evaluator, a, k)
		require.NoError(t, err)
		assert.Equal(t, want, pc.dec.DecryptByte(out))
	}
}

// TestGaloisMulTrace checks that the trace depends on the public constant only
func TestGaloisMulTrace(t *testing.T) {
	pc := newPlainContext()
	counter := pc.eval.Counter()
	for _, k := range []uint8{0x02, 0x03, 0x0e} {
		var first map[plain.Op]uint64
		for _, v := range []uint8{0x00, 0x80, 0xff} {
			ct, err := pc.enc.EncryptByte(v)
			require.NoError(t, err)
			counter.Reset()
			_, err = GaloisMul(pc.evaluator, ct, k)
			require.NoError(t, err)
			if first == nil {
				first = counter.Snapshot()
				continue
			}
			assert.Equal(t, first, counter.Snapshot(), "k=%#02x v=%#02x", k, v)
		}
	}
}

var mixColumnVectors = []struct {
	in, out string
}{
	{"db135345", "8e4da1bc"},
	{"f20a225c", "9fdc589d"},
	{"01010101", "01010101"},
	{"c6c6c6c6", "c6c6c6c6"},
	{"d4d4d4d5", "d5d5d7d6"},
	{"2d26314c", "4d7ebdf8"},
}

func TestMixColumns(t *testing.T) {
	pc := newPlainContext()
	var block []byte
	for _, v := range mixColumnVectors[:4] {
		block = append(block, mustHex(v.in)...)
	}
	var want []byte
	for _, v := range mixColumnVectors[:4] {
		want = append(want, mustHex(v.out)...)
	}

	var in [16]plain.Byte
	copy(in[:], pc.encrypt(t, block))
	s := FromBlock(in)
	require.NoError(t, MixColumns(pc.evaluator, s))
	out := s.ToBlock()
	assert.Equal(t, want, fhe.DecryptBytes[plain.Byte](pc.dec, out[:]))

	for _, v := range mixColumnVectors[4:] {
		var col [16]plain.Byte
		copy(col[:], pc.encrypt(t, append(mustHex(v.in), make([]byte, 12)...)))
		s := FromBlock(col)
		require.NoError(t, mixColumn(pc.evaluator, s, 0))
		out := s.ToBlock()
		assert.Equal(t, mustHex(v.out), fhe.DecryptBytes[plain.Byte](pc.dec, out[:4]))
	}
}

func TestAddRoundKey(t *testing.T) {
	pc := newPlainContext()
	var in [16]plain.Byte
	copy(in[:], pc.encrypt(t, make([]byte, 16)))
	s := FromBlock(in)

	var rk RoundKey[plain.Byte]
	for i := range rk {
		rk[i] = pc.evaluator.Trivial(uint8(i))
	}
	require.NoError(t, AddRoundKey(pc.evaluator, s, rk))
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, uint8(r*4+c), pc.dec.DecryptByte(s[r][c]))
		}
	}
}
