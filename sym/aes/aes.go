package aes

import (
	"FHEAES"
)

// Stage names reported to a trace observer
const (
	StageWhitened   = "Whitened"
	StageMainRound  = "MainRound"
	StageFinalRound = "FinalRound"
)

// Observer receives the flattened state after each round
type Observer func(stage string, round int, state [16]byte)

type AES interface {
	RoundKeys() [][16]byte
	EncryptBlock(block FHEAES.Block) FHEAES.Block
	Trace(block FHEAES.Block, observe Observer) FHEAES.Block
}

type aes struct {
	params    Parameter
	secretKey FHEAES.Key
	roundKeys [][16]byte
}

type state [4][4]byte

// NewAES return a new instance of the plain AES cipher
func NewAES(secretKey FHEAES.Key, params Parameter) AES {
	if len(secretKey) != params.GetKeySize() {
		panic("Invalid Key Length!")
	}
	a := &aes{
		params:    params,
		secretKey: secretKey,
	}
	a.roundKeys = a.keyExpansion()
	return a
}

// RoundKeys returns a copy of the round keys, each in row-major order
func (a *aes) RoundKeys() [][16]byte {
	rks := make([][16]byte, len(a.roundKeys))
	copy(rks, a.roundKeys)
	return rks
}

func (a *aes) EncryptBlock(block FHEAES.Block) FHEAES.Block {
	return a.Trace(block, nil)
}

// Trace encrypts one block and reports the state after every round to observe
func (a *aes) Trace(block FHEAES.Block, observe Observer) FHEAES.Block {
	if len(block) != a.params.GetBlockSize() {
		panic("Invalid Block Length!")
	}
	if observe == nil {
		observe = func(string, int, [16]byte) {}
	}

	var s state
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[r][c] = block[c*4+r]
		}
	}

	s.addRoundKey(a.roundKeys[0])
	observe(StageWhitened, 0, s.flatten())
	rounds := a.params.GetRounds()
	for round := 1; round < rounds; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(a.roundKeys[round])
		observe(StageMainRound, round, s.flatten())
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(a.roundKeys[rounds])
	observe(StageFinalRound, rounds, s.flatten())

	out := s.flatten()
	return out[:]
}

// keyExpansion runs the Rijndael key schedule and regroups the words into
// round keys indexed by row*4+col
func (a *aes) keyExpansion() [][16]byte {
	nk := a.params.GetKeySize() / 4
	words := make([][4]byte, a.params.GetNumWords())
	for i := 0; i < nk; i++ {
		copy(words[i][:], a.secretKey[4*i:4*i+4])
	}
	for i := nk; i < len(words); i++ {
		temp := words[i-1]
		if i%nk == 0 {
			FHEAES.RotateSlice(temp[:], 1)
			for j := range temp {
				temp[j] = SBox[temp[j]]
			}
			temp[0] ^= RCon[i/nk-1]
		}
		for j := range temp {
			words[i][j] = words[i-nk][j] ^ temp[j]
		}
	}

	rks := make([][16]byte, a.params.GetRounds()+1)
	for i := range rks {
		for col := 0; col < 4; col++ {
			for row := 0; row < 4; row++ {
				rks[i][row*4+col] = words[i*4+col][row]
			}
		}
	}
	return rks
}

func (s *state) subBytes() {
	for r := range s {
		for c := range s[r] {
			s[r][c] = SBox[s[r][c]]
		}
	}
}

func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		FHEAES.RotateSlice(s[r][:], r)
	}
}

func (s *state) mixColumns() {
	for c := 0; c < 4; c++ {
		var col [4]byte
		for r := 0; r < 4; r++ {
			for j := 0; j < 4; j++ {
				col[r] ^= GMul(MixMatrix[r][j], s[j][c])
			}
		}
		for r := 0; r < 4; r++ {
			s[r][c] = col[r]
		}
	}
}

func (s *state) addRoundKey(rk [16]byte) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] ^= rk[r*4+c]
		}
	}
}

func (s *state) flatten() (out [16]byte) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = s[r][c]
		}
	}
	return
}
