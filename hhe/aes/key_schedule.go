package aes

import (
	"fmt"

	"FHEAES"
	"FHEAES/fhe"
	symaes "FHEAES/sym/aes"
)

const (
	// Rounds of AES-128
	Rounds   = 10
	nk       = FHEAES.KeySize / 4
	numWords = 4 * (Rounds + 1)
)

// RoundKey is indexed by row*4+col
type RoundKey[B any] [16]B

// ExpandedKey holds the Rounds+1 round keys of one master key. It is never
// modified after ExpandKey returns and can be shared by concurrent encryptions.
type ExpandedKey[B any] struct {
	roundKeys [Rounds + 1]RoundKey[B]
}

// RoundKey returns a copy of round key i
func (k *ExpandedKey[B]) RoundKey(i int) RoundKey[B] {
	return k.roundKeys[i]
}

// NumRoundKeys returns Rounds+1
func (k *ExpandedKey[B]) NumRoundKeys() int {
	return len(k.roundKeys)
}

type word[B any] [4]B

// ExpandKey runs the AES-128 key schedule on an encrypted master key
func (he *HEAES[B, C]) ExpandKey(key []B) (*ExpandedKey[B], error) {
	if len(key) != FHEAES.KeySize {
		return nil, fmt.Errorf("%w: got %d encrypted bytes, want %d", FHEAES.ErrInvalidKeySize, len(key), FHEAES.KeySize)
	}

	var w [numWords]word[B]
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}
	for i := nk; i < numWords; i++ {
		temp := w[i-1]
		if i%nk == 0 {
			FHEAES.RotateSlice(temp[:], 1)
			if err := he.pool.run(len(temp), func(j int, eval fhe.Evaluator[B, C]) (err error) {
				temp[j], err = Substitute(eval, temp[j])
				return err
			}); err != nil {
				return nil, err
			}
			rcon := symaes.RCon[i/nk-1]
			if err := he.pool.run(1, func(_ int, eval fhe.Evaluator[B, C]) (err error) {
				temp[0], err = eval.Xor(temp[0], eval.Trivial(rcon))
				return err
			}); err != nil {
				return nil, err
			}
		}
		if err := he.pool.run(len(temp), func(j int, eval fhe.Evaluator[B, C]) (err error) {
			w[i][j], err = eval.Xor(w[i-nk][j], temp[j])
			return err
		}); err != nil {
			return nil, err
		}
	}
	he.logger.PrintFormatted("key schedule: %d words", numWords)

	expanded := new(ExpandedKey[B])
	for i := range expanded.roundKeys {
		for col := 0; col < 4; col++ {
			for row := 0; row < 4; row++ {
				expanded.roundKeys[i][row*4+col] = w[i*4+col][row]
			}
		}
	}
	return expanded, nil
}
