package aes

import (
	"FHEAES/fhe"
	symaes "FHEAES/sym/aes"
)

// LookUp returns table[b] for a hidden index b. It compares b with every
// index, keeps the matching entry through Select and folds all 256 guarded
// entries together with Xor, so the primitive trace is the same for every b.
func LookUp[B, C any](eval fhe.Evaluator[B, C], table *[256]byte, b B) (B, error) {
	zero := eval.Trivial(0)
	acc := zero
	for i := range table {
		match, err := eval.Equal(b, eval.Trivial(uint8(i)))
		if err != nil {
			return acc, err
		}
		guarded, err := eval.Select(match, eval.Trivial(table[i]), zero)
		if err != nil {
			return acc, err
		}
		if acc, err = eval.Xor(acc, guarded); err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// Substitute applies the AES S-box to an encrypted byte
func Substitute[B, C any](eval fhe.Evaluator[B, C], b B) (B, error) {
	return LookUp(eval, &symaes.SBox, b)
}

// SubBytes substitutes all 16 cells with a single evaluator
func SubBytes[B, C any](eval fhe.Evaluator[B, C], s *State[B]) (err error) {
	for r := range s {
		for c := range s[r] {
			if s[r][c], err = Substitute(eval, s[r][c]); err != nil {
				return err
			}
		}
	}
	return nil
}
