package aes

import (
	"FHEAES"
	"FHEAES/fhe"
	symaes "FHEAES/sym/aes"
)

// ShiftRows rotates row r left by r cells, it only moves ciphertexts
func ShiftRows[B any](s *State[B]) {
	for r := 1; r < 4; r++ {
		FHEAES.RotateSlice(s[r][:], r)
	}
}

// GaloisMul multiplies a by the public k in GF(2^8). The branches are on k
// only. The reduction of the doubled value is driven by its encrypted top bit,
// injected as topBit*0x1b instead of a branch.
func GaloisMul[B, C any](eval fhe.Evaluator[B, C], a B, k uint8) (B, error) {
	result := eval.Trivial(0)
	p := a
	for k != 0 {
		var err error
		if k&1 == 1 {
			if result, err = eval.Xor(result, p); err != nil {
				return result, err
			}
		}
		if k >>= 1; k == 0 {
			break
		}
		if p, err = xtime(eval, p); err != nil {
			return result, err
		}
	}
	return result, nil
}

// xtime returns 2*p in GF(2^8)
func xtime[B, C any](eval fhe.Evaluator[B, C], p B) (B, error) {
	hi, err := eval.ShiftRight(p, 7)
	if err != nil {
		return p, err
	}
	if hi, err = eval.AndConst(hi, 0x01); err != nil {
		return p, err
	}
	reduction, err := eval.MulConst(hi, symaes.ReductionConstant)
	if err != nil {
		return p, err
	}
	if p, err = eval.ShiftLeft(p, 1); err != nil {
		return p, err
	}
	return eval.Xor(p, reduction)
}

// mixColumn replaces column c by its product with the MixColumns matrix
func mixColumn[B, C any](eval fhe.Evaluator[B, C], s *State[B], c int) (err error) {
	// multiples[m][r] = m * s[r][c] for m in {1, 2, 3}
	var multiples [4][4]B
	for r := 0; r < 4; r++ {
		multiples[1][r] = s[r][c]
		if multiples[2][r], err = GaloisMul(eval, s[r][c], 2); err != nil {
			return err
		}
		if multiples[3][r], err = eval.Xor(multiples[2][r], multiples[1][r]); err != nil {
			return err
		}
	}
	for r := 0; r < 4; r++ {
		acc := multiples[symaes.MixMatrix[r][0]][0]
		for j := 1; j < 4; j++ {
			if acc, err = eval.Xor(acc, multiples[symaes.MixMatrix[r][j]][j]); err != nil {
				return err
			}
		}
		s[r][c] = acc
	}
	return nil
}

// MixColumns mixes the four columns with a single evaluator
func MixColumns[B, C any](eval fhe.Evaluator[B, C], s *State[B]) error {
	for c := 0; c < 4; c++ {
		if err := mixColumn(eval, s, c); err != nil {
			return err
		}
	}
	return nil
}

// AddRoundKey xors cell [r][c] with rk[r*4+c]
func AddRoundKey[B, C any](eval fhe.Evaluator[B, C], s *State[B], rk RoundKey[B]) (err error) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if s[r][c], err = eval.Xor(s[r][c], rk[r*4+c]); err != nil {
				return err
			}
		}
	}
	return nil
}
