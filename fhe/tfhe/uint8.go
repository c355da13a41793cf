package tfhe

import (
	"FHEAES/fhe"
)

// ShallowCopy returns an evaluator sharing keys and the bootstrap counter,
// with its own bootstrapping buffers
func (eval *Evaluator) ShallowCopy() fhe.Evaluator[Byte, Bit] {
	return eval.shallowCopy()
}

func (eval *Evaluator) Trivial(v uint8) (out Byte) {
	for i := range out {
		out[i] = Constant(v>>i&1 == 1)
	}
	return out
}

// Equal costs 8 XOR and 7 AND gates, minus the ones folded against public bits
func (eval *Evaluator) Equal(a, b Byte) (Bit, error) {
	var eq [8]Bit
	var err error
	for i := range eq {
		if eq[i], err = eval.XNOR(a[i], b[i]); err != nil {
			return Bit{}, err
		}
	}
	for width := len(eq); width > 1; width /= 2 {
		for i := 0; i < width/2; i++ {
			if eq[i], err = eval.AND(eq[2*i], eq[2*i+1]); err != nil {
				return Bit{}, err
			}
		}
	}
	return eq[0], nil
}

func (eval *Evaluator) Select(c Bit, a, b Byte) (out Byte, err error) {
	for i := range out {
		if out[i], err = eval.MUX(c, a[i], b[i]); err != nil {
			return out, err
		}
	}
	return out, nil
}

func (eval *Evaluator) Xor(a, b Byte) (out Byte, err error) {
	for i := range out {
		if out[i], err = eval.XOR(a[i], b[i]); err != nil {
			return out, err
		}
	}
	return out, nil
}

// ShiftLeft is rewiring, bits moved past the top are dropped
func (eval *Evaluator) ShiftLeft(a Byte, k int) (out Byte, err error) {
	if err = fhe.CheckShift(k); err != nil {
		return out, err
	}
	for i := range out {
		if i >= k {
			out[i] = a[i-k]
		} else {
			out[i] = Constant(false)
		}
	}
	return out, nil
}

func (eval *Evaluator) ShiftRight(a Byte, k int) (out Byte, err error) {
	if err = fhe.CheckShift(k); err != nil {
		return out, err
	}
	for i := range out {
		if i+k < len(a) {
			out[i] = a[i+k]
		} else {
			out[i] = Constant(false)
		}
	}
	return out, nil
}

func (eval *Evaluator) AndConst(a Byte, k uint8) (out Byte, err error) {
	for i := range out {
		if k>>i&1 == 1 {
			out[i] = a[i]
		} else {
			out[i] = Constant(false)
		}
	}
	return out, nil
}

// MulConst is shift and add over the set bits of k, modulo 256
func (eval *Evaluator) MulConst(a Byte, k uint8) (Byte, error) {
	acc := eval.Trivial(0)
	for j := 0; j < 8; j++ {
		if k>>j&1 == 0 {
			continue
		}
		shifted, err := eval.ShiftLeft(a, j)
		if err != nil {
			return acc, err
		}
		if acc, err = eval.add(acc, shifted); err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// add is a ripple-carry adder modulo 256
func (eval *Evaluator) add(a, b Byte) (out Byte, err error) {
	carry := Constant(false)
	for i := range out {
		var t, g, p Bit
		if t, err = eval.XOR(a[i], b[i]); err != nil {
			return out, err
		}
		if out[i], err = eval.XOR(t, carry); err != nil {
			return out, err
		}
		if i == len(out)-1 {
			break
		}
		if g, err = eval.AND(a[i], b[i]); err != nil {
			return out, err
		}
		if p, err = eval.AND(t, carry); err != nil {
			return out, err
		}
		if carry, err = eval.OR(g, p); err != nil {
			return out, err
		}
	}
	return out, nil
}
