// Package plain evaluates the encrypted byte interface on plaintext values and
// counts every primitive it is asked for. It has no security and exists to test
// circuits quickly and to measure their operation trace.
package plain

import (
	"FHEAES/fhe"
)

type Byte struct {
	v uint8
}

type Bit struct {
	v bool
}

type Evaluator struct {
	counter *Counter
}

func NewEvaluator() *Evaluator {
	return &Evaluator{counter: new(Counter)}
}

// Counter is shared by the evaluator and all its shallow copies
func (eval *Evaluator) Counter() *Counter {
	return eval.counter
}

func (eval *Evaluator) ShallowCopy() fhe.Evaluator[Byte, Bit] {
	return &Evaluator{counter: eval.counter}
}

func (eval *Evaluator) Trivial(v uint8) Byte {
	eval.counter.inc(OpTrivial)
	return Byte{v}
}

func (eval *Evaluator) Equal(a, b Byte) (Bit, error) {
	eval.counter.inc(OpEqual)
	return Bit{a.v == b.v}, nil
}

func (eval *Evaluator) Select(c Bit, a, b Byte) (Byte, error) {
	eval.counter.inc(OpSelect)
	if c.v {
		return a, nil
	}
	return b, nil
}

func (eval *Evaluator) Xor(a, b Byte) (Byte, error) {
	eval.counter.inc(OpXor)
	return Byte{a.v ^ b.v}, nil
}

func (eval *Evaluator) MulConst(a Byte, k uint8) (Byte, error) {
	eval.counter.inc(OpMulConst)
	return Byte{a.v * k}, nil
}

func (eval *Evaluator) ShiftLeft(a Byte, k int) (Byte, error) {
	eval.counter.inc(OpShiftLeft)
	if err := fhe.CheckShift(k); err != nil {
		return Byte{}, err
	}
	return Byte{a.v << k}, nil
}

func (eval *Evaluator) ShiftRight(a Byte, k int) (Byte, error) {
	eval.counter.inc(OpShiftRight)
	if err := fhe.CheckShift(k); err != nil {
		return Byte{}, err
	}
	return Byte{a.v >> k}, nil
}

func (eval *Evaluator) AndConst(a Byte, k uint8) (Byte, error) {
	eval.counter.inc(OpAndConst)
	return Byte{a.v & k}, nil
}

// Encryptor wraps plaintext bytes and counts them on the evaluator's counter
type Encryptor struct {
	counter *Counter
}

func NewEncryptor(eval *Evaluator) *Encryptor {
	return &Encryptor{counter: eval.counter}
}

func (enc *Encryptor) EncryptByte(v uint8) (Byte, error) {
	enc.counter.inc(OpEncrypt)
	return Byte{v}, nil
}

type Decryptor struct{}

func NewDecryptor() *Decryptor {
	return &Decryptor{}
}

func (dec *Decryptor) DecryptByte(ct Byte) uint8 {
	return ct.v
}

func (dec *Decryptor) DecryptBit(ct Bit) bool {
	return ct.v
}
