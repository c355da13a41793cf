// Package fhe defines the encrypted byte operations the homomorphic AES
// evaluator is built from. B is an encrypted byte and C an encrypted bit.
package fhe

import "fmt"

// Evaluator is the set of operations on encrypted bytes. Implementations are not
// required to be safe for concurrent use.
type Evaluator[B, C any] interface {
	// Trivial returns a noiseless encryption of a public byte
	Trivial(v uint8) B
	// Equal returns an encryption of a == b
	Equal(a, b B) (C, error)
	// Select returns a if c holds true, b otherwise
	Select(c C, a, b B) (B, error)
	// Xor is addition in GF(2^8)
	Xor(a, b B) (B, error)
	// MulConst multiplies by a public constant modulo 256
	MulConst(a B, k uint8) (B, error)
	// ShiftLeft and ShiftRight move bits by a public amount, bits moved out are
	// dropped
	ShiftLeft(a B, k int) (B, error)
	ShiftRight(a B, k int) (B, error)
	// AndConst masks a with a public byte
	AndConst(a B, k uint8) (B, error)
	// ShallowCopy returns an evaluator sharing the evaluation keys that can be
	// used concurrently with the receiver
	ShallowCopy() Evaluator[B, C]
}

// Encryptor encrypts plaintext bytes for an evaluator
type Encryptor[B any] interface {
	EncryptByte(v uint8) (B, error)
}

// Decryptor recovers plaintext bytes, it needs the secret key
type Decryptor[B any] interface {
	DecryptByte(ct B) uint8
}

// EncryptBytes encrypts every byte of data
func EncryptBytes[B any](enc Encryptor[B], data []byte) ([]B, error) {
	cts := make([]B, len(data))
	for i, v := range data {
		ct, err := enc.EncryptByte(v)
		if err != nil {
			return nil, fmt.Errorf("encrypt byte %d: %w", i, err)
		}
		cts[i] = ct
	}
	return cts, nil
}

// DecryptBytes decrypts every ciphertext of cts
func DecryptBytes[B any](dec Decryptor[B], cts []B) []byte {
	data := make([]byte, len(cts))
	for i, ct := range cts {
		data[i] = dec.DecryptByte(ct)
	}
	return data
}

// CheckShift validates a public shift amount
func CheckShift(k int) error {
	if k < 0 {
		return fmt.Errorf("negative shift amount %d", k)
	}
	return nil
}
