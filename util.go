package FHEAES

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// DecodeKey parses a 32 character hex string into an AES-128 key
func DecodeKey(s string) (Key, error) {
	data, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(data) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(data), KeySize)
	}
	return data, nil
}

// DecodeBlock parses a 32 character hex string into a single block
func DecodeBlock(s string) (Block, error) {
	data, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(data) != BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidBlockSize, len(data), BlockSize)
	}
	return data, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex %q: %w", s, err)
	}
	return data, nil
}

// DeriveBlock squeezes size bytes out of SHAKE128(seed || label)
func DeriveBlock(seed []byte, label string, size int) []byte {
	shake := sha3.NewShake128()
	if _, err := shake.Write(seed); err != nil {
		panic(err)
	}
	if _, err := shake.Write([]byte(label)); err != nil {
		panic(err)
	}
	out := make([]byte, size)
	if _, err := shake.Read(out); err != nil {
		panic(err)
	}
	return out
}

// RotateSlice rotates a slice to the left by the given offset, in place
func RotateSlice[E any](slice []E, offset int) {
	l := len(slice)
	if l == 0 {
		return
	}

	// Normalize offset to be within the slice's length
	offset %= l
	if offset < 0 {
		offset += l
	}
	// Rotate the slice elements
	Reverse(slice[:offset])
	Reverse(slice[offset:])
	Reverse(slice)
}

// Reverse to reverse a slice
func Reverse[E any](slice []E) {
	for i, j := 0, len(slice)-1; i < j; i, j = i+1, j-1 {
		slice[i], slice[j] = slice[j], slice[i]
	}
}
