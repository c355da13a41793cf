package FHEAES

import "errors"

// KeySize and BlockSize are the AES-128 key and block lengths in bytes
const (
	KeySize   = 16
	BlockSize = 16
)

type Key []byte
type Block []byte

var (
	ErrInvalidKeySize   = errors.New("invalid key size")
	ErrInvalidBlockSize = errors.New("invalid block size")
)
