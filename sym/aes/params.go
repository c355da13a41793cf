package aes

// Parameter for the AES block cipher, sizes in bytes
type Parameter struct {
	KeySize   int
	BlockSize int
	Rounds    int
}

// AES128 is the only key size the homomorphic evaluator supports
var AES128 = Parameter{
	KeySize:   16,
	BlockSize: 16,
	Rounds:    10,
}

// GetKeySize returns the secret key size in bytes
func (params Parameter) GetKeySize() int {
	return params.KeySize
}

// GetBlockSize returns the block size in bytes
func (params Parameter) GetBlockSize() int {
	return params.BlockSize
}

// GetRounds return rounds
func (params Parameter) GetRounds() int {
	return params.Rounds
}

// GetNumWords returns the number of 4-byte words in the expanded key
func (params Parameter) GetNumWords() int {
	return 4 * (params.Rounds + 1)
}
