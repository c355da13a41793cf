package tfhe

import (
	tfhego "github.com/sp301415/tfhe-go/tfhe"
)

// SecretKey holds the LWE and GLWE secret keys. tfhe-go samples them inside
// its encryptor, so the key is carried by that encryptor. It is not safe for
// concurrent use.
type SecretKey struct {
	enc *tfhego.BinaryEncryptor
}

// EvaluationKey is the public bootstrapping and key switching material
type EvaluationKey struct {
	evk tfhego.EvaluationKey[uint32]
}

// KeyGenerator samples the keys of one parameter set
type KeyGenerator struct {
	params Parameters
}

func NewKeyGenerator(params Parameters) *KeyGenerator {
	return &KeyGenerator{params: params}
}

// GenSecretKeyNew samples a fresh secret key
func (kg *KeyGenerator) GenSecretKeyNew() *SecretKey {
	return &SecretKey{enc: tfhego.NewBinaryEncryptor(kg.params.params)}
}

// GenEvaluationKeyNew generates the bootstrapping keys of sk on all cores.
// This dominates key generation time and memory.
func (kg *KeyGenerator) GenEvaluationKeyNew(sk *SecretKey) *EvaluationKey {
	return &EvaluationKey{evk: sk.enc.GenEvaluationKeyParallel()}
}
