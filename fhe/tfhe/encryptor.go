package tfhe

import (
	tfhego "github.com/sp301415/tfhe-go/tfhe"
)

// lwe is an LWE sample of tfhe-go binary parameters
type lwe = tfhego.LWECiphertext[uint32]

// Bit is an encrypted boolean. Public bits carry no ciphertext and are folded
// by the gates.
type Bit struct {
	ct    lwe
	value bool
}

// Constant returns a public bit
func Constant(v bool) Bit {
	return Bit{value: v}
}

func (b Bit) IsPublic() bool {
	return b.ct.Value == nil
}

// Byte is eight bits, least significant first
type Byte [8]Bit

// Encryptor encrypts under a secret key. It shares the key's sampler and is
// not safe for concurrent use.
type Encryptor struct {
	sk *SecretKey
}

func NewEncryptor(sk *SecretKey) *Encryptor {
	return &Encryptor{sk: sk}
}

func (enc *Encryptor) EncryptBit(v bool) (Bit, error) {
	return Bit{ct: enc.sk.enc.EncryptLWEBool(v)}, nil
}

func (enc *Encryptor) EncryptByte(v uint8) (out Byte, err error) {
	for i := range out {
		if out[i], err = enc.EncryptBit(v>>i&1 == 1); err != nil {
			return out, err
		}
	}
	return out, nil
}

// Decryptor decrypts under the secret key, with the same restriction as
// Encryptor
type Decryptor struct {
	sk *SecretKey
}

func NewDecryptor(sk *SecretKey) *Decryptor {
	return &Decryptor{sk: sk}
}

func (dec *Decryptor) DecryptBit(b Bit) bool {
	if b.IsPublic() {
		return b.value
	}
	return dec.sk.enc.DecryptLWEBool(b.ct)
}

func (dec *Decryptor) DecryptByte(b Byte) (v uint8) {
	for i := range b {
		if dec.DecryptBit(b[i]) {
			v |= 1 << i
		}
	}
	return v
}
