package aes

import (
	"FHEAES"
	"encoding/hex"
)

type TestContext struct {
	Name          string
	Params        Parameter
	Key           FHEAES.Key
	Plaintext     FHEAES.Block
	ExpCipherText FHEAES.Block
	// LastRoundKey is w[40..43] in FIPS-197 word order, nil when not published
	LastRoundKey []byte
}

func fromHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// TestVector holds published AES-128 known answers
var TestVector = []TestContext{
	{
		Name:          "FIPS197-C1",
		Params:        AES128,
		Key:           fromHex("000102030405060708090a0b0c0d0e0f"),
		Plaintext:     fromHex("00112233445566778899aabbccddeeff"),
		ExpCipherText: fromHex("69c4e0d86a7b0430d8cdb78070b4c55a"),
	},
	{
		Name:          "FIPS197-B",
		Params:        AES128,
		Key:           fromHex("2b7e151628aed2a6abf7158809cf4f3c"),
		Plaintext:     fromHex("3243f6a8885a308d313198a2e0370734"),
		ExpCipherText: fromHex("3925841d02dc09fbdc118597196a0b32"),
		LastRoundKey:  fromHex("d014f9a8c9ee2589e13f0cc8b6630ca6"),
	},
	{
		Name:          "SP800-38A-ECB1",
		Params:        AES128,
		Key:           fromHex("2b7e151628aed2a6abf7158809cf4f3c"),
		Plaintext:     fromHex("6bc1bee22e409f96e93d7e117393172a"),
		ExpCipherText: fromHex("3ad77bb40d7a3660a89ecaf32466ef97"),
		LastRoundKey:  fromHex("d014f9a8c9ee2589e13f0cc8b6630ca6"),
	},
	{
		Name:          "ZeroKey",
		Params:        AES128,
		Key:           make(FHEAES.Key, 16),
		Plaintext:     make(FHEAES.Block, 16),
		ExpCipherText: fromHex("66e94bd4ef8a2c3b884cfa59ca342b2e"),
	},
}
