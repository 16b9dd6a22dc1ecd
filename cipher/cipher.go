// Package cipher implements textbook RSA encryption and decryption.
//
// Encryption is deterministic: the same message under the same key
// always produces the same ciphertext. No padding scheme is applied, so
// the transform is not semantically secure; this is the documented
// textbook behavior, preserved faithfully rather than "improved".
package cipher

import (
	"math/big"

	rsacore "github.com/BackendStack21/rsa-core-go"
	"github.com/BackendStack21/rsa-core-go/arith"
)

// EncodeMessage interprets message as a big-endian unsigned integer
// magnitude.
func EncodeMessage(message []byte) *big.Int {
	return new(big.Int).SetBytes(message)
}

// DecodeMessage converts m back to its big-endian byte representation.
//
// Leading zero bytes of the original message are not preserved: the
// integer encoding cannot distinguish "\x00abc" from "abc". Callers
// that need exact lengths must carry them out of band; this is an
// inherent limitation of the textbook byte-to-integer encoding.
func DecodeMessage(m *big.Int) []byte {
	return m.Bytes()
}

// MaxMessageLen returns the largest message length in bytes that is
// guaranteed to encode strictly below the modulus. Callers splitting a
// longer message into blocks should use this as the block size.
func MaxMessageLen(pub *rsacore.PublicKey) int {
	return (pub.N.BitLen() - 1) / 8
}

// Encrypt encodes message as an integer m and computes m^e mod n.
// Returns ErrMessageTooLarge when the encoded message is not strictly
// smaller than the modulus; the core performs no chunking.
func Encrypt(pub *rsacore.PublicKey, message []byte) (*big.Int, error) {
	m := EncodeMessage(message)
	if m.Cmp(pub.N) >= 0 {
		return nil, rsacore.ErrMessageTooLarge
	}
	return arith.ModPow(m, pub.E, pub.N)
}

// Decrypt computes ciphertext^d mod n and decodes the result back into
// bytes. Returns ErrCiphertextOutOfRange when the ciphertext is
// negative or not strictly smaller than the modulus, which indicates a
// corrupted or foreign ciphertext.
func Decrypt(priv *rsacore.PrivateKey, ciphertext *big.Int) ([]byte, error) {
	if ciphertext.Sign() < 0 || ciphertext.Cmp(priv.N) >= 0 {
		return nil, rsacore.ErrCiphertextOutOfRange
	}
	m, err := arith.ModPow(ciphertext, priv.D, priv.N)
	if err != nil {
		return nil, err
	}
	return DecodeMessage(m), nil
}
