// Package rsacore implements the RSA public-key cryptosystem from first
// principles: arbitrary-precision modular arithmetic, probabilistic prime
// generation, and textbook encryption and decryption.
//
// WARNING: this library implements textbook RSA. Encryption is deterministic
// and applies no padding scheme, so it is NOT semantically secure. DO NOT
// use it in production systems protecting sensitive data.
package rsacore

import "math/big"

// KeySize selects a modulus bit length for key generation.
type KeySize string

const (
	// RSA512 produces a 512-bit modulus. The practical minimum; weak by
	// modern standards and suitable for tests and demonstrations only.
	RSA512 KeySize = "RSA-512"
	// RSA1024 produces a 1024-bit modulus.
	RSA1024 KeySize = "RSA-1024"
	// RSA2048 produces a 2048-bit modulus.
	RSA2048 KeySize = "RSA-2048"
	// RSA3072 produces a 3072-bit modulus.
	RSA3072 KeySize = "RSA-3072"
)

// PublicKey is the encryption half of an RSA key pair: the public
// exponent e and the modulus n.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the decryption half of an RSA key pair: the private
// exponent d and the modulus n.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyPair holds both halves of a generated key pair together with the
// secret primes p and q that produced the modulus. The primes are
// retained so callers can verify the key relation e*d ≡ 1 (mod (p-1)(q-1));
// they must be kept as secret as the private exponent itself.
//
// A KeyPair is immutable after generation. The library never zeroes key
// material on its own; callers needing secure erasure must handle it.
type KeyPair struct {
	PublicKey  PublicKey
	PrivateKey PrivateKey
	P          *big.Int
	Q          *big.Int
}

// Phi returns Euler's totient of the modulus, (p-1)*(q-1).
func (kp *KeyPair) Phi() *big.Int {
	one := big.NewInt(1)
	pMinus := new(big.Int).Sub(kp.P, one)
	qMinus := new(big.Int).Sub(kp.Q, one)
	return pMinus.Mul(pMinus, qMinus)
}

// Bits returns the bit length of the modulus.
func (kp *KeyPair) Bits() int {
	return kp.PublicKey.N.BitLen()
}
