package rsacore

import "errors"

// Failure conditions surfaced by the arithmetic and protocol layers.
// All of them are local, deterministic errors the caller can inspect
// with errors.Is; none leaves partial state behind.
var (
	// ErrInvalidModulus indicates a modulus <= 0 was passed to modular
	// exponentiation.
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrNoInverse indicates a modular inverse was requested for a pair
	// with gcd(a, m) != 1, for which no inverse exists.
	ErrNoInverse = errors.New("no modular inverse exists")

	// ErrKeyGenExhausted indicates the prime search or the coprimality
	// retry loop exceeded its bound without success.
	ErrKeyGenExhausted = errors.New("key generation attempts exhausted")

	// ErrMessageTooLarge indicates the encoded message integer is not
	// strictly smaller than the modulus. Callers must chunk longer
	// messages themselves; the core does not.
	ErrMessageTooLarge = errors.New("message too large for modulus")

	// ErrCiphertextOutOfRange indicates a ciphertext integer >= modulus
	// was passed to decryption, which means it was corrupted or produced
	// under a different key.
	ErrCiphertextOutOfRange = errors.New("ciphertext out of range for modulus")
)
