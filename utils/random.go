// Package utils provides randomness, hashing, and byte-handling helpers
// shared by the rsa-core-go packages.
package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"io"
	"math/big"
	"runtime"
)

// RandReader is the source of cryptographic randomness for the library.
// It defaults to crypto/rand, which relies on the operating system's
// CSPRNG, and can be swapped for a deterministic reader in tests.
var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes
// from RandReader.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(RandReader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// RandomBigIntBelow returns a uniformly distributed integer in [0, max)
// drawn from r. It uses rejection sampling to keep the distribution
// uniform: candidates are masked to the bit length of max-1 and redrawn
// until one falls below max.
func RandomBigIntBelow(r io.Reader, max *big.Int) (*big.Int, error) {
	if max.Sign() <= 0 {
		return nil, errors.New("max must be positive")
	}
	bits := max.BitLen()
	nBytes := (bits + 7) / 8
	mask := byte(0xFF >> (8*nBytes - bits))
	buf := make([]byte, nBytes)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(max) < 0 {
			Zeroize(buf)
			return v, nil
		}
	}
}

// ValidateSeedEntropy rejects obviously weak seeds before they are used
// for deterministic key generation. This is a sanity check, not a
// rigorous randomness test.
func ValidateSeedEntropy(seed []byte) error {
	if len(seed) < 32 {
		return errors.New("seed must be at least 32 bytes")
	}

	first := seed[0]
	allSame := true
	for _, b := range seed[1:] {
		if b != first {
			allSame = false
			break
		}
	}
	if allSame {
		return errors.New("seed has low entropy: all bytes are identical")
	}

	unique := make(map[byte]struct{})
	for _, b := range seed {
		unique[b] = struct{}{}
		if len(unique) >= 8 {
			break
		}
	}
	if len(unique) < 8 {
		return errors.New("seed has low entropy: insufficient byte diversity")
	}

	return nil
}

// ConstantTimeEqual compares two byte slices in constant time.
// It returns true if the slices are equal, false otherwise.
// This function leaks only the length of the slices.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zeroize overwrites a byte slice with zeros. It is used to clear
// intermediate key material from memory. runtime.KeepAlive prevents the
// compiler from eliminating the stores.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
