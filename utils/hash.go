package utils

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// SHA3256 computes the SHA3-256 cryptographic hash of the input.
// It returns a 32-byte hash.
func SHA3256(input []byte) []byte {
	h := sha3.New256()
	h.Write(input)
	return h.Sum(nil)
}

// HashConcat computes the SHA3-256 hash of the concatenation of multiple
// byte slices. Each slice is prefixed with its length (4 bytes,
// big-endian) so distinct splits of the same bytes cannot collide.
func HashConcat(inputs ...[]byte) []byte {
	h := sha3.New256()
	lenBytes := make([]byte, 4)
	for _, input := range inputs {
		l := len(input)
		lenBytes[0] = byte(l >> 24)
		lenBytes[1] = byte(l >> 16)
		lenBytes[2] = byte(l >> 8)
		lenBytes[3] = byte(l)
		h.Write(lenBytes)
		h.Write(input)
	}
	return h.Sum(nil)
}

// NewShakeReader returns a reader producing an unbounded deterministic
// byte stream derived from seed via the SHAKE256 extendable output
// function. Every call returns an independent stream, so concurrent
// callers each get their own; a single reader is not safe for
// concurrent use.
func NewShakeReader(seed []byte) io.Reader {
	h := sha3.NewShake256()
	h.Write(seed)
	return h
}
