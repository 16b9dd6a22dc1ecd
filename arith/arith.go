// Package arith implements the arbitrary-precision modular arithmetic
// RSA is built on: binary modular exponentiation, the extended Euclidean
// algorithm and modular inverses, Miller-Rabin primality testing, and
// prime candidate sampling.
//
// Values are math/big integers; the algorithms themselves are explicit
// rather than delegated to a cryptographic library. All functions are
// pure: they allocate fresh results and never mutate their arguments,
// so concurrent calls over independent values need no locking.
package arith

import (
	"errors"
	"io"
	"math/big"

	rsacore "github.com/BackendStack21/rsa-core-go"
	"github.com/BackendStack21/rsa-core-go/utils"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// ModPow computes base^exponent mod modulus by binary square-and-multiply:
// a running base is squared for every bit of the exponent and multiplied
// into the accumulator wherever the bit is set, reducing after every
// multiplication so intermediates stay below modulus squared.
//
// An exponent of 0 yields 1 mod modulus; a modulus of 1 yields 0.
// Returns ErrInvalidModulus when modulus <= 0. Negative exponents are
// not supported.
func ModPow(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, rsacore.ErrInvalidModulus
	}
	if exponent.Sign() < 0 {
		return nil, errors.New("exponent must be non-negative")
	}

	result := new(big.Int).Mod(one, modulus)
	running := new(big.Int).Mod(base, modulus)
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, running)
			result.Mod(result, modulus)
		}
		running.Mul(running, running)
		running.Mod(running, modulus)
	}
	return result, nil
}

// ExtendedGCD returns g = gcd(a, b) together with Bezout coefficients
// x, y satisfying a*x + b*y = g. It runs the iterative extended
// Euclidean algorithm; a and b must be non-negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Quo(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}
	return oldR, oldS, oldT
}

// ModInverse returns d such that a*d ≡ 1 (mod m), derived from the
// Bezout coefficient of ExtendedGCD. Returns ErrNoInverse when
// gcd(a, m) != 1, and ErrInvalidModulus when m <= 0.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, rsacore.ErrInvalidModulus
	}
	g, x, _ := ExtendedGCD(new(big.Int).Mod(a, m), m)
	if g.Cmp(one) != 0 {
		return nil, rsacore.ErrNoInverse
	}
	// big.Int.Mod is Euclidean, so the result is already in [0, m).
	return x.Mod(x, m), nil
}

// IsProbablyPrime reports whether n is prime using rounds iterations of
// the Miller-Rabin test with witnesses drawn from rand. True primes
// always pass; a composite survives all rounds with probability at most
// 4^-rounds. Values below 2 and even values above 2 are rejected
// without running any witness round.
func IsProbablyPrime(rand io.Reader, n *big.Int, rounds int) (bool, error) {
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(three) <= 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// Write n-1 = d * 2^s with d odd.
	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	for i := 0; i < rounds; i++ {
		a, err := randomWitness(rand, n)
		if err != nil {
			return false, err
		}
		x, err := ModPow(a, d, n)
		if err != nil {
			return false, err
		}
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}
		composite := true
		for j := 0; j < s-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false, nil
		}
	}
	return true, nil
}

// randomWitness samples a uniform Miller-Rabin witness in [2, n-2].
func randomWitness(rand io.Reader, n *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(n, three)
	a, err := utils.RandomBigIntBelow(rand, span)
	if err != nil {
		return nil, err
	}
	return a.Add(a, two), nil
}

// RandomOddInBitRange returns a uniformly distributed odd integer with
// exactly bits significant bits: the top bit is forced so the value has
// the full bit length, and the bottom bit is forced so it is odd.
func RandomOddInBitRange(rand io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("bit length must be at least 2")
	}
	nBytes := (bits + 7) / 8
	buf := make([]byte, nBytes)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, err
	}
	buf[0] &= byte(0xFF >> (8*nBytes - bits))
	candidate := new(big.Int).SetBytes(buf)
	candidate.SetBit(candidate, bits-1, 1)
	candidate.SetBit(candidate, 0, 1)
	utils.Zeroize(buf)
	return candidate, nil
}
