// Package keygen produces RSA key pairs on top of the arith layer.
package keygen

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	rsacore "github.com/BackendStack21/rsa-core-go"
	"github.com/BackendStack21/rsa-core-go/arith"
	"github.com/BackendStack21/rsa-core-go/core"
	"github.com/BackendStack21/rsa-core-go/utils"
)

// Generate produces a key pair whose modulus has the given bit length,
// using the default parameter knobs and the library randomness source.
func Generate(bits int) (*rsacore.KeyPair, error) {
	return GenerateKeyPair(core.ParamsForBits(bits))
}

// GenerateKeyPair produces a key pair for the given parameters using
// the library randomness source.
func GenerateKeyPair(params core.Params) (*rsacore.KeyPair, error) {
	return generate(utils.RandReader, params)
}

// GenerateKeyPairFromSeed derives a key pair deterministically from
// seed via a SHAKE256 byte stream: the same seed and parameters always
// yield the same key pair. Intended for reproducible tests, not for
// production keys unless the seed itself is high-entropy and secret.
func GenerateKeyPairFromSeed(params core.Params, seed []byte) (*rsacore.KeyPair, error) {
	if err := utils.ValidateSeedEntropy(seed); err != nil {
		return nil, err
	}
	return generate(utils.NewShakeReader(seed), params)
}

func generate(rand io.Reader, params core.Params) (*rsacore.KeyPair, error) {
	if err := core.ValidateParams(params); err != nil {
		return nil, err
	}

	e := big.NewInt(params.PublicExponent)
	one := big.NewInt(1)
	pBits := params.Bits / 2
	qBits := params.Bits - pBits

	for retry := 0; retry <= params.ExponentRetries; retry++ {
		p, err := findPrime(rand, pBits, params)
		if err != nil {
			return nil, err
		}
		q, err := findPrime(rand, qBits, params)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			// Identical primes would expose the modulus to a trivial
			// square-root factorization. Resample both.
			continue
		}

		phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
		if e.Cmp(phi) >= 0 {
			return nil, fmt.Errorf("public exponent %d not below totient of a %d-bit modulus", params.PublicExponent, params.Bits)
		}

		d, err := arith.ModInverse(e, phi)
		if errors.Is(err, rsacore.ErrNoInverse) {
			// gcd(e, phi) != 1; rare, but must be handled by resampling.
			continue
		}
		if err != nil {
			return nil, err
		}

		n := new(big.Int).Mul(p, q)
		return &rsacore.KeyPair{
			PublicKey:  rsacore.PublicKey{E: e, N: n},
			PrivateKey: rsacore.PrivateKey{D: d, N: n},
			P:          p,
			Q:          q,
		}, nil
	}
	return nil, fmt.Errorf("%w: exponent %d not coprime to the totient after %d retries",
		rsacore.ErrKeyGenExhausted, params.PublicExponent, params.ExponentRetries)
}

// findPrime samples random odd candidates of the given bit length until
// one passes Miller-Rabin, within the configured attempt bound.
func findPrime(rand io.Reader, bits int, params core.Params) (*big.Int, error) {
	for attempt := 0; attempt < params.PrimeAttempts; attempt++ {
		candidate, err := arith.RandomOddInBitRange(rand, bits)
		if err != nil {
			return nil, err
		}
		ok, err := arith.IsProbablyPrime(rand, candidate, params.MillerRabinRounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: no %d-bit prime found in %d attempts",
		rsacore.ErrKeyGenExhausted, bits, params.PrimeAttempts)
}
