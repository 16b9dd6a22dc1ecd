// Package core provides parameter sets and validation for rsa-core-go.
package core

import (
	"errors"
	"fmt"

	rsacore "github.com/BackendStack21/rsa-core-go"
)

// DefaultExponent is the conventional RSA public exponent.
const DefaultExponent = 65537

// MinModulusBits is the smallest modulus bit length key generation
// accepts. Anything below it fails fast instead of looping on a prime
// search that cannot succeed; below 32 bits the totient can drop under
// the default public exponent. Real deployments should stay at 512 bits
// or above; see the KeySize levels.
const MinModulusBits = 32

// Params describes one key generation run.
type Params struct {
	Level rsacore.KeySize `json:"level,omitempty"`
	// Bits is the target bit length of the modulus n. Each prime gets
	// half of it.
	Bits int `json:"bits"`
	// PublicExponent is e. It must be odd and at least 3.
	PublicExponent int64 `json:"public_exponent"`
	// MillerRabinRounds bounds the false-positive probability of the
	// primality test by 4^-rounds.
	MillerRabinRounds int `json:"miller_rabin_rounds"`
	// PrimeAttempts bounds the candidate search per prime. Expected
	// attempts grow linearly with the bit length, so the default leaves
	// a wide margin.
	PrimeAttempts int `json:"prime_attempts"`
	// ExponentRetries bounds how often the primes are resampled when
	// gcd(e, phi) != 1.
	ExponentRetries int `json:"exponent_retries"`
}

// RSA512Params is the parameter set for a 512-bit modulus.
var RSA512Params = paramsForLevel(rsacore.RSA512, 512)

// RSA1024Params is the parameter set for a 1024-bit modulus.
var RSA1024Params = paramsForLevel(rsacore.RSA1024, 1024)

// RSA2048Params is the parameter set for a 2048-bit modulus.
var RSA2048Params = paramsForLevel(rsacore.RSA2048, 2048)

// RSA3072Params is the parameter set for a 3072-bit modulus.
var RSA3072Params = paramsForLevel(rsacore.RSA3072, 3072)

func paramsForLevel(level rsacore.KeySize, bits int) Params {
	p := ParamsForBits(bits)
	p.Level = level
	return p
}

// ParamsForBits returns a parameter set for a custom modulus bit length
// with the default public exponent and search bounds.
func ParamsForBits(bits int) Params {
	return Params{
		Bits:              bits,
		PublicExponent:    DefaultExponent,
		MillerRabinRounds: 24,
		PrimeAttempts:     64 * bits,
		ExponentRetries:   8,
	}
}

// GetParams returns the parameter set for the given key size level.
func GetParams(level rsacore.KeySize) (Params, error) {
	switch level {
	case rsacore.RSA512:
		return RSA512Params, nil
	case rsacore.RSA1024:
		return RSA1024Params, nil
	case rsacore.RSA2048:
		return RSA2048Params, nil
	case rsacore.RSA3072:
		return RSA3072Params, nil
	default:
		return Params{}, fmt.Errorf("unknown key size level: %s", level)
	}
}

// ValidateParams checks that a parameter set is usable for key
// generation.
func ValidateParams(p Params) error {
	if p.Bits < MinModulusBits {
		return fmt.Errorf("modulus bit length %d below minimum %d", p.Bits, MinModulusBits)
	}
	if p.PublicExponent < 3 {
		return errors.New("public exponent must be at least 3")
	}
	if p.PublicExponent%2 == 0 {
		return errors.New("public exponent must be odd")
	}
	if p.MillerRabinRounds < 1 {
		return errors.New("miller-rabin rounds must be positive")
	}
	if p.PrimeAttempts < 1 {
		return errors.New("prime attempts must be positive")
	}
	if p.ExponentRetries < 0 {
		return errors.New("exponent retries must be non-negative")
	}
	return nil
}
