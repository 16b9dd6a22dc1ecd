// Package rsacore provides high-level exports for textbook RSA key
// generation, encryption, and decryption built on an explicit
// arbitrary-precision arithmetic layer.
package rsacore

// Re-export commonly used types at the package level.
// Users import the sub-packages directly for the operations.

// Version of the rsa-core-go implementation.
const Version = "1.0.0"

// API summary:
//
// Key generation:
//   - keygen.Generate(bits) - Generate a key pair with an n of the given bit length
//   - keygen.GenerateKeyPair(params) - Generate with explicit parameters
//   - keygen.GenerateKeyPairFromSeed(params, seed) - Deterministic generation for tests
//
// Encryption:
//   - cipher.Encrypt(pub, message) - Encrypt a byte message to a ciphertext integer
//   - cipher.Decrypt(priv, ciphertext) - Recover the message bytes
//
// Arithmetic:
//   - arith.ModPow(base, exp, mod) - Binary modular exponentiation
//   - arith.ModInverse(a, m) - Modular inverse via the extended Euclidean algorithm
//   - arith.IsProbablyPrime(rand, n, rounds) - Miller-Rabin primality test
//
// Serialization:
//   - keyio.ExportPublicKey / keyio.ImportPublicKey - JSON + base64 key documents
//   - keyio.Fingerprint(pub) - SHA3-256 public key fingerprint
//
// Parameters:
//   - core.GetParams(level) - Get parameters for a key size level
//   - RSA512 .. RSA3072 - Modulus bit length levels
