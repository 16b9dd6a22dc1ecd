// Package test provides integration tests for the rsa-core-go
// implementation. These tests exercise the full key lifecycle across
// packages: generation, serialization, encryption, and decryption.
package test

import (
	"bytes"
	"math/big"
	"testing"

	rsacore "github.com/BackendStack21/rsa-core-go"
	"github.com/BackendStack21/rsa-core-go/cipher"
	"github.com/BackendStack21/rsa-core-go/core"
	"github.com/BackendStack21/rsa-core-go/keygen"
	"github.com/BackendStack21/rsa-core-go/keyio"
	"github.com/BackendStack21/rsa-core-go/utils"
)

func TestKeyLifecycle(t *testing.T) {
	levels := []rsacore.KeySize{rsacore.RSA512, rsacore.RSA1024}

	for _, level := range levels {
		t.Run(string(level), func(t *testing.T) {
			params, err := core.GetParams(level)
			if err != nil {
				t.Fatalf("GetParams failed: %v", err)
			}

			kp, err := keygen.GenerateKeyPair(params)
			if err != nil {
				t.Fatalf("GenerateKeyPair failed: %v", err)
			}
			if bits := kp.Bits(); bits != params.Bits && bits != params.Bits-1 {
				t.Errorf("modulus bit length = %d, want %d or %d", bits, params.Bits, params.Bits-1)
			}

			// Key relation invariant.
			check := new(big.Int).Mul(kp.PublicKey.E, kp.PrivateKey.D)
			check.Mod(check, kp.Phi())
			if check.Cmp(big.NewInt(1)) != 0 {
				t.Errorf("e*d mod phi = %v, want 1", check)
			}

			// Serialize both halves and work with the imported copies only.
			pubDoc, err := keyio.ExportPublicKey(&kp.PublicKey)
			if err != nil {
				t.Fatalf("ExportPublicKey failed: %v", err)
			}
			privDoc, err := keyio.ExportPrivateKey(&kp.PrivateKey)
			if err != nil {
				t.Fatalf("ExportPrivateKey failed: %v", err)
			}

			pub, err := keyio.ImportPublicKey(pubDoc)
			if err != nil {
				t.Fatalf("ImportPublicKey failed: %v", err)
			}
			priv, err := keyio.ImportPrivateKey(privDoc)
			if err != nil {
				t.Fatalf("ImportPrivateKey failed: %v", err)
			}

			if !utils.ConstantTimeEqual(keyio.Fingerprint(pub), keyio.Fingerprint(&kp.PublicKey)) {
				t.Error("fingerprint changed across export/import")
			}

			message := []byte("integration round trip")
			ciphertext, err := cipher.Encrypt(pub, message)
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}
			recovered, err := cipher.Decrypt(priv, ciphertext)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}
			if !bytes.Equal(recovered, message) {
				t.Errorf("recovered %q, want %q", recovered, message)
			}
		})
	}
}

func TestDeterministicGeneration(t *testing.T) {
	seed, err := utils.SecureRandomBytes(32)
	if err != nil {
		t.Fatalf("sampling seed: %v", err)
	}
	params := core.ParamsForBits(512)

	kp1, err := keygen.GenerateKeyPairFromSeed(params, seed)
	if err != nil {
		t.Fatalf("GenerateKeyPairFromSeed failed: %v", err)
	}
	kp2, err := keygen.GenerateKeyPairFromSeed(params, seed)
	if err != nil {
		t.Fatalf("GenerateKeyPairFromSeed failed: %v", err)
	}

	if !utils.ConstantTimeEqual(keyio.Fingerprint(&kp1.PublicKey), keyio.Fingerprint(&kp2.PublicKey)) {
		t.Error("same seed produced different public keys")
	}
	if kp1.PrivateKey.D.Cmp(kp2.PrivateKey.D) != 0 {
		t.Error("same seed produced different private exponents")
	}
}

func TestCrossKeyDecryptionFails(t *testing.T) {
	kpA, err := keygen.Generate(512)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	kpB, err := keygen.Generate(512)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	message := []byte("addressed to A")
	ciphertext, err := cipher.Encrypt(&kpA.PublicKey, message)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Decrypting under the wrong key either errors (ciphertext >= n) or
	// produces garbage; it must never recover the plaintext.
	recovered, err := cipher.Decrypt(&kpB.PrivateKey, ciphertext)
	if err == nil && bytes.Equal(recovered, message) {
		t.Error("foreign key recovered the plaintext")
	}
}

func TestEncryptBoundaries(t *testing.T) {
	kp, err := keygen.Generate(512)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// The modulus itself, encoded as bytes, must be rejected.
	if _, err := cipher.Encrypt(&kp.PublicKey, kp.PublicKey.N.Bytes()); err == nil {
		t.Error("encrypting a message equal to n should fail")
	}

	if _, err := cipher.Decrypt(&kp.PrivateKey, kp.PublicKey.N); err == nil {
		t.Error("decrypting a ciphertext equal to n should fail")
	}
}
