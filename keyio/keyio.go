// Package keyio serializes RSA keys for storage and transport.
//
// Keys are exported as JSON documents holding base64-encoded big-endian
// integer magnitudes, one field per integer. The two integers of each
// key half are independently extractable; nothing beyond this format is
// mandated by the core.
package keyio

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"

	rsacore "github.com/BackendStack21/rsa-core-go"
	"github.com/BackendStack21/rsa-core-go/utils"
)

// PublicKeyExport is the JSON form of a public key.
type PublicKeyExport struct {
	E string `json:"e"`
	N string `json:"n"`
}

// PrivateKeyExport is the JSON form of a private key.
type PrivateKeyExport struct {
	D string `json:"d"`
	N string `json:"n"`
}

func encodeInt(z *big.Int) string {
	return base64.StdEncoding.EncodeToString(z.Bytes())
}

func decodeInt(field, s string) (*big.Int, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", field, err)
	}
	z := new(big.Int).SetBytes(raw)
	utils.Zeroize(raw)
	return z, nil
}

// ExportPublicKey encodes a public key as a JSON document.
func ExportPublicKey(pub *rsacore.PublicKey) ([]byte, error) {
	return json.Marshal(PublicKeyExport{E: encodeInt(pub.E), N: encodeInt(pub.N)})
}

// ImportPublicKey reconstructs a public key from its JSON document.
func ImportPublicKey(data []byte) (*rsacore.PublicKey, error) {
	var exp PublicKeyExport
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	e, err := decodeInt("e", exp.E)
	if err != nil {
		return nil, err
	}
	n, err := decodeInt("n", exp.N)
	if err != nil {
		return nil, err
	}
	return &rsacore.PublicKey{E: e, N: n}, nil
}

// ExportPrivateKey encodes a private key as a JSON document. The
// document contains the private exponent and must be protected
// accordingly.
func ExportPrivateKey(priv *rsacore.PrivateKey) ([]byte, error) {
	return json.Marshal(PrivateKeyExport{D: encodeInt(priv.D), N: encodeInt(priv.N)})
}

// ImportPrivateKey reconstructs a private key from its JSON document.
func ImportPrivateKey(data []byte) (*rsacore.PrivateKey, error) {
	var exp PrivateKeyExport
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	d, err := decodeInt("d", exp.D)
	if err != nil {
		return nil, err
	}
	n, err := decodeInt("n", exp.N)
	if err != nil {
		return nil, err
	}
	return &rsacore.PrivateKey{D: d, N: n}, nil
}

// Fingerprint returns the SHA3-256 digest identifying a public key.
// Both integers are bound with length prefixes so distinct (e, n) pairs
// cannot collide by concatenation.
func Fingerprint(pub *rsacore.PublicKey) []byte {
	return utils.HashConcat(pub.E.Bytes(), pub.N.Bytes())
}
