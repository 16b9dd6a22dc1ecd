package keyio

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rsacore "github.com/BackendStack21/rsa-core-go"
	"github.com/BackendStack21/rsa-core-go/core"
	"github.com/BackendStack21/rsa-core-go/keygen"
)

func testKeyPair(t *testing.T) *rsacore.KeyPair {
	t.Helper()
	kp, err := keygen.GenerateKeyPairFromSeed(core.ParamsForBits(256), []byte("keyio test fixture seed value..."))
	require.NoError(t, err)
	return kp
}

func TestPublicKeyRoundTrip(t *testing.T) {
	kp := testKeyPair(t)

	data, err := ExportPublicKey(&kp.PublicKey)
	require.NoError(t, err)

	imported, err := ImportPublicKey(data)
	require.NoError(t, err)
	assert.Zero(t, imported.E.Cmp(kp.PublicKey.E))
	assert.Zero(t, imported.N.Cmp(kp.PublicKey.N))
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	kp := testKeyPair(t)

	data, err := ExportPrivateKey(&kp.PrivateKey)
	require.NoError(t, err)

	imported, err := ImportPrivateKey(data)
	require.NoError(t, err)
	assert.Zero(t, imported.D.Cmp(kp.PrivateKey.D))
	assert.Zero(t, imported.N.Cmp(kp.PrivateKey.N))
}

func TestExportShape(t *testing.T) {
	kp := testKeyPair(t)

	data, err := ExportPublicKey(&kp.PublicKey)
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "e")
	assert.Contains(t, doc, "n")
	assert.Len(t, doc, 2)
}

func TestImportErrors(t *testing.T) {
	_, err := ImportPublicKey([]byte("not json"))
	assert.Error(t, err)

	_, err = ImportPublicKey([]byte(`{"e": "!!!", "n": ""}`))
	assert.Error(t, err)

	_, err = ImportPrivateKey([]byte(`{"d": "", "n": "%"}`))
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	kp := testKeyPair(t)

	fp1 := Fingerprint(&kp.PublicKey)
	fp2 := Fingerprint(&kp.PublicKey)
	assert.Len(t, fp1, 32)
	assert.Equal(t, fp1, fp2)

	other := &rsacore.PublicKey{E: big.NewInt(3), N: kp.PublicKey.N}
	assert.NotEqual(t, fp1, Fingerprint(other))

	// Length prefixes must keep shifted digit boundaries apart.
	a := &rsacore.PublicKey{E: big.NewInt(0x0102), N: big.NewInt(0x03)}
	b := &rsacore.PublicKey{E: big.NewInt(0x01), N: big.NewInt(0x0203)}
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}
