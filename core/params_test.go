package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rsacore "github.com/BackendStack21/rsa-core-go"
)

func TestGetParams(t *testing.T) {
	levels := map[rsacore.KeySize]int{
		rsacore.RSA512:  512,
		rsacore.RSA1024: 1024,
		rsacore.RSA2048: 2048,
		rsacore.RSA3072: 3072,
	}
	for level, bits := range levels {
		params, err := GetParams(level)
		require.NoError(t, err)
		assert.Equal(t, level, params.Level)
		assert.Equal(t, bits, params.Bits)
		assert.EqualValues(t, DefaultExponent, params.PublicExponent)
		assert.NoError(t, ValidateParams(params))
	}

	_, err := GetParams("RSA-9000")
	assert.Error(t, err)
}

func TestParamsForBits(t *testing.T) {
	params := ParamsForBits(768)
	assert.Equal(t, 768, params.Bits)
	assert.Empty(t, params.Level)
	assert.NoError(t, ValidateParams(params))
}

func TestValidateParams(t *testing.T) {
	valid := ParamsForBits(512)

	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"bits below minimum", func(p *Params) { p.Bits = 8 }},
		{"even exponent", func(p *Params) { p.PublicExponent = 4 }},
		{"exponent too small", func(p *Params) { p.PublicExponent = 1 }},
		{"zero rounds", func(p *Params) { p.MillerRabinRounds = 0 }},
		{"zero attempts", func(p *Params) { p.PrimeAttempts = 0 }},
		{"negative retries", func(p *Params) { p.ExponentRetries = -1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := valid
			c.mutate(&p)
			assert.Error(t, ValidateParams(p))
		})
	}

	assert.NoError(t, ValidateParams(valid))
}
