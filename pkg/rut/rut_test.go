package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulceria-lilis/pkg/rut"
)

func TestNormalize_Validos(t *testing.T) {
	cases := map[string]string{
		"12.345.678-5": "12345678-5",
		"12345678-5":   "12345678-5",
		"123456785":    "12345678-5",
		"7.654.321-6":  "7654321-6",
		"76.086.428-5": "76086428-5",
		"11.111.112-k": "11111112-K",
	}
	for in, want := range cases {
		got, err := rut.Normalize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNormalize_DigitoIncorrecto(t *testing.T) {
	_, err := rut.Normalize("12.345.678-9")
	assert.ErrorIs(t, err, rut.ErrCheckDigit)
}

func TestNormalize_Formato(t *testing.T) {
	for _, in := range []string{"", "abc", "123-4", "12345678-X", "1234567890-1"} {
		_, err := rut.Normalize(in)
		assert.ErrorIs(t, err, rut.ErrFormat, in)
	}
}

func TestNormalize_Relleno(t *testing.T) {
	_, err := rut.Normalize("11.111.111-1")
	assert.ErrorIs(t, err, rut.ErrPlaceholder)
}

func TestCheckDigit(t *testing.T) {
	assert.Equal(t, byte('5'), rut.CheckDigit("12345678"))
	assert.Equal(t, byte('K'), rut.CheckDigit("11111112"))
}
