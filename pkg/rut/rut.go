// Package rut valida y normaliza el Rol Único Tributario chileno (módulo 11).
package rut

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrFormat      = errors.New("rut: formato inválido, use 12345678-K")
	ErrCheckDigit  = errors.New("rut: dígito verificador inválido")
	ErrPlaceholder = errors.New("rut: valor de relleno no permitido")
)

var rutPattern = regexp.MustCompile(`^\d{7,8}[0-9K]$`)

// clean quita puntos, guiones y espacios y pasa a mayúsculas.
func clean(s string) string {
	r := strings.NewReplacer(".", "", "-", "", " ", "")
	return strings.ToUpper(r.Replace(strings.TrimSpace(s)))
}

// CheckDigit calcula el dígito verificador del cuerpo numérico (sin DV).
// Multiplica de derecha a izquierda por 2..7 cíclico; 11 -> '0', 10 -> 'K'.
func CheckDigit(body string) byte {
	sum, mul := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * mul
		mul++
		if mul > 7 {
			mul = 2
		}
	}
	switch calc := 11 - sum%11; calc {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + calc)
	}
}

// Normalize valida el RUT (con o sin puntos/guion) y lo devuelve como "cuerpo-DV".
func Normalize(s string) (string, error) {
	v := clean(s)
	if !rutPattern.MatchString(v) {
		return "", ErrFormat
	}
	if v == "111111111" {
		return "", ErrPlaceholder
	}
	body, dv := v[:len(v)-1], v[len(v)-1]
	if CheckDigit(body) != dv {
		return "", ErrCheckDigit
	}
	return body + "-" + string(dv), nil
}

// Valid indica si s es un RUT válido.
func Valid(s string) bool {
	_, err := Normalize(s)
	return err == nil
}
