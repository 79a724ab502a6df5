// Package validation holds the input validation rules applied before a
// request reaches the services.
package validation

import (
	"strings"

	"flux/internal/errors"
)

// ErrInvalidDocument is returned for malformed or checksum-failing
// CPF/CNPJ values.
var ErrInvalidDocument = &errors.DomainError{
	Code:    "INVALID_DOCUMENT",
	Message: "invalid CPF or CNPJ",
}

// NormalizeDocument strips formatting from a CPF (11 digits) or CNPJ
// (14 digits), verifies its check digits and returns the bare digits.
func NormalizeDocument(document string) (string, error) {
	digits := stripNonDigits(document)
	switch len(digits) {
	case 11:
		if !validCPF(digits) {
			return "", ErrInvalidDocument
		}
	case 14:
		if !validCNPJ(digits) {
			return "", ErrInvalidDocument
		}
	default:
		return "", ErrInvalidDocument
	}
	return digits, nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func validCPF(digits string) bool {
	if allSame(digits) {
		return false
	}
	for _, pos := range []int{9, 10} {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(digits[i]-'0') * (pos + 1 - i)
		}
		check := sum * 10 % 11 % 10
		if check != int(digits[pos]-'0') {
			return false
		}
	}
	return true
}

func validCNPJ(digits string) bool {
	if allSame(digits) {
		return false
	}
	weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for _, pos := range []int{12, 13} {
		sum := 0
		offset := len(weights) - pos
		for i := 0; i < pos; i++ {
			sum += int(digits[i]-'0') * weights[offset+i]
		}
		check := sum % 11
		if check < 2 {
			check = 0
		} else {
			check = 11 - check
		}
		if check != int(digits[pos]-'0') {
			return false
		}
	}
	return true
}
