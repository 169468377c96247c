// Package taxid validates and formats Brazilian national tax identifiers.
//
// Two identifier kinds are supported:
//
//   - CPF: 11 digits (9 base digits + 2 check digits) for natural persons,
//     masked as ddd.ddd.ddd-dd
//   - CNPJ: 14 digits (12 base digits + 2 check digits) for legal entities,
//     masked as dd.ddd.ddd/dddd-dd
//
// Every function is pure. Malformed input never panics; validators simply
// return false.
package taxid

import "strings"

const (
	CPFLength  = 11
	CNPJLength = 14
)

// Punctuation accepted inside a masked identifier.
const (
	cpfPunctuation  = ".-"
	cnpjPunctuation = "./-"
)

var (
	cpfFirstWeights   = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfSecondWeights  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCPF reports whether s is a valid CPF, masked or not.
// Characters other than digits, '.' and '-' make it invalid, as do a digit
// count other than 11 and a run of 11 identical digits.
func ValidateCPF(s string) bool {
	digits, ok := onlyDigits(s, cpfPunctuation)
	if !ok || len(digits) != CPFLength || repeated(digits) {
		return false
	}
	return checkDigit(digits[:9], cpfFirstWeights) == digits[9] &&
		checkDigit(digits[:10], cpfSecondWeights) == digits[10]
}

// ValidateCNPJ reports whether s is a valid CNPJ, masked or not.
// Same rules as ValidateCPF with 14 digits and '/' also allowed.
func ValidateCNPJ(s string) bool {
	digits, ok := onlyDigits(s, cnpjPunctuation)
	if !ok || len(digits) != CNPJLength || repeated(digits) {
		return false
	}
	return checkDigit(digits[:12], cnpjFirstWeights) == digits[12] &&
		checkDigit(digits[:13], cnpjSecondWeights) == digits[13]
}

// MaskCPF formats an unmasked CPF as ddd.ddd.ddd-dd.
//
// Punctuation is inserted by position after the 3rd, 6th and 9th digit, so
// input of the wrong length is still formatted (and later fails validation):
// short input yields empty groups ("123456" becomes "123.456.-") and digits
// past the 11th stay in the last group. Input that already contains
// punctuation is returned unchanged, which makes MaskCPF idempotent.
func MaskCPF(s string) string {
	if HasPunctuation(s) {
		return s
	}
	return slice(s, 0, 3) + "." + slice(s, 3, 6) + "." + slice(s, 6, 9) + "-" + slice(s, 9, len(s))
}

// MaskCNPJ formats an unmasked CNPJ as dd.ddd.ddd/dddd-dd.
// Idempotent in the same way as MaskCPF.
func MaskCNPJ(s string) string {
	if HasPunctuation(s) {
		return s
	}
	return slice(s, 0, 2) + "." + slice(s, 2, 5) + "." + slice(s, 5, 8) + "/" + slice(s, 8, 12) + "-" + slice(s, 12, len(s))
}

// HasPunctuation reports whether s contains any mask character.
func HasPunctuation(s string) bool {
	return strings.ContainsAny(s, cnpjPunctuation)
}

// Digits returns s with every non-digit character removed.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// onlyDigits strips allowed punctuation and returns the digit values.
// ok is false when s contains anything else.
func onlyDigits(s, allowed string) ([]int, bool) {
	digits := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
			digits = append(digits, int(c-'0'))
		case strings.IndexByte(allowed, c) >= 0:
		default:
			return nil, false
		}
	}
	return digits, true
}

// checkDigit computes a mod-11 check digit: remainders below 2 give 0,
// anything else gives 11 minus the remainder.
func checkDigit(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func repeated(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// slice is s[from:to] clamped to the bounds of s.
func slice(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
