// Package piiutil masks contact details before they reach logs.
package piiutil

import (
	"strings"
	"unicode"
)

// MaskEmail masks the local-part of an e-mail, keeping its first and last rune.
//
//	"deepanshu@example.com" -> "d*******u@example.com"
//	"ab@example.com"        -> "a*@example.com"
//	"u@example.com"         -> "u@example.com"
//	"weird"                 -> "w***d"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return maskMiddle([]rune(email))
	}
	return maskMiddle([]rune(email[:at])) + email[at:]
}

// MaskPhone keeps the last 4 digits (or the last one when there are at most 4)
// and preserves separators.
//
//	"9876543210"  -> "******3210"
//	"+91 98765"   -> "+** *8765"
//	"123"         -> "**3"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	total := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			total++
		}
	}

	keep := 4
	if total <= 4 {
		keep = 1
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}

// maskMiddle keeps the first and last rune; two runes keep only the first.
func maskMiddle(runes []rune) string {
	n := len(runes)
	switch n {
	case 0, 1:
		return string(runes)
	case 2:
		return string(runes[0]) + "*"
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteRune(runes[0])
	b.WriteString(strings.Repeat("*", n-2))
	b.WriteRune(runes[n-1])
	return b.String()
}
