package payment

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const messageMaxLen = 60

// SPDString assembles a Short Payment Descriptor for a CZK transfer, e.g.
//
//	SPD*1.0*ACC:CZ6508000000192000145399*AM:480.50*CC:CZK*MSG:ZALOHA*X-VS:2025001
//
// The amount is in whole CZK. The message is stripped of diacritics and
// characters the format does not allow, and the variable symbol keeps digits
// only. An empty message or variable symbol omits its field.
func SPDString(accountNumber string, amount int, variableSymbol, message string) (string, error) {
	iban := FormatAccountToIBAN(accountNumber)
	if iban == "" {
		return "", fmt.Errorf("payment: no bank account configured")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SPD*1.0*ACC:%s*AM:%.2f*CC:CZK", iban, float64(amount))

	if msg := sanitizeMessage(message); msg != "" {
		fmt.Fprintf(&b, "*MSG:%s", msg)
	}
	if vs := digitsOnly(variableSymbol); vs != "" {
		fmt.Fprintf(&b, "*X-VS:%s", vs)
	}
	return b.String(), nil
}

// sanitizeMessage strips diacritics by NFD decomposition, drops everything
// but letters, digits and spaces, and caps the result at 60 characters.
func sanitizeMessage(message string) string {
	decomposed := norm.NFD.String(message)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	msg := []rune(b.String())
	if len(msg) > messageMaxLen {
		msg = msg[:messageMaxLen]
	}
	return strings.TrimSpace(string(msg))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
