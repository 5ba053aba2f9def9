// Package payment builds Czech bank-transfer payment descriptors: IBAN
// conversion, SPD payment strings and their QR code rendering.
package payment

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	accountWithPrefix    = regexp.MustCompile(`^(\d+)-(\d+)/(\d+)$`)
	accountWithoutPrefix = regexp.MustCompile(`^(\d+)/(\d+)$`)
)

// FormatAccountToIBAN converts a Czech domestic account number
// ("prefix-number/bankCode" or "number/bankCode") into its IBAN form.
// Input that already looks like a Czech IBAN is returned unchanged, and
// unrecognized input is passed through cleaned so a pre-formatted foreign
// account still works.
func FormatAccountToIBAN(accountNumber string) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(accountNumber, " ", ""))
	if cleaned == "" {
		return ""
	}
	if strings.HasPrefix(cleaned, "CZ") && len(cleaned) == 24 {
		return cleaned
	}

	var prefix, account, bankCode string
	if m := accountWithPrefix.FindStringSubmatch(cleaned); m != nil {
		prefix, account, bankCode = m[1], m[2], m[3]
	} else if m := accountWithoutPrefix.FindStringSubmatch(cleaned); m != nil {
		account, bankCode = m[1], m[2]
	} else {
		return cleaned
	}

	// BBAN for CZ: bank code (4) + account prefix (6) + account number (10).
	bban := pad(bankCode, 4) + pad(prefix, 6) + pad(account, 10)
	return fmt.Sprintf("CZ%02d%s", checkDigits(bban), bban)
}

// checkDigits computes the ISO 13616 check digits: the country code with
// zero check digits is moved behind the BBAN, letters are substituted with
// their numeric values (A=10 .. Z=35) and the check is 98 minus the result
// mod 97.
func checkDigits(bban string) int {
	rearranged := bban + "CZ00"
	remainder := 0
	for _, c := range rearranged {
		switch {
		case c >= '0' && c <= '9':
			remainder = (remainder*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			remainder = (remainder*100 + v) % 97
		}
	}
	return 98 - remainder
}

func pad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
