package payment

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAccountToIBAN(t *testing.T) {
	t.Run("without prefix", func(t *testing.T) {
		// Reference account from the SPD specification examples.
		assert.Equal(t, "CZ6508000000192000145399", FormatAccountToIBAN("19-2000145399/0800"))
	})

	t.Run("plain account and bank code", func(t *testing.T) {
		iban := FormatAccountToIBAN("2001756714/2010")
		assert.Len(t, iban, 24)
		assert.True(t, strings.HasPrefix(iban, "CZ"))
		assert.True(t, strings.HasSuffix(iban, "20100000002001756714"))
	})

	t.Run("already IBAN", func(t *testing.T) {
		assert.Equal(t, "CZ6508000000192000145399", FormatAccountToIBAN("cz65 0800 0000 1920 0014 5399"))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", FormatAccountToIBAN(""))
	})

	t.Run("unrecognized passes through cleaned", func(t *testing.T) {
		assert.Equal(t, "DE89370400440532013000", FormatAccountToIBAN("de89 3704 0044 0532 0130 00"))
	})
}

func TestIBANCheckDigitsVerify(t *testing.T) {
	// A valid IBAN rearranged with its real check digits must satisfy
	// number mod 97 == 1.
	iban := FormatAccountToIBAN("19-2000145399/0800")
	require.Len(t, iban, 24)

	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for _, c := range rearranged {
		if c >= '0' && c <= '9' {
			remainder = (remainder*10 + int(c-'0')) % 97
		} else {
			remainder = (remainder*100 + int(c-'A') + 10) % 97
		}
	}
	assert.Equal(t, 1, remainder)
}

func TestSPDString(t *testing.T) {
	spd, err := SPDString("19-2000145399/0800", 2400, "2025-001", "Záloha Pokoj č. 2")
	require.NoError(t, err)

	assert.Equal(t, "SPD*1.0*ACC:CZ6508000000192000145399*AM:2400.00*CC:CZK*MSG:Zaloha Pokoj c 2*X-VS:2025001", spd)
}

func TestSPDStringOmitsEmptyFields(t *testing.T) {
	spd, err := SPDString("19-2000145399/0800", 500, "", "")
	require.NoError(t, err)

	assert.NotContains(t, spd, "MSG:")
	assert.NotContains(t, spd, "X-VS:")
}

func TestSPDStringCapsMessage(t *testing.T) {
	long := strings.Repeat("a", 100)
	spd, err := SPDString("19-2000145399/0800", 500, "", long)
	require.NoError(t, err)

	idx := strings.Index(spd, "MSG:")
	require.GreaterOrEqual(t, idx, 0)
	msg := spd[idx+len("MSG:"):]
	if star := strings.Index(msg, "*"); star >= 0 {
		msg = msg[:star]
	}
	assert.Len(t, msg, 60)
}

func TestSPDStringCapsMessageByRunes(t *testing.T) {
	// "ø" has no combining decomposition, so it survives the sanitizer as a
	// two-byte letter; the cap must not cut through it.
	long := strings.Repeat("ø", 100)
	spd, err := SPDString("19-2000145399/0800", 500, "", long)
	require.NoError(t, err)

	idx := strings.Index(spd, "MSG:")
	require.GreaterOrEqual(t, idx, 0)
	msg := spd[idx+len("MSG:"):]
	if star := strings.Index(msg, "*"); star >= 0 {
		msg = msg[:star]
	}
	assert.True(t, utf8.ValidString(msg))
	assert.Equal(t, 60, utf8.RuneCountInString(msg))
}

func TestSPDStringNoAccount(t *testing.T) {
	_, err := SPDString("", 500, "", "")
	assert.Error(t, err)
}

func TestQRCodeDataURL(t *testing.T) {
	url, err := QRCodeDataURL("19-2000145399/0800", 2400, "2025-001", "Zaloha")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}
