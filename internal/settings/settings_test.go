package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	assert.Equal(t, 50, s.Guesthouse.DepositPercentage)
	assert.Empty(t, s.Email.SMTPHost)
	assert.Empty(t, s.SMS.APIURL)
}

func TestValidateDepositPercentage(t *testing.T) {
	s := Defaults()
	assert.NoError(t, s.Validate())

	s.Guesthouse.DepositPercentage = 0
	assert.NoError(t, s.Validate())

	s.Guesthouse.DepositPercentage = 100
	assert.NoError(t, s.Validate())

	s.Guesthouse.DepositPercentage = -1
	assert.ErrorIs(t, s.Validate(), ErrInvalidDepositPct)

	s.Guesthouse.DepositPercentage = 101
	assert.ErrorIs(t, s.Validate(), ErrInvalidDepositPct)
}
