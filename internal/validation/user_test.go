package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flux/internal/models"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.NoError(t, ValidateEmail("a.b+tag@sub.domain.org"))
	assert.ErrorIs(t, ValidateEmail("not-an-email"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmail("missing@tld"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmail(""), ErrInvalidEmail)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Sup3rSecret"))
	assert.ErrorIs(t, ValidatePassword("short1A"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword("alllowercase1"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword("NODIGITSHERE"), ErrWeakPassword)
}

func TestValidateUserType(t *testing.T) {
	got, err := ValidateUserType("")
	assert.NoError(t, err)
	assert.Equal(t, models.UserTypeCommon, got)

	got, err = ValidateUserType("MERCHANT")
	assert.NoError(t, err)
	assert.Equal(t, models.UserTypeMerchant, got)

	_, err = ValidateUserType("admin")
	assert.ErrorIs(t, err, ErrInvalidUserType)
}
