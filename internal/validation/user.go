package validation

import (
	"regexp"
	"unicode"

	"flux/internal/errors"
	"flux/internal/models"
)

var (
	ErrInvalidEmail = &errors.DomainError{
		Code:    "INVALID_EMAIL",
		Message: "invalid email address",
	}
	ErrWeakPassword = &errors.DomainError{
		Code:    "WEAK_PASSWORD",
		Message: "password must be at least 8 characters with upper, lower and digit",
	}
	ErrInvalidUserType = &errors.DomainError{
		Code:    "INVALID_USER_TYPE",
		Message: "user type must be COMMON or MERCHANT",
	}
	ErrInvalidFullName = &errors.DomainError{
		Code:    "INVALID_FULL_NAME",
		Message: "full name is required",
	}
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email syntax.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the minimum password strength.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}

// ValidateUserType returns the canonical user type. An empty value
// defaults to COMMON.
func ValidateUserType(userType string) (string, error) {
	switch userType {
	case "":
		return models.UserTypeCommon, nil
	case models.UserTypeCommon, models.UserTypeMerchant:
		return userType, nil
	default:
		return "", ErrInvalidUserType
	}
}
