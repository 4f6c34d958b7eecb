package domain

import "regexp"

// DefaultProfile is used when a caller does not identify itself.
const DefaultProfile = "default"

const maxProfileLength = 64

var profilePattern = regexp.MustCompile(`^[A-Za-z0-9._@-]+$`)

// ValidateProfile reports whether id can be used as a storage namespace suffix.
func ValidateProfile(id string) error {
	if id == "" || len(id) > maxProfileLength || !profilePattern.MatchString(id) {
		return NewValidationErrorWithValue("profile", "must be 1-64 characters of letters, digits, '.', '_', '@' or '-'", id)
	}

	return nil
}
