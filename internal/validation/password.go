package validation

import "unicode"

// MinPasswordLength is the floor for new account passwords.
const MinPasswordLength = 8

// PasswordStrength describes why a password was rejected, empty when it
// passes.
func PasswordStrength(password string) string {
	if len(password) < MinPasswordLength {
		return "Password must be at least 8 characters"
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return "Password must be at most 72 characters"
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return "Password must contain both letters and digits"
	}
	return ""
}
