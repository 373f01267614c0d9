package credentials

import "regexp"

var (
	// Passwords are 8-15 characters from a restricted set; spaces and
	// most symbols are rejected.
	passwordRegex = regexp.MustCompile(`^[A-Za-z0-9@*#]{8,15}$`)
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,64}$`)
)

// IsValidPassword reports whether s is an acceptable password.
func IsValidPassword(s string) bool {
	return passwordRegex.MatchString(s)
}

// IsValidEmail reports whether s looks like a local@domain.tld address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// PasswordsMatch reports whether the password and its confirmation are
// identical.
func PasswordsMatch(password, confirm string) bool {
	return password == confirm
}

// RegistrationComplete reports whether a registration form may be
// submitted: the email and password must both be valid and the
// confirmation must match.
func RegistrationComplete(email, password, confirm string) bool {
	return IsValidEmail(email) && IsValidPassword(password) && PasswordsMatch(password, confirm)
}
