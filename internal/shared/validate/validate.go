// Package validate provides pure input-format checks for user credentials.
package validate

import "regexp"

var (
	// emailPattern accepts local@domain.tld where no segment contains
	// whitespace or '@'. This is deliberately looser than RFC validation
	// and rejects addresses without a dot in the domain ("a@b").
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
	symbolPattern = regexp.MustCompile(`[^0-9A-Za-z_\s]|_`)
)

// IsValidEmail reports whether s has the local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether s is at least 6 characters and contains
// an uppercase letter, a lowercase letter, a digit and a symbol that is
// neither a word character nor whitespace (underscore counts as a symbol).
// Note the length floor here is 6 regardless of the schema's 6-20 bound;
// the two are not enforced together.
func IsValidPassword(s string) bool {
	if len(s) < 6 {
		return false
	}
	return upperPattern.MatchString(s) &&
		lowerPattern.MatchString(s) &&
		digitPattern.MatchString(s) &&
		symbolPattern.MatchString(s)
}
