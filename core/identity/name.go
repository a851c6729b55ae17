package identity

import "regexp"

var validName = regexp.MustCompile(`^[a-z0-9]+$`)

// ValidName reports whether name consists only of lowercase ASCII letters
// and digits. An empty name is not valid.
func ValidName(name string) bool {
	return validName.MatchString(name)
}
