package domain

import "strings"

// NormalisePostcode returns the canonical form of a postcode used as a cache
// key: surrounding space removed, inner runs of whitespace collapsed to one
// space, upper case. "  ls1  1aa " and "LS1 1AA" normalise to the same key.
func NormalisePostcode(postcode string) string {
	return strings.ToUpper(strings.Join(strings.Fields(postcode), " "))
}
