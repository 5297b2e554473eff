package textutil

import "strings"

// NormalizeName lowercases a name and strips every run of whitespace so
// cosmetic differences don't get in the way of matching.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}
