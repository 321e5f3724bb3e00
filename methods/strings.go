package methods

import "strings"

func IsStringInSlice(s string, slice []string) bool {
	set := make(map[string]bool)
	for _, v := range slice {
		set[v] = true
	}
	return set[s]
}

// PositionKey derives the answer-map key for a spring position display name.
// Every place that turns a position name into a lookup key must use this rule.
func PositionKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}
