package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// CleanCode normalizes a course code: all whitespace stripped, upper-cased.
// "cse 1325 " -> "CSE1325".
func CleanCode(code string) string {
	return strings.ToUpper(strings.Join(strings.Fields(code), ""))
}
