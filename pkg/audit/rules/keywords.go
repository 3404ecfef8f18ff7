package rules

import "strings"

// Watering method keywords. The method field is free text, so detection is
// a case-insensitive containment heuristic over the normalized string.
const (
	wickKeyword   = "wick"
	manualKeyword = "manual"
)

func mentionsWick(method string) bool {
	return strings.Contains(strings.ToLower(method), wickKeyword)
}

func mentionsManual(method string) bool {
	return strings.Contains(strings.ToLower(method), manualKeyword)
}
