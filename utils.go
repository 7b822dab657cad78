package main

import (
	"github.com/tidwall/match"
)

func isNameMatchPatterns(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if match.Match(name, pattern) {
			return true
		}
	}

	return false
}
