package utils

import (
	"errors"
	"regexp"
)

// Country names may carry spaces, dots, parentheses and non-ASCII
// letters; reject markup and control characters rather than
// whitelisting an alphabet.
var dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|[[:cntrl:]]`)

// ValidateCountryName validates a country selector value.
func ValidateCountryName(name string) error {
	if name == "" {
		return errors.New("country cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("country too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("country contains invalid characters")
	}

	return nil
}

// ValidateRankRange validates inclusive rank filter bounds.
func ValidateRankRange(minRank, maxRank int) error {
	if minRank < 1 {
		return errors.New("minRank must be at least 1")
	}

	if maxRank < minRank {
		return errors.New("maxRank must not be less than minRank")
	}

	return nil
}
