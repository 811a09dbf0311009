package types

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var numericRegex = regexp.MustCompile(`^[0-9]+$`)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NilIfEmpty returns nil for an empty string, a pointer to it otherwise
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FirstNonEmpty returns the first pointer that is neither nil nor empty
func FirstNonEmpty(candidates ...*string) *string {
	for _, c := range candidates {
		if !StringNilOrEmpty(c) {
			return c
		}
	}
	return nil
}

// LowerPtr lowercases the pointed string, nil stays nil
func LowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return StringPtr(strings.ToLower(*s))
}

// IsNumeric checks if a string is a non-empty sequence of decimal digits
func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// IsEthereumAddress checks if a string is a valid Ethereum address
func IsEthereumAddress(s string) bool {
	return common.IsHexAddress(s)
}

// IsZeroAddress checks if a string is the Ethereum zero address
func IsZeroAddress(s string) bool {
	return common.IsHexAddress(s) && common.HexToAddress(s) == (common.Address{})
}
