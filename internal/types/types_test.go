package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func TestStringPtr(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "non-empty string", input: "test"},
		{name: "unicode string", input: "测试"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StringPtr(tt.input)
			assert.NotNil(t, result)
			assert.Equal(t, tt.input, *result)
		})
	}
}

func TestStringNilOrEmpty(t *testing.T) {
	assert.True(t, StringNilOrEmpty(nil))
	assert.True(t, StringNilOrEmpty(stringPtr("")))
	assert.False(t, StringNilOrEmpty(stringPtr("x")))
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "", SafeString(nil))
	assert.Equal(t, "abc", SafeString(stringPtr("abc")))
}

func TestNilIfEmpty(t *testing.T) {
	assert.Nil(t, NilIfEmpty(""))
	assert.Equal(t, "a", *NilIfEmpty("a"))
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name       string
		candidates []*string
		expected   *string
	}{
		{
			name:       "no candidates",
			candidates: nil,
			expected:   nil,
		},
		{
			name:       "all nil or empty",
			candidates: []*string{nil, stringPtr(""), nil},
			expected:   nil,
		},
		{
			name:       "skips nil and empty",
			candidates: []*string{nil, stringPtr(""), stringPtr("b"), stringPtr("c")},
			expected:   stringPtr("b"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstNonEmpty(tt.candidates...))
		})
	}
}

func TestLowerPtr(t *testing.T) {
	assert.Nil(t, LowerPtr(nil))
	assert.Equal(t, "0xabc", *LowerPtr(stringPtr("0xABC")))
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"0", true},
		{"1234", true},
		{"", false},
		{"12a", false},
		{"-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNumeric(tt.input))
		})
	}
}

func TestIsEthereumAddress(t *testing.T) {
	assert.True(t, IsEthereumAddress("0x1234567890123456789012345678901234567890"))
	assert.True(t, IsEthereumAddress("1234567890123456789012345678901234567890"))
	assert.False(t, IsEthereumAddress("0x123"))
	assert.False(t, IsEthereumAddress("tz1abc"))
}

func TestIsZeroAddress(t *testing.T) {
	assert.True(t, IsZeroAddress("0x0000000000000000000000000000000000000000"))
	assert.False(t, IsZeroAddress("0x1234567890123456789012345678901234567890"))
	assert.False(t, IsZeroAddress("0x0"))
}
