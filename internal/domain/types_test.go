package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func TestIsValidProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		expected bool
	}{
		{
			name:     "opensea",
			provider: ProviderOpenSea,
			expected: true,
		},
		{
			name:     "nftport",
			provider: ProviderNftPort,
			expected: true,
		},
		{
			name:     "empty provider",
			provider: Provider(""),
			expected: false,
		},
		{
			name:     "unknown provider",
			provider: Provider("rarible"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidProvider(tt.provider))
		})
	}
}

func TestNewKey(t *testing.T) {
	tests := []struct {
		name     string
		tokenID  string
		contract *string
		expected Key
	}{
		{
			name:     "token with contract",
			tokenID:  "1",
			contract: stringPtr("0xC"),
			expected: Key("1:::0xC"),
		},
		{
			name:     "nil contract",
			tokenID:  "42",
			contract: nil,
			expected: Key("42:::"),
		},
		{
			name:     "empty contract",
			tokenID:  "42",
			contract: stringPtr(""),
			expected: Key("42:::"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewKey(tt.tokenID, tt.contract)
			assert.Equal(t, tt.expected, key)
			assert.Equal(t, string(tt.expected), key.String())
		})
	}
}

func TestAsset_Slots(t *testing.T) {
	asset := Asset{
		TokenID:              "7",
		ContractAddress:      stringPtr("0xabc"),
		ImageURL:             stringPtr("a.png"),
		ImageOriginalURL:     nil,
		ImagePreviewURL:      stringPtr("c.png"),
		ImageThumbnailURL:    stringPtr("d.png"),
		AnimationURL:         stringPtr("e.mp4"),
		AnimationOriginalURL: nil,
	}

	assert.Equal(t, Key("7:::0xabc"), asset.Key())

	images := asset.ImageURLs()
	assert.Len(t, images, 4)
	assert.Equal(t, "a.png", *images[0])
	assert.Nil(t, images[1])
	assert.Equal(t, "c.png", *images[2])
	assert.Equal(t, "d.png", *images[3])

	animations := asset.AnimationURLs()
	assert.Len(t, animations, 2)
	assert.Equal(t, "e.mp4", *animations[0])
	assert.Nil(t, animations[1])
}

func TestOwnershipEvent_IsNullOrigin(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		expected bool
	}{
		{
			name:     "zero address",
			from:     ETHEREUM_ZERO_ADDRESS,
			expected: true,
		},
		{
			name:     "regular address",
			from:     "0x1234567890123456789012345678901234567890",
			expected: false,
		},
		{
			name:     "empty address",
			from:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := OwnershipEvent{FromAddress: tt.from}
			assert.Equal(t, tt.expected, ev.IsNullOrigin())
		})
	}
}

func TestCollectibleState_Count(t *testing.T) {
	state := CollectibleState{
		"0xa": {{ID: "1:::0xc"}, {ID: "2:::0xc"}},
		"0xb": {{ID: "3:::0xd"}},
		"0xc": nil,
	}
	assert.Equal(t, 3, state.Count())
	assert.Equal(t, 0, CollectibleState{}.Count())
}
