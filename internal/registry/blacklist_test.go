package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/mocks"
	"github.com/feral-file/ff-collectibles/internal/registry"
)

func stringPtr(s string) *string {
	return &s
}

func realUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func TestBlacklistRegistryLoader_Load(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr  string // Error message to assert, empty means no error expected
		validateFunc func(t *testing.T, reg registry.BlacklistRegistry)
	}{
		{
			name: "successful load with valid JSON",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("blacklist.json").
					Return([]byte(`{"eth": ["0x123", "0xabc"]}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(realUnmarshal)
			},
			validateFunc: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereum, "0x123"))
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereum, "0xabc"))
				assert.False(t, reg.IsBlacklisted(domain.ChainEthereum, "0x999"))
			},
		},
		{
			name: "successful load with empty blacklist",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("blacklist.json").Return([]byte(`{}`), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).DoAndReturn(realUnmarshal)
			},
			validateFunc: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.False(t, reg.IsBlacklisted(domain.ChainEthereum, "0x123"))
			},
		},
		{
			name: "file read error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("blacklist.json").Return(nil, assert.AnError)
			},
			expectedErr: "failed to read blacklist file",
		},
		{
			name: "JSON parse error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				blacklistJSON := []byte(`invalid json`)
				mockFS.EXPECT().ReadFile("blacklist.json").Return(blacklistJSON, nil)
				mockJSON.EXPECT().Unmarshal(blacklistJSON, gomock.Any()).Return(assert.AnError)
			},
			expectedErr: "failed to parse blacklist JSON",
		},
		{
			name: "case insensitive lookup",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("blacklist.json").Return([]byte(`{"ETH": ["0x123ABC"]}`), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).DoAndReturn(realUnmarshal)
			},
			validateFunc: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereum, "0x123abc"))
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereum, "0X123ABC"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)
			tt.setupMocks(mockFS, mockJSON)

			loader := registry.NewBlacklistRegistryLoader(mockFS, mockJSON)
			reg, err := loader.Load("blacklist.json")

			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, reg)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, reg)
			tt.validateFunc(t, reg)
		})
	}
}

func TestBlacklistRegistry_IsAssetBlacklisted(t *testing.T) {
	reg := registry.NewBlacklistRegistry(registry.BlacklistData{
		"eth": {"0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb"},
	})

	tests := []struct {
		name     string
		asset    domain.Asset
		expected bool
	}{
		{
			name:     "blacklisted contract",
			asset:    domain.Asset{TokenID: "1", ContractAddress: stringPtr("0x742d35cc6634c0532925a3b844bc9e7595f0beb")},
			expected: true,
		},
		{
			name:     "other contract",
			asset:    domain.Asset{TokenID: "1", ContractAddress: stringPtr("0x396343362be2A4dA1cE0C1C210945346fb82Aa49")},
			expected: false,
		},
		{
			name:     "no contract",
			asset:    domain.Asset{TokenID: "1"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reg.IsAssetBlacklisted(tt.asset))
		})
	}
}
