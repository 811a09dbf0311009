package collectible_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-collectibles/internal/collectible"
	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/logger"
	"github.com/feral-file/ff-collectibles/internal/media"
	"github.com/feral-file/ff-collectibles/internal/mocks"
	"github.com/feral-file/ff-collectibles/internal/uri"
)

const testGateway = "https://gateway.example.com/ipfs"

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func stringPtr(s string) *string {
	return &s
}

func TestMapper_ToCollectible(t *testing.T) {
	contract := "0xC"
	collection := json.RawMessage(`{"slug":"genesis"}`)

	tests := []struct {
		name       string
		asset      domain.Asset
		setupMocks func(c *mocks.MockClassifier)
		validate   func(t *testing.T, c domain.Collectible)
	}{
		{
			name: "full-featured asset",
			asset: domain.Asset{
				Provider:        domain.ProviderOpenSea,
				ID:              stringPtr("42"),
				TokenID:         "1",
				ContractAddress: &contract,
				ContractName:    stringPtr("Genesis"),
				Name:            stringPtr("Token #1"),
				Description:     stringPtr("desc"),
				ExternalLink:    stringPtr("https://example.com/1"),
				Permalink:       stringPtr("https://opensea.io/assets/0xC/1"),
				ImageURL:        stringPtr("https://cdn.example.com/1.png"),
				Owner:           stringPtr("0xOwner"),
				Collection:      collection,
				Wallet:          "0xA",
			},
			setupMocks: func(c *mocks.MockClassifier) {
				c.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(media.Result{
					MediaType: domain.MediaTypeImage,
					FrameURL:  stringPtr("https://cdn.example.com/1.png"),
					ImageURL:  stringPtr("https://cdn.example.com/1.png"),
				})
			},
			validate: func(t *testing.T, c domain.Collectible) {
				assert.Equal(t, "1:::0xC", c.ID)
				assert.Equal(t, domain.Key("1:::0xC"), c.Key())
				assert.Equal(t, "42", *c.ProviderID)
				assert.Equal(t, "Token #1", *c.Name)
				assert.Equal(t, "desc", *c.Description)
				assert.Equal(t, domain.MediaTypeImage, c.MediaType)
				assert.Equal(t, "https://cdn.example.com/1.png", *c.ImageURL)
				assert.True(t, c.IsOwned)
				assert.Nil(t, c.DateCreated)
				assert.Nil(t, c.DateLastTransferred)
				assert.Equal(t, "https://opensea.io/assets/0xC/1", *c.Permalink)
				assert.Equal(t, "0xC", *c.AssetContractAddress)
				assert.Equal(t, domain.ChainEthereum, c.Chain)
				assert.Equal(t, "0xA", c.Wallet)
				assert.Equal(t, "0xOwner", *c.Owner)
				assert.JSONEq(t, `{"slug":"genesis"}`, string(c.Collection))
			},
		},
		{
			name: "contract name replaces a missing token name",
			asset: domain.Asset{
				Provider:        domain.ProviderOpenSea,
				TokenID:         "1",
				ContractAddress: &contract,
				ContractName:    stringPtr("Genesis"),
				Name:            stringPtr(""),
				ImageURL:        stringPtr("https://cdn.example.com/1.png"),
			},
			setupMocks: func(c *mocks.MockClassifier) {
				c.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(media.Result{MediaType: domain.MediaTypeImage})
			},
			validate: func(t *testing.T, c domain.Collectible) {
				assert.Equal(t, "Genesis", *c.Name)
			},
		},
		{
			name: "minimal provider keeps its own name",
			asset: domain.Asset{
				Provider:     domain.ProviderNftPort,
				TokenID:      "7",
				ContractName: stringPtr("Genesis"),
				ImageURL:     stringPtr("https://cdn.example.com/7.png"),
			},
			setupMocks: func(c *mocks.MockClassifier) {
				c.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(media.Result{MediaType: domain.MediaTypeImage})
			},
			validate: func(t *testing.T, c domain.Collectible) {
				assert.Nil(t, c.Name)
				assert.Equal(t, "7:::", c.ID)
				assert.Nil(t, c.AssetContractAddress)
			},
		},
		{
			name: "panicking classifier degrades to image",
			asset: domain.Asset{
				Provider:     domain.ProviderOpenSea,
				TokenID:      "1",
				AnimationURL: stringPtr("ipfs://QmHash/anim.mp4"),
			},
			setupMocks: func(c *mocks.MockClassifier) {
				c.EXPECT().Classify(gomock.Any(), gomock.Any()).DoAndReturn(func(_, _ interface{}) media.Result {
					panic("unexpected nil")
				})
			},
			validate: func(t *testing.T, c domain.Collectible) {
				assert.Equal(t, domain.MediaTypeImage, c.MediaType)
				assert.Equal(t, testGateway+"/QmHash/anim.mp4", *c.FrameURL)
				assert.Equal(t, testGateway+"/QmHash/anim.mp4", *c.ImageURL)
				assert.Nil(t, c.VideoURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			classifier := mocks.NewMockClassifier(ctrl)
			tt.setupMocks(classifier)

			mapper := collectible.NewMapper(classifier, uri.NewNormalizer(testGateway))
			tt.validate(t, mapper.ToCollectible(t.Context(), tt.asset))
		})
	}
}

func TestMapper_Valid(t *testing.T) {
	mapper := collectible.NewMapper(nil, uri.NewNormalizer(testGateway))

	assert.True(t, mapper.Valid(domain.Asset{ImageURL: stringPtr("https://cdn.example.com/1.png")}))
	assert.False(t, mapper.Valid(domain.Asset{}))
}
