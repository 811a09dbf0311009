package collectible

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/logger"
	"github.com/feral-file/ff-collectibles/internal/media"
	"github.com/feral-file/ff-collectibles/internal/metrics"
	"github.com/feral-file/ff-collectibles/internal/uri"
)

// Mapper turns canonical assets into collectibles
//
//go:generate mockgen -source=mapper.go -destination=../mocks/collectible_mapper.go -package=mocks -mock_names=Mapper=MockCollectibleMapper
type Mapper interface {
	// Valid reports whether the asset carries enough media to become a collectible
	Valid(asset domain.Asset) bool

	// ToCollectible maps an asset into an owned collectible without any event dates.
	// It never fails: unexpected classification failures degrade to an IMAGE collectible.
	ToCollectible(ctx context.Context, asset domain.Asset) domain.Collectible
}

type mapper struct {
	classifier media.Classifier
	normalizer uri.Normalizer
}

// NewMapper creates a mapper classifying media with the given classifier
func NewMapper(classifier media.Classifier, normalizer uri.Normalizer) Mapper {
	return &mapper{
		classifier: classifier,
		normalizer: normalizer,
	}
}

func (m *mapper) Valid(asset domain.Asset) bool {
	return media.IsValid(asset)
}

func (m *mapper) ToCollectible(ctx context.Context, asset domain.Asset) domain.Collectible {
	result := m.classify(ctx, asset)

	return domain.Collectible{
		ID:                   asset.Key().String(),
		ProviderID:           asset.ID,
		TokenID:              asset.TokenID,
		Name:                 displayName(asset),
		Description:          asset.Description,
		MediaType:            result.MediaType,
		FrameURL:             result.FrameURL,
		ImageURL:             result.ImageURL,
		GifURL:               result.GifURL,
		VideoURL:             result.VideoURL,
		ThreeDURL:            result.ThreeDURL,
		IsOwned:              true,
		ExternalLink:         asset.ExternalLink,
		Permalink:            asset.Permalink,
		AssetContractAddress: asset.ContractAddress,
		Chain:                domain.ChainEthereum,
		Wallet:               asset.Wallet,
		Collection:           asset.Collection,
		Owner:                asset.Owner,
	}
}

// classify shields the caller from panics raised while classifying
func (m *mapper) classify(ctx context.Context, asset domain.Asset) (result media.Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("panic while classifying asset: %v", r),
				zap.String("key", asset.Key().String()),
				zap.String("provider", string(asset.Provider)),
			)
			metrics.MappingFallbacks.Inc()
			result = media.Fallback(m.normalizeAll(asset.ImageURLs()), m.normalizeAll(asset.AnimationURLs()))
		}
	}()

	return m.classifier.Classify(ctx, asset)
}

func (m *mapper) normalizeAll(urls []*string) []*string {
	normalized := make([]*string, len(urls))
	for i, u := range urls {
		normalized[i] = m.normalizer.Normalize(u)
	}
	return normalized
}

// displayName falls back to the contract name when the full-featured provider has no token name
func displayName(asset domain.Asset) *string {
	if asset.Name != nil && *asset.Name != "" {
		return asset.Name
	}
	if asset.Provider == domain.ProviderOpenSea {
		if asset.ContractName != nil {
			return asset.ContractName
		}
		empty := ""
		return &empty
	}
	return asset.Name
}
