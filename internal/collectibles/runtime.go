package collectibles

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-collectibles/internal/adapter"
	"github.com/feral-file/ff-collectibles/internal/collectible"
	"github.com/feral-file/ff-collectibles/internal/config"
	"github.com/feral-file/ff-collectibles/internal/logger"
	"github.com/feral-file/ff-collectibles/internal/media"
	"github.com/feral-file/ff-collectibles/internal/messaging"
	"github.com/feral-file/ff-collectibles/internal/providers/jetstream"
	"github.com/feral-file/ff-collectibles/internal/providers/vendors/nftport"
	"github.com/feral-file/ff-collectibles/internal/providers/vendors/opensea"
	"github.com/feral-file/ff-collectibles/internal/ratelimit"
	"github.com/feral-file/ff-collectibles/internal/reconciler"
	"github.com/feral-file/ff-collectibles/internal/registry"
	"github.com/feral-file/ff-collectibles/internal/uri"
)

// Runtime is a wired Service together with the resources it holds
type Runtime struct {
	Service Service

	proxy     ratelimit.Proxy
	publisher messaging.Publisher
}

// NewRuntime wires the providers, the mapping pipeline and, when NATS is configured, the snapshot publisher
func NewRuntime(ctx context.Context, cfg config.CollectiblesConfig) (*Runtime, error) {
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Fetch.HTTPTimeout, adapter.RetryConfig{})

	proxy, err := ratelimit.NewProxy(cfg.RateLimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit proxy: %w", err)
	}

	openSeaClient := opensea.NewClient(httpClient, proxy, cfg.Providers.OpenSea, jsonAdapter)
	nftPortClient := nftport.NewClient(httpClient, proxy, cfg.Providers.NftPort, jsonAdapter)

	normalizer := uri.NewNormalizer(cfg.URI.IPFSGateway)
	prober := media.NewCachingProber(
		media.NewHTTPProber(httpClient, media.ProbeConfig{
			Timeout:    cfg.Probe.Timeout,
			SniffBytes: cfg.Probe.SniffBytes,
		}),
		cfg.Probe.CacheTTL,
		clock,
	)
	mapper := collectible.NewMapper(media.NewClassifier(prober, normalizer), normalizer)

	var blacklist registry.BlacklistRegistry
	if cfg.BlacklistPath != "" {
		loader := registry.NewBlacklistRegistryLoader(adapter.NewFileSystem(), jsonAdapter)
		if blacklist, err = loader.Load(cfg.BlacklistPath); err != nil {
			_ = proxy.Close()
			return nil, fmt.Errorf("failed to load blacklist registry: %w", err)
		}
		logger.InfoCtx(ctx, "Loaded blacklist registry", zap.String("path", cfg.BlacklistPath))
	}

	var publisher messaging.Publisher
	if cfg.NATS.Enabled() {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			_ = proxy.Close()
			return nil, fmt.Errorf("failed to create snapshot publisher: %w", err)
		}
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, snapshots will not be published")
	}

	service := NewService(
		openSeaClient,
		nftPortClient,
		mapper,
		reconciler.NewReconciler(mapper, cfg.Probe.Workers),
		publisher,
		prober,
		blacklist,
		clock,
		cfg.Fetch.Workers,
	)

	return &Runtime{
		Service:   service,
		proxy:     proxy,
		publisher: publisher,
	}, nil
}

// Close releases the publisher connection and drains the rate limit proxy
func (r *Runtime) Close() {
	if r.publisher != nil {
		r.publisher.Close()
	}
	if err := r.proxy.Close(); err != nil {
		logger.Warn("Failed to close rate limit proxy", zap.Error(err))
	}
}
