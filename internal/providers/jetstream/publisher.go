package jetstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-collectibles/internal/adapter"
	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/logger"
	"github.com/feral-file/ff-collectibles/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc            adapter.NatsConn
	js            adapter.JetStream
	subjectPrefix string
	json          adapter.JSON
}

// NewPublisher connects to NATS and makes sure the snapshot stream exists
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = "collectibles"
	}

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.SubjectPrefix + ".>"},
		// Only the latest snapshot of a wallet is worth keeping
		MaxMsgsPerSubject: 1,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
	}

	logger.InfoCtx(ctx, "Connected to NATS",
		zap.String("url", nc.ConnectedUrl()),
		zap.String("stream", cfg.StreamName),
	)

	return &publisher{
		nc:            nc,
		js:            js,
		subjectPrefix: cfg.SubjectPrefix,
		json:          jsonAdapter,
	}, nil
}

// PublishSnapshot publishes a wallet snapshot to NATS JetStream
func (p *publisher) PublishSnapshot(ctx context.Context, snapshot domain.CollectibleSnapshot) error {
	logger.DebugCtx(ctx, "Publishing collectible snapshot",
		zap.String("wallet", snapshot.Wallet),
		zap.Int("collectibles", len(snapshot.Collectibles)),
	)

	data, err := p.json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = p.js.Publish(ctx, p.buildSubject(snapshot.Wallet), data)
	if err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject of a wallet
// Format: {prefix}.{wallet}, e.g. collectibles.0xabc
func (p *publisher) buildSubject(wallet string) string {
	return fmt.Sprintf("%s.%s", p.subjectPrefix, strings.ToLower(wallet))
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
