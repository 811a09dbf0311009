package media

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/ff-collectibles/internal/adapter"
	"github.com/feral-file/ff-collectibles/internal/logger"
	"github.com/feral-file/ff-collectibles/internal/metrics"
)

// Prober reports the content type a URL is served with.
// An empty content type with a nil error means the probe was inconclusive.
//
//go:generate mockgen -source=prober.go -destination=../mocks/prober.go -package=mocks -mock_names=Prober=MockProber
type Prober interface {
	ContentType(ctx context.Context, url string) (string, error)
}

// ProbeConfig holds the HTTP prober settings
type ProbeConfig struct {
	// Timeout bounds a single probe, including the sniffing fallback
	Timeout time.Duration
	// SniffBytes is how much of the body is downloaded when the header is missing
	SniffBytes int64
}

type httpProber struct {
	httpClient adapter.HTTPClient
	config     ProbeConfig
}

// NewHTTPProber creates a prober issuing a HEAD request and falling back to
// sniffing the first bytes of the body when no Content-Type is declared
func NewHTTPProber(httpClient adapter.HTTPClient, cfg ProbeConfig) Prober {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.SniffBytes <= 0 {
		cfg.SniffBytes = 512
	}
	return &httpProber{
		httpClient: httpClient,
		config:     cfg,
	}
}

func (p *httpProber) ContentType(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	resp, err := p.httpClient.Head(ctx, url)
	if err != nil {
		metrics.ProbeResults.WithLabelValues(metrics.ProbeOutcomeError).Inc()
		return "", fmt.Errorf("failed to probe %s: %w", url, err)
	}
	if err := resp.Body.Close(); err != nil {
		logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
	}

	switch {
	case resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented:
		// Some hosts reject HEAD, sniff the body instead
		return p.sniff(ctx, url, true)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		metrics.ProbeResults.WithLabelValues(metrics.ProbeOutcomeError).Inc()
		return "", fmt.Errorf("failed to probe %s: %w: %d", url, adapter.ErrUnexpectedStatus, resp.StatusCode)
	}

	if contentType := resp.Header.Get("Content-Type"); contentType != "" {
		metrics.ProbeResults.WithLabelValues(metrics.ProbeOutcomeOK).Inc()
		return contentType, nil
	}

	return p.sniff(ctx, url, false)
}

// sniff detects the content type from the first bytes of the body.
// When the HEAD request already succeeded a failed sniff is only inconclusive.
func (p *httpProber) sniff(ctx context.Context, url string, headFailed bool) (string, error) {
	content, err := p.httpClient.GetPartialContent(ctx, url, p.config.SniffBytes)
	if err != nil {
		if headFailed {
			metrics.ProbeResults.WithLabelValues(metrics.ProbeOutcomeError).Inc()
			return "", fmt.Errorf("failed to sniff %s: %w", url, err)
		}
		logger.DebugCtx(ctx, "Content sniffing failed", zap.String("url", url), zap.Error(err))
		metrics.ProbeResults.WithLabelValues(metrics.ProbeOutcomeInconclusive).Inc()
		return "", nil
	}

	mtype := mimetype.Detect(content)
	// application/octet-stream is the detector's answer for "unknown"
	if mtype == nil || mtype.Is("application/octet-stream") {
		metrics.ProbeResults.WithLabelValues(metrics.ProbeOutcomeInconclusive).Inc()
		return "", nil
	}

	metrics.ProbeResults.WithLabelValues(metrics.ProbeOutcomeSniffed).Inc()
	logger.DebugCtx(ctx, "Detected content type", zap.String("url", url), zap.String("content_type", mtype.String()))
	return mtype.String(), nil
}

// probeEntry memoizes one probe, concurrent callers share a single request
type probeEntry struct {
	once        sync.Once
	contentType string
	err         error
	expiresAt   time.Time
}

// sharedProbeTimeout bounds a probe detached from its callers' contexts
const sharedProbeTimeout = 30 * time.Second

// CachingProber memoizes successful and inconclusive probe results per URL for a limited time.
// Failed probes are not cached.
type CachingProber struct {
	next    Prober
	ttl     time.Duration
	clock   adapter.Clock
	entries sync.Map // url -> *probeEntry
}

// NewCachingProber wraps a prober with a per-URL cache
func NewCachingProber(next Prober, ttl time.Duration, clock adapter.Clock) *CachingProber {
	return &CachingProber{
		next:  next,
		ttl:   ttl,
		clock: clock,
	}
}

func (c *CachingProber) ContentType(ctx context.Context, url string) (string, error) {
	now := c.clock.Now()

	fresh := &probeEntry{expiresAt: now.Add(c.ttl)}
	v, loaded := c.entries.LoadOrStore(url, fresh)
	entry := v.(*probeEntry)
	if loaded && now.After(entry.expiresAt) {
		// Expired, replace it unless someone already did
		if c.entries.CompareAndSwap(url, entry, fresh) {
			entry = fresh
		} else if v, ok := c.entries.Load(url); ok {
			entry = v.(*probeEntry)
		}
	}

	entry.once.Do(func() {
		// Callers share the probe, so one caller going away must not fail it for the others
		probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedProbeTimeout)
		defer cancel()

		entry.contentType, entry.err = c.next.ContentType(probeCtx, url)
		if entry.err != nil {
			// Only the callers waiting on this probe see the failure, the next one probes again
			c.entries.CompareAndDelete(url, entry)
		}
	})
	return entry.contentType, entry.err
}

// Purge drops expired entries
func (c *CachingProber) Purge() {
	now := c.clock.Now()
	c.entries.Range(func(key, value any) bool {
		if now.After(value.(*probeEntry).expiresAt) {
			c.entries.CompareAndDelete(key, value)
		}
		return true
	})
}

func isGIFContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "gif")
}

func isVideoContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "video")
}

func isAudioContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "audio")
}

func isHTMLContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "html")
}
