package media

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/logger"
	"github.com/feral-file/ff-collectibles/internal/metrics"
	"github.com/feral-file/ff-collectibles/internal/uri"
)

// Result is the media type of an asset and the URL assigned to each role.
// Only the URL matching MediaType is set, FrameURL is a thumbnail that may accompany it.
// AUDIO and HTML carry their playable URL in VideoURL.
type Result struct {
	MediaType domain.MediaType
	FrameURL  *string
	ImageURL  *string
	GifURL    *string
	VideoURL  *string
	ThreeDURL *string
}

// Classifier decides the media type of an asset
//
//go:generate mockgen -source=classifier.go -destination=../mocks/classifier.go -package=mocks -mock_names=Classifier=MockClassifier
type Classifier interface {
	// Classify never fails, a failed probe degrades the result to IMAGE
	Classify(ctx context.Context, asset domain.Asset) Result
}

type classifier struct {
	prober     Prober
	normalizer uri.Normalizer
}

// NewClassifier creates a classifier probing ambiguous URLs with the given prober
func NewClassifier(prober Prober, normalizer uri.Normalizer) Classifier {
	return &classifier{
		prober:     prober,
		normalizer: normalizer,
	}
}

// candidates holds the normalized image and animation slots of an asset
type candidates struct {
	images     []*string
	animations []*string
}

func (c *classifier) candidates(asset domain.Asset) candidates {
	var cs candidates
	for _, u := range asset.ImageURLs() {
		cs.images = append(cs.images, c.normalizer.Normalize(u))
	}
	for _, u := range asset.AnimationURLs() {
		cs.animations = append(cs.animations, c.normalizer.Normalize(u))
	}
	return cs
}

func (c *classifier) Classify(ctx context.Context, asset domain.Asset) Result {
	cs := c.candidates(asset)

	result, err := c.classify(ctx, asset.Provider, cs)
	if err != nil {
		logger.WarnCtx(ctx, "Probe failed, falling back to image",
			zap.String("key", asset.Key().String()),
			zap.Error(err),
		)
		metrics.MappingFallbacks.Inc()
		result = Fallback(cs.images, cs.animations)
	}

	metrics.Classified.WithLabelValues(string(result.MediaType)).Inc()
	return result
}

// Fallback is the IMAGE result used whenever classification cannot complete:
// the first available URL becomes both the frame and the image
func Fallback(images, animations []*string) Result {
	first := firstPresent(concat(images, animations))
	return Result{
		MediaType: domain.MediaTypeImage,
		FrameURL:  first,
		ImageURL:  first,
	}
}

// classify applies the precedence GIF, THREE_D with image, VIDEO, IMAGE
func (c *classifier) classify(ctx context.Context, provider domain.Provider, cs candidates) (Result, error) {
	// 1. Any image slot ending in .gif
	if gif := firstMatch(cs.images, IsGIFURL); gif != nil {
		return Result{MediaType: domain.MediaTypeGIF, GifURL: gif}, nil
	}

	// 2. A 3D model plus an image to use as its frame
	threeD := firstMatch(concat(cs.animations, cs.images), Is3DURL)
	frame := firstMatch(cs.images, isFrameCandidate)
	if threeD != nil && frame != nil {
		ct, err := c.probe(ctx, frame)
		if err != nil {
			return Result{}, err
		}
		if isGIFContentType(ct) {
			return Result{MediaType: domain.MediaTypeGIF, GifURL: frame}, nil
		}
		return Result{MediaType: domain.MediaTypeThreeD, ThreeDURL: threeD, FrameURL: frame}, nil
	}

	// 3. Any animation, whatever its extension
	if animation := firstPresent(cs.animations); animation != nil {
		if provider == domain.ProviderNftPort {
			return c.classifyPlayable(ctx, cs)
		}
		return c.classifyVideo(ctx, cs, animation)
	}

	// 4. Default to the first image slot
	return c.classifyImage(ctx, cs)
}

// classifyVideo handles rich assets with an animation
func (c *classifier) classifyVideo(ctx context.Context, cs candidates, animation *string) (Result, error) {
	frame := firstMatch(cs.images, isFrameCandidate)
	ct, err := c.probe(ctx, frame)
	if err != nil {
		return Result{}, err
	}
	if isVideoContentType(ct) || isGIFContentType(ct) {
		// The consumer derives a thumbnail from the video instead
		frame = nil
	}

	video := firstMatch(concat(cs.animations, cs.images), IsVideoURL)
	if video == nil {
		video = animation
	}

	return Result{MediaType: domain.MediaTypeVideo, VideoURL: video, FrameURL: frame}, nil
}

// classifyPlayable handles minimal assets with an animation. Their animation
// extensions are unreliable so the probed type also separates AUDIO and HTML.
func (c *classifier) classifyPlayable(ctx context.Context, cs candidates) (Result, error) {
	playable := firstPresent(concat(cs.animations, cs.images))
	thumbnail := firstPresent(cs.images)
	if thumbnail != nil && *thumbnail == *playable {
		thumbnail = nil
	}

	ct, err := c.probe(ctx, playable)
	if err != nil {
		return Result{}, err
	}

	mediaType := domain.MediaTypeVideo
	switch {
	case isVideoContentType(ct):
	case isGIFContentType(ct):
		return Result{MediaType: domain.MediaTypeGIF, GifURL: playable}, nil
	case isAudioContentType(ct):
		mediaType = domain.MediaTypeAudio
	case isHTMLContentType(ct) || IsHTMLURL(*playable):
		mediaType = domain.MediaTypeHTML
	}

	return Result{MediaType: mediaType, VideoURL: playable, FrameURL: thumbnail}, nil
}

// classifyImage handles assets without an animation
func (c *classifier) classifyImage(ctx context.Context, cs candidates) (Result, error) {
	frame := firstPresent(cs.images)
	if frame == nil {
		return Fallback(cs.images, cs.animations), nil
	}

	ct, err := c.probe(ctx, frame)
	if err != nil {
		return Result{}, err
	}

	switch {
	case isGIFContentType(ct):
		return Result{MediaType: domain.MediaTypeGIF, GifURL: frame}, nil
	case isVideoContentType(ct):
		video := firstMatch(cs.images, IsVideoURL)
		if video == nil {
			video = frame
		}
		return Result{MediaType: domain.MediaTypeVideo, VideoURL: video}, nil
	}

	return Result{MediaType: domain.MediaTypeImage, FrameURL: frame, ImageURL: frame}, nil
}

// probe asks the prober about http(s) URLs only, anything else is inconclusive
func (c *classifier) probe(ctx context.Context, url *string) (string, error) {
	if url == nil || !strings.HasPrefix(*url, "http") {
		return "", nil
	}
	return c.prober.ContentType(ctx, *url)
}
