package media

import (
	"strings"

	"github.com/feral-file/ff-collectibles/internal/domain"
)

// Extension sets are matched as plain, case-sensitive suffixes of the URL
var (
	gifExtensions    = []string{".gif"}
	threeDExtensions = []string{"gltf", "glb"}
	videoExtensions  = []string{"webm", "mp4", "ogv", "ogg", "mov", "html", "htm"}
	audioExtensions  = []string{"mp3", "wav", "oga"}
	htmlExtensions   = []string{"html", "htm"}

	// nonImageExtensions disqualify a URL from being used as an image
	nonImageExtensions = append(append([]string{}, videoExtensions...), audioExtensions...)
)

func hasAnySuffix(url string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(url, s) {
			return true
		}
	}
	return false
}

// IsGIFURL reports whether the URL ends with the animated-image extension
func IsGIFURL(url string) bool {
	return hasAnySuffix(url, gifExtensions)
}

// Is3DURL reports whether the URL ends with a 3D-model extension
func Is3DURL(url string) bool {
	return hasAnySuffix(url, threeDExtensions)
}

// IsVideoURL reports whether the URL ends with a video extension
func IsVideoURL(url string) bool {
	return hasAnySuffix(url, videoExtensions)
}

// IsHTMLURL reports whether the URL ends with a markup extension
func IsHTMLURL(url string) bool {
	return hasAnySuffix(url, htmlExtensions)
}

// IsNonImageURL reports whether the URL ends with a video, markup or audio extension
func IsNonImageURL(url string) bool {
	return hasAnySuffix(url, nonImageExtensions)
}

// IsImageLikeURL reports whether a URL may be rendered as an image.
// Anything without a known non-image extension qualifies, including URLs with no extension.
func IsImageLikeURL(url string) bool {
	return url != "" && !IsNonImageURL(url)
}

// isFrameCandidate is an image-like URL that is not itself a 3D model
func isFrameCandidate(url string) bool {
	return IsImageLikeURL(url) && !Is3DURL(url)
}

func firstMatch(urls []*string, match func(string) bool) *string {
	for _, u := range urls {
		if u != nil && *u != "" && match(*u) {
			return u
		}
	}
	return nil
}

func firstPresent(urls []*string) *string {
	return firstMatch(urls, func(string) bool { return true })
}

func concat(a, b []*string) []*string {
	out := make([]*string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// IsValid reports whether an asset carries enough media to be classified:
// a GIF image slot, a 3D model with an image, an animation, or an image-like image slot
func IsValid(asset domain.Asset) bool {
	images := asset.ImageURLs()
	animations := asset.AnimationURLs()

	if firstMatch(images, IsGIFURL) != nil {
		return true
	}
	if firstMatch(concat(animations, images), Is3DURL) != nil && firstMatch(images, isFrameCandidate) != nil {
		return true
	}
	if firstPresent(animations) != nil {
		return true
	}
	return firstMatch(images, IsImageLikeURL) != nil
}
