package uri

import (
	"strings"

	"github.com/feral-file/ff-collectibles/internal/domain"
)

const (
	ipfsScheme = "ipfs://"
	ipfsMarker = "ipfs/"
)

// Normalizer rewrites decentralized-storage references to HTTP URLs served by a gateway
//
//go:generate mockgen -source=normalizer.go -destination=../mocks/uri_normalizer.go -package=mocks -mock_names=Normalizer=MockNormalizer
type Normalizer interface {
	// Normalize rewrites an optional URL, nil and empty inputs yield nil
	Normalize(url *string) *string

	// NormalizeString rewrites a URL, returning it unchanged when it is not an IPFS reference
	NormalizeString(url string) string
}

type normalizer struct {
	gateway string
}

// NewNormalizer creates a normalizer for the given gateway base, e.g. https://ipfs.io/ipfs
func NewNormalizer(gateway string) Normalizer {
	gateway = strings.TrimRight(gateway, "/")
	if gateway == "" {
		gateway = domain.DEFAULT_IPFS_GATEWAY
	}
	return &normalizer{gateway: gateway}
}

func (n *normalizer) Normalize(url *string) *string {
	if url == nil || *url == "" {
		return nil
	}
	normalized := n.NormalizeString(*url)
	return &normalized
}

func (n *normalizer) NormalizeString(url string) string {
	if url == "" {
		return url
	}

	// Already points at our gateway
	if strings.HasPrefix(url, n.gateway+"/") {
		return url
	}

	// ipfs://<cid>/path and ipfs://ipfs/<cid>/path
	if path, ok := strings.CutPrefix(url, ipfsScheme); ok {
		path = strings.TrimPrefix(path, ipfsMarker)
		return n.gateway + "/" + path
	}

	// Foreign gateway URLs, e.g. https://ipfs.io/ipfs/<cid>
	if _, path, ok := strings.Cut(url, ipfsMarker); ok && path != "" {
		return n.gateway + "/" + path
	}

	return url
}
