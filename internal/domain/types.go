package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Provider identifies the indexing API an asset was fetched from
type Provider string

const (
	// ProviderOpenSea is the full-featured provider with rich media metadata
	ProviderOpenSea Provider = "opensea"
	// ProviderNftPort is the minimal provider with a reduced asset shape
	ProviderNftPort Provider = "nftport"
)

// IsValidProvider checks if a provider is known
func IsValidProvider(p Provider) bool {
	return p == ProviderOpenSea || p == ProviderNftPort
}

// Chain represents the chain label carried on every collectible
type Chain string

const (
	ChainEthereum Chain = "eth"
)

// MediaType represents the rendering category of a collectible
type MediaType string

const (
	MediaTypeImage  MediaType = "IMAGE"
	MediaTypeVideo  MediaType = "VIDEO"
	MediaTypeGIF    MediaType = "GIF"
	MediaTypeThreeD MediaType = "THREE_D"
	MediaTypeAudio  MediaType = "AUDIO"
	MediaTypeHTML   MediaType = "HTML"
)

// EventKind distinguishes the query an ownership event was produced by
type EventKind string

const (
	EventKindCreation EventKind = "creation"
	EventKindTransfer EventKind = "transfer"
)

// Key is the identity of a collectible across all streams of a fetch cycle,
// formatted as tokenId:::contractAddress
type Key string

// NewKey builds a collectible key, a nil contract address becomes an empty suffix
func NewKey(tokenID string, contractAddress *string) Key {
	contract := ""
	if contractAddress != nil {
		contract = *contractAddress
	}
	return Key(tokenID + KEY_SEPARATOR + contract)
}

// String returns the key as a plain string
func (k Key) String() string {
	return string(k)
}

// Asset is the canonical superset shape both providers are normalized into
// right after decoding. Provider is the variant tag.
type Asset struct {
	Provider        Provider `json:"provider"`
	ID              *string  `json:"id,omitempty"`
	TokenID         string   `json:"token_id"`
	ContractAddress *string  `json:"contract_address,omitempty"`
	ContractName    *string  `json:"contract_name,omitempty"`
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	ExternalLink    *string  `json:"external_link,omitempty"`
	Permalink       *string  `json:"permalink,omitempty"`

	// Image slots, in the order candidates are considered
	ImageURL          *string `json:"image_url,omitempty"`
	ImageOriginalURL  *string `json:"image_original_url,omitempty"`
	ImagePreviewURL   *string `json:"image_preview_url,omitempty"`
	ImageThumbnailURL *string `json:"image_thumbnail_url,omitempty"`

	// Animation slots
	AnimationURL         *string `json:"animation_url,omitempty"`
	AnimationOriginalURL *string `json:"animation_original_url,omitempty"`

	Owner      *string         `json:"owner,omitempty"`
	Collection json.RawMessage `json:"collection,omitempty"`

	// Wallet is the queried wallet whose fetch produced this asset
	Wallet string `json:"wallet"`
}

// Key returns the collectible key of the asset
func (a Asset) Key() Key {
	return NewKey(a.TokenID, a.ContractAddress)
}

// ImageURLs returns the four image slots in precedence order
func (a Asset) ImageURLs() []*string {
	return []*string{a.ImageURL, a.ImageOriginalURL, a.ImagePreviewURL, a.ImageThumbnailURL}
}

// AnimationURLs returns the two animation slots in precedence order
func (a Asset) AnimationURLs() []*string {
	return []*string{a.AnimationURL, a.AnimationOriginalURL}
}

// OwnershipEvent is a creation or transfer record for a single asset
type OwnershipEvent struct {
	ID          string    `json:"id"`
	Kind        EventKind `json:"kind"`
	CreatedAt   string    `json:"created_at"` // ISO-8601, compared lexicographically
	FromAddress string    `json:"from_address"`
	ToAddress   string    `json:"to_address"`
	Wallet      string    `json:"wallet"`
	Asset       Asset     `json:"asset"`
}

// IsNullOrigin reports whether the event was sent from the zero address, i.e. a mint
func (e OwnershipEvent) IsNullOrigin() bool {
	return strings.EqualFold(e.FromAddress, ETHEREUM_ZERO_ADDRESS)
}

// Collectible is the canonical, deduplicated ownership record
type Collectible struct {
	ID                   string          `json:"id"`
	ProviderID           *string         `json:"providerId,omitempty"`
	TokenID              string          `json:"tokenId"`
	Name                 *string         `json:"name"`
	Description          *string         `json:"description"`
	MediaType            MediaType       `json:"mediaType"`
	FrameURL             *string         `json:"frameUrl"`
	ImageURL             *string         `json:"imageUrl"`
	GifURL               *string         `json:"gifUrl"`
	VideoURL             *string         `json:"videoUrl"`
	ThreeDURL            *string         `json:"threeDUrl"`
	IsOwned              bool            `json:"isOwned"`
	DateCreated          *string         `json:"dateCreated"`
	DateLastTransferred  *string         `json:"dateLastTransferred"`
	ExternalLink         *string         `json:"externalLink"`
	Permalink            *string         `json:"permaLink"`
	AssetContractAddress *string         `json:"assetContractAddress"`
	Chain                Chain           `json:"chain"`
	Wallet               string          `json:"wallet"`
	Collection           json.RawMessage `json:"collection,omitempty"`
	Owner                *string         `json:"owner,omitempty"`
}

// Key returns the collectible key
func (c Collectible) Key() Key {
	return Key(c.ID)
}

// CollectibleState maps a wallet address to its collectibles
type CollectibleState map[string][]Collectible

// Count returns the total number of collectibles across all wallets
func (s CollectibleState) Count() int {
	n := 0
	for _, cs := range s {
		n += len(cs)
	}
	return n
}

// CollectibleSnapshot is the per-wallet result of one fetch cycle, as published to NATS
type CollectibleSnapshot struct {
	CycleID      string        `json:"cycle_id"`
	Wallet       string        `json:"wallet"`
	Collectibles []Collectible `json:"collectibles"`
	CreatedAt    time.Time     `json:"created_at"`
}

// CollectionInfo describes a collection a wallet holds assets of
type CollectionInfo struct {
	Name                  string `json:"name"`
	Slug                  string `json:"slug"`
	ImageURL              string `json:"imageUrl"`
	ContractAddress       string `json:"contractAddress"`
	SafelistRequestStatus string `json:"safeListRequestStatus,omitempty"`
	NumNFTsOwned          int    `json:"numNftsOwned"`
}

// CollectiblePage is one page of collectibles from a cursor-paginated provider
type CollectiblePage struct {
	Data         []Collectible `json:"data"`
	Continuation *string       `json:"continuation"`
	Count        int           `json:"count"`
}

// CollectionPage is one page of collections from a cursor-paginated provider
type CollectionPage struct {
	Data         []CollectionInfo `json:"data"`
	Continuation *string          `json:"continuation"`
}
