package opensea

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/feral-file/ff-collectibles/internal/adapter"
	"github.com/feral-file/ff-collectibles/internal/config"
	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/ratelimit"
	"github.com/feral-file/ff-collectibles/internal/types"
)

const PROVIDER_NAME = string(domain.ProviderOpenSea)

// EventType is the event_type filter of the events endpoint
type EventType string

const (
	EventTypeCreated  EventType = "created"
	EventTypeTransfer EventType = "transfer"
)

// Account is a user reference on assets and events
type Account struct {
	Address string `json:"address"`
}

// AssetContract is the contract an asset belongs to
type AssetContract struct {
	Address *string `json:"address"`
	Name    *string `json:"name"`
}

// Asset represents an asset from the OpenSea v1 API
type Asset struct {
	ID                   json.Number     `json:"id"`
	TokenID              string          `json:"token_id"`
	Name                 *string         `json:"name"`
	Description          *string         `json:"description"`
	ExternalLink         *string         `json:"external_link"`
	Permalink            *string         `json:"permalink"`
	ImageURL             *string         `json:"image_url"`
	ImagePreviewURL      *string         `json:"image_preview_url"`
	ImageThumbnailURL    *string         `json:"image_thumbnail_url"`
	ImageOriginalURL     *string         `json:"image_original_url"`
	AnimationURL         *string         `json:"animation_url"`
	AnimationOriginalURL *string         `json:"animation_original_url"`
	Owner                *Account        `json:"owner"`
	AssetContract        *AssetContract  `json:"asset_contract"`
	Collection           json.RawMessage `json:"collection"`
}

// ToAsset normalizes the asset for the queried wallet
func (a Asset) ToAsset(wallet string) domain.Asset {
	asset := domain.Asset{
		Provider:             domain.ProviderOpenSea,
		ID:                   types.NilIfEmpty(a.ID.String()),
		TokenID:              a.TokenID,
		Name:                 a.Name,
		Description:          a.Description,
		ExternalLink:         a.ExternalLink,
		Permalink:            a.Permalink,
		ImageURL:             a.ImageURL,
		ImageOriginalURL:     a.ImageOriginalURL,
		ImagePreviewURL:      a.ImagePreviewURL,
		ImageThumbnailURL:    a.ImageThumbnailURL,
		AnimationURL:         a.AnimationURL,
		AnimationOriginalURL: a.AnimationOriginalURL,
		Collection:           a.Collection,
		Wallet:               wallet,
	}
	if a.AssetContract != nil {
		asset.ContractAddress = a.AssetContract.Address
		asset.ContractName = a.AssetContract.Name
	}
	if a.Owner != nil {
		asset.Owner = types.NilIfEmpty(a.Owner.Address)
	}
	return asset
}

// Event represents an asset event from the OpenSea v1 API
type Event struct {
	ID          json.Number `json:"id"`
	CreatedDate string      `json:"created_date"`
	FromAccount *Account    `json:"from_account"`
	ToAccount   *Account    `json:"to_account"`
	Asset       *Asset      `json:"asset"`
}

// ToEvent normalizes the event for the queried wallet.
// Events without a single asset, such as bundle sales, are skipped.
func (e Event) ToEvent(kind domain.EventKind, wallet string) (domain.OwnershipEvent, bool) {
	if e.Asset == nil {
		return domain.OwnershipEvent{}, false
	}

	event := domain.OwnershipEvent{
		ID:        e.ID.String(),
		Kind:      kind,
		CreatedAt: e.CreatedDate,
		Wallet:    wallet,
		Asset:     e.Asset.ToAsset(wallet),
	}
	if e.FromAccount != nil {
		event.FromAddress = e.FromAccount.Address
	}
	if e.ToAccount != nil {
		event.ToAddress = e.ToAccount.Address
	}
	return event, true
}

// Collection represents a collection from the OpenSea v1 API
type Collection struct {
	Name                  string          `json:"name"`
	Slug                  string          `json:"slug"`
	ImageURL              *string         `json:"image_url"`
	PrimaryAssetContracts []AssetContract `json:"primary_asset_contracts"`
	SafelistRequestStatus *string         `json:"safelist_request_status"`
	OwnedAssetCount       json.Number     `json:"owned_asset_count"`
}

// ToCollectionInfo converts the collection, joining its primary contract addresses with commas
func (c Collection) ToCollectionInfo() domain.CollectionInfo {
	var addresses []string
	for _, contract := range c.PrimaryAssetContracts {
		if !types.StringNilOrEmpty(contract.Address) {
			addresses = append(addresses, *contract.Address)
		}
	}

	owned, _ := c.OwnedAssetCount.Int64()
	return domain.CollectionInfo{
		Name:                  c.Name,
		Slug:                  c.Slug,
		ImageURL:              types.SafeString(c.ImageURL),
		ContractAddress:       strings.Join(addresses, ","),
		SafelistRequestStatus: types.SafeString(c.SafelistRequestStatus),
		NumNFTsOwned:          int(owned),
	}
}

// AssetsResponse represents the response of the assets endpoint
type AssetsResponse struct {
	Assets []Asset `json:"assets"`
}

// EventsResponse represents the response of the events endpoint
type EventsResponse struct {
	AssetEvents []Event `json:"asset_events"`
}

// Client defines the interface for OpenSea client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/opensea_client.go -package=mocks -mock_names=Client=MockOpenSeaClient
type Client interface {
	// GetAssets fetches one page of assets owned by a wallet
	GetAssets(ctx context.Context, owner string, offset, limit int) ([]Asset, error)

	// GetAllAssets pages through every asset owned by a wallet.
	// On a failed page it returns the assets fetched so far along with the error.
	GetAllAssets(ctx context.Context, owner string) ([]Asset, error)

	// GetEvents fetches the latest events of a kind involving a wallet
	GetEvents(ctx context.Context, wallet string, eventType EventType) ([]Event, error)

	// GetAsset fetches a single asset
	GetAsset(ctx context.Context, contractAddress, tokenID string) (*Asset, error)

	// GetAssetsByContractsAndTokenIDs fetches the listed assets owned by a wallet.
	// contracts and tokenIDs are paired by index.
	GetAssetsByContractsAndTokenIDs(ctx context.Context, owner string, contracts, tokenIDs []string) ([]Asset, error)

	// GetCollection fetches the collection of a single asset
	GetCollection(ctx context.Context, contractAddress, tokenID string) (*domain.CollectionInfo, error)

	// GetCollections fetches one page of collections a wallet holds assets of
	GetCollections(ctx context.Context, owner string, offset, limit int) ([]domain.CollectionInfo, error)

	// GetAllCollections pages through every collection a wallet holds assets of
	GetAllCollections(ctx context.Context, owner string) ([]domain.CollectionInfo, error)
}

// OpenSeaClient implements OpenSea client
type OpenSeaClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	config         config.OpenSeaConfig
	json           adapter.JSON
}

// NewClient creates a new OpenSea client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, cfg config.OpenSeaConfig, json adapter.JSON) Client {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	if cfg.AssetLimit <= 0 {
		cfg.AssetLimit = 200
	}
	if cfg.EventLimit <= 0 {
		cfg.EventLimit = 300
	}
	return &OpenSeaClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		config:         cfg,
		json:           json,
	}
}

// get calls the API through the rate limiter and decodes the response into v
func (c *OpenSeaClient) get(ctx context.Context, url string, v interface{}) error {
	headers := map[string]string{}
	if c.config.APIKey != "" {
		headers["X-API-KEY"] = c.config.APIKey
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, url, headers)
	})
	if err != nil {
		return fmt.Errorf("failed to call OpenSea API: %w", err)
	}

	if err := c.json.Unmarshal(respBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal OpenSea response: %w", err)
	}
	return nil
}

func (c *OpenSeaClient) GetAssets(ctx context.Context, owner string, offset, limit int) ([]Asset, error) {
	query := url.Values{}
	query.Set("owner", owner)
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var response AssetsResponse
	if err := c.get(ctx, c.config.URL+"/assets?"+query.Encode(), &response); err != nil {
		return nil, err
	}
	return response.Assets, nil
}

func (c *OpenSeaClient) GetAllAssets(ctx context.Context, owner string) ([]Asset, error) {
	var assets []Asset
	for offset := 0; ; offset += c.config.AssetLimit {
		page, err := c.GetAssets(ctx, owner, offset, c.config.AssetLimit)
		if err != nil {
			// Pages fetched so far are still returned
			return assets, err
		}
		assets = append(assets, page...)
		if len(page) < c.config.AssetLimit {
			return assets, nil
		}
	}
}

func (c *OpenSeaClient) GetEvents(ctx context.Context, wallet string, eventType EventType) ([]Event, error) {
	query := url.Values{}
	query.Set("account_address", wallet)
	query.Set("limit", strconv.Itoa(c.config.EventLimit))
	query.Set("event_type", string(eventType))
	query.Set("only_opensea", "false")

	var response EventsResponse
	if err := c.get(ctx, c.config.URL+"/events?"+query.Encode(), &response); err != nil {
		return nil, err
	}
	return response.AssetEvents, nil
}

func (c *OpenSeaClient) GetAsset(ctx context.Context, contractAddress, tokenID string) (*Asset, error) {
	var asset Asset
	if err := c.get(ctx, fmt.Sprintf("%s/asset/%s/%s", c.config.URL, contractAddress, tokenID), &asset); err != nil {
		return nil, err
	}
	if asset.TokenID == "" {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrAssetNotFound, contractAddress, tokenID)
	}
	return &asset, nil
}

func (c *OpenSeaClient) GetAssetsByContractsAndTokenIDs(ctx context.Context, owner string, contracts, tokenIDs []string) ([]Asset, error) {
	query := url.Values{}
	query.Set("owner", owner)
	query["asset_contract_addresses"] = contracts
	query["token_ids"] = tokenIDs

	var response AssetsResponse
	if err := c.get(ctx, c.config.URL+"/assets?"+query.Encode(), &response); err != nil {
		return nil, err
	}
	return response.Assets, nil
}

func (c *OpenSeaClient) GetCollection(ctx context.Context, contractAddress, tokenID string) (*domain.CollectionInfo, error) {
	asset, err := c.GetAsset(ctx, contractAddress, tokenID)
	if err != nil {
		return nil, err
	}
	if len(asset.Collection) == 0 || string(asset.Collection) == "null" {
		return nil, fmt.Errorf("%w: %s/%s has no collection", domain.ErrAssetNotFound, contractAddress, tokenID)
	}

	var collection Collection
	if err := c.json.Unmarshal(asset.Collection, &collection); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OpenSea collection: %w", err)
	}

	info := collection.ToCollectionInfo()
	return &info, nil
}

func (c *OpenSeaClient) GetCollections(ctx context.Context, owner string, offset, limit int) ([]domain.CollectionInfo, error) {
	query := url.Values{}
	query.Set("asset_owner", owner)
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var response []Collection
	if err := c.get(ctx, c.config.URL+"/collections?"+query.Encode(), &response); err != nil {
		return nil, err
	}

	infos := make([]domain.CollectionInfo, 0, len(response))
	for _, collection := range response {
		infos = append(infos, collection.ToCollectionInfo())
	}
	return infos, nil
}

func (c *OpenSeaClient) GetAllCollections(ctx context.Context, owner string) ([]domain.CollectionInfo, error) {
	var collections []domain.CollectionInfo
	for offset := 0; ; offset += c.config.AssetLimit {
		page, err := c.GetCollections(ctx, owner, offset, c.config.AssetLimit)
		if err != nil {
			return nil, err
		}
		collections = append(collections, page...)
		if len(page) < c.config.AssetLimit {
			return collections, nil
		}
	}
}
