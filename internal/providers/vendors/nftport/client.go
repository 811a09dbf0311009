package nftport

import (
	"context"
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

const (
	PROVIDER_NAME = string(domain.ProviderNftPort)

	// MAX_PAGE_SIZE is the largest page the accounts endpoints accept
	MAX_PAGE_SIZE = 50

	responseOK = "OK"
)

// NFTMetadata is the part of the token metadata the client reads
type NFTMetadata struct {
	Description *string `json:"description"`
}

// NFT represents an NFT from the NftPort v0 API
type NFT struct {
	ContractAddress    string       `json:"contract_address"`
	TokenID            string       `json:"token_id"`
	Name               *string      `json:"name"`
	FileURL            *string      `json:"file_url"`
	CachedFileURL      *string      `json:"cached_file_url"`
	AnimationURL       *string      `json:"animation_url"`
	CachedAnimationURL *string      `json:"cached_animation_url"`
	Metadata           *NFTMetadata `json:"metadata"`
}

// ToAsset normalizes the NFT into the reduced asset shape, owned by owner
func (n NFT) ToAsset(owner string) domain.Asset {
	owner = strings.ToLower(owner)

	asset := domain.Asset{
		Provider:        domain.ProviderNftPort,
		TokenID:         n.TokenID,
		ContractAddress: types.NilIfEmpty(n.ContractAddress),
		Name:            n.Name,
		ImageURL:        types.FirstNonEmpty(n.FileURL, n.CachedFileURL),
		AnimationURL:    types.FirstNonEmpty(n.AnimationURL, n.CachedAnimationURL),
		Owner:           types.NilIfEmpty(owner),
		Wallet:          owner,
	}
	if n.Metadata != nil && !types.StringNilOrEmpty(n.Metadata.Description) {
		asset.Description = n.Metadata.Description
	}
	return asset
}

// ContractMetadata holds the display metadata of a contract
type ContractMetadata struct {
	ThumbnailURL       *string `json:"thumbnail_url"`
	CachedThumbnailURL *string `json:"cached_thumbnail_url"`
}

// Contract represents a contract from the NftPort v0 API
type Contract struct {
	Name                  *string           `json:"name"`
	Slug                  *string           `json:"slug"`
	Address               *string           `json:"address"`
	Metadata              *ContractMetadata `json:"metadata"`
	SafelistRequestStatus *string           `json:"safelist_request_status"`
	NumNFTsOwned          int               `json:"num_nfts_owned"`
}

// ToCollectionInfo converts the contract, contractAddress is used when the record has no address
func (c Contract) ToCollectionInfo(contractAddress string) domain.CollectionInfo {
	address := types.SafeString(c.Address)
	if address == "" {
		address = contractAddress
	}

	info := domain.CollectionInfo{
		Name:                  types.SafeString(c.Name),
		Slug:                  types.SafeString(c.Slug),
		ContractAddress:       strings.ToLower(address),
		SafelistRequestStatus: types.SafeString(c.SafelistRequestStatus),
		NumNFTsOwned:          c.NumNFTsOwned,
	}
	if c.Metadata != nil {
		info.ImageURL = types.SafeString(types.FirstNonEmpty(c.Metadata.ThumbnailURL, c.Metadata.CachedThumbnailURL))
	}
	return info
}

// NFTsResponse represents a page of the account NFTs endpoint
type NFTsResponse struct {
	Response     string  `json:"response"`
	NFTs         []NFT   `json:"nfts"`
	Continuation *string `json:"continuation"`
	Total        int     `json:"total"`
}

// NFTResponse represents the response of the NFT details endpoint
type NFTResponse struct {
	Response string    `json:"response"`
	NFT      *NFT      `json:"nft"`
	Contract *Contract `json:"contract"`
	Owner    *string   `json:"owner"`
	Error    *string   `json:"error"`
}

// ContractsResponse represents a page of the account contracts endpoint
type ContractsResponse struct {
	Response     string     `json:"response"`
	Contracts    []Contract `json:"contracts"`
	Continuation *string    `json:"continuation"`
}

// Client defines the interface for NftPort client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/nftport_client.go -package=mocks -mock_names=Client=MockNftPortClient
type Client interface {
	// GetNFTs fetches one page of NFTs owned by a wallet, optionally within one contract
	GetNFTs(ctx context.Context, wallet, contractAddress string, pageSize int, continuation string, exclude1155 bool) (*NFTsResponse, error)

	// GetNFT fetches a single NFT together with its contract and owner
	GetNFT(ctx context.Context, contractAddress, tokenID string) (*NFTResponse, error)

	// GetContracts fetches one page of contracts a wallet owns NFTs of
	GetContracts(ctx context.Context, wallet string, pageSize int, continuation string) (*ContractsResponse, error)
}

// NftPortClient implements NftPort client
type NftPortClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	config         config.NftPortConfig
	json           adapter.JSON
}

// NewClient creates a new NftPort client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, cfg config.NftPortConfig, json adapter.JSON) Client {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	if cfg.AssetLimit <= 0 || cfg.AssetLimit > MAX_PAGE_SIZE {
		cfg.AssetLimit = MAX_PAGE_SIZE
	}
	if cfg.Chain == "" {
		cfg.Chain = "ethereum"
	}
	return &NftPortClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		config:         cfg,
		json:           json,
	}
}

func (c *NftPortClient) pageSize(pageSize int) int {
	if pageSize <= 0 || pageSize > c.config.AssetLimit {
		return c.config.AssetLimit
	}
	return pageSize
}

// get calls the API through the rate limiter and decodes the response into v
func (c *NftPortClient) get(ctx context.Context, url string, v interface{}) error {
	if c.config.APIKey == "" {
		return domain.ErrNoAPIKey
	}

	headers := map[string]string{
		"Authorization": c.config.APIKey,
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, url, headers)
	})
	if err != nil {
		return fmt.Errorf("failed to call NftPort API: %w", err)
	}

	if err := c.json.Unmarshal(respBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal NftPort response: %w", err)
	}
	return nil
}

func (c *NftPortClient) GetNFTs(ctx context.Context, wallet, contractAddress string, pageSize int, continuation string, exclude1155 bool) (*NFTsResponse, error) {
	query := url.Values{}
	query.Set("chain", c.config.Chain)
	query.Set("include", "metadata")
	query.Set("page_size", strconv.Itoa(c.pageSize(pageSize)))
	if exclude1155 {
		query.Set("exclude", "erc1155")
	}
	if continuation != "" {
		query.Set("continuation", continuation)
	}
	if contractAddress != "" {
		query.Set("contract_address", contractAddress)
	}

	var response NFTsResponse
	if err := c.get(ctx, fmt.Sprintf("%s/v0/accounts/%s?%s", c.config.URL, wallet, query.Encode()), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *NftPortClient) GetNFT(ctx context.Context, contractAddress, tokenID string) (*NFTResponse, error) {
	query := url.Values{}
	query.Set("chain", c.config.Chain)

	var response NFTResponse
	if err := c.get(ctx, fmt.Sprintf("%s/v0/nfts/%s/%s?%s", c.config.URL, contractAddress, tokenID, query.Encode()), &response); err != nil {
		return nil, err
	}

	if response.Response != responseOK || response.NFT == nil {
		return nil, fmt.Errorf("%w: %s/%s: %s", domain.ErrAssetNotFound, contractAddress, tokenID, types.SafeString(response.Error))
	}
	return &response, nil
}

func (c *NftPortClient) GetContracts(ctx context.Context, wallet string, pageSize int, continuation string) (*ContractsResponse, error) {
	query := url.Values{}
	query.Set("chain", c.config.Chain)
	query.Set("type", "owns_contract_nfts")
	query.Set("page_size", strconv.Itoa(c.pageSize(pageSize)))
	if continuation != "" {
		query.Set("continuation", continuation)
	}

	var response ContractsResponse
	if err := c.get(ctx, fmt.Sprintf("%s/v0/accounts/contracts/%s?%s", c.config.URL, wallet, query.Encode()), &response); err != nil {
		return nil, err
	}
	return &response, nil
}
