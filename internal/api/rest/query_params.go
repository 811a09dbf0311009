package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/types"
)

// MAX_PAGE_SIZE is the largest page the paginated provider serves
const MAX_PAGE_SIZE = 50

// ListCollectiblesQueryParams holds query parameters for GET /collectibles
type ListCollectiblesQueryParams struct {
	Wallets []string `form:"wallet"`
}

// WalletCollectiblesQueryParams holds query parameters for GET /wallets/:wallet/collectibles
type WalletCollectiblesQueryParams struct {
	ContractAddresses []string `form:"contract_address"`
	TokenIDs          []string `form:"token_id"`
}

// CollectionsQueryParams holds query parameters for GET /wallets/:wallet/collections
type CollectionsQueryParams struct {
	Provider     domain.Provider `form:"provider,default=opensea"`
	Limit        int             `form:"limit,default=50"`
	Continuation string          `form:"continuation"`
}

// NFTsQueryParams holds query parameters for GET /wallets/:wallet/nfts
type NFTsQueryParams struct {
	ContractAddress string `form:"contract_address"`
	Limit           int    `form:"limit,default=50"`
	Continuation    string `form:"continuation"`
	Exclude1155     bool   `form:"exclude_1155"`
}

// AssetQueryParams holds query parameters for GET /assets/:contract/:token_id
type AssetQueryParams struct {
	Provider domain.Provider `form:"provider,default=opensea"`
}

// CollectionQueryParams holds query parameters for GET /collections/:contract/:token_id
type CollectionQueryParams struct {
	Dev bool `form:"dev"`
}

// splitList accepts both repeated and comma-separated values, dropping blanks and duplicates
func splitList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

func validateWallet(wallet string) error {
	if !types.IsEthereumAddress(wallet) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidWallet, wallet)
	}
	return nil
}

func capLimit(limit int) int {
	if limit <= 0 || limit > MAX_PAGE_SIZE {
		return MAX_PAGE_SIZE
	}
	return limit
}

// ParseListCollectiblesQuery parses query parameters for GET /collectibles
func ParseListCollectiblesQuery(c *gin.Context) (*ListCollectiblesQueryParams, error) {
	var params ListCollectiblesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Wallets = splitList(params.Wallets)
	if len(params.Wallets) == 0 {
		return nil, fmt.Errorf("at least one wallet is required")
	}
	for _, wallet := range params.Wallets {
		if err := validateWallet(wallet); err != nil {
			return nil, err
		}
	}

	return &params, nil
}

// ParseWalletCollectiblesQuery parses query parameters for GET /wallets/:wallet/collectibles
func ParseWalletCollectiblesQuery(c *gin.Context) (*WalletCollectiblesQueryParams, error) {
	var params WalletCollectiblesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Pairs are matched by position so duplicates are kept
	params.ContractAddresses = splitPositional(params.ContractAddresses)
	params.TokenIDs = splitPositional(params.TokenIDs)

	return &params, nil
}

func splitPositional(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				result = append(result, item)
			}
		}
	}
	return result
}

// ParseCollectionsQuery parses query parameters for GET /wallets/:wallet/collections
func ParseCollectionsQuery(c *gin.Context) (*CollectionsQueryParams, error) {
	var params CollectionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if !domain.IsValidProvider(params.Provider) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, params.Provider)
	}
	params.Limit = capLimit(params.Limit)

	return &params, nil
}

// ParseNFTsQuery parses query parameters for GET /wallets/:wallet/nfts
func ParseNFTsQuery(c *gin.Context) (*NFTsQueryParams, error) {
	var params NFTsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Limit = capLimit(params.Limit)

	return &params, nil
}

// ParseAssetQuery parses query parameters for GET /assets/:contract/:token_id
func ParseAssetQuery(c *gin.Context) (*AssetQueryParams, error) {
	var params AssetQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if !domain.IsValidProvider(params.Provider) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, params.Provider)
	}

	return &params, nil
}
