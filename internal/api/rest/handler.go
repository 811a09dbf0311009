package rest

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-collectibles/internal/adapter"
	"github.com/feral-file/ff-collectibles/internal/collectibles"
	"github.com/feral-file/ff-collectibles/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListCollectibles runs a fetch cycle for the wallets and returns the reconciled state
	// GET /api/v1/collectibles?wallet=<address1>,<address2>
	// The response carries an ETag computed over its canonical JSON, If-None-Match yields 304
	ListCollectibles(c *gin.Context)

	// GetWalletCollectibles retrieves the listed collectibles owned by a wallet
	// GET /api/v1/wallets/:wallet/collectibles?contract_address=<a1>,<a2>&token_id=<t1>,<t2>
	GetWalletCollectibles(c *gin.Context)

	// GetWalletCollections retrieves the collections a wallet holds assets of
	// GET /api/v1/wallets/:wallet/collections?provider=<opensea|nftport>&limit=<limit>&continuation=<cursor>
	GetWalletCollections(c *gin.Context)

	// GetWalletNFTs retrieves one page of collectibles owned by a wallet
	// GET /api/v1/wallets/:wallet/nfts?contract_address=<address>&limit=<limit>&continuation=<cursor>&exclude_1155=<bool>
	GetWalletNFTs(c *gin.Context)

	// GetAsset retrieves a single collectible
	// GET /api/v1/assets/:contract/:token_id?provider=<opensea|nftport>
	GetAsset(c *gin.Context)

	// GetAssetOwner retrieves the current owner of an asset
	// GET /api/v1/assets/:contract/:token_id/owner
	GetAssetOwner(c *gin.Context)

	// GetCollection retrieves the collection of an asset
	// GET /api/v1/collections/:contract/:token_id?dev=<bool>
	GetCollection(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service collectibles.Service
	json    adapter.JSON
}

// NewHandler creates a new REST API handler
func NewHandler(service collectibles.Service, json adapter.JSON) Handler {
	return &handler{
		service: service,
		json:    json,
	}
}

func (h *handler) ListCollectibles(c *gin.Context) {
	queryParams, err := ParseListCollectiblesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	state, err := h.service.GetAllCollectibles(c.Request.Context(), queryParams.Wallets)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch collectibles")
		return
	}

	body, err := h.json.MarshalCanonical(state)
	if err != nil {
		respondInternalError(c, err, "Failed to encode collectibles")
		return
	}

	sum := sha256.Sum256(body)
	etag := `"` + hex.EncodeToString(sum[:]) + `"`
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *handler) GetWalletCollectibles(c *gin.Context) {
	wallet := c.Param("wallet")
	if err := validateWallet(wallet); err != nil {
		respondBadRequest(c, "Invalid wallet address", err.Error())
		return
	}

	queryParams, err := ParseWalletCollectiblesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.service.GetCollectiblesForWalletByContractsAndTokenIDs(
		c.Request.Context(),
		wallet,
		queryParams.ContractAddresses,
		queryParams.TokenIDs,
	)
	if err != nil {
		respondServiceError(c, err, "Failed to get collectibles")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) GetWalletCollections(c *gin.Context) {
	wallet := c.Param("wallet")
	if err := validateWallet(wallet); err != nil {
		respondBadRequest(c, "Invalid wallet address", err.Error())
		return
	}

	queryParams, err := ParseCollectionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// Only the minimal provider paginates, the full-featured one returns every collection
	if queryParams.Provider == domain.ProviderNftPort {
		page, err := h.service.GetCollectionsPage(c.Request.Context(), wallet, queryParams.Limit, queryParams.Continuation)
		if err != nil {
			respondServiceError(c, err, "Failed to get collections")
			return
		}
		c.JSON(http.StatusOK, page)
		return
	}

	result, err := h.service.GetAllCollections(c.Request.Context(), wallet)
	if err != nil {
		respondServiceError(c, err, "Failed to get collections")
		return
	}

	c.JSON(http.StatusOK, domain.CollectionPage{Data: result})
}

func (h *handler) GetWalletNFTs(c *gin.Context) {
	wallet := c.Param("wallet")
	if err := validateWallet(wallet); err != nil {
		respondBadRequest(c, "Invalid wallet address", err.Error())
		return
	}

	queryParams, err := ParseNFTsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	page, err := h.service.GetNFTsPage(
		c.Request.Context(),
		wallet,
		queryParams.ContractAddress,
		queryParams.Limit,
		queryParams.Continuation,
		queryParams.Exclude1155,
	)
	if err != nil {
		respondServiceError(c, err, "Failed to get NFTs")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *handler) GetAsset(c *gin.Context) {
	contract, tokenID := c.Param("contract"), c.Param("token_id")

	queryParams, err := ParseAssetQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.service.GetAssetDetail(c.Request.Context(), queryParams.Provider, contract, tokenID)
	if err != nil {
		respondServiceError(c, err, "Failed to get asset")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) GetAssetOwner(c *gin.Context) {
	contract, tokenID := c.Param("contract"), c.Param("token_id")

	owner, err := h.service.GetAssetOwner(c.Request.Context(), contract, tokenID)
	if err != nil {
		respondServiceError(c, err, "Failed to get asset owner")
		return
	}

	c.JSON(http.StatusOK, gin.H{"owner": owner})
}

func (h *handler) GetCollection(c *gin.Context) {
	contract, tokenID := c.Param("contract"), c.Param("token_id")

	var queryParams CollectionQueryParams
	if err := c.ShouldBindQuery(&queryParams); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.service.GetCollection(c.Request.Context(), contract, tokenID, queryParams.Dev)
	if err != nil {
		respondServiceError(c, err, "Failed to get collection")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-collectibles-api",
	})
}
