package collectibles

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-collectibles/internal/adapter"
	"github.com/feral-file/ff-collectibles/internal/collectible"
	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/logger"
	"github.com/feral-file/ff-collectibles/internal/messaging"
	"github.com/feral-file/ff-collectibles/internal/metrics"
	"github.com/feral-file/ff-collectibles/internal/providers/vendors/nftport"
	"github.com/feral-file/ff-collectibles/internal/providers/vendors/opensea"
	"github.com/feral-file/ff-collectibles/internal/reconciler"
	"github.com/feral-file/ff-collectibles/internal/registry"
	"github.com/feral-file/ff-collectibles/internal/types"
)

var (
	// ErrAllStreamsFailed is returned when every fetch of a cycle failed
	ErrAllStreamsFailed = errors.New("all provider streams failed")

	// ErrMismatchedTokenLists is returned when contracts and token ids cannot be paired
	ErrMismatchedTokenLists = errors.New("contract addresses and token ids must have the same length")
)

// Stream labels
const (
	StreamHoldings  = "holdings"
	StreamCreations = "creations"
	StreamTransfers = "transfers"
)

// Purger drops stale cache entries between fetch cycles
type Purger interface {
	Purge()
}

// Service defines the collectible operations exposed to the API and the CLI
//
//go:generate mockgen -source=service.go -destination=../mocks/collectibles_service.go -package=mocks -mock_names=Service=MockCollectiblesService
type Service interface {
	// GetAllCollectibles runs one fetch cycle for the wallets and returns their reconciled collectibles
	GetAllCollectibles(ctx context.Context, wallets []string) (domain.CollectibleState, error)

	// GetCollectiblesForWalletByContractsAndTokenIDs returns the listed collectibles owned by a wallet
	GetCollectiblesForWalletByContractsAndTokenIDs(ctx context.Context, wallet string, contracts, tokenIDs []string) ([]domain.Collectible, error)

	// GetAssetDetail returns a single collectible from the given provider
	GetAssetDetail(ctx context.Context, provider domain.Provider, contractAddress, tokenID string) (*domain.Collectible, error)

	// GetAssetOwner returns the current owner of an asset
	GetAssetOwner(ctx context.Context, contractAddress, tokenID string) (string, error)

	// GetCollection returns the collection of an asset
	GetCollection(ctx context.Context, contractAddress, tokenID string, dev bool) (*domain.CollectionInfo, error)

	// GetAllCollections returns every collection a wallet holds assets of
	GetAllCollections(ctx context.Context, wallet string) ([]domain.CollectionInfo, error)

	// GetCollectionsPage returns one page of the collections a wallet holds assets of
	GetCollectionsPage(ctx context.Context, wallet string, limit int, continuation string) (*domain.CollectionPage, error)

	// GetNFTsPage returns one page of collectibles owned by a wallet
	GetNFTsPage(ctx context.Context, wallet, contractAddress string, limit int, continuation string, exclude1155 bool) (*domain.CollectiblePage, error)
}

type service struct {
	openSea    opensea.Client
	nftPort    nftport.Client
	mapper     collectible.Mapper
	reconciler reconciler.Reconciler
	publisher  messaging.Publisher
	purger     Purger
	blacklist  registry.BlacklistRegistry
	clock      adapter.Clock
	workers    int
}

// NewService creates the collectibles service.
// publisher, purger and blacklist are optional.
func NewService(
	openSea opensea.Client,
	nftPort nftport.Client,
	mapper collectible.Mapper,
	reconciler reconciler.Reconciler,
	publisher messaging.Publisher,
	purger Purger,
	blacklist registry.BlacklistRegistry,
	clock adapter.Clock,
	workers int,
) Service {
	if workers <= 0 {
		workers = 1
	}
	return &service{
		openSea:    openSea,
		nftPort:    nftPort,
		mapper:     mapper,
		reconciler: reconciler,
		publisher:  publisher,
		purger:     purger,
		blacklist:  blacklist,
		clock:      clock,
		workers:    workers,
	}
}

// streams holds the per-wallet results of the three fetches, indexed like the wallets
type streams struct {
	holdings     [][]domain.Asset
	creations    [][]domain.OwnershipEvent
	transfers    [][]domain.OwnershipEvent
	holdingErrs  []error
	creationErrs []error
	transferErrs []error
}

func newStreams(n int) *streams {
	return &streams{
		holdings:     make([][]domain.Asset, n),
		creations:    make([][]domain.OwnershipEvent, n),
		transfers:    make([][]domain.OwnershipEvent, n),
		holdingErrs:  make([]error, n),
		creationErrs: make([]error, n),
		transferErrs: make([]error, n),
	}
}

func (s *service) GetAllCollectibles(ctx context.Context, wallets []string) (domain.CollectibleState, error) {
	if len(wallets) == 0 {
		return domain.CollectibleState{}, nil
	}

	startTime := s.clock.Now()
	cycleID := ulid.MustNew(ulid.Timestamp(startTime), ulid.DefaultEntropy()).String()
	ctx = logger.WithFields(ctx, zap.String("cycle_id", cycleID))
	logger.InfoCtx(ctx, "Starting fetch cycle", zap.Int("wallets", len(wallets)))

	results := s.fetch(ctx, wallets)
	if err := s.checkFailures(ctx, wallets, results); err != nil {
		return nil, err
	}

	input := reconciler.Input{Wallets: wallets}
	for i := range wallets {
		input.Holdings = append(input.Holdings, results.holdings[i]...)
		input.Creations = append(input.Creations, results.creations[i]...)
		input.Transfers = append(input.Transfers, results.transfers[i]...)
	}

	state := s.reconciler.Reconcile(ctx, input)

	s.publish(ctx, cycleID, wallets, state)
	if s.purger != nil {
		s.purger.Purge()
	}

	duration := s.clock.Since(startTime)
	metrics.CycleDuration.Observe(duration.Seconds())
	logger.InfoCtx(ctx, "Fetch cycle completed",
		zap.Duration("duration", duration),
		zap.Int("holdings", len(input.Holdings)),
		zap.Int("creations", len(input.Creations)),
		zap.Int("transfers", len(input.Transfers)),
		zap.Int("collectibles", state.Count()),
	)

	return state, nil
}

// fetch runs the three streams for every wallet concurrently.
// A failed fetch leaves an empty result and its error in the slot of that wallet.
func (s *service) fetch(ctx context.Context, wallets []string) *streams {
	results := newStreams(len(wallets))

	pool := pond.NewPool(s.workers)
	for i, wallet := range wallets {
		pool.Submit(func() {
			results.holdings[i], results.holdingErrs[i] = s.fetchHoldings(ctx, wallet)
		})
		pool.Submit(func() {
			results.creations[i], results.creationErrs[i] = s.fetchEvents(ctx, wallet, opensea.EventTypeCreated, domain.EventKindCreation)
		})
		pool.Submit(func() {
			results.transfers[i], results.transferErrs[i] = s.fetchEvents(ctx, wallet, opensea.EventTypeTransfer, domain.EventKindTransfer)
		})
	}
	pool.StopAndWait()

	return results
}

func (s *service) fetchHoldings(ctx context.Context, wallet string) ([]domain.Asset, error) {
	// A failed page still leaves the earlier pages to reconcile
	raw, err := s.openSea.GetAllAssets(ctx, wallet)

	assets := make([]domain.Asset, 0, len(raw))
	for _, a := range raw {
		if asset := a.ToAsset(wallet); !s.blacklisted(asset) {
			assets = append(assets, asset)
		}
	}
	return assets, err
}

func (s *service) fetchEvents(ctx context.Context, wallet string, eventType opensea.EventType, kind domain.EventKind) ([]domain.OwnershipEvent, error) {
	raw, err := s.openSea.GetEvents(ctx, wallet, eventType)
	if err != nil {
		return nil, err
	}

	events := make([]domain.OwnershipEvent, 0, len(raw))
	for _, e := range raw {
		if event, ok := e.ToEvent(kind, wallet); ok && !s.blacklisted(event.Asset) {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *service) blacklisted(asset domain.Asset) bool {
	return s.blacklist != nil && s.blacklist.IsAssetBlacklisted(asset)
}

// checkFailures logs every failed fetch and fails the cycle only when nothing succeeded
func (s *service) checkFailures(ctx context.Context, wallets []string, results *streams) error {
	total, failed := 0, 0
	var errs []error

	for _, stream := range []struct {
		name string
		errs []error
	}{
		{StreamHoldings, results.holdingErrs},
		{StreamCreations, results.creationErrs},
		{StreamTransfers, results.transferErrs},
	} {
		for i, err := range stream.errs {
			total++
			if err == nil {
				continue
			}
			failed++
			errs = append(errs, fmt.Errorf("%s %s: %w", stream.name, wallets[i], err))
			metrics.FetchFailures.WithLabelValues(stream.name).Inc()
			logger.WarnCtx(ctx, "Fetch failed, continuing with a partial or empty result",
				zap.String("stream", stream.name),
				zap.String("wallet", wallets[i]),
				zap.Error(err),
			)
		}
	}

	if failed == total {
		return fmt.Errorf("%w: %w", ErrAllStreamsFailed, errors.Join(errs...))
	}
	return nil
}

// publish sends one snapshot per queried wallet, failures are only logged
func (s *service) publish(ctx context.Context, cycleID string, wallets []string, state domain.CollectibleState) {
	if s.publisher == nil {
		return
	}

	createdAt := s.clock.Now()
	for _, wallet := range wallets {
		snapshot := domain.CollectibleSnapshot{
			CycleID:      cycleID,
			Wallet:       wallet,
			Collectibles: state[wallet],
			CreatedAt:    createdAt,
		}
		if snapshot.Collectibles == nil {
			snapshot.Collectibles = []domain.Collectible{}
		}
		if err := s.publisher.PublishSnapshot(ctx, snapshot); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("wallet", wallet))
		}
	}
}

// mapAll maps assets concurrently, keeping their order
func (s *service) mapAll(ctx context.Context, assets []domain.Asset) []domain.Collectible {
	collectibles := make([]domain.Collectible, len(assets))
	if len(assets) == 0 {
		return collectibles
	}

	pool := pond.NewPool(s.workers)
	for i, asset := range assets {
		pool.Submit(func() {
			collectibles[i] = s.mapper.ToCollectible(ctx, asset)
		})
	}
	pool.StopAndWait()

	return collectibles
}

func (s *service) GetCollectiblesForWalletByContractsAndTokenIDs(ctx context.Context, wallet string, contracts, tokenIDs []string) ([]domain.Collectible, error) {
	if len(contracts) != len(tokenIDs) {
		return nil, ErrMismatchedTokenLists
	}
	if len(contracts) == 0 {
		return []domain.Collectible{}, nil
	}

	raw, err := s.openSea.GetAssetsByContractsAndTokenIDs(ctx, wallet, contracts, tokenIDs)
	if err != nil {
		return nil, err
	}

	assets := make([]domain.Asset, 0, len(raw))
	for _, a := range raw {
		if asset := a.ToAsset(wallet); !s.blacklisted(asset) {
			assets = append(assets, asset)
		}
	}
	return s.mapAll(ctx, assets), nil
}

func (s *service) GetAssetDetail(ctx context.Context, provider domain.Provider, contractAddress, tokenID string) (*domain.Collectible, error) {
	var asset domain.Asset

	switch provider {
	case domain.ProviderOpenSea:
		raw, err := s.openSea.GetAsset(ctx, contractAddress, tokenID)
		if err != nil {
			return nil, err
		}
		owner := ""
		if raw.Owner != nil {
			owner = raw.Owner.Address
		}
		asset = raw.ToAsset(owner)

	case domain.ProviderNftPort:
		response, err := s.nftPort.GetNFT(ctx, contractAddress, tokenID)
		if err != nil {
			return nil, err
		}
		if types.StringNilOrEmpty(response.Owner) {
			return nil, fmt.Errorf("%w: %s/%s has no owner", domain.ErrAssetNotFound, contractAddress, tokenID)
		}
		asset = response.NFT.ToAsset(*response.Owner)

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, provider)
	}

	if s.blacklisted(asset) {
		return nil, fmt.Errorf("%w: %s is blacklisted", domain.ErrAssetNotFound, contractAddress)
	}

	c := s.mapper.ToCollectible(ctx, asset)
	return &c, nil
}

func (s *service) GetAssetOwner(ctx context.Context, contractAddress, tokenID string) (string, error) {
	response, err := s.nftPort.GetNFT(ctx, contractAddress, tokenID)
	if err != nil {
		return "", err
	}
	if types.StringNilOrEmpty(response.Owner) {
		return "", fmt.Errorf("%w: %s/%s has no owner", domain.ErrAssetNotFound, contractAddress, tokenID)
	}
	return *response.Owner, nil
}

func (s *service) GetCollection(ctx context.Context, contractAddress, tokenID string, dev bool) (*domain.CollectionInfo, error) {
	if !dev {
		info, err := s.openSea.GetCollection(ctx, contractAddress, tokenID)
		if err == nil {
			return info, nil
		}
		logger.DebugCtx(ctx, "OpenSea collection lookup failed, trying NftPort",
			zap.String("contract", contractAddress),
			zap.String("token_id", tokenID),
			zap.Error(err),
		)
	}

	response, err := s.nftPort.GetNFT(ctx, contractAddress, tokenID)
	if err != nil {
		return nil, err
	}
	if response.Contract == nil {
		return nil, fmt.Errorf("%w: %s/%s has no contract", domain.ErrAssetNotFound, contractAddress, tokenID)
	}

	info := response.Contract.ToCollectionInfo(contractAddress)
	return &info, nil
}

func (s *service) GetAllCollections(ctx context.Context, wallet string) ([]domain.CollectionInfo, error) {
	collections, err := s.openSea.GetAllCollections(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if collections == nil {
		collections = []domain.CollectionInfo{}
	}
	return collections, nil
}

func (s *service) GetCollectionsPage(ctx context.Context, wallet string, limit int, continuation string) (*domain.CollectionPage, error) {
	response, err := s.nftPort.GetContracts(ctx, wallet, limit, continuation)
	if err != nil {
		return nil, err
	}

	page := &domain.CollectionPage{
		Data:         make([]domain.CollectionInfo, 0, len(response.Contracts)),
		Continuation: types.NilIfEmpty(types.SafeString(response.Continuation)),
	}
	for _, contract := range response.Contracts {
		page.Data = append(page.Data, contract.ToCollectionInfo(""))
	}
	return page, nil
}

func (s *service) GetNFTsPage(ctx context.Context, wallet, contractAddress string, limit int, continuation string, exclude1155 bool) (*domain.CollectiblePage, error) {
	response, err := s.nftPort.GetNFTs(ctx, wallet, contractAddress, limit, continuation, exclude1155)
	if err != nil {
		return nil, err
	}

	assets := make([]domain.Asset, 0, len(response.NFTs))
	for _, nft := range response.NFTs {
		if asset := nft.ToAsset(wallet); !s.blacklisted(asset) {
			assets = append(assets, asset)
		}
	}

	return &domain.CollectiblePage{
		Data:         s.mapAll(ctx, assets),
		Continuation: types.NilIfEmpty(types.SafeString(response.Continuation)),
		Count:        response.Total,
	}, nil
}
