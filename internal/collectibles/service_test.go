package collectibles_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-collectibles/internal/collectible"
	"github.com/feral-file/ff-collectibles/internal/collectibles"
	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/logger"
	"github.com/feral-file/ff-collectibles/internal/media"
	"github.com/feral-file/ff-collectibles/internal/mocks"
	"github.com/feral-file/ff-collectibles/internal/providers/vendors/nftport"
	"github.com/feral-file/ff-collectibles/internal/providers/vendors/opensea"
	"github.com/feral-file/ff-collectibles/internal/reconciler"
	"github.com/feral-file/ff-collectibles/internal/registry"
	"github.com/feral-file/ff-collectibles/internal/uri"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func stringPtr(s string) *string {
	return &s
}

type countingPurger struct {
	purges int
}

func (p *countingPurger) Purge() {
	p.purges++
}

type testService struct {
	service   collectibles.Service
	openSea   *mocks.MockOpenSeaClient
	nftPort   *mocks.MockNftPortClient
	publisher *mocks.MockPublisher
	purger    *countingPurger
}

// newTestService wires the real mapping pipeline. Test URLs are not http so nothing is probed.
func newTestService(t *testing.T, ctrl *gomock.Controller, withPublisher bool) *testService {
	normalizer := uri.NewNormalizer("https://gateway.example.com/ipfs")
	mapper := collectible.NewMapper(media.NewClassifier(mocks.NewMockProber(ctrl), normalizer), normalizer)

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	ts := &testService{
		openSea: mocks.NewMockOpenSeaClient(ctrl),
		nftPort: mocks.NewMockNftPortClient(ctrl),
		purger:  &countingPurger{},
	}

	blacklist := registry.NewBlacklistRegistry(registry.BlacklistData{"eth": {"0xbad"}})

	var publisher *mocks.MockPublisher
	if withPublisher {
		publisher = mocks.NewMockPublisher(ctrl)
		ts.publisher = publisher
		ts.service = collectibles.NewService(ts.openSea, ts.nftPort, mapper, reconciler.NewReconciler(mapper, 4), publisher, ts.purger, blacklist, clock, 4)
	} else {
		ts.service = collectibles.NewService(ts.openSea, ts.nftPort, mapper, reconciler.NewReconciler(mapper, 4), nil, ts.purger, blacklist, clock, 4)
	}
	return ts
}

func openSeaAsset(tokenID, contract, image string) opensea.Asset {
	return opensea.Asset{
		ID:            "42",
		TokenID:       tokenID,
		ImageURL:      stringPtr(image),
		AssetContract: &opensea.AssetContract{Address: stringPtr(contract)},
	}
}

func TestGetAllCollectibles_NoWallets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, true)

	state, err := ts.service.GetAllCollectibles(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, state)
	assert.Equal(t, 0, ts.purger.purges)
}

func TestGetAllCollectibles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, true)

	held := openSeaAsset("1", "0xc", "foo.png")
	mint := opensea.Event{
		ID:          "7",
		CreatedDate: "2021-06-01T00:00:00",
		FromAccount: &opensea.Account{Address: domain.ETHEREUM_ZERO_ADDRESS},
		ToAccount:   &opensea.Account{Address: "0xA"},
		Asset:       &held,
	}

	ts.openSea.EXPECT().GetAllAssets(gomock.Any(), "0xA").Return([]opensea.Asset{held}, nil)
	ts.openSea.EXPECT().GetEvents(gomock.Any(), "0xA", opensea.EventTypeCreated).Return(nil, nil)
	ts.openSea.EXPECT().GetEvents(gomock.Any(), "0xA", opensea.EventTypeTransfer).Return([]opensea.Event{mint}, nil)
	ts.publisher.EXPECT().PublishSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, snapshot domain.CollectibleSnapshot) error {
			assert.Equal(t, "0xA", snapshot.Wallet)
			assert.NotEmpty(t, snapshot.CycleID)
			assert.Len(t, snapshot.Collectibles, 1)
			return nil
		})

	state, err := ts.service.GetAllCollectibles(t.Context(), []string{"0xA"})
	require.NoError(t, err)
	require.Len(t, state["0xA"], 1)

	c := state["0xA"][0]
	assert.Equal(t, "1:::0xc", c.ID)
	assert.True(t, c.IsOwned)
	assert.Equal(t, domain.MediaTypeImage, c.MediaType)
	require.NotNil(t, c.DateLastTransferred)
	assert.Equal(t, "2021-06-01T00:00:00", *c.DateLastTransferred)
	assert.Equal(t, 1, ts.purger.purges)
}

func TestGetAllCollectibles_SkipsBlacklistedContracts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, false)

	blocked := openSeaAsset("9", "0xBAD", "spam.png")
	ts.openSea.EXPECT().GetAllAssets(gomock.Any(), "0xA").
		Return([]opensea.Asset{blocked, openSeaAsset("1", "0xc", "a.png")}, nil)
	ts.openSea.EXPECT().GetEvents(gomock.Any(), "0xA", opensea.EventTypeCreated).
		Return([]opensea.Event{{ID: "1", CreatedDate: "2021-01-01", Asset: &blocked}}, nil)
	ts.openSea.EXPECT().GetEvents(gomock.Any(), "0xA", opensea.EventTypeTransfer).Return(nil, nil)

	state, err := ts.service.GetAllCollectibles(t.Context(), []string{"0xA"})
	require.NoError(t, err)
	require.Len(t, state["0xA"], 1)
	assert.Equal(t, "1:::0xc", state["0xA"][0].ID)
}

func TestGetAllCollectibles_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, false)

	created := openSeaAsset("2", "0xd", "bar.png")
	creation := opensea.Event{ID: "8", CreatedDate: "2021-01-01T00:00:00", Asset: &created}

	ts.openSea.EXPECT().GetAllAssets(gomock.Any(), "0xA").Return(nil, errors.New("boom"))
	ts.openSea.EXPECT().GetEvents(gomock.Any(), "0xA", opensea.EventTypeCreated).Return([]opensea.Event{creation}, nil)
	ts.openSea.EXPECT().GetEvents(gomock.Any(), "0xA", opensea.EventTypeTransfer).Return(nil, errors.New("boom"))

	state, err := ts.service.GetAllCollectibles(t.Context(), []string{"0xA"})
	require.NoError(t, err)
	require.Len(t, state["0xA"], 1)
	assert.Equal(t, "2:::0xd", state["0xA"][0].ID)
}

func TestGetAllCollectibles_KeepsHoldingsFetchedBeforeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, false)

	firstPage := []opensea.Asset{
		openSeaAsset("1", "0xc", "a.png"),
		openSeaAsset("2", "0xc", "b.png"),
	}

	ts.openSea.EXPECT().GetAllAssets(gomock.Any(), "0xA").Return(firstPage, errors.New("502 after retries"))
	ts.openSea.EXPECT().GetEvents(gomock.Any(), "0xA", gomock.Any()).Return(nil, nil).Times(2)

	state, err := ts.service.GetAllCollectibles(t.Context(), []string{"0xA"})
	require.NoError(t, err)
	require.Len(t, state["0xA"], 2)
	assert.Equal(t, "1:::0xc", state["0xA"][0].ID)
	assert.Equal(t, "2:::0xc", state["0xA"][1].ID)
	assert.True(t, state["0xA"][0].IsOwned)
}

func TestGetAllCollectibles_AllStreamsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, true)

	for _, wallet := range []string{"0xA", "0xB"} {
		ts.openSea.EXPECT().GetAllAssets(gomock.Any(), wallet).Return(nil, errors.New("boom"))
		ts.openSea.EXPECT().GetEvents(gomock.Any(), wallet, gomock.Any()).Return(nil, errors.New("boom")).Times(2)
	}

	state, err := ts.service.GetAllCollectibles(t.Context(), []string{"0xA", "0xB"})
	require.Error(t, err)
	assert.ErrorIs(t, err, collectibles.ErrAllStreamsFailed)
	assert.Nil(t, state)
	assert.Equal(t, 0, ts.purger.purges)
}

func TestGetAllCollectibles_PublishFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, true)

	ts.openSea.EXPECT().GetAllAssets(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	ts.openSea.EXPECT().GetEvents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(4)
	ts.publisher.EXPECT().PublishSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("nats down")).Times(2)

	state, err := ts.service.GetAllCollectibles(t.Context(), []string{"0xA", "0xB"})
	require.NoError(t, err)
	assert.Equal(t, 0, state.Count())
}

func TestGetCollectiblesForWalletByContractsAndTokenIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, false)

	t.Run("mismatched lists", func(t *testing.T) {
		_, err := ts.service.GetCollectiblesForWalletByContractsAndTokenIDs(t.Context(), "0xA", []string{"0xc"}, nil)
		assert.ErrorIs(t, err, collectibles.ErrMismatchedTokenLists)
	})

	t.Run("empty lists", func(t *testing.T) {
		result, err := ts.service.GetCollectiblesForWalletByContractsAndTokenIDs(t.Context(), "0xA", nil, nil)
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NotNil(t, result)
	})

	t.Run("maps every asset in order", func(t *testing.T) {
		ts.openSea.EXPECT().
			GetAssetsByContractsAndTokenIDs(gomock.Any(), "0xA", []string{"0xc", "0xd"}, []string{"1", "2"}).
			Return([]opensea.Asset{openSeaAsset("1", "0xc", "a.png"), openSeaAsset("2", "0xd", "b.gif")}, nil)

		result, err := ts.service.GetCollectiblesForWalletByContractsAndTokenIDs(t.Context(), "0xA", []string{"0xc", "0xd"}, []string{"1", "2"})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "1:::0xc", result[0].ID)
		assert.Equal(t, domain.MediaTypeImage, result[0].MediaType)
		assert.Equal(t, "2:::0xd", result[1].ID)
		assert.Equal(t, domain.MediaTypeGIF, result[1].MediaType)
		assert.Equal(t, "0xA", result[1].Wallet)
	})
}

func TestGetAssetDetail(t *testing.T) {
	tests := []struct {
		name       string
		provider   domain.Provider
		setup      func(ts *testService)
		wantErr    error
		wantID     string
		wantWallet string
		wantMedia  domain.MediaType
	}{
		{
			name:     "opensea",
			provider: domain.ProviderOpenSea,
			setup: func(ts *testService) {
				a := openSeaAsset("1", "0xc", "a.png")
				a.Owner = &opensea.Account{Address: "0xowner"}
				ts.openSea.EXPECT().GetAsset(gomock.Any(), "0xc", "1").Return(&a, nil)
			},
			wantID:     "1:::0xc",
			wantWallet: "0xowner",
			wantMedia:  domain.MediaTypeImage,
		},
		{
			name:     "nftport",
			provider: domain.ProviderNftPort,
			setup: func(ts *testService) {
				ts.nftPort.EXPECT().GetNFT(gomock.Any(), "0xc", "1").Return(&nftport.NFTResponse{
					Response: "OK",
					NFT:      &nftport.NFT{ContractAddress: "0xc", TokenID: "1", FileURL: stringPtr("a.gif")},
					Owner:    stringPtr("0xOwner"),
				}, nil)
			},
			wantID:     "1:::0xc",
			wantWallet: "0xowner",
			wantMedia:  domain.MediaTypeGIF,
		},
		{
			name:     "nftport without owner",
			provider: domain.ProviderNftPort,
			setup: func(ts *testService) {
				ts.nftPort.EXPECT().GetNFT(gomock.Any(), "0xc", "1").Return(&nftport.NFTResponse{
					Response: "OK",
					NFT:      &nftport.NFT{ContractAddress: "0xc", TokenID: "1"},
				}, nil)
			},
			wantErr: domain.ErrAssetNotFound,
		},
		{
			name:     "provider error",
			provider: domain.ProviderOpenSea,
			setup: func(ts *testService) {
				ts.openSea.EXPECT().GetAsset(gomock.Any(), "0xc", "1").Return(nil, domain.ErrAssetNotFound)
			},
			wantErr: domain.ErrAssetNotFound,
		},
		{
			name:     "unsupported provider",
			provider: domain.Provider("rarible"),
			setup:    func(ts *testService) {},
			wantErr:  domain.ErrUnsupportedProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ts := newTestService(t, ctrl, false)
			tt.setup(ts)

			result, err := ts.service.GetAssetDetail(t.Context(), tt.provider, "0xc", "1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantID, result.ID)
			assert.Equal(t, tt.wantWallet, result.Wallet)
			assert.Equal(t, tt.wantMedia, result.MediaType)
		})
	}
}

func TestGetAssetOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, false)

	ts.nftPort.EXPECT().GetNFT(gomock.Any(), "0xc", "1").Return(&nftport.NFTResponse{Response: "OK", Owner: stringPtr("0xowner")}, nil)
	owner, err := ts.service.GetAssetOwner(t.Context(), "0xc", "1")
	require.NoError(t, err)
	assert.Equal(t, "0xowner", owner)

	ts.nftPort.EXPECT().GetNFT(gomock.Any(), "0xc", "2").Return(&nftport.NFTResponse{Response: "OK"}, nil)
	_, err = ts.service.GetAssetOwner(t.Context(), "0xc", "2")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestGetCollection(t *testing.T) {
	openSeaInfo := &domain.CollectionInfo{Name: "Art", Slug: "art", ContractAddress: "0xc"}
	nftPortResponse := &nftport.NFTResponse{
		Response: "OK",
		Contract: &nftport.Contract{Name: stringPtr("Art Port"), Address: stringPtr("0xC")},
	}

	tests := []struct {
		name     string
		dev      bool
		setup    func(ts *testService)
		wantName string
		wantErr  error
	}{
		{
			name: "opensea first",
			setup: func(ts *testService) {
				ts.openSea.EXPECT().GetCollection(gomock.Any(), "0xc", "1").Return(openSeaInfo, nil)
			},
			wantName: "Art",
		},
		{
			name: "falls back to nftport",
			setup: func(ts *testService) {
				ts.openSea.EXPECT().GetCollection(gomock.Any(), "0xc", "1").Return(nil, domain.ErrAssetNotFound)
				ts.nftPort.EXPECT().GetNFT(gomock.Any(), "0xc", "1").Return(nftPortResponse, nil)
			},
			wantName: "Art Port",
		},
		{
			name: "dev uses nftport only",
			dev:  true,
			setup: func(ts *testService) {
				ts.nftPort.EXPECT().GetNFT(gomock.Any(), "0xc", "1").Return(nftPortResponse, nil)
			},
			wantName: "Art Port",
		},
		{
			name: "no contract",
			dev:  true,
			setup: func(ts *testService) {
				ts.nftPort.EXPECT().GetNFT(gomock.Any(), "0xc", "1").Return(&nftport.NFTResponse{Response: "OK"}, nil)
			},
			wantErr: domain.ErrAssetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ts := newTestService(t, ctrl, false)
			tt.setup(ts)

			info, err := ts.service.GetCollection(t.Context(), "0xc", "1", tt.dev)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, info.Name)
			assert.Equal(t, "0xc", info.ContractAddress)
		})
	}
}

func TestGetAllCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, false)

	ts.openSea.EXPECT().GetAllCollections(gomock.Any(), "0xA").Return(nil, nil)
	result, err := ts.service.GetAllCollections(t.Context(), "0xA")
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetCollectionsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, false)

	ts.nftPort.EXPECT().GetContracts(gomock.Any(), "0xA", 20, "abc").Return(&nftport.ContractsResponse{
		Response:     "OK",
		Contracts:    []nftport.Contract{{Name: stringPtr("Art"), Address: stringPtr("0xC"), NumNFTsOwned: 3}},
		Continuation: stringPtr("def"),
	}, nil)

	page, err := ts.service.GetCollectionsPage(t.Context(), "0xA", 20, "abc")
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "0xc", page.Data[0].ContractAddress)
	assert.Equal(t, 3, page.Data[0].NumNFTsOwned)
	require.NotNil(t, page.Continuation)
	assert.Equal(t, "def", *page.Continuation)
}

func TestGetNFTsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestService(t, ctrl, false)

	ts.nftPort.EXPECT().GetNFTs(gomock.Any(), "0xA", "", 50, "", true).Return(&nftport.NFTsResponse{
		Response: "OK",
		NFTs: []nftport.NFT{
			{ContractAddress: "0xc", TokenID: "1", FileURL: stringPtr("a.png")},
			{ContractAddress: "0xc", TokenID: "2", FileURL: stringPtr("b.png"), AnimationURL: stringPtr("b.mp4")},
		},
		Total: 2,
	}, nil)

	page, err := ts.service.GetNFTsPage(t.Context(), "0xA", "", 50, "", true)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, 2, page.Count)
	assert.Nil(t, page.Continuation)
	assert.Equal(t, domain.MediaTypeImage, page.Data[0].MediaType)
	assert.Equal(t, domain.MediaTypeVideo, page.Data[1].MediaType)
	require.NotNil(t, page.Data[1].VideoURL)
	assert.Equal(t, "b.mp4", *page.Data[1].VideoURL)
	assert.Equal(t, "0xa", page.Data[1].Wallet)

	ts.nftPort.EXPECT().GetNFTs(gomock.Any(), "0xA", "", 50, "", false).Return(nil, domain.ErrNoAPIKey)
	_, err = ts.service.GetNFTsPage(t.Context(), "0xA", "", 50, "", false)
	assert.ErrorIs(t, err, domain.ErrNoAPIKey)
}

func TestGetAllCollectibles_FlattensStreamsInWalletOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	openSea := mocks.NewMockOpenSeaClient(ctrl)
	nftPort := mocks.NewMockNftPortClient(ctrl)
	mapper := mocks.NewMockCollectibleMapper(ctrl)
	rec := mocks.NewMockReconciler(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	service := collectibles.NewService(openSea, nftPort, mapper, rec, nil, nil, nil, clock, 2)

	openSea.EXPECT().GetAllAssets(gomock.Any(), "0xA").Return([]opensea.Asset{openSeaAsset("1", "0xc", "a.png")}, nil)
	openSea.EXPECT().GetAllAssets(gomock.Any(), "0xB").Return([]opensea.Asset{openSeaAsset("2", "0xc", "b.png")}, nil)
	openSea.EXPECT().GetEvents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(4)

	expected := domain.CollectibleState{"0xA": {}, "0xB": {}}
	rec.EXPECT().Reconcile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input reconciler.Input) domain.CollectibleState {
			assert.Equal(t, []string{"0xA", "0xB"}, input.Wallets)
			require.Len(t, input.Holdings, 2)
			assert.Equal(t, "1", input.Holdings[0].TokenID)
			assert.Equal(t, "2", input.Holdings[1].TokenID)
			assert.Empty(t, input.Creations)
			assert.Empty(t, input.Transfers)
			return expected
		})

	state, err := service.GetAllCollectibles(t.Context(), []string{"0xA", "0xB"})
	require.NoError(t, err)
	assert.Equal(t, expected, state)
}
