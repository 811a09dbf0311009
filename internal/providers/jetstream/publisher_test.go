package jetstream_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go"
	natsjetstream "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-collectibles/internal/adapter"
	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/logger"
	"github.com/feral-file/ff-collectibles/internal/mocks"
	"github.com/feral-file/ff-collectibles/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var testConfig = jetstream.Config{
	URL:            "nats://localhost:4222",
	StreamName:     "COLLECTIBLES",
	SubjectPrefix:  "collectibles",
	MaxReconnects:  3,
	ReconnectWait:  time.Second,
	ConnectionName: "test",
}

func TestNewPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).
		DoAndReturn(func(_ string, opts []nats.Option) (adapter.NatsConn, adapter.JetStream, error) {
			assert.Len(t, opts, 6)
			return conn, js, nil
		})
	js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg natsjetstream.StreamConfig) error {
			assert.Equal(t, "COLLECTIBLES", cfg.Name)
			assert.Equal(t, []string{"collectibles.>"}, cfg.Subjects)
			assert.Equal(t, int64(1), cfg.MaxMsgsPerSubject)
			return nil
		})
	conn.EXPECT().ConnectedUrl().Return(testConfig.URL)
	conn.EXPECT().Close()

	publisher, err := jetstream.NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJSON())
	require.NoError(t, err)
	publisher.Close()
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, assert.AnError)

	publisher, err := jetstream.NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJSON())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, publisher)
}

func TestNewPublisher_StreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
	js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(assert.AnError)
	conn.EXPECT().Close()

	publisher, err := jetstream.NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJSON())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, publisher)
}

func TestPublisher_PublishSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
	js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil)
	conn.EXPECT().ConnectedUrl().Return(testConfig.URL)

	publisher, err := jetstream.NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	snapshot := domain.CollectibleSnapshot{
		CycleID: "01HZX",
		Wallet:  "0xABC",
		Collectibles: []domain.Collectible{
			{ID: "1:::0xC", TokenID: "1", MediaType: domain.MediaTypeImage, Chain: domain.ChainEthereum, Wallet: "0xABC"},
		},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	js.EXPECT().Publish(gomock.Any(), "collectibles.0xabc", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte) (*natsjetstream.PubAck, error) {
			var decoded domain.CollectibleSnapshot
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, "01HZX", decoded.CycleID)
			assert.Len(t, decoded.Collectibles, 1)
			return &natsjetstream.PubAck{Stream: "COLLECTIBLES", Sequence: 1}, nil
		})

	require.NoError(t, publisher.PublishSnapshot(context.Background(), snapshot))

	js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	err = publisher.PublishSnapshot(context.Background(), snapshot)
	assert.ErrorIs(t, err, assert.AnError)
}
