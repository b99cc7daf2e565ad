package nats_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	natsbroker "github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/eventbroker/nats"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/config"
)

type recordingHandler struct {
	mu       sync.Mutex
	messages [][]byte
	received chan struct{}
	err      error
}

func (h *recordingHandler) HandleMessage(ctx context.Context, data []byte) error {
	h.mu.Lock()
	h.messages = append(h.messages, data)
	h.mu.Unlock()

	if h.received != nil {
		h.received <- struct{}{}
	}
	return h.err
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages)
}

func setupNATSContainer(t *testing.T) (string, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed broker test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "nats:2.10-alpine",
		ExposedPorts: []string{"4222/tcp"},
		Cmd:          []string{"-js"},
		WaitingFor:   wait.ForLog("Server is ready"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)

	return "nats://" + host + ":" + port.Port(), func() { _ = container.Terminate(ctx) }
}

func setupStream(t *testing.T, js nats.JetStreamContext, streamName, subject string) {
	t.Helper()
	_, err := js.AddStream(&nats.StreamConfig{
		Name:     streamName,
		Subjects: []string{subject},
	})
	require.NoError(t, err)
}

func TestConsumer_Subscribe_DeliversConfirmation(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	js, err := nc.JetStream()
	require.NoError(t, err)
	setupStream(t, js, "PAYMENTS", "payments.confirmed")

	handler := &recordingHandler{received: make(chan struct{}, 1)}
	cfg := config.NATSConfig{
		URL:          natsURL,
		StreamName:   "PAYMENTS",
		Subject:      "payments.confirmed",
		ConsumerName: "ui-marketplace-test",
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer, err := natsbroker.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	confirmation := []byte(`{"correlationId":"corr-1","status":"succeeded","userId":42}`)

	// Act
	require.NoError(t, consumer.Subscribe(ctx, handler))
	_, err = js.Publish("payments.confirmed", confirmation)
	require.NoError(t, err)

	select {
	case <-handler.received:
	case <-time.After(3 * time.Second):
		t.Fatal("confirmation not received")
	}

	// Assert
	require.Equal(t, 1, handler.count())
	assert.Equal(t, confirmation, handler.messages[0])
}

func TestConsumer_Subscribe_HandlerErrorRedelivers(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	js, err := nc.JetStream()
	require.NoError(t, err)
	setupStream(t, js, "PAYMENTS", "payments.confirmed")

	handler := &recordingHandler{
		received: make(chan struct{}, 2),
		err:      assert.AnError,
	}
	cfg := config.NATSConfig{
		URL:          natsURL,
		StreamName:   "PAYMENTS",
		Subject:      "payments.confirmed",
		ConsumerName: "ui-marketplace-test",
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer, err := natsbroker.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Act
	require.NoError(t, consumer.Subscribe(ctx, handler))
	_, err = js.Publish("payments.confirmed", []byte(`{"correlationId":"corr-2"}`))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		select {
		case <-handler.received:
		case <-time.After(3 * time.Second):
			t.Fatal("expected redelivery after nak")
		}
	}

	// Assert
	assert.GreaterOrEqual(t, handler.count(), 2)
}

func TestConsumer_Close_StopsDelivery(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	js, err := nc.JetStream()
	require.NoError(t, err)
	setupStream(t, js, "PAYMENTS", "payments.confirmed")

	handler := &recordingHandler{received: make(chan struct{}, 1)}
	cfg := config.NATSConfig{
		URL:          natsURL,
		StreamName:   "PAYMENTS",
		Subject:      "payments.confirmed",
		ConsumerName: "ui-marketplace-test",
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer, err := natsbroker.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)

	// Act
	require.NoError(t, consumer.Subscribe(context.Background(), handler))
	require.NoError(t, consumer.Close())
	require.NoError(t, nc.Publish("payments.confirmed", []byte(`{"correlationId":"late"}`)))

	// Assert
	select {
	case <-handler.received:
		t.Fatal("message processed after Close")
	case <-time.After(500 * time.Millisecond):
	}
}
