package ws

import (
	"context"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"YenDong/internal/domain/models"
	"YenDong/internal/repository"
	"YenDong/internal/services/analytics"
	"YenDong/internal/usecase"
	"YenDong/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamSendsCurrentRateThenUpdates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(logger.Nop())
	go hub.Run(ctx)

	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	rates := usecase.NewRateService(repository.NewMemRateSeries(),
		analytics.NewLinearForecaster(rand.New(rand.NewSource(1))),
		analytics.NewThresholdClassifier(),
		usecase.WithClock(func() time.Time { return at }),
	)

	e := echo.New()
	NewRateStreamHandler(hub, rates, logger.Nop()).RegisterRoutes(e)
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/rate"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var first struct {
		Type    string      `json:"type"`
		Payload ratePayload `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "rate", first.Type)
	assert.Equal(t, 172.3, first.Payload.Rate)
	assert.Equal(t, "2024-03-15T10:00:00.000Z", first.Payload.Timestamp)

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	hub.NotifyRate(models.CurrentRate{Rate: decimal.RequireFromString("173.1"), Timestamp: at})
	var next struct {
		Payload ratePayload `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&next))
	assert.Equal(t, 173.1, next.Payload.Rate)
}

func TestHubDropsClientsOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(logger.Nop())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	c := &Client{hub: hub, send: make(chan []byte, 1), remote: "test"}
	require.True(t, hub.Register(c))
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, time.Millisecond)

	cancel()
	<-done
	_, ok := <-c.send
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Clients())
	assert.False(t, hub.Register(&Client{hub: hub, send: make(chan []byte)}))
}
