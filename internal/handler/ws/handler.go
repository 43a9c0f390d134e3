package ws

import (
	"net/http"

	"YenDong/internal/usecase"
	"YenDong/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// RateStreamHandler upgrades /ws/rate and streams current-rate updates.
type RateStreamHandler struct {
	hub      *Hub
	rates    *usecase.RateService
	upgrader websocket.Upgrader
	log      *logger.Logger
}

func NewRateStreamHandler(hub *Hub, rates *usecase.RateService, log *logger.Logger) *RateStreamHandler {
	return &RateStreamHandler{
		hub:   hub,
		rates: rates,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: log.With(logger.String("component", "ws_handler")),
	}
}

func (h *RateStreamHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/rate", h.Stream)
}

// Stream sends the current rate right after the upgrade, then every update the hub broadcasts.
func (h *RateStreamHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", logger.Error(err))
		return nil
	}

	if err := conn.WriteJSON(rateMessage(h.rates.CurrentRate(c.Request().Context()))); err != nil {
		_ = conn.Close()
		return nil
	}

	client := newClient(h.hub, conn)
	if !h.hub.Register(client) {
		_ = conn.Close()
		return nil
	}
	go client.writePump()
	go client.readPump()
	return nil
}
