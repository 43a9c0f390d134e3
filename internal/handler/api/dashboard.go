package api

import (
	"fmt"
	"net/http"

	"YenDong/internal/domain/models"
	"YenDong/internal/usecase"
	xhttp "YenDong/pkg/http"
	"YenDong/pkg/http/middleware"
	xlogger "YenDong/pkg/logger"
	"YenDong/pkg/ratelimit"

	"github.com/labstack/echo/v4"
)

// Route-specific failure messages.
const (
	msgCurrentRate  = "Error fetching current exchange rate"
	msgHistory      = "Error fetching historical exchange rates"
	msgForecast     = "Error fetching exchange rate forecast"
	msgSuggestion   = "Error getting exchange rate suggestion"
	msgCreateAlert  = "Error creating alert"
	msgListAlerts   = "Error fetching alerts"
	msgCreatePoll   = "Error creating poll"
	msgPollSummary  = "Error fetching poll summary"
	msgInvalidAlert = "Invalid alert data"
	msgInvalidPoll  = "Invalid poll data"
	msgInvalidQuery = "Invalid query parameters"
)

// DashboardHandler serves the rate, alert and poll endpoints.
type DashboardHandler struct {
	logger  *xlogger.Logger
	rates   *usecase.RateService
	alerts  *usecase.AlertService
	polls   *usecase.PollService
	limiter *ratelimit.Limiter
}

// NewDashboardHandler wires the services. A nil limiter disables rate limiting on writes.
func NewDashboardHandler(logger *xlogger.Logger, rates *usecase.RateService, alerts *usecase.AlertService, polls *usecase.PollService, limiter *ratelimit.Limiter) *DashboardHandler {
	return &DashboardHandler{
		logger:  logger.With(xlogger.String("component", "dashboard_handler")),
		rates:   rates,
		alerts:  alerts,
		polls:   polls,
		limiter: limiter,
	}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.GET("/rate/current", h.guard(msgCurrentRate, h.CurrentRate))
	g.GET("/rate/history", h.guard(msgHistory, h.History))
	g.GET("/forecast", h.guard(msgForecast, h.Forecast))
	g.GET("/suggestion", h.guard(msgSuggestion, h.Suggestion))
	g.GET("/alerts", h.guard(msgListAlerts, h.ListAlerts))
	g.GET("/poll/summary", h.guard(msgPollSummary, h.PollSummary))

	writes := middleware.RateLimit(h.limiter)
	g.POST("/alert", h.guard(msgCreateAlert, h.CreateAlert), writes)
	g.POST("/poll", h.guard(msgCreatePoll, h.CreatePoll), writes)
}

func (h *DashboardHandler) Health(c echo.Context) error {
	return xhttp.OKResponse(c, xhttp.HealthResponse{Status: "ok"})
}

func (h *DashboardHandler) CurrentRate(c echo.Context) error {
	return xhttp.OKResponse(c, toCurrentRate(h.rates.CurrentRate(c.Request().Context())))
}

func (h *DashboardHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.ValidationErrorResponse(c, msgInvalidQuery, verr)
	}
	return xhttp.OKResponse(c, toHistory(h.rates.History(c.Request().Context(), req.Days)))
}

func (h *DashboardHandler) Forecast(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.ValidationErrorResponse(c, msgInvalidQuery, verr)
	}
	return xhttp.OKResponse(c, toForecast(h.rates.Forecast(c.Request().Context(), req.Days)))
}

func (h *DashboardHandler) Suggestion(c echo.Context) error {
	return xhttp.OKResponse(c, suggestionResponse{Suggestion: h.rates.Suggestion(c.Request().Context())})
}

func (h *DashboardHandler) CreateAlert(c echo.Context) error {
	req := &models.CreateAlertRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.ValidationErrorResponse(c, msgInvalidAlert, verr)
	}
	a := h.alerts.Create(c.Request().Context(), req.Email, req.TargetRate, *req.IsAbove)
	return xhttp.CreatedResponse(c, a)
}

func (h *DashboardHandler) ListAlerts(c echo.Context) error {
	return xhttp.OKResponse(c, h.alerts.List(c.Request().Context()))
}

func (h *DashboardHandler) CreatePoll(c echo.Context) error {
	req := &models.CreateVoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.ValidationErrorResponse(c, msgInvalidPoll, verr)
	}
	v := h.polls.Vote(c.Request().Context(), models.VoteLabel(req.Vote))
	return xhttp.CreatedResponse(c, v)
}

func (h *DashboardHandler) PollSummary(c echo.Context) error {
	return xhttp.OKResponse(c, h.polls.Summary(c.Request().Context()))
}

// guard answers any error or panic from next with a 500 carrying the route's message.
func (h *DashboardHandler) guard(msg string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				h.logger.Error(msg,
					xlogger.String("path", c.Path()),
					xlogger.Error(fmt.Errorf("panic: %v", r)),
				)
				err = xhttp.MessageResponse(c, http.StatusInternalServerError, msg)
			}
		}()
		if err := next(c); err != nil {
			h.logger.Error(msg, xlogger.String("path", c.Path()), xlogger.Error(err))
			return xhttp.AppErrorResponse(c, err, msg)
		}
		return nil
	}
}
