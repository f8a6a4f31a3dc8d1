package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"StockSignal/internal/domain/models"
	"StockSignal/internal/usecase"
	xhttp "StockSignal/pkg/http"
	xlogger "StockSignal/pkg/logger"
	"StockSignal/pkg/util"

	"github.com/labstack/echo/v4"
)

// InsightEchoHandler serves the insight endpoints consumed by the UI.
type InsightEchoHandler struct {
	logger         *xlogger.Logger
	pipeline       *usecase.InsightPipeline
	credsAvailable bool
	publicBaseURL  string
	mockDelay      time.Duration
	client         *xhttp.Client
}

// Config holds the handler's behavioral switches.
type Config struct {
	CredentialsAvailable bool
	PublicBaseURL        string
	MockDelay            time.Duration
}

func NewInsightEchoHandler(logger *xlogger.Logger, pipeline *usecase.InsightPipeline, cfg Config) *InsightEchoHandler {
	return &InsightEchoHandler{
		logger:         logger,
		pipeline:       pipeline,
		credsAvailable: cfg.CredentialsAvailable,
		publicBaseURL:  cfg.PublicBaseURL,
		mockDelay:      cfg.MockDelay,
		client:         xhttp.NewClient(xhttp.WithTimeout(10 * time.Second)),
	}
}

func (h *InsightEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/insight", h.Insight)
	e.GET("/mock-insight", h.MockInsight)
	e.GET("/check-credentials", h.CheckCredentials)
}

// Insight runs the full pipeline for one stock query. When a required
// credential is absent the response transparently degrades to mock data
// instead of failing.
func (h *InsightEchoHandler) Insight(c echo.Context) error {
	req := &models.InsightRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.credsAvailable {
		h.logger.Info("credentials missing, serving mock data",
			xlogger.String("stock", req.Stock),
		)
		return c.JSON(http.StatusOK, h.mockInsight(c.Request().Context(), req.Stock))
	}

	insight := h.pipeline.GetInsight(c.Request().Context(), req.Stock)
	return c.JSON(http.StatusOK, insight)
}

// MockInsight returns the deterministic canned insight, with an artificial
// delay approximating the live pipeline for UI demos.
func (h *InsightEchoHandler) MockInsight(c echo.Context) error {
	req := &models.MockInsightRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	stock := util.FirstNonEmpty(req.Stock, "Unknown Stock")

	if h.mockDelay > 0 {
		select {
		case <-time.After(h.mockDelay):
		case <-c.Request().Context().Done():
		}
	}

	return c.JSON(http.StatusOK, usecase.BuildMockInsight(stock))
}

// CheckCredentials reports whether both required provider credentials are
// configured.
func (h *InsightEchoHandler) CheckCredentials(c echo.Context) error {
	return c.JSON(http.StatusOK, models.CredentialsResponse{
		CredentialsAvailable: h.credsAvailable,
	})
}

// mockInsight fetches the service's own /mock-insight when a public base URL
// is configured, so mock responses stay identical across entry points. Any
// failure drops to the hardcoded demo payload; this path never errors.
func (h *InsightEchoHandler) mockInsight(ctx context.Context, stock string) models.StockInsight {
	if h.publicBaseURL == "" {
		return usecase.BuildMockInsight(stock)
	}

	var insight models.StockInsight
	err := h.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    h.publicBaseURL + "/mock-insight?stock=" + url.QueryEscape(stock),
	}, &insight)
	if err != nil {
		h.logger.Warn("mock self-fetch failed", xlogger.Error(err))
		return usecase.BuildDemoInsight(stock)
	}

	insight.StockName = stock
	insight.IsMockData = true
	return insight
}
