package api

import (
	"encoding/json"
	"net/http"
	"time"

	models "CardPulse/internal/domain/models"
	icache "CardPulse/internal/service/cache"
	"CardPulse/internal/service/metrics"
	"CardPulse/internal/service/ratelimit"
	"CardPulse/internal/services/quality"
	"CardPulse/internal/services/stats"
	"CardPulse/internal/usecase"
	xhttp "CardPulse/pkg/http"
	xlogger "CardPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScoresEchoHandler exposes the scoring pipeline over HTTP.
type ScoresEchoHandler struct {
	logger *xlogger.Logger
	agg    *usecase.ScoreAggregator
	cache  icache.BytesCache
	rl     *ratelimit.Limiter
}

func NewScoresEchoHandler(logger *xlogger.Logger, agg *usecase.ScoreAggregator) *ScoresEchoHandler {
	metrics.Register()
	return &ScoresEchoHandler{logger: logger, agg: agg, rl: ratelimit.New()}
}

// SetCache injects a response cache for the speculation endpoint.
func (h *ScoresEchoHandler) SetCache(c icache.BytesCache) { h.cache = c }

func (h *ScoresEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/speculation", h.Speculation)
	g.POST("/indicators", h.Indicators)
	g.POST("/rebound", h.Rebound)
	g.POST("/hybrid", h.Hybrid)
	g.GET("/scarcity", h.Scarcity)
	g.POST("/price/validate", h.ValidatePrice)
	g.POST("/price/pump", h.Pump)
	g.POST("/price/outliers", h.Outliers)
}

func (h *ScoresEchoHandler) Speculation(c echo.Context) error {
	start := time.Now()
	endpoint := "speculation"
	defer func() { metrics.ScoringLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.SpeculationRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":speculation", 10, 5) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limited")
	}

	cacheKey := "speculation:" + req.Card + ":" + req.SetID
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(cacheKey); err != nil {
			h.logger.Warn("speculation cache_get_error", xlogger.Error(err))
		} else if ok {
			return c.JSONBlob(http.StatusOK, b)
		}
	}

	score := h.agg.Speculation(c.Request().Context(), *req)
	if h.cache != nil && len(score.Errors) == 0 {
		resp := xhttp.APIResponse{
			Status:  http.StatusOK,
			Message: http.StatusText(http.StatusOK),
			Data:    score,
		}
		if b, err := json.Marshal(resp); err == nil {
			if err := h.cache.SetBytes(cacheKey, b, 30*time.Second); err != nil {
				h.logger.Warn("speculation cache_set_error", xlogger.Error(err))
			}
		}
	}
	return xhttp.SuccessResponse(c, score)
}

func (h *ScoresEchoHandler) Indicators(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.ScoringLatency.WithLabelValues("indicators").Observe(time.Since(start).Seconds()) }()

	req := &models.IndicatorsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	ind := usecase.CalculateIndicators(req.Prices, req.CurrentVolume, req.HistoricalVolumes, req.MLScore)
	return xhttp.SuccessResponse(c, ind)
}

func (h *ScoresEchoHandler) Rebound(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.ScoringLatency.WithLabelValues("rebound").Observe(time.Since(start).Seconds()) }()

	req := &models.ReboundRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	ind, score := h.agg.Rebound(*req)
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"indicators": ind,
		"rebound":    score,
	})
}

func (h *ScoresEchoHandler) Hybrid(c echo.Context) error {
	start := time.Now()
	endpoint := "hybrid"
	defer func() { metrics.ScoringLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.HybridRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":hybrid", 10, 5) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limited")
	}
	hybrid, spec, rebound := h.agg.Hybrid(c.Request().Context(), *req)
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"hybrid":      hybrid,
		"speculation": spec,
		"rebound":     rebound,
	})
}

func (h *ScoresEchoHandler) Scarcity(c echo.Context) error {
	start := time.Now()
	endpoint := "scarcity"
	defer func() { metrics.ScoringLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	card := c.QueryParam("card")
	setID := c.QueryParam("set")
	if card == "" || setID == "" {
		return xhttp.BadRequestResponse(c, "card and set required")
	}
	res, err := h.agg.Scarcity(c.Request().Context(), card, setID)
	if err != nil {
		metrics.ScoringErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("scarcity usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ScoresEchoHandler) ValidatePrice(c echo.Context) error {
	req := &models.ValidatePriceRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res := quality.SafeValidatePrice(models.PriceRecord{
		Value:    req.Value,
		Currency: req.Currency,
		Date:     req.Date,
	})
	return xhttp.SuccessResponse(c, res)
}

func (h *ScoresEchoHandler) Pump(c echo.Context) error {
	req := &models.PumpRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, quality.DetectPump(req.Prices, req.Window))
}

func (h *ScoresEchoHandler) Outliers(c echo.Context) error {
	req := &models.OutliersRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	outliers := stats.DetectOutliers(req.Prices)
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"outliers": outliers,
		"count":    len(outliers),
	})
}
