package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/dto"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/middleware"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/clientinfo"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/response"
)

// AnalyticsHandler exposes form event intake and the admin funnel view.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs the analytics handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Track ingests a single form interaction event.
// @Summary Track a form analytics event
// @Tags analytics
// @Accept json
// @Produce json
// @Param payload body dto.AnalyticsEventRequest true "Event payload"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /analytics/form [post]
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req dto.AnalyticsEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "request body is not valid JSON"))
		return
	}
	if req.SessionID == "" {
		req.SessionID = middleware.SessionID(c)
	}

	meta := service.ClientMeta{
		IP:        clientinfo.RealIP(c),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	}

	if err := h.analytics.Record(c.Request.Context(), req, meta); err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, nil)
}

// Funnel returns aggregated form funnel counts.
// @Summary Form funnel summary
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=models.FunnelSummary}
// @Router /admin/analytics/funnel [get]
func (h *AnalyticsHandler) Funnel(c *gin.Context) {
	summary, cacheHit, err := h.analytics.Funnel(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil, map[string]interface{}{"cache_hit": cacheHit})
}
