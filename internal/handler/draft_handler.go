package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/middleware"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/response"
)

// DraftHandler exposes server-side draft sync keyed by session.
type DraftHandler struct {
	drafts *service.DraftService
}

// NewDraftHandler constructs the draft handler.
func NewDraftHandler(drafts *service.DraftService) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

func (h *DraftHandler) session(c *gin.Context) (string, bool) {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		response.Error(c, appErrors.Validation(map[string]string{
			"x-session-id": "Session header is required",
		}))
		return "", false
	}
	return sessionID, true
}

// Save stores the posted draft envelope for the session.
// @Summary Save a registration draft
// @Tags draft
// @Accept json
// @Param x-session-id header string true "Form session identifier"
// @Success 204
// @Failure 400 {object} response.Envelope
// @Router /registration/draft [put]
func (h *DraftHandler) Save(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "failed to read draft body"))
		return
	}

	if err := h.drafts.Save(c.Request.Context(), sessionID, raw); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Load returns the stored draft envelope for the session.
// @Summary Load the registration draft
// @Tags draft
// @Produce json
// @Param x-session-id header string true "Form session identifier"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /registration/draft [get]
func (h *DraftHandler) Load(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	raw, err := h.drafts.Load(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, raw, nil)
}

// Discard removes the stored draft for the session.
// @Summary Discard the registration draft
// @Tags draft
// @Param x-session-id header string true "Form session identifier"
// @Success 204
// @Router /registration/draft [delete]
func (h *DraftHandler) Discard(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	if err := h.drafts.Discard(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
