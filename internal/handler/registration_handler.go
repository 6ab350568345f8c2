package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/dto"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/middleware"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/clientinfo"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/response"
)

// RegistrationHandler exposes the registration intake endpoint.
type RegistrationHandler struct {
	registrations *service.RegistrationService
}

// NewRegistrationHandler constructs the registration handler.
func NewRegistrationHandler(registrations *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

// Submit accepts a completed application.
// @Summary Submit a trail registration
// @Tags registration
// @Accept json
// @Produce json
// @Param x-session-id header string true "Form session identifier"
// @Param payload body dto.SubmissionRequest true "Registration payload"
// @Success 201 {object} response.Envelope{data=dto.SubmissionResponse}
// @Failure 400 {object} response.Envelope
// @Router /registration [post]
func (h *RegistrationHandler) Submit(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		response.Error(c, appErrors.Validation(map[string]string{
			"x-session-id": "Session header is required",
		}))
		return
	}

	var req dto.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "request body is not valid JSON"))
		return
	}

	meta := service.ClientMeta{
		IP:        clientinfo.RealIP(c),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	}

	reg, err := h.registrations.Submit(c.Request.Context(), sessionID, req, meta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.SubmissionResponse{RegistrationID: reg.ID})
}
