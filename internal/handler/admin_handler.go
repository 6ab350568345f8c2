package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/dto"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/response"
)

// AdminHandler exposes the registration dashboard endpoints.
type AdminHandler struct {
	auth          *service.AuthService
	registrations *service.RegistrationService
	exports       *service.ExportService
}

// NewAdminHandler constructs the admin handler.
func NewAdminHandler(auth *service.AuthService, registrations *service.RegistrationService, exports *service.ExportService) *AdminHandler {
	return &AdminHandler{auth: auth, registrations: registrations, exports: exports}
}

// Login authenticates the dashboard admin.
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope{data=models.LoginResponse}
// @Failure 401 {object} response.Envelope
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "request body is not valid JSON"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// ListRegistrations returns the filtered, paginated registration book.
// @Summary List registrations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param status query string false "Status filter"
// @Param search query string false "Name or email search"
// @Success 200 {object} response.Envelope{data=[]models.RegistrationRow}
// @Router /admin/registrations [get]
func (h *AdminHandler) ListRegistrations(c *gin.Context) {
	filter := models.RegistrationFilter{
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	}
	if raw := c.Query("status"); raw != "" {
		status := models.RegistrationStatus(raw)
		filter.Status = &status
	}

	rows, total, err := h.registrations.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rows, &models.Pagination{
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: total,
	})
}

// GetRegistration returns a single registration by identifier.
func (h *AdminHandler) GetRegistration(c *gin.Context) {
	reg, err := h.registrations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reg, nil)
}

// Export renders the registration book and returns a signed download link.
// @Summary Export registrations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param format query string true "csv or pdf"
// @Param status query string false "Status filter"
// @Param search query string false "Name or email search"
// @Success 200 {object} response.Envelope{data=dto.ExportResponse}
// @Router /admin/registrations/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	req := dto.ExportRequest{
		Format: c.Query("format"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	result, err := h.exports.Export(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Download streams a rendered export. The token authorizes the request; no
// bearer token is required so the link can be opened from a browser.
func (h *AdminHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "download token required"))
		return
	}

	file, fileName, err := h.exports.Open(token)
	if err != nil {
		response.Error(c, err)
		return
	}
	path := file.Name()
	_ = file.Close()

	c.FileAttachment(path, fileName)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
