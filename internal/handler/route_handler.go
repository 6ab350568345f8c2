package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/response"
)

// RouteHandler serves the static trail catalog.
type RouteHandler struct {
	routes *service.RouteService
}

// NewRouteHandler constructs the route handler.
func NewRouteHandler(routes *service.RouteService) *RouteHandler {
	return &RouteHandler{routes: routes}
}

// List returns every trail section.
// @Summary List trail sections
// @Tags routes
// @Produce json
// @Success 200 {object} response.Envelope{data=[]models.Route}
// @Router /routes [get]
func (h *RouteHandler) List(c *gin.Context) {
	routes, err := h.routes.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, routes, nil)
}

// Get returns a single trail section by slug.
// @Summary Get a trail section
// @Tags routes
// @Produce json
// @Param slug path string true "Route slug"
// @Success 200 {object} response.Envelope{data=models.Route}
// @Failure 404 {object} response.Envelope
// @Router /routes/{slug} [get]
func (h *RouteHandler) Get(c *gin.Context) {
	route, err := h.routes.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, route, nil)
}
