package handlers

import (
	"net/http"

	"marketplace-bff/internal/search"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SearchHandler serves the nearby contractor and job lists.
type SearchHandler struct {
	service   services.SearchService
	validator *validator.Validate
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(service services.SearchService, validate *validator.Validate) *SearchHandler {
	return &SearchHandler{service: service, validator: validate}
}

// SearchContractors godoc
// @Summary      Apply contractor filters
// @Description  Sends the current filter drawer. The response says whether a text or location query ran, or none when nothing relevant changed.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        filters body      search.Filters true "Filter drawer state"
// @Success      200 {object}  dto.SearchResponse
// @Failure      412 {object}  map[string]interface{} "No location available"
// @Failure      422 {object}  map[string]interface{} "Invalid filters"
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /search/contractors [post]
// @Security     BearerAuth
func (h *SearchHandler) SearchContractors(c *gin.Context) {
	h.search(c, search.KindContractors)
}

// SearchJobs godoc
// @Summary      Apply job filters
// @Description  Like contractor search, with budget, project type and date posted filters.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        filters body      search.Filters true "Filter drawer state"
// @Success      200 {object}  dto.SearchResponse
// @Failure      412 {object}  map[string]interface{} "No location available"
// @Failure      422 {object}  map[string]interface{} "Invalid filters"
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /search/jobs [post]
// @Security     BearerAuth
func (h *SearchHandler) SearchJobs(c *gin.Context) {
	h.search(c, search.KindJobs)
}

func (h *SearchHandler) search(c *gin.Context, kind search.Kind) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	var filters search.Filters
	// filters are validated by the service so failures carry field messages
	if !bindJSON(c, nil, &filters) {
		return
	}
	resp, err := h.service.Search(c.Request.Context(), userID, kind, filters)
	if err != nil {
		respondError(c, err, "Failed to search "+string(kind))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Geocode godoc
// @Summary      Look up an address
// @Tags         search
// @Produce      json
// @Param        address query     string true "Address text"
// @Success      200 {array}   models.Address
// @Failure      400 {object}  map[string]string "Invalid input"
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /search/geocode [get]
// @Security     BearerAuth
func (h *SearchHandler) Geocode(c *gin.Context) {
	var req dto.GeocodeRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	addresses, err := h.service.Geocode(c.Request.Context(), req.Address)
	if err != nil {
		respondError(c, err, "Failed to look up address")
		return
	}
	c.JSON(http.StatusOK, addresses)
}
