package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// nearestQuery is the query string of GET /api/v1/nearest.
type nearestQuery struct {
	Postcode string  `form:"postcode" binding:"required"`
	Radius   float64 `form:"radius"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Locations int    `json:"locations"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Locations: s.ports.Finder.DatasetSize(),
	})
}

func (s *Server) handleNearest(c *gin.Context) {
	var q nearestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   codeInvalidInput,
			Message: "postcode is required and radius must be a number",
		})
		return
	}

	result, err := s.ports.Finder.Find(c.Request.Context(), q.Postcode, domain.SearchOptions{RadiusMiles: q.Radius})
	if err != nil {
		status, body := toErrorResponse(err)
		if status == http.StatusInternalServerError {
			logger.Warn("nearest %q [%s]: %v", q.Postcode, c.GetString(requestIDKey), err)
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleInvalidateGeocode(c *gin.Context) {
	postcode := strings.TrimSpace(c.Param("postcode"))
	if postcode == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: codeInvalidInput, Message: "postcode is required"})
		return
	}
	s.ports.Finder.InvalidateGeocode(postcode)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleClearGeocodes(c *gin.Context) {
	s.ports.Finder.ClearGeocodes()
	c.Status(http.StatusNoContent)
}
