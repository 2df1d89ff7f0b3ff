package api

import (
	"net/http"

	resdto "seatslabs/internal/handler/dto/response"
	"seatslabs/internal/handler/httperr"
	"seatslabs/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	queries queries.ServiceQueries
}

func NewServiceHandler(qrs queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{queries: qrs}
}

// @Summary List services
// @Description List active services in the catalog
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(services))
}
