package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// integrityHandler handles HTTP requests for the ledger integrity check.
type integrityHandler struct {
	integrityService portssvc.IntegritySvcFacade
}

// newIntegrityHandler creates a new integrityHandler.
func newIntegrityHandler(integrityService portssvc.IntegritySvcFacade) *integrityHandler {
	return &integrityHandler{
		integrityService: integrityService,
	}
}

// verifyLedger godoc
// @Summary Verify ledger integrity
// @Description Recomputes every account balance from the movement log and reports discrepancies
// @Tags integrity
// @Produce  json
// @Success 200 {object} dto.IntegrityReportResponse "The integrity report"
// @Failure 500 {object} map[string]string "Failed to verify ledger"
// @Router /integrity/verify [post]
func (h *integrityHandler) verifyLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := authContext(c)
	if !ok {
		return
	}

	report, err := h.integrityService.VerifyLedger(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify ledger")
		return
	}

	c.JSON(http.StatusOK, report)
}

// registerIntegrityRoutes registers integrity specific routes
func registerIntegrityRoutes(group *gin.RouterGroup, integrityService portssvc.IntegritySvcFacade) {
	integrityHandler := newIntegrityHandler(integrityService)

	group.POST("/integrity/verify", integrityHandler.verifyLedger)
}
