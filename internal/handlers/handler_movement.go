package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

const defaultMovementPageSize = 50

// movementHandler handles HTTP requests related to the movement log.
type movementHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newMovementHandler creates a new movementHandler.
func newMovementHandler(ledgerService portssvc.LedgerSvcFacade) *movementHandler {
	return &movementHandler{
		ledgerService: ledgerService,
	}
}

// recordMovement godoc
// @Summary Record a ledger movement
// @Description Records one financial movement atomically, updating the affected balances
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   movement body dto.RecordMovementRequest true "Movement details"
// @Success 201 {object} dto.RecordMovementResponse "The generated movement ID; empty when a zero amount was skipped"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Duplicate reference or insufficient funds"
// @Router /movements [post]
func (h *movementHandler) recordMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RecordMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	movementID, err := h.ledgerService.RecordMovement(c.Request.Context(), companyID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record movement")
		return
	}

	if movementID == "" {
		// Zero amount, nothing was written.
		c.JSON(http.StatusOK, dto.RecordMovementResponse{})
		return
	}
	c.JSON(http.StatusCreated, dto.RecordMovementResponse{MovementID: movementID})
}

// getMovement godoc
// @Summary Get a ledger movement
// @Description Retrieves a single movement by ID
// @Tags movements
// @Produce  json
// @Param   movementID path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse "The movement"
// @Failure 404 {object} map[string]string "Movement not found"
// @Router /movements/{movementID} [get]
func (h *movementHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	companyID, _, ok := authContext(c)
	if !ok {
		return
	}

	movement, err := h.ledgerService.GetMovement(c.Request.Context(), companyID, movementID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve movement")
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// listMovementsByAccount godoc
// @Summary List movements touching an account
// @Description Retrieves a token-paginated page of movements for an account, newest first
// @Tags movements
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   limit query int false "Page size (default 50)"
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListMovementsResponse "A page of movements"
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Router /accounts/{accountID}/movements [get]
func (h *movementHandler) listMovementsByAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	companyID, _, ok := authContext(c)
	if !ok {
		return
	}

	limit := defaultMovementPageSize
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}
	var nextToken *string
	if rawToken := c.Query("nextToken"); rawToken != "" {
		nextToken = &rawToken
	}

	movements, newToken, err := h.ledgerService.ListMovementsByAccount(c.Request.Context(), companyID, accountID, limit, nextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list movements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements, newToken))
}

// updateReconciliation godoc
// @Summary Update a movement's reconciliation status
// @Description Sets the reconciliation annotation, the only mutable movement field
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   movementID path string true "Movement ID"
// @Param   status body dto.UpdateReconciliationRequest true "New reconciliation status"
// @Success 204 "Status updated"
// @Failure 404 {object} map[string]string "Movement not found"
// @Router /movements/{movementID}/reconciliation [patch]
func (h *movementHandler) updateReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	var req dto.UpdateReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	if err := h.ledgerService.UpdateReconciliationStatus(c.Request.Context(), companyID, movementID, req.Status, actor); err != nil {
		respondServiceError(c, logger, err, "Failed to update reconciliation status")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerMovementRoutes registers movement specific routes
func registerMovementRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	movementHandler := newMovementHandler(ledgerService)

	movements := group.Group("/movements")
	{
		movements.POST("", movementHandler.recordMovement)
		movements.GET("/:movementID", movementHandler.getMovement)
		movements.PATCH("/:movementID/reconciliation", movementHandler.updateReconciliation)
	}
	group.GET("/accounts/:accountID/movements", movementHandler.listMovementsByAccount)
}
