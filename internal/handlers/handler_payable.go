package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// payableHandler handles HTTP requests related to supplier payables.
type payableHandler struct {
	payableService portssvc.PayableSvcFacade
}

// newPayableHandler creates a new payableHandler.
func newPayableHandler(payableService portssvc.PayableSvcFacade) *payableHandler {
	return &payableHandler{
		payableService: payableService,
	}
}

// createPayable godoc
// @Summary Register a supplier payable
// @Description Creates a supplier debt; totals over the auto-approval bound start with a pending approval status
// @Tags payables
// @Accept  json
// @Produce  json
// @Param   payable body dto.CreatePayableRequest true "Payable details"
// @Success 201 {object} dto.PayableResponse "The created payable"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /payables [post]
func (h *payableHandler) createPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreatePayable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	payable, err := h.payableService.CreatePayable(c.Request.Context(), companyID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create payable")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPayableResponse(payable))
}

// getPayable godoc
// @Summary Get a payable
// @Description Retrieves a payable by ID
// @Tags payables
// @Produce  json
// @Param   payableID path string true "Payable ID"
// @Success 200 {object} dto.PayableResponse "The payable"
// @Failure 404 {object} map[string]string "Payable not found"
// @Router /payables/{payableID} [get]
func (h *payableHandler) getPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("payableID")

	companyID, _, ok := authContext(c)
	if !ok {
		return
	}

	payable, err := h.payableService.GetPayable(c.Request.Context(), companyID, payableID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve payable")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// listPayables godoc
// @Summary List an agency's payables
// @Description Retrieves an agency's payables, newest first
// @Tags payables
// @Produce  json
// @Param   agencyID query string true "Agency ID"
// @Success 200 {array} dto.PayableResponse "The payables"
// @Router /payables [get]
func (h *payableHandler) listPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID := c.Query("agencyID")
	if agencyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "agencyID is required"})
		return
	}

	companyID, _, ok := authContext(c)
	if !ok {
		return
	}

	payables, err := h.payableService.ListPayablesByAgency(c.Request.Context(), companyID, agencyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list payables")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayableResponseSlice(payables))
}

// approvePayable godoc
// @Summary Approve a payable
// @Description Lifts the approval gate; executive roles only, no ledger effect
// @Tags payables
// @Produce  json
// @Param   payableID path string true "Payable ID"
// @Success 200 {object} dto.PayableResponse "The approved payable"
// @Failure 403 {object} map[string]string "Executive role required"
// @Failure 409 {object} map[string]string "Payable approval already settled"
// @Router /payables/{payableID}/approve [post]
func (h *payableHandler) approvePayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("payableID")

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	payable, err := h.payableService.ApprovePayable(c.Request.Context(), companyID, payableID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve payable")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// rejectPayable godoc
// @Summary Reject a payable
// @Description Closes the approval gate; executive roles only, no ledger effect
// @Tags payables
// @Produce  json
// @Param   payableID path string true "Payable ID"
// @Success 200 {object} dto.PayableResponse "The rejected payable"
// @Failure 403 {object} map[string]string "Executive role required"
// @Failure 409 {object} map[string]string "Payable approval already settled"
// @Router /payables/{payableID}/reject [post]
func (h *payableHandler) rejectPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("payableID")

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	payable, err := h.payableService.RejectPayable(c.Request.Context(), companyID, payableID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject payable")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// payPayable godoc
// @Summary Pay a payable
// @Description Attempts a (partial) payment; amounts crossing the approval threshold produce a pending proposal instead of a movement
// @Tags payables
// @Accept  json
// @Produce  json
// @Param   payableID path string true "Payable ID"
// @Param   payment body dto.PayPayableRequest true "Payment details"
// @Success 200 {object} dto.PaymentResultResponse "Either the executed movement or the created proposal"
// @Failure 409 {object} map[string]string "Unapproved payable, overpayment, duplicate key, or insufficient funds"
// @Router /payables/{payableID}/pay [post]
func (h *payableHandler) payPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("payableID")

	var req dto.PayPayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for PayPayable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	outcome, err := h.payableService.PayPayable(c.Request.Context(), companyID, payableID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to pay payable")
		return
	}

	resp := dto.PaymentResultResponse{
		Executed:   outcome.Executed,
		MovementID: outcome.MovementID,
	}
	if outcome.Payable != nil {
		payableResp := dto.ToPayableResponse(outcome.Payable)
		resp.Payable = &payableResp
	}
	if outcome.Proposal != nil {
		proposalResp := dto.ToProposalResponse(outcome.Proposal)
		resp.Proposal = &proposalResp
	}
	c.JSON(http.StatusOK, resp)
}

// registerPayableRoutes registers payable specific routes
func registerPayableRoutes(group *gin.RouterGroup, payableService portssvc.PayableSvcFacade) {
	payableHandler := newPayableHandler(payableService)

	payables := group.Group("/payables")
	{
		payables.POST("", payableHandler.createPayable)
		payables.GET("", payableHandler.listPayables)
		payables.GET("/:payableID", payableHandler.getPayable)
		payables.POST("/:payableID/approve", payableHandler.approvePayable)
		payables.POST("/:payableID/reject", payableHandler.rejectPayable)
		payables.POST("/:payableID/pay", payableHandler.payPayable)
	}
}
