package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// transferHandler handles HTTP requests for the composite money-movement
// operations.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(transferService portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{
		transferService: transferService,
	}
}

// internalTransfer godoc
// @Summary Transfer money between two company accounts
// @Description Records an atomic debit/credit movement pair between two accounts of the company
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.InternalTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse "The recorded movement IDs (debit and credit legs)"
// @Failure 400 {object} map[string]string "Invalid request or forbidden account topology"
// @Failure 409 {object} map[string]string "Duplicate idempotency key or insufficient funds"
// @Router /transfers/internal [post]
func (h *transferHandler) internalTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InternalTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for InternalTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	movementIDs, err := h.transferService.InternalTransfer(c.Request.Context(), companyID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to execute internal transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{MovementIDs: movementIDs})
}

// agencyDeposit godoc
// @Summary Deposit agency cash into the company bank
// @Description Moves money from an agency cash drawer to the company bank account
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   deposit body dto.AgencyDepositRequest true "Deposit details"
// @Success 201 {object} dto.TransferResponse "The recorded movement ID"
// @Failure 409 {object} map[string]string "Duplicate idempotency key or insufficient funds"
// @Router /transfers/agency-deposit [post]
func (h *transferHandler) agencyDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AgencyDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for AgencyDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	movementID, err := h.transferService.AgencyDeposit(c.Request.Context(), companyID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to execute agency deposit")
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{MovementIDs: []string{movementID}})
}

// bankWithdrawal godoc
// @Summary Withdraw from the company bank to an agency drawer
// @Description Moves money from the company bank account to an agency cash drawer
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   withdrawal body dto.BankWithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.TransferResponse "The recorded movement ID"
// @Failure 403 {object} map[string]string "Executive approval required for this amount"
// @Failure 409 {object} map[string]string "Duplicate idempotency key or insufficient funds"
// @Router /transfers/bank-withdrawal [post]
func (h *transferHandler) bankWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BankWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for BankWithdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	movementID, err := h.transferService.BankWithdrawal(c.Request.Context(), companyID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to execute bank withdrawal")
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{MovementIDs: []string{movementID}})
}

// mobileToBank godoc
// @Summary Settle the mobile-money wallet into the bank
// @Description Moves money from the mobile-money wallet to the company bank account
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   settlement body dto.MobileToBankRequest true "Settlement details"
// @Success 201 {object} dto.TransferResponse "The recorded movement ID"
// @Failure 409 {object} map[string]string "Duplicate idempotency key or insufficient funds"
// @Router /transfers/mobile-to-bank [post]
func (h *transferHandler) mobileToBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MobileToBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for MobileToBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	movementID, err := h.transferService.MobileToBank(c.Request.Context(), companyID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to execute mobile-to-bank settlement")
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{MovementIDs: []string{movementID}})
}

// mobileExpense godoc
// @Summary Pay an expense from the mobile-money wallet
// @Description Records a debit-only movement paying an expense directly from the wallet
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   payment body dto.MobileExpenseRequest true "Payment details"
// @Success 201 {object} dto.TransferResponse "The recorded movement ID"
// @Failure 409 {object} map[string]string "Duplicate idempotency key or insufficient funds"
// @Router /transfers/mobile-expense [post]
func (h *transferHandler) mobileExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MobileExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for MobileExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	movementID, err := h.transferService.MobileExpense(c.Request.Context(), companyID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to execute mobile expense payment")
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{MovementIDs: []string{movementID}})
}

// registerTransferRoutes registers transfer specific routes
func registerTransferRoutes(group *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	transferHandler := newTransferHandler(transferService)

	transfers := group.Group("/transfers")
	{
		transfers.POST("/internal", transferHandler.internalTransfer)
		transfers.POST("/agency-deposit", transferHandler.agencyDeposit)
		transfers.POST("/bank-withdrawal", transferHandler.bankWithdrawal)
		transfers.POST("/mobile-to-bank", transferHandler.mobileToBank)
		transfers.POST("/mobile-expense", transferHandler.mobileExpense)
	}
}
