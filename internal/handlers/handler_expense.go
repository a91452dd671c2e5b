package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// expenseHandler handles HTTP requests related to operating expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(expenseService portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: expenseService,
	}
}

// createExpense godoc
// @Summary Register an operating expense
// @Description Creates a pending expense; no ledger effect until it is paid
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse "The created expense"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), companyID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// getExpense godoc
// @Summary Get an expense
// @Description Retrieves an expense by ID
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse "The expense"
// @Failure 404 {object} map[string]string "Expense not found"
// @Router /expenses/{expenseID} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	companyID, _, ok := authContext(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), companyID, expenseID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List an agency's expenses
// @Description Retrieves an agency's expenses, newest first
// @Tags expenses
// @Produce  json
// @Param   agencyID query string true "Agency ID"
// @Success 200 {array} dto.ExpenseResponse "The expenses"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
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

	expenses, err := h.expenseService.ListExpensesByAgency(c.Request.Context(), companyID, agencyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponseSlice(expenses))
}

// approveExpense godoc
// @Summary Approve a pending expense
// @Description Transitions a pending expense to approved; large maintenance expenses require an executive role
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse "The approved expense"
// @Failure 403 {object} map[string]string "Executive role required"
// @Failure 409 {object} map[string]string "Expense is not pending"
// @Router /expenses/{expenseID}/approve [post]
func (h *expenseHandler) approveExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.ApproveExpense(c.Request.Context(), companyID, expenseID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// payExpense godoc
// @Summary Pay an approved expense
// @Description Transitions an approved expense to paid, recording the ledger movement in the same transaction
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Param   payment body dto.PayExpenseRequest true "Payment details"
// @Success 200 {object} dto.ExpenseResponse "The paid expense"
// @Failure 409 {object} map[string]string "Expense is not approved, duplicate payment, or insufficient funds"
// @Router /expenses/{expenseID}/pay [post]
func (h *expenseHandler) payExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	var req dto.PayExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for PayExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.PayExpense(c.Request.Context(), companyID, expenseID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to pay expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// registerExpenseRoutes registers expense specific routes
func registerExpenseRoutes(group *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	expenseHandler := newExpenseHandler(expenseService)

	expenses := group.Group("/expenses")
	{
		expenses.POST("", expenseHandler.createExpense)
		expenses.GET("", expenseHandler.listExpenses)
		expenses.GET("/:expenseID", expenseHandler.getExpense)
		expenses.POST("/:expenseID/approve", expenseHandler.approveExpense)
		expenses.POST("/:expenseID/pay", expenseHandler.payExpense)
	}
}
