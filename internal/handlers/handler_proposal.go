package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// proposalHandler handles HTTP requests related to payment proposals.
type proposalHandler struct {
	proposalService portssvc.ProposalSvcFacade
}

// newProposalHandler creates a new proposalHandler.
func newProposalHandler(proposalService portssvc.ProposalSvcFacade) *proposalHandler {
	return &proposalHandler{
		proposalService: proposalService,
	}
}

// getProposal godoc
// @Summary Get a payment proposal
// @Description Retrieves a proposal with its full audit trail
// @Tags proposals
// @Produce  json
// @Param   proposalID path string true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse "The proposal"
// @Failure 404 {object} map[string]string "Proposal not found"
// @Router /proposals/{proposalID} [get]
func (h *proposalHandler) getProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proposalID := c.Param("proposalID")

	companyID, _, ok := authContext(c)
	if !ok {
		return
	}

	proposal, err := h.proposalService.GetProposal(c.Request.Context(), companyID, proposalID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve proposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// listPendingProposals godoc
// @Summary List pending payment proposals
// @Description Lists live pending proposals; proposals past their validity window are excluded and marked expired
// @Tags proposals
// @Produce  json
// @Param   agencyID query string false "Agency filter"
// @Success 200 {array} dto.ProposalResponse "The pending proposals"
// @Router /proposals [get]
func (h *proposalHandler) listPendingProposals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID := c.Query("agencyID")

	companyID, _, ok := authContext(c)
	if !ok {
		return
	}

	proposals, err := h.proposalService.ListPendingProposals(c.Request.Context(), companyID, agencyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list proposals")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponseSlice(proposals))
}

// approveProposal godoc
// @Summary Approve a payment proposal
// @Description Executes the proposed payment atomically; executive roles only
// @Tags proposals
// @Produce  json
// @Param   proposalID path string true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse "The approved proposal with the executed movement ID"
// @Failure 403 {object} map[string]string "Executive role required"
// @Failure 409 {object} map[string]string "Proposal settled or expired, overpayment, or insufficient funds"
// @Router /proposals/{proposalID}/approve [post]
func (h *proposalHandler) approveProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proposalID := c.Param("proposalID")

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	proposal, err := h.proposalService.ApproveProposal(c.Request.Context(), companyID, proposalID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve proposal")
		return
	}

	logger.Info("Proposal approved",
		slog.String("proposal_id", proposalID),
		slog.String("movement_id", proposal.ExecutedMovementID),
	)
	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// rejectProposal godoc
// @Summary Reject a payment proposal
// @Description Closes a pending proposal with no ledger effect; executive roles only
// @Tags proposals
// @Accept  json
// @Produce  json
// @Param   proposalID path string true "Proposal ID"
// @Param   rejection body dto.RejectProposalRequest false "Rejection reason"
// @Success 200 {object} dto.ProposalResponse "The rejected proposal"
// @Failure 403 {object} map[string]string "Executive role required"
// @Failure 409 {object} map[string]string "Proposal settled or expired"
// @Router /proposals/{proposalID}/reject [post]
func (h *proposalHandler) rejectProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proposalID := c.Param("proposalID")

	var req dto.RejectProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RejectProposal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	proposal, err := h.proposalService.RejectProposal(c.Request.Context(), companyID, proposalID, req.Reason, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject proposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// registerProposalRoutes registers proposal specific routes
func registerProposalRoutes(group *gin.RouterGroup, proposalService portssvc.ProposalSvcFacade) {
	proposalHandler := newProposalHandler(proposalService)

	proposals := group.Group("/proposals")
	{
		proposals.GET("", proposalHandler.listPendingProposals)
		proposals.GET("/:proposalID", proposalHandler.getProposal)
		proposals.POST("/:proposalID/approve", proposalHandler.approveProposal)
		proposals.POST("/:proposalID/reject", proposalHandler.rejectProposal)
	}
}
