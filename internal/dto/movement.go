package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// RecordMovementRequest defines the parameters for recording a ledger
// movement. At least one of fromAccountID/toAccountID must be supplied; the
// referenceType+referenceID pair identifies the business event and must be
// stable per real-world occurrence.
type RecordMovementRequest struct {
	FromAccountID string               `json:"fromAccountID"`
	ToAccountID   string               `json:"toAccountID"`
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	CurrencyCode  string               `json:"currencyCode" binding:"required,len=3"`
	Kind          domain.MovementKind  `json:"kind" binding:"required,oneof=REVENUE DEPOSIT WITHDRAWAL INTERNAL_TRANSFER EXPENSE_PAYMENT PAYABLE_PAYMENT SALARY MANUAL_ADJUSTMENT"`
	ReferenceType domain.ReferenceType `json:"referenceType" binding:"required,oneof=shift reservation expense deposit withdrawal transfer payable_payment internal_transfer agency_deposit bank_withdrawal mobile_to_bank mobile_expense"`
	ReferenceID   string               `json:"referenceID" binding:"required"`
	AgencyID      string               `json:"agencyID"`
	Note          string               `json:"note"`
}

// RecordMovementResponse carries the generated movement id. The id is empty
// when the amount was zero and the record was skipped as a no-op.
type RecordMovementResponse struct {
	MovementID string `json:"movementID"`
}

// UpdateReconciliationRequest sets the reconciliation annotation on a movement.
type UpdateReconciliationRequest struct {
	Status domain.ReconciliationStatus `json:"status" binding:"required,oneof=PENDING RECONCILED FAILED"`
}

// MovementResponse defines the data returned for a ledger movement.
type MovementResponse struct {
	MovementID     string                      `json:"movementID"`
	FromAccountID  string                      `json:"fromAccountID,omitempty"`
	ToAccountID    string                      `json:"toAccountID,omitempty"`
	Amount         decimal.Decimal             `json:"amount"`
	CurrencyCode   string                      `json:"currencyCode"`
	Kind           domain.MovementKind         `json:"kind"`
	ReferenceType  domain.ReferenceType        `json:"referenceType"`
	ReferenceID    string                      `json:"referenceID"`
	AgencyID       string                      `json:"agencyID,omitempty"`
	ActorID        string                      `json:"actorID"`
	ActorRole      domain.Role                 `json:"actorRole"`
	Direction      domain.EntryDirection       `json:"direction"`
	Reconciliation domain.ReconciliationStatus `json:"reconciliation"`
	Note           string                      `json:"note,omitempty"`
	CreatedAt      time.Time                   `json:"createdAt"`
}

// ListMovementsResponse is a token-paginated page of movements.
type ListMovementsResponse struct {
	Items     []MovementResponse `json:"items"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToMovementResponse converts a domain movement to its response DTO.
func ToMovementResponse(m *domain.FinancialMovement) MovementResponse {
	return MovementResponse{
		MovementID:     m.MovementID,
		FromAccountID:  m.FromAccountID,
		ToAccountID:    m.ToAccountID,
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		Kind:           m.Kind,
		ReferenceType:  m.ReferenceType,
		ReferenceID:    m.ReferenceID,
		AgencyID:       m.AgencyID,
		ActorID:        m.ActorID,
		ActorRole:      m.ActorRole,
		Direction:      m.Direction,
		Reconciliation: m.Reconciliation,
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
	}
}

// ToListMovementsResponse converts a page of domain movements.
func ToListMovementsResponse(ms []domain.FinancialMovement, nextToken *string) ListMovementsResponse {
	items := make([]MovementResponse, len(ms))
	for i := range ms {
		items[i] = ToMovementResponse(&ms[i])
	}
	return ListMovementsResponse{Items: items, NextToken: nextToken}
}
