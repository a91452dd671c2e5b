package dto

import (
	"github.com/shopspring/decimal"
)

// AccountDiscrepancy reports one account whose persisted balance disagrees
// with the balance recomputed from the movement log.
type AccountDiscrepancy struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	LedgerBalance decimal.Decimal `json:"ledgerBalance"`
	Difference    decimal.Decimal `json:"difference"`
}

// IntegrityReportResponse is the outcome of a conservation-invariant check
// across all of a company's accounts.
type IntegrityReportResponse struct {
	AccountsChecked int                  `json:"accountsChecked"`
	MovementsSeen   int64                `json:"movementsSeen"`
	Consistent      bool                 `json:"consistent"`
	Discrepancies   []AccountDiscrepancy `json:"discrepancies"`
}
