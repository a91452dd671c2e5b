package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the acting user's role does not permit the operation.
var ErrForbidden = errors.New("operation not permitted for this role")

// Treasury error taxonomy. Each of these is raised inside the owning database
// transaction and surfaces as a single failed operation with no partial effect.
var (
	// ErrAccountNotFound indicates a financial account referenced by an operation does not exist.
	ErrAccountNotFound = errors.New("financial account not found")

	// ErrInsufficientFunds indicates the source account balance cannot cover the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds on source account")

	// ErrDuplicateMovement indicates a movement with the same business reference key was already recorded.
	ErrDuplicateMovement = errors.New("movement already recorded for this reference")

	// ErrInvalidAmount indicates a non-positive amount where a positive one is required.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidStateTransition indicates an operation attempted against an entity in the wrong lifecycle state.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrProposalExpired indicates the payment proposal passed its validity window before being acted on.
	ErrProposalExpired = errors.New("payment proposal has expired")

	// ErrProposalAlreadySettled indicates the payment proposal already left the pending state.
	ErrProposalAlreadySettled = errors.New("payment proposal already settled")

	// ErrOverpaymentRejected indicates a payment amount exceeding the payable's remaining amount.
	ErrOverpaymentRejected = errors.New("payment exceeds remaining payable amount")

	// ErrApprovalRequired signals that the caller must route the payment through the proposal workflow.
	ErrApprovalRequired = errors.New("payment requires executive approval")

	// ErrTopologyViolation indicates a transfer between a disallowed pair of accounts.
	ErrTopologyViolation = errors.New("transfer between these accounts is not allowed")
)

// AppError wraps an infrastructure failure with a status code and a
// human-readable message while preserving the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
