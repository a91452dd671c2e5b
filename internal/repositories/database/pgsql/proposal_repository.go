package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/apperrors"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/utils/mapping"
)

type PgxProposalRepository struct {
	BaseRepository
	movementRepo portsrepo.MovementRecorder
}

// newPgxProposalRepository creates a new repository for payment proposals. The
// movement recorder is injected so approval execution and the ledger write
// share one transaction.
func newPgxProposalRepository(pool *pgxpool.Pool, movementRepo portsrepo.MovementRecorder) portsrepo.ProposalRepositoryFacade {
	return &PgxProposalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		movementRepo:   movementRepo,
	}
}

// Ensure PgxProposalRepository implements portsrepo.ProposalRepositoryFacade
var _ portsrepo.ProposalRepositoryFacade = (*PgxProposalRepository)(nil)

const proposalColumns = `
	proposal_id, company_id, agency_id, payable_id, account_id, amount, currency_code,
	proposer_id, proposer_role, note, status, expires_at, executed_movement_id,
	created_at, created_by, last_updated_at, last_updated_by`

const proposalActionColumns = `
	action_id, proposal_id, action, actor_id, actor_role, reason, occurred_at`

// SaveProposal persists a new proposal and its seed history entry atomically.
func (r *PgxProposalRepository) SaveProposal(ctx context.Context, proposal domain.PaymentProposal, seed domain.ProposalAction) error {
	m := mapping.ToModelProposal(proposal)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO payment_proposals (`+proposalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`,
		m.ProposalID,
		m.CompanyID,
		m.AgencyID,
		m.PayableID,
		m.AccountID,
		m.Amount,
		m.CurrencyCode,
		m.ProposerID,
		m.ProposerRole,
		m.Note,
		m.Status,
		m.ExpiresAt,
		nullString(m.ExecutedMovementID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: proposal with ID %s already exists", apperrors.ErrDuplicate, m.ProposalID)
		}
		return fmt.Errorf("failed to save proposal %s: %w", m.ProposalID, err)
	}

	if err := r.insertAction(ctx, tx, seed); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindProposalByID retrieves a proposal with its full action history.
func (r *PgxProposalRepository) FindProposalByID(ctx context.Context, companyID, proposalID string) (*domain.PaymentProposal, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+proposalColumns+`
		FROM payment_proposals
		WHERE company_id = $1 AND proposal_id = $2;
	`, companyID, proposalID)

	m, err := scanProposal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: proposal %s", apperrors.ErrNotFound, proposalID)
		}
		return nil, fmt.Errorf("failed to find proposal %s: %w", proposalID, err)
	}

	history, err := r.loadActions(ctx, r.Pool, proposalID)
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainProposal(*m)
	d.History = history
	return &d, nil
}

// ListProposalsByStatus retrieves a company's proposals in a given status,
// newest first. History rows are not loaded for list views.
func (r *PgxProposalRepository) ListProposalsByStatus(ctx context.Context, companyID, agencyID string, status domain.ProposalStatus) ([]domain.PaymentProposal, error) {
	query := `
		SELECT ` + proposalColumns + `
		FROM payment_proposals
		WHERE company_id = $1 AND status = $2`
	args := []interface{}{companyID, string(status)}
	if agencyID != "" {
		query += ` AND agency_id = $3`
		args = append(args, agencyID)
	}
	query += ` ORDER BY created_at DESC, proposal_id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	var proposals []domain.PaymentProposal
	for rows.Next() {
		m, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal row: %w", err)
		}
		proposals = append(proposals, mapping.ToDomainProposal(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating proposal rows: %w", err)
	}
	return proposals, nil
}

// SumProposalAmountsByPayable sums a payable's proposal amounts in the given
// statuses created after the cutoff.
func (r *PgxProposalRepository) SumProposalAmountsByPayable(ctx context.Context, companyID, payableID string, statuses []domain.ProposalStatus, since time.Time) (decimal.Decimal, error) {
	return r.sumAmounts(ctx, `payable_id`, companyID, payableID, statuses, since)
}

// SumProposalAmountsByAgency sums an agency's proposal amounts in the given
// statuses created after the cutoff.
func (r *PgxProposalRepository) SumProposalAmountsByAgency(ctx context.Context, companyID, agencyID string, statuses []domain.ProposalStatus, since time.Time) (decimal.Decimal, error) {
	return r.sumAmounts(ctx, `agency_id`, companyID, agencyID, statuses, since)
}

// SumProposalAmountsByProposer sums an actor's proposal amounts in the given
// statuses created after the cutoff.
func (r *PgxProposalRepository) SumProposalAmountsByProposer(ctx context.Context, companyID, proposerID string, statuses []domain.ProposalStatus, since time.Time) (decimal.Decimal, error) {
	return r.sumAmounts(ctx, `proposer_id`, companyID, proposerID, statuses, since)
}

// sumAmounts is the shared cumulative-exposure query. The column argument is
// always one of the three fixed names above, never caller input.
func (r *PgxProposalRepository) sumAmounts(ctx context.Context, column, companyID, value string, statuses []domain.ProposalStatus, since time.Time) (decimal.Decimal, error) {
	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM payment_proposals
		WHERE company_id = $1 AND `+column+` = $2 AND status = ANY($3) AND created_at >= $4;
	`, companyID, value, statusStrings, since).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum proposal amounts by %s: %w", column, err)
	}
	return total, nil
}

// ApproveProposal executes a proposal's payment atomically: lock the
// proposal, verify it is still pending and inside its validity window, lock
// the payable and re-validate approval and remaining amount, record the
// ledger movement, roll the payable forward, append the approval action, and
// mark the proposal approved with the executed movement ID.
//
// A proposal found past its validity window is marked EXPIRED in its own
// committed transaction before ErrProposalExpired is returned, so the stale
// row does not keep resurfacing as pending.
func (r *PgxProposalRepository) ApproveProposal(ctx context.Context, companyID, proposalID string, movement domain.FinancialMovement, action domain.ProposalAction) (*domain.PaymentProposal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	proposal, err := r.lockProposal(ctx, tx, companyID, proposalID)
	if err != nil {
		return nil, err
	}

	if proposal.Status != domain.ProposalPending {
		return nil, fmt.Errorf("%w: proposal %s is %s",
			apperrors.ErrProposalAlreadySettled, proposalID, proposal.Status)
	}
	if proposal.IsExpired(action.OccurredAt) {
		if err := r.expireInPlace(ctx, tx, companyID, proposalID, action.OccurredAt, action.ActorID); err != nil {
			return nil, err
		}
		if err := r.Commit(ctx, tx); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: proposal %s expired at %s",
			apperrors.ErrProposalExpired, proposalID, proposal.ExpiresAt.Format(time.RFC3339))
	}

	// Re-validate the payable under its own lock; the world may have moved
	// since the proposal was filed.
	payableRow := tx.QueryRow(ctx, `
		SELECT `+payableColumns+`
		FROM payables
		WHERE company_id = $1 AND payable_id = $2
		FOR UPDATE;
	`, companyID, proposal.PayableID)
	pm, err := scanPayable(payableRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payable %s", apperrors.ErrNotFound, proposal.PayableID)
		}
		return nil, fmt.Errorf("failed to lock payable %s: %w", proposal.PayableID, err)
	}
	payable := mapping.ToDomainPayable(*pm)

	if payable.ApprovalStatus != domain.ApprovalApproved {
		return nil, fmt.Errorf("%w: payable %s is %s",
			apperrors.ErrInvalidStateTransition, payable.PayableID, payable.ApprovalStatus)
	}
	if movement.Amount.GreaterThan(payable.RemainingAmount) {
		return nil, fmt.Errorf("%w: proposed %s exceeds remaining %s on payable %s",
			apperrors.ErrOverpaymentRejected, movement.Amount.String(), payable.RemainingAmount.String(), payable.PayableID)
	}

	if err := r.movementRepo.RecordMovementInTx(ctx, tx, movement); err != nil {
		return nil, err
	}

	payable.AmountPaid = payable.AmountPaid.Add(movement.Amount)
	payable.RemainingAmount = payable.RemainingAmount.Sub(movement.Amount)
	payable.Status = payable.StatusForRemaining(payable.RemainingAmount)

	_, err = tx.Exec(ctx, `
		UPDATE payables
		SET amount_paid = $3, remaining_amount = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE company_id = $1 AND payable_id = $2;
	`, companyID, payable.PayableID, payable.AmountPaid, payable.RemainingAmount,
		string(payable.Status), action.OccurredAt, action.ActorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update payable "+payable.PayableID, err)
	}

	if err := r.insertAction(ctx, tx, action); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE payment_proposals
		SET status = $3, executed_movement_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND proposal_id = $2;
	`, companyID, proposalID, string(domain.ProposalApproved), movement.MovementID,
		action.OccurredAt, action.ActorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to mark proposal approved "+proposalID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	proposal.Status = domain.ProposalApproved
	proposal.ExecutedMovementID = movement.MovementID
	proposal.LastUpdatedAt = action.OccurredAt
	proposal.LastUpdatedBy = action.ActorID
	proposal.History = append(proposal.History, action)
	return proposal, nil
}

// RejectProposal marks a pending proposal rejected and appends the rejection
// action. No ledger effect.
func (r *PgxProposalRepository) RejectProposal(ctx context.Context, companyID, proposalID string, action domain.ProposalAction) (*domain.PaymentProposal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	proposal, err := r.lockProposal(ctx, tx, companyID, proposalID)
	if err != nil {
		return nil, err
	}

	if proposal.Status != domain.ProposalPending {
		return nil, fmt.Errorf("%w: proposal %s is %s",
			apperrors.ErrProposalAlreadySettled, proposalID, proposal.Status)
	}
	if proposal.IsExpired(action.OccurredAt) {
		if err := r.expireInPlace(ctx, tx, companyID, proposalID, action.OccurredAt, action.ActorID); err != nil {
			return nil, err
		}
		if err := r.Commit(ctx, tx); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: proposal %s expired at %s",
			apperrors.ErrProposalExpired, proposalID, proposal.ExpiresAt.Format(time.RFC3339))
	}

	if err := r.insertAction(ctx, tx, action); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE payment_proposals
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND proposal_id = $2;
	`, companyID, proposalID, string(domain.ProposalRejected), action.OccurredAt, action.ActorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to mark proposal rejected "+proposalID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	proposal.Status = domain.ProposalRejected
	proposal.LastUpdatedAt = action.OccurredAt
	proposal.LastUpdatedBy = action.ActorID
	proposal.History = append(proposal.History, action)
	return proposal, nil
}

// MarkProposalsExpired best-effort transitions still-pending proposals whose
// validity window has passed. The status guard makes it safe against races
// with a concurrent approval.
func (r *PgxProposalRepository) MarkProposalsExpired(ctx context.Context, companyID string, proposalIDs []string, now time.Time) error {
	if len(proposalIDs) == 0 {
		return nil
	}
	_, err := r.Pool.Exec(ctx, `
		UPDATE payment_proposals
		SET status = $3, last_updated_at = $4, last_updated_by = 'system'
		WHERE company_id = $1 AND proposal_id = ANY($2) AND status = $5 AND expires_at < $4;
	`, companyID, proposalIDs, string(domain.ProposalExpired), now, string(domain.ProposalPending))
	if err != nil {
		return fmt.Errorf("failed to mark proposals expired: %w", err)
	}
	return nil
}

// lockProposal reads a proposal row under FOR UPDATE, with its history.
func (r *PgxProposalRepository) lockProposal(ctx context.Context, tx pgx.Tx, companyID, proposalID string) (*domain.PaymentProposal, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+proposalColumns+`
		FROM payment_proposals
		WHERE company_id = $1 AND proposal_id = $2
		FOR UPDATE;
	`, companyID, proposalID)

	m, err := scanProposal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: proposal %s", apperrors.ErrNotFound, proposalID)
		}
		return nil, fmt.Errorf("failed to lock proposal %s: %w", proposalID, err)
	}

	history, err := r.loadActions(ctx, tx, proposalID)
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainProposal(*m)
	d.History = history
	return &d, nil
}

func (r *PgxProposalRepository) expireInPlace(ctx context.Context, tx pgx.Tx, companyID, proposalID string, now time.Time, actorID string) error {
	_, err := tx.Exec(ctx, `
		UPDATE payment_proposals
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND proposal_id = $2;
	`, companyID, proposalID, string(domain.ProposalExpired), now, actorID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark proposal expired "+proposalID, err)
	}
	return nil
}

func (r *PgxProposalRepository) insertAction(ctx context.Context, tx pgx.Tx, action domain.ProposalAction) error {
	a := mapping.ToModelProposalAction(action)
	_, err := tx.Exec(ctx, `
		INSERT INTO proposal_actions (`+proposalActionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, a.ActionID, a.ProposalID, a.Action, a.ActorID, a.ActorRole, nullString(a.Reason), a.OccurredAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append proposal action "+a.ActionID, err)
	}
	return nil
}

// actionQuerier is satisfied by both the pool and an open transaction, so
// history reads can share the caller's snapshot when one exists.
type actionQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// loadActions retrieves a proposal's history, oldest first.
func (r *PgxProposalRepository) loadActions(ctx context.Context, q actionQuerier, proposalID string) ([]domain.ProposalAction, error) {
	rows, err := q.Query(ctx, `
		SELECT `+proposalActionColumns+`
		FROM proposal_actions
		WHERE proposal_id = $1
		ORDER BY occurred_at ASC, action_id ASC;
	`, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load actions for proposal %s: %w", proposalID, err)
	}
	defer rows.Close()

	var actions []models.ProposalAction
	for rows.Next() {
		var a models.ProposalAction
		var reason sql.NullString
		if err := rows.Scan(&a.ActionID, &a.ProposalID, &a.Action, &a.ActorID, &a.ActorRole, &reason, &a.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan proposal action row: %w", err)
		}
		a.Reason = reason.String
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating proposal action rows: %w", err)
	}
	return mapping.ToDomainProposalActionSlice(actions), nil
}

// scanProposal scans one proposal row, handling the NULL-able movement column.
func scanProposal(row pgx.Row) (*models.PaymentProposal, error) {
	var m models.PaymentProposal
	var executedMovementID sql.NullString
	err := row.Scan(
		&m.ProposalID,
		&m.CompanyID,
		&m.AgencyID,
		&m.PayableID,
		&m.AccountID,
		&m.Amount,
		&m.CurrencyCode,
		&m.ProposerID,
		&m.ProposerRole,
		&m.Note,
		&m.Status,
		&m.ExpiresAt,
		&executedMovementID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.ExecutedMovementID = executedMovementID.String
	return &m, nil
}
