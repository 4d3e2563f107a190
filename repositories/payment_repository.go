package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/uide-sports/campeonatos-api/models"
)

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentTeamConflict = errors.New("team already has a payment record")
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id int) (*models.Payment, error)
	GetByTeamID(ctx context.Context, teamID int) (*models.Payment, error)
	ListByState(ctx context.Context, state models.PaymentState) ([]models.Payment, error)
	UpdateReceiptKey(ctx context.Context, id int, key *string) error
	// UpdateState corre sobre un SQLExecutor para que la aprobación o el rechazo
	// del pago y el cambio de teams.approved sean una sola transacción.
	UpdateState(ctx context.Context, exec SQLExecutor, id int, state models.PaymentState) error
	Delete(ctx context.Context, id int) error
}

type postgresPaymentRepository struct {
	db *sql.DB
}

func NewPostgresPaymentRepository(db *sql.DB) PaymentRepository {
	return &postgresPaymentRepository{db: db}
}

const paymentColumns = `id, team_id, method, bank_code_id, receipt_key, state, paid_at`

func scanPayment(row interface{ Scan(...interface{}) error }, p *models.Payment) error {
	return row.Scan(
		&p.ID,
		&p.TeamID,
		&p.Method,
		&p.BankCodeID,
		&p.ReceiptKey,
		&p.State,
		&p.PaidAt,
	)
}

func (r *postgresPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (team_id, method, bank_code_id, receipt_key, state)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, paid_at`

	err := r.db.QueryRowContext(ctx, query,
		payment.TeamID,
		payment.Method,
		payment.BankCodeID,
		payment.ReceiptKey,
		payment.State,
	).Scan(&payment.ID, &payment.PaidAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "payments_team_id_key" {
				return ErrPaymentTeamConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresPaymentRepository) GetByID(ctx context.Context, id int) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var payment models.Payment
	err := scanPayment(r.db.QueryRowContext(ctx, query, id), &payment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *postgresPaymentRepository) GetByTeamID(ctx context.Context, teamID int) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE team_id = $1`

	var payment models.Payment
	err := scanPayment(r.db.QueryRowContext(ctx, query, teamID), &payment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *postgresPaymentRepository) ListByState(ctx context.Context, state models.PaymentState) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE state = $1 ORDER BY paid_at ASC`

	rows, err := r.db.QueryContext(ctx, query, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		var payment models.Payment
		if scanErr := scanPayment(rows, &payment); scanErr != nil {
			return nil, scanErr
		}
		payments = append(payments, payment)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *postgresPaymentRepository) UpdateReceiptKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE payments SET receipt_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPaymentNotFound)
}

func (r *postgresPaymentRepository) UpdateState(ctx context.Context, exec SQLExecutor, id int, state models.PaymentState) error {
	result, err := exec.ExecContext(ctx, `UPDATE payments SET state = $1 WHERE id = $2`, state, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPaymentNotFound)
}

func (r *postgresPaymentRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPaymentNotFound)
}
