package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/uide-sports/campeonatos-api/models"
)

var (
	ErrBankCodeNotFound     = errors.New("bank code not found")
	ErrBankCodeBankConflict = errors.New("bank code bank conflict")
	ErrBankCodeInUse        = errors.New("bank code cannot be deleted as it is in use")
)

type BankCodeRepository interface {
	Create(ctx context.Context, code *models.BankCode) error
	GetByID(ctx context.Context, id int) (*models.BankCode, error)
	GetAll(ctx context.Context) ([]models.BankCode, error)
	Update(ctx context.Context, code *models.BankCode) error
	UpdateQRKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
}

type postgresBankCodeRepository struct {
	db *sql.DB
}

func NewPostgresBankCodeRepository(db *sql.DB) BankCodeRepository {
	return &postgresBankCodeRepository{db: db}
}

func (r *postgresBankCodeRepository) Create(ctx context.Context, code *models.BankCode) error {
	query := `INSERT INTO bank_codes (bank, description, qr_key) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, code.Bank, code.Description, code.QRKey).Scan(&code.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrBankCodeBankConflict
		}
		return err
	}
	return nil
}

func (r *postgresBankCodeRepository) GetByID(ctx context.Context, id int) (*models.BankCode, error) {
	query := `SELECT id, bank, description, qr_key FROM bank_codes WHERE id = $1`

	var code models.BankCode
	err := r.db.QueryRowContext(ctx, query, id).Scan(&code.ID, &code.Bank, &code.Description, &code.QRKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBankCodeNotFound
		}
		return nil, err
	}
	return &code, nil
}

func (r *postgresBankCodeRepository) GetAll(ctx context.Context) ([]models.BankCode, error) {
	query := `SELECT id, bank, description, qr_key FROM bank_codes ORDER BY bank ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make([]models.BankCode, 0)
	for rows.Next() {
		var code models.BankCode
		if scanErr := rows.Scan(&code.ID, &code.Bank, &code.Description, &code.QRKey); scanErr != nil {
			return nil, scanErr
		}
		codes = append(codes, code)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *postgresBankCodeRepository) Update(ctx context.Context, code *models.BankCode) error {
	query := `UPDATE bank_codes SET bank = $1, description = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, code.Bank, code.Description, code.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrBankCodeBankConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrBankCodeNotFound)
}

func (r *postgresBankCodeRepository) UpdateQRKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE bank_codes SET qr_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrBankCodeNotFound)
}

func (r *postgresBankCodeRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bank_codes WHERE id = $1`, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrBankCodeInUse
		}
		return err
	}
	return checkAffectedRows(result, ErrBankCodeNotFound)
}
