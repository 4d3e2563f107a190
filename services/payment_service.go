package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
	"github.com/uide-sports/campeonatos-api/storage"
)

var (
	ErrInvalidPaymentMethod       = errors.New("invalid payment method, allowed: TRANSFER, CASH")
	ErrInvalidReceiptContentType  = errors.New("invalid receipt content type, allowed: image/jpeg, image/png, image/webp, application/pdf")
	ErrPaymentReceiptUploadFailed = errors.New("failed to upload payment receipt")
)

type PaymentService interface {
	// SubmitPayment registra el pago de inscripción de un equipo. Las
	// transferencias exigen el código de banco destino.
	SubmitPayment(ctx context.Context, input PaymentInput) (*models.Payment, error)
	GetPaymentByID(ctx context.Context, id int) (*models.Payment, error)
	GetPaymentByTeamID(ctx context.Context, teamID int) (*models.Payment, error)
	ListPaymentsByState(ctx context.Context, state models.PaymentState) ([]models.Payment, error)
	UploadReceipt(ctx context.Context, id int, file io.Reader, contentType string) (*models.Payment, error)
	// ApprovePayment marca el pago como APPROVED y aprueba el equipo, en una
	// sola transacción. Solo se revisa un pago PENDING con comprobante adjunto.
	ApprovePayment(ctx context.Context, id int) (*models.Payment, error)
	// RejectPayment marca el pago como REJECTED y deja el equipo sin aprobar,
	// en una sola transacción.
	RejectPayment(ctx context.Context, id int) (*models.Payment, error)
}

type PaymentInput struct {
	TeamID     int
	Method     models.PaymentMethod
	BankCodeID *int
}

type paymentService struct {
	paymentRepo  repositories.PaymentRepository
	teamRepo     repositories.TeamRepository
	bankCodeRepo repositories.BankCodeRepository
	uploader     storage.FileUploader

	// runInTx ejecuta fn dentro de una transacción; o se aplica todo o nada.
	runInTx func(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error
}

func NewPaymentService(
	db *sql.DB,
	paymentRepo repositories.PaymentRepository,
	teamRepo repositories.TeamRepository,
	bankCodeRepo repositories.BankCodeRepository,
	uploader storage.FileUploader,
) PaymentService {
	return &paymentService{
		paymentRepo:  paymentRepo,
		teamRepo:     teamRepo,
		bankCodeRepo: bankCodeRepo,
		uploader:     uploader,
		runInTx: func(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to begin transaction: %w", err)
			}
			defer tx.Rollback()

			if err := fn(tx); err != nil {
				return err
			}
			if err := tx.Commit(); err != nil {
				return fmt.Errorf("failed to commit transaction: %w", err)
			}
			return nil
		},
	}
}

func (s *paymentService) SubmitPayment(ctx context.Context, input PaymentInput) (*models.Payment, error) {
	if !input.Method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	if _, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to check team %d: %w", input.TeamID, err)
	}

	if input.Method == models.PaymentTransfer {
		if input.BankCodeID == nil {
			return nil, ErrBankCodeRequired
		}
		if _, err := s.bankCodeRepo.GetByID(ctx, *input.BankCodeID); err != nil {
			if errors.Is(err, repositories.ErrBankCodeNotFound) {
				return nil, ErrBankCodeNotFound
			}
			return nil, fmt.Errorf("failed to check bank code %d: %w", *input.BankCodeID, err)
		}
	} else {
		// El pago en efectivo no lleva banco.
		input.BankCodeID = nil
	}

	payment := &models.Payment{
		TeamID:     input.TeamID,
		Method:     input.Method,
		BankCodeID: input.BankCodeID,
		State:      models.PaymentPending,
		PaidAt:     time.Now().UTC(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, repositories.ErrPaymentTeamConflict) {
			return nil, ErrPaymentAlreadyExists
		}
		return nil, fmt.Errorf("failed to submit payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, id int) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by id %d: %w", id, err)
	}
	s.populateReceiptURL(payment)
	return payment, nil
}

func (s *paymentService) GetPaymentByTeamID(ctx context.Context, teamID int) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment for team %d: %w", teamID, err)
	}
	s.populateReceiptURL(payment)
	return payment, nil
}

func (s *paymentService) ListPaymentsByState(ctx context.Context, state models.PaymentState) ([]models.Payment, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("invalid payment state %q", state)
	}

	payments, err := s.paymentRepo.ListByState(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by state %s: %w", state, err)
	}
	for i := range payments {
		s.populateReceiptURL(&payments[i])
	}
	if payments == nil {
		return []models.Payment{}, nil
	}
	return payments, nil
}

func (s *paymentService) UploadReceipt(ctx context.Context, id int, file io.Reader, contentType string) (*models.Payment, error) {
	ext, ok := receiptExtensionForContentType(contentType)
	if !ok {
		return nil, ErrInvalidReceiptContentType
	}

	payment, err := s.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.State != models.PaymentPending {
		return nil, ErrPaymentAlreadyReviewed
	}

	oldKey := payment.ReceiptKey
	newKey := fmt.Sprintf("payments/%d/receipt.%s", payment.ID, ext)

	result, err := s.uploader.Upload(ctx, newKey, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPaymentReceiptUploadFailed, err)
	}

	if err := s.paymentRepo.UpdateReceiptKey(ctx, payment.ID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save payment receipt key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	payment.ReceiptKey = &result.Key
	s.populateReceiptURL(payment)
	return payment, nil
}

func (s *paymentService) ApprovePayment(ctx context.Context, id int) (*models.Payment, error) {
	payment, err := s.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.State != models.PaymentPending {
		return nil, ErrPaymentAlreadyReviewed
	}
	if payment.ReceiptKey == nil {
		return nil, ErrReceiptRequired
	}

	if err := s.review(ctx, payment, models.PaymentApproved, true); err != nil {
		return nil, err
	}
	payment.State = models.PaymentApproved
	return payment, nil
}

func (s *paymentService) RejectPayment(ctx context.Context, id int) (*models.Payment, error) {
	payment, err := s.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.State != models.PaymentPending {
		return nil, ErrPaymentAlreadyReviewed
	}
	if payment.ReceiptKey == nil {
		return nil, ErrReceiptRequired
	}

	if err := s.review(ctx, payment, models.PaymentRejected, false); err != nil {
		return nil, err
	}
	payment.State = models.PaymentRejected
	return payment, nil
}

// review cambia el estado del pago y teams.approved dentro de una misma
// transacción; o se aplican los dos cambios o ninguno.
func (s *paymentService) review(ctx context.Context, payment *models.Payment, state models.PaymentState, approved bool) error {
	return s.runInTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.paymentRepo.UpdateState(ctx, exec, payment.ID, state); err != nil {
			return fmt.Errorf("failed to update payment %d state: %w", payment.ID, err)
		}
		if err := s.teamRepo.SetApproved(ctx, exec, payment.TeamID, approved); err != nil {
			return fmt.Errorf("failed to update team %d approval: %w", payment.TeamID, err)
		}
		return nil
	})
}

func (s *paymentService) populateReceiptURL(payment *models.Payment) {
	if payment.ReceiptKey == nil || s.uploader == nil {
		return
	}
	if url := s.uploader.GetPublicURL(*payment.ReceiptKey); url != "" {
		payment.ReceiptURL = &url
	}
}

func receiptExtensionForContentType(contentType string) (string, bool) {
	if contentType == "application/pdf" {
		return "pdf", true
	}
	return imageExtensionForContentType(contentType)
}
