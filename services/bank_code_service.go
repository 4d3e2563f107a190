package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
	"github.com/uide-sports/campeonatos-api/storage"
)

var (
	ErrBankNameRequired      = errors.New("bank name is required")
	ErrInvalidQRContentType  = errors.New("invalid QR content type, allowed: image/jpeg, image/png, image/webp")
	ErrBankCodeQRUploadError = errors.New("failed to upload bank QR code")
)

type BankCodeService interface {
	CreateBankCode(ctx context.Context, input BankCodeInput) (*models.BankCode, error)
	GetBankCodeByID(ctx context.Context, id int) (*models.BankCode, error)
	GetAllBankCodes(ctx context.Context) ([]models.BankCode, error)
	UpdateBankCode(ctx context.Context, id int, input BankCodeInput) (*models.BankCode, error)
	UploadQRCode(ctx context.Context, id int, file io.Reader, contentType string) (*models.BankCode, error)
	DeleteBankCode(ctx context.Context, id int) error
}

type BankCodeInput struct {
	Bank        string
	Description *string
}

type bankCodeService struct {
	bankCodeRepo repositories.BankCodeRepository
	uploader     storage.FileUploader
}

func NewBankCodeService(bankCodeRepo repositories.BankCodeRepository, uploader storage.FileUploader) BankCodeService {
	return &bankCodeService{bankCodeRepo: bankCodeRepo, uploader: uploader}
}

func (s *bankCodeService) CreateBankCode(ctx context.Context, input BankCodeInput) (*models.BankCode, error) {
	bank := strings.TrimSpace(input.Bank)
	if bank == "" {
		return nil, ErrBankNameRequired
	}

	code := &models.BankCode{
		Bank:        bank,
		Description: input.Description,
	}

	if err := s.bankCodeRepo.Create(ctx, code); err != nil {
		if errors.Is(err, repositories.ErrBankCodeBankConflict) {
			return nil, ErrBankConflict
		}
		return nil, fmt.Errorf("failed to create bank code: %w", err)
	}
	return code, nil
}

func (s *bankCodeService) GetBankCodeByID(ctx context.Context, id int) (*models.BankCode, error) {
	code, err := s.bankCodeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrBankCodeNotFound) {
			return nil, ErrBankCodeNotFound
		}
		return nil, fmt.Errorf("failed to get bank code by id %d: %w", id, err)
	}
	s.populateQRURL(code)
	return code, nil
}

func (s *bankCodeService) GetAllBankCodes(ctx context.Context) ([]models.BankCode, error) {
	codes, err := s.bankCodeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all bank codes: %w", err)
	}
	for i := range codes {
		s.populateQRURL(&codes[i])
	}
	if codes == nil {
		return []models.BankCode{}, nil
	}
	return codes, nil
}

func (s *bankCodeService) UpdateBankCode(ctx context.Context, id int, input BankCodeInput) (*models.BankCode, error) {
	bank := strings.TrimSpace(input.Bank)
	if bank == "" {
		return nil, ErrBankNameRequired
	}

	code, err := s.GetBankCodeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	code.Bank = bank
	code.Description = input.Description

	if err := s.bankCodeRepo.Update(ctx, code); err != nil {
		switch {
		case errors.Is(err, repositories.ErrBankCodeNotFound):
			return nil, ErrBankCodeNotFound
		case errors.Is(err, repositories.ErrBankCodeBankConflict):
			return nil, ErrBankConflict
		default:
			return nil, fmt.Errorf("failed to update bank code %d: %w", id, err)
		}
	}
	return code, nil
}

// UploadQRCode reemplaza la imagen QR del banco en el object storage y
// guarda la nueva clave.
func (s *bankCodeService) UploadQRCode(ctx context.Context, id int, file io.Reader, contentType string) (*models.BankCode, error) {
	ext, ok := imageExtensionForContentType(contentType)
	if !ok {
		return nil, ErrInvalidQRContentType
	}

	code, err := s.GetBankCodeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldKey := code.QRKey
	newKey := fmt.Sprintf("bank-codes/%d/qr.%s", code.ID, ext)

	result, err := s.uploader.Upload(ctx, newKey, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBankCodeQRUploadError, err)
	}

	if err := s.bankCodeRepo.UpdateQRKey(ctx, code.ID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save bank QR key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		// La limpieza del objeto viejo no es crítica para la operación.
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	code.QRKey = &result.Key
	s.populateQRURL(code)
	return code, nil
}

func (s *bankCodeService) DeleteBankCode(ctx context.Context, id int) error {
	code, err := s.GetBankCodeByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.bankCodeRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrBankCodeNotFound):
			return ErrBankCodeNotFound
		case errors.Is(err, repositories.ErrBankCodeInUse):
			return ErrBankCodeInUse
		default:
			return fmt.Errorf("failed to delete bank code %d: %w", id, err)
		}
	}

	if code.QRKey != nil {
		_ = s.uploader.Delete(ctx, *code.QRKey)
	}
	return nil
}

func (s *bankCodeService) populateQRURL(code *models.BankCode) {
	if code.QRKey == nil || s.uploader == nil {
		return
	}
	if url := s.uploader.GetPublicURL(*code.QRKey); url != "" {
		code.QRURL = &url
	}
}

func imageExtensionForContentType(contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg":
		return "jpg", true
	case "image/png":
		return "png", true
	case "image/webp":
		return "webp", true
	}
	return "", false
}
