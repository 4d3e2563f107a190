package handlers

import (
	"net/http"

	"github.com/uide-sports/campeonatos-api/services"
)

type BankCodeHandler struct {
	bankCodeService services.BankCodeService
}

func NewBankCodeHandler(bankCodeService services.BankCodeService) *BankCodeHandler {
	return &BankCodeHandler{bankCodeService: bankCodeService}
}

type bankCodeRequest struct {
	Bank        string  `json:"bank" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

func (h *BankCodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bankCodeRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	code, err := h.bankCodeService.CreateBankCode(r.Context(), services.BankCodeInput{
		Bank:        req.Bank,
		Description: req.Description,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"bank_code": code}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BankCodeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bankCodeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	code, err := h.bankCodeService.GetBankCodeByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bank_code": code}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BankCodeHandler) List(w http.ResponseWriter, r *http.Request) {
	codes, err := h.bankCodeService.GetAllBankCodes(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bank_codes": codes}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BankCodeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bankCodeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req bankCodeRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	code, err := h.bankCodeService.UpdateBankCode(r.Context(), id, services.BankCodeInput{
		Bank:        req.Bank,
		Description: req.Description,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bank_code": code}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadQR recibe la imagen QR de cobro por multipart (campo "file").
func (h *BankCodeHandler) UploadQR(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bankCodeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	file, contentType, err := formFile(r, "file")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	code, err := h.bankCodeService.UploadQRCode(r.Context(), id, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bank_code": code}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BankCodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bankCodeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.bankCodeService.DeleteBankCode(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
