package handlers

import (
	"errors"
	"net/http"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/services"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type paymentRequest struct {
	TeamID     int                  `json:"team_id" validate:"required,gt=0"`
	Method     models.PaymentMethod `json:"method" validate:"required,oneof=TRANSFER CASH"`
	BankCodeID *int                 `json:"bank_code_id,omitempty"`
}

func (h *PaymentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	payment, err := h.paymentService.SubmitPayment(r.Context(), services.PaymentInput{
		TeamID:     req.TeamID,
		Method:     req.Method,
		BankCodeID: req.BankCodeID,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"payment": payment}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "paymentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	payment, err := h.paymentService.GetPaymentByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"payment": payment}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PaymentHandler) GetByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	payment, err := h.paymentService.GetPaymentByTeamID(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"payment": payment}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByState lista pagos por estado; por defecto los pendientes de revisión.
func (h *PaymentHandler) ListByState(w http.ResponseWriter, r *http.Request) {
	state := models.PaymentPending
	if raw := r.URL.Query().Get("state"); raw != "" {
		state = models.PaymentState(raw)
		if !state.Valid() {
			badRequestResponse(w, r, errors.New("invalid state filter"))
			return
		}
	}

	payments, err := h.paymentService.ListPaymentsByState(r.Context(), state)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"payments": payments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadReceipt recibe el comprobante de pago por multipart (campo "file").
func (h *PaymentHandler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "paymentID")
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

	payment, err := h.paymentService.UploadReceipt(r.Context(), id, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"payment": payment}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PaymentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "paymentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	payment, err := h.paymentService.ApprovePayment(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"payment": payment}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PaymentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "paymentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	payment, err := h.paymentService.RejectPayment(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"payment": payment}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
