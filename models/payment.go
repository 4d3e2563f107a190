package models

import "time"

// PaymentMethod representa la forma de pago de la inscripción.
type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCash     PaymentMethod = "CASH"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentTransfer || m == PaymentCash
}

// PaymentState representa el estado de revisión del pago.
type PaymentState string

const (
	PaymentPending  PaymentState = "PENDING"
	PaymentApproved PaymentState = "APPROVED"
	PaymentRejected PaymentState = "REJECTED"
)

func (s PaymentState) Valid() bool {
	switch s {
	case PaymentPending, PaymentApproved, PaymentRejected:
		return true
	}
	return false
}

// BankCode guarda el código QR de cobro de un banco.
type BankCode struct {
	ID          int     `json:"id" db:"id"`
	Bank        string  `json:"bank" db:"bank"`
	Description *string `json:"description,omitempty" db:"description"`

	QRKey *string `json:"-" db:"qr_key"`
	QRURL *string `json:"qr_url,omitempty" db:"-"`
}

// Payment es el registro de pago de inscripción de un equipo (uno a uno).
type Payment struct {
	ID         int           `json:"id" db:"id"`
	TeamID     int           `json:"team_id" db:"team_id"`
	Method     PaymentMethod `json:"method" db:"method"`
	BankCodeID *int          `json:"bank_code_id,omitempty" db:"bank_code_id"`
	State      PaymentState  `json:"state" db:"state"`
	PaidAt     time.Time     `json:"paid_at" db:"paid_at"`

	ReceiptKey *string `json:"-" db:"receipt_key"`
	ReceiptURL *string `json:"receipt_url,omitempty" db:"-"`

	Team     *Team     `json:"team,omitempty" db:"-"`
	BankCode *BankCode `json:"bank_code,omitempty" db:"-"`
}
