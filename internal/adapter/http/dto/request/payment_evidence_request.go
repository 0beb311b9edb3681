package request

import (
	"mime/multipart"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

// PaymentEvidenceForm is the multipart form a traveller submits with a
// bank-transfer screenshot.
type PaymentEvidenceForm struct {
	BookingDocumentID string                `form:"booking_document_id" binding:"required"`
	InstallmentTerm   string                `form:"installment_term" binding:"required"`
	Amount            string                `form:"amount" binding:"required"`
	Currency          string                `form:"currency"`
	Screenshot        *multipart.FileHeader `form:"screenshot" binding:"required"`
}

// ResolveAmount parses Amount; the caller owns opening the screenshot.
func (f PaymentEvidenceForm) ResolveAmount() (decimal.Decimal, error) {
	return decimal.NewFromString(f.Amount)
}

func (f PaymentEvidenceForm) ToSubmission(amount decimal.Decimal) usecase.EvidenceSubmission {
	return usecase.EvidenceSubmission{
		BookingDocumentID: f.BookingDocumentID,
		InstallmentTerm:   f.InstallmentTerm,
		Amount:            amount,
		Currency:          f.Currency,
		FileName:          f.Screenshot.Filename,
		ContentType:       f.Screenshot.Header.Get("Content-Type"),
		Size:              f.Screenshot.Size,
	}
}

type RejectEvidenceRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// EvidenceListQuery filters GET /payment-evidence.
type EvidenceListQuery struct {
	Status            string `form:"status"`
	BookingDocumentID string `form:"booking_document_id"`
}

func (q EvidenceListQuery) ToFilter() usecase.EvidenceFilter {
	return usecase.EvidenceFilter{
		Status:            entities.EvidenceStatus(q.Status),
		BookingDocumentID: q.BookingDocumentID,
	}
}
