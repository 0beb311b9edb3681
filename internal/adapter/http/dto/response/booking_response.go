package response

import (
	"time"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase"
)

type InstallmentResponse struct {
	Term             string  `json:"term"`
	Amount           string  `json:"amount"`
	DueDate          string  `json:"due_date"`
	DatePaid         *string `json:"date_paid"`
	PaidByEvidenceID string  `json:"paid_by_evidence_id,omitempty"`
}

type BookingResponse struct {
	DocumentID           string                `json:"document_id"`
	BookingID            string                `json:"booking_id"`
	GroupID              string                `json:"group_id,omitempty"`
	MemberCode           string                `json:"member_code,omitempty"`
	BookingType          string                `json:"booking_type"`
	IsMainBooker         bool                  `json:"is_main_booker"`
	Email                string                `json:"email"`
	FirstName            string                `json:"first_name"`
	LastName             string                `json:"last_name"`
	TourPackageID        string                `json:"tour_package_id"`
	TourName             string                `json:"tour_name"`
	TourDate             string                `json:"tour_date"`
	ReturnDate           string                `json:"return_date,omitempty"`
	OriginalTourCost     string                `json:"original_tour_cost"`
	DiscountedTourCost   *string               `json:"discounted_tour_cost,omitempty"`
	Currency             string                `json:"currency"`
	ReservationFee       string                `json:"reservation_fee"`
	ReservationFeePaidAt *time.Time            `json:"reservation_fee_paid_at,omitempty"`
	PaymentPlan          string                `json:"payment_plan"`
	PaymentTermID        string                `json:"payment_term_id"`
	Installments         []InstallmentResponse `json:"installments"`
	BookingStatus        string                `json:"booking_status"`
	PaymentProgress      int                   `json:"payment_progress"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	res := BookingResponse{
		DocumentID:           b.DocumentID,
		BookingID:            b.BookingID,
		GroupID:              b.GroupID,
		MemberCode:           b.MemberCode,
		BookingType:          string(b.BookingType),
		IsMainBooker:         b.IsMainBooker,
		Email:                b.Email,
		FirstName:            b.FirstName,
		LastName:             b.LastName,
		TourPackageID:        b.TourPackageID,
		TourName:             b.TourName,
		TourDate:             formatDate(b.TourDate),
		ReturnDate:           formatDate(b.ReturnDate),
		OriginalTourCost:     b.OriginalTourCost.StringFixed(2),
		Currency:             b.Currency,
		ReservationFee:       b.ReservationFee.StringFixed(2),
		ReservationFeePaidAt: b.ReservationFeePaidAt,
		PaymentPlan:          b.PaymentPlan,
		PaymentTermID:        b.PaymentTermID,
		Installments:         make([]InstallmentResponse, 0, len(b.Installments)),
		BookingStatus:        string(b.BookingStatus),
		PaymentProgress:      b.PaymentProgress,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
	if b.DiscountedTourCost != nil {
		v := b.DiscountedTourCost.StringFixed(2)
		res.DiscountedTourCost = &v
	}
	for _, inst := range b.Installments {
		item := InstallmentResponse{
			Term:             string(inst.Term),
			Amount:           inst.Amount.StringFixed(2),
			DueDate:          formatDate(inst.DueDate),
			PaidByEvidenceID: inst.PaidByEvidenceID,
		}
		if inst.DatePaid != nil {
			paid := formatDate(*inst.DatePaid)
			item.DatePaid = &paid
		}
		res.Installments = append(res.Installments, item)
	}
	return res
}

func FromBookings(list []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBooking(b))
	}
	return out
}

type GuestBookingResponse struct {
	BookingDocumentID string `json:"bookingDocumentId"`
	BookingID         string `json:"bookingId"`
}

func FromGuestOnboarding(res usecase.GuestOnboardingResult) GuestBookingResponse {
	return GuestBookingResponse{BookingDocumentID: res.BookingDocumentID, BookingID: res.BookingID}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}
