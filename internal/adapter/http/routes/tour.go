package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathGuestBooking    = "/guest-booking"
	PathBookings        = "/bookings"
	PathPaymentTerms    = "/payment-terms"
	PathPaymentEvidence = "/payment-evidence"
)

func addTourRoutes(rg *gin.RouterGroup, h appHandlers) {
	rg.POST(PathGuestBooking, h.guestBooking.CreateGuestBooking)

	bookings := rg.Group(PathBookings)
	{
		bookings.POST("/checkout", h.booking.CreateFromCheckout)
		bookings.GET("", h.booking.ListBookings)
		bookings.GET("/:document_id", h.booking.GetBooking)
		bookings.PATCH("/:document_id/installments/:term", h.booking.OverrideInstallment)
	}

	terms := rg.Group(PathPaymentTerms)
	{
		terms.POST("", h.paymentTerm.CreatePaymentTerm)
		terms.GET("", h.paymentTerm.ListPaymentTerms)
		terms.GET("/:id", h.paymentTerm.GetPaymentTerm)
		terms.PUT("/:id", h.paymentTerm.UpdatePaymentTerm)
		terms.PATCH("/:id/deactivate", h.paymentTerm.DeactivatePaymentTerm)
	}

	evidence := rg.Group(PathPaymentEvidence)
	{
		evidence.POST("", h.paymentEvidence.SubmitEvidence)
		evidence.GET("", h.paymentEvidence.ListEvidence)
		evidence.GET("/:id", h.paymentEvidence.GetEvidence)
		evidence.POST("/:id/approve", h.paymentEvidence.ApproveEvidence)
		evidence.POST("/:id/reject", h.paymentEvidence.RejectEvidence)
	}
}
