package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "tour_billing/internal/adapter/http/dto/request"
	response "tour_billing/internal/adapter/http/dto/response"
	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase"
	"tour_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid checkout payload", http.StatusBadRequest)
	errMissingGroupID         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "group_id is required", http.StatusBadRequest)
)

// BookingHandler exposes checkout intake and the operator's booking ledger.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateFromCheckout godoc
// @Summary      Create the main booking for a completed checkout
// @Description  Idempotent on provider and provider_payment_id: replays return the booking created first.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CheckoutRequest  true  "Checkout"
// @Success      201      {object}  response.BookingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /bookings/checkout [post]
func (h *BookingHandler) CreateFromCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidCheckoutPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	booking, err := h.usecase.CreateFromCheckout(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapBookingError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

// GetBooking godoc
// @Summary  Get a booking by document id
// @Tags     bookings
// @Produce  json
// @Param    document_id  path      string  true  "Booking document id"
// @Success  200          {object}  response.BookingResponse
// @Failure  404          {object}  pkg.HTTPError
// @Router   /bookings/{document_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.usecase.GetByDocumentID(c.Request.Context(), c.Param("document_id"))
	if err != nil {
		writeError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// ListBookings godoc
// @Summary  List the bookings of a group, main booker first
// @Tags     bookings
// @Produce  json
// @Param    group_id  query     string  true  "Group id"
// @Success  200       {array}   response.BookingResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	groupID := strings.TrimSpace(c.Query("group_id"))
	if groupID == "" {
		writeError(c, errMissingGroupID)
		return
	}

	bookings, err := h.usecase.ListByGroupID(c.Request.Context(), groupID)
	if err != nil {
		writeError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// OverrideInstallment godoc
// @Summary      Mark an installment paid or unpaid
// @Description  A null date_paid clears the payment. Status and progress are recomputed.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        document_id  path      string                               true  "Booking document id"
// @Param        term         path      string                               true  "P1..P4 or full_payment"
// @Param        payload      body      request.InstallmentOverrideRequest  true  "Override"
// @Success      200          {object}  response.BookingResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /bookings/{document_id}/installments/{term} [patch]
func (h *BookingHandler) OverrideInstallment(c *gin.Context) {
	var payload request.InstallmentOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	datePaid, err := payload.ResolveDatePaid()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	booking, err := h.usecase.OverrideInstallment(c.Request.Context(), c.Param("document_id"), c.Param("term"), datePaid)
	if err != nil {
		writeError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrScheduleInfeasible):
		return pkg.NewDomainError("SCHEDULE_INFEASIBLE", "The payment term cannot be scheduled before the tour date", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrDuplicateBooking):
		return pkg.NewDomainError("DUPLICATE_BOOKING", "This email already has a booking in the group", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Booking, tour package or payment term not found", err, http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
