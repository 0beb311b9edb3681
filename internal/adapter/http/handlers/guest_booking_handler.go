package handlers

import (
	"errors"
	"net/http"

	request "tour_billing/internal/adapter/http/dto/request"
	response "tour_billing/internal/adapter/http/dto/response"
	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase"
	"tour_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidGuestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "paymentDocId, parentBookingId and guestEmail are required", http.StatusBadRequest)
)

// GuestBookingHandler serves the guest invitation page.
type GuestBookingHandler struct {
	usecase usecase.IGuestBookingUseCase
}

func NewGuestBookingHandler(uc usecase.IGuestBookingUseCase) *GuestBookingHandler {
	return &GuestBookingHandler{usecase: uc}
}

// CreateGuestBooking godoc
// @Summary      Onboard an invited guest
// @Description  Creates the guest's booking inside the parent's group and marks the invitation accepted. A retry after a partial failure resumes with the stored booking; once the invitation is accepted further calls are rejected.
// @Tags         guest-booking
// @Accept       json
// @Produce      json
// @Param        payload  body      request.GuestBookingRequest  true  "Guest booking"
// @Success      201      {object}  response.GuestBookingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /guest-booking [post]
func (h *GuestBookingHandler) CreateGuestBooking(c *gin.Context) {
	var payload request.GuestBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidGuestPayload)
		return
	}

	res, err := h.usecase.OnboardGuest(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapGuestBookingError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromGuestOnboarding(res))
}

func mapGuestBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrDuplicateBooking):
		return pkg.NewDomainError("DUPLICATE_BOOKING", "This email already has a booking in the group", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvitationInvalid):
		return pkg.NewDomainError("INVITATION_INVALID", "The invitation is not valid for this guest", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Payment record or parent booking not found", err, http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
