package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "tour_billing/internal/adapter/http/dto/request"
	response "tour_billing/internal/adapter/http/dto/response"
	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase"
	"tour_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTermPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_TERM", "Invalid payment term payload", http.StatusBadRequest)
)

// PaymentTermHandler backs the payment-terms settings screen.
type PaymentTermHandler struct {
	usecase usecase.IPaymentTermUseCase
}

func NewPaymentTermHandler(uc usecase.IPaymentTermUseCase) *PaymentTermHandler {
	return &PaymentTermHandler{usecase: uc}
}

// CreatePaymentTerm godoc
// @Summary  Create a payment term
// @Tags     payment-terms
// @Accept   json
// @Produce  json
// @Param    payload  body      request.PaymentTermRequest  true  "Payment term"
// @Success  201      {object}  response.PaymentTermResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /payment-terms [post]
func (h *PaymentTermHandler) CreatePaymentTerm(c *gin.Context) {
	var payload request.PaymentTermRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidTermPayload)
		return
	}

	term, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapPaymentTermError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentTerm(term))
}

// ListPaymentTerms godoc
// @Summary  List payment terms by sort order
// @Tags     payment-terms
// @Produce  json
// @Param    active  query    bool  false  "Only active terms"
// @Success  200     {array}  response.PaymentTermResponse
// @Router   /payment-terms [get]
func (h *PaymentTermHandler) ListPaymentTerms(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(c, errInvalidRequest)
			return
		}
		activeOnly = v
	}

	terms, err := h.usecase.List(c.Request.Context(), activeOnly)
	if err != nil {
		writeError(c, mapPaymentTermError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTerms(terms))
}

// GetPaymentTerm godoc
// @Summary  Get a payment term
// @Tags     payment-terms
// @Produce  json
// @Param    id   path      string  true  "Payment term id"
// @Success  200  {object}  response.PaymentTermResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /payment-terms/{id} [get]
func (h *PaymentTermHandler) GetPaymentTerm(c *gin.Context) {
	term, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentTermError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTerm(term))
}

// UpdatePaymentTerm godoc
// @Summary      Replace a payment term
// @Description  Existing bookings keep the schedule they were created with.
// @Tags         payment-terms
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Payment term id"
// @Param        payload  body      request.PaymentTermRequest  true  "Payment term"
// @Success      200      {object}  response.PaymentTermResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /payment-terms/{id} [put]
func (h *PaymentTermHandler) UpdatePaymentTerm(c *gin.Context) {
	var payload request.PaymentTermRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidTermPayload)
		return
	}

	term, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapPaymentTermError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTerm(term))
}

// DeactivatePaymentTerm godoc
// @Summary  Deactivate a payment term
// @Tags     payment-terms
// @Produce  json
// @Param    id   path      string  true  "Payment term id"
// @Success  200  {object}  response.PaymentTermResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /payment-terms/{id}/deactivate [patch]
func (h *PaymentTermHandler) DeactivatePaymentTerm(c *gin.Context) {
	term, err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentTermError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTerm(term))
}

func mapPaymentTermError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("PAYMENT_TERM_NOT_FOUND", "Payment term not found", err, http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
