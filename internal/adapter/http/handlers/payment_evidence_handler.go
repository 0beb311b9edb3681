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

// multipartOverhead is the allowance for form fields and boundaries on top
// of the screenshot itself.
const multipartOverhead int64 = 64 << 10

var (
	errInvalidEvidenceForm = pkg.NewDomainErrorSimple("INVALID_REQUEST", "booking_document_id, installment_term, amount and screenshot are required", http.StatusBadRequest)
	errInvalidAmount       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "amount must be a decimal number", http.StatusBadRequest)
	errEvidenceTooLarge    = pkg.NewDomainErrorSimple("EVIDENCE_TOO_LARGE", "Screenshot exceeds the upload limit", http.StatusRequestEntityTooLarge)
	errReasonRequired      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "reason is required", http.StatusBadRequest)
)

// PaymentEvidenceHandler receives bank-transfer screenshots and serves the
// operator review queue.
type PaymentEvidenceHandler struct {
	usecase  usecase.IPaymentEvidenceUseCase
	maxBytes int64
}

func NewPaymentEvidenceHandler(uc usecase.IPaymentEvidenceUseCase, maxBytes int64) *PaymentEvidenceHandler {
	return &PaymentEvidenceHandler{usecase: uc, maxBytes: maxBytes}
}

// SubmitEvidence godoc
// @Summary  Submit a bank-transfer screenshot for one installment
// @Tags     payment-evidence
// @Accept   multipart/form-data
// @Produce  json
// @Param    booking_document_id  formData  string  true   "Booking document id"
// @Param    installment_term     formData  string  true   "P1..P4 or full_payment"
// @Param    amount               formData  string  true   "Transferred amount"
// @Param    currency             formData  string  false  "Currency, defaults to the booking's"
// @Param    screenshot           formData  file    true   "Transfer screenshot"
// @Success  201                  {object}  response.PaymentEvidenceResponse
// @Failure  400                  {object}  pkg.HTTPError
// @Failure  404                  {object}  pkg.HTTPError
// @Failure  409                  {object}  pkg.HTTPError
// @Failure  413                  {object}  pkg.HTTPError
// @Router   /payment-evidence [post]
func (h *PaymentEvidenceHandler) SubmitEvidence(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	var form request.PaymentEvidenceForm
	if err := c.ShouldBind(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, errEvidenceTooLarge)
			return
		}
		writeError(c, errInvalidEvidenceForm)
		return
	}
	if h.maxBytes > 0 && form.Screenshot.Size > h.maxBytes {
		writeError(c, errEvidenceTooLarge)
		return
	}
	amount, err := form.ResolveAmount()
	if err != nil {
		writeError(c, errInvalidAmount)
		return
	}

	file, err := form.Screenshot.Open()
	if err != nil {
		writeError(c, errInvalidEvidenceForm)
		return
	}
	defer file.Close()

	submission := form.ToSubmission(amount)
	submission.Screenshot = file

	evidence, err := h.usecase.Submit(c.Request.Context(), submission)
	if err != nil {
		writeError(c, mapPaymentEvidenceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentEvidence(evidence))
}

// ListEvidence godoc
// @Summary      List payment evidence
// @Description  Without filters the pending review queue is returned, oldest first.
// @Tags         payment-evidence
// @Produce      json
// @Param        status               query    string  false  "pending, approved or rejected"
// @Param        booking_document_id  query    string  false  "Booking document id"
// @Success      200                  {array}  response.PaymentEvidenceResponse
// @Failure      400                  {object}  pkg.HTTPError
// @Router       /payment-evidence [get]
func (h *PaymentEvidenceHandler) ListEvidence(c *gin.Context) {
	var query request.EvidenceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	list, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		writeError(c, mapPaymentEvidenceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentEvidenceList(list))
}

// GetEvidence godoc
// @Summary  Get payment evidence
// @Tags     payment-evidence
// @Produce  json
// @Param    id   path      string  true  "Evidence id"
// @Success  200  {object}  response.PaymentEvidenceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /payment-evidence/{id} [get]
func (h *PaymentEvidenceHandler) GetEvidence(c *gin.Context) {
	evidence, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentEvidenceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentEvidence(evidence))
}

// ApproveEvidence godoc
// @Summary      Approve payment evidence
// @Description  Marks the installment paid. Approving an approved record returns it unchanged.
// @Tags         payment-evidence
// @Produce      json
// @Param        id   path      string  true  "Evidence id"
// @Success      200  {object}  response.PaymentEvidenceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payment-evidence/{id}/approve [post]
func (h *PaymentEvidenceHandler) ApproveEvidence(c *gin.Context) {
	evidence, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentEvidenceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentEvidence(evidence))
}

// RejectEvidence godoc
// @Summary  Reject payment evidence
// @Tags     payment-evidence
// @Accept   json
// @Produce  json
// @Param    id       path      string                         true  "Evidence id"
// @Param    payload  body      request.RejectEvidenceRequest  true  "Rejection"
// @Success  200      {object}  response.PaymentEvidenceResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /payment-evidence/{id}/reject [post]
func (h *PaymentEvidenceHandler) RejectEvidence(c *gin.Context) {
	var payload request.RejectEvidenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errReasonRequired)
		return
	}

	evidence, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		writeError(c, mapPaymentEvidenceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentEvidence(evidence))
}

func mapPaymentEvidenceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInstallmentAlreadyPaid):
		return pkg.NewDomainError("INSTALLMENT_ALREADY_PAID", "The installment is already paid", err, http.StatusConflict)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Evidence or booking not found", err, http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
