package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tour_billing/internal/adapter/http/handlers/mocks"
	"tour_billing/internal/adapter/http/middleware"
	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase"
	"tour_billing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const guestBody = `{"paymentDocId":"rec-1","parentBookingId":"doc-main","guestEmail":"Ana@Example.com","guestData":{"firstName":"Ana","lastName":"Reyes"}}`

func newGuestRouter(t *testing.T) (*gin.Engine, *mocks.MockIGuestBookingUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIGuestBookingUseCase(ctrl)
	h := NewGuestBookingHandler(uc)

	r := gin.New()
	r.Use(middleware.Correlation())
	r.POST("/v1/guest-booking", h.CreateGuestBooking)
	return r, uc
}

func postGuest(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/guest-booking", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderCorrelationID, "cid-guest")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuestBookingHandler_CreateGuestBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		r, uc := newGuestRouter(t)
		uc.EXPECT().OnboardGuest(gomock.Any(), usecase.GuestOnboardingInput{
			PaymentDocID:    "rec-1",
			ParentBookingID: "doc-main",
			GuestEmail:      "Ana@Example.com",
			FirstName:       "Ana",
			LastName:        "Reyes",
		}).Return(usecase.GuestOnboardingResult{BookingDocumentID: "doc-ana", BookingID: "2608-0002"}, nil)

		w := postGuest(r, guestBody)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["bookingDocumentId"] != "doc-ana" || body["bookingId"] != "2608-0002" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		r, _ := newGuestRouter(t)

		w := postGuest(r, `{"paymentDocId":"rec-1"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "invalid email", err: fmt.Errorf("%w: guest email is invalid", entities.ErrInvalidInput), status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "duplicate", err: fmt.Errorf("%w: ana@example.com", entities.ErrDuplicateBooking), status: http.StatusBadRequest, code: "DUPLICATE_BOOKING"},
		{name: "not invited", err: fmt.Errorf("%w: not invited", entities.ErrInvitationInvalid), status: http.StatusBadRequest, code: "INVITATION_INVALID"},
		{name: "record missing", err: fmt.Errorf("%w: payment record rec-1", entities.ErrNotFound), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "storage", err: fmt.Errorf("%w: GetItem: throttled", entities.ErrStorageUnavailable), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newGuestRouter(t)
			uc.EXPECT().OnboardGuest(gomock.Any(), gomock.Any()).Return(usecase.GuestOnboardingResult{}, tc.err)

			w := postGuest(r, guestBody)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			var body pkg.HTTPError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, body.Code)
			}
			wantCID := ""
			if tc.status >= http.StatusInternalServerError {
				wantCID = "cid-guest"
			}
			if body.CorrelationID != wantCID {
				t.Fatalf("expected correlation id %q, got %q", wantCID, body.CorrelationID)
			}
		})
	}
}
