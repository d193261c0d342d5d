package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mindebamsen/checkout-service/internal/entities"
	"github.com/mindebamsen/checkout-service/internal/handler"
	mocks "github.com/mindebamsen/checkout-service/internal/handler/mocks"
	"github.com/mindebamsen/checkout-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockCheckoutService, *mocks.MockReconciler) {
	checkout := mocks.NewMockCheckoutService(t)
	reconciler := mocks.NewMockReconciler(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := handler.NewHTTPHandler(logger, checkout, reconciler)
	r := chi.NewRouter()
	h.Init(r)

	return r, checkout, reconciler
}

func TestHTTPHandler_CreateCheckout(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(checkout *mocks.MockCheckoutService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"amount":14800,"currency":"DKK","items":[{"name":"Mindebamse","price":9900,"quantity":1}]}`,
			mockBehavior: func(checkout *mocks.MockCheckoutService) {
				checkout.EXPECT().
					CreateCheckout(mock.Anything, mock.Anything).
					Return(service.CheckoutResult{
						Order:   entities.Order{Reference: "order-1", Status: entities.StatusCreated},
						Session: []byte(`{"token":"sess"}`),
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"reference":"order-1"`,
		},
		{
			name:         "missing amount",
			body:         `{"currency":"DKK"}`,
			mockBehavior: func(checkout *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "malformed body",
			body:         `{not json`,
			mockBehavior: func(checkout *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "provider unavailable",
			body: `{"amount":14800,"currency":"DKK"}`,
			mockBehavior: func(checkout *mocks.MockCheckoutService) {
				checkout.EXPECT().
					CreateCheckout(mock.Anything, mock.Anything).
					Return(service.CheckoutResult{}, entities.ErrProviderUnavailable).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"payment provider unavailable"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, checkout, _ := newTestRouter(t)
			tc.mockBehavior(checkout)

			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_Callback(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		authHeader   string
		mockBehavior func(reconciler *mocks.MockReconciler)
	}{
		{
			name:       "verified callback is forwarded with the auth token",
			body:       `{"reference":"order-1","state":"AUTHORIZED"}`,
			authHeader: "cb-secret",
			mockBehavior: func(reconciler *mocks.MockReconciler) {
				reconciler.EXPECT().
					HandleCallback(mock.Anything, "order-1", "cb-secret", mock.Anything).
					Return(nil).Once()
			},
		},
		{
			name:       "orderId is accepted as reference",
			body:       `{"orderId":"order-2"}`,
			authHeader: "cb-secret",
			mockBehavior: func(reconciler *mocks.MockReconciler) {
				reconciler.EXPECT().
					HandleCallback(mock.Anything, "order-2", "cb-secret", mock.Anything).
					Return(nil).Once()
			},
		},
		{
			name:         "unparseable payload is acknowledged without processing",
			body:         `not json`,
			mockBehavior: func(reconciler *mocks.MockReconciler) {},
		},
		{
			name:         "missing reference is acknowledged without processing",
			body:         `{"state":"AUTHORIZED"}`,
			mockBehavior: func(reconciler *mocks.MockReconciler) {},
		},
		{
			name:       "processing error is swallowed",
			body:       `{"reference":"order-3"}`,
			authHeader: "cb-secret",
			mockBehavior: func(reconciler *mocks.MockReconciler) {
				reconciler.EXPECT().
					HandleCallback(mock.Anything, "order-3", "cb-secret", mock.Anything).
					Return(errors.New("db down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, reconciler := newTestRouter(t)
			tc.mockBehavior(reconciler)

			req := httptest.NewRequest(http.MethodPost, "/checkout/callback", strings.NewReader(tc.body))
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			// The provider is always acknowledged, whatever happened.
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"status":"OK"`)
		})
	}
}

func TestHTTPHandler_Complete(t *testing.T) {
	t.Run("reconciles on return visit", func(t *testing.T) {
		r, _, reconciler := newTestRouter(t)

		reconciler.EXPECT().
			Reconcile(mock.Anything, "order-1", service.TriggerReturnVisit).
			Return(service.ReconcileResult{
				Order:      entities.Order{Reference: "order-1", Status: entities.StatusCompleted},
				OrderFound: true,
				Payment:    entities.PaymentState{State: entities.ProviderStateCaptured},
				Captured:   true,
			}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/checkout/complete?reference=order-1", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"COMPLETED"`)
		assert.Contains(t, rr.Body.String(), `"captured":true`)
	})

	t.Run("falls back to ledger when provider is down", func(t *testing.T) {
		r, checkout, reconciler := newTestRouter(t)

		reconciler.EXPECT().
			Reconcile(mock.Anything, "order-1", service.TriggerReturnVisit).
			Return(service.ReconcileResult{}, entities.ErrProviderUnavailable).Once()
		checkout.EXPECT().
			GetOrder(mock.Anything, "order-1").
			Return(entities.Order{Reference: "order-1", Status: entities.StatusProcessing}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/checkout/complete?reference=order-1", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"PROCESSING"`)
		assert.Contains(t, rr.Body.String(), `"stale":true`)
	})

	t.Run("unknown order", func(t *testing.T) {
		r, _, reconciler := newTestRouter(t)

		reconciler.EXPECT().
			Reconcile(mock.Anything, "ghost", service.TriggerReturnVisit).
			Return(service.ReconcileResult{OrderFound: false}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/checkout/complete?reference=ghost", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing reference", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/checkout/complete", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHTTPHandler_Status(t *testing.T) {
	t.Run("polls and reconciles", func(t *testing.T) {
		r, _, reconciler := newTestRouter(t)

		reconciler.EXPECT().
			Reconcile(mock.Anything, "order-1", service.TriggerPoll).
			Return(service.ReconcileResult{
				Order:      entities.Order{Reference: "order-1", Status: entities.StatusPaymentConfirmed},
				OrderFound: true,
				Payment:    entities.PaymentState{State: entities.ProviderStateAuthorized},
			}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/payment/status/order-1", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"providerState":"AUTHORIZED"`)
	})

	t.Run("provider down is a bad gateway", func(t *testing.T) {
		r, _, reconciler := newTestRouter(t)

		reconciler.EXPECT().
			Reconcile(mock.Anything, "order-1", service.TriggerPoll).
			Return(service.ReconcileResult{}, entities.ErrProviderUnavailable).Once()

		req := httptest.NewRequest(http.MethodGet, "/payment/status/order-1", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestHTTPHandler_Events(t *testing.T) {
	t.Run("returns the event history", func(t *testing.T) {
		r, checkout, _ := newTestRouter(t)

		checkout.EXPECT().
			ListEvents(mock.Anything, "order-1").
			Return([]entities.PaymentEvent{
				{OrderRef: "order-1", EventType: entities.EventSessionCreated, Status: "CREATED"},
				{OrderRef: "order-1", EventType: entities.EventCaptureSucceeded, Status: "COMPLETED"},
			}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/payment/order-1/events", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"eventType":"session-created"`)
		assert.Contains(t, rr.Body.String(), `"eventType":"capture-succeeded"`)
	})

	t.Run("unknown order", func(t *testing.T) {
		r, checkout, _ := newTestRouter(t)

		checkout.EXPECT().
			ListEvents(mock.Anything, "ghost").
			Return(nil, entities.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/payment/ghost/events", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHTTPHandler_PaymentActions(t *testing.T) {
	t.Run("capture with empty body uses defaults", func(t *testing.T) {
		r, checkout, _ := newTestRouter(t)

		checkout.EXPECT().
			Capture(mock.Anything, "order-1", (*int64)(nil), "").
			Return([]byte(`{"state":"CAPTURED"}`), nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/payment/order-1/capture", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "CAPTURED")
	})

	t.Run("refund before completion is rejected", func(t *testing.T) {
		r, checkout, _ := newTestRouter(t)

		checkout.EXPECT().
			Refund(mock.Anything, "order-1", (*int64)(nil), "").
			Return(nil, entities.ErrRefundNotAllowed).Once()

		req := httptest.NewRequest(http.MethodPost, "/payment/order-1/refund", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("cancel unknown order", func(t *testing.T) {
		r, checkout, _ := newTestRouter(t)

		checkout.EXPECT().
			Cancel(mock.Anything, "ghost").
			Return(nil, entities.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/payment/ghost/cancel", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHTTPHandler_Health(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
