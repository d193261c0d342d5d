package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mindebamsen/checkout-service/internal/entities"
	"github.com/mindebamsen/checkout-service/internal/service"
	"github.com/mindebamsen/checkout-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
)

// maxCallbackBody bounds webhook payload reads.
const maxCallbackBody = 1 << 20

type CheckoutService interface {
	CreateCheckout(ctx context.Context, in service.CheckoutInput) (service.CheckoutResult, error)
	GetOrder(ctx context.Context, reference string) (entities.Order, error)
	GetSession(ctx context.Context, reference string) (json.RawMessage, error)
	ListEvents(ctx context.Context, reference string) ([]entities.PaymentEvent, error)
	Capture(ctx context.Context, reference string, amount *int64, description string) (json.RawMessage, error)
	Cancel(ctx context.Context, reference string) (json.RawMessage, error)
	Refund(ctx context.Context, reference string, amount *int64, description string) (json.RawMessage, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, reference string, trigger service.Trigger) (service.ReconcileResult, error)
	HandleCallback(ctx context.Context, reference, authToken string, payload json.RawMessage) error
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	checkout  CheckoutService
	reconcile Reconciler
}

func NewHTTPHandler(logger *slog.Logger, checkout CheckoutService, reconcile Reconciler) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		checkout:  checkout,
		reconcile: reconcile,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/checkout", func(r chi.Router) {
		r.Post("/", h.CreateCheckout)
		r.Get("/session/{reference}", h.GetSession)
		r.Post("/callback", h.Callback)
		r.Get("/complete", h.Complete)
	})

	r.Route("/payment", func(r chi.Router) {
		r.Get("/status/{reference}", h.Status)
		r.Get("/{reference}/events", h.Events)
		r.Post("/{reference}/capture", h.Capture)
		r.Post("/{reference}/cancel", h.Cancel)
		r.Post("/{reference}/refund", h.Refund)
	})

	r.Get("/health", h.Health)
}

// CreateCheckout opens a payment session for a cart.
// @Summary      Create a checkout session
// @Description  Records the order and opens a hosted payment session with the provider
// @Tags         checkout
// @Accept       json
// @Param        request  body  CheckoutRequest  true  "Cart contents"
// @Success      201  {object}  CheckoutResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      502  {object}  utils.ErrorResponse "Payment provider unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /checkout [post]
func (h *HTTPHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.checkout.CreateCheckout(ctx, CheckoutInputFromRequest(req))
	if err != nil {
		checkoutsFailed.Inc()
		h.writeDomainError(ctx, w, "failed to create checkout", err)
		return
	}

	checkoutsCreated.Inc()
	utils.WriteJSON(w, CheckoutResponse{
		Reference: result.Order.Reference,
		Status:    string(result.Order.Status),
		Session:   result.Session,
	}, http.StatusCreated)
}

// GetSession returns the provider's session snapshot.
// @Summary      Get checkout session state
// @Tags         checkout
// @Param        reference  path  string  true  "Order reference"
// @Success      200  {object}  object
// @Failure      502  {object}  utils.ErrorResponse "Payment provider unavailable"
// @Router       /checkout/session/{reference} [get]
func (h *HTTPHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := chi.URLParam(r, "reference")

	if err := h.validate.Var(reference, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	payload, err := h.checkout.GetSession(ctx, reference)
	if err != nil {
		h.writeDomainError(ctx, w, "failed to get session", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// Callback handles provider webhooks. The payload is never trusted: a
// verified callback triggers a reconciliation that re-fetches provider
// state. The response is always 200 so the provider stops retrying;
// rejected callbacks are recorded in the event log instead.
// @Summary      Payment provider webhook
// @Tags         checkout
// @Accept       json
// @Success      200  {object}  object
// @Router       /checkout/callback [post]
func (h *HTTPHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callbacksReceived.Inc()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxCallbackBody))
	if err != nil {
		callbacksRejected.Inc()
		h.ackCallback(w)
		return
	}

	var cb callbackBody
	if err := json.Unmarshal(body, &cb); err != nil {
		callbacksRejected.Inc()
		h.logger.WarnContext(ctx, "unparseable callback payload", slog.Any("error", err))
		h.ackCallback(w)
		return
	}

	reference := cb.Reference
	if reference == "" {
		reference = cb.OrderID
	}
	if reference == "" {
		callbacksRejected.Inc()
		h.logger.WarnContext(ctx, "callback without order reference")
		h.ackCallback(w)
		return
	}

	token := r.Header.Get("Authorization")
	if err := h.reconcile.HandleCallback(ctx, reference, token, body); err != nil {
		h.logger.ErrorContext(ctx, "failed to handle callback",
			slog.Any("error", err), slog.String("reference", reference))
	}

	h.ackCallback(w)
}

// Complete serves the customer's return from the hosted payment page. It
// reconciles against the provider first; when the provider is unreachable
// it degrades to the last known ledger state instead of failing the page.
// @Summary      Return-visit reconciliation
// @Tags         checkout
// @Param        reference  query  string  true  "Order reference"
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /checkout/complete [get]
func (h *HTTPHandler) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := r.URL.Query().Get("reference")

	if err := h.validate.Var(reference, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	result, err := h.reconcile.Reconcile(ctx, reference, service.TriggerReturnVisit)
	reconcileDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		reconciliationsTotal.WithLabelValues(string(service.TriggerReturnVisit), "error").Inc()
		h.logger.WarnContext(ctx, "return-visit reconcile failed, falling back to ledger",
			slog.Any("error", err), slog.String("reference", reference))

		order, repoErr := h.checkout.GetOrder(ctx, reference)
		if errors.Is(repoErr, entities.ErrOrderNotFound) {
			utils.WriteError(w, "order not found", http.StatusNotFound)
			return
		}
		if repoErr != nil {
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, StatusResponse{
			Reference: order.Reference,
			Status:    string(order.Status),
			Stale:     true,
			Order:     OrderEntityToJSON(order),
		}, http.StatusOK)
		return
	}

	if !result.OrderFound {
		reconciliationsTotal.WithLabelValues(string(service.TriggerReturnVisit), "unknown_order").Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	reconciliationsTotal.WithLabelValues(string(service.TriggerReturnVisit), "ok").Inc()
	utils.WriteJSON(w, statusResponseFromResult(result), http.StatusOK)
}

// Status polls the provider and reconciles the order.
// @Summary      Get reconciled payment status
// @Tags         payment
// @Param        reference  path  string  true  "Order reference"
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      502  {object}  utils.ErrorResponse "Payment provider unavailable"
// @Router       /payment/status/{reference} [get]
func (h *HTTPHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := chi.URLParam(r, "reference")

	if err := h.validate.Var(reference, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	result, err := h.reconcile.Reconcile(ctx, reference, service.TriggerPoll)
	reconcileDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		reconciliationsTotal.WithLabelValues(string(service.TriggerPoll), "error").Inc()
		h.writeDomainError(ctx, w, "failed to reconcile payment status", err)
		return
	}

	if !result.OrderFound {
		reconciliationsTotal.WithLabelValues(string(service.TriggerPoll), "unknown_order").Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	reconciliationsTotal.WithLabelValues(string(service.TriggerPoll), "ok").Inc()
	utils.WriteJSON(w, statusResponseFromResult(result), http.StatusOK)
}

// Events returns the payment event history of an order.
// @Summary      List payment events
// @Tags         payment
// @Param        reference  path  string  true  "Order reference"
// @Success      200  {object}  EventsResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /payment/{reference}/events [get]
func (h *HTTPHandler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := chi.URLParam(r, "reference")

	if err := h.validate.Var(reference, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	events, err := h.checkout.ListEvents(ctx, reference)
	if err != nil {
		h.writeDomainError(ctx, w, "failed to list payment events", err)
		return
	}

	utils.WriteJSON(w, eventsResponseFromEntities(reference, events), http.StatusOK)
}

// Capture finalizes an authorized payment.
// @Summary      Capture an authorized payment
// @Tags         payment
// @Accept       json
// @Param        reference  path  string                true   "Order reference"
// @Param        request    body  PaymentActionRequest  false  "Optional amount and description"
// @Success      200  {object}  object
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      502  {object}  utils.ErrorResponse "Payment provider unavailable"
// @Router       /payment/{reference}/capture [post]
func (h *HTTPHandler) Capture(w http.ResponseWriter, r *http.Request) {
	h.paymentAction(w, r, "capture", capturesTotal, h.checkout.Capture)
}

// Refund returns captured funds for a completed order.
// @Summary      Refund a captured payment
// @Tags         payment
// @Accept       json
// @Param        reference  path  string                true   "Order reference"
// @Param        request    body  PaymentActionRequest  false  "Optional amount and description"
// @Success      200  {object}  object
// @Failure      400  {object}  utils.ErrorResponse "Refund not allowed"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /payment/{reference}/refund [post]
func (h *HTTPHandler) Refund(w http.ResponseWriter, r *http.Request) {
	h.paymentAction(w, r, "refund", refundsTotal, h.checkout.Refund)
}

// Cancel voids an authorization that was never captured.
// @Summary      Cancel an authorized payment
// @Tags         payment
// @Param        reference  path  string  true  "Order reference"
// @Success      200  {object}  object
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /payment/{reference}/cancel [post]
func (h *HTTPHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := chi.URLParam(r, "reference")

	if err := h.validate.Var(reference, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	payload, err := h.checkout.Cancel(ctx, reference)
	if err != nil {
		h.writeDomainError(ctx, w, "failed to cancel payment", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// Health reports liveness.
// @Summary      Health check
// @Tags         system
// @Success      200  {object}  object
// @Router       /health [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

type actionFunc func(ctx context.Context, reference string, amount *int64, description string) (json.RawMessage, error)

func (h *HTTPHandler) paymentAction(w http.ResponseWriter, r *http.Request, name string, counter *prometheus.CounterVec, action actionFunc) {
	ctx := r.Context()
	reference := chi.URLParam(r, "reference")

	if err := h.validate.Var(reference, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req PaymentActionRequest
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	payload, err := action(ctx, reference, req.Amount, req.Description)
	if err != nil {
		counter.WithLabelValues("error").Inc()
		h.writeDomainError(ctx, w, "failed to "+name+" payment", err)
		return
	}

	counter.WithLabelValues("ok").Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (h *HTTPHandler) ackCallback(w http.ResponseWriter) {
	utils.WriteJSON(w, map[string]string{"status": "OK"}, http.StatusOK)
}

func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, entities.ErrValidation):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrRefundNotAllowed):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProviderUnavailable):
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "payment provider unavailable", http.StatusBadGateway)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
