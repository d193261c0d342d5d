package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mindebamsen/checkout-service/internal/entities"
	"github.com/mindebamsen/checkout-service/internal/vipps"
)

// Trigger identifies which entry point asked for reconciliation.
type Trigger string

const (
	TriggerReturnVisit Trigger = "return_visit"
	TriggerWebhook     Trigger = "webhook"
	TriggerPoll        Trigger = "poll"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByReference(ctx context.Context, reference string) (entities.Order, error)
	TransitionStatus(ctx context.Context, reference string, from []entities.OrderStatus, to entities.OrderStatus) (bool, error)
	AppendEvent(ctx context.Context, e entities.PaymentEvent) error
	ListEvents(ctx context.Context, reference string) ([]entities.PaymentEvent, error)
	UpsertCustomer(ctx context.Context, c entities.Customer) (int64, error)
}

type Provider interface {
	OpenSession(ctx context.Context, req vipps.SessionRequest) (vipps.SessionResult, error)
	GetSession(ctx context.Context, reference string) (json.RawMessage, error)
	FetchState(ctx context.Context, reference string) (entities.PaymentState, error)
	Capture(ctx context.Context, reference string, amount int64, currency, description string) (json.RawMessage, error)
	Cancel(ctx context.Context, reference string) (json.RawMessage, error)
	Refund(ctx context.Context, reference string, amount int64, currency, description string) (json.RawMessage, error)
}

type EventPublisher interface {
	PublishStatusChange(ctx context.Context, change entities.StatusChange) error
}

// claimableStatuses are the states from which a reconciliation may claim the
// AUTHORIZED transition. The claim is a conditional update, so of two
// concurrent reconciliations only one wins it. PAYMENT_CONFIRMED is in the
// list: a failed auto-capture leaves the order there, and the next trigger
// that still sees AUTHORIZED must be able to retry the capture. The provider
// treats a capture of already-captured funds as a no-op.
var claimableStatuses = []entities.OrderStatus{
	entities.StatusCreated,
	entities.StatusProcessing,
	entities.StatusSessionCompleted,
	entities.StatusPaymentConfirmed,
}

// completableStatuses may move to COMPLETED when the provider reports
// CAPTURED, regardless of how the order got where it is.
var completableStatuses = []entities.OrderStatus{
	entities.StatusCreated,
	entities.StatusProcessing,
	entities.StatusSessionCompleted,
	entities.StatusSessionFailed,
	entities.StatusSessionCancelled,
	entities.StatusPaymentConfirmed,
	entities.StatusPaymentFailed,
}

var failableStatuses = []entities.OrderStatus{
	entities.StatusCreated,
	entities.StatusProcessing,
	entities.StatusSessionCompleted,
	entities.StatusSessionFailed,
	entities.StatusSessionCancelled,
	entities.StatusPaymentConfirmed,
}

// ReconcileResult reports what reconciliation found and did. OrderFound is
// false when the provider knows the reference but the ledger does not; the
// trigger is still acknowledged in that case.
type ReconcileResult struct {
	Order      entities.Order
	OrderFound bool
	Payment    entities.PaymentState
	Captured   bool
}

type reconcileService struct {
	logger    *slog.Logger
	repo      OrderRepo
	provider  Provider
	publisher EventPublisher
}

func NewReconcileService(logger *slog.Logger, repo OrderRepo, provider Provider, publisher EventPublisher) *reconcileService {
	return &reconcileService{
		logger:    logger.With(slog.String("service", "reconcile")),
		repo:      repo,
		provider:  provider,
		publisher: publisher,
	}
}

// Reconcile fetches the authoritative provider state for reference, advances
// the order through the status machine and appends one ledger event for the
// trigger plus one for the capture outcome when a capture was attempted.
// Trigger payloads are never trusted: the provider is always re-queried.
func (s *reconcileService) Reconcile(ctx context.Context, reference string, trigger Trigger) (ReconcileResult, error) {
	logger := s.logger.With(slog.String("reference", reference), slog.String("trigger", string(trigger)))

	state, err := s.provider.FetchState(ctx, reference)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("failed to fetch payment state: %w", err)
	}

	order, err := s.repo.GetOrderByReference(ctx, reference)
	if errors.Is(err, entities.ErrOrderNotFound) {
		// Unknown locally: acknowledge so the provider stops retrying,
		// but mutate nothing.
		logger.WarnContext(ctx, "payment state received for unknown order")
		return ReconcileResult{OrderFound: false, Payment: state}, nil
	}
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("failed to load order: %w", err)
	}

	result := ReconcileResult{Order: order, OrderFound: true, Payment: state}
	previous := order.Status
	target := targetStatus(state.State)

	if err := s.appendTriggerEvent(ctx, reference, trigger, state); err != nil {
		return ReconcileResult{}, err
	}

	changed := false
	switch target {
	case entities.StatusPaymentConfirmed:
		changed, err = s.confirmAndCapture(ctx, logger, &result, state)
	case entities.StatusCompleted:
		changed, err = s.repo.TransitionStatus(ctx, reference, completableStatuses, entities.StatusCompleted)
		if changed {
			s.markCompleted(&result.Order)
		}
	case entities.StatusPaymentFailed:
		changed, err = s.repo.TransitionStatus(ctx, reference, failableStatuses, entities.StatusPaymentFailed)
		if changed {
			result.Order.Status = entities.StatusPaymentFailed
		}
	default:
		changed, err = s.repo.TransitionStatus(ctx, reference, []entities.OrderStatus{entities.StatusCreated}, entities.StatusProcessing)
		if changed {
			result.Order.Status = entities.StatusProcessing
		}
	}
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("failed to apply provider state: %w", err)
	}

	if changed {
		s.publish(ctx, logger, entities.StatusChange{
			Reference: reference,
			From:      previous,
			To:        result.Order.Status,
			Amount:    order.Amount,
			Currency:  order.Currency,
			Trigger:   string(trigger),
			At:        time.Now(),
		})
	}

	logger.InfoContext(ctx, "order reconciled",
		slog.String("provider_state", string(state.State)),
		slog.String("status", string(result.Order.Status)),
		slog.Bool("captured", result.Captured),
	)
	return result, nil
}

// HandleCallback verifies a webhook against the order's callback token and
// reconciles on success. It never mutates state for unverified or unknown
// references; callers always acknowledge the webhook regardless of the
// returned error.
func (s *reconcileService) HandleCallback(ctx context.Context, reference, authToken string, payload json.RawMessage) error {
	logger := s.logger.With(slog.String("reference", reference))

	order, err := s.repo.GetOrderByReference(ctx, reference)
	if errors.Is(err, entities.ErrOrderNotFound) {
		logger.WarnContext(ctx, "callback for unknown order")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}

	if order.CallbackToken == "" || authToken != order.CallbackToken {
		logger.WarnContext(ctx, "callback failed verification")
		event := entities.PaymentEvent{
			OrderRef:  reference,
			EventType: entities.EventCallbackRejected,
			Status:    string(order.Status),
			Payload:   payload,
		}
		if err := s.repo.AppendEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to record rejected callback: %w", err)
		}
		return nil
	}

	if _, err := s.Reconcile(ctx, reference, TriggerWebhook); err != nil {
		return fmt.Errorf("failed to reconcile callback: %w", err)
	}
	return nil
}

// confirmAndCapture handles the AUTHORIZED provider state: claim the
// transition into PAYMENT_CONFIRMED and, when the claim wins, capture the
// authorized amount. Capture failure is recorded for manual follow-up and
// deliberately does not propagate; the order stays PAYMENT_CONFIRMED.
func (s *reconcileService) confirmAndCapture(ctx context.Context, logger *slog.Logger, result *ReconcileResult, state entities.PaymentState) (bool, error) {
	reference := result.Order.Reference

	claimed, err := s.repo.TransitionStatus(ctx, reference, claimableStatuses, entities.StatusPaymentConfirmed)
	if err != nil {
		return false, err
	}
	if !claimed {
		// Another trigger got here first (or the order already reached a
		// terminal state); it owns the capture.
		return false, nil
	}
	result.Order.Status = entities.StatusPaymentConfirmed

	amount := result.Order.Amount
	if state.AuthorizedAmount != nil {
		amount = *state.AuthorizedAmount
	}

	payload, err := s.provider.Capture(ctx, reference, amount, result.Order.Currency, "Auto-captured payment for order "+reference)
	if err != nil {
		logger.ErrorContext(ctx, "auto-capture failed", slog.Any("error", err))
		event := entities.PaymentEvent{
			OrderRef:      reference,
			EventType:     entities.EventCaptureFailed,
			Status:        string(entities.StatusPaymentConfirmed),
			TransactionID: reference,
			Amount:        &amount,
			Payload:       errorPayload(err),
		}
		if appendErr := s.repo.AppendEvent(ctx, event); appendErr != nil {
			return true, appendErr
		}
		return true, nil
	}

	if _, err := s.repo.TransitionStatus(ctx, reference, []entities.OrderStatus{entities.StatusPaymentConfirmed}, entities.StatusCompleted); err != nil {
		return true, err
	}
	s.markCompleted(&result.Order)
	result.Captured = true

	event := entities.PaymentEvent{
		OrderRef:      reference,
		EventType:     entities.EventCaptureSucceeded,
		Status:        string(entities.StatusCompleted),
		TransactionID: reference,
		Amount:        &amount,
		Payload:       payload,
	}
	if err := s.repo.AppendEvent(ctx, event); err != nil {
		return true, err
	}
	return true, nil
}

func (s *reconcileService) appendTriggerEvent(ctx context.Context, reference string, trigger Trigger, state entities.PaymentState) error {
	eventType := entities.EventStatusChecked
	if trigger == TriggerWebhook {
		eventType = entities.EventCallbackReceived
	}

	event := entities.PaymentEvent{
		OrderRef:      reference,
		EventType:     eventType,
		Status:        string(state.State),
		TransactionID: reference,
		Amount:        state.AuthorizedAmount,
		Payload:       state.Raw,
	}
	if err := s.repo.AppendEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to append trigger event: %w", err)
	}
	return nil
}

func (s *reconcileService) markCompleted(order *entities.Order) {
	order.Status = entities.StatusCompleted
	if order.CompletedAt == nil {
		now := time.Now()
		order.CompletedAt = &now
	}
}

func (s *reconcileService) publish(ctx context.Context, logger *slog.Logger, change entities.StatusChange) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishStatusChange(ctx, change); err != nil {
		logger.ErrorContext(ctx, "failed to publish status change", slog.Any("error", err))
	}
}

func targetStatus(state entities.ProviderState) entities.OrderStatus {
	switch state {
	case entities.ProviderStateAuthorized:
		return entities.StatusPaymentConfirmed
	case entities.ProviderStateCaptured:
		return entities.StatusCompleted
	case entities.ProviderStateFailed, entities.ProviderStateCancelled, entities.ProviderStateTerminated:
		return entities.StatusPaymentFailed
	default:
		return entities.StatusProcessing
	}
}

func errorPayload(err error) json.RawMessage {
	payload, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
	if marshalErr != nil {
		return nil
	}
	return payload
}
