package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mindebamsen/checkout-service/internal/config"
	"github.com/mindebamsen/checkout-service/internal/entities"
	"github.com/mindebamsen/checkout-service/internal/vipps"
	"github.com/mindebamsen/checkout-service/pkg/trm"
	"github.com/mindebamsen/checkout-service/pkg/utils"
)

const (
	defaultShippingMethod = "home"
	defaultPaymentMethod  = "mobilepay"

	homeShippingCost   = 4900
	pickupShippingCost = 3900
)

type SessionCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// CheckoutInput is a validated cart submission. Amount and item prices are
// in minor currency units.
type CheckoutInput struct {
	Amount      int64
	Currency    string
	Reference   string
	Description string
	ReturnURL   string

	ShippingMethod string
	ShippingCost   *int64
	PickupPointID  string
	PaymentMethod  string
	Comments       string

	Customer *entities.Customer
	Items    []entities.OrderItem
}

// CheckoutResult is the created order plus the provider session payload to
// hand to the frontend.
type CheckoutResult struct {
	Order   entities.Order
	Session json.RawMessage
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	provider  Provider
	publisher EventPublisher
	cache     SessionCache
	cfg       config.Vipps
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	provider Provider,
	publisher EventPublisher,
	cache SessionCache,
	cfg config.Vipps,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		repo:      repo,
		provider:  provider,
		publisher: publisher,
		cache:     cache,
		cfg:       cfg,
	}
}

var ledgerRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// CreateCheckout opens a provider session and records the order, its items
// and the session-created event as one atomic write. A failed provider
// session still records the order (status SESSION_FAILED) before the error
// is surfaced.
func (s *checkoutService) CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	if err := validateInput(in); err != nil {
		return CheckoutResult{}, err
	}

	reference := in.Reference
	if reference == "" {
		reference = newReference()
	}
	logger := s.logger.With(slog.String("reference", reference))

	order := entities.Order{
		Reference:      reference,
		Amount:         in.Amount,
		Currency:       in.Currency,
		Status:         entities.StatusCreated,
		ShippingMethod: in.ShippingMethod,
		ShippingCost:   resolveShippingCost(in),
		PickupPointID:  in.PickupPointID,
		PaymentMethod:  in.PaymentMethod,
		Comments:       in.Comments,
		Items:          in.Items,
	}
	if order.ShippingMethod == "" {
		order.ShippingMethod = defaultShippingMethod
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = defaultPaymentMethod
	}

	if in.Customer != nil && in.Customer.Email != "" {
		id, err := s.repo.UpsertCustomer(ctx, *in.Customer)
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("failed to upsert customer: %w", err)
		}
		order.CustomerID = &id
	}

	description := in.Description
	if description == "" {
		description = "Order " + reference
	}

	session, sessionErr := s.provider.OpenSession(ctx, vipps.SessionRequest{
		Amount:      in.Amount,
		Currency:    in.Currency,
		Reference:   reference,
		Description: description,
		CallbackURL: s.cfg.CallbackURL,
		ReturnURL:   returnURLWithReference(s.resolveReturnURL(in.ReturnURL), reference),
	})

	event := entities.PaymentEvent{
		OrderRef:      reference,
		EventType:     entities.EventSessionCreated,
		Status:        string(entities.StatusCreated),
		TransactionID: reference,
	}

	if sessionErr != nil {
		logger.ErrorContext(ctx, "failed to open provider session", slog.Any("error", sessionErr))
		order.Status = entities.StatusSessionFailed
		event.Status = string(entities.StatusSessionFailed)
		event.Payload = errorPayload(sessionErr)
	} else {
		order.CallbackToken = session.CallbackToken
		event.Payload = session.Payload
	}

	persist := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.CreateOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}
			if err := s.repo.AppendEvent(ctx, event); err != nil {
				return fmt.Errorf("failed to append session event: %w", err)
			}
			return nil
		})
	}
	if err := utils.Retry(ledgerRetry, persist); err != nil {
		return CheckoutResult{}, err
	}

	if sessionErr != nil {
		return CheckoutResult{Order: order}, fmt.Errorf("failed to open checkout session: %w", sessionErr)
	}

	logger.InfoContext(ctx, "checkout created", slog.Int64("amount", order.Amount), slog.String("currency", order.Currency))
	return CheckoutResult{Order: order, Session: session.Payload}, nil
}

// GetOrder returns the ledger's view of an order without touching the
// provider; used to render best-known state when the provider is down.
func (s *checkoutService) GetOrder(ctx context.Context, reference string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByReference(ctx, reference)
		return err
	}
	if err := utils.Retry(ledgerRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// GetSession returns the provider's checkout session snapshot, cached for a
// short TTL since the frontend polls it while the customer pays.
func (s *checkoutService) GetSession(ctx context.Context, reference string) (json.RawMessage, error) {
	key := "session:" + reference
	if data, ok := s.cache.Get(key); ok {
		return data, nil
	}

	payload, err := s.provider.GetSession(ctx, reference)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, payload)
	return payload, nil
}

// ListEvents returns the full payment event history of an order, oldest
// first.
func (s *checkoutService) ListEvents(ctx context.Context, reference string) ([]entities.PaymentEvent, error) {
	if _, err := s.repo.GetOrderByReference(ctx, reference); err != nil {
		return nil, err
	}
	return s.repo.ListEvents(ctx, reference)
}

// Capture finalizes an authorized payment on operator request. Amount
// defaults to the order amount.
func (s *checkoutService) Capture(ctx context.Context, reference string, amount *int64, description string) (json.RawMessage, error) {
	order, err := s.repo.GetOrderByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	amt := order.Amount
	if amount != nil {
		amt = *amount
	}
	if description == "" {
		description = "Captured payment for order " + reference
	}

	attemptPayload, _ := json.Marshal(map[string]string{"description": description})
	attempt := entities.PaymentEvent{
		OrderRef:      reference,
		EventType:     entities.EventCaptureAttempted,
		Status:        string(order.Status),
		TransactionID: reference,
		Amount:        &amt,
		Payload:       attemptPayload,
	}
	if err := s.repo.AppendEvent(ctx, attempt); err != nil {
		return nil, err
	}

	payload, err := s.provider.Capture(ctx, reference, amt, order.Currency, description)
	if err != nil {
		s.appendFailure(ctx, reference, entities.EventCaptureFailed, &amt, err)
		return nil, err
	}

	if _, err := s.repo.TransitionStatus(ctx, reference, completableStatuses, entities.StatusCompleted); err != nil {
		return nil, err
	}

	event := entities.PaymentEvent{
		OrderRef:      reference,
		EventType:     entities.EventCaptureSucceeded,
		Status:        string(entities.StatusCompleted),
		TransactionID: reference,
		Amount:        &amt,
		Payload:       payload,
	}
	if err := s.repo.AppendEvent(ctx, event); err != nil {
		return nil, err
	}

	s.publishChange(ctx, order, entities.StatusCompleted)
	return payload, nil
}

// Cancel voids an authorization; the order is marked PAYMENT_FAILED only
// when the provider accepted the cancellation.
func (s *checkoutService) Cancel(ctx context.Context, reference string) (json.RawMessage, error) {
	order, err := s.repo.GetOrderByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	payload, err := s.provider.Cancel(ctx, reference)
	if err != nil {
		s.appendFailure(ctx, reference, entities.EventCancelled, nil, err)
		return nil, err
	}

	if _, err := s.repo.TransitionStatus(ctx, reference, failableStatuses, entities.StatusPaymentFailed); err != nil {
		return nil, err
	}

	event := entities.PaymentEvent{
		OrderRef:      reference,
		EventType:     entities.EventCancelled,
		Status:        string(entities.StatusPaymentFailed),
		TransactionID: reference,
		Payload:       payload,
	}
	if err := s.repo.AppendEvent(ctx, event); err != nil {
		return nil, err
	}

	s.publishChange(ctx, order, entities.StatusPaymentFailed)
	return payload, nil
}

// Refund returns captured funds. Only COMPLETED orders may be refunded;
// anything else is a validation error and leaves the ledger untouched.
func (s *checkoutService) Refund(ctx context.Context, reference string, amount *int64, description string) (json.RawMessage, error) {
	order, err := s.repo.GetOrderByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if order.Status != entities.StatusCompleted {
		return nil, entities.ErrRefundNotAllowed
	}

	amt := order.Amount
	if amount != nil {
		amt = *amount
	}
	if description == "" {
		description = "Refunded payment for order " + reference
	}

	payload, err := s.provider.Refund(ctx, reference, amt, order.Currency, description)
	if err != nil {
		s.appendFailure(ctx, reference, entities.EventRefunded, &amt, err)
		return nil, err
	}

	if _, err := s.repo.TransitionStatus(ctx, reference, []entities.OrderStatus{entities.StatusCompleted}, entities.StatusRefunded); err != nil {
		return nil, err
	}

	event := entities.PaymentEvent{
		OrderRef:      reference,
		EventType:     entities.EventRefunded,
		Status:        string(entities.StatusRefunded),
		TransactionID: reference,
		Amount:        &amt,
		Payload:       payload,
	}
	if err := s.repo.AppendEvent(ctx, event); err != nil {
		return nil, err
	}

	s.publishChange(ctx, order, entities.StatusRefunded)
	return payload, nil
}

// appendFailure records a failed provider action. The failure event is best
// effort: the action error matters more than the audit write.
func (s *checkoutService) appendFailure(ctx context.Context, reference string, eventType entities.EventType, amount *int64, cause error) {
	event := entities.PaymentEvent{
		OrderRef:      reference,
		EventType:     eventType,
		Status:        "ERROR",
		TransactionID: reference,
		Amount:        amount,
		Payload:       errorPayload(cause),
	}
	if err := s.repo.AppendEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to append failure event",
			slog.String("reference", reference), slog.Any("error", err))
	}
}

func (s *checkoutService) publishChange(ctx context.Context, order entities.Order, to entities.OrderStatus) {
	if s.publisher == nil {
		return
	}
	change := entities.StatusChange{
		Reference: order.Reference,
		From:      order.Status,
		To:        to,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Trigger:   "action",
		At:        time.Now(),
	}
	if err := s.publisher.PublishStatusChange(ctx, change); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish status change",
			slog.String("reference", order.Reference), slog.Any("error", err))
	}
}

func validateInput(in CheckoutInput) error {
	if in.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", entities.ErrValidation)
	}
	if len(in.Currency) != 3 {
		return fmt.Errorf("%w: currency must be a 3-letter code", entities.ErrValidation)
	}
	return nil
}

func resolveShippingCost(in CheckoutInput) int64 {
	if in.ShippingCost != nil {
		return *in.ShippingCost
	}
	if in.ShippingMethod == "pickup" {
		return pickupShippingCost
	}
	return homeShippingCost
}

func (s *checkoutService) resolveReturnURL(override string) string {
	if override != "" {
		return override
	}
	return s.cfg.ReturnURL
}

// returnURLWithReference appends the order reference so the return-visit
// handler can reconcile without provider-supplied parameters.
func returnURLWithReference(url, reference string) string {
	if strings.Contains(url, "?") {
		return url + "&reference=" + reference
	}
	return url + "?reference=" + reference
}

func newReference() string {
	buf := make([]byte, 4)
	rand.Read(buf)
	return "order-" + hex.EncodeToString(buf)
}
