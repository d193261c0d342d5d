package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mindebamsen/checkout-service/internal/entities"
	"github.com/mindebamsen/checkout-service/internal/service"
	mocks "github.com/mindebamsen/checkout-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authorizedState(amount int64) entities.PaymentState {
	return entities.PaymentState{
		State:            entities.ProviderStateAuthorized,
		AuthorizedAmount: &amount,
		Raw:              []byte(`{"state":"AUTHORIZED"}`),
	}
}

func TestReconcileService_Reconcile_AuthorizedCaptures(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	provider := mocks.NewMockProvider(t)
	publisher := mocks.NewMockEventPublisher(t)

	order := entities.Order{
		Reference: "order-1",
		Amount:    10000,
		Currency:  "DKK",
		Status:    entities.StatusProcessing,
	}

	provider.EXPECT().FetchState(mock.Anything, "order-1").Return(authorizedState(10000), nil)
	repo.EXPECT().GetOrderByReference(mock.Anything, "order-1").Return(order, nil)

	var eventTypes []entities.EventType
	repo.EXPECT().AppendEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, e entities.PaymentEvent) {
			eventTypes = append(eventTypes, e.EventType)
		}).
		Return(nil)

	// Claim AUTHORIZED, then advance to COMPLETED after the capture.
	repo.EXPECT().TransitionStatus(mock.Anything, "order-1", mock.Anything, entities.StatusPaymentConfirmed).
		Return(true, nil)
	repo.EXPECT().TransitionStatus(mock.Anything, "order-1", mock.Anything, entities.StatusCompleted).
		Return(true, nil)

	provider.EXPECT().Capture(mock.Anything, "order-1", int64(10000), "DKK", mock.Anything).
		Return([]byte(`{"amount":10000}`), nil)

	publisher.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, change entities.StatusChange) {
			assert.Equal(t, entities.StatusProcessing, change.From)
			assert.Equal(t, entities.StatusCompleted, change.To)
		}).
		Return(nil)

	svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)

	result, err := svc.Reconcile(context.Background(), "order-1", service.TriggerWebhook)
	require.NoError(t, err)

	assert.True(t, result.OrderFound)
	assert.True(t, result.Captured)
	assert.Equal(t, entities.StatusCompleted, result.Order.Status)
	assert.NotNil(t, result.Order.CompletedAt)
	assert.Equal(t, []entities.EventType{entities.EventCallbackReceived, entities.EventCaptureSucceeded}, eventTypes)
}

func TestReconcileService_Reconcile_ClaimLostSkipsCapture(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	provider := mocks.NewMockProvider(t)
	publisher := mocks.NewMockEventPublisher(t)

	order := entities.Order{Reference: "order-2", Amount: 5000, Currency: "DKK", Status: entities.StatusProcessing}

	provider.EXPECT().FetchState(mock.Anything, "order-2").Return(authorizedState(5000), nil)
	repo.EXPECT().GetOrderByReference(mock.Anything, "order-2").Return(order, nil)
	repo.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil)

	// A concurrent reconciliation already claimed the transition.
	repo.EXPECT().TransitionStatus(mock.Anything, "order-2", mock.Anything, entities.StatusPaymentConfirmed).
		Return(false, nil)

	svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)

	result, err := svc.Reconcile(context.Background(), "order-2", service.TriggerPoll)
	require.NoError(t, err)

	assert.False(t, result.Captured)
	provider.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishStatusChange", mock.Anything, mock.Anything)
}

func TestReconcileService_Reconcile_UnknownOrderAcknowledged(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	provider := mocks.NewMockProvider(t)
	publisher := mocks.NewMockEventPublisher(t)

	provider.EXPECT().FetchState(mock.Anything, "ghost").Return(authorizedState(1000), nil)
	repo.EXPECT().GetOrderByReference(mock.Anything, "ghost").
		Return(entities.Order{}, entities.ErrOrderNotFound)

	svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)

	result, err := svc.Reconcile(context.Background(), "ghost", service.TriggerWebhook)
	require.NoError(t, err)

	assert.False(t, result.OrderFound)
	repo.AssertNotCalled(t, "AppendEvent", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	provider.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileService_Reconcile_CapturedBeforeAuthorized(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	provider := mocks.NewMockProvider(t)
	publisher := mocks.NewMockEventPublisher(t)

	order := entities.Order{Reference: "order-3", Amount: 2500, Currency: "DKK", Status: entities.StatusCreated}

	// CAPTURED arrives without AUTHORIZED ever being observed.
	provider.EXPECT().FetchState(mock.Anything, "order-3").Return(entities.PaymentState{
		State: entities.ProviderStateCaptured,
		Raw:   []byte(`{"state":"CAPTURED"}`),
	}, nil)
	repo.EXPECT().GetOrderByReference(mock.Anything, "order-3").Return(order, nil)
	repo.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().TransitionStatus(mock.Anything, "order-3", mock.Anything, entities.StatusCompleted).
		Return(true, nil)
	publisher.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(nil)

	svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)

	result, err := svc.Reconcile(context.Background(), "order-3", service.TriggerReturnVisit)
	require.NoError(t, err)

	assert.Equal(t, entities.StatusCompleted, result.Order.Status)
	assert.False(t, result.Captured)
	provider.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileService_Reconcile_AlreadyCompletedIsIdempotent(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	provider := mocks.NewMockProvider(t)
	publisher := mocks.NewMockEventPublisher(t)

	completedAt := time.Now().Add(-time.Hour)
	completed := entities.Order{
		Reference:   "order-4",
		Amount:      2500,
		Currency:    "DKK",
		Status:      entities.StatusCompleted,
		CompletedAt: &completedAt,
	}

	provider.EXPECT().FetchState(mock.Anything, "order-4").Return(entities.PaymentState{
		State: entities.ProviderStateCaptured,
	}, nil)
	repo.EXPECT().GetOrderByReference(mock.Anything, "order-4").Return(completed, nil)
	repo.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil)
	// Already COMPLETED: the conditional update matches no row.
	repo.EXPECT().TransitionStatus(mock.Anything, "order-4", mock.Anything, entities.StatusCompleted).
		Return(false, nil)

	svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)

	result, err := svc.Reconcile(context.Background(), "order-4", service.TriggerPoll)
	require.NoError(t, err)

	publisher.AssertNotCalled(t, "PublishStatusChange", mock.Anything, mock.Anything)

	// completed_at was stamped by the first reconciliation and stays put.
	require.NotNil(t, result.Order.CompletedAt)
	assert.Equal(t, completedAt, *result.Order.CompletedAt)
}

func TestReconcileService_Reconcile_CaptureRetriedFromPaymentConfirmed(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	provider := mocks.NewMockProvider(t)
	publisher := mocks.NewMockEventPublisher(t)

	// An earlier auto-capture failed, leaving the order at PAYMENT_CONFIRMED
	// with the provider still reporting AUTHORIZED.
	order := entities.Order{Reference: "order-11", Amount: 8000, Currency: "DKK", Status: entities.StatusPaymentConfirmed}

	provider.EXPECT().FetchState(mock.Anything, "order-11").Return(authorizedState(8000), nil)
	repo.EXPECT().GetOrderByReference(mock.Anything, "order-11").Return(order, nil)
	repo.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil)

	// Mirror the conditional update: a row is only claimed when the current
	// status is in the expected list.
	status := entities.StatusPaymentConfirmed
	repo.EXPECT().TransitionStatus(mock.Anything, "order-11", mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, reference string, from []entities.OrderStatus, to entities.OrderStatus) (bool, error) {
			for _, s := range from {
				if s == status {
					status = to
					return true, nil
				}
			}
			return false, nil
		})

	provider.EXPECT().Capture(mock.Anything, "order-11", int64(8000), "DKK", mock.Anything).
		Return([]byte(`{"amount":8000}`), nil)
	publisher.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(nil)

	svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)

	result, err := svc.Reconcile(context.Background(), "order-11", service.TriggerPoll)
	require.NoError(t, err)

	assert.True(t, result.Captured)
	assert.Equal(t, entities.StatusCompleted, result.Order.Status)
	assert.Equal(t, entities.StatusCompleted, status)
}

func TestReconcileService_Reconcile_CaptureFailureKeepsConfirmed(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	provider := mocks.NewMockProvider(t)
	publisher := mocks.NewMockEventPublisher(t)

	order := entities.Order{Reference: "order-5", Amount: 7000, Currency: "DKK", Status: entities.StatusProcessing}

	provider.EXPECT().FetchState(mock.Anything, "order-5").Return(authorizedState(7000), nil)
	repo.EXPECT().GetOrderByReference(mock.Anything, "order-5").Return(order, nil)

	var eventTypes []entities.EventType
	repo.EXPECT().AppendEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, e entities.PaymentEvent) {
			eventTypes = append(eventTypes, e.EventType)
		}).
		Return(nil)

	repo.EXPECT().TransitionStatus(mock.Anything, "order-5", mock.Anything, entities.StatusPaymentConfirmed).
		Return(true, nil)
	provider.EXPECT().Capture(mock.Anything, "order-5", int64(7000), "DKK", mock.Anything).
		Return(nil, errors.New("capture rejected"))
	publisher.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(nil)

	svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)

	result, err := svc.Reconcile(context.Background(), "order-5", service.TriggerWebhook)
	require.NoError(t, err)

	assert.Equal(t, entities.StatusPaymentConfirmed, result.Order.Status)
	assert.False(t, result.Captured)
	assert.Equal(t, []entities.EventType{entities.EventCallbackReceived, entities.EventCaptureFailed}, eventTypes)
	repo.AssertNotCalled(t, "TransitionStatus", mock.Anything, "order-5", mock.Anything, entities.StatusCompleted)
}

func TestReconcileService_Reconcile_FailedStateMarksPaymentFailed(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	provider := mocks.NewMockProvider(t)
	publisher := mocks.NewMockEventPublisher(t)

	order := entities.Order{Reference: "order-6", Amount: 3000, Currency: "DKK", Status: entities.StatusProcessing}

	provider.EXPECT().FetchState(mock.Anything, "order-6").Return(entities.PaymentState{
		State: entities.ProviderStateCancelled,
	}, nil)
	repo.EXPECT().GetOrderByReference(mock.Anything, "order-6").Return(order, nil)
	repo.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().TransitionStatus(mock.Anything, "order-6", mock.Anything, entities.StatusPaymentFailed).
		Return(true, nil)
	publisher.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(nil)

	svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)

	result, err := svc.Reconcile(context.Background(), "order-6", service.TriggerPoll)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPaymentFailed, result.Order.Status)
}

func TestReconcileService_Reconcile_ProviderDown(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	provider := mocks.NewMockProvider(t)
	publisher := mocks.NewMockEventPublisher(t)

	provider.EXPECT().FetchState(mock.Anything, "order-7").
		Return(entities.PaymentState{}, entities.ErrProviderUnavailable)

	svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)

	_, err := svc.Reconcile(context.Background(), "order-7", service.TriggerReturnVisit)
	assert.ErrorIs(t, err, entities.ErrProviderUnavailable)
	repo.AssertNotCalled(t, "GetOrderByReference", mock.Anything, mock.Anything)
}

func TestReconcileService_HandleCallback(t *testing.T) {
	payload := []byte(`{"state":"AUTHORIZED"}`)

	t.Run("verified token reconciles", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		provider := mocks.NewMockProvider(t)
		publisher := mocks.NewMockEventPublisher(t)

		order := entities.Order{
			Reference:     "order-8",
			CallbackToken: "secret",
			Amount:        1500,
			Currency:      "DKK",
			Status:        entities.StatusProcessing,
		}

		repo.EXPECT().GetOrderByReference(mock.Anything, "order-8").Return(order, nil)
		provider.EXPECT().FetchState(mock.Anything, "order-8").Return(authorizedState(1500), nil)
		repo.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil)
		repo.EXPECT().TransitionStatus(mock.Anything, "order-8", mock.Anything, entities.StatusPaymentConfirmed).
			Return(true, nil)
		repo.EXPECT().TransitionStatus(mock.Anything, "order-8", mock.Anything, entities.StatusCompleted).
			Return(true, nil)
		provider.EXPECT().Capture(mock.Anything, "order-8", int64(1500), "DKK", mock.Anything).
			Return([]byte(`{}`), nil)
		publisher.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(nil)

		svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)
		err := svc.HandleCallback(context.Background(), "order-8", "secret", payload)
		require.NoError(t, err)
	})

	t.Run("wrong token is recorded and ignored", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		provider := mocks.NewMockProvider(t)
		publisher := mocks.NewMockEventPublisher(t)

		order := entities.Order{Reference: "order-9", CallbackToken: "secret", Status: entities.StatusProcessing}

		repo.EXPECT().GetOrderByReference(mock.Anything, "order-9").Return(order, nil)
		repo.EXPECT().AppendEvent(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, e entities.PaymentEvent) {
				assert.Equal(t, entities.EventCallbackRejected, e.EventType)
			}).
			Return(nil)

		svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)
		err := svc.HandleCallback(context.Background(), "order-9", "forged", payload)
		require.NoError(t, err)

		provider.AssertNotCalled(t, "FetchState", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty stored token never verifies", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		provider := mocks.NewMockProvider(t)
		publisher := mocks.NewMockEventPublisher(t)

		order := entities.Order{Reference: "order-10", Status: entities.StatusSessionFailed}

		repo.EXPECT().GetOrderByReference(mock.Anything, "order-10").Return(order, nil)
		repo.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil)

		svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)
		err := svc.HandleCallback(context.Background(), "order-10", "", payload)
		require.NoError(t, err)

		provider.AssertNotCalled(t, "FetchState", mock.Anything, mock.Anything)
	})

	t.Run("unknown order is ignored", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		provider := mocks.NewMockProvider(t)
		publisher := mocks.NewMockEventPublisher(t)

		repo.EXPECT().GetOrderByReference(mock.Anything, "ghost").
			Return(entities.Order{}, entities.ErrOrderNotFound)

		svc := service.NewReconcileService(discardLogger(), repo, provider, publisher)
		err := svc.HandleCallback(context.Background(), "ghost", "anything", payload)
		require.NoError(t, err)

		repo.AssertNotCalled(t, "AppendEvent", mock.Anything, mock.Anything)
	})
}
