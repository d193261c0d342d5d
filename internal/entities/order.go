package entities

import (
	"errors"
	"time"
)

// OrderStatus is the local lifecycle state of an order. Terminal states are
// COMPLETED (unless refunded), PAYMENT_FAILED, REFUNDED, SESSION_FAILED and
// SESSION_CANCELLED.
type OrderStatus string

const (
	StatusCreated          OrderStatus = "CREATED"
	StatusProcessing       OrderStatus = "PROCESSING"
	StatusSessionCompleted OrderStatus = "SESSION_COMPLETED"
	StatusSessionFailed    OrderStatus = "SESSION_FAILED"
	StatusSessionCancelled OrderStatus = "SESSION_CANCELLED"
	StatusPaymentConfirmed OrderStatus = "PAYMENT_CONFIRMED"
	StatusPaymentFailed    OrderStatus = "PAYMENT_FAILED"
	StatusCompleted        OrderStatus = "COMPLETED"
	StatusRefunded         OrderStatus = "REFUNDED"
)

type Order struct {
	Reference     string
	CustomerID    *int64
	CallbackToken string

	// Amount is in minor currency units (øre for DKK).
	Amount   int64
	Currency string
	Status   OrderStatus

	ShippingMethod string
	ShippingCost   int64
	PickupPointID  string
	PaymentMethod  string
	Comments       string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time

	Items []OrderItem
}

// OrderItem is immutable after order creation. The fabric and face fields
// are opaque product customizations carried through for fulfillment.
type OrderItem struct {
	Name     string
	Price    int64
	Quantity int

	FabricType      string
	BodyFabric      string
	HeadFabric      string
	UnderArmsFabric string
	BellyFabric     string
	HasVest         bool
	VestFabric      string
	FaceStyle       string
}

type Customer struct {
	ID               int64
	Email            string
	FirstName        string
	LastName         string
	Phone            string
	Address          string
	PostalCode       string
	City             string
	MarketingConsent bool
}

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrValidation          = errors.New("validation failed")
	ErrRefundNotAllowed    = errors.New("refund is only allowed for completed orders")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
