package handler

import (
	"encoding/json"
	"time"

	"github.com/mindebamsen/checkout-service/internal/entities"
	"github.com/mindebamsen/checkout-service/internal/service"
)

// CheckoutRequest is a cart submission from the storefront. Amounts are in
// minor currency units.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"required,len=3"`
	Reference   string `json:"reference" validate:"omitempty,max=40"`
	Description string `json:"description"`

	ShippingMethod string `json:"shippingMethod" validate:"omitempty,oneof=home pickup"`
	ShippingCost   *int64 `json:"shippingCost" validate:"omitempty,gte=0"`
	PickupPointID  string `json:"pickupPointId"`
	PaymentMethod  string `json:"paymentMethod"`
	Comments       string `json:"comments"`

	Customer *Customer   `json:"customer" validate:"omitempty"`
	Items    []OrderItem `json:"items" validate:"dive"`
}

type Customer struct {
	Email            string `json:"email" validate:"omitempty,email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	PostalCode       string `json:"postalCode"`
	City             string `json:"city"`
	MarketingConsent bool   `json:"marketingConsent"`
}

type OrderItem struct {
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`

	FabricType      string `json:"fabricType"`
	BodyFabric      string `json:"bodyFabric"`
	HeadFabric      string `json:"headFabric"`
	UnderArmsFabric string `json:"underArmsFabric"`
	BellyFabric     string `json:"bellyFabric"`
	HasVest         bool   `json:"hasVest"`
	VestFabric      string `json:"vestFabric"`
	FaceStyle       string `json:"faceStyle"`
}

// swagger:model CheckoutResponse
type CheckoutResponse struct {
	Reference string          `json:"reference"`
	Status    string          `json:"status"`
	Session   json.RawMessage `json:"session"`
}

// swagger:model OrderResponse
type OrderResponse struct {
	Reference      string      `json:"reference"`
	Amount         int64       `json:"amount"`
	Currency       string      `json:"currency"`
	Status         string      `json:"status"`
	ShippingMethod string      `json:"shippingMethod"`
	ShippingCost   int64       `json:"shippingCost"`
	PickupPointID  string      `json:"pickupPointId,omitempty"`
	PaymentMethod  string      `json:"paymentMethod"`
	Comments       string      `json:"comments,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	CompletedAt    *time.Time  `json:"completedAt,omitempty"`
	Items          []OrderItem `json:"items,omitempty"`
}

// StatusResponse is the reconciled view of an order. Stale is set when the
// provider could not be reached and Status reflects the last known ledger
// state instead of a fresh one.
// swagger:model StatusResponse
type StatusResponse struct {
	Reference     string        `json:"reference"`
	Status        string        `json:"status"`
	ProviderState string        `json:"providerState,omitempty"`
	Captured      bool          `json:"captured"`
	Stale         bool          `json:"stale,omitempty"`
	Order         OrderResponse `json:"order"`
}

// swagger:model PaymentEventResponse
type PaymentEventResponse struct {
	EventType     string          `json:"eventType"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transactionId,omitempty"`
	Amount        *int64          `json:"amount,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// swagger:model EventsResponse
type EventsResponse struct {
	Reference string                 `json:"reference"`
	Events    []PaymentEventResponse `json:"events"`
}

// swagger:model PaymentActionRequest
type PaymentActionRequest struct {
	Amount      *int64 `json:"amount" validate:"omitempty,gt=0"`
	Description string `json:"description"`
}

// callbackBody carries the order reference fields the provider includes in
// webhook payloads; everything else is passed through untouched.
type callbackBody struct {
	Reference string `json:"reference"`
	OrderID   string `json:"orderId"`
}

func CheckoutInputFromRequest(req CheckoutRequest) service.CheckoutInput {
	in := service.CheckoutInput{
		Amount:         req.Amount,
		Currency:       req.Currency,
		Reference:      req.Reference,
		Description:    req.Description,
		ShippingMethod: req.ShippingMethod,
		ShippingCost:   req.ShippingCost,
		PickupPointID:  req.PickupPointID,
		PaymentMethod:  req.PaymentMethod,
		Comments:       req.Comments,
	}

	if req.Customer != nil {
		in.Customer = &entities.Customer{
			Email:            req.Customer.Email,
			FirstName:        req.Customer.FirstName,
			LastName:         req.Customer.LastName,
			Phone:            req.Customer.Phone,
			Address:          req.Customer.Address,
			PostalCode:       req.Customer.PostalCode,
			City:             req.Customer.City,
			MarketingConsent: req.Customer.MarketingConsent,
		}
	}

	for _, it := range req.Items {
		in.Items = append(in.Items, entities.OrderItem{
			Name:            it.Name,
			Price:           it.Price,
			Quantity:        it.Quantity,
			FabricType:      it.FabricType,
			BodyFabric:      it.BodyFabric,
			HeadFabric:      it.HeadFabric,
			UnderArmsFabric: it.UnderArmsFabric,
			BellyFabric:     it.BellyFabric,
			HasVest:         it.HasVest,
			VestFabric:      it.VestFabric,
			FaceStyle:       it.FaceStyle,
		})
	}

	return in
}

func OrderEntityToJSON(o entities.Order) OrderResponse {
	res := OrderResponse{
		Reference:      o.Reference,
		Amount:         o.Amount,
		Currency:       o.Currency,
		Status:         string(o.Status),
		ShippingMethod: o.ShippingMethod,
		ShippingCost:   o.ShippingCost,
		PickupPointID:  o.PickupPointID,
		PaymentMethod:  o.PaymentMethod,
		Comments:       o.Comments,
		CreatedAt:      o.CreatedAt,
		CompletedAt:    o.CompletedAt,
	}

	for _, it := range o.Items {
		res.Items = append(res.Items, OrderItem{
			Name:            it.Name,
			Price:           it.Price,
			Quantity:        it.Quantity,
			FabricType:      it.FabricType,
			BodyFabric:      it.BodyFabric,
			HeadFabric:      it.HeadFabric,
			UnderArmsFabric: it.UnderArmsFabric,
			BellyFabric:     it.BellyFabric,
			HasVest:         it.HasVest,
			VestFabric:      it.VestFabric,
			FaceStyle:       it.FaceStyle,
		})
	}

	return res
}

func eventsResponseFromEntities(reference string, events []entities.PaymentEvent) EventsResponse {
	res := EventsResponse{Reference: reference, Events: []PaymentEventResponse{}}
	for _, e := range events {
		res.Events = append(res.Events, PaymentEventResponse{
			EventType:     string(e.EventType),
			Status:        e.Status,
			TransactionID: e.TransactionID,
			Amount:        e.Amount,
			Payload:       e.Payload,
			CreatedAt:     e.CreatedAt,
		})
	}
	return res
}

func statusResponseFromResult(result service.ReconcileResult) StatusResponse {
	return StatusResponse{
		Reference:     result.Order.Reference,
		Status:        string(result.Order.Status),
		ProviderState: string(result.Payment.State),
		Captured:      result.Captured,
		Order:         OrderEntityToJSON(result.Order),
	}
}
