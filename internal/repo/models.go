package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/mindebamsen/checkout-service/internal/entities"
)

type Order struct {
	Reference      string         `db:"reference"`
	CustomerID     sql.NullInt64  `db:"customer_id"`
	CallbackToken  sql.NullString `db:"callback_token"`
	Amount         int64          `db:"amount"`
	Currency       string         `db:"currency"`
	Status         string         `db:"status"`
	ShippingMethod string         `db:"shipping_method"`
	ShippingCost   int64          `db:"shipping_cost"`
	PickupPointID  sql.NullString `db:"pickup_point_id"`
	PaymentMethod  string         `db:"payment_method"`
	Comments       sql.NullString `db:"comments"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	CompletedAt    sql.NullTime   `db:"completed_at"`
}

type OrderItem struct {
	OrderRef        string         `db:"order_ref"`
	Name            string         `db:"name"`
	Price           int64          `db:"price"`
	Quantity        int            `db:"quantity"`
	FabricType      sql.NullString `db:"fabric_type"`
	BodyFabric      sql.NullString `db:"body_fabric"`
	HeadFabric      sql.NullString `db:"head_fabric"`
	UnderArmsFabric sql.NullString `db:"under_arms_fabric"`
	BellyFabric     sql.NullString `db:"belly_fabric"`
	HasVest         bool           `db:"has_vest"`
	VestFabric      sql.NullString `db:"vest_fabric"`
	FaceStyle       sql.NullString `db:"face_style"`
}

type PaymentEvent struct {
	ID            int64          `db:"id"`
	OrderRef      string         `db:"order_ref"`
	EventType     string         `db:"event_type"`
	Status        string         `db:"status"`
	TransactionID sql.NullString `db:"transaction_id"`
	Amount        sql.NullInt64  `db:"amount"`
	Payload       []byte         `db:"payload"`
	CreatedAt     time.Time      `db:"created_at"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		Name:            i.Name,
		Price:           i.Price,
		Quantity:        i.Quantity,
		FabricType:      nullStringToString(i.FabricType),
		BodyFabric:      nullStringToString(i.BodyFabric),
		HeadFabric:      nullStringToString(i.HeadFabric),
		UnderArmsFabric: nullStringToString(i.UnderArmsFabric),
		BellyFabric:     nullStringToString(i.BellyFabric),
		HasVest:         i.HasVest,
		VestFabric:      nullStringToString(i.VestFabric),
		FaceStyle:       nullStringToString(i.FaceStyle),
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		Reference:      o.Reference,
		CallbackToken:  nullStringToString(o.CallbackToken),
		Amount:         o.Amount,
		Currency:       o.Currency,
		Status:         entities.OrderStatus(o.Status),
		ShippingMethod: o.ShippingMethod,
		ShippingCost:   o.ShippingCost,
		PickupPointID:  nullStringToString(o.PickupPointID),
		PaymentMethod:  o.PaymentMethod,
		Comments:       nullStringToString(o.Comments),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	if o.CustomerID.Valid {
		order.CustomerID = &o.CustomerID.Int64
	}
	if o.CompletedAt.Valid {
		t := o.CompletedAt.Time
		order.CompletedAt = &t
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func EventToEntity(e PaymentEvent) entities.PaymentEvent {
	event := entities.PaymentEvent{
		ID:            e.ID,
		OrderRef:      e.OrderRef,
		EventType:     entities.EventType(e.EventType),
		Status:        e.Status,
		TransactionID: nullStringToString(e.TransactionID),
		Payload:       json.RawMessage(e.Payload),
		CreatedAt:     e.CreatedAt,
	}
	if e.Amount.Valid {
		event.Amount = &e.Amount.Int64
	}
	return event
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
