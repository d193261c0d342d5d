package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindebamsen/checkout-service/internal/entities"
	"github.com/mindebamsen/checkout-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder inserts an order together with its items. Run it inside
// trm.Manager.Do so the order, its items and the first payment event land
// atomically.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"reference", "customer_id", "callback_token", "amount", "currency",
			"status", "shipping_method", "shipping_cost", "pickup_point_id",
			"payment_method", "comments",
		).
		Values(
			o.Reference, nullInt64Ptr(o.CustomerID), nullString(o.CallbackToken),
			o.Amount, o.Currency, string(o.Status), o.ShippingMethod,
			o.ShippingCost, nullString(o.PickupPointID), o.PaymentMethod,
			nullString(o.Comments),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_ref", "name", "price", "quantity", "fabric_type",
			"body_fabric", "head_fabric", "under_arms_fabric", "belly_fabric",
			"has_vest", "vest_fabric", "face_style")

	for _, it := range o.Items {
		q = q.Values(
			o.Reference, it.Name, it.Price, it.Quantity,
			nullString(it.FabricType), nullString(it.BodyFabric),
			nullString(it.HeadFabric), nullString(it.UnderArmsFabric),
			nullString(it.BellyFabric), it.HasVest,
			nullString(it.VestFabric), nullString(it.FaceStyle),
		)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByReference(ctx context.Context, reference string) (entities.Order, error) {
	query, args := r.qb.Select(
		"reference", "customer_id", "callback_token", "amount", "currency",
		"status", "shipping_method", "shipping_cost", "pickup_point_id",
		"payment_method", "comments", "created_at", "updated_at", "completed_at").
		From("orders").
		Where(sq.Eq{"reference": reference}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(
		"order_ref", "name", "price", "quantity", "fabric_type", "body_fabric",
		"head_fabric", "under_arms_fabric", "belly_fabric", "has_vest",
		"vest_fabric", "face_style").
		From("order_items").
		Where(sq.Eq{"order_ref": reference}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// TransitionStatus moves an order to a new status only when its current
// status is one of from. The first transition into COMPLETED also stamps
// completed_at; later transitions leave the stamp untouched. Returns whether
// a row changed, so concurrent reconciliations can tell who won.
func (r *postgresRepo) TransitionStatus(ctx context.Context, reference string, from []entities.OrderStatus, to entities.OrderStatus) (bool, error) {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}

	q := r.qb.Update("orders").
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"reference": reference, "status": statuses})

	if to == entities.StatusCompleted {
		q = q.Set("completed_at", sq.Expr("COALESCE(completed_at, now())"))
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to transition order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// AppendEvent adds one entry to the append-only payment event log.
func (r *postgresRepo) AppendEvent(ctx context.Context, e entities.PaymentEvent) error {
	var amount sql.NullInt64
	if e.Amount != nil {
		amount = sql.NullInt64{Int64: *e.Amount, Valid: true}
	}

	query, args := r.qb.Insert("payment_events").
		Columns("order_ref", "event_type", "status", "transaction_id", "amount", "payload").
		Values(
			e.OrderRef, string(e.EventType), e.Status,
			nullString(e.TransactionID), amount, []byte(e.Payload),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append payment event: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListEvents(ctx context.Context, reference string) ([]entities.PaymentEvent, error) {
	query, args := r.qb.Select(
		"id", "order_ref", "event_type", "status", "transaction_id", "amount",
		"payload", "created_at").
		From("payment_events").
		Where(sq.Eq{"order_ref": reference}).
		OrderBy("id ASC").
		MustSql()

	var events []PaymentEvent
	if err := r.selectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select payment events: %w", err)
	}

	result := make([]entities.PaymentEvent, 0, len(events))
	for _, e := range events {
		result = append(result, EventToEntity(e))
	}
	return result, nil
}

// UpsertCustomer creates or updates a customer keyed by email and returns
// the customer id.
func (r *postgresRepo) UpsertCustomer(ctx context.Context, c entities.Customer) (int64, error) {
	query, args := r.qb.Insert("customers").
		Columns("email", "first_name", "last_name", "phone", "address",
			"postal_code", "city", "marketing_consent").
		Values(c.Email, c.FirstName, c.LastName, c.Phone, c.Address,
			c.PostalCode, c.City, c.MarketingConsent).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			postal_code = EXCLUDED.postal_code,
			city = EXCLUDED.city,
			marketing_consent = EXCLUDED.marketing_consent,
			updated_at = now()
			RETURNING id`).
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to upsert customer: %w", err)
	}
	return id, nil
}

func nullInt64Ptr(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
