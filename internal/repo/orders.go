package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	postgresRepo
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	row := orderToRow(o)
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			row.ID, row.UserID,
			row.ShippingAddress, row.ShippingCity, row.ShippingPostalCode, row.ShippingCountry,
			row.ShippingPhone, row.ShippingName,
			row.PaymentMethod, row.TaxPrice, row.ShippingPrice, row.TotalPrice,
			row.Status, row.IsPaid, row.PaidAt,
			row.PaymentID, row.PaymentStatus, row.PaymentUpdateTime, row.PaymentEmail,
			row.IsDelivered, row.DeliveredAt, row.Carrier, row.TrackingNumber, row.Notes,
			row.CreatedAt, row.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "name", "image", "qty", "price")
	for i, it := range o.Items {
		q = q.Values(o.ID, i, it.ProductID, it.Name, nullString(it.Image), it.Quantity, it.Price)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrder(ctx, id, false)
}

// LockOrder читает заказ с блокировкой строки до конца транзакции из контекста
func (r *orderRepo) LockOrder(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrder(ctx, id, true)
}

func (r *orderRepo) getOrder(ctx context.Context, id string, lock bool) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrders(ctx, []string{id})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[id]), nil
}

// UpdateOrder перезаписывает изменяемые поля заказа. Позиции заказа не меняются никогда.
func (r *orderRepo) UpdateOrder(ctx context.Context, o entities.Order) error {
	row := orderToRow(o)
	query, args := r.qb.Update("orders").
		SetMap(map[string]any{
			"status":              row.Status,
			"is_paid":             row.IsPaid,
			"paid_at":             row.PaidAt,
			"payment_id":          row.PaymentID,
			"payment_status":      row.PaymentStatus,
			"payment_update_time": row.PaymentUpdateTime,
			"payment_email":       row.PaymentEmail,
			"is_delivered":        row.IsDelivered,
			"delivered_at":        row.DeliveredAt,
			"carrier":             row.Carrier,
			"tracking_number":     row.TrackingNumber,
			"notes":               row.Notes,
			"updated_at":          row.UpdatedAt,
		}).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) OrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	return r.listOrders(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC"))
}

func (r *orderRepo) AllOrders(ctx context.Context) ([]entities.Order, error) {
	return r.listOrders(ctx, r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC"))
}

func (r *orderRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return r.listOrders(ctx, r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)))
}

func (r *orderRepo) listOrders(ctx context.Context, q sq.SelectBuilder) ([]entities.Order, error) {
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := r.itemsByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, items[order.ID]))
	}
	return result, nil
}

func (r *orderRepo) itemsByOrders(ctx context.Context, ids []string) (map[string][]Item, error) {
	query, args := r.qb.Select("order_id", "position", "product_id", "name", "image", "qty", "price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	result := make(map[string][]Item, len(ids))
	for _, it := range items {
		result[it.OrderID] = append(result[it.OrderID], it)
	}
	return result, nil
}

func orderToRow(o entities.Order) Order {
	row := Order{
		ID:                 o.ID,
		UserID:             o.UserID,
		ShippingAddress:    o.ShippingAddress.Street,
		ShippingCity:       o.ShippingAddress.City,
		ShippingPostalCode: o.ShippingAddress.PostalCode,
		ShippingCountry:    o.ShippingAddress.Country,
		ShippingPhone:      o.ShippingAddress.Phone,
		ShippingName:       nullString(o.ShippingAddress.RecipientName),
		PaymentMethod:      o.PaymentMethod,
		TaxPrice:           o.TaxPrice,
		ShippingPrice:      o.ShippingPrice,
		TotalPrice:         o.TotalPrice,
		Status:             string(o.Status),
		IsPaid:             o.IsPaid,
		PaidAt:             nullTime(o.PaidAt),
		IsDelivered:        o.IsDelivered,
		DeliveredAt:        nullTime(o.DeliveredAt),
		Carrier:            nullString(o.Carrier),
		TrackingNumber:     nullString(o.TrackingNumber),
		Notes:              nullString(o.Notes),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}

	if p := o.PaymentResult; p != nil {
		row.PaymentID = sql.NullString{String: p.ID, Valid: true}
		row.PaymentStatus = nullString(p.Status)
		row.PaymentUpdateTime = nullString(p.UpdateTime)
		row.PaymentEmail = nullString(p.EmailAddress)
	}
	return row
}
