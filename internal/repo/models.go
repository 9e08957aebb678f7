package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "user_id",
	"shipping_address", "shipping_city", "shipping_postal_code", "shipping_country",
	"shipping_phone", "shipping_name",
	"payment_method", "tax_price", "shipping_price", "total_price",
	"status", "is_paid", "paid_at",
	"payment_id", "payment_status", "payment_update_time", "payment_email",
	"is_delivered", "delivered_at", "carrier", "tracking_number", "notes",
	"created_at", "updated_at",
}

type Order struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`

	ShippingAddress    string         `db:"shipping_address"`
	ShippingCity       string         `db:"shipping_city"`
	ShippingPostalCode string         `db:"shipping_postal_code"`
	ShippingCountry    string         `db:"shipping_country"`
	ShippingPhone      string         `db:"shipping_phone"`
	ShippingName       sql.NullString `db:"shipping_name"`

	PaymentMethod string          `db:"payment_method"`
	TaxPrice      decimal.Decimal `db:"tax_price"`
	ShippingPrice decimal.Decimal `db:"shipping_price"`
	TotalPrice    decimal.Decimal `db:"total_price"`

	Status string       `db:"status"`
	IsPaid bool         `db:"is_paid"`
	PaidAt sql.NullTime `db:"paid_at"`

	PaymentID         sql.NullString `db:"payment_id"`
	PaymentStatus     sql.NullString `db:"payment_status"`
	PaymentUpdateTime sql.NullString `db:"payment_update_time"`
	PaymentEmail      sql.NullString `db:"payment_email"`

	IsDelivered    bool           `db:"is_delivered"`
	DeliveredAt    sql.NullTime   `db:"delivered_at"`
	Carrier        sql.NullString `db:"carrier"`
	TrackingNumber sql.NullString `db:"tracking_number"`
	Notes          sql.NullString `db:"notes"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Item struct {
	OrderID   string          `db:"order_id"`
	Position  int             `db:"position"`
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	Image     sql.NullString  `db:"image"`
	Quantity  int             `db:"qty"`
	Price     decimal.Decimal `db:"price"`
}

type Product struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Image        sql.NullString  `db:"image"`
	Price        decimal.Decimal `db:"price"`
	CountInStock int             `db:"count_in_stock"`
}

func ItemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		Image:     nullStringToString(i.Image),
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:           p.ID,
		Name:         p.Name,
		Image:        nullStringToString(p.Image),
		Price:        p.Price,
		CountInStock: p.CountInStock,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:     o.ID,
		UserID: o.UserID,
		ShippingAddress: entities.ShippingAddress{
			Street:        o.ShippingAddress,
			City:          o.ShippingCity,
			PostalCode:    o.ShippingPostalCode,
			Country:       o.ShippingCountry,
			Phone:         o.ShippingPhone,
			RecipientName: nullStringToString(o.ShippingName),
		},
		PaymentMethod:  o.PaymentMethod,
		TaxPrice:       o.TaxPrice,
		ShippingPrice:  o.ShippingPrice,
		TotalPrice:     o.TotalPrice,
		Status:         entities.Status(o.Status),
		IsPaid:         o.IsPaid,
		PaidAt:         nullTimeToPtr(o.PaidAt),
		IsDelivered:    o.IsDelivered,
		DeliveredAt:    nullTimeToPtr(o.DeliveredAt),
		Carrier:        nullStringToString(o.Carrier),
		TrackingNumber: nullStringToString(o.TrackingNumber),
		Notes:          nullStringToString(o.Notes),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	// payment_id пишется всегда вместе с остальными полями результата
	if o.PaymentID.Valid {
		order.PaymentResult = &entities.PaymentResult{
			ID:           o.PaymentID.String,
			Status:       nullStringToString(o.PaymentStatus),
			UpdateTime:   nullStringToString(o.PaymentUpdateTime),
			EmailAddress: nullStringToString(o.PaymentEmail),
		}
	}

	order.Items = make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
