package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ShippingAddress struct {
	Street        string
	City          string
	PostalCode    string
	Country       string
	Phone         string
	RecipientName string
}

// LineItem хранит снимок цены и названия товара на момент заказа
type LineItem struct {
	ProductID string
	Name      string
	Image     string
	Quantity  int
	Price     decimal.Decimal
}

func (i LineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID              string
	UserID          string
	Items           []LineItem
	ShippingAddress ShippingAddress
	PaymentMethod   string

	TaxPrice      decimal.Decimal
	ShippingPrice decimal.Decimal
	TotalPrice    decimal.Decimal

	Status Status

	IsPaid        bool
	PaidAt        *time.Time
	PaymentResult *PaymentResult

	IsDelivered bool
	DeliveredAt *time.Time

	Carrier        string
	TrackingNumber string
	Notes          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Order) ItemsPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// StockItems возвращает позиции заказа в виде, пригодном для резервирования/возврата остатков
func (o *Order) StockItems() []StockItem {
	items := make([]StockItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, StockItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}

// NewOrder - данные для создания заказа. Суммы считает вызывающая сторона.
type NewOrder struct {
	UserID          string
	Items           []StockItem
	ShippingAddress ShippingAddress
	PaymentMethod   string
	TaxPrice        decimal.Decimal
	ShippingPrice   decimal.Decimal
	TotalPrice      decimal.Decimal
}

func (n NewOrder) Validate() error {
	if n.UserID == "" {
		return invalidInput("user id is required")
	}
	if len(n.Items) == 0 {
		return invalidInput("no order items")
	}
	for _, it := range n.Items {
		if it.ProductID == "" {
			return invalidInput("product id is required")
		}
		if it.Quantity < 1 {
			return invalidInput(fmt.Sprintf("invalid quantity %d for product %s", it.Quantity, it.ProductID))
		}
	}
	if n.TaxPrice.IsNegative() || n.ShippingPrice.IsNegative() || n.TotalPrice.IsNegative() {
		return invalidInput("amounts must be non-negative")
	}
	return nil
}

// moneyPlaces - точность денежных колонок в базе
const moneyPlaces = 2

// RoundMoney приводит суммы клиента к копейкам, как их сохранит NUMERIC(12,2)
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

type StatusUpdate struct {
	// пустой статус означает, что меняются только заметки
	Status         Status
	TrackingNumber string
	Carrier        string
	Notes          *string
}

type Requester struct {
	UserID  string
	IsAdmin bool
}

func (r Requester) CanAccess(o Order) bool {
	return r.IsAdmin || (r.UserID != "" && r.UserID == o.UserID)
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(LineItem{})
	gob.Register(ShippingAddress{})
	gob.Register(PaymentResult{})
}
