package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

func init() {
	// витрина работает с суммами как с числами
	decimal.MarshalJSONWithoutQuotes = true
}

// Order представляет заказ
type Order struct {
	ID              string          `json:"_id"`
	User            string          `json:"user"`
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	ItemsPrice      decimal.Decimal `json:"itemsPrice" swaggertype:"number"`
	TaxPrice        decimal.Decimal `json:"taxPrice" swaggertype:"number"`
	ShippingPrice   decimal.Decimal `json:"shippingPrice" swaggertype:"number"`
	TotalPrice      decimal.Decimal `json:"totalPrice" swaggertype:"number"`
	Status          string          `json:"status" enums:"Pending,Processing,Shipped,Delivered,Cancelled"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	PaymentResult   *PaymentResult  `json:"paymentResult,omitempty"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	TrackingNumber  string          `json:"trackingNumber,omitempty"`
	Carrier         string          `json:"carrier,omitempty"`
	OrderNotes      string          `json:"orderNotes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem позиция заказа. Название, картинка и цена в ответе берутся из каталога на момент заказа.
type OrderItem struct {
	Product string          `json:"product" validate:"required"`
	Name    string          `json:"name,omitempty"`
	Image   string          `json:"image,omitempty"`
	Qty     int             `json:"qty" validate:"required,gte=1"`
	Price   decimal.Decimal `json:"price" swaggertype:"number"`
}

// ShippingAddress адрес доставки
type ShippingAddress struct {
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Name       string `json:"name,omitempty"`
}

// PaymentResult результат оплаты от платёжного провайдера
type PaymentResult struct {
	ID           string `json:"id" validate:"required"`
	Status       string `json:"status,omitempty"`
	UpdateTime   string `json:"update_time,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

// CreateOrderRequest запрос на создание заказа. Суммы считает витрина.
type CreateOrderRequest struct {
	OrderItems      []OrderItem     `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string          `json:"paymentMethod" validate:"required"`
	TaxPrice        decimal.Decimal `json:"taxPrice" swaggertype:"number"`
	ShippingPrice   decimal.Decimal `json:"shippingPrice" swaggertype:"number"`
	TotalPrice      decimal.Decimal `json:"totalPrice" swaggertype:"number"`
}

// UpdateStatusRequest административное изменение заказа
type UpdateStatusRequest struct {
	Status         string  `json:"status" validate:"omitempty,oneof=Pending Processing Shipped Delivered Cancelled"`
	TrackingNumber string  `json:"trackingNumber"`
	Carrier        string  `json:"carrier"`
	OrderNotes     *string `json:"orderNotes"`
}

// MarkPaidRequest принимает результат оплаты как в поле paymentResult, так и прямо в теле запроса
type MarkPaidRequest struct {
	PaymentResult *PaymentResult `json:"paymentResult"`

	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

// PaymentEvent сообщение о подтверждённой оплате из топика платежей
type PaymentEvent struct {
	OrderID       string        `json:"order_id" validate:"required,uuid"`
	PaymentResult PaymentResult `json:"payment_result" validate:"required"`
}

// StockErrorResponse ответ при нехватке товара на складе
// swagger:model StockErrorResponse
type StockErrorResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

func OrderEntityToJSON(o entities.Order) Order {
	order := Order{
		ID:     o.ID,
		User:   o.UserID,
		Status: string(o.Status),
		ShippingAddress: ShippingAddress{
			Address:    o.ShippingAddress.Street,
			City:       o.ShippingAddress.City,
			PostalCode: o.ShippingAddress.PostalCode,
			Country:    o.ShippingAddress.Country,
			Phone:      o.ShippingAddress.Phone,
			Name:       o.ShippingAddress.RecipientName,
		},
		PaymentMethod:  o.PaymentMethod,
		ItemsPrice:     o.ItemsPrice(),
		TaxPrice:       o.TaxPrice,
		ShippingPrice:  o.ShippingPrice,
		TotalPrice:     o.TotalPrice,
		IsPaid:         o.IsPaid,
		PaidAt:         o.PaidAt,
		IsDelivered:    o.IsDelivered,
		DeliveredAt:    o.DeliveredAt,
		TrackingNumber: o.TrackingNumber,
		Carrier:        o.Carrier,
		OrderNotes:     o.Notes,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	if p := o.PaymentResult; p != nil {
		res := PaymentResultEntityToJSON(*p)
		order.PaymentResult = &res
	}

	order.OrderItems = make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		order.OrderItems = append(order.OrderItems, OrderItem{
			Product: it.ProductID,
			Name:    it.Name,
			Image:   it.Image,
			Qty:     it.Quantity,
			Price:   it.Price,
		})
	}

	return order
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func PaymentResultEntityToJSON(p entities.PaymentResult) PaymentResult {
	return PaymentResult{
		ID:           p.ID,
		Status:       p.Status,
		UpdateTime:   p.UpdateTime,
		EmailAddress: p.EmailAddress,
	}
}

func PaymentResultJSONToEntity(p PaymentResult) entities.PaymentResult {
	return entities.PaymentResult{
		ID:           p.ID,
		Status:       p.Status,
		UpdateTime:   p.UpdateTime,
		EmailAddress: p.EmailAddress,
	}
}

func (r CreateOrderRequest) ToEntity(userID string) entities.NewOrder {
	items := make([]entities.StockItem, 0, len(r.OrderItems))
	for _, it := range r.OrderItems {
		items = append(items, entities.StockItem{ProductID: it.Product, Quantity: it.Qty})
	}

	return entities.NewOrder{
		UserID: userID,
		Items:  items,
		ShippingAddress: entities.ShippingAddress{
			Street:        r.ShippingAddress.Address,
			City:          r.ShippingAddress.City,
			PostalCode:    r.ShippingAddress.PostalCode,
			Country:       r.ShippingAddress.Country,
			Phone:         r.ShippingAddress.Phone,
			RecipientName: r.ShippingAddress.Name,
		},
		PaymentMethod: r.PaymentMethod,
		TaxPrice:      r.TaxPrice,
		ShippingPrice: r.ShippingPrice,
		TotalPrice:    r.TotalPrice,
	}
}

func (r UpdateStatusRequest) ToEntity() entities.StatusUpdate {
	return entities.StatusUpdate{
		Status:         entities.Status(r.Status),
		TrackingNumber: r.TrackingNumber,
		Carrier:        r.Carrier,
		Notes:          r.OrderNotes,
	}
}

func (r MarkPaidRequest) ToEntity() entities.PaymentResult {
	if r.PaymentResult != nil {
		return PaymentResultJSONToEntity(*r.PaymentResult)
	}
	return entities.PaymentResult{
		ID:           r.ID,
		Status:       r.Status,
		UpdateTime:   r.UpdateTime,
		EmailAddress: r.EmailAddress,
	}
}
