package handler

import (
	"time"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/internal/lifecycle"
	"github.com/SergeyBogomolovv/seller-orders/internal/views"
	"github.com/shopspring/decimal"
)

// Order заказ продавца с данными покупателя и товара
type Order struct {
	ID              string          `json:"id"`
	BuyerID         string          `json:"buyer_id"`
	SellerID        string          `json:"seller_id"`
	ListingID       string          `json:"listing_id"`
	Quantity        decimal.Decimal `json:"quantity" swaggertype:"string" example:"12.5"`
	Unit            string          `json:"unit" example:"kg"`
	TotalAmount     decimal.Decimal `json:"total_amount" swaggertype:"string" example:"1250.00"`
	Status          string          `json:"status" example:"pending"`
	PaymentStatus   string          `json:"payment_status" example:"paid"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`

	BuyerName    string `json:"buyer_name"`
	BuyerPhone   string `json:"buyer_phone,omitempty"`
	BuyerEmail   string `json:"buyer_email,omitempty"`
	BuyerAddress string `json:"buyer_address,omitempty"`
	ListingName  string `json:"listing_name"`
}

// SummaryResponse виджет последних заказов на дашборде
type SummaryResponse struct {
	Orders       []Order `json:"orders"`
	PendingCount int     `json:"pending_count"`
}

// Counts счётчики для вкладок страницы управления
type Counts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Shipped   int `json:"shipped"`
	Total     int `json:"total"`
}

// ManagementResponse страница управления заказами
type ManagementResponse struct {
	Filter string  `json:"filter"`
	Orders []Order `json:"orders"`
	Counts Counts  `json:"counts"`
}

// DetailResponse карточка заказа
type DetailResponse struct {
	Order           Order    `json:"order"`
	ShippingAddress string   `json:"shipping_address"`
	Actions         []string `json:"actions"`
}

// TransitionRequest смена статуса заказа
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled" example:"confirmed"`
}

// TransitionResponse результат смены статуса. Removed=true, если
// доставленный заказ удалён политикой хранения.
type TransitionResponse struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	Removed       bool   `json:"removed"`
}

// TransitionErrorResponse недопустимый переход
type TransitionErrorResponse struct {
	Message string `json:"message"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// OrderPlaced событие о новом заказе из топика
type OrderPlaced struct {
	OrderID         string          `json:"order_id" validate:"required"`
	BuyerID         string          `json:"buyer_id" validate:"required"`
	SellerID        string          `json:"seller_id" validate:"required"`
	ListingID       string          `json:"listing_id" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit" validate:"required,max=16"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentStatus   string          `json:"payment_status,omitempty" validate:"omitempty,oneof=pending paid failed refunded"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func OrderViewToJSON(v entities.OrderView) Order {
	return Order{
		ID:              v.ID,
		BuyerID:         v.BuyerID,
		SellerID:        v.SellerID,
		ListingID:       v.ListingID,
		Quantity:        v.Quantity,
		Unit:            v.Unit,
		TotalAmount:     v.TotalAmount,
		Status:          v.Status.String(),
		PaymentStatus:   string(v.PaymentStatus),
		DeliveryAddress: v.DeliveryAddress,
		CreatedAt:       v.CreatedAt,
		BuyerName:       v.BuyerName,
		BuyerPhone:      v.BuyerPhone,
		BuyerEmail:      v.BuyerEmail,
		BuyerAddress:    v.BuyerAddress,
		ListingName:     v.ListingName,
	}
}

func ordersToJSON(orders []entities.OrderView) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderViewToJSON(o))
	}
	return res
}

func SummaryToJSON(s views.SummaryView) SummaryResponse {
	return SummaryResponse{
		Orders:       ordersToJSON(s.Orders),
		PendingCount: s.PendingCount,
	}
}

func ManagementToJSON(m views.ManagementView) ManagementResponse {
	return ManagementResponse{
		Filter: string(m.Filter),
		Orders: ordersToJSON(m.Orders),
		Counts: Counts{
			Pending:   m.Counts.Pending,
			Confirmed: m.Counts.Confirmed,
			Shipped:   m.Counts.Shipped,
			Total:     m.Counts.Total,
		},
	}
}

func DetailToJSON(d views.OrderDetail) DetailResponse {
	actions := make([]string, 0, len(d.Actions))
	for _, a := range d.Actions {
		actions = append(actions, string(a))
	}
	return DetailResponse{
		Order:           OrderViewToJSON(d.Order),
		ShippingAddress: d.ShippingAddress,
		Actions:         actions,
	}
}

func TransitionToJSON(orderID string, o *entities.Order) TransitionResponse {
	if o == nil {
		return TransitionResponse{OrderID: orderID, Removed: true}
	}
	return TransitionResponse{
		OrderID:       o.ID,
		Status:        o.Status.String(),
		PaymentStatus: string(o.PaymentStatus),
	}
}

func transitionErrorToJSON(e *lifecycle.TransitionError) TransitionErrorResponse {
	return TransitionErrorResponse{
		Message: "invalid status transition",
		From:    e.From.String(),
		To:      e.To.String(),
	}
}

func OrderPlacedToEntity(e OrderPlaced) entities.Order {
	return entities.Order{
		ID:              e.OrderID,
		BuyerID:         e.BuyerID,
		SellerID:        e.SellerID,
		ListingID:       e.ListingID,
		Quantity:        e.Quantity,
		Unit:            e.Unit,
		TotalAmount:     e.TotalAmount,
		PaymentStatus:   entities.PaymentStatus(e.PaymentStatus),
		DeliveryAddress: e.DeliveryAddress,
		CreatedAt:       e.CreatedAt,
	}
}
