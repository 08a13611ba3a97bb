package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "buyer_id", "seller_id", "listing_id",
	"quantity", "unit", "total_amount",
	"status", "payment_status", "delivery_address", "created_at",
}

type Order struct {
	ID              string          `db:"id"`
	BuyerID         string          `db:"buyer_id"`
	SellerID        string          `db:"seller_id"`
	ListingID       string          `db:"listing_id"`
	Quantity        decimal.Decimal `db:"quantity"`
	Unit            string          `db:"unit"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          string          `db:"status"`
	PaymentStatus   string          `db:"payment_status"`
	DeliveryAddress sql.NullString  `db:"delivery_address"`
	CreatedAt       time.Time       `db:"created_at"`
}

type Profile struct {
	ID       string         `db:"id"`
	FullName sql.NullString `db:"full_name"`
	Phone    sql.NullString `db:"phone"`
	Email    sql.NullString `db:"email"`
	Address  sql.NullString `db:"address"`
}

type Listing struct {
	ID       string         `db:"id"`
	CropName sql.NullString `db:"crop_name"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		ListingID:       o.ListingID,
		Quantity:        o.Quantity,
		Unit:            o.Unit,
		TotalAmount:     o.TotalAmount,
		Status:          entities.Status(o.Status),
		PaymentStatus:   entities.PaymentStatus(o.PaymentStatus),
		DeliveryAddress: nullStringToString(o.DeliveryAddress),
		CreatedAt:       o.CreatedAt,
	}
}

func ProfileToEntity(p Profile) entities.Profile {
	return entities.Profile{
		UserID:   p.ID,
		FullName: nullStringToString(p.FullName),
		Phone:    nullStringToString(p.Phone),
		Email:    nullStringToString(p.Email),
		Address:  nullStringToString(p.Address),
	}
}

func ListingToEntity(l Listing) entities.Listing {
	return entities.Listing{
		ID:   l.ID,
		Name: nullStringToString(l.CropName),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
