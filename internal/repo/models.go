package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID         int64               `db:"id"`
	Name       string              `db:"name"`
	Slug       string              `db:"slug"`
	SKU        sql.NullString      `db:"sku"`
	Price      decimal.Decimal     `db:"price"`
	SalePrice  decimal.NullDecimal `db:"sale_price"`
	Stock      int                 `db:"stock"`
	Status     string              `db:"status"`
	CategoryID sql.NullInt64       `db:"category_id"`
	CreatedAt  time.Time           `db:"created_at"`
	UpdatedAt  time.Time           `db:"updated_at"`
}

var productColumns = []string{
	"p.id", "p.name", "p.slug", "p.sku", "p.price", "p.sale_price",
	"p.stock", "p.status", "p.category_id", "p.created_at", "p.updated_at",
}

type CartItem struct {
	UserID    int64     `db:"user_id"`
	ProductID int64     `db:"product_id"`
	Quantity  int       `db:"quantity"`
	CreatedAt time.Time `db:"created_at"`
}

type Address struct {
	ID           int64          `db:"id"`
	UserID       int64          `db:"user_id"`
	FullName     string         `db:"full_name"`
	Phone        string         `db:"phone"`
	AddressLine1 string         `db:"address_line1"`
	AddressLine2 sql.NullString `db:"address_line2"`
	City         sql.NullString `db:"city"`
	District     sql.NullString `db:"district"`
	Ward         sql.NullString `db:"ward"`
}

type Promotion struct {
	ID              string              `db:"id"`
	Name            string              `db:"name"`
	Code            string              `db:"code"`
	Description     sql.NullString      `db:"description"`
	Type            string              `db:"type"`
	Amount          decimal.Decimal     `db:"amount"`
	MinimumPurchase decimal.NullDecimal `db:"minimum_purchase"`
	UsageLimit      sql.NullInt32       `db:"usage_limit"`
	UsageCount      int                 `db:"usage_count"`
	IsActive        bool                `db:"is_active"`
	StartDate       time.Time           `db:"start_date"`
	EndDate         time.Time           `db:"end_date"`
	CreatedAt       time.Time           `db:"created_at"`
}

var promotionColumns = []string{
	"id", "name", "code", "description", "type", "amount", "minimum_purchase",
	"usage_limit", "usage_count", "is_active", "start_date", "end_date", "created_at",
}

type Order struct {
	ID               string          `db:"id"`
	OrderNumber      string          `db:"order_number"`
	UserID           sql.NullInt64   `db:"user_id"`
	GuestPhone       sql.NullString  `db:"guest_phone"`
	CustomerName     string          `db:"customer_name"`
	CustomerEmail    sql.NullString  `db:"customer_email"`
	CustomerPhone    string          `db:"customer_phone"`
	ShippingAddress  string          `db:"shipping_address"`
	ShippingCity     sql.NullString  `db:"shipping_city"`
	ShippingDistrict sql.NullString  `db:"shipping_district"`
	ShippingWard     sql.NullString  `db:"shipping_ward"`
	Notes            sql.NullString  `db:"notes"`
	Status           string          `db:"status"`
	PaymentMethod    string          `db:"payment_method"`
	IsPaid           bool            `db:"is_paid"`
	Subtotal         decimal.Decimal `db:"subtotal"`
	ShippingFee      decimal.Decimal `db:"shipping_fee"`
	Discount         decimal.Decimal `db:"discount"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	PromotionCode    sql.NullString  `db:"promotion_code"`
	TrackingNumber   sql.NullString  `db:"tracking_number"`
	StatusNote       sql.NullString  `db:"status_note"`
	CancelReason     sql.NullString  `db:"cancel_reason"`
	PaidAt           sql.NullTime    `db:"paid_at"`
	ShippedAt        sql.NullTime    `db:"shipped_at"`
	DeliveredAt      sql.NullTime    `db:"delivered_at"`
	CancelledAt      sql.NullTime    `db:"cancelled_at"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

var orderColumns = []string{
	"id", "order_number", "user_id", "guest_phone", "customer_name", "customer_email",
	"customer_phone", "shipping_address", "shipping_city", "shipping_district", "shipping_ward",
	"notes", "status", "payment_method", "is_paid", "subtotal", "shipping_fee", "discount",
	"total_amount", "promotion_code", "tracking_number", "status_note", "cancel_reason",
	"paid_at", "shipped_at", "delivered_at", "cancelled_at", "created_at", "updated_at",
}

type OrderItem struct {
	ID          int64           `db:"id"`
	OrderID     string          `db:"order_id"`
	ProductID   int64           `db:"product_id"`
	ProductName string          `db:"product_name"`
	SKU         sql.NullString  `db:"sku"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Quantity    int             `db:"quantity"`
	Subtotal    decimal.Decimal `db:"subtotal"`
}

var orderItemColumns = []string{
	"id", "order_id", "product_id", "product_name", "sku", "unit_price", "quantity", "subtotal",
}

type Payment struct {
	ID               string          `db:"id"`
	OrderID          string          `db:"order_id"`
	TransactionID    string          `db:"transaction_id"`
	Provider         string          `db:"provider"`
	Amount           decimal.Decimal `db:"amount"`
	Status           string          `db:"status"`
	PaymentURL       sql.NullString  `db:"payment_url"`
	Metadata         []byte          `db:"metadata"`
	ProviderResponse []byte          `db:"provider_response"`
	PaidAt           sql.NullTime    `db:"paid_at"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

var paymentColumns = []string{
	"id", "order_id", "transaction_id", "provider", "amount", "status", "payment_url",
	"metadata", "provider_response", "paid_at", "created_at", "updated_at",
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:         p.ID,
		Name:       p.Name,
		Slug:       p.Slug,
		SKU:        nullStringToString(p.SKU),
		Price:      p.Price,
		SalePrice:  p.SalePrice,
		Stock:      p.Stock,
		Status:     entities.ProductStatus(p.Status),
		CategoryID: p.CategoryID.Int64,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func CartItemToEntity(c CartItem) entities.CartItem {
	return entities.CartItem{
		UserID:    c.UserID,
		ProductID: c.ProductID,
		Quantity:  c.Quantity,
		CreatedAt: c.CreatedAt,
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:           a.ID,
		UserID:       a.UserID,
		FullName:     a.FullName,
		Phone:        a.Phone,
		AddressLine1: a.AddressLine1,
		AddressLine2: nullStringToString(a.AddressLine2),
		City:         nullStringToString(a.City),
		District:     nullStringToString(a.District),
		Ward:         nullStringToString(a.Ward),
	}
}

func PromotionToEntity(p Promotion) entities.Promotion {
	promo := entities.Promotion{
		ID:              p.ID,
		Name:            p.Name,
		Code:            p.Code,
		Description:     nullStringToString(p.Description),
		Type:            entities.PromotionType(p.Type),
		Amount:          p.Amount,
		MinimumPurchase: p.MinimumPurchase,
		UsageCount:      p.UsageCount,
		IsActive:        p.IsActive,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		CreatedAt:       p.CreatedAt,
	}
	if p.UsageLimit.Valid {
		limit := int(p.UsageLimit.Int32)
		promo.UsageLimit = &limit
	}
	return promo
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:          i.ID,
		OrderID:     i.OrderID,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		SKU:         nullStringToString(i.SKU),
		UnitPrice:   i.UnitPrice,
		Quantity:    i.Quantity,
		Subtotal:    i.Subtotal,
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		ID:               p.ID,
		OrderID:          p.OrderID,
		TransactionID:    p.TransactionID,
		Provider:         entities.PaymentProvider(p.Provider),
		Amount:           p.Amount,
		Status:           entities.PaymentStatus(p.Status),
		PaymentURL:       nullStringToString(p.PaymentURL),
		Metadata:         jsonToMap(p.Metadata),
		ProviderResponse: jsonToMap(p.ProviderResponse),
		PaidAt:           nullTimeToPtr(p.PaidAt),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func OrderToEntity(o Order, items []OrderItem, payments []Payment) entities.Order {
	order := entities.Order{
		ID:     o.ID,
		Number: o.OrderNumber,
		Shipping: entities.Shipping{
			Name:     o.CustomerName,
			Email:    nullStringToString(o.CustomerEmail),
			Phone:    o.CustomerPhone,
			Address:  o.ShippingAddress,
			City:     nullStringToString(o.ShippingCity),
			District: nullStringToString(o.ShippingDistrict),
			Ward:     nullStringToString(o.ShippingWard),
		},
		Notes:          nullStringToString(o.Notes),
		Status:         entities.OrderStatus(o.Status),
		PaymentMethod:  entities.PaymentMethod(o.PaymentMethod),
		IsPaid:         o.IsPaid,
		Subtotal:       o.Subtotal,
		ShippingFee:    o.ShippingFee,
		Discount:       o.Discount,
		Total:          o.TotalAmount,
		PromotionCode:  nullStringToString(o.PromotionCode),
		TrackingNumber: nullStringToString(o.TrackingNumber),
		StatusNote:     nullStringToString(o.StatusNote),
		CancelReason:   nullStringToString(o.CancelReason),
		PaidAt:         nullTimeToPtr(o.PaidAt),
		ShippedAt:      nullTimeToPtr(o.ShippedAt),
		DeliveredAt:    nullTimeToPtr(o.DeliveredAt),
		CancelledAt:    nullTimeToPtr(o.CancelledAt),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	if o.UserID.Valid {
		order.Owner = entities.UserOwner{UserID: o.UserID.Int64}
	} else {
		order.Owner = entities.GuestOwner{Phone: o.GuestPhone.String}
	}

	order.Items = make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		order.Items = append(order.Items, OrderItemToEntity(it))
	}

	if len(payments) > 0 {
		order.Payments = make([]entities.Payment, 0, len(payments))
		for _, p := range payments {
			order.Payments = append(order.Payments, PaymentToEntity(p))
		}
	}

	return order
}

// ownerColumns splits the owner sum type into its two nullable columns.
func ownerColumns(owner entities.Owner) (sql.NullInt64, sql.NullString) {
	switch o := owner.(type) {
	case entities.UserOwner:
		return sql.NullInt64{Int64: o.UserID, Valid: true}, sql.NullString{}
	case entities.GuestOwner:
		return sql.NullInt64{}, nullString(o.Phone)
	default:
		return sql.NullInt64{}, sql.NullString{}
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
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

func nullInt32(i *int) sql.NullInt32 {
	if i == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*i), Valid: true}
}

// mapToJSON encodes m as text; lib/pq would send a []byte as bytea.
func mapToJSON(m map[string]string) sql.NullString {
	if len(m) == 0 {
		return sql.NullString{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}

func jsonToMap(data []byte) map[string]string {
	if len(data) == 0 {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
