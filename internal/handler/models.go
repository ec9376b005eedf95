package handler

import (
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/shopspring/decimal"
)

// Product is a catalog product
type Product struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Slug       string           `json:"slug"`
	SKU        string           `json:"sku,omitempty"`
	Price      decimal.Decimal  `json:"price" swaggertype:"string"`
	SalePrice  *decimal.Decimal `json:"sale_price,omitempty" swaggertype:"string"`
	UnitPrice  decimal.Decimal  `json:"unit_price" swaggertype:"string"`
	Stock      int              `json:"stock"`
	Status     string           `json:"status"`
	CategoryID int64            `json:"category_id,omitempty"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// UpdateProduct is a partial product update; omitted fields stay unchanged
type UpdateProduct struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Price          *decimal.Decimal `json:"price" swaggertype:"string"`
	SalePrice      *decimal.Decimal `json:"sale_price" swaggertype:"string"`
	ClearSalePrice bool             `json:"clear_sale_price"`
	Stock          *int             `json:"stock" validate:"omitempty,gte=0"`
	Status         *string          `json:"status" validate:"omitempty,oneof=active inactive out_of_stock"`
}

type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
	InStock   bool            `json:"in_stock"`
}

// Cart is the signed-in user's cart priced at current prices
type Cart struct {
	Items      []CartLine      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal" swaggertype:"string"`
	TotalItems int             `json:"total_items"`
}

type AddCartItem struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0,lte=1000"`
}

type UpdateCartItem struct {
	Quantity int `json:"quantity" validate:"required,gt=0,lte=1000"`
}

// Promotion is a discount code
type Promotion struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Code            string           `json:"code"`
	Description     string           `json:"description,omitempty"`
	Type            string           `json:"type"`
	Amount          decimal.Decimal  `json:"amount" swaggertype:"string"`
	MinimumPurchase *decimal.Decimal `json:"minimum_purchase,omitempty" swaggertype:"string"`
	UsageLimit      *int             `json:"usage_limit,omitempty"`
	UsageCount      int              `json:"usage_count"`
	IsActive        bool             `json:"is_active"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
}

type CreatePromotion struct {
	Name            string           `json:"name" validate:"required,max=255"`
	Code            string           `json:"code" validate:"required,alphanum,max=50"`
	Description     string           `json:"description" validate:"max=1000"`
	Type            string           `json:"type" validate:"required,oneof=percentage fixed_amount free_shipping"`
	Amount          decimal.Decimal  `json:"amount" swaggertype:"string"`
	MinimumPurchase *decimal.Decimal `json:"minimum_purchase" swaggertype:"string"`
	UsageLimit      *int             `json:"usage_limit" validate:"omitempty,gt=0"`
	IsActive        *bool            `json:"is_active"`
	StartDate       time.Time        `json:"start_date" validate:"required"`
	EndDate         time.Time        `json:"end_date" validate:"required,gtfield=StartDate"`
}

// PromotionCheck tells whether a code can currently be applied
type PromotionCheck struct {
	Valid     bool            `json:"valid"`
	Reason    string          `json:"reason,omitempty"`
	Discount  decimal.Decimal `json:"discount" swaggertype:"string"`
	Promotion Promotion       `json:"promotion"`
}

type Shipping struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"required,min=8,max=20"`
	Address  string `json:"address" validate:"required,max=500"`
	City     string `json:"city" validate:"max=100"`
	District string `json:"district" validate:"max=100"`
	Ward     string `json:"ward" validate:"max=100"`
}

type CheckoutItem struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0,lte=1000"`
}

// Checkout places an order for a signed-in user
type Checkout struct {
	UseCart       bool           `json:"use_cart"`
	Items         []CheckoutItem `json:"items" validate:"required_without=UseCart,excluded_with=UseCart,dive"`
	AddressID     int64          `json:"address_id" validate:"omitempty,gt=0"`
	Shipping      *Shipping      `json:"shipping" validate:"required_without=AddressID,omitempty"`
	Notes         string         `json:"notes" validate:"max=1000"`
	PaymentMethod string         `json:"payment_method" validate:"omitempty,oneof=cash_on_delivery bank_transfer credit_card e_wallet"`
	PromotionCode string         `json:"promotion_code" validate:"max=50"`
}

// GuestCheckout places an order without an account
type GuestCheckout struct {
	Items         []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	Shipping      Shipping       `json:"shipping" validate:"required"`
	Notes         string         `json:"notes" validate:"max=1000"`
	PaymentMethod string         `json:"payment_method" validate:"omitempty,oneof=cash_on_delivery bank_transfer credit_card e_wallet"`
	PromotionCode string         `json:"promotion_code" validate:"max=50"`
}

type OrderItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// Order is a placed order with its items and payments
type Order struct {
	ID             string          `json:"id"`
	Number         string          `json:"order_number"`
	UserID         int64           `json:"user_id,omitempty"`
	GuestPhone     string          `json:"guest_phone,omitempty"`
	Shipping       Shipping        `json:"shipping"`
	Notes          string          `json:"notes,omitempty"`
	Status         string          `json:"status"`
	PaymentMethod  string          `json:"payment_method"`
	IsPaid         bool            `json:"is_paid"`
	Subtotal       decimal.Decimal `json:"subtotal" swaggertype:"string"`
	ShippingFee    decimal.Decimal `json:"shipping_fee" swaggertype:"string"`
	Discount       decimal.Decimal `json:"discount" swaggertype:"string"`
	Total          decimal.Decimal `json:"total" swaggertype:"string"`
	PromotionCode  string          `json:"promotion_code,omitempty"`
	TrackingNumber string          `json:"tracking_number,omitempty"`
	StatusNote     string          `json:"status_note,omitempty"`
	CancelReason   string          `json:"cancel_reason,omitempty"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	ShippedAt      *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	Items          []OrderItem     `json:"items"`
	Payments       []Payment       `json:"payments"`
}

// CheckoutResult is returned after a successful checkout
type CheckoutResult struct {
	Order             Order    `json:"order"`
	Payment           *Payment `json:"payment,omitempty"`
	PromotionRejected string   `json:"promotion_rejected,omitempty"`
}

type CancelOrder struct {
	Reason string `json:"reason" validate:"max=500"`
}

type UpdateOrderStatus struct {
	Status         string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
	TrackingNumber string `json:"tracking_number" validate:"max=100"`
	Note           string `json:"note" validate:"max=1000"`
	CancelReason   string `json:"cancel_reason" validate:"max=500"`
}

// Payment is a payment attempt for an order
type Payment struct {
	ID            string            `json:"id"`
	OrderID       string            `json:"order_id"`
	TransactionID string            `json:"transaction_id"`
	Provider      string            `json:"provider"`
	Amount        decimal.Decimal   `json:"amount" swaggertype:"string"`
	Status        string            `json:"status"`
	PaymentURL    string            `json:"payment_url,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

type CreatePayment struct {
	OrderID   string `json:"order_id" validate:"required,uuid"`
	Provider  string `json:"provider" validate:"required,oneof=bank_transfer vnpay momo credit_card paypal zalopay"`
	ReturnURL string `json:"return_url" validate:"omitempty,url"`
}

// CallbackResult is returned to the payment gateway
type CallbackResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Payment *Payment `json:"payment,omitempty"`
}

// Page is one page of a listing
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

func PageToJSON[E, T any](p entities.Page[E], convert func(E) T) Page[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, convert(it))
	}
	return Page[T]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages(),
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	res := Product{
		ID:         p.ID,
		Name:       p.Name,
		Slug:       p.Slug,
		SKU:        p.SKU,
		Price:      p.Price,
		UnitPrice:  p.UnitPrice(),
		Stock:      p.Stock,
		Status:     string(p.Status),
		CategoryID: p.CategoryID,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.SalePrice.Valid {
		res.SalePrice = &p.SalePrice.Decimal
	}
	return res
}

func UpdateProductJSONToEntity(u UpdateProduct) entities.ProductPatch {
	patch := entities.ProductPatch{
		Name:  u.Name,
		Price: u.Price,
		Stock: u.Stock,
	}
	switch {
	case u.ClearSalePrice:
		patch.SalePrice = &decimal.NullDecimal{}
	case u.SalePrice != nil:
		patch.SalePrice = &decimal.NullDecimal{Decimal: *u.SalePrice, Valid: true}
	}
	if u.Status != nil {
		status := entities.ProductStatus(*u.Status)
		patch.Status = &status
	}
	return patch
}

func CartEntityToJSON(c entities.Cart) Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		price := l.Product.UnitPrice()
		lines = append(lines, CartLine{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			UnitPrice: price,
			Quantity:  l.Item.Quantity,
			Subtotal:  price.Mul(decimal.NewFromInt(int64(l.Item.Quantity))),
			InStock:   l.Product.IsActive() && l.Product.Stock >= l.Item.Quantity,
		})
	}
	return Cart{Items: lines, Subtotal: c.Subtotal, TotalItems: c.TotalItems}
}

func PromotionEntityToJSON(p entities.Promotion) Promotion {
	res := Promotion{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		Type:        string(p.Type),
		Amount:      p.Amount,
		UsageLimit:  p.UsageLimit,
		UsageCount:  p.UsageCount,
		IsActive:    p.IsActive,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
	if p.MinimumPurchase.Valid {
		res.MinimumPurchase = &p.MinimumPurchase.Decimal
	}
	return res
}

func CreatePromotionJSONToEntity(p CreatePromotion) entities.Promotion {
	res := entities.Promotion{
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		Type:        entities.PromotionType(p.Type),
		Amount:      p.Amount,
		UsageLimit:  p.UsageLimit,
		IsActive:    true,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
	if p.IsActive != nil {
		res.IsActive = *p.IsActive
	}
	if p.MinimumPurchase != nil {
		res.MinimumPurchase = decimal.NewNullDecimal(*p.MinimumPurchase)
	}
	return res
}

func ShippingJSONToEntity(s Shipping) entities.Shipping {
	return entities.Shipping{
		Name:     s.Name,
		Email:    s.Email,
		Phone:    s.Phone,
		Address:  s.Address,
		City:     s.City,
		District: s.District,
		Ward:     s.Ward,
	}
}

func ShippingEntityToJSON(s entities.Shipping) Shipping {
	return Shipping{
		Name:     s.Name,
		Email:    s.Email,
		Phone:    s.Phone,
		Address:  s.Address,
		City:     s.City,
		District: s.District,
		Ward:     s.Ward,
	}
}

func checkoutItemsToEntity(items []CheckoutItem) []entities.CheckoutItem {
	res := make([]entities.CheckoutItem, 0, len(items))
	for _, it := range items {
		res = append(res, entities.CheckoutItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return res
}

func CheckoutJSONToEntity(c Checkout, caller entities.Caller) entities.CheckoutRequest {
	req := entities.CheckoutRequest{
		Caller:        caller,
		UseCart:       c.UseCart,
		Items:         checkoutItemsToEntity(c.Items),
		AddressID:     c.AddressID,
		Notes:         c.Notes,
		PaymentMethod: entities.PaymentMethod(c.PaymentMethod),
		PromotionCode: c.PromotionCode,
	}
	if c.Shipping != nil {
		req.Shipping = ShippingJSONToEntity(*c.Shipping)
	}
	return req
}

func GuestCheckoutJSONToEntity(c GuestCheckout) entities.CheckoutRequest {
	shipping := ShippingJSONToEntity(c.Shipping)
	return entities.CheckoutRequest{
		Caller:        entities.Guest(shipping.Phone),
		Items:         checkoutItemsToEntity(c.Items),
		Shipping:      shipping,
		Notes:         c.Notes,
		PaymentMethod: entities.PaymentMethod(c.PaymentMethod),
		PromotionCode: c.PromotionCode,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	res := Order{
		ID:             o.ID,
		Number:         o.Number,
		Shipping:       ShippingEntityToJSON(o.Shipping),
		Notes:          o.Notes,
		Status:         string(o.Status),
		PaymentMethod:  string(o.PaymentMethod),
		IsPaid:         o.IsPaid,
		Subtotal:       o.Subtotal,
		ShippingFee:    o.ShippingFee,
		Discount:       o.Discount,
		Total:          o.Total,
		PromotionCode:  o.PromotionCode,
		TrackingNumber: o.TrackingNumber,
		StatusNote:     o.StatusNote,
		CancelReason:   o.CancelReason,
		PaidAt:         o.PaidAt,
		ShippedAt:      o.ShippedAt,
		DeliveredAt:    o.DeliveredAt,
		CancelledAt:    o.CancelledAt,
		CreatedAt:      o.CreatedAt,
		Items:          make([]OrderItem, 0, len(o.Items)),
		Payments:       make([]Payment, 0, len(o.Payments)),
	}

	switch owner := o.Owner.(type) {
	case entities.UserOwner:
		res.UserID = owner.UserID
	case entities.GuestOwner:
		res.GuestPhone = owner.Phone
	}

	for _, it := range o.Items {
		res.Items = append(res.Items, OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal,
		})
	}
	for _, p := range o.Payments {
		res.Payments = append(res.Payments, PaymentEntityToJSON(p))
	}
	return res
}

func CheckoutResultToJSON(r entities.CheckoutResult) CheckoutResult {
	res := CheckoutResult{
		Order:             OrderEntityToJSON(r.Order),
		PromotionRejected: string(r.PromotionRejected),
	}
	if r.Payment != nil {
		p := PaymentEntityToJSON(*r.Payment)
		res.Payment = &p
	}
	return res
}

func StatusUpdateJSONToEntity(u UpdateOrderStatus) entities.StatusUpdate {
	return entities.StatusUpdate{
		Status:         entities.OrderStatus(u.Status),
		TrackingNumber: u.TrackingNumber,
		Note:           u.Note,
		CancelReason:   u.CancelReason,
	}
}

func PaymentEntityToJSON(p entities.Payment) Payment {
	return Payment{
		ID:            p.ID,
		OrderID:       p.OrderID,
		TransactionID: p.TransactionID,
		Provider:      string(p.Provider),
		Amount:        p.Amount,
		Status:        string(p.Status),
		PaymentURL:    p.PaymentURL,
		Metadata:      p.Metadata,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}

func CallbackResultToJSON(r entities.CallbackResult) CallbackResult {
	res := CallbackResult{Success: r.Success, Message: r.Message}
	if r.Payment.ID != "" {
		p := PaymentEntityToJSON(r.Payment)
		res.Payment = &p
	}
	return res
}
