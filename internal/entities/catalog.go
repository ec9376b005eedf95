package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusInactive   ProductStatus = "inactive"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock:
		return true
	}
	return false
}

type Product struct {
	ID         int64
	Name       string
	Slug       string
	SKU        string
	Price      decimal.Decimal
	SalePrice  decimal.NullDecimal
	Stock      int
	Status     ProductStatus
	CategoryID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// UnitPrice is the price charged per unit: the sale price when it is set
// and lower than the regular price.
func (p Product) UnitPrice() decimal.Decimal {
	if p.SalePrice.Valid && p.SalePrice.Decimal.IsPositive() && p.SalePrice.Decimal.LessThan(p.Price) {
		return p.SalePrice.Decimal
	}
	return p.Price
}

// ProductPatch lists the admin-editable product fields; nil means unchanged.
type ProductPatch struct {
	Name      *string
	Price     *decimal.Decimal
	SalePrice *decimal.NullDecimal
	Stock     *int
	Status    *ProductStatus
}

type ProductFilter struct {
	CategorySlug string
	Search       string
	OnlyActive   bool
	Page         int
	Limit        int
}

type Category struct {
	ID   int64
	Name string
	Slug string
}

type CartItem struct {
	UserID    int64
	ProductID int64
	Quantity  int
	CreatedAt time.Time
}

// CartLine is a cart item joined with the current product state.
type CartLine struct {
	Item    CartItem
	Product Product
}

type Cart struct {
	Lines      []CartLine
	Subtotal   decimal.Decimal
	TotalItems int
}

type Address struct {
	ID           int64
	UserID       int64
	FullName     string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	District     string
	Ward         string
}

// ToShipping copies the address into an order shipping snapshot.
func (a Address) ToShipping() Shipping {
	address := a.AddressLine1
	if a.AddressLine2 != "" {
		address += ", " + a.AddressLine2
	}
	return Shipping{
		Name:     a.FullName,
		Phone:    a.Phone,
		Address:  address,
		City:     a.City,
		District: a.District,
		Ward:     a.Ward,
	}
}
