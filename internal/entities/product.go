package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"slices"
	"time"
)

type ProductStatus string

const (
	ProductOnSale   ProductStatus = "on_sale"
	ProductReserved ProductStatus = "reserved"
	ProductSoldOut  ProductStatus = "sold_out"
	ProductHidden   ProductStatus = "hidden"
)

var ProductStatuses = []ProductStatus{ProductOnSale, ProductReserved, ProductSoldOut, ProductHidden}

func (s ProductStatus) Valid() bool { return slices.Contains(ProductStatuses, s) }

type Pricing struct {
	OriginalPrice int64
	SalePrice     int64
	// percent, derived from the two prices on save
	DiscountRate int
}

type ConditionReport struct {
	Grade   string
	Summary string
	Defects []string
}

type Specifications struct {
	WidthCm  int
	DepthCm  int
	HeightCm int
	Material string
	Color    string
	Extra    map[string]string
}

type ProductImage struct {
	URL     string
	Alt     string
	Primary bool
}

type ProductOption struct {
	Name       string
	Values     []string
	PriceDelta int64
}

// Product is saved as a whole document; there are no partial updates.
type Product struct {
	ID          string
	DealerID    string
	Name        string
	Brand       string
	Category    string
	Description string

	Pricing        Pricing
	Condition      ConditionReport
	Specifications Specifications
	Images         []ProductImage
	Options        []ProductOption

	Status ProductStatus
	Stock  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Pricing) WithDiscount() Pricing {
	p.DiscountRate = 0
	if p.OriginalPrice > 0 && p.SalePrice < p.OriginalPrice {
		p.DiscountRate = int((p.OriginalPrice - p.SalePrice) * 100 / p.OriginalPrice)
	}
	return p
}

type ProductFilter struct {
	Search   string
	Category string
	Status   string
	// storefront listings never include hidden products
	VisibleOnly bool
	Limit       uint64
	Offset      uint64
}

func (p *Product) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Product) Unmarshal(data []byte) error {
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}
	return nil
}
