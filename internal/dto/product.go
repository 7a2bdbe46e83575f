package dto

import (
	"encoding/json"
	"time"
)

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name             string          `json:"name" binding:"required"`
	BrandName        string          `json:"brandName" binding:"required"`
	BuyingPrice      int64           `json:"buyingPrice"`
	SellingPrice     int64           `json:"sellingPrice"`
	VendorPrice      int64           `json:"vendorPrice"`
	Quantity         int             `json:"quantity"`
	Date             time.Time       `json:"date"`
	Images           []string        `json:"images"`
	IsTopSelling     bool            `json:"isTopSelling"`
	IsFeatured       bool            `json:"isFeatured"`
	IsBudgetFriendly bool            `json:"isBudgetFriendly"`
	CustomFields     json.RawMessage `json:"customFields"`
}

// Validate checks create request invariants
func (r *CreateProductRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Product name is required"
	}
	if r.BrandName == "" {
		return false, "Brand name is required"
	}
	if r.BuyingPrice < 0 || r.SellingPrice < 0 || r.VendorPrice < 0 {
		return false, "Prices cannot be negative"
	}
	if r.Quantity < 0 {
		return false, "Quantity cannot be negative"
	}
	return true, ""
}

// UpdateProductRequest represents a product update request.
// All fields are replaced wholesale, matching the single UPDATE the
// catalog performs.
type UpdateProductRequest struct {
	Name             string          `json:"name" binding:"required"`
	BrandName        string          `json:"brandName" binding:"required"`
	BuyingPrice      int64           `json:"buyingPrice"`
	SellingPrice     int64           `json:"sellingPrice"`
	VendorPrice      int64           `json:"vendorPrice"`
	Quantity         int             `json:"quantity"`
	Date             time.Time       `json:"date"`
	Images           []string        `json:"images"`
	IsTopSelling     bool            `json:"isTopSelling"`
	IsFeatured       bool            `json:"isFeatured"`
	IsBudgetFriendly bool            `json:"isBudgetFriendly"`
	CustomFields     json.RawMessage `json:"customFields"`
}

// Validate checks update request invariants
func (r *UpdateProductRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Product name is required"
	}
	if r.BrandName == "" {
		return false, "Brand name is required"
	}
	if r.BuyingPrice < 0 || r.SellingPrice < 0 || r.VendorPrice < 0 {
		return false, "Prices cannot be negative"
	}
	if r.Quantity < 0 {
		return false, "Quantity cannot be negative"
	}
	return true, ""
}

// DeleteProductResponse is the body returned on successful deletion
type DeleteProductResponse struct {
	Deleted bool        `json:"deleted"`
	Product interface{} `json:"product"`
}
