package domain

import (
	"encoding/json"
	"time"
)

// Product represents a catalog item.
// Images and CustomFields are stored as JSONB and passed through
// untouched; CustomFields carries arbitrary vendor-defined attributes.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	BrandName        string          `json:"brandName"`
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
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
