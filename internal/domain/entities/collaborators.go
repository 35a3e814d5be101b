package entities

import "github.com/shopspring/decimal"

// UserProfile is the directory view of a user, disclosed only after unlock.
type UserProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// EntitySnapshot is the catalog data used to pre-fill quotes.
type EntitySnapshot struct {
	ID       string
	Type     EntityType
	Title    string
	Quantity decimal.Decimal
	Budget   decimal.Decimal
	// GSTPercent is only known for products.
	GSTPercent decimal.Decimal
}
