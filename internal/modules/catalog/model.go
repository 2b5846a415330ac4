package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item tracked by the stock system.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Categories is the closed list of product departments.
var Categories = []string{
	"CLEANING",
	"BAR",
	"KITCHEN",
	"BEVERAGE",
	"PASTRY",
	"ICE CREAM",
	"GENERAL",
}

// ValidCategory reports whether the category is one of the known
// departments.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
