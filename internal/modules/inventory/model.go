package inventory

import (
	"time"

	"github.com/google/uuid"
)

// MovementTypeIncrease is the only movement kind the write path produces;
// the column allows others for forward compatibility.
const MovementTypeIncrease = "increase"

// Movement is an immutable record of a stock quantity/price change. It is
// never updated in place; the only mutation path is deletion, which
// reverses its quantity effect on current stock.
type Movement struct {
	ID             uuid.UUID  `json:"id"`
	ProductID      uuid.UUID  `json:"product_id"`
	QuantityChange float64    `json:"quantity_change"`
	Unit           string     `json:"unit"`
	TotalPrice     float64    `json:"total_price"`
	MovementType   string     `json:"movement_type"`
	MovementDate   time.Time  `json:"movement_date"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
}

// MovementDetail is a movement joined with its product, for display.
type MovementDetail struct {
	MovementID      uuid.UUID `json:"movement_id"`
	ProductName     string    `json:"product_name"`
	ProductCategory string    `json:"product_category"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	TotalPrice      float64   `json:"total_price"`
	MovementDate    time.Time `json:"movement_date"`
	// LocalDate is the movement date rendered in local wall-clock time.
	LocalDate string `json:"local_date"`
}

// CurrentStock is the derived running aggregate for a (product, unit) pair.
// It must equal the sum of all non-deleted movements for that pair and is
// maintained incrementally, never recomputed from scratch.
type CurrentStock struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   uuid.UUID  `json:"product_id"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit"`
	TotalPrice  float64    `json:"total_price"`
	LastUpdated time.Time  `json:"last_updated"`
	UpdatedBy   *uuid.UUID `json:"updated_by,omitempty"`
}

// LocalDateFormat renders timestamps the way the reporting screens expect.
const LocalDateFormat = "02.01.2006 15:04"
