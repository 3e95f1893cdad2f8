package order

import (
	"encoding/json"
	"time"
)

// Customer is derived from orders: the first order carrying a new phone
// number creates the record, later orders leave it untouched.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Order is created once and never mutated. Items are opaque line
// references — the backend stores and returns them verbatim.
type Order struct {
	ID        int               `json:"id"`
	Code      string            `json:"orderCode"`
	Customer  Customer          `json:"customer"`
	Items     []json.RawMessage `json:"items"`
	Total     float64           `json:"total"`
	CreatedAt time.Time         `json:"createdAt"`
}
