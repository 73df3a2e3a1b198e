package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// OrderRequest asks the payment gateway to open an order.
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    Notes
}

// Order is the gateway order object, returned to the caller as received. It
// is never persisted.
type Order struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt,omitempty"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	Notes      Notes  `json:"notes,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

// CreatedTime converts the gateway's unix timestamp.
func (o Order) CreatedTime() time.Time {
	return time.Unix(o.CreatedAt, 0).UTC()
}

// ToMinorUnits converts a major-unit amount (rupees) to minor units (paise),
// rounding to the nearest unit.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ValidAmount reports whether amount can be charged.
func ValidAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}

// Notes are free-form key/value pairs attached to an order. The gateway
// encodes an empty set as [] rather than {}.
type Notes map[string]string

func (n *Notes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("null")) {
		*n = nil
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return err
	}
	*n = m
	return nil
}
