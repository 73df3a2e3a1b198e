package domain

import (
	"encoding/json"
	"time"
)

// DonationInput holds the fields a donor supplies (or the payment flow
// assembles) for a donation record.
type DonationInput struct {
	DonorName  string  `json:"donorName" bson:"donorName" validate:"required"`
	DonorEmail string  `json:"donorEmail" bson:"donorEmail" validate:"required,email"`
	Amount     float64 `json:"amount" bson:"amount" validate:"gt=0"`
	AnimalID   string  `json:"animal" bson:"animal" validate:"required,objectid"`
	PaymentID  string  `json:"paymentId" bson:"paymentId" validate:"required"`
}

// Donation is a recorded contribution towards an animal. Records are written
// once and never mutated.
type Donation struct {
	ID            string `json:"_id" bson:"_id"`
	DonationInput `bson:",inline"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`

	Animal    *Animal `json:"-" bson:"-"`
	populated bool
}

// Populate attaches the referenced animal. A nil animal marks a dangling
// reference, rendered as null.
func (d *Donation) Populate(a *Animal) {
	d.Animal = a
	d.populated = true
}

// Populated reports whether the animal reference has been resolved.
func (d Donation) Populated() bool {
	return d.populated
}

type donationJSON struct {
	ID         string    `json:"_id"`
	DonorName  string    `json:"donorName"`
	DonorEmail string    `json:"donorEmail"`
	Amount     float64   `json:"amount"`
	Animal     any       `json:"animal"`
	PaymentID  string    `json:"paymentId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MarshalJSON renders the animal reference as the id, or as the full animal
// once populated.
func (d Donation) MarshalJSON() ([]byte, error) {
	out := donationJSON{
		ID:         d.ID,
		DonorName:  d.DonorName,
		DonorEmail: d.DonorEmail,
		Amount:     d.Amount,
		Animal:     d.AnimalID,
		PaymentID:  d.PaymentID,
		CreatedAt:  d.CreatedAt,
	}
	if d.populated {
		if d.Animal != nil {
			out.Animal = d.Animal
		} else {
			out.Animal = nil
		}
	}
	return json.Marshal(out)
}

// DonationSummary aggregates all recorded donations.
type DonationSummary struct {
	Count       int64
	TotalAmount float64
}
