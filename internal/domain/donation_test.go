package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationJSONRendersAnimalReference(t *testing.T) {
	animalID := NewID()
	d := Donation{
		ID: NewID(),
		DonationInput: DonationInput{
			DonorName:  "Asha",
			DonorEmail: "asha@example.com",
			Amount:     500,
			AnimalID:   animalID,
			PaymentID:  "pay_1",
		},
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	var plain map[string]any
	require.NoError(t, json.Unmarshal(raw, &plain))
	assert.Equal(t, animalID, plain["animal"])
	assert.Equal(t, "pay_1", plain["paymentId"])

	d.Populate(&Animal{ID: animalID, AnimalInput: AnimalInput{Name: "Bruno"}})
	raw, err = json.Marshal(d)
	require.NoError(t, err)
	var populated struct {
		Animal struct {
			ID   string `json:"_id"`
			Name string `json:"name"`
		} `json:"animal"`
	}
	require.NoError(t, json.Unmarshal(raw, &populated))
	assert.Equal(t, animalID, populated.Animal.ID)
	assert.Equal(t, "Bruno", populated.Animal.Name)

	d.Populate(nil)
	raw, err = json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"animal":null`)
}

func TestAnimalApplyKeepsCategoryWhenOmitted(t *testing.T) {
	cat := "senior"
	a := Animal{AnimalInput: AnimalInput{Name: "Old", Category: &cat}}
	a.Apply(AnimalInput{Name: "New"})
	require.NotNil(t, a.Category)
	assert.Equal(t, "senior", *a.Category)
	assert.Equal(t, "New", a.Name)
}

func TestOrderNotesAcceptsEmptyArray(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"id":"order_1","amount":50000,"notes":[]}`), &o))
	assert.Equal(t, "order_1", o.ID)
	assert.Nil(t, o.Notes)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"order_2","notes":{"animal":"x"}}`), &o))
	assert.Equal(t, "x", o.Notes["animal"])
}
