package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAnimal() AnimalInput {
	return AnimalInput{
		Name:        "Bruno",
		Description: "Friendly labrador",
		ImageURL:    "https://images.example.com/bruno.jpg",
		Type:        "dog",
	}
}

func TestValidateAnimalInput(t *testing.T) {
	require.NoError(t, Validate(validAnimal()))

	err := Validate(AnimalInput{ImageURL: "not a url"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "description")
	assert.Contains(t, verr.Fields, "type")
	assert.Equal(t, []string{"must be a valid URL"}, verr.Fields["imageUrl"])
	assert.NotContains(t, verr.Fields, "category")
}

func TestValidateDonationInput(t *testing.T) {
	in := DonationInput{
		DonorName:  "Asha",
		DonorEmail: "asha@example.com",
		Amount:     500,
		AnimalID:   NewID(),
		PaymentID:  "pay_1",
	}
	require.NoError(t, Validate(in))

	tests := []struct {
		name  string
		edit  func(*DonationInput)
		field string
	}{
		{"empty donor", func(d *DonationInput) { d.DonorName = "" }, "donorName"},
		{"bad email", func(d *DonationInput) { d.DonorEmail = "asha" }, "donorEmail"},
		{"zero amount", func(d *DonationInput) { d.Amount = 0 }, "amount"},
		{"negative amount", func(d *DonationInput) { d.Amount = -3 }, "amount"},
		{"bad animal id", func(d *DonationInput) { d.AnimalID = "abc" }, "animal"},
		{"missing payment", func(d *DonationInput) { d.PaymentID = "" }, "paymentId"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bad := in
			tc.edit(&bad)
			var verr *ValidationError
			require.True(t, errors.As(Validate(bad), &verr))
			assert.Len(t, verr.Fields, 1)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestValidationErrorMessageIsSorted(t *testing.T) {
	e := &ValidationError{}
	e.Add("type", "is required")
	e.Add("name", "is required")
	assert.Equal(t, "validation failed: name, type", e.Error())
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(50000), ToMinorUnits(500))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(1), ToMinorUnits(0.005))
	assert.False(t, ValidAmount(0))
	assert.False(t, ValidAmount(-1))
	assert.True(t, ValidAmount(0.5))
}
