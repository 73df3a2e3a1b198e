package domain

import "time"

// AnimalInput holds the writable fields of an animal listing. The same
// definition drives request decoding, validation and storage mapping.
type AnimalInput struct {
	Name        string  `json:"name" bson:"name" yaml:"name" validate:"required"`
	Description string  `json:"description" bson:"description" yaml:"description" validate:"required"`
	ImageURL    string  `json:"imageUrl" bson:"imageUrl" yaml:"imageUrl" validate:"required,url"`
	Type        string  `json:"type" bson:"type" yaml:"type" validate:"required"`
	Category    *string `json:"category,omitempty" bson:"category,omitempty" yaml:"category,omitempty"`
}

// Animal is a shelter animal listed in the public catalog.
type Animal struct {
	ID          string `json:"_id" bson:"_id"`
	AnimalInput `bson:",inline"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Apply copies input onto the animal. A nil category keeps the stored one.
func (a *Animal) Apply(in AnimalInput) {
	category := a.Category
	a.AnimalInput = in
	if in.Category == nil {
		a.Category = category
	}
}
