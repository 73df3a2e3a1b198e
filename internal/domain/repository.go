package domain

import "context"

// AnimalRepository persists animal listings. Implementations assign
// CreatedAt/UpdatedAt.
type AnimalRepository interface {
	Create(ctx context.Context, animal *Animal) error
	List(ctx context.Context) ([]Animal, error)
	GetByID(ctx context.Context, id string) (*Animal, error)
	Update(ctx context.Context, id string, in AnimalInput) (*Animal, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// DonationRepository persists donation records. Create returns
// ErrDuplicatePayment when the payment id is already recorded. Reads return
// donations with the animal populated, newest first.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	ListRecent(ctx context.Context) ([]Donation, error)
	GetByID(ctx context.Context, id string) (*Donation, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*Donation, error)
	ListDangling(ctx context.Context) ([]Donation, error)
	Summary(ctx context.Context) (DonationSummary, error)
}
