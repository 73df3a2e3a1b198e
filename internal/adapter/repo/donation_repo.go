package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"aidforpaws/internal/domain"
	"aidforpaws/internal/infra"
	"aidforpaws/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// Create inserts a new donation record. A reused payment id yields
// domain.ErrDuplicatePayment and leaves the table unchanged.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.ID,
		donation.DonorName,
		donation.DonorEmail,
		donation.Amount,
		donation.AnimalID,
		donation.PaymentID,
	)
	if err := row.Scan(&donation.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDuplicatePayment
		}
		return err
	}
	return nil
}

// ListRecent returns all donations, newest first, with the animal populated.
func (r *DonationRepositoryPG) ListRecent(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsPopulated)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Donation{}
	for rows.Next() {
		donation, err := scanPopulatedDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *donation)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches one donation with the animal populated.
func (r *DonationRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	return scanPopulatedDonation(r.sql.QueryRow(ctx, sqlinline.QSelectDonationByID, id))
}

// GetByPaymentID fetches the donation recorded for a gateway payment.
func (r *DonationRepositoryPG) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Donation, error) {
	return scanPopulatedDonation(r.sql.QueryRow(ctx, sqlinline.QSelectDonationByPaymentID, paymentID))
}

// ListDangling returns donations whose animal no longer exists.
func (r *DonationRepositoryPG) ListDangling(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDanglingDonations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Donation{}
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.DonorName, &d.DonorEmail, &d.Amount, &d.AnimalID, &d.PaymentID, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Populate(nil)
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Summary returns the donation count and the summed amount.
func (r *DonationRepositoryPG) Summary(ctx context.Context) (domain.DonationSummary, error) {
	var s domain.DonationSummary
	if err := r.sql.QueryRow(ctx, sqlinline.QDonationSummary).Scan(&s.Count, &s.TotalAmount); err != nil {
		return domain.DonationSummary{}, err
	}
	return s, nil
}

func scanPopulatedDonation(row pgx.Row) (*domain.Donation, error) {
	var (
		d                                   domain.Donation
		animalID, name, description, imgURL *string
		animalType, category                *string
		animalCreatedAt, animalUpdatedAt    *time.Time
	)
	err := row.Scan(
		&d.ID, &d.DonorName, &d.DonorEmail, &d.Amount, &d.AnimalID, &d.PaymentID, &d.CreatedAt,
		&animalID, &name, &description, &imgURL, &animalType, &category, &animalCreatedAt, &animalUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if animalID == nil {
		d.Populate(nil)
		return &d, nil
	}
	animal := &domain.Animal{
		ID: *animalID,
		AnimalInput: domain.AnimalInput{
			Name:        deref(name),
			Description: deref(description),
			ImageURL:    deref(imgURL),
			Type:        deref(animalType),
			Category:    category,
		},
	}
	if animalCreatedAt != nil {
		animal.CreatedAt = *animalCreatedAt
	}
	if animalUpdatedAt != nil {
		animal.UpdatedAt = *animalUpdatedAt
	}
	d.Populate(animal)
	return &d, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
