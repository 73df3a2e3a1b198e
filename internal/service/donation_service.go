package service

import (
	"context"
	"fmt"

	"aidforpaws/internal/domain"
)

// DonationService records and lists donations.
type DonationService struct {
	repo domain.DonationRepository
}

func NewDonationService(repo domain.DonationRepository) *DonationService {
	return &DonationService{repo: repo}
}

// Create validates in and writes it once. A reused payment id returns
// domain.ErrDuplicatePayment.
func (s *DonationService) Create(ctx context.Context, in domain.DonationInput) (*domain.Donation, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	donation := &domain.Donation{ID: domain.NewID(), DonationInput: in}
	if err := s.repo.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}
	return donation, nil
}

// List returns every donation, newest first, with the animal populated.
func (s *DonationService) List(ctx context.Context) ([]domain.Donation, error) {
	items, err := s.repo.ListRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return items, nil
}

func (s *DonationService) Get(ctx context.Context, id string) (*domain.Donation, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrNotFound
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get donation: %w", err)
	}
	return d, nil
}

func (s *DonationService) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Donation, error) {
	d, err := s.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get donation by payment: %w", err)
	}
	return d, nil
}

// Dangling lists donations whose animal has been deleted.
func (s *DonationService) Dangling(ctx context.Context) ([]domain.Donation, error) {
	items, err := s.repo.ListDangling(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dangling donations: %w", err)
	}
	return items, nil
}

func (s *DonationService) Summary(ctx context.Context) (domain.DonationSummary, error) {
	sum, err := s.repo.Summary(ctx)
	if err != nil {
		return domain.DonationSummary{}, fmt.Errorf("summarize donations: %w", err)
	}
	return sum, nil
}
