package service

import (
	"context"
	"fmt"

	"aidforpaws/internal/domain"
)

// AnimalService manages the public animal catalog.
type AnimalService struct {
	repo domain.AnimalRepository
}

func NewAnimalService(repo domain.AnimalRepository) *AnimalService {
	return &AnimalService{repo: repo}
}

// Create validates in and stores a new animal.
func (s *AnimalService) Create(ctx context.Context, in domain.AnimalInput) (*domain.Animal, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	animal := &domain.Animal{ID: domain.NewID(), AnimalInput: in}
	if err := s.repo.Create(ctx, animal); err != nil {
		return nil, fmt.Errorf("create animal: %w", err)
	}
	return animal, nil
}

func (s *AnimalService) List(ctx context.Context) ([]domain.Animal, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return items, nil
}

// Get returns domain.ErrNotFound for malformed ids without touching the store.
func (s *AnimalService) Get(ctx context.Context, id string) (*domain.Animal, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrNotFound
	}
	animal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get animal: %w", err)
	}
	return animal, nil
}

// Update replaces the writable fields. Validation runs before the id lookup
// so a bad body on a missing animal reports the body errors.
func (s *AnimalService) Update(ctx context.Context, id string, in domain.AnimalInput) (*domain.Animal, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	if !domain.IsValidID(id) {
		return nil, domain.ErrNotFound
	}
	animal, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update animal: %w", err)
	}
	return animal, nil
}

func (s *AnimalService) Delete(ctx context.Context, id string) error {
	if !domain.IsValidID(id) {
		return domain.ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	return nil
}

func (s *AnimalService) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count animals: %w", err)
	}
	return n, nil
}
