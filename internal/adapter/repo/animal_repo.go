package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"aidforpaws/internal/domain"
	"aidforpaws/internal/infra"
	"aidforpaws/internal/sqlinline"
)

// AnimalRepositoryPG implements domain.AnimalRepository backed by PostgreSQL.
type AnimalRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewAnimalRepository creates a new AnimalRepositoryPG.
func NewAnimalRepository(sql infra.SQLExecutor) *AnimalRepositoryPG {
	return &AnimalRepositoryPG{sql: sql}
}

// Create inserts the animal and fills in the store-assigned timestamps.
func (r *AnimalRepositoryPG) Create(ctx context.Context, animal *domain.Animal) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertAnimal,
		animal.ID,
		animal.Name,
		animal.Description,
		animal.ImageURL,
		animal.Type,
		animal.Category,
	)
	return row.Scan(&animal.CreatedAt, &animal.UpdatedAt)
}

// List returns every animal, newest first.
func (r *AnimalRepositoryPG) List(ctx context.Context) ([]domain.Animal, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListAnimals)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Animal{}
	for rows.Next() {
		animal, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *animal)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches a single animal.
func (r *AnimalRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Animal, error) {
	return scanAnimal(r.sql.QueryRow(ctx, sqlinline.QSelectAnimalByID, id))
}

// Update overwrites the writable fields. A nil category keeps the stored value.
func (r *AnimalRepositoryPG) Update(ctx context.Context, id string, in domain.AnimalInput) (*domain.Animal, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateAnimal,
		id,
		in.Name,
		in.Description,
		in.ImageURL,
		in.Type,
		in.Category,
	)
	return scanAnimal(row)
}

// Delete removes the animal; donations referencing it are left untouched.
func (r *AnimalRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteAnimal, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the number of listed animals.
func (r *AnimalRepositoryPG) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountAnimals).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanAnimal(row pgx.Row) (*domain.Animal, error) {
	var a domain.Animal
	if err := row.Scan(&a.ID, &a.Name, &a.Description, &a.ImageURL, &a.Type, &a.Category, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

var _ domain.AnimalRepository = (*AnimalRepositoryPG)(nil)
