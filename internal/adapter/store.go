// Package adapter opens the persistence backend selected by configuration.
package adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"

	"aidforpaws/internal/adapter/memrepo"
	"aidforpaws/internal/adapter/mongorepo"
	"aidforpaws/internal/adapter/repo"
	"aidforpaws/internal/domain"
	"aidforpaws/internal/infra"
)

// Stores bundles the repositories for one backend.
type Stores struct {
	Driver    string
	Animals   domain.AnimalRepository
	Donations domain.DonationRepository

	pool  *pgxpool.Pool
	mongo *mongo.Client
}

// Open connects to the backend named by the DATABASE_URL scheme and prepares
// its schema or indexes.
func Open(ctx context.Context, cfg *infra.Config, logger infra.Logger) (*Stores, error) {
	driver, err := cfg.StoreDriver()
	if err != nil {
		return nil, err
	}

	switch driver {
	case infra.DriverPostgres:
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := infra.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		runner := infra.NewSQLRunner(pool, logger)
		return &Stores{
			Driver:    driver,
			Animals:   repo.NewAnimalRepository(runner),
			Donations: repo.NewDonationRepository(runner),
			pool:      pool,
		}, nil

	case infra.DriverMongo:
		client, db, err := infra.NewMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := infra.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &Stores{
			Driver:    driver,
			Animals:   mongorepo.NewAnimalRepository(db),
			Donations: mongorepo.NewDonationRepository(db),
			mongo:     client,
		}, nil

	case infra.DriverMemory:
		logger.Warn().Msg("using in-memory store; data is lost on restart")
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", driver)
}

// NewMemory returns stores backed by process memory.
func NewMemory() *Stores {
	store := memrepo.New()
	return &Stores{
		Driver:    infra.DriverMemory,
		Animals:   store.Animals(),
		Donations: store.Donations(),
	}
}

// Ping checks backend reachability.
func (s *Stores) Ping(ctx context.Context) error {
	switch {
	case s.pool != nil:
		return s.pool.Ping(ctx)
	case s.mongo != nil:
		return s.mongo.Ping(ctx, nil)
	}
	return nil
}

// Close releases backend connections.
func (s *Stores) Close(ctx context.Context) error {
	switch {
	case s.pool != nil:
		s.pool.Close()
	case s.mongo != nil:
		return s.mongo.Disconnect(ctx)
	}
	return nil
}
