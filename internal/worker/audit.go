package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"aidforpaws/internal/domain"
)

// DanglingLister returns donations whose animal reference no longer resolves.
type DanglingLister interface {
	Dangling(ctx context.Context) ([]domain.Donation, error)
}

// AuditWorker periodically reports donations pointing at deleted animals.
type AuditWorker struct {
	source   DanglingLister
	interval time.Duration
	logger   zerolog.Logger
}

func NewAuditWorker(source DanglingLister, interval time.Duration, logger zerolog.Logger) *AuditWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &AuditWorker{source: source, interval: interval, logger: logger}
}

// Run audits once immediately and then on every tick until ctx is done.
func (w *AuditWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("audit worker started")
	for {
		if _, err := w.RunOnce(ctx); err != nil && ctx.Err() == nil {
			w.logger.Error().Err(err).Msg("audit failed")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunOnce performs a single audit pass and returns the dangling count.
func (w *AuditWorker) RunOnce(ctx context.Context) (int, error) {
	items, err := w.source.Dangling(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		w.logger.Debug().Msg("no dangling donations")
		return 0, nil
	}
	for _, d := range items {
		w.logger.Warn().
			Str("donation_id", d.ID).
			Str("animal_id", d.AnimalID).
			Str("payment_id", d.PaymentID).
			Msg("donation references a deleted animal")
	}
	w.logger.Warn().Int("count", len(items)).Msg("dangling donations found")
	return len(items), nil
}
