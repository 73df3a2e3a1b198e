package handlers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"aidforpaws/internal/service"
)

// Pinger reports backend reachability for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	Animals   *service.AnimalService
	Donations *service.DonationService
	Payments  *service.PaymentService
	Admin     *service.AdminService
	Store     Pinger
	StoreName string

	JWTSecret   string
	TokenTTL    time.Duration
	TokenIssuer string
	Logger      zerolog.Logger
}
