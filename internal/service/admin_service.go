package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"aidforpaws/internal/domain"
)

// Stats summarizes the catalog and donations for the admin dashboard.
type Stats struct {
	Animals        int64   `json:"animals"`
	Donations      int64   `json:"donations"`
	TotalAmount    float64 `json:"totalAmount"`
	Currency       string  `json:"currency"`
	FormattedTotal string  `json:"formattedTotal"`
}

// AdminService authenticates the single admin account and serves dashboard data.
type AdminService struct {
	username     string
	passwordHash []byte
	animals      *AnimalService
	donations    *DonationService
	currency     currency.Unit
	printer      *message.Printer
}

// AdminOptions configures AdminService. PasswordHash takes precedence over
// Password; a plain password is hashed once at construction.
type AdminOptions struct {
	Username     string
	Password     string
	PasswordHash string
	Currency     string
	Locale       string
}

func NewAdminService(opts AdminOptions, animals *AnimalService, donations *DonationService) (*AdminService, error) {
	hash := []byte(opts.PasswordHash)
	if len(hash) == 0 {
		if opts.Password == "" {
			return nil, fmt.Errorf("admin password is required")
		}
		generated, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		hash = generated
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}

	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		return nil, fmt.Errorf("currency %q: %w", opts.Currency, err)
	}
	tag, err := language.Parse(opts.Locale)
	if err != nil {
		tag = language.English
	}

	return &AdminService{
		username:     opts.Username,
		passwordHash: hash,
		animals:      animals,
		donations:    donations,
		currency:     unit,
		printer:      message.NewPrinter(tag),
	}, nil
}

// Authenticate returns domain.ErrUnauthorized unless both credentials match.
func (s *AdminService) Authenticate(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

func (s *AdminService) Stats(ctx context.Context) (*Stats, error) {
	animals, err := s.animals.Count(ctx)
	if err != nil {
		return nil, err
	}
	sum, err := s.donations.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Animals:        animals,
		Donations:      sum.Count,
		TotalAmount:    sum.TotalAmount,
		Currency:       s.currency.String(),
		FormattedTotal: s.FormatAmount(sum.TotalAmount),
	}, nil
}

// FormatAmount renders amount with the currency symbol and locale grouping.
func (s *AdminService) FormatAmount(amount float64) string {
	symbol := s.printer.Sprint(currency.Symbol(s.currency))
	return symbol + s.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}
