package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"aidforpaws/internal/domain"
	"aidforpaws/internal/providers/razorpay"
)

// VerifyRequest is a checkout result submitted by the client together with
// the donor details.
type VerifyRequest struct {
	OrderID    string
	PaymentID  string
	Signature  string
	DonorName  string
	DonorEmail string
	AnimalID   string
	Amount     float64
}

// VerifyResult carries the recorded donation. Duplicate is set when the
// payment had already been recorded by an earlier verification.
type VerifyResult struct {
	Donation  *domain.Donation
	Duplicate bool
}

// PaymentService opens gateway orders and records verified payments.
type PaymentService struct {
	gateway   razorpay.Gateway
	verifier  *razorpay.SignatureVerifier
	donations *DonationService
	currency  string
	logger    zerolog.Logger
}

func NewPaymentService(gateway razorpay.Gateway, verifier *razorpay.SignatureVerifier, donations *DonationService, currency string, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		gateway:   gateway,
		verifier:  verifier,
		donations: donations,
		currency:  strings.ToUpper(currency),
		logger:    logger,
	}
}

// CreateOrder opens a gateway order for amount in major units.
func (s *PaymentService) CreateOrder(ctx context.Context, amount float64) (*domain.Order, error) {
	minor := domain.ToMinorUnits(amount)
	if !domain.ValidAmount(amount) || minor <= 0 {
		return nil, domain.NewValidationError("amount", "must be greater than 0")
	}
	order, err := s.gateway.CreateOrder(ctx, domain.OrderRequest{
		Amount:   minor,
		Currency: s.currency,
		Receipt:  newReceipt(),
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", minor).Msg("create order failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	s.logger.Info().Str("order_id", order.ID).Int64("amount", minor).Msg("order created")
	return order, nil
}

// Verify checks the checkout signature and records the donation exactly once.
func (s *PaymentService) Verify(ctx context.Context, req VerifyRequest) (*VerifyResult, error) {
	if !s.verifier.Verify(req.OrderID, req.PaymentID, req.Signature) {
		s.logger.Warn().
			Str("order_id", req.OrderID).
			Str("payment_id", req.PaymentID).
			Msg("payment signature mismatch")
		return nil, domain.ErrSignatureMismatch
	}

	in := domain.DonationInput{
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Amount:     req.Amount,
		AnimalID:   req.AnimalID,
		PaymentID:  req.PaymentID,
	}
	donation, err := s.donations.Create(ctx, in)
	var verr *domain.ValidationError
	switch {
	case err == nil:
		s.logger.Info().Str("donation_id", donation.ID).Str("payment_id", req.PaymentID).Msg("donation recorded")
		return &VerifyResult{Donation: donation}, nil
	case errors.As(err, &verr):
		return nil, renameField(verr, "animal", "animalId")
	case errors.Is(err, domain.ErrDuplicatePayment):
		existing, err := s.donations.GetByPaymentID(ctx, req.PaymentID)
		if err != nil {
			return nil, err
		}
		// Only an identical record counts as a replay of this checkout.
		if existing.DonationInput != in {
			s.logger.Warn().
				Str("donation_id", existing.ID).
				Str("payment_id", req.PaymentID).
				Msg("payment id already recorded with different details")
			return nil, fmt.Errorf("%w: payment %s", domain.ErrDuplicatePayment, req.PaymentID)
		}
		s.logger.Info().Str("donation_id", existing.ID).Str("payment_id", req.PaymentID).Msg("replayed payment verification")
		return &VerifyResult{Donation: unpopulated(existing), Duplicate: true}, nil
	default:
		return nil, err
	}
}

// newReceipt returns a receipt id within the gateway's 40 character limit.
func newReceipt() string {
	return "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// renameField reports a donation field under the name the verify request uses.
func renameField(verr *domain.ValidationError, from, to string) *domain.ValidationError {
	msgs, ok := verr.Fields[from]
	if !ok {
		return verr
	}
	delete(verr.Fields, from)
	verr.Fields[to] = msgs
	return verr
}

func unpopulated(d *domain.Donation) *domain.Donation {
	return &domain.Donation{ID: d.ID, DonationInput: d.DonationInput, CreatedAt: d.CreatedAt}
}
