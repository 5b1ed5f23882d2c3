package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kevin07696/vanco-payment-service/internal/domain/models"
	"github.com/kevin07696/vanco-payment-service/internal/domain/ports"
	pkgerrors "github.com/kevin07696/vanco-payment-service/pkg/errors"
	"github.com/kevin07696/vanco-payment-service/pkg/observability"
)

// Service fronts the payment gateway: it validates inputs, attaches a
// correlation id to every call, and records transaction metrics. Protocol
// declines pass through as outcomes; only invalid input and transport or
// parse failures surface as errors.
type Service struct {
	gateway ports.PaymentGateway
	logger  *zap.Logger
}

// NewService creates a new payment service
func NewService(gateway ports.PaymentGateway, logger *zap.Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// PurchaseRequest carries the inputs for a sale.
type PurchaseRequest struct {
	Amount  models.MinorUnits
	Card    models.CreditCard
	Options models.TransactionOptions
}

// RefundRequest carries the inputs for a credit against a prior sale.
type RefundRequest struct {
	Amount        models.MinorUnits
	Authorization string
	Options       models.TransactionOptions
}

// Purchase validates the request and submits the sale.
func (s *Service) Purchase(ctx context.Context, req PurchaseRequest) (*models.Outcome, error) {
	if err := validatePurchase(&req); err != nil {
		return nil, err
	}

	correlationID := uuid.New().String()
	s.logger.Info("purchase requested",
		zap.String("correlation_id", correlationID),
		zap.String("amount", req.Amount.String()),
		zap.String("fund_id", req.Options.FundID),
	)

	outcome, err := s.observe(ctx, "purchase", correlationID, func(ctx context.Context) (*models.Outcome, error) {
		return s.gateway.Purchase(ctx, req.Amount, &req.Card, &req.Options)
	})
	if err != nil {
		return nil, fmt.Errorf("purchase: %w", err)
	}
	return outcome, nil
}

// Refund validates the request and submits the credit.
func (s *Service) Refund(ctx context.Context, req RefundRequest) (*models.Outcome, error) {
	if err := validateRefund(&req); err != nil {
		return nil, err
	}

	correlationID := uuid.New().String()
	s.logger.Info("refund requested",
		zap.String("correlation_id", correlationID),
		zap.String("amount", req.Amount.String()),
	)

	outcome, err := s.observe(ctx, "refund", correlationID, func(ctx context.Context) (*models.Outcome, error) {
		return s.gateway.Refund(ctx, req.Amount, req.Authorization, &req.Options)
	})
	if err != nil {
		return nil, fmt.Errorf("refund: %w", err)
	}
	return outcome, nil
}

// Scrub redacts sensitive fields from a gateway transcript.
func (s *Service) Scrub(transcript string) string {
	return s.gateway.Scrub(transcript)
}

// observe wraps one gateway call with metrics and result logging.
func (s *Service) observe(ctx context.Context, operation, correlationID string, call func(ctx context.Context) (*models.Outcome, error)) (*models.Outcome, error) {
	done := observability.TrackInFlight()
	defer done()

	start := time.Now()
	outcome, err := call(ctx)
	elapsed := time.Since(start)

	result := observability.ResultError
	switch {
	case err != nil:
		s.logger.Error("gateway call failed",
			zap.String("correlation_id", correlationID),
			zap.String("operation", operation),
			zap.Error(err),
		)
	case outcome.Succeeded:
		result = observability.ResultApproved
	default:
		result = observability.ResultDeclined
		s.logger.Info("gateway declined",
			zap.String("correlation_id", correlationID),
			zap.String("operation", operation),
			zap.String("error_code", outcome.ErrorCode),
			zap.String("message", outcome.Message),
		)
	}
	observability.ObserveTransaction(operation, result, elapsed)

	return outcome, err
}

func validatePurchase(req *PurchaseRequest) error {
	if req.Amount <= 0 {
		return pkgerrors.NewValidationError("amount", "must be a positive number of minor units")
	}
	if req.Card.Number == "" {
		return pkgerrors.NewValidationError("card.number", "is required")
	}
	if req.Card.FirstName == "" || req.Card.LastName == "" {
		return pkgerrors.NewValidationError("card.name", "first and last name are required")
	}
	if req.Card.Month < 1 || req.Card.Month > 12 {
		return pkgerrors.NewValidationError("card.month", "must be between 1 and 12")
	}
	if req.Card.Year < 1000 {
		return pkgerrors.NewValidationError("card.year", "must be a four digit year")
	}
	if req.Card.VerificationValue == "" {
		return pkgerrors.NewValidationError("card.verification_value", "is required")
	}
	return nil
}

func validateRefund(req *RefundRequest) error {
	if req.Amount <= 0 {
		return pkgerrors.NewValidationError("amount", "must be a positive number of minor units")
	}
	if req.Authorization == "" {
		return pkgerrors.NewValidationError("authorization", "is required")
	}
	return nil
}
