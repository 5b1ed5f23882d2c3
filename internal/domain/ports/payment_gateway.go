package ports

import (
	"context"

	"github.com/kevin07696/vanco-payment-service/internal/domain/models"
)

// PaymentGateway is the processor-facing port. Implementations run the
// protocol's login-then-operation sequence and report the operation's
// outcome; protocol declines come back as non-succeeded outcomes, errors
// are reserved for transport and parse failures.
type PaymentGateway interface {
	// Purchase submits a sale for the given amount.
	Purchase(ctx context.Context, amount models.MinorUnits, card *models.CreditCard, opts *models.TransactionOptions) (*models.Outcome, error)

	// Refund submits a credit against a previously returned authorization
	// token.
	Refund(ctx context.Context, amount models.MinorUnits, authorization string, opts *models.TransactionOptions) (*models.Outcome, error)

	// Scrub redacts credentials and card data from a request/response
	// transcript before it is logged or stored.
	Scrub(transcript string) string
}
