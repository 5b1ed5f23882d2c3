package models

import (
	"github.com/shopspring/decimal"
)

// MinorUnits is a monetary amount in the smallest currency unit (cents).
// The gateway protocol carries amounts as two-decimal strings, so all
// conversion happens at the request boundary.
type MinorUnits int64

// Decimal returns the amount as a major-unit decimal (1234 -> 12.34).
func (m MinorUnits) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String renders the amount the way the gateway expects it, always with
// two decimal places (5 -> "0.05").
func (m MinorUnits) String() string {
	return m.Decimal().StringFixed(2)
}

// CreditCard holds already-validated card input for a purchase.
type CreditCard struct {
	Number            string
	FirstName         string
	LastName          string
	Month             int // 1-12
	Year              int // four digits
	VerificationValue string
}

// BillingAddress is the card billing address sent with a purchase.
type BillingAddress struct {
	Address1    string
	Address2    string
	City        string
	State       string
	Zip         string
	CountryCode string
}

// TransactionOptions carries per-call options for purchase and refund.
// FundID switches the request's amount block from a plain Amount element
// to a Funds/Fund designation.
type TransactionOptions struct {
	// ClientID overrides the configured client id when non-empty.
	ClientID string

	// FundID designates a fund the amount is applied to.
	FundID string

	BillingAddress *BillingAddress
}

// Outcome is the normalized result of one gateway step. Protocol-level
// declines are represented here, never as Go errors, so callers branch on
// Succeeded uniformly.
type Outcome struct {
	Succeeded bool

	// Message is "Success" on success, otherwise the gateway's error
	// description.
	Message string

	// ErrorCode is empty on success.
	ErrorCode string

	// Authorization is the delimiter-joined triple of gateway references
	// identifying the transaction. It is computed even on failure, with
	// empty components substituted for missing fields.
	Authorization string

	// Raw is the flattened response mapping the outcome was derived from.
	Raw map[string]any

	// Login holds the preceding login step's outcome when this outcome
	// terminates a login-then-operation sequence.
	Login *Outcome
}
