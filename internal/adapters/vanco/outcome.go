package vanco

import (
	"strings"

	"github.com/kevin07696/vanco-payment-service/internal/domain/models"
)

// Response field keys consulted by outcome resolution.
const (
	keyErrors           = "response_errors"
	keySessionID        = "response_sessionid"
	keyCustomerRef      = "response_customerref"
	keyPaymentMethodRef = "response_paymentmethodref"
	keyTransactionRef   = "response_transactionref"
)

const (
	successMessage = "Success"

	// authorizationDelimiter joins the three gateway references into a
	// single opaque token.
	authorizationDelimiter = "|"
)

// resolveOutcome derives the step outcome from a parsed response. Pure
// function of the mapping; the presence of a protocol error block is the
// sole success criterion.
func resolveOutcome(resp map[string]any) *models.Outcome {
	outcome := &models.Outcome{
		Authorization: composeAuthorization(resp),
		Raw:           resp,
	}

	if _, failed := resp[keyErrors]; !failed {
		outcome.Succeeded = true
		outcome.Message = successMessage
		return outcome
	}

	outcome.Message = errorField(resp, "ErrorDescription")
	outcome.ErrorCode = errorField(resp, "ErrorCode")
	return outcome
}

// composeAuthorization joins the customer, payment-method and transaction
// references. Missing fields degrade to empty components rather than
// failing, so the token always splits back into exactly three parts.
func composeAuthorization(resp map[string]any) string {
	return strings.Join([]string{
		stringField(resp, keyCustomerRef),
		stringField(resp, keyPaymentMethodRef),
		stringField(resp, keyTransactionRef),
	}, authorizationDelimiter)
}

// splitAuthorization decomposes an authorization token into its three
// references, padding with empty strings when components are absent.
func splitAuthorization(authorization string) (customerRef, paymentMethodRef, transactionRef string) {
	parts := strings.SplitN(authorization, authorizationDelimiter, 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return parts[0], parts[1], parts[2]
}

// sessionID extracts the opaque session token from a login response.
func sessionID(resp map[string]any) string {
	return stringField(resp, keySessionID)
}

func stringField(resp map[string]any, key string) string {
	if v, ok := resp[key].(string); ok {
		return v
	}
	return ""
}

// errorField digs the named field out of the nested error block
// (Errors -> Error -> field). Unexpected shapes yield an empty string.
func errorField(resp map[string]any, field string) string {
	errs, ok := resp[keyErrors].(map[string]any)
	if !ok {
		return ""
	}
	inner, ok := errs["Error"].(map[string]any)
	if !ok {
		return ""
	}
	if v, ok := inner[field].(string); ok {
		return v
	}
	return ""
}
