package vanco

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/kevin07696/vanco-payment-service/internal/domain/models"
	"github.com/kevin07696/vanco-payment-service/pkg/timeutil"
)

// Request types understood by the gateway.
const (
	requestTypeLogin    = "Login"
	requestTypePurchase = "EFTAddCompleteTransaction"
	requestTypeRefund   = "EFTAddCredit"
)

const (
	rootTag         = "VancoWS"
	protocolVersion = "2"

	// Fixed operational markers for web-originated one-time card payments.
	accountTypeCard    = "CC"
	transactionTypeWeb = "WEB"
	startDateImmediate = "0000-00-00"
	frequencyOneTime   = "O"
	refundContactName  = "Customer Services"
	refundReason       = "Refund"
)

// newRequestID returns the protocol's per-request token: 30 hex characters.
func newRequestID() string {
	b := make([]byte, 15)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// authElement builds the Auth block shared by every request. Login requests
// carry no SessionID; every other request binds itself to the session the
// login step produced.
func authElement(requestType, sessionID string, now time.Time) Element {
	children := []Element{
		leaf("RequestType", requestType),
		leaf("RequestID", newRequestID()),
		leaf("RequestTime", timeutil.ProtocolTimestamp(now)),
	}
	if sessionID != "" {
		children = append(children, leaf("SessionID", sessionID))
	}
	children = append(children, leaf("Version", protocolVersion))
	return node("Auth", children...)
}

// amountElements renders the amount block. A fund designation switches the
// structure from a lone Amount element to a Funds/Fund block; both carry
// the same monetary value. Options are an explicit parameter on every path
// so the fund designation always comes from the call the amount belongs to.
func amountElements(amount models.MinorUnits, opts *models.TransactionOptions) []Element {
	if opts == nil || opts.FundID == "" {
		return []Element{leaf("Amount", amount.String())}
	}
	return []Element{
		node("Funds",
			node("Fund",
				leaf("FundID", opts.FundID),
				leaf("FundAmount", amount.String()),
			),
		),
	}
}

// buildLoginRequest composes the session-opening request.
func buildLoginRequest(userID, password string, now time.Time) (string, error) {
	doc := node(rootTag,
		authElement(requestTypeLogin, "", now),
		node("Request",
			node("RequestVars",
				leaf("UserID", userID),
				leaf("Password", password),
			),
		),
	)
	return renderDocument(doc)
}

// buildPurchaseRequest composes an EFTAddCompleteTransaction request bound
// to the given session.
func buildPurchaseRequest(amount models.MinorUnits, card *models.CreditCard, sessionID, clientID string, opts *models.TransactionOptions, now time.Time) (string, error) {
	vars := []Element{leaf("ClientID", clientID)}
	vars = append(vars, amountElements(amount, opts)...)
	vars = append(vars, cardElements(card, opts)...)
	vars = append(vars,
		leaf("AccountType", accountTypeCard),
		leaf("TransactionTypeCode", transactionTypeWeb),
		leaf("StartDate", startDateImmediate),
		leaf("FrequencyCode", frequencyOneTime),
	)

	doc := node(rootTag,
		authElement(requestTypePurchase, sessionID, now),
		node("Request", node("RequestVars", vars...)),
	)
	return renderDocument(doc)
}

// buildRefundRequest composes an EFTAddCredit request against the three
// references packed into the authorization token.
func buildRefundRequest(amount models.MinorUnits, authorization, sessionID, clientID string, opts *models.TransactionOptions, now time.Time) (string, error) {
	customerRef, paymentMethodRef, transactionRef := splitAuthorization(authorization)

	vars := []Element{leaf("ClientID", clientID)}
	vars = append(vars, amountElements(amount, opts)...)
	vars = append(vars,
		leaf("CustomerRef", customerRef),
		leaf("PaymentMethodRef", paymentMethodRef),
		leaf("TransactionRef", transactionRef),
		leaf("ContactName", refundContactName),
		leaf("ReasonForCredit", refundReason),
	)

	doc := node(rootTag,
		authElement(requestTypeRefund, sessionID, now),
		node("Request", node("RequestVars", vars...)),
	)
	return renderDocument(doc)
}

// cardElements renders the full card and billing field set in protocol
// order. The gateway wants the cardholder as "Last, First" and two-digit
// expiry components.
func cardElements(card *models.CreditCard, opts *models.TransactionOptions) []Element {
	els := []Element{
		leaf("AccountNumber", card.Number),
		leaf("CustomerName", fmt.Sprintf("%s, %s", card.LastName, card.FirstName)),
		leaf("CardExpMonth", fmt.Sprintf("%02d", card.Month)),
		leaf("CardExpYear", fmt.Sprintf("%02d", card.Year%100)),
		leaf("CardCVV2", card.VerificationValue),
		leaf("CardBillingName", fmt.Sprintf("%s %s", card.FirstName, card.LastName)),
	}

	var addr models.BillingAddress
	if opts != nil && opts.BillingAddress != nil {
		addr = *opts.BillingAddress
	}
	els = append(els,
		leaf("CardBillingAddr1", addr.Address1),
		leaf("CardBillingAddr2", addr.Address2),
		leaf("CardBillingCity", addr.City),
		leaf("CardBillingState", addr.State),
		leaf("CardBillingZip", addr.Zip),
		leaf("CardBillingCountryCode", addr.CountryCode),
	)
	return els
}
