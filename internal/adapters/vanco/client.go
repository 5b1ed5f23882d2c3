package vanco

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kevin07696/vanco-payment-service/internal/domain/models"
	"github.com/kevin07696/vanco-payment-service/internal/domain/ports"
)

// Gateway endpoints. TestMode selects the UAT host; there is no other
// routing logic.
const (
	liveURL = "https://myvanco.vancopayments.com/cgi-bin/ws2.vps"
	testURL = "https://uat.vancopayments.com/cgi-bin/ws2.vps"

	contentTypeXML = "text/xml"
)

// ClientConfig contains the gateway credentials and endpoint selection.
type ClientConfig struct {
	UserID   string
	Password string
	ClientID string
	TestMode bool
}

// Endpoint returns the URL requests are posted to.
func (c *ClientConfig) Endpoint() string {
	if c.TestMode {
		return testURL
	}
	return liveURL
}

// Client implements ports.PaymentGateway against the Vanco web service.
// Every call runs two strictly sequential steps: a login that opens a
// session, then the operation bound to that session. The operation step
// runs even when login reports a protocol failure; each step's outcome is
// independently inspectable and the operation's outcome is the result.
type Client struct {
	config     *ClientConfig
	httpClient ports.HTTPClient
	logger     *zap.Logger
}

// NewClient creates a gateway client with injected transport and logger.
func NewClient(config *ClientConfig, httpClient ports.HTTPClient, logger *zap.Logger) *Client {
	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

var _ ports.PaymentGateway = (*Client)(nil)

// Purchase implements ports.PaymentGateway.Purchase.
func (c *Client) Purchase(ctx context.Context, amount models.MinorUnits, card *models.CreditCard, opts *models.TransactionOptions) (*models.Outcome, error) {
	c.logger.Info("processing purchase",
		zap.String("amount", amount.String()),
		zap.Bool("test_mode", c.config.TestMode),
	)

	return c.run(ctx, func(session string) (string, error) {
		return buildPurchaseRequest(amount, card, session, c.clientID(opts), opts, time.Now())
	})
}

// Refund implements ports.PaymentGateway.Refund.
func (c *Client) Refund(ctx context.Context, amount models.MinorUnits, authorization string, opts *models.TransactionOptions) (*models.Outcome, error) {
	c.logger.Info("processing refund",
		zap.String("amount", amount.String()),
		zap.Bool("test_mode", c.config.TestMode),
	)

	return c.run(ctx, func(session string) (string, error) {
		return buildRefundRequest(amount, authorization, session, c.clientID(opts), opts, time.Now())
	})
}

// Scrub implements ports.PaymentGateway.Scrub.
func (c *Client) Scrub(transcript string) string {
	return Scrub(transcript)
}

func (c *Client) clientID(opts *models.TransactionOptions) string {
	if opts != nil && opts.ClientID != "" {
		return opts.ClientID
	}
	return c.config.ClientID
}

// run executes the login step, extracts the session id from whatever the
// gateway returned, then commits the operation document. A login decline
// does not short-circuit: the operation is still attempted with the
// resulting session id (possibly empty) and reports its own outcome, with
// the login outcome attached. Transport and parse errors abort the call.
func (c *Client) run(ctx context.Context, build func(sessionID string) (string, error)) (*models.Outcome, error) {
	loginDoc, err := buildLoginRequest(c.config.UserID, c.config.Password, time.Now())
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}

	loginOutcome, err := c.commit(ctx, loginDoc)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if !loginOutcome.Succeeded {
		c.logger.Warn("login step failed, attempting operation anyway",
			zap.String("error_code", loginOutcome.ErrorCode),
			zap.String("message", loginOutcome.Message),
		)
	}

	doc, err := build(sessionID(loginOutcome.Raw))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	outcome, err := c.commit(ctx, doc)
	if err != nil {
		return nil, err
	}
	outcome.Login = loginOutcome
	return outcome, nil
}

// commit posts one request document and normalizes the response into an
// outcome.
func (c *Client) commit(ctx context.Context, doc string) (*models.Outcome, error) {
	body, err := c.post(ctx, doc)
	if err != nil {
		return nil, err
	}

	resp, err := parseResponse(body)
	if err != nil {
		return nil, err
	}

	return resolveOutcome(resp), nil
}

func (c *Client) post(ctx context.Context, doc string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint(), strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeXML)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("gateway exchange",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("request", Scrub(doc)),
		zap.String("response", Scrub(string(body))),
	)

	return body, nil
}
