package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kevin07696/vanco-payment-service/internal/adapters/vanco"
	"github.com/kevin07696/vanco-payment-service/internal/config"
	"github.com/kevin07696/vanco-payment-service/internal/domain/models"
	paymentService "github.com/kevin07696/vanco-payment-service/internal/services/payment"
	pkghttp "github.com/kevin07696/vanco-payment-service/pkg/http"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	// Local .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.Logger)
	defer logger.Sync()

	httpClient := pkghttp.NewHTTPClient(pkghttp.VancoClientConfig(), time.Duration(cfg.Gateway.Timeout)*time.Second)
	gateway := vanco.NewClient(&vanco.ClientConfig{
		UserID:   cfg.Gateway.UserID,
		Password: cfg.Gateway.Password,
		ClientID: cfg.Gateway.ClientID,
		TestMode: cfg.Gateway.TestMode,
	}, httpClient, logger)
	service := paymentService.NewService(gateway, logger)

	ctx := context.Background()

	var outcome *models.Outcome
	switch os.Args[1] {
	case "purchase":
		outcome, err = runPurchase(ctx, service, os.Args[2:])
	case "refund":
		outcome, err = runRefund(ctx, service, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}

	printOutcome(outcome)
	if !outcome.Succeeded {
		os.Exit(1)
	}
}

func runPurchase(ctx context.Context, service *paymentService.Service, args []string) (*models.Outcome, error) {
	fs := flag.NewFlagSet("purchase", flag.ExitOnError)
	amount := fs.Int64("amount", 0, "amount in minor units (cents)")
	number := fs.String("card-number", "", "card number")
	firstName := fs.String("first-name", "", "cardholder first name")
	lastName := fs.String("last-name", "", "cardholder last name")
	month := fs.Int("exp-month", 0, "expiry month (1-12)")
	year := fs.Int("exp-year", 0, "expiry year (four digits)")
	cvv := fs.String("cvv", "", "card verification value")
	fundID := fs.String("fund-id", "", "optional fund designation")
	address1 := fs.String("address1", "", "billing address line 1")
	address2 := fs.String("address2", "", "billing address line 2")
	city := fs.String("city", "", "billing city")
	state := fs.String("state", "", "billing state")
	zip := fs.String("zip", "", "billing zip")
	country := fs.String("country", "US", "billing country code")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return service.Purchase(ctx, paymentService.PurchaseRequest{
		Amount: models.MinorUnits(*amount),
		Card: models.CreditCard{
			Number:            *number,
			FirstName:         *firstName,
			LastName:          *lastName,
			Month:             *month,
			Year:              *year,
			VerificationValue: *cvv,
		},
		Options: models.TransactionOptions{
			FundID: *fundID,
			BillingAddress: &models.BillingAddress{
				Address1:    *address1,
				Address2:    *address2,
				City:        *city,
				State:       *state,
				Zip:         *zip,
				CountryCode: *country,
			},
		},
	})
}

func runRefund(ctx context.Context, service *paymentService.Service, args []string) (*models.Outcome, error) {
	fs := flag.NewFlagSet("refund", flag.ExitOnError)
	amount := fs.Int64("amount", 0, "amount in minor units (cents)")
	authorization := fs.String("authorization", "", "authorization token from the original purchase")
	fundID := fs.String("fund-id", "", "optional fund designation")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return service.Refund(ctx, paymentService.RefundRequest{
		Amount:        models.MinorUnits(*amount),
		Authorization: *authorization,
		Options:       models.TransactionOptions{FundID: *fundID},
	})
}

func printOutcome(outcome *models.Outcome) {
	status := "DECLINED"
	if outcome.Succeeded {
		status = "APPROVED"
	}
	fmt.Printf("%s: %s\n", status, outcome.Message)
	if outcome.ErrorCode != "" {
		fmt.Printf("error code: %s\n", outcome.ErrorCode)
	}
	fmt.Printf("authorization: %s\n", outcome.Authorization)
}

func initLogger(cfg config.LoggerConfig) *zap.Logger {
	if cfg.Development {
		logger, _ := zap.NewDevelopment()
		return logger
	}

	zapCfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: paymentctl <purchase|refund> [flags]")
}
