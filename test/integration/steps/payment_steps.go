package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/internal/application/usecase/payment"
)

// registerPaymentSteps registers payment lifecycle steps.
func registerPaymentSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I create a payment "([^"]*)" of "([^"]*)" starting "([^"]*)" split into (\d+) installments$`, iCreateAPayment)
	ctx.Step(`^I create a one-time payment "([^"]*)" of "([^"]*)" due "([^"]*)"$`, iCreateAOneTimePayment)
	ctx.Step(`^I try to create a payment "([^"]*)" of "([^"]*)" starting "([^"]*)" split into (\d+) installments$`, iTryToCreateAPayment)
	ctx.Step(`^I delete the payment "([^"]*)"$`, iDeleteThePayment)
	ctx.Step(`^the payment "([^"]*)" should show (\d+) of (\d+) installments paid$`, thePaymentShouldShowPaid)
	ctx.Step(`^the payment "([^"]*)" should show total paid "([^"]*)"$`, thePaymentShouldShowTotalPaid)
	ctx.Step(`^the payment "([^"]*)" should show progress (\d+(?:\.\d+)?)%$`, thePaymentShouldShowProgress)
	ctx.Step(`^listing payments should return (\d+) payments?$`, listingPaymentsShouldReturn)
}

func createPayment(ctx context.Context, tc *TestContext, name, amount, start string, installments int, recurring bool) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	startDate, err := parseDate(start)
	if err != nil {
		return err
	}

	output, err := tc.injector.CreatePayment.Execute(ctx, payment.CreatePaymentInput{
		Name:         name,
		Amount:       parsedAmount,
		StartDate:    startDate,
		IsRecurring:  recurring,
		Installments: installments,
	})
	tc.lastErr = err
	if err != nil {
		return nil
	}

	tc.payments[name] = output.Payment.ID
	return nil
}

func iCreateAPayment(ctx context.Context, name, amount, start string, installments int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := createPayment(ctx, tc, name, amount, start, installments, true); err != nil {
		return err
	}
	if tc.lastErr != nil {
		return fmt.Errorf("failed to create payment: %w", tc.lastErr)
	}
	return nil
}

func iCreateAOneTimePayment(ctx context.Context, name, amount, due string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := createPayment(ctx, tc, name, amount, due, 1, false); err != nil {
		return err
	}
	if tc.lastErr != nil {
		return fmt.Errorf("failed to create payment: %w", tc.lastErr)
	}
	return nil
}

// iTryToCreateAPayment records the error instead of failing the step, for
// scenarios that assert on validation failures.
func iTryToCreateAPayment(ctx context.Context, name, amount, start string, installments int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return createPayment(ctx, tc, name, amount, start, installments, true)
}

func iDeleteThePayment(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	id, ok := tc.payments[name]
	if !ok {
		return fmt.Errorf("unknown payment %q", name)
	}
	_, err := tc.injector.DeletePayment.Execute(ctx, payment.DeletePaymentInput{PaymentID: id})
	tc.lastErr = err
	return nil
}

func findPaymentStats(ctx context.Context, tc *TestContext, name string) (*payment.GetPaymentOutput, error) {
	id, ok := tc.payments[name]
	if !ok {
		return nil, fmt.Errorf("unknown payment %q", name)
	}
	return tc.injector.GetPayment.Execute(ctx, payment.GetPaymentInput{PaymentID: id})
}

func thePaymentShouldShowPaid(ctx context.Context, name string, paid, total int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	output, err := findPaymentStats(ctx, tc, name)
	if err != nil {
		return err
	}
	stats := output.Detail.Payment
	if stats.PaidInstallments != paid || stats.TotalInstallments != total {
		return fmt.Errorf("expected %d of %d paid, got %d of %d",
			paid, total, stats.PaidInstallments, stats.TotalInstallments)
	}
	return nil
}

func thePaymentShouldShowTotalPaid(ctx context.Context, name, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	output, err := findPaymentStats(ctx, tc, name)
	if err != nil {
		return err
	}
	expectedAmount, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", expected, err)
	}
	if !output.Detail.Payment.TotalPaid.Equal(expectedAmount) {
		return fmt.Errorf("expected total paid %s, got %s", expected, output.Detail.Payment.TotalPaid)
	}
	return nil
}

func thePaymentShouldShowProgress(ctx context.Context, name string, expected float64) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	output, err := findPaymentStats(ctx, tc, name)
	if err != nil {
		return err
	}
	actual := output.Detail.Payment.Progress
	if diff := actual - expected; diff > 0.01 || diff < -0.01 {
		return fmt.Errorf("expected progress %.2f%%, got %.2f%%", expected, actual)
	}
	return nil
}

func listingPaymentsShouldReturn(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	output, err := tc.injector.ListPayments.Execute(ctx, payment.ListPaymentsInput{})
	if err != nil {
		return fmt.Errorf("failed to list payments: %w", err)
	}
	if len(output.Payments) != count {
		return fmt.Errorf("expected %d payments, got %d", count, len(output.Payments))
	}
	return nil
}
