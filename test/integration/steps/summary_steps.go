package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/loan-tracker/engine/internal/application/usecase/summary"
)

// registerSummarySteps registers payment summary and upcoming payment steps.
func registerSummarySteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the payment summary total amount should be "([^"]*)"$`, thePaymentSummaryTotalAmountShouldBe)
	ctx.Step(`^the payment summary total paid should be "([^"]*)"$`, thePaymentSummaryTotalPaidShouldBe)
	ctx.Step(`^the payment summary total remaining should be "([^"]*)"$`, thePaymentSummaryTotalRemainingShouldBe)
	ctx.Step(`^the payment summary should count (\d+) payments$`, thePaymentSummaryShouldCountPayments)
	ctx.Step(`^the payment summary should count (\d+) overdue installments?$`, thePaymentSummaryShouldCountOverdue)
	ctx.Step(`^the payment summary monthly payment should be "([^"]*)"$`, thePaymentSummaryMonthlyPaymentShouldBe)
	ctx.Step(`^the upcoming payments should list (\d+) entries$`, theUpcomingPaymentsShouldListEntries)
	ctx.Step(`^upcoming payment (\d+) should be "([^"]*)" of "([^"]*)" due "([^"]*)"$`, upcomingPaymentShouldBe)
}

func loadPaymentSummary(ctx context.Context, tc *TestContext) error {
	output, err := tc.injector.PaymentSummary.Execute(ctx, summary.PaymentSummaryInput{})
	if err != nil {
		return fmt.Errorf("failed to compute payment summary: %w", err)
	}
	tc.summary = output.Summary
	return nil
}

func thePaymentSummaryTotalAmountShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := loadPaymentSummary(ctx, tc); err != nil {
		return err
	}
	return expectAmount("total amount", tc.summary.TotalAmount, expected)
}

func thePaymentSummaryTotalPaidShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := loadPaymentSummary(ctx, tc); err != nil {
		return err
	}
	return expectAmount("total paid", tc.summary.TotalPaid, expected)
}

func thePaymentSummaryTotalRemainingShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := loadPaymentSummary(ctx, tc); err != nil {
		return err
	}
	return expectAmount("total remaining", tc.summary.TotalRemaining, expected)
}

func thePaymentSummaryShouldCountPayments(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := loadPaymentSummary(ctx, tc); err != nil {
		return err
	}
	if tc.summary.TotalPayments != count {
		return fmt.Errorf("expected %d payments in summary, got %d", count, tc.summary.TotalPayments)
	}
	return nil
}

func thePaymentSummaryShouldCountOverdue(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := loadPaymentSummary(ctx, tc); err != nil {
		return err
	}
	if tc.summary.OverdueCount != count {
		return fmt.Errorf("expected %d overdue installments, got %d", count, tc.summary.OverdueCount)
	}
	return nil
}

func thePaymentSummaryMonthlyPaymentShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := loadPaymentSummary(ctx, tc); err != nil {
		return err
	}
	return expectAmount("monthly payment", tc.summary.MonthlyPayment, expected)
}

func theUpcomingPaymentsShouldListEntries(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	output, err := tc.injector.UpcomingPayments.Execute(ctx, summary.UpcomingPaymentsInput{})
	if err != nil {
		return fmt.Errorf("failed to list upcoming payments: %w", err)
	}
	tc.upcoming = output.Payments
	if len(tc.upcoming) != count {
		return fmt.Errorf("expected %d upcoming payments, got %d", count, len(tc.upcoming))
	}
	return nil
}

func upcomingPaymentShouldBe(ctx context.Context, position int, name, amount, due string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if position < 1 || position > len(tc.upcoming) {
		return fmt.Errorf("upcoming position %d out of range, have %d entries", position, len(tc.upcoming))
	}
	entry := tc.upcoming[position-1]
	if entry.Name != name {
		return fmt.Errorf("expected upcoming payment %q, got %q", name, entry.Name)
	}
	if err := expectAmount("upcoming amount", entry.Amount, amount); err != nil {
		return err
	}
	dueDate, err := parseDate(due)
	if err != nil {
		return err
	}
	if !entry.DueDate.Equal(dueDate) {
		return fmt.Errorf("expected due date %s, got %s", due, entry.DueDate.Format("2006-01-02"))
	}
	return nil
}
