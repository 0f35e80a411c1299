package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/internal/application/usecase/income"
	"github.com/loan-tracker/engine/internal/application/usecase/summary"
)

// registerIncomeSteps registers income recording and summary steps.
func registerIncomeSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I record an income "([^"]*)" of "([^"]*)" on "([^"]*)"$`, iRecordAnIncome)
	ctx.Step(`^I try to record an income "([^"]*)" of "([^"]*)" on "([^"]*)"$`, iTryToRecordAnIncome)
	ctx.Step(`^listing incomes should return (\d+) incomes?$`, listingIncomesShouldReturn)
	ctx.Step(`^the income summary total should be "([^"]*)"$`, theIncomeSummaryTotalShouldBe)
	ctx.Step(`^the income summary monthly total should be "([^"]*)"$`, theIncomeSummaryMonthlyTotalShouldBe)
	ctx.Step(`^the income summary yearly total should be "([^"]*)"$`, theIncomeSummaryYearlyTotalShouldBe)
}

func recordIncome(ctx context.Context, tc *TestContext, name, amount, date string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := parseDate(date)
	if err != nil {
		return err
	}
	_, err = tc.injector.CreateIncome.Execute(ctx, income.CreateIncomeInput{
		Name:   name,
		Amount: parsedAmount,
		Date:   parsedDate,
	})
	tc.lastErr = err
	return nil
}

func iRecordAnIncome(ctx context.Context, name, amount, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := recordIncome(ctx, tc, name, amount, date); err != nil {
		return err
	}
	if tc.lastErr != nil {
		return fmt.Errorf("failed to record income: %w", tc.lastErr)
	}
	return nil
}

func iTryToRecordAnIncome(ctx context.Context, name, amount, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return recordIncome(ctx, tc, name, amount, date)
}

func listingIncomesShouldReturn(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	output, err := tc.injector.ListIncomes.Execute(ctx, income.ListIncomesInput{})
	if err != nil {
		return fmt.Errorf("failed to list incomes: %w", err)
	}
	if len(output.Incomes) != count {
		return fmt.Errorf("expected %d incomes, got %d", count, len(output.Incomes))
	}
	return nil
}

func loadIncomeSummary(ctx context.Context, tc *TestContext) error {
	output, err := tc.injector.IncomeSummary.Execute(ctx, summary.IncomeSummaryInput{})
	if err != nil {
		return fmt.Errorf("failed to compute income summary: %w", err)
	}
	tc.incomes = output.Summary
	return nil
}

func theIncomeSummaryTotalShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := loadIncomeSummary(ctx, tc); err != nil {
		return err
	}
	return expectAmount("total amount", tc.incomes.TotalAmount, expected)
}

func theIncomeSummaryMonthlyTotalShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := loadIncomeSummary(ctx, tc); err != nil {
		return err
	}
	return expectAmount("monthly total", tc.incomes.MonthlyTotal, expected)
}

func theIncomeSummaryYearlyTotalShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := loadIncomeSummary(ctx, tc); err != nil {
		return err
	}
	return expectAmount("yearly total", tc.incomes.YearlyTotal, expected)
}

// expectAmount compares a decimal against its expected textual form.
func expectAmount(label string, actual decimal.Decimal, expected string) error {
	want, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", expected, err)
	}
	if !actual.Equal(want) {
		return fmt.Errorf("expected %s %s, got %s", label, expected, actual)
	}
	return nil
}
