package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/internal/application/usecase/installment"
	"github.com/loan-tracker/engine/internal/domain/entity"
)

// registerInstallmentSteps registers schedule and paid-state steps.
func registerInstallmentSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the payment "([^"]*)" should have (\d+) installments?$`, thePaymentShouldHaveInstallments)
	ctx.Step(`^installment (\d+) of "([^"]*)" should be "([^"]*)" due "([^"]*)"$`, installmentShouldBeDue)
	ctx.Step(`^the installments of "([^"]*)" should sum to "([^"]*)"$`, installmentsShouldSumTo)
	ctx.Step(`^I mark installment (\d+) of "([^"]*)" as paid$`, iMarkInstallmentPaid)
	ctx.Step(`^I mark installment (\d+) of "([^"]*)" as paid via "([^"]*)"$`, iMarkInstallmentPaidVia)
	ctx.Step(`^I unmark installment (\d+) of "([^"]*)"$`, iUnmarkInstallment)
	ctx.Step(`^installment (\d+) of "([^"]*)" should be paid$`, installmentShouldBePaid)
	ctx.Step(`^installment (\d+) of "([^"]*)" should be unpaid$`, installmentShouldBeUnpaid)
	ctx.Step(`^installment (\d+) of "([^"]*)" should be overdue$`, installmentShouldBeOverdue)
	ctx.Step(`^installment (\d+) of "([^"]*)" should not be overdue$`, installmentShouldNotBeOverdue)
}

// loadSchedule fetches the ordered schedule of a named payment. Positions in
// steps are 1-based.
func loadSchedule(ctx context.Context, tc *TestContext, name string) ([]*entity.InstallmentWithStatus, error) {
	id, ok := tc.payments[name]
	if !ok {
		return nil, fmt.Errorf("unknown payment %q", name)
	}
	output, err := tc.injector.ListInstallments.Execute(ctx, installment.ListInstallmentsInput{PaymentID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	tc.schedules[name] = output.Installments
	return output.Installments, nil
}

func installmentAt(ctx context.Context, tc *TestContext, name string, position int) (*entity.InstallmentWithStatus, error) {
	schedule, err := loadSchedule(ctx, tc, name)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(schedule) {
		return nil, fmt.Errorf("payment %q has %d installments, position %d out of range", name, len(schedule), position)
	}
	return schedule[position-1], nil
}

func thePaymentShouldHaveInstallments(ctx context.Context, name string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	schedule, err := loadSchedule(ctx, tc, name)
	if err != nil {
		return err
	}
	if len(schedule) != count {
		return fmt.Errorf("expected %d installments, got %d", count, len(schedule))
	}
	return nil
}

func installmentShouldBeDue(ctx context.Context, position int, name, amount, due string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	item, err := installmentAt(ctx, tc, name, position)
	if err != nil {
		return err
	}
	expectedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	dueDate, err := parseDate(due)
	if err != nil {
		return err
	}
	if !item.Installment.Amount.Equal(expectedAmount) {
		return fmt.Errorf("expected amount %s, got %s", amount, item.Installment.Amount)
	}
	if !item.Installment.DueDate.Equal(dueDate) {
		return fmt.Errorf("expected due date %s, got %s", due, item.Installment.DueDate.Format("2006-01-02"))
	}
	return nil
}

func installmentsShouldSumTo(ctx context.Context, name, total string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	schedule, err := loadSchedule(ctx, tc, name)
	if err != nil {
		return err
	}
	expected, err := decimal.NewFromString(total)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", total, err)
	}
	sum := decimal.Zero
	for _, item := range schedule {
		sum = sum.Add(item.Installment.Amount)
	}
	if !sum.Equal(expected) {
		return fmt.Errorf("expected schedule sum %s, got %s", total, sum)
	}
	return nil
}

func iMarkInstallmentPaid(ctx context.Context, position int, name string) error {
	return markInstallment(ctx, position, name, "")
}

func iMarkInstallmentPaidVia(ctx context.Context, position int, name, method string) error {
	return markInstallment(ctx, position, name, method)
}

func markInstallment(ctx context.Context, position int, name, method string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	item, err := installmentAt(ctx, tc, name, position)
	if err != nil {
		return err
	}
	_, err = tc.injector.MarkInstallmentPaid.Execute(ctx, installment.MarkInstallmentPaidInput{
		InstallmentID: item.Installment.ID,
		PaymentMethod: method,
	})
	tc.lastErr = err
	return nil
}

func iUnmarkInstallment(ctx context.Context, position int, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	item, err := installmentAt(ctx, tc, name, position)
	if err != nil {
		return err
	}
	_, err = tc.injector.UnmarkInstallmentPaid.Execute(ctx, installment.UnmarkInstallmentPaidInput{
		InstallmentID: item.Installment.ID,
	})
	tc.lastErr = err
	return nil
}

func installmentShouldBePaid(ctx context.Context, position int, name string) error {
	return checkInstallment(ctx, position, name, func(item *entity.InstallmentWithStatus) error {
		if !item.Installment.IsPaid {
			return fmt.Errorf("installment %d of %q is not paid", position, name)
		}
		if item.Installment.PaidDate == nil {
			return fmt.Errorf("installment %d of %q is paid but has no paid date", position, name)
		}
		return nil
	})
}

func installmentShouldBeUnpaid(ctx context.Context, position int, name string) error {
	return checkInstallment(ctx, position, name, func(item *entity.InstallmentWithStatus) error {
		if item.Installment.IsPaid {
			return fmt.Errorf("installment %d of %q is paid", position, name)
		}
		if item.Installment.PaidDate != nil {
			return fmt.Errorf("installment %d of %q is unpaid but keeps a paid date", position, name)
		}
		return nil
	})
}

func installmentShouldBeOverdue(ctx context.Context, position int, name string) error {
	return checkInstallment(ctx, position, name, func(item *entity.InstallmentWithStatus) error {
		if !item.IsOverdue {
			return fmt.Errorf("installment %d of %q is not overdue", position, name)
		}
		return nil
	})
}

func installmentShouldNotBeOverdue(ctx context.Context, position int, name string) error {
	return checkInstallment(ctx, position, name, func(item *entity.InstallmentWithStatus) error {
		if item.IsOverdue {
			return fmt.Errorf("installment %d of %q is overdue", position, name)
		}
		return nil
	})
}

func checkInstallment(ctx context.Context, position int, name string, check func(*entity.InstallmentWithStatus) error) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	item, err := installmentAt(ctx, tc, name, position)
	if err != nil {
		return err
	}
	return check(item)
}
