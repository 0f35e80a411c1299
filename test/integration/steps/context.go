// Package steps provides step definitions for BDD integration tests. Each
// scenario runs against its own sqlite file and a pinned clock, driving the
// engine through the injector the way an embedding application would.
package steps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/loan-tracker/engine/config"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
	"github.com/loan-tracker/engine/internal/infra/dependency"
	"github.com/loan-tracker/engine/test/integration/mock"
)

// defaultToday keeps scenarios deterministic unless a step repins the clock.
var defaultToday = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

var suiteDir string

// TestContext holds the test state for each scenario.
type TestContext struct {
	injector *dependency.Injector
	clock    *mock.Clock
	cfg      *config.Config

	// Scenario state
	payments  map[string]uuid.UUID // payment name -> id
	schedules map[string][]*entity.InstallmentWithStatus
	summary   *entity.PaymentSummary
	incomes   *entity.IncomeSummary
	upcoming  []*entity.UpcomingPayment
	lastErr   error
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		dir, err := os.MkdirTemp("", "loan-tracker-features-*")
		if err != nil {
			panic(err)
		}
		suiteDir = dir
	})

	ctx.AfterSuite(func() {
		if suiteDir != "" {
			_ = os.RemoveAll(suiteDir)
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cfg := config.Load()
		cfg.Database.Driver = config.DriverSQLite
		cfg.Database.Path = filepath.Join(suiteDir, uuid.NewString()+".db")

		clock := mock.NewClock(defaultToday)

		tc := &TestContext{
			injector:  dependency.NewInjector(cfg, clock),
			clock:     clock,
			cfg:       cfg,
			payments:  make(map[string]uuid.UUID),
			schedules: make(map[string][]*entity.InstallmentWithStatus),
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.injector != nil {
			_ = tc.injector.Close()
		}
		return ctx, nil
	})

	registerClockSteps(ctx)
	registerPaymentSteps(ctx)
	registerInstallmentSteps(ctx)
	registerIncomeSteps(ctx)
	registerSummarySteps(ctx)
	registerErrorSteps(ctx)
}

// registerClockSteps registers time control steps.
func registerClockSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^today is "([^"]*)"$`, todayIs)
	ctx.Step(`^(\d+) days pass$`, daysPass)
	ctx.Step(`^the ledger is empty$`, theLedgerIsEmpty)
}

// registerErrorSteps registers failure assertion steps.
func registerErrorSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the operation should fail$`, theOperationShouldFail)
	ctx.Step(`^the operation should fail with code "([^"]*)"$`, theOperationShouldFailWithCode)
	ctx.Step(`^the operation should succeed$`, theOperationShouldSucceed)
}

func todayIs(ctx context.Context, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	today, err := parseDate(date)
	if err != nil {
		return err
	}
	tc.clock.SetCurrentTime(today)
	return nil
}

func daysPass(ctx context.Context, days int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.clock.Advance(days)
	return nil
}

func theLedgerIsEmpty(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.injector.ResetStore.Execute(ctx)
	return err
}

func theOperationShouldFail(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.lastErr == nil {
		return fmt.Errorf("expected an error, got none")
	}
	return nil
}

func theOperationShouldFailWithCode(ctx context.Context, code string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.lastErr == nil {
		return fmt.Errorf("expected error with code %s, got none", code)
	}
	actual := errorCode(tc.lastErr)
	if actual == "" {
		return fmt.Errorf("error %q carries no code", tc.lastErr)
	}
	if actual != code {
		return fmt.Errorf("expected code %s, got %s", code, actual)
	}
	return nil
}

// errorCode extracts the structured code from any of the engine's coded
// error types.
func errorCode(err error) string {
	var payErr *domainerror.PaymentError
	if errors.As(err, &payErr) {
		return string(payErr.Code)
	}
	var insErr *domainerror.InstallmentError
	if errors.As(err, &insErr) {
		return string(insErr.Code)
	}
	var incErr *domainerror.IncomeError
	if errors.As(err, &incErr) {
		return string(incErr.Code)
	}
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		return string(catErr.Code)
	}
	var schErr *domainerror.ScheduleError
	if errors.As(err, &schErr) {
		return string(schErr.Code)
	}
	var stoErr *domainerror.StorageError
	if errors.As(err, &stoErr) {
		return string(stoErr.Code)
	}
	return ""
}

func theOperationShouldSucceed(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.lastErr != nil {
		return fmt.Errorf("expected success, got %v", tc.lastErr)
	}
	return nil
}

func parseDate(date string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return parsed.UTC(), nil
}
