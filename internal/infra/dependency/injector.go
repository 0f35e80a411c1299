// Package dependency provides dependency injection for the engine.
package dependency

import (
	"github.com/loan-tracker/engine/config"
	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/application/usecase/category"
	"github.com/loan-tracker/engine/internal/application/usecase/income"
	"github.com/loan-tracker/engine/internal/application/usecase/installment"
	"github.com/loan-tracker/engine/internal/application/usecase/maintenance"
	"github.com/loan-tracker/engine/internal/application/usecase/payment"
	"github.com/loan-tracker/engine/internal/application/usecase/summary"
	"github.com/loan-tracker/engine/internal/infra/db"
	"github.com/loan-tracker/engine/internal/integration/adapters"
	"github.com/loan-tracker/engine/internal/integration/persistence"
)

// Injector holds the wired engine. Its use case fields are the engine's
// public operations; embedding callers invoke them directly.
type Injector struct {
	Config *config.Config
	Store  *db.Store

	CreatePayment *payment.CreatePaymentUseCase
	ListPayments  *payment.ListPaymentsUseCase
	GetPayment    *payment.GetPaymentUseCase
	DeletePayment *payment.DeletePaymentUseCase

	ListInstallments      *installment.ListInstallmentsUseCase
	MarkInstallmentPaid   *installment.MarkInstallmentPaidUseCase
	UnmarkInstallmentPaid *installment.UnmarkInstallmentPaidUseCase

	CreateIncome *income.CreateIncomeUseCase
	ListIncomes  *income.ListIncomesUseCase
	DeleteIncome *income.DeleteIncomeUseCase

	CreateCategory *category.CreateCategoryUseCase
	ListCategories *category.ListCategoriesUseCase
	DeleteCategory *category.DeleteCategoryUseCase

	PaymentSummary   *summary.PaymentSummaryUseCase
	IncomeSummary    *summary.IncomeSummaryUseCase
	UpcomingPayments *summary.UpcomingPaymentsUseCase

	ResetStore *maintenance.ResetStoreUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil clock defaults to the system clock.
func NewInjector(cfg *config.Config, clock adapter.Clock) *Injector {
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	store := db.NewStore(&cfg.Database)

	// Create repositories
	paymentRepo := persistence.NewPaymentRepository(store)
	installmentRepo := persistence.NewInstallmentRepository(store)
	incomeRepo := persistence.NewIncomeRepository(store)
	categoryRepo := persistence.NewCategoryRepository(store)
	summaryRepo := persistence.NewSummaryRepository(store)

	return &Injector{
		Config: cfg,
		Store:  store,

		CreatePayment: payment.NewCreatePaymentUseCase(paymentRepo, categoryRepo),
		ListPayments:  payment.NewListPaymentsUseCase(paymentRepo),
		GetPayment:    payment.NewGetPaymentUseCase(paymentRepo, installmentRepo, clock),
		DeletePayment: payment.NewDeletePaymentUseCase(paymentRepo),

		ListInstallments:      installment.NewListInstallmentsUseCase(paymentRepo, installmentRepo, clock),
		MarkInstallmentPaid:   installment.NewMarkInstallmentPaidUseCase(installmentRepo, clock),
		UnmarkInstallmentPaid: installment.NewUnmarkInstallmentPaidUseCase(installmentRepo),

		CreateIncome: income.NewCreateIncomeUseCase(incomeRepo),
		ListIncomes:  income.NewListIncomesUseCase(incomeRepo),
		DeleteIncome: income.NewDeleteIncomeUseCase(incomeRepo),

		CreateCategory: category.NewCreateCategoryUseCase(categoryRepo),
		ListCategories: category.NewListCategoriesUseCase(categoryRepo),
		DeleteCategory: category.NewDeleteCategoryUseCase(categoryRepo),

		PaymentSummary:   summary.NewPaymentSummaryUseCase(summaryRepo, clock),
		IncomeSummary:    summary.NewIncomeSummaryUseCase(incomeRepo, clock),
		UpcomingPayments: summary.NewUpcomingPaymentsUseCase(summaryRepo, clock, &cfg.Summary),

		ResetStore: maintenance.NewResetStoreUseCase(store),
	}
}

// Close releases the underlying store connection.
func (i *Injector) Close() error {
	return i.Store.Close()
}
