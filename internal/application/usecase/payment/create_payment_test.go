// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
)

type fakePaymentRepo struct {
	created       *entity.Payment
	createdSched  []*entity.Installment
	createErr     error
	findByIDFn    func(id uuid.UUID) (*entity.Payment, error)
	statsByWindow []*entity.PaymentWithStats
	deleted       []uuid.UUID
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment, schedule []*entity.Installment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = payment
	f.createdSched = schedule
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(id)
	}
	return nil, domainerror.ErrPaymentNotFound
}

func (f *fakePaymentRepo) FindWithStats(_ context.Context, _ adapter.DateWindow) ([]*entity.PaymentWithStats, error) {
	return f.statsByWindow, nil
}

func (f *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if f.categories == nil {
		f.categories = make(map[uuid.UUID]*entity.Category)
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if category, ok := f.categories[id]; ok {
		return category, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	all := make([]*entity.Category, 0, len(f.categories))
	for _, category := range f.categories {
		all = append(all, category)
	}
	return all, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.categories, id)
	return nil
}

func validInput() CreatePaymentInput {
	return CreatePaymentInput{
		Name:         "Laptop",
		Amount:       decimal.RequireFromString("1200.00"),
		StartDate:    time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		IsRecurring:  true,
		Installments: 12,
	}
}

func TestCreatePaymentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates payment with generated schedule", func(t *testing.T) {
		repo := &fakePaymentRepo{}
		uc := NewCreatePaymentUseCase(repo, &fakeCategoryRepo{})

		output, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Schedule) != 12 {
			t.Fatalf("expected 12 installments, got %d", len(output.Schedule))
		}
		for i, installment := range output.Schedule {
			if !installment.Amount.Equal(decimal.RequireFromString("100.00")) {
				t.Errorf("installment %d: expected amount 100.00, got %s", i, installment.Amount)
			}
			if installment.PaymentID != output.Payment.ID {
				t.Errorf("installment %d not linked to payment", i)
			}
		}
		if repo.created == nil {
			t.Error("expected payment to be persisted")
		}
		if len(repo.createdSched) != 12 {
			t.Errorf("expected schedule to be persisted atomically, got %d rows", len(repo.createdSched))
		}
	})

	t.Run("trims payment name", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeCategoryRepo{})
		input := validInput()
		input.Name = "  Laptop  "

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Payment.Name != "Laptop" {
			t.Errorf("expected trimmed name, got %q", output.Payment.Name)
		}
	})

	t.Run("one-time payment gets a single installment", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeCategoryRepo{})
		input := validInput()
		input.IsRecurring = false
		input.Installments = 12

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Schedule) != 1 {
			t.Fatalf("expected 1 installment, got %d", len(output.Schedule))
		}
		if !output.Schedule[0].Amount.Equal(decimal.RequireFromString("1200.00")) {
			t.Errorf("expected full amount on single installment, got %s", output.Schedule[0].Amount)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeCategoryRepo{})
		input := validInput()
		input.Name = "   "

		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrEmptyPaymentName) {
			t.Fatalf("expected ErrEmptyPaymentName, got %v", err)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeCategoryRepo{})
		input := validInput()
		input.Amount = decimal.Zero

		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("rejects zero start date", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeCategoryRepo{})
		input := validInput()
		input.StartDate = time.Time{}

		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidPaymentStartDate) {
			t.Fatalf("expected ErrInvalidPaymentStartDate, got %v", err)
		}
	})

	t.Run("rejects installment count below one", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeCategoryRepo{})
		input := validInput()
		input.Installments = 0

		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidInstallmentCount) {
			t.Fatalf("expected ErrInvalidInstallmentCount, got %v", err)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeCategoryRepo{})
		input := validInput()
		missing := uuid.New()
		input.CategoryID = &missing

		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrCategoryNotFoundForPayment) {
			t.Fatalf("expected ErrCategoryNotFoundForPayment, got %v", err)
		}
	})

	t.Run("accepts existing category", func(t *testing.T) {
		categoryRepo := &fakeCategoryRepo{}
		category := entity.NewCategory("Electronics", "laptop")
		if err := categoryRepo.Create(ctx, category); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, categoryRepo)
		input := validInput()
		input.CategoryID = &category.ID

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Payment.CategoryID == nil || *output.Payment.CategoryID != category.ID {
			t.Error("expected category to be attached")
		}
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		repo := &fakePaymentRepo{createErr: errors.New("disk full")}
		uc := NewCreatePaymentUseCase(repo, &fakeCategoryRepo{})

		if _, err := uc.Execute(ctx, validInput()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
