package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cashflow-api/internal/model"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(model.User), args.Error(1)
}

type mockExpenseRepo struct {
	mock.Mock
}

func (m *mockExpenseRepo) FindByID(ctx context.Context, id int64) (model.Expense, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Expense), args.Error(1)
}

func (m *mockExpenseRepo) ListByUser(ctx context.Context, userID int64) ([]model.Expense, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *mockExpenseRepo) ListAll(ctx context.Context) ([]model.Expense, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *mockExpenseRepo) Create(ctx context.Context, e model.Expense) (model.Expense, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(model.Expense), args.Error(1)
}

func (m *mockExpenseRepo) Update(ctx context.Context, e model.Expense) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// inlineTx runs fn directly and counts how often a unit of work was opened.
type inlineTx struct {
	calls int
}

func (tx *inlineTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}
