package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cashflow-api/internal/model"
	"cashflow-api/internal/security"
)

type ExpenseReader interface {
	FindByID(ctx context.Context, id int64) (model.Expense, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Expense, error)
	ListAll(ctx context.Context) ([]model.Expense, error)
}

type ExpenseWriter interface {
	Create(ctx context.Context, e model.Expense) (model.Expense, error)
	Delete(ctx context.Context, id int64) error
}

type ExpenseUpdater interface {
	Update(ctx context.Context, e model.Expense) error
}

// Transactor commits the work done by fn as one unit.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ExpenseService struct {
	reader  ExpenseReader
	writer  ExpenseWriter
	updater ExpenseUpdater
	tx      Transactor
}

func NewExpenseService(reader ExpenseReader, writer ExpenseWriter, updater ExpenseUpdater, tx Transactor) *ExpenseService {
	return &ExpenseService{reader: reader, writer: writer, updater: updater, tx: tx}
}

func (s *ExpenseService) Register(ctx context.Context, actor model.Identity, req model.ExpenseRequest) (model.RegisteredExpense, error) {
	var created model.Expense
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.writer.Create(ctx, expenseFromRequest(req, actor.UserID))
		return err
	})
	if errors.Is(err, model.ErrInvalidInput) {
		return model.RegisteredExpense{}, errInvalidInput()
	}
	if err != nil {
		return model.RegisteredExpense{}, fmt.Errorf("register expense: %w", err)
	}

	slog.InfoContext(ctx, "expense registered", "expense_id", created.ID, "user_id", actor.UserID)
	return model.RegisteredExpense{ID: created.ID, Title: created.Title}, nil
}

// List returns the actor's own expenses, or every expense for an admin.
func (s *ExpenseService) List(ctx context.Context, actor model.Identity) (model.ExpenseList, error) {
	var (
		expenses []model.Expense
		err      error
	)
	if actor.Role == model.RoleAdmin {
		expenses, err = s.reader.ListAll(ctx)
	} else {
		expenses, err = s.reader.ListByUser(ctx, actor.UserID)
	}
	if err != nil {
		return model.ExpenseList{}, fmt.Errorf("list expenses: %w", err)
	}

	summaries := make([]model.ExpenseSummary, 0, len(expenses))
	for _, e := range expenses {
		summaries = append(summaries, model.ExpenseSummary{ID: e.ID, Title: e.Title, Amount: e.Amount})
	}
	return model.ExpenseList{Expenses: summaries}, nil
}

func (s *ExpenseService) Get(ctx context.Context, actor model.Identity, id int64) (model.Expense, error) {
	return s.loadAuthorized(ctx, actor, id)
}

func (s *ExpenseService) Update(ctx context.Context, actor model.Identity, id int64, req model.ExpenseRequest) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.loadAuthorized(ctx, actor, id)
		if err != nil {
			return err
		}

		next := expenseFromRequest(req, current.UserID)
		next.ID = current.ID
		if err := s.updater.Update(ctx, next); err != nil {
			return mapExpenseErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "expense updated", "expense_id", id, "user_id", actor.UserID)
	return nil
}

func (s *ExpenseService) Delete(ctx context.Context, actor model.Identity, id int64) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.loadAuthorized(ctx, actor, id); err != nil {
			return err
		}
		if err := s.writer.Delete(ctx, id); err != nil {
			return mapExpenseErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "expense deleted", "expense_id", id, "user_id", actor.UserID)
	return nil
}

// loadAuthorized resolves the owner of id before checking access, so a
// missing expense is reported as not found for every caller.
func (s *ExpenseService) loadAuthorized(ctx context.Context, actor model.Identity, id int64) (model.Expense, error) {
	expense, err := s.reader.FindByID(ctx, id)
	if err != nil {
		return model.Expense{}, mapExpenseErr(err)
	}

	if !security.Authorize(actor, expense.UserID) {
		slog.WarnContext(ctx, "expense access denied", "expense_id", id, "user_id", actor.UserID)
		return model.Expense{}, errForbidden()
	}

	return expense, nil
}

func mapExpenseErr(err error) error {
	switch {
	case errors.Is(err, model.ErrExpenseNotFound):
		return errExpenseNotFound()
	case errors.Is(err, model.ErrInvalidInput):
		return errInvalidInput()
	}
	return fmt.Errorf("load expense: %w", err)
}

func expenseFromRequest(req model.ExpenseRequest, ownerID int64) model.Expense {
	return model.Expense{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Date:        req.Date.UTC(),
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
		UserID:      ownerID,
	}
}
