package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"cashflow-api/internal/database"
	"cashflow-api/internal/model"
)

const expenseColumns = `id, title, description, date, amount, payment_type, user_id`

type ExpenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id int64) (model.Expense, error) {
	e, err := scanExpense(r.db.Conn(ctx).QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Expense{}, model.ErrExpenseNotFound
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("find expense: %w", err)
	}
	return e, nil
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID int64) ([]model.Expense, error) {
	return r.list(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE user_id = $1 ORDER BY date DESC, id DESC`, userID)
}

func (r *ExpenseRepository) ListAll(ctx context.Context) ([]model.Expense, error) {
	return r.list(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC, id DESC`)
}

func (r *ExpenseRepository) list(ctx context.Context, query string, args ...any) ([]model.Expense, error) {
	rows, err := r.db.Conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]model.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Create(ctx context.Context, e model.Expense) (model.Expense, error) {
	created, err := scanExpense(r.db.Conn(ctx).QueryRow(ctx,
		`INSERT INTO expenses (title, description, date, amount, payment_type, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+expenseColumns,
		e.Title, e.Description, e.Date, e.Amount, e.PaymentType, e.UserID))
	if err != nil {
		return model.Expense{}, classifyWrite("create expense", err)
	}
	return created, nil
}

// Update rewrites the editable fields. Ownership never changes.
func (r *ExpenseRepository) Update(ctx context.Context, e model.Expense) error {
	tag, err := r.db.Conn(ctx).Exec(ctx,
		`UPDATE expenses
		 SET title = $2, description = $3, date = $4, amount = $5, payment_type = $6, updated_at = now()
		 WHERE id = $1`,
		e.ID, e.Title, e.Description, e.Date, e.Amount, e.PaymentType)
	if err != nil {
		return classifyWrite("update expense", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Conn(ctx).Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrExpenseNotFound
	}
	return nil
}

func scanExpense(row pgx.Row) (model.Expense, error) {
	var e model.Expense
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Amount, &e.PaymentType, &e.UserID)
	return e, err
}
