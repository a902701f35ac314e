package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"cashflow-api/internal/model"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

// classifyWrite turns constraint and range failures into model.ErrInvalidInput
// so they are reported as bad input rather than server faults.
func classifyWrite(op string, err error) error {
	switch pgCode(err) {
	case pgerrcode.CheckViolation, pgerrcode.NumericValueOutOfRange,
		pgerrcode.StringDataRightTruncationDataException:
		return fmt.Errorf("%s: %w: %w", op, model.ErrInvalidInput, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
