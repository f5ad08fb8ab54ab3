package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// Код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// translateError приводит ошибки драйвера к общей таксономии приложения.
// Таймаут или отмена контекста считаются недоступностью хранилища (fail
// closed), нарушение уникальности — конфликтом.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
	}
	return err
}
