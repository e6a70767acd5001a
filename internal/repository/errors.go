package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"depot/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation = "23505"
	PgErrCheckViolation  = "23514"

	pgClassConnectionException = "08"
	pgErrAdminShutdown         = "57P01"
	pgErrCannotConnectNow      = "57P03"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsUnavailable ошибки соединения с базой, а не ошибки запроса.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgClassConnectionException) ||
			pgErr.Code == pgErrAdminShutdown ||
			pgErr.Code == pgErrCannotConnectNow
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// Classify помечает ошибки соединения как entities.ErrUpstreamUnavailable.
func Classify(err error) error {
	if IsUnavailable(err) {
		return fmt.Errorf("%w: %w", entities.ErrUpstreamUnavailable, err)
	}
	return err
}
