package pg

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/bulwark/core/response"
)

// Domain-specific PostgreSQL errors for consistent error handling
// across the application. Use errors.Is() to check error types.
var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrEmptyConnectionString    = errors.New("empty postgres connection string, use PG_CONN_URL env var")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
)

// SQLSTATE codes and class prefixes used for error classification.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
	codeQueryCanceled       = "57014"

	classDataException        = "22"
	classConnectionException  = "08"
	classInsufficientResource = "53"
)

// IsNotFoundError reports whether err indicates an empty query result.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports whether err is a unique constraint
// violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsForeignKeyViolationError reports whether err is a referential
// integrity violation.
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// IsTxClosedError reports whether err indicates usage of an already
// closed transaction.
func IsTxClosedError(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}

// MapError translates PostgreSQL driver errors into the structured
// HTTP errors the dispatcher renders. Wire it into a dispatcher with
// dispatch.WithErrorMapper(pg.MapError).
//
// Recognized errors come back as response.HTTPError values carrying
// the original error as cause; everything else passes through
// unchanged so generic failures still surface as internal errors.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case IsNotFoundError(err):
		return response.ErrNotFound.WithError(err)
	case errors.Is(err, context.DeadlineExceeded):
		return response.ErrGatewayTimeout.WithError(err)
	case errors.Is(err, context.Canceled):
		return response.ErrServiceUnavailable.WithError(err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == codeUniqueViolation, pgErr.Code == codeForeignKeyViolation:
		return response.ErrConflict.WithError(err)
	case pgErr.Code == codeNotNullViolation, pgErr.Code == codeCheckViolation:
		return response.ErrUnprocessableEntity.WithError(err)
	case pgErr.Code == codeQueryCanceled:
		return response.ErrGatewayTimeout.WithError(err)
	case strings.HasPrefix(pgErr.Code, classDataException):
		return response.ErrBadRequest.WithError(err)
	case strings.HasPrefix(pgErr.Code, classConnectionException),
		strings.HasPrefix(pgErr.Code, classInsufficientResource):
		return response.ErrServiceUnavailable.WithError(err)
	}

	return err
}
