package pg_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bulwark/core/response"
	"github.com/dmitrymomot/bulwark/integration/database/pg"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil_maps_to_nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, pg.MapError(nil))
	})

	t.Run("no_rows_maps_to_not_found", func(t *testing.T) {
		t.Parallel()

		mapped := pg.MapError(fmt.Errorf("get user: %w", pgx.ErrNoRows))

		var httpErr response.HTTPError
		require.ErrorAs(t, mapped, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.ErrorIs(t, mapped, pgx.ErrNoRows)
	})

	t.Run("sqlstate_codes", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name       string
			code       string
			wantStatus int
		}{
			{name: "unique_violation", code: "23505", wantStatus: http.StatusConflict},
			{name: "foreign_key_violation", code: "23503", wantStatus: http.StatusConflict},
			{name: "not_null_violation", code: "23502", wantStatus: http.StatusUnprocessableEntity},
			{name: "check_violation", code: "23514", wantStatus: http.StatusUnprocessableEntity},
			{name: "invalid_text_representation", code: "22P02", wantStatus: http.StatusBadRequest},
			{name: "connection_failure", code: "08006", wantStatus: http.StatusServiceUnavailable},
			{name: "too_many_connections", code: "53300", wantStatus: http.StatusServiceUnavailable},
			{name: "query_canceled", code: "57014", wantStatus: http.StatusGatewayTimeout},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				cause := &pgconn.PgError{Code: tt.code, Message: tt.name}
				mapped := pg.MapError(fmt.Errorf("exec: %w", cause))

				var httpErr response.HTTPError
				require.ErrorAs(t, mapped, &httpErr)
				assert.Equal(t, tt.wantStatus, httpErr.Status)

				var pgErr *pgconn.PgError
				require.ErrorAs(t, mapped, &pgErr)
				assert.Equal(t, tt.code, pgErr.Code)
			})
		}
	})

	t.Run("context_errors", func(t *testing.T) {
		t.Parallel()

		mapped := pg.MapError(context.DeadlineExceeded)
		var httpErr response.HTTPError
		require.ErrorAs(t, mapped, &httpErr)
		assert.Equal(t, http.StatusGatewayTimeout, httpErr.Status)

		mapped = pg.MapError(context.Canceled)
		require.ErrorAs(t, mapped, &httpErr)
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	})

	t.Run("unknown_sqlstate_passes_through", func(t *testing.T) {
		t.Parallel()

		cause := &pgconn.PgError{Code: "42703", Message: "undefined column"}
		err := fmt.Errorf("exec: %w", cause)

		assert.Equal(t, err, pg.MapError(err))
	})

	t.Run("unrelated_error_passes_through", func(t *testing.T) {
		t.Parallel()

		err := errors.New("dial tcp: connection refused")
		assert.Equal(t, err, pg.MapError(err))
	})
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()
		assert.True(t, pg.IsNotFoundError(pgx.ErrNoRows))
		assert.True(t, pg.IsNotFoundError(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
		assert.False(t, pg.IsNotFoundError(errors.New("other")))
	})

	t.Run("duplicate_key", func(t *testing.T) {
		t.Parallel()
		assert.True(t, pg.IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}))
		assert.False(t, pg.IsDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
		assert.False(t, pg.IsDuplicateKeyError(errors.New("other")))
	})

	t.Run("foreign_key_violation", func(t *testing.T) {
		t.Parallel()
		assert.True(t, pg.IsForeignKeyViolationError(&pgconn.PgError{Code: "23503"}))
		assert.False(t, pg.IsForeignKeyViolationError(&pgconn.PgError{Code: "23505"}))
	})

	t.Run("tx_closed", func(t *testing.T) {
		t.Parallel()
		assert.True(t, pg.IsTxClosedError(pgx.ErrTxClosed))
		assert.False(t, pg.IsTxClosedError(errors.New("other")))
	})
}

func TestConnectValidation(t *testing.T) {
	t.Parallel()

	t.Run("empty_connection_string", func(t *testing.T) {
		t.Parallel()

		_, err := pg.Connect(context.Background(), pg.Config{})
		assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)
	})

	t.Run("malformed_connection_string", func(t *testing.T) {
		t.Parallel()

		_, err := pg.Connect(context.Background(), pg.Config{
			ConnectionString: "not a url at all",
		})
		assert.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
	})
}
