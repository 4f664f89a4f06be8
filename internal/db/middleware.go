// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"net/http"

	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/trivia-service/internal/logging"
)

type txContextKey struct{}

// TxFromContext returns the request transaction, nil if none was started.
func TxFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txContextKey{}).(*sql.Tx)
	return tx
}

// TransactionMiddleware wraps each request in a database transaction.
// The transaction is committed for responses below 500 and rolled back
// otherwise.
func TransactionMiddleware(client *DBClient, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := client.BeginTx(r.Context())
			if err != nil {
				logger.Errorf("failed to begin transaction: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ctx := context.WithValue(r.Context(), txContextKey{}, tx)

			defer func() {
				if p := recover(); p != nil {
					_ = tx.Rollback()
					panic(p)
				}

				if ww.Status() >= http.StatusInternalServerError {
					if err := tx.Rollback(); err != nil {
						logger.Errorf("failed to rollback transaction: %v", err)
					}
					return
				}

				if err := tx.Commit(); err != nil && err != sql.ErrTxDone {
					logger.Errorf("failed to commit transaction: %v", err)
				}
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}
