package middlewarex

import (
	"log/slog"
	"net/http"

	"deal_factory/pkg/contextx"
	"deal_factory/pkg/logx"
)

// Logger кладёт в контекст запроса логгер с trace id. Ставится после TraceID.
func Logger(base *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := base

			if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
				log = log.With(slog.String(logx.FieldTraceID, traceID.String()))
			}

			log = log.With(
				slog.String(logx.FieldHTTPMethod, r.Method),
				slog.String(logx.FieldURL, r.URL.Path),
			)

			next.ServeHTTP(w, r.WithContext(contextx.WithLogger(ctx, log)))
		})
	}
}
