package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/metinatakli/jobmatch/api"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// logRequest attaches a request scoped logger and logs every completed request.
func (app *Application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"uri", r.URL.RequestURI(),
		)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, contextSetLogger(r, logger))

		logger.Info("request completed", "status", ww.Status(), "bytes", ww.BytesWritten())
	})
}

// requireAuthentication runs around every generated operation and only acts
// on those whose api.yaml entry declares the cookieAuth scheme.
func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, secured := r.Context().Value(api.CookieAuthScopes).([]string); !secured {
			next.ServeHTTP(w, r)
			return
		}

		userId := app.sessionUserId(r.Context())
		if userId == uuid.Nil {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
		r = contextSetLogger(r.WithContext(ctx), app.contextGetLogger(r).With("user_id", userId))

		next.ServeHTTP(w, r)
	})
}
