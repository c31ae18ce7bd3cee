package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type sessionKey string

const (
	SessionKeyUserId = sessionKey("userID")
)

func (s sessionKey) String() string {
	return string(s)
}

type contextKey string

const loggerContextKey = contextKey("logger")

// sessionUserId returns uuid.Nil when the session carries no valid user.
func (app *Application) sessionUserId(ctx context.Context) uuid.UUID {
	raw := app.sessionManager.GetString(ctx, SessionKeyUserId.String())
	if raw == "" {
		return uuid.Nil
	}

	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return userId
}

func (app *Application) contextGetUserId(r *http.Request) uuid.UUID {
	userId, ok := r.Context().Value(SessionKeyUserId).(uuid.UUID)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

func contextSetLogger(r *http.Request, logger *slog.Logger) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), loggerContextKey, logger))
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
