package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	OriginalText string
	Skills       []string
	Experience   []string
	ObjectKey    *string
	CreatedAt    time.Time
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetLatestByUserId(ctx context.Context, userId uuid.UUID) (*Resume, error)
}
