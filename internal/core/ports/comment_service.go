package ports

import (
	"context"

	"github.com/gameverse/content-api/internal/core/domain"
)

type CommentService interface {
	ListByNews(ctx context.Context, newsID string) ([]*domain.Comment, error)
	// Add creates a comment after confirming the referenced article exists.
	Add(ctx context.Context, newsID, text, author string) (*domain.Comment, error)
}
