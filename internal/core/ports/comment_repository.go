package ports

import (
	"context"

	"github.com/gameverse/content-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	// ListByNews returns all comments for the article, oldest first. It does
	// not verify the article still exists: orphaned comments remain readable.
	ListByNews(ctx context.Context, newsID string) ([]*domain.Comment, error)
	Insert(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	// DeleteByNews removes every comment referencing the article and returns
	// how many were removed.
	DeleteByNews(ctx context.Context, newsID string) (int64, error)
}
