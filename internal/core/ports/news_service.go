package ports

import (
	"context"

	"github.com/gameverse/content-api/internal/core/domain"
)

// CreateNewsInput carries the fields for a new article. ImageURL is the
// servable path produced by the upload gate, empty when no file was sent.
type CreateNewsInput struct {
	Title    string
	Content  string
	Author   string
	Category string
	ImageURL string
}

// UpdateNewsInput carries partial-update fields: empty strings mean "keep
// the stored value". Image handling is explicit: NewImageURL replaces the
// image when non-empty; ClearImage drops it; both unset keeps it.
type UpdateNewsInput struct {
	Title       string
	Content     string
	Author      string
	Category    string
	NewImageURL string
	ClearImage  bool
}

type NewsService interface {
	List(ctx context.Context) ([]*domain.News, error)
	Get(ctx context.Context, id string) (*domain.News, error)
	Create(ctx context.Context, input CreateNewsInput) (*domain.News, error)
	Update(ctx context.Context, id string, input UpdateNewsInput) (*domain.News, error)
	Delete(ctx context.Context, id string) error
}
