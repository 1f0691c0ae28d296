package ports

import (
	"context"

	"github.com/gameverse/content-api/internal/core/domain"
)

// NewsRepository defines persistence operations for articles.
type NewsRepository interface {
	List(ctx context.Context) ([]*domain.News, error)
	// FindByID returns domain.ErrInvalidID for a malformed id and
	// domain.ErrNewsNotFound when no article matches.
	FindByID(ctx context.Context, id string) (*domain.News, error)
	Insert(ctx context.Context, n *domain.News) (*domain.News, error)
	// Update replaces the stored document's mutable fields with n's values.
	Update(ctx context.Context, n *domain.News) error
	Delete(ctx context.Context, id string) error
}

// NewsCache is a read-through cache in front of NewsRepository reads.
// Implementations must treat backend failures as misses so a cache outage
// never takes reads down.
type NewsCache interface {
	GetList(ctx context.Context) ([]*domain.News, bool)
	SetList(ctx context.Context, items []*domain.News)
	GetNews(ctx context.Context, id string) (*domain.News, bool)
	SetNews(ctx context.Context, n *domain.News)
	// Invalidate drops the list entry and the entry for id (empty id drops
	// only the list).
	Invalidate(ctx context.Context, id string)
}
