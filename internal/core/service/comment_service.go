package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gameverse/content-api/internal/api/metrics"
	"github.com/gameverse/content-api/internal/core/domain"
	"github.com/gameverse/content-api/internal/core/ports"
)

// CommentService implements comment listing and creation. Creation checks
// the referenced article exists; listing deliberately does not, so comments
// on a since-deleted article remain readable.
type CommentService struct {
	repo   ports.CommentRepository
	news   ports.NewsRepository
	logger zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, news ports.NewsRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, news: news, logger: logger}
}

func (s *CommentService) ListByNews(ctx context.Context, newsID string) ([]*domain.Comment, error) {
	return s.repo.ListByNews(ctx, newsID)
}

// Add creates a comment. No authentication is required; a blank author is
// recorded as the anonymous default.
func (s *CommentService) Add(ctx context.Context, newsID, text, author string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrMissingFields
	}

	author = strings.TrimSpace(author)
	if author == "" {
		author = domain.AnonymousAuthor
	}

	// Referential check before any write: malformed ids surface as
	// ErrInvalidID (400), absent articles as ErrNewsNotFound (404).
	if _, err := s.news.FindByID(ctx, newsID); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, &domain.Comment{
		Text:      text,
		Author:    author,
		NewsID:    newsID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("news_id", newsID).Msg("failed to add comment")
		return nil, err
	}

	metrics.CommentsCreatedTotal.Inc()
	return created, nil
}
