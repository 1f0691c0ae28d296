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

// NewsService implements article CRUD. Reads go through an optional cache;
// every mutation invalidates it.
type NewsService struct {
	repo     ports.NewsRepository
	comments ports.CommentRepository
	cache    ports.NewsCache
	logger   zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, comments ports.CommentRepository, cache ports.NewsCache, logger zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, comments: comments, cache: cache, logger: logger}
}

func (s *NewsService) List(ctx context.Context) ([]*domain.News, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetList(ctx); ok {
			return items, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, items)
	}
	return items, nil
}

func (s *NewsService) Get(ctx context.Context, id string) (*domain.News, error) {
	if s.cache != nil {
		if n, ok := s.cache.GetNews(ctx, id); ok {
			return n, nil
		}
	}

	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetNews(ctx, n)
	}
	return n, nil
}

// Create persists a new article. The upload gate has already validated and
// stored any attached image; input.ImageURL is its servable path.
func (s *NewsService) Create(ctx context.Context, input ports.CreateNewsInput) (*domain.News, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	author := strings.TrimSpace(input.Author)
	if title == "" || content == "" || author == "" {
		return nil, domain.ErrMissingFields
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.News{
		Title:     title,
		Content:   content,
		Author:    author,
		ImageURL:  input.ImageURL,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create news article")
		return nil, err
	}

	s.invalidate(ctx, "")
	metrics.NewsCreatedTotal.WithLabelValues(category).Inc()
	s.logger.Info().Str("news_id", created.ID).Str("category", category).Msg("news article created")
	return created, nil
}

// Update applies partial-update semantics: a field is replaced only when a
// non-empty value was supplied; omitted fields keep their stored values.
// UpdatedAt is refreshed unconditionally, even for a no-op payload.
func (s *NewsService) Update(ctx context.Context, id string, input ports.UpdateNewsInput) (*domain.News, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(input.Title); v != "" {
		n.Title = v
	}
	if v := strings.TrimSpace(input.Content); v != "" {
		n.Content = v
	}
	if v := strings.TrimSpace(input.Author); v != "" {
		n.Author = v
	}
	if v := strings.TrimSpace(input.Category); v != "" {
		n.Category = v
	}

	// A new file wins over a clear request; both absent keeps the image.
	switch {
	case input.NewImageURL != "":
		n.ImageURL = input.NewImageURL
	case input.ClearImage:
		n.ImageURL = ""
	}

	n.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, n); err != nil {
		s.logger.Error().Err(err).Str("news_id", id).Msg("failed to update news article")
		return nil, err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("news_id", id).Msg("news article updated")
	return n, nil
}

// Delete removes the article and cascades to its comments. The cascade runs
// after the article delete succeeds; a failure there leaves orphans, which
// comment reads tolerate.
func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	removed, err := s.comments.DeleteByNews(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("news_id", id).Msg("cascade comment delete failed, orphans remain")
	} else if removed > 0 {
		s.logger.Info().Str("news_id", id).Int64("comments_removed", removed).Msg("cascaded comment delete")
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("news_id", id).Msg("news article deleted")
	return nil
}

func (s *NewsService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
}
