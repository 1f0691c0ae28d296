package domain

import (
	"errors"
	"time"
)

// DefaultCategory is applied when an article is created without one.
const DefaultCategory = "Geral"

var ErrNewsNotFound = errors.New("news article not found")
var ErrInvalidID = errors.New("malformed identifier")
var ErrInvalidFileType = errors.New("invalid file type, only JPEG, PNG or GIF images are allowed")
var ErrFileTooLarge = errors.New("file too large, maximum allowed size is 5MB")

// News is a published article. Author is free text, not a User reference.
// ImageURL is a servable relative path under /uploads, empty when the
// article has no cover image.
type News struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	ImageURL  string    `json:"imageUrl"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
