package handler

import "github.com/gameverse/content-api/internal/core/domain"

// createNewsRequest is populated from the multipart form, not a JSON body;
// the optional cover image travels in the upload.FieldName part.
type createNewsRequest struct {
	Title    string `form:"title"    validate:"required"`
	Content  string `form:"content"  validate:"required"`
	Author   string `form:"author"   validate:"required"`
	Category string `form:"category"`
}

// updateNewsRequest carries partial-update fields: empty means unchanged.
type updateNewsRequest struct {
	Title    string `form:"title"`
	Content  string `form:"content"`
	Author   string `form:"author"`
	Category string `form:"category"`
}

type newsResponse struct {
	Message string       `json:"message"`
	News    *domain.News `json:"news,omitempty"`
}
