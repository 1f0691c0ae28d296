package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameverse/content-api/internal/core/domain"
	"github.com/gameverse/content-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations. Both routes
// are unauthenticated.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type addCommentRequest struct {
	NewsID string `json:"newsId" validate:"required"`
	Text   string `json:"text"   validate:"required"`
	Author string `json:"author"`
}

type commentResponse struct {
	Message string          `json:"message"`
	Comment *domain.Comment `json:"comment,omitempty"`
}

// ListByNews handles GET /api/comments/:newsId. The article is not checked
// for existence: comments on a deleted article still list.
//
// @Summary      List comments for a news article
// @Tags         comments
// @Produce      json
// @Param        newsId  path     string  true  "Article id"
// @Success      200     {array}  domain.Comment
// @Router       /api/comments/{newsId} [get]
func (h *CommentHandler) ListByNews(c echo.Context) error {
	comments, err := h.service.ListByNews(c.Request().Context(), c.Param("newsId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Add handles POST /api/comments/add.
//
// @Summary      Add a comment to a news article
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      addCommentRequest  true  "Comment"
// @Success      200   {object}  commentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/comments/add [post]
func (h *CommentHandler) Add(c echo.Context) error {
	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Add(c.Request().Context(), req.NewsID, req.Text, req.Author)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, commentResponse{Message: "comment added", Comment: created})
}
