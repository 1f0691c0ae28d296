package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gameverse/content-api/internal/core/ports"
	"github.com/gameverse/content-api/internal/upload"
)

// ImageSaver is the slice of the upload gate the handler needs.
type ImageSaver interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// NewsHandler handles HTTP requests for article operations.
type NewsHandler struct {
	service ports.NewsService
	images  ImageSaver
}

func NewNewsHandler(service ports.NewsService, images ImageSaver) *NewsHandler {
	return &NewsHandler{service: service, images: images}
}

// List handles GET /api/news. All articles, newest first, no auth.
//
// @Summary      List all news articles
// @Tags         news
// @Produce      json
// @Success      200  {array}  domain.News
// @Router       /api/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/news/:id.
//
// @Summary      Get a news article by id
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  domain.News
// @Failure      404  {object}  map[string]string
// @Router       /api/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	n, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// Create handles POST /api/news/add (admin only, multipart form). The
// upload gate validates and stores the optional image before any article
// record is written: a rejected file aborts the whole request.
//
// @Summary      Create a news article
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title      formData  string  true   "Title"
// @Param        content    formData  string  true   "Content"
// @Param        author     formData  string  true   "Author"
// @Param        category   formData  string  false  "Category (defaults to Geral)"
// @Param        newsImage  formData  file    false  "Cover image (JPEG/PNG/GIF, max 5MB)"
// @Success      200  {object}  newsResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/news/add [post]
func (h *NewsHandler) Create(c echo.Context) error {
	// Trim before validating so a whitespace-only required field fails
	// here, before the upload gate stores a file for a doomed request.
	req := createNewsRequest{
		Title:    strings.TrimSpace(c.FormValue("title")),
		Content:  strings.TrimSpace(c.FormValue("content")),
		Author:   strings.TrimSpace(c.FormValue("author")),
		Category: c.FormValue("category"),
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	imageURL, err := h.saveImage(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateNewsInput{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		ImageURL: imageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newsResponse{Message: "news article added", News: created})
}

// Update handles PUT /api/news/update/:id (admin only, multipart form).
// Omitted fields keep their stored values; an explicit empty imageUrl field
// clears the image, a new file replaces it.
//
// @Summary      Update a news article
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true   "Article id"
// @Param        title      formData  string  false  "Title"
// @Param        content    formData  string  false  "Content"
// @Param        author     formData  string  false  "Author"
// @Param        category   formData  string  false  "Category"
// @Param        imageUrl   formData  string  false  "Send empty string to clear the image"
// @Param        newsImage  formData  file    false  "Replacement cover image"
// @Success      200  {object}  newsResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/news/update/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	req := updateNewsRequest{
		Title:    c.FormValue("title"),
		Content:  c.FormValue("content"),
		Author:   c.FormValue("author"),
		Category: c.FormValue("category"),
	}

	imageURL, err := h.saveImage(c)
	if err != nil {
		return err
	}

	clearImage := false
	if imageURL == "" {
		if params, err := c.FormParams(); err == nil {
			if v, ok := params["imageUrl"]; ok && len(v) > 0 && v[0] == "" {
				clearImage = true
			}
		}
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateNewsInput{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		Category:    req.Category,
		NewImageURL: imageURL,
		ClearImage:  clearImage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newsResponse{Message: "news article updated", News: updated})
}

// Delete handles DELETE /api/news/:id (admin only).
//
// @Summary      Delete a news article
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  newsResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newsResponse{Message: "news article deleted"})
}

// saveImage runs the optional file part through the upload gate. A request
// without a file (or without a multipart body at all) is not an error.
func (h *NewsHandler) saveImage(c echo.Context) (string, error) {
	fh, err := c.FormFile(upload.FieldName)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid file upload")
	}
	return h.images.Save(fh)
}
