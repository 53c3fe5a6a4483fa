package posts

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/inkwell-app/inkwell/internal/platform/httpx"
	"github.com/inkwell-app/inkwell/internal/shared"
)

// Handler manages post endpoints. The router mounts the whole group behind
// the identity middleware.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers post routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.createPost)
	r.Get("/", h.listPosts)
	r.Get("/{postID}", h.getPost)
	r.Patch("/{postID}", h.updatePost)
	r.Delete("/{postID}", h.deletePost)
}

type createPostRequest struct {
	Title string `json:"title" validate:"required,max=64"`
	Body  string `json:"body" validate:"required"`
}

type updatePostRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=64"`
	Body  *string `json:"body" validate:"omitempty,min=1"`
}

type postResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newPostResponse(post *Post) postResponse {
	return postResponse{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	var req createPostRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: malformed json body", shared.ErrValidation))
		return
	}
	if err := h.validate(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	post, err := h.service.CreatePost(r.Context(), identity, req.Title, req.Body)
	if err != nil {
		h.logger.Error("create post failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, newPostResponse(post))
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	authorID, err := strconv.ParseInt(r.URL.Query().Get("author_id"), 10, 64)
	if err != nil || authorID <= 0 {
		httpx.RespondError(w, fmt.Errorf("%w: author_id must be a positive integer", shared.ErrValidation))
		return
	}
	filter := ListFilter{AuthorID: authorID}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			httpx.RespondError(w, fmt.Errorf("%w: offset must be a non-negative integer", shared.ErrValidation))
			return
		}
		filter.Offset = offset
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			httpx.RespondError(w, fmt.Errorf("%w: limit must be between 1 and 100", shared.ErrValidation))
			return
		}
		filter.Limit = limit
	}
	posts, err := h.service.ListPosts(r.Context(), filter)
	if err != nil {
		h.logger.Error("list posts failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]postResponse, len(posts))
	for i := range posts {
		out[i] = newPostResponse(&posts[i])
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("get post failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newPostResponse(post))
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	var req updatePostRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: malformed json body", shared.ErrValidation))
		return
	}
	if err := h.validate(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	post, err := h.service.UpdatePost(r.Context(), identity, id, UpdatePost{Title: req.Title, Body: req.Body})
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) && !errors.Is(err, shared.ErrForbidden) {
			h.logger.Error("update post failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newPostResponse(post))
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	if err := h.service.DeletePost(r.Context(), identity, id); err != nil {
		if !errors.Is(err, shared.ErrNotFound) && !errors.Is(err, shared.ErrForbidden) {
			h.logger.Error("delete post failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func postIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: post id must be a positive integer", shared.ErrValidation)
	}
	return id, nil
}

func (h *Handler) validate(payload any) error {
	err := h.validator.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		parts := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %s", shared.ErrValidation, strings.Join(parts, "; "))
	}
	return fmt.Errorf("%w: %s", shared.ErrValidation, err)
}
