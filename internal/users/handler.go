package users

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

// Handler manages user management endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers user routes. The router mounts this group behind the
// identity middleware.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listUsers)
	r.Get("/{userID}", h.getUser)
	r.Patch("/{userID}", h.updateUser)
	r.Delete("/{userID}", h.deleteUser)
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(user *User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=32"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8,max=128"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("list users failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = newUserResponse(&users[i])
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("get user failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newUserResponse(user))
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	var req updateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: malformed json body", shared.ErrValidation))
		return
	}
	// Validate the values that will be stored, not the padded originals.
	if req.Username != nil {
		trimmed := strings.TrimSpace(*req.Username)
		req.Username = &trimmed
	}
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
	}
	if err := h.validate(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	user, err := h.service.UpdateUser(r.Context(), identity, id, UpdateUser{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) && !errors.Is(err, shared.ErrForbidden) && !errors.Is(err, shared.ErrConflict) {
			h.logger.Error("update user failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newUserResponse(user))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	if err := h.service.DeleteUser(r.Context(), identity, id); err != nil {
		if !errors.Is(err, shared.ErrNotFound) && !errors.Is(err, shared.ErrForbidden) {
			h.logger.Error("delete user failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func userIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: user id must be a positive integer", shared.ErrValidation)
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
