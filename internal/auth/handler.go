package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell/internal/platform/httpx"
	"github.com/inkwell-app/inkwell/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger        *slog.Logger
	service       *Service
	auditor       Auditor
	validator     *validator.Validate
	secureCookies bool
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, auditor Auditor, secureCookies bool) *Handler {
	if auditor == nil {
		auditor = NopAuditor{}
	}
	return &Handler{
		logger:        logger,
		service:       service,
		auditor:       auditor,
		validator:     validator.New(),
		secureCookies: secureCookies,
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		// Credential endpoints get a tighter per-IP budget than the rest of
		// the API.
		r.Use(httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
		r.Post("/signup", h.handleSignup)
		r.Post("/login", h.handleLogin)
		r.Post("/token", h.handleToken)
	})
	r.Get("/me", h.handleMe)
	r.Post("/logout", h.handleLogout)
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=32"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// accountResponse is the read-facing account shape. The password hash is
// deliberately absent.
type accountResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newAccountResponse(account *Account) accountResponse {
	return accountResponse{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: malformed json body", shared.ErrValidation))
		return
	}
	// Validate the values that will be stored, not the padded originals.
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := h.validate(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	account, err := h.service.Signup(r.Context(), NewAccount{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, shared.ErrConflict) {
			httpx.RespondError(w, err)
			return
		}
		h.logger.Error("signup failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.audit(r, AuditSignup, account.ID, account.Username)
	httpx.JSON(w, http.StatusCreated, newAccountResponse(account))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: malformed json body", shared.ErrValidation))
		return
	}
	if err := h.validate(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	account, token, err := h.issueToken(w, r, req.Username, req.Password)
	if err != nil {
		return
	}
	h.setAccessCookie(w, token)
	h.audit(r, AuditLogin, account.ID, account.Username)
	httpx.JSON(w, http.StatusOK, token)
}

// handleToken implements the OAuth2 password flow: form-encoded credentials
// in, bare token out, no cookie.
func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: malformed form body", shared.ErrValidation))
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		httpx.RespondError(w, fmt.Errorf("%w: username and password are required", shared.ErrValidation))
		return
	}
	account, token, err := h.issueToken(w, r, username, password)
	if err != nil {
		return
	}
	h.audit(r, AuditLogin, account.ID, account.Username)
	httpx.JSON(w, http.StatusOK, token)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, username, password string) (*Account, Token, error) {
	account, token, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			h.audit(r, AuditLoginFailed, 0, username)
		} else {
			h.logger.Error("login failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return nil, Token{}, err
	}
	return account, token, nil
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	token, ok := TokenFromRequest(r)
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	account, err := h.service.ResolveIdentity(r.Context(), token)
	if err != nil {
		// shared.ErrNotFound answers 404: the token was valid but the account
		// vanished after issuance.
		if !errors.Is(err, shared.ErrInvalidToken) && !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("resolve identity failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newAccountResponse(account))
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := TokenFromRequest(r); ok {
		if accountID, err := h.service.codec.Decode(token); err == nil {
			h.audit(r, AuditLogout, accountID, "")
		}
	}
	h.clearAccessCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setAccessCookie(w http.ResponseWriter, token Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token.AccessToken,
		Path:     "/",
		MaxAge:   int(h.service.TokenTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	})
}

func (h *Handler) clearAccessCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	})
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

func (h *Handler) audit(r *http.Request, kind string, accountID int64, username string) {
	h.auditor.Record(r.Context(), AuditEvent{
		ID:        uuid.NewString(),
		Kind:      kind,
		AccountID: accountID,
		Username:  username,
		IP:        r.RemoteAddr,
		UserAgent: r.UserAgent(),
		At:        time.Now().UTC(),
	})
}
