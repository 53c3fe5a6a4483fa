package users

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/auth"
	"github.com/inkwell-app/inkwell/internal/shared"
)

func newUsersRouter(t *testing.T, repo RepositoryPort, identity shared.Identity) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo, auth.NewHasher(4)))
	r := chi.NewRouter()
	r.Route("/users", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(shared.ContextWithIdentity(req.Context(), identity)))
			})
		})
		handler.MountRoutes(r)
	})
	return r
}

func doPatch(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestUpdateUserValidatesTrimmedUsername(t *testing.T) {
	t.Parallel()

	repo := newMockRepository()
	repo.seed(1, "alice", "alice@x.com", false)
	router := newUsersRouter(t, repo, shared.Identity{ID: 1, Username: "alice"})

	// Whitespace padding must not sneak a too-short username past validation.
	res := doPatch(router, "/users/1", `{"username":" a "}`)
	assert.Equal(t, http.StatusBadRequest, res.Code, res.Body.String())
	assert.Equal(t, "alice", repo.users[1].Username)

	res = doPatch(router, "/users/1", `{"username":"  al  "}`)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	assert.Equal(t, "al", repo.users[1].Username)
}
