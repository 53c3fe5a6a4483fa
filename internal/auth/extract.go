package auth

import (
	"net/http"
	"strings"
)

// AccessTokenCookie names the session cookie carrying the access token.
const AccessTokenCookie = "access_token"

// TokenFromRequest resolves the caller's bearer token. The session cookie
// takes precedence over the Authorization header so that browser logout
// (cookie deletion) stays authoritative over any stale bearer header the
// client might also send. Absence of both is not an error; callers decide
// whether identity is required.
func TokenFromRequest(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
