package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestProblemResponseShape(t *testing.T) {
	t.Parallel()

	res := httptest.NewRecorder()
	Problem(res, http.StatusConflict, "Conflict", "username taken")

	if got := res.Header().Get("Content-Type"); got != "application/problem+json" {
		t.Fatalf("content type: got %q", got)
	}
	var detail ProblemDetail
	if err := json.Unmarshal(res.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if detail.Status != http.StatusConflict || detail.Title != "Conflict" {
		t.Fatalf("unexpected problem: %+v", detail)
	}
}

func TestDecodeJSONCapsBody(t *testing.T) {
	t.Parallel()

	oversized := `{"title":"` + strings.Repeat("a", maxBodyBytes+1) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(oversized))

	var target struct {
		Title string `json:"title"`
	}
	if err := DecodeJSON(req, &target); err == nil {
		t.Fatal("expected error for oversized body")
	}
}
