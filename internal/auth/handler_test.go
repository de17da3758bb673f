// AngelaMos | 2026
// handler_test.go

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstyle/api/internal/middleware"
)

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()

	svc, _ := newTestService(t)
	handler := NewHandler(svc)

	issuer, err := NewTokenIssuer(testJWTConfig())
	require.NoError(t, err)

	router := chi.NewRouter()
	handler.RegisterRoutes(router, middleware.Authenticator(issuer, svc))
	return router, svc
}

func postJSON(
	t *testing.T,
	router chi.Router,
	path, body string,
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandler_SignupLoginMe(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := postJSON(t, router, "/auth/signup",
		`{"name":"Ada","email":"ada@example.com","password":"lovelace1815"}`,
		nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var user UserResponse
	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.NotContains(t, string(resp.Data), "password",
		"response must not leak credential material")
	assert.Equal(t, "customer", user.Role)

	rec = postJSON(t, router, "/auth/login",
		`{"email":"ada@example.com","password":"lovelace1815"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var auth AuthResponse
	resp = decodeResponse(t, rec)
	require.NoError(t, json.Unmarshal(resp.Data, &auth))
	require.NotEmpty(t, auth.Token.Token)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token.Token)
	meRec := httptest.NewRecorder()
	router.ServeHTTP(meRec, req)

	require.Equal(t, http.StatusOK, meRec.Code)
	var me UserResponse
	resp = decodeResponse(t, meRec)
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, "ada@example.com", me.Email)
}

func TestHandler_SignupValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing email", `{"name":"Ada","password":"lovelace1815"}`},
		{"bad email", `{"name":"A","email":"nope","password":"lovelace1815"}`},
		{"short password", `{"name":"A","email":"a@b.com","password":"abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, router, "/auth/signup", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		})
	}
}

func TestHandler_SignupDuplicateEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"name":"Ada","email":"ada@example.com","password":"lovelace1815"}`
	rec := postJSON(t, router, "/auth/signup", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/auth/signup", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "DUPLICATE_EMAIL", resp.Error.Code)
}

func TestHandler_LoginInvalidCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := postJSON(t, router, "/auth/signup",
		`{"name":"Ada","email":"ada@example.com","password":"lovelace1815"}`,
		nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	unknown := postJSON(t, router, "/auth/login",
		`{"email":"nobody@example.com","password":"whatever1"}`, nil)
	wrong := postJSON(t, router, "/auth/login",
		`{"email":"ada@example.com","password":"not-the-one"}`, nil)

	// Both failure modes answer identically.
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, http.StatusBadRequest, wrong.Code)

	unknownResp := decodeResponse(t, unknown)
	wrongResp := decodeResponse(t, wrong)
	assert.Equal(t, "INVALID_CREDENTIALS", unknownResp.Error.Code)
	assert.Equal(t, unknownResp.Error, wrongResp.Error)
}

func TestHandler_OperatorLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := postJSON(t, router, "/auth/login",
		`{"email":"admin@smartstyle.com","password":"admin123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var auth AuthResponse
	resp := decodeResponse(t, rec)
	require.NoError(t, json.Unmarshal(resp.Data, &auth))
	assert.Equal(t, "admin", auth.User.Role)

	// The minted token resolves back to the operator through the gate.
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token.Token)
	meRec := httptest.NewRecorder()
	router.ServeHTTP(meRec, req)

	require.Equal(t, http.StatusOK, meRec.Code)
	var me UserResponse
	resp = decodeResponse(t, meRec)
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, OperatorSubject, me.ID)
	assert.Equal(t, "admin", me.Role)
}

func TestHandler_MeWithoutToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "MISSING_TOKEN", resp.Error.Code)
}
