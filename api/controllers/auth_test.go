package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riftbounddb/backend/api/middleware"
	authsvc "github.com/riftbounddb/backend/internal/auth"
	"github.com/riftbounddb/backend/internal/users"
	pkgerrors "github.com/riftbounddb/backend/pkg/errors"
)

type stubAuthService struct {
	registerReq authsvc.RegisterRequest
	loginReq    authsvc.LoginRequest
	result      *authsvc.Result
	user        *users.UserDTO
	err         error
}

func (s *stubAuthService) Register(ctx context.Context, req authsvc.RegisterRequest) (*authsvc.Result, error) {
	s.registerReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.Result, error) {
	s.loginReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*users.UserDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func TestAuthRegister(t *testing.T) {
	stub := &stubAuthService{result: &authsvc.Result{
		Token: "signed-token",
		User:  &users.UserDTO{ID: "user-1", Name: "Ada", Email: "ada@example.com"},
	}}

	body := `{"name":"Ada","email":"ada@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	AuthRegister(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var result authsvc.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Token != "signed-token" {
		t.Fatalf("expected token in body, got %+v", result)
	}
	if result.User == nil || result.User.Email != "ada@example.com" {
		t.Fatalf("expected user in body, got %+v", result.User)
	}
}

func TestAuthRegisterRejectsMalformedJSON(t *testing.T) {
	stub := &stubAuthService{}
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	AuthRegister(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected flat error body")
	}
}

func TestAuthRegisterMissingFields(t *testing.T) {
	stub := &stubAuthService{}
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"ada@example.com"}`))
	rec := httptest.NewRecorder()
	AuthRegister(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", rec.Code)
	}
}

func TestAuthRegisterConflict(t *testing.T) {
	stub := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, "Email already used")}
	body := `{"name":"Ada","email":"ada@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	AuthRegister(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var respBody map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &respBody); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if respBody["error"] != "Email already used" {
		t.Fatalf("unexpected error body %v", respBody)
	}
}

func TestAuthRegisterPaddedEmailReachesConflict(t *testing.T) {
	stub := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, "Email already used")}

	// Surrounding whitespace must survive decoding so the service's
	// normalization can collide it with the existing account; a 400 here
	// would make the duplicate 409 unreachable.
	body := `{"name":"Ada","email":" ada@example.com ","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	AuthRegister(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for padded duplicate email, got %d", rec.Code)
	}
	if stub.registerReq.Email != " ada@example.com " {
		t.Fatalf("expected raw email forwarded to the service, got %q", stub.registerReq.Email)
	}
	var respBody map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &respBody); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if respBody["error"] != "Email already used" {
		t.Fatalf("unexpected error body %v", respBody)
	}
}

func TestAuthLogin(t *testing.T) {
	stub := &stubAuthService{result: &authsvc.Result{
		Token: "signed-token",
		User:  &users.UserDTO{ID: "user-1", Email: "ada@example.com"},
	}}

	body := `{"email":"ada@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	AuthLogin(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.loginReq.Email != "ada@example.com" {
		t.Fatalf("expected credentials forwarded, got %+v", stub.loginReq)
	}
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	stub := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")}
	body := `{"email":"ada@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	AuthLogin(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var respBody map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &respBody); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if respBody["error"] != "Invalid credentials" {
		t.Fatalf("unexpected error body %v", respBody)
	}
}

func TestAuthMe(t *testing.T) {
	stub := &stubAuthService{user: &users.UserDTO{ID: "user-1", Name: "Ada", Email: "ada@example.com"}}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()
	AuthMe(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var user users.UserDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.ID != "user-1" || user.Email != "ada@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestAuthMeWithoutSession(t *testing.T) {
	stub := &stubAuthService{}
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	AuthMe(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session context, got %d", rec.Code)
	}
}
