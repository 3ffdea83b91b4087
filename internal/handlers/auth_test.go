package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance_tracker/internal/models"
	"finance_tracker/internal/service"
)

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %q: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestRegister_Success(t *testing.T) {
	auth := &mockAuth{registerID: 42}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	body, contentType := multipartBody(t, map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cr3t",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["success"] != true {
		t.Fatalf("expected success=true, got %v", m["success"])
	}
	if int64(m["userId"].(float64)) != 42 {
		t.Fatalf("expected userId=42, got %v", m["userId"])
	}
	if auth.lastRegister.Email != "alice@example.com" || auth.lastRegister.Name != "Alice" {
		t.Fatalf("unexpected register params: %+v", auth.lastRegister)
	}
	if auth.lastRegister.ProfilePicture != nil {
		t.Fatalf("expected no profile picture, got %v", *auth.lastRegister.ProfilePicture)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	cases := []map[string]string{
		{"email": "a@b.c", "password": "p"},
		{"name": "A", "password": "p"},
		{"name": "A", "email": "a@b.c"},
	}
	for _, fields := range cases {
		auth := &mockAuth{}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		body, contentType := multipartBody(t, fields)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("fields=%v: expected 400, got %d (body=%s)", fields, w.Code, w.Body.String())
		}
		if auth.lastRegister.Email != "" {
			t.Fatalf("fields=%v: Register should not be called", fields)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuth{registerErr: service.ErrEmailTaken}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	body, contentType := multipartBody(t, map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "p",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", w.Code)
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "email already registered" {
		t.Fatalf("unexpected error message %q", out.Error)
	}
}

func TestLogin_Success(t *testing.T) {
	picture := "abc.png"
	auth := &mockAuth{loginRes: service.LoginResult{
		Token: "tok123",
		User:  &models.User{ID: 7, Name: "Alice", Email: "alice@example.com", ProfilePicture: &picture},
	}}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		bytes.NewBufferString(`{"email":"alice@example.com","password":"s3cr3t"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}
	if int64(m["userId"].(float64)) != 7 || m["name"] != "Alice" {
		t.Fatalf("unexpected login payload: %v", m)
	}
	if m["profile_picture"] != "abc.png" {
		t.Fatalf("expected profile_picture abc.png, got %v", m["profile_picture"])
	}
	if auth.lastLoginEmail != "alice@example.com" || auth.lastLoginPassword != "s3cr3t" {
		t.Fatalf("unexpected credentials passed: %q/%q", auth.lastLoginEmail, auth.lastLoginPassword)
	}
}

func TestLogin_GenericInvalidCredentials(t *testing.T) {
	// unknown email and wrong password must be indistinguishable to the caller
	for _, loginErr := range []error{service.ErrUserNotFound, service.ErrInvalidPassword} {
		auth := &mockAuth{loginErr: loginErr}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			bytes.NewBufferString(`{"email":"a@b.c","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("err=%v: expected 401, got %d", loginErr, w.Code)
		}
		var out struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Error != "invalid credentials" {
			t.Fatalf("err=%v: expected generic message, got %q", loginErr, out.Error)
		}
	}
}

func TestLogin_MissingFields(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"email":"a@b.c"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}
}

func TestGetProfile_OwnProfile(t *testing.T) {
	auth := &mockAuth{
		parseID:     7,
		profileUser: &models.User{ID: 7, Name: "Alice", Email: "alice@example.com"},
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile/7", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("profile status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if int64(m["id"].(float64)) != 7 || m["email"] != "alice@example.com" {
		t.Fatalf("unexpected profile payload: %v", m)
	}
}

func TestGetProfile_ForeignIDForbidden(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile/8", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign profile, got %d", w.Code)
	}
	if auth.lastProfileID != 0 {
		t.Fatalf("Profile should not be called on ownership mismatch")
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	auth := &mockAuth{parseID: 7, profileErr: service.ErrUserNotFound}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile/7", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}
}
