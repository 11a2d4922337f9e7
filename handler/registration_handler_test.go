package handler

import (
	"net/http"
	"testing"
)

func TestRegistrationHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
		expectedMsg  string
		setup        func(t *testing.T, e *testEnv)
	}{
		{
			name:         "Success",
			body:         `{"username":"alice","email":"a@x.com","password":"pw1"}`,
			expectedCode: http.StatusCreated,
			expectedMsg:  "User registered successfully",
		},
		{
			name:         "MissingUsername",
			body:         `{"email":"a@x.com","password":"pw1"}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "All fields are required",
		},
		{
			name:         "MissingEmail",
			body:         `{"username":"alice","password":"pw1"}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "All fields are required",
		},
		{
			name:         "MissingPassword",
			body:         `{"username":"alice","email":"a@x.com"}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "All fields are required",
		},
		{
			// Email is an opaque unique string; any non-empty value is accepted.
			name:         "PlainStringEmail",
			body:         `{"username":"alice","email":"not-an-email","password":"pw1"}`,
			expectedCode: http.StatusCreated,
			expectedMsg:  "User registered successfully",
		},
		{
			name:         "DuplicateUsername",
			body:         `{"username":"alice","email":"fresh@x.com","password":"pw2"}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Username or Email already in use",
			setup: func(t *testing.T, e *testEnv) {
				e.registerAndLogin(t, "alice", "a@x.com", "pw1")
			},
		},
		{
			name:         "DuplicateEmail",
			body:         `{"username":"bob","email":"a@x.com","password":"pw2"}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Username or Email already in use",
			setup: func(t *testing.T, e *testEnv) {
				e.registerAndLogin(t, "alice", "a@x.com", "pw1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			if tt.setup != nil {
				tt.setup(t, env)
			}

			w := env.request(t, http.MethodPost, "/api/auth/register", tt.body, "")
			if w.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedCode, w.Code, w.Body.String())
			}

			var resp struct {
				Msg string `json:"msg"`
			}
			decodeBody(t, w, &resp)
			if resp.Msg != tt.expectedMsg {
				t.Errorf("expected msg %q, got %q", tt.expectedMsg, resp.Msg)
			}
		})
	}
}

func TestRegistrationIssuesNoToken(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"a@x.com","password":"pw1"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed with status %d", w.Code)
	}

	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	if _, hasToken := resp["token"]; hasToken {
		t.Error("registration must not issue a token; login is a separate step")
	}
}
