package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestLoginHandler(t *testing.T) {
	env := newTestEnv()
	env.registerAndLogin(t, "alice", "a@x.com", "pw1")

	t.Run("ByUsername", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/login",
			`{"username":"alice","password":"pw1"}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Token string `json:"token"`
		}
		decodeBody(t, w, &resp)
		if resp.Token == "" {
			t.Fatal("expected a token in the response")
		}
		if _, err := env.tokens.Verify(resp.Token); err != nil {
			t.Errorf("issued token does not verify: %v", err)
		}
	})

	t.Run("ByEmail", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/login",
			`{"username":"a@x.com","password":"pw1"}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/login",
			`{"username":"alice","password":"nope"}`, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("UnknownUserSameResponseAsWrongPassword", func(t *testing.T) {
		wrongPassword := env.request(t, http.MethodPost, "/api/auth/login",
			`{"username":"alice","password":"nope"}`, "")
		unknownUser := env.request(t, http.MethodPost, "/api/auth/login",
			`{"username":"mallory","password":"pw1"}`, "")

		if wrongPassword.Code != unknownUser.Code {
			t.Errorf("status codes differ: %d vs %d", wrongPassword.Code, unknownUser.Code)
		}

		var a, b map[string]interface{}
		if err := json.Unmarshal(wrongPassword.Body.Bytes(), &a); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if err := json.Unmarshal(unknownUser.Body.Bytes(), &b); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if a["msg"] != b["msg"] {
			t.Errorf("bodies differ: %v vs %v, failures must not reveal which part was wrong", a["msg"], b["msg"])
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		for _, body := range []string{
			`{"password":"pw1"}`,
			`{"username":"alice"}`,
			`{}`,
		} {
			w := env.request(t, http.MethodPost, "/api/auth/login", body, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 for %s, got %d", body, w.Code)
			}
		}
	})
}
