package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rahulvm/accountd/internal/repositories"
	"github.com/rahulvm/accountd/internal/services"
	"github.com/rahulvm/accountd/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	repo := repositories.NewMemoryAccountRepository()
	issuer := token.NewIssuer("test-secret", time.Hour)
	svc := services.NewAuthService(repo, nil, issuer)
	server := httptest.NewServer(NewAuthHandler(svc).Routes())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// TestSignup tests registration responses
func TestSignup(t *testing.T) {
	server := newTestServer(t)

	t.Run("created", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/signup", map[string]string{
			"email":    "a@x.com",
			"fullName": "A",
			"password": "Secret1!",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "User registered successfully", body["message"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/signup", map[string]string{
			"email":    "A@X.com",
			"fullName": "Imposter",
			"password": "other",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "User already exists", decodeBody(t, resp)["message"])
	})

	t.Run("missing password", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/signup", map[string]string{
			"email": "b@x.com",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Email and password are required", decodeBody(t, resp)["message"])
	})

	t.Run("invalid json", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/signup", "application/json", strings.NewReader("{not json"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

// TestSignin tests login responses, including identical bodies for unknown
// email and wrong password
func TestSignin(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/signup", map[string]string{
		"email":    "a@x.com",
		"fullName": "A",
		"password": "Secret1!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	t.Run("success", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/signin", map[string]string{
			"email":    "a@x.com",
			"password": "Secret1!",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Login successful", body["message"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/signin", map[string]string{
			"email":    "a@x.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid email or password", decodeBody(t, resp)["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/signin", map[string]string{
			"email":    "nobody@x.com",
			"password": "Secret1!",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid email or password", decodeBody(t, resp)["message"])
	})
}

// TestMe tests the bearer-protected profile endpoint end to end
func TestMe(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/signup", map[string]string{
		"email":    "a@x.com",
		"fullName": "A",
		"password": "Secret1!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	tokenString, _ := decodeBody(t, resp)["token"].(string)
	require.NotEmpty(t, tokenString)

	get := func(t *testing.T, authorization string) *http.Response {
		req, err := http.NewRequest(http.MethodGet, server.URL+"/me", nil)
		require.NoError(t, err)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("valid token", func(t *testing.T) {
		resp := get(t, "Bearer "+tokenString)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "a@x.com", body["email"])
		assert.Equal(t, "A", body["fullName"])
		assert.NotContains(t, body, "passwordHash")
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("missing header", func(t *testing.T) {
		resp := get(t, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid or expired token", decodeBody(t, resp)["message"])
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := get(t, "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := token.NewIssuer("test-secret", -time.Second).Issue(mustParse(t, tokenString))
		require.NoError(t, err)

		resp := get(t, "Bearer "+expired)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}

func mustParse(t *testing.T, tokenString string) uuid.UUID {
	issuer := token.NewIssuer("test-secret", time.Hour)
	accountID, err := issuer.Verify(tokenString)
	require.NoError(t, err)
	return accountID
}
