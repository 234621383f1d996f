package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"id": 7, "name": "Alex"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	payload, err := c.Get(context.Background(), "/api/auth/me")
	require.NoError(t, err)

	var user User
	require.NoError(t, json.Unmarshal(payload, &user))
	require.Equal(t, uint(7), user.ID)
	require.Equal(t, "Alex", user.Name)
}

func TestClientUnwrapsDoubleEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"data": {"token": "abc"}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	payload, err := c.Post(context.Background(), "/api/auth/refresh", nil)
	require.NoError(t, err)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(payload, &resp))
	require.Equal(t, "abc", resp.Token)
}

func TestClientPassesBareBodyThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 3}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	payload, err := c.Get(context.Background(), "/api/auth/me")
	require.NoError(t, err)
	require.JSONEq(t, `{"id": 3}`, string(payload))
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "validation failed", "errors": [{"msg": "email is required"}, {"msg": "password is required"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Post(context.Background(), "/api/auth/register", map[string]string{})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "validation failed", apiErr.Message)
	require.Len(t, apiErr.Errors, 2)
	require.Equal(t, "email is required, password is required", apiErr.Error())
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("secret-token")
	_, err := c.Get(context.Background(), "/api/users/profile")
	require.NoError(t, err)
	require.Equal(t, "Bearer secret-token", gotAuth)
}

func TestClientWrapsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := NewClient(srv.URL)
	_, err := c.Get(context.Background(), "/api/auth/me")
	require.Error(t, err)
	require.Equal(t, "network error, please try again", err.Error())
}

func TestAPIErrorMessageFallbacks(t *testing.T) {
	require.Equal(t, "boom", (&APIError{Message: "boom"}).Error())
	require.Equal(t, "something went wrong", (&APIError{StatusCode: 500}).Error())
	require.Equal(t, "only this", (&APIError{Message: "ignored", Errors: []FieldError{{Msg: "only this"}}}).Error())
}
