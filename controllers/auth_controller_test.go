package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func bindRegister(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var input RegisterInput
	return c.ShouldBindJSON(&input)
}

func TestBindingErrorsListsEveryFailedField(t *testing.T) {
	err := bindRegister(t, `{"name": "", "email": "not-an-email", "password": "short"}`)
	require.Error(t, err)

	h := bindingErrors(err)
	require.Equal(t, "validation failed", h["message"])

	list, ok := h["errors"].([]gin.H)
	require.True(t, ok)
	require.Len(t, list, 3, "one entry per failed field")

	msgs := make([]string, 0, len(list))
	for _, e := range list {
		msgs = append(msgs, e["msg"].(string))
	}
	require.Contains(t, msgs, "Name is required")
	require.Contains(t, msgs, "email must be a valid email address")
	require.Contains(t, msgs, "Password must be at least 8 characters")
}

func TestBindingErrorsFallsBackForMalformedJSON(t *testing.T) {
	err := bindRegister(t, `{not json`)
	require.Error(t, err)

	h := bindingErrors(err)
	require.NotEmpty(t, h["message"])
	require.NotContains(t, h, "errors", "malformed body is not a field-validation failure")
}

func TestBindingErrorsPassesValidInput(t *testing.T) {
	err := bindRegister(t, `{"name": "Alex", "email": "alex@nutrifit.local", "password": "hunter22!"}`)
	require.NoError(t, err)
}
