package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "слот занят")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "слот занят"}, body)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Date string `json:"date"`
	}

	var p payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2024-01-15"}`))
	require.NoError(t, DecodeJSON(req, &p))
	assert.Equal(t, "2024-01-15", p.Date)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2024-01-15","extra":1}`))
	assert.Error(t, DecodeJSON(req, &p))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(req, &p))
}

func TestValidate(t *testing.T) {
	type payload struct {
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"min=6"`
	}

	assert.NoError(t, Validate(&payload{Name: "Anna", Password: "secret1"}))

	err := Validate(&payload{Password: "123"})
	require.Error(t, err)
	assert.Equal(t, "name: required, password: min", err.Error())
}
