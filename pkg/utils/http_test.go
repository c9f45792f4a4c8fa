package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

type checkout struct {
	Items []item `json:"items" validate:"required,min=1,dive"`
	Notes string `json:"-"`
}

func TestWriteValidationError_UsesJSONNames(t *testing.T) {
	err := NewValidator().Struct(checkout{Items: []item{{Quantity: 0}}})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, err))

	var res ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid request", res.Message)
	assert.Equal(t, map[string]string{
		"items[0].product_id": "required",
		"items[0].quantity":   "gte",
	}, res.Fields)
}

func TestDecodeBody(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"items":[{"product_id":"p","quantity":1}]}`},
		{name: "malformed", body: `{"items":`, wantErr: true},
		{name: "trailing data", body: `{"items":[]} {"items":[]}`, wantErr: true},
		{name: "too large", body: `{"items":[],"pad":"` + strings.Repeat("x", maxBodyBytes) + `"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var v checkout
			err := DecodeBody(httptest.NewRecorder(), r, &v)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
