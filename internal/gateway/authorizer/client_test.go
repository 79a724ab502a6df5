package authorizer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_Approved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("payer"))
		assert.Equal(t, "2", r.URL.Query().Get("payee"))
		assert.Equal(t, "40", r.URL.Query().Get("value"))
		w.Write([]byte(`{"data":{"authorization":true}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ok, err := client.Authorize(context.Background(), 1, 2, decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorize_Denied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"authorization":false}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ok, err := client.Authorize(context.Background(), 1, 2, decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorize_LegacyMessageFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Autorizado"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ok, err := client.Authorize(context.Background(), 1, 2, decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorize_DenialWithErrorStatus(t *testing.T) {
	// Some deployments answer denials with a 403 but a well-formed body.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"data":{"authorization":false}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ok, err := client.Authorize(context.Background(), 1, 2, decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorize_UnconfiguredFailsOpen(t *testing.T) {
	client := NewClient("")
	ok, err := client.Authorize(context.Background(), 1, 2, decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorize_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewClient(server.URL)
	ok, err := client.Authorize(context.Background(), 1, 2, decimal.NewFromInt(40))
	assert.Error(t, err)
	assert.False(t, ok)
}
