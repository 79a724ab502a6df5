package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyTransfer_Delivers(t *testing.T) {
	var received payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.NotifyTransfer(context.Background(), 1, 2, decimal.NewFromFloat(40.00))
	require.NoError(t, err)
	assert.Equal(t, uint(1), received.Payer)
	assert.Equal(t, uint(2), received.Payee)
	assert.Equal(t, "40", received.Value)
}

func TestNotifyTransfer_RetriesThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.NotifyTransfer(context.Background(), 1, 2, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestNotifyTransfer_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.NotifyTransfer(context.Background(), 1, 2, decimal.NewFromInt(5))
	assert.Error(t, err)
	assert.Equal(t, int32(maxAttempts), atomic.LoadInt32(&calls))
}

func TestNotifyTransfer_UnconfiguredIsNoop(t *testing.T) {
	client := NewClient("")
	assert.NoError(t, client.NotifyTransfer(context.Background(), 1, 2, decimal.NewFromInt(5)))
}
