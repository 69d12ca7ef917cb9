package exchangerate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Latest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"USD":1,"BRL":5.43,"EUR":0.86}}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	rates, base, err := client.Latest(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", base)
	assert.Len(t, rates, 3)
	assert.InDelta(t, 5.43, rates["BRL"], 0)
}

func TestClient_Latest_DropsInvalidRates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"USD":1,"BAD":-2,"ZERO":0}}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	rates, _, err := client.Latest(context.Background(), "USD")
	require.NoError(t, err)
	assert.Len(t, rates, 1)
	assert.NotContains(t, rates, "BAD")
	assert.NotContains(t, rates, "ZERO")
}

func TestClient_Latest_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	_, _, err := client.Latest(context.Background(), "USD")
	assert.Error(t, err)
}

func TestClient_Latest_EmptyRates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	_, _, err := client.Latest(context.Background(), "USD")
	assert.Error(t, err)
}

func TestClient_Latest_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	_, _, err := client.Latest(context.Background(), "USD")
	assert.Error(t, err)
}
