package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"q":"Stay hungry.","a":"Someone"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	quote, err := client.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Stay hungry.", quote.Text)
	assert.Equal(t, "Someone", quote.Author)
}

func TestRandomDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"oops": true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Random(context.Background())
	assert.Error(t, err)
}

func TestRandomBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Random(context.Background())
	assert.Error(t, err)
}

func TestRandomEmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Random(context.Background())
	assert.Error(t, err)
}
