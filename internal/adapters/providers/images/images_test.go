package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/samasante/backend/pkg/errors"
)

func TestUnsplashProvider_SearchImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Client-ID u-key", r.Header.Get("Authorization"))
		assert.Equal(t, "ginger plant", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		_, _ = w.Write([]byte(`{"results":[{"urls":{"small":"https://images.unsplash.com/ginger-small","full":"x"}}]}`))
	}))
	defer server.Close()

	p := NewUnsplashProviderWithOptions("u-key", server.URL, server.Client())
	require.True(t, p.Configured())

	url, err := p.SearchImage(context.Background(), "ginger plant")
	require.NoError(t, err)
	assert.Equal(t, "https://images.unsplash.com/ginger-small", url)
}

func TestUnsplashProvider_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	url, err := NewUnsplashProviderWithOptions("u-key", server.URL, nil).SearchImage(context.Background(), "rare")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestUnsplashProvider_ServerErrorIsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewUnsplashProviderWithOptions("u-key", server.URL, nil).SearchImage(context.Background(), "mint")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUpstream))
}

func TestPexelsProvider_SearchImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "p-key", r.Header.Get("Authorization"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		_, _ = w.Write([]byte(`{"photos":[{"src":{"medium":"https://images.pexels.com/mint-medium"}}]}`))
	}))
	defer server.Close()

	url, err := NewPexelsProviderWithOptions("p-key", server.URL, nil).SearchImage(context.Background(), "mint")
	require.NoError(t, err)
	assert.Equal(t, "https://images.pexels.com/mint-medium", url)
}

func TestPexelsProvider_InvalidJSONIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer server.Close()

	_, err := NewPexelsProviderWithOptions("p-key", server.URL, nil).SearchImage(context.Background(), "mint")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMalformedResponse))
}

func TestConfigured_RejectsMissingAndPlaceholderKeys(t *testing.T) {
	assert.False(t, NewUnsplashProviderWithOptions("", "", nil).Configured())
	assert.False(t, NewUnsplashProviderWithOptions(UnsplashPlaceholderKey, "", nil).Configured())
	assert.False(t, NewPexelsProviderWithOptions("   ", "", nil).Configured())
	assert.False(t, NewPexelsProviderWithOptions(PexelsPlaceholderKey, "", nil).Configured())
	assert.True(t, NewPexelsProviderWithOptions("real", "", nil).Configured())
}
