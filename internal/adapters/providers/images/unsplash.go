package images

import (
	"context"
	"net/http"
	"strings"

	"github.com/samasante/backend/internal/domain/providers"
)

const unsplashSearchURL = "https://api.unsplash.com/search/photos"

// UnsplashProvider searches Unsplash photos
type UnsplashProvider struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

// NewUnsplashProvider creates a new Unsplash image provider
func NewUnsplashProvider(accessKey string) providers.ImageProvider {
	return NewUnsplashProviderWithOptions(accessKey, unsplashSearchURL, nil)
}

// NewUnsplashProviderWithOptions allows overriding base URL and HTTP client (used for tests).
func NewUnsplashProviderWithOptions(accessKey, baseURL string, httpClient *http.Client) *UnsplashProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = unsplashSearchURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &UnsplashProvider{
		accessKey:  strings.TrimSpace(accessKey),
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type unsplashResponse struct {
	Results []struct {
		URLs struct {
			Small string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

func (p *UnsplashProvider) Name() string { return "unsplash" }

func (p *UnsplashProvider) Configured() bool {
	return usableKey(p.accessKey, UnsplashPlaceholderKey)
}

// SearchImage returns results[0].urls.small
func (p *UnsplashProvider) SearchImage(ctx context.Context, query string) (string, error) {
	var resp unsplashResponse
	if err := searchJSON(ctx, p.httpClient, p.Name(), p.baseURL, "Client-ID "+p.accessKey, query, &resp); err != nil {
		return "", err
	}
	if len(resp.Results) == 0 {
		return "", nil
	}
	return resp.Results[0].URLs.Small, nil
}
