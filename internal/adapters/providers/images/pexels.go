package images

import (
	"context"
	"net/http"
	"strings"

	"github.com/samasante/backend/internal/domain/providers"
)

const pexelsSearchURL = "https://api.pexels.com/v1/search"

// PexelsProvider searches Pexels photos
type PexelsProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPexelsProvider creates a new Pexels image provider
func NewPexelsProvider(apiKey string) providers.ImageProvider {
	return NewPexelsProviderWithOptions(apiKey, pexelsSearchURL, nil)
}

// NewPexelsProviderWithOptions allows overriding base URL and HTTP client (used for tests).
func NewPexelsProviderWithOptions(apiKey, baseURL string, httpClient *http.Client) *PexelsProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = pexelsSearchURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &PexelsProvider{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type pexelsResponse struct {
	Photos []struct {
		Src struct {
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

func (p *PexelsProvider) Name() string { return "pexels" }

func (p *PexelsProvider) Configured() bool {
	return usableKey(p.apiKey, PexelsPlaceholderKey)
}

// SearchImage returns photos[0].src.medium
func (p *PexelsProvider) SearchImage(ctx context.Context, query string) (string, error) {
	var resp pexelsResponse
	if err := searchJSON(ctx, p.httpClient, p.Name(), p.baseURL, p.apiKey, query, &resp); err != nil {
		return "", err
	}
	if len(resp.Photos) == 0 {
		return "", nil
	}
	return resp.Photos[0].Src.Medium, nil
}
