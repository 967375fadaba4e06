package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/samasante/backend/pkg/errors"
)

const defaultHTTPTimeout = 8 * time.Second

// Placeholder credentials shipped in sample env files; treated as unset.
const (
	UnsplashPlaceholderKey = "YOUR_UNSPLASH_ACCESS_KEY_PLACEHOLDER"
	PexelsPlaceholderKey   = "YOUR_PEXELS_API_KEY_PLACEHOLDER"
)

func usableKey(key, placeholder string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != placeholder
}

// searchJSON issues a landscape, single-result search and decodes the body into out.
func searchJSON(ctx context.Context, httpClient *http.Client, provider, endpoint, authorization, query string, out interface{}) error {
	params := url.Values{
		"query":       []string{query},
		"per_page":    []string{"1"},
		"orientation": []string{"landscape"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to build %s request", provider), err)
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError(fmt.Sprintf("%s request failed", provider), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return apperrors.NewUpstreamError(
			fmt.Sprintf("%s request failed", provider),
			fmt.Errorf("status %d", resp.StatusCode),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewMalformedResponseError(fmt.Sprintf("failed to decode %s response", provider), err)
	}
	return nil
}
