package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// VideoResolver resolves an external video-hosting shortcode to a directly
// playable URL.
type VideoResolver interface {
	Resolve(ctx context.Context, shortcode string) (string, error)
}

// EmbedURL constructs the embed fallback used when resolution fails.
func EmbedURL(shortcode string) string {
	return "https://streamable.com/e/" + shortcode
}

// StreamableResolver looks up shortcodes against the Streamable API and
// returns the direct mp4 URL.
type StreamableResolver struct {
	apiURL string
	httpc  *http.Client
}

// NewStreamableResolver builds a resolver against apiURL (the production
// value is https://api.streamable.com).
func NewStreamableResolver(apiURL string, timeout time.Duration) *StreamableResolver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &StreamableResolver{
		apiURL: apiURL,
		httpc:  &http.Client{Timeout: timeout},
	}
}

func (r *StreamableResolver) Resolve(ctx context.Context, shortcode string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.apiURL+"/videos/"+shortcode, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("streamable lookup failed: %s", resp.Status)
	}

	var payload struct {
		Files struct {
			MP4 struct {
				URL string `json:"url"`
			} `json:"mp4"`
		} `json:"files"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.Files.MP4.URL == "" {
		return "", fmt.Errorf("no mp4 rendition for shortcode %q", shortcode)
	}
	return payload.Files.MP4.URL, nil
}
