package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"
)

const (
	DefaultImageBaseURL = "https://image.pollinations.ai"
	FrameWidth          = 1024
	FrameHeight         = 576
	FetchTimeout        = 30 * time.Second
)

// Fetcher downloads generated stills from an unauthenticated image endpoint.
type Fetcher struct {
	BaseURL string
	client  *http.Client
}

func NewFetcher(baseURL string) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}
	return &Fetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: FetchTimeout},
	}
}

// CleanPrompt keeps letters, numbers and spaces, then percent-encodes the spaces.
func CleanPrompt(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(b.String(), " ", "%20")
}

// FrameURL builds the deterministic image URL for one frame.
func (f *Fetcher) FrameURL(text string, seed int64) string {
	return fmt.Sprintf("%s/prompt/%s?width=%d&height=%d&nologo=true&seed=%d",
		f.BaseURL, CleanPrompt(text), FrameWidth, FrameHeight, seed)
}

// Fetch GETs url and returns the body. Any status other than 200 is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return data, nil
}
