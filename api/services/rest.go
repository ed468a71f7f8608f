package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the mock REST API the posts are fetched from.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com/"

// HTTPError is returned when the remote API answers with an error status.
type HTTPError struct {
	Message string
	Status  int
}

func (e *HTTPError) Error() string {
	return e.Message
}

// RestAPIService is a thin client for a JSON REST API.
type RestAPIService struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewRestAPIService creates a new RestAPIService. A zero timeout means no timeout.
func NewRestAPIService(baseURL string, timeout time.Duration) *RestAPIService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &RestAPIService{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET on path, relative to the base URL, and decodes the JSON
// response body into out.
func (s *RestAPIService) Get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := s.URL(path, params)

	respBody, _, err := s.makeRequest(ctx, http.MethodGet, reqURL)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", reqURL, err)
	}

	return nil
}

// URL joins the base URL and path with exactly one slash and appends params.
func (s *RestAPIService) URL(path string, params url.Values) string {
	u := strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// GetJSON is a typed wrapper around APIGetter.Get.
func GetJSON[T any](ctx context.Context, api APIGetter, path string, params url.Values) (T, error) {
	var out T
	err := api.Get(ctx, path, params, &out)
	return out, err
}

// Helper function for making HTTP requests to the remote API.
func (s *RestAPIService) makeRequest(ctx context.Context, method, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return respBody, resp.StatusCode, &HTTPError{
			Message: fmt.Sprintf("error response: status %d, body: %s", resp.StatusCode, string(respBody)),
			Status:  resp.StatusCode,
		}
	}

	return respBody, resp.StatusCode, nil
}
