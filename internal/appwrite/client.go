package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hackconnect-backend/internal/config"
	apperrors "hackconnect-backend/internal/errors"
)

// Client is a minimal Appwrite REST client covering the endpoints this
// service consumes: the Databases API and the Users API
type Client struct {
	endpoint   string
	projectID  string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Appwrite client from configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint:   strings.TrimRight(cfg.AppwriteEndpoint, "/"),
		projectID:  cfg.AppwriteProjectID,
		apiKey:     cfg.AppwriteAPIKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// apiError is the error body Appwrite returns on non-2xx responses
type apiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

// call issues a single request against the Appwrite REST API and decodes the
// response into out when out is non-nil
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Appwrite-Project", c.projectID)
	req.Header.Set("X-Appwrite-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.UpstreamError{
			Service:    serviceForPath(path),
			StatusCode: 0,
			Message:    err.Error(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return &apperrors.UpstreamError{
			Service:    serviceForPath(path),
			StatusCode: resp.StatusCode,
			Message:    apiErr.Message,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func serviceForPath(path string) string {
	if strings.HasPrefix(path, "/users") {
		return "users"
	}
	return "databases"
}

// IsNotFound reports whether err is an upstream 404
func IsNotFound(err error) bool {
	var upstream *apperrors.UpstreamError
	if !errors.As(err, &upstream) {
		return false
	}
	return upstream.StatusCode == http.StatusNotFound
}
