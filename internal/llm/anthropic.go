package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	anthropicVersion  = "2023-06-01"
	messagesPath      = "/v1/messages"
	contentTypeText   = "text"
	maxErrorBodyBytes = 4096
)

// AnthropicClient implements Client for the Anthropic Messages API
type AnthropicClient struct {
	apiKey     string
	baseURL    string
	config     *Config
	httpClient *http.Client
}

// NewAnthropicClient creates a new Messages API client
func NewAnthropicClient(config *Config, apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultAnthropicBaseURL
	}

	return &AnthropicClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		config:  config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// messagesResponse is the subset of the Messages API envelope the planner reads
type messagesResponse struct {
	Type    string `json:"type"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate posts req to the Messages endpoint and returns the first text content item
func (c *AnthropicClient) Generate(ctx context.Context, req Request) (string, error) {
	if req.Model == "" {
		req.Model = c.config.Model
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = c.config.MaxTokens
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &TransportError{Message: "failed to marshal request body", Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Message: "failed to create request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &TransportError{Message: "failed to send request", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Message: "failed to read response body", Cause: err}
	}

	var envelope messagesResponse
	decodeErr := json.Unmarshal(data, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := truncate(string(data), maxErrorBodyBytes)
		if decodeErr == nil && envelope.Error != nil {
			message = fmt.Sprintf("%s: %s", envelope.Error.Type, envelope.Error.Message)
		}
		return "", &ServiceError{StatusCode: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		return "", &ServiceError{StatusCode: resp.StatusCode, Message: "failed to decode response envelope", Cause: decodeErr}
	}
	if envelope.Error != nil {
		return "", &ServiceError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("%s: %s", envelope.Error.Type, envelope.Error.Message)}
	}

	for _, item := range envelope.Content {
		if item.Type == contentTypeText {
			return item.Text, nil
		}
	}

	return "", &ServiceError{StatusCode: resp.StatusCode, Message: "no text content in response"}
}

// Close is a no-op; the HTTP client holds no resources that need releasing
func (c *AnthropicClient) Close() error {
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
