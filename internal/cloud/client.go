// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud provides OpenRouter integration for recipe generation.
//
// OpenRouter provides access to multiple LLM providers through a single
// API. This package implements the client for its chat completions
// endpoint together with a content-addressed response cache, so that a
// replayed conversation never costs a second network call.
package cloud

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Configuration constants for OpenRouter API.
const (
	// DefaultOpenRouterURL is the base URL for OpenRouter API.
	DefaultOpenRouterURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the model used for recipe generation.
	DefaultModel = "meta-llama/llama-4-maverick:free"

	// DefaultMaxTokens caps the length of a generated reply.
	DefaultMaxTokens = 600

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion attacks.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// Shared HTTP client with connection pooling for all OpenRouter requests.
// SECURITY: TLS verification required for production
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: false, // SECURITY: TLS verification required for production
		},
	},
	Timeout: DefaultTimeout,
}

// Error variables for common OpenRouter errors.
var (
	// ErrNotConfigured indicates the API key is not set.
	ErrNotConfigured = errors.New("OpenRouter API key not configured")

	// ErrAuthFailed indicates authentication failed (invalid or expired API key).
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRateLimited indicates too many requests were made.
	ErrRateLimited = errors.New("rate limited")

	// ErrModelNotFound indicates the requested model does not exist.
	ErrModelNotFound = errors.New("model not found")

	// ErrInsufficientCredits indicates the account has insufficient credits.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrNoMessages indicates a completion was requested with an empty conversation.
	ErrNoMessages = errors.New("no messages to send")

	// ErrInvalidRole indicates a message carried a role the API does not accept.
	ErrInvalidRole = errors.New("invalid message role")

	// ErrEmptyResponse indicates the response was missing the expected text field.
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrConnection indicates the endpoint could not be reached.
	ErrConnection = errors.New("connection failed")

	// ErrServerError indicates the service failed with a 5xx status.
	ErrServerError = errors.New("server error")
)

// OpenRouterError represents an error from the OpenRouter API.
type OpenRouterError struct {
	Code    string
	Message string
	Status  int
}

// Error implements the error interface.
func (e *OpenRouterError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("OpenRouter error [%s] (HTTP %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("OpenRouter error (HTTP %d): %s", e.Status, e.Message)
}

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`    // "user", "assistant", or "system"
	Content string `json:"content"` // The message content
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) ChatMessage {
	return ChatMessage{Role: "user", Content: content}
}

// NewAssistantMessage creates a new assistant message.
func NewAssistantMessage(content string) ChatMessage {
	return ChatMessage{Role: "assistant", Content: content}
}

// NewSystemMessage creates a new system message.
func NewSystemMessage(content string) ChatMessage {
	return ChatMessage{Role: "system", Content: content}
}

// validRoles is the set of roles the chat completions endpoint accepts.
var validRoles = map[string]bool{
	"user":      true,
	"assistant": true,
	"system":    true,
}

// ChatRequest represents a request to the chat completions endpoint.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse represents a response from the chat completions endpoint.
type ChatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// GetContent returns the content of the first choice, or empty string if none.
func (r *ChatResponse) GetContent() string {
	if len(r.Choices) > 0 {
		return r.Choices[0].Message.Content
	}
	return ""
}

// apiErrorResponse represents an error response from the API.
type apiErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// OpenRouterClient is a client for communicating with the OpenRouter API.
//
// Each completion is attempted exactly once: a failed call surfaces its
// cause to the triggering action and the user re-triggers manually. The
// client never retries on its own.
type OpenRouterClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	model      string
	maxTokens  int
	timeout    time.Duration
	siteURL    string
	siteName   string

	// cache deduplicates identical conversations; nil disables caching.
	cache *ResponseCache

	// limiter paces outbound calls so rapid regenerate actions cannot
	// hammer the endpoint. It waits rather than rejecting.
	limiter *rate.Limiter
}

// NewOpenRouterClient creates a new OpenRouter client with the given API key.
//
// The API key should be in the format "sk-or-..." as provided by OpenRouter.
// If the API key is empty, the client will still be created but Complete
// requests will fail with ErrNotConfigured.
func NewOpenRouterClient(apiKey string) *OpenRouterClient {
	return &OpenRouterClient{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    DefaultOpenRouterURL,
		httpClient: sharedHTTPClient,
		model:      DefaultModel,
		maxTokens: DefaultMaxTokens,
		timeout:   DefaultTimeout,
		siteURL:   "https://plateful.local",
		siteName:  "Plateful Meal Planner",
		cache:     NewResponseCache(),
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// WithBaseURL sets a custom base URL for the API.
func (c *OpenRouterClient) WithBaseURL(url string) *OpenRouterClient {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

// WithTimeout sets the request timeout. The client keeps the shared
// pooled transport; only the deadline is per-client.
func (c *OpenRouterClient) WithTimeout(timeout time.Duration) *OpenRouterClient {
	c.timeout = timeout
	c.httpClient = &http.Client{
		Transport: sharedHTTPClient.Transport,
		Timeout:   timeout,
	}
	return c
}

// WithModel sets the model identifier for completion requests.
func (c *OpenRouterClient) WithModel(model string) *OpenRouterClient {
	if model != "" {
		c.model = model
	}
	return c
}

// WithMaxTokens sets the response-length cap.
func (c *OpenRouterClient) WithMaxTokens(maxTokens int) *OpenRouterClient {
	if maxTokens > 0 {
		c.maxTokens = maxTokens
	}
	return c
}

// WithSiteURL sets the site URL sent as the HTTP-Referer header.
func (c *OpenRouterClient) WithSiteURL(url string) *OpenRouterClient {
	c.siteURL = url
	return c
}

// WithSiteName sets the application name sent as the X-Title header.
func (c *OpenRouterClient) WithSiteName(name string) *OpenRouterClient {
	c.siteName = name
	return c
}

// WithCache sets the response cache. Passing nil disables caching.
func (c *OpenRouterClient) WithCache(cache *ResponseCache) *OpenRouterClient {
	c.cache = cache
	return c
}

// WithRateLimit sets the outbound request pacing. Passing nil disables pacing.
func (c *OpenRouterClient) WithRateLimit(limiter *rate.Limiter) *OpenRouterClient {
	c.limiter = limiter
	return c
}

// Model returns the configured model identifier.
func (c *OpenRouterClient) Model() string {
	return c.model
}

// Cache returns the client's response cache, or nil if caching is disabled.
func (c *OpenRouterClient) Cache() *ResponseCache {
	return c.cache
}

// IsConfigured returns true if the client has an API key configured.
func (c *OpenRouterClient) IsConfigured() bool {
	return c.apiKey != ""
}

// APIKeyMasked returns a masked version of the API key for display.
// SECURITY: Never exposes API key fragments - use fingerprint instead.
func (c *OpenRouterClient) APIKeyMasked() string {
	if c.apiKey == "" {
		return "[not set]"
	}
	return fmt.Sprintf("[REDACTED, length=%d, fingerprint=%s]", len(c.apiKey), c.keyFingerprint())
}

// keyFingerprint returns a secure fingerprint of the API key for display.
// SECURITY: Uses SHA-256 hash to create a unique identifier without exposing the key.
func (c *OpenRouterClient) keyFingerprint() string {
	if c.apiKey == "" {
		return "none"
	}
	h := sha256.Sum256([]byte(c.apiKey))
	return hex.EncodeToString(h[:4]) // First 8 hex chars (4 bytes)
}

// setHeaders sets the required headers for OpenRouter API requests.
func (c *OpenRouterClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "plateful/0.1.0")

	if c.siteURL != "" {
		req.Header.Set("HTTP-Referer", c.siteURL)
	}
	if c.siteName != "" {
		req.Header.Set("X-Title", c.siteName)
	}
}

// validateMessages checks the input constraint for a completion request.
func validateMessages(messages []ChatMessage) error {
	if len(messages) == 0 {
		return ErrNoMessages
	}
	for _, msg := range messages {
		if !validRoles[msg.Role] {
			return fmt.Errorf("%w: %q", ErrInvalidRole, msg.Role)
		}
	}
	return nil
}

// Complete sends the conversation to the chat completions endpoint and
// returns the assistant's text reply.
//
// Identical conversations hit the content-addressed cache and return
// without a network call. A failed request is never retried; the error
// carries the underlying cause for the caller to report.
func (c *OpenRouterClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	if err := validateMessages(messages); err != nil {
		return "", err
	}

	var key string
	if c.cache != nil {
		var err error
		key, err = CacheKey(messages)
		if err != nil {
			return "", fmt.Errorf("failed to compute cache key: %w", err)
		}
		if text, ok := c.cache.Get(key); ok {
			return text, nil
		}
	}

	resp, err := c.Chat(ctx, messages)
	if err != nil {
		return "", err
	}

	text := resp.GetContent()
	if text == "" {
		return "", ErrEmptyResponse
	}

	if c.cache != nil {
		c.cache.Put(key, text)
	}

	return text, nil
}

// Chat performs a chat completion request and returns the full response.
// Most callers want Complete; Chat bypasses the cache and exposes usage
// statistics.
func (c *OpenRouterClient) Chat(ctx context.Context, messages []ChatMessage) (*ChatResponse, error) {
	if err := validateMessages(messages); err != nil {
		return nil, err
	}
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	reqBody := ChatRequest{
		Model:     c.model,
		Messages:  messages,
		Stream:    false,
		MaxTokens: c.maxTokens,
	}

	return c.doRequest(ctx, c.baseURL+"/chat/completions", reqBody)
}

// readResponse reads the response body with size limits to prevent memory exhaustion.
//
// SECURITY: Response size limit prevents memory exhaustion attacks.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Check if we hit the limit (response was truncated)
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}

	return body, nil
}

// doRequest performs a single HTTP request to the chat completions endpoint.
//
// SECURITY: Clears Authorization header after request to prevent logging.
// PERFORMANCE: Uses shared HTTP client with connection pooling.
func (c *OpenRouterClient) doRequest(ctx context.Context, requestURL string, reqBody ChatRequest) (*ChatResponse, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)

	// SECURITY: Clear Authorization header immediately after request to prevent logging
	req.Header.Del("Authorization")

	if err != nil {
		return nil, classifyRequestError(err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		err := handleErrorResponse(resp.StatusCode, body)
		if errors.Is(err, ErrAuthFailed) {
			// Identify which key was rejected without exposing it.
			err = fmt.Errorf("%w %s", err, c.APIKeyMasked())
		}
		return nil, err
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &chatResp, nil
}

// classifyRequestError maps a failed round trip onto the timeout and
// connection sentinels. Caller-driven cancellation passes through
// unchanged so a deliberate quit is not reported as a failure.
func classifyRequestError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrConnection, err)
}

// handleErrorResponse converts HTTP error responses to appropriate Go errors.
func handleErrorResponse(statusCode int, body []byte) error {
	// Try to parse error response
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		orErr := &OpenRouterError{
			Code:    apiErr.Error.Code,
			Message: apiErr.Error.Message,
			Status:  statusCode,
		}

		switch statusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrAuthFailed, orErr.Message)
		case http.StatusPaymentRequired:
			return fmt.Errorf("%w: %s", ErrInsufficientCredits, orErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrModelNotFound, orErr.Message)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", ErrRateLimited, orErr.Message)
		default:
			if statusCode >= http.StatusInternalServerError {
				return fmt.Errorf("%w: %s", ErrServerError, orErr.Error())
			}
			return orErr
		}
	}

	// Fallback for unparseable error responses
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuthFailed
	case http.StatusPaymentRequired:
		return ErrInsufficientCredits
	case http.StatusNotFound:
		return ErrModelNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		if statusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w (HTTP %d)", ErrServerError, statusCode)
		}
		return &OpenRouterError{
			Message: string(body),
			Status:  statusCode,
		}
	}
}

// IsTransportError reports whether err is a network-level failure: the
// request never produced an HTTP response. API-status failures (auth,
// rate limits, 5xx) carry their own sentinels and are not transport
// errors.
func IsTransportError(err error) bool {
	return err != nil &&
		(errors.Is(err, ErrConnection) || errors.Is(err, ErrTimeout))
}

// ValidateAPIKey checks if the API key format appears valid.
// Note: This doesn't verify the key with OpenRouter, just checks the format.
func ValidateAPIKey(apiKey string) bool {
	apiKey = strings.TrimSpace(apiKey)

	// OpenRouter keys typically start with "sk-or-"
	if !strings.HasPrefix(apiKey, "sk-or-") {
		return false
	}

	// Minimum length check (sk-or- prefix + at least 32 chars)
	if len(apiKey) < 38 {
		return false
	}

	// Basic entropy check: key should contain alphanumeric variety.
	// Detects obvious test keys like "sk-or-aaaaaaaaaa".
	uniqueChars := make(map[rune]bool)
	for _, char := range apiKey[6:] { // Skip "sk-or-" prefix
		uniqueChars[char] = true
	}
	if len(uniqueChars) < 10 {
		return false
	}

	return true
}
