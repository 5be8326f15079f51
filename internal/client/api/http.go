package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// Generic failure messages shown when the backend rejects a request without
// an error field in the body.
const (
	signupFallback = "Signup failed."
	loginFallback  = "Login failed."
	verifyFallback = "OTP verification failed."
)

// HTTPClient talks JSON over HTTP to the auth backend. The base URL is
// resolved once by the caller and never changes afterwards.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Username string `json:"username"`
	OTP      string `json:"otp"`
}

// apiResponse covers every field the backend may put in a response body.
type apiResponse struct {
	Error     string `json:"error"`
	EmailHint string `json:"email_hint"`
}

func (c *HTTPClient) Signup(ctx context.Context, username, email, password string) error {
	_, err := c.postJSON(ctx, "/signup", signupRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, signupFallback)
	return err
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.postJSON(ctx, "/login", loginRequest{
		Username: username,
		Password: password,
	}, loginFallback)
	if err != nil {
		return "", err
	}
	return resp.EmailHint, nil
}

func (c *HTTPClient) Verify(ctx context.Context, username, otp string) error {
	_, err := c.postJSON(ctx, "/verify", verifyRequest{
		Username: username,
		OTP:      otp,
	}, verifyFallback)
	return err
}

// postJSON performs a single request/response cycle. The body is always
// decoded before the status check, so a malformed body surfaces as a decode
// error regardless of status. On a non-2xx status the decoded error field
// (or fallback) is returned as *APIError.
func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any, fallback string) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed apiResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := parsed.Error
		if msg == "" {
			msg = fallback
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}

	return &parsed, nil
}
